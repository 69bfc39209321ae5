// SPDX-License-Identifier: EPL-2.0

// Package instrument turns one short sound clip into a playable piano.
//
// The pipeline has two stages. Normalize trims or zero-pads a decoded clip
// to exactly one second, producing the base note; no resampling happens
// there. Map then derives one buffer per keyboard key by resampling the base
// note with linear interpolation at the key's equal-tempered pitch ratio
// 2^(offset/12). The outputs keep the base note's sample rate, so a key an
// octave up plays a buffer half as long and an octave down twice as long.
//
// Piano owns the resulting Instrument. Loading a new clip rebuilds the whole
// instrument and publishes it atomically; concurrent Play calls see either
// the old or the new instrument in full. Overlapping loads resolve last
// request wins: a build that finishes after a newer one started is thrown
// away. Before any clip is loaded the piano plays a generated tone, so the
// keyboard makes sound from the first keypress.
//
// Both Normalize and Map are deterministic total functions: they cannot fail
// on a valid buffer, and identical inputs produce bit-identical outputs.
package instrument

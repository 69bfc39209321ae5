// SPDX-License-Identifier: EPL-2.0

// Package openwah turns any short sound clip into a two-octave sample piano.
//
// One base clip is decoded, normalized to a one second base note and
// pitch-mapped across the C3..C5 keyboard, so every key plays the same
// timbre at its own pitch.
//
// # Quick start
//
//	registry := openwah.DefaultRegistry()
//	inst, err := openwah.BuildInstrument(registry, "meow.wav")
//	if err != nil {
//	    // previous instrument stays valid; report and carry on
//	}
//	buf, _ := inst.Note(60) // the clip itself, normalized
//	buf, _ = inst.Note(72)  // one octave up, half the frames
//
// For interactive use the instrument package adds Piano, which owns the
// current instrument, swaps rebuilds in atomically and plays notes through a
// playback sink. The cmd/openwah binary wires all of it to a terminal UI,
// and cmd/openwah-render exports every key of an instrument to WAV files.
//
// # Supported formats
//
// WAV, MP3, Ogg Vorbis and AIFF decoders are bundled under formats/ and
// registered by file extension in DefaultRegistry. Decoders are looked up
// through the audio.Registry capability interface, so adding a format never
// touches the pipeline.
package openwah

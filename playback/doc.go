// Package playback implements sinks that consume playable buffers: a beep
// speaker for the default output device and a Null sink for tests.
package playback

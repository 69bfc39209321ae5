// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives the sample piano is built on.
//
// # Buffer
//
// Buffer is the unit of exchange between every component: an immutable
// container of interleaved float32 samples in [-1,1] with a sample rate and
// channel count. Decoders produce Buffers (via Collect), the note normalizer
// and pitch mapper derive new Buffers, and the playback sink consumes them.
// Because Buffers are never mutated after construction, they can be shared
// across goroutines freely.
//
// # Source and Decoder
//
// Source is the streaming interface implemented by the format decoders:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders for specific containers live in the formats subpackages and are
// looked up through a Registry keyed by file extension, so nothing outside a
// decoder ever branches on the audio format:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	d, ok := registry.Get("wav")
//
// # Rate conversion and downmix
//
// Resample converts a Buffer between sample rates with Catmull-Rom cubic
// interpolation; it preserves pitch and exists for device boundaries (the
// speaker runs at one fixed rate, exported WAV files at another). DownmixMono
// averages channels. Neither is part of pitch mapping, which has its own
// resampler in the instrument package.
//
// # Sample format
//
// Samples are float32 in [-1.0, 1.0]; 0.0 is silence. Multichannel data is
// interleaved, and lengths are counted in samples unless a function says
// frames (samples per channel).
package audio

// SPDX-License-Identifier: EPL-2.0

package instrument

import (
	"math"
	"time"

	"github.com/EricSpeidel/OpenWah/audio"
)

// BaseNoteDuration is the fixed length every base note is normalized to.
const BaseNoteDuration = time.Second

// BaseNote is a buffer whose duration is exactly the normalization target,
// to sample-accurate length. It is the reference waveform the pitch mapper
// derives every key from.
type BaseNote struct {
	*audio.Buffer
}

// Normalize trims or zero-pads b to exactly target worth of frames at b's
// sample rate. Sample rate and channel count are preserved; only the time
// extent changes, which keeps normalization and pitch shifting orthogonal.
// It is a total function: an empty input yields a base note of pure silence.
func Normalize(b *audio.Buffer, target time.Duration) BaseNote {
	targetFrames := int(math.Round(target.Seconds() * float64(b.SampleRate())))
	if targetFrames < 0 {
		targetFrames = 0
	}

	frames := b.Frames()
	if frames == targetFrames {
		return BaseNote{b}
	}

	channels := b.Channels()
	samples := make([]float32, targetFrames*channels)
	copy(samples, b.Samples()) // truncates or leaves a zero tail

	out, err := audio.NewBuffer(b.SampleRate(), channels, samples)
	if err != nil {
		// b already satisfied the invariants and we only changed the length.
		panic(err)
	}
	return BaseNote{out}
}

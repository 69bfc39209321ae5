package instrument

import (
	"math"

	"github.com/EricSpeidel/OpenWah/audio"
)

// DefaultToneRate is the sample rate of the built-in tone.
const DefaultToneRate = 44100

// GeneratedTone synthesizes the deterministic one second mono C4 note the
// piano starts with before any clip is loaded: a small stack of decaying
// harmonics with a short attack ramp so the onset does not click. The same
// rate always produces the same samples.
func GeneratedTone(sampleRate int) *audio.Buffer {
	const freq = 261.6255653005986 // C4

	frames := sampleRate // one second
	samples := make([]float32, frames)

	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		w := 2 * math.Pi * freq * t

		v := math.Sin(w) * math.Exp(-3*t) * 0.5
		v += math.Sin(2*w) * math.Exp(-4*t) * 0.25
		v += math.Sin(3*w) * math.Exp(-5*t) * 0.125
		v += math.Sin(4*w) * math.Exp(-6*t) * 0.0625

		attack := t / 0.005
		if attack > 1 {
			attack = 1
		}
		samples[i] = float32(v * attack)
	}

	b, err := audio.NewBuffer(sampleRate, 1, samples)
	if err != nil {
		panic(err) // mono data cannot break the frame invariant
	}
	return b
}

// SPDX-License-Identifier: EPL-2.0

package instrument

import (
	"math"

	"github.com/EricSpeidel/OpenWah/audio"
	"github.com/EricSpeidel/OpenWah/keyboard"
	"github.com/EricSpeidel/OpenWah/utils"
)

// PitchShift resamples b by the equal-tempered ratio 2^(semitones/12) and
// returns a buffer tagged with the original sample rate. Positive offsets
// compress the waveform in time (fewer frames, higher perceived pitch),
// negative offsets stretch it. Output frame i is read from fractional source
// position i*ratio with linear interpolation; positions past the end read as
// silence.
//
// A zero offset returns b itself, so the reference key plays the base note
// bit for bit. The function is deterministic and never fails on a valid
// buffer.
func PitchShift(b *audio.Buffer, semitones int) *audio.Buffer {
	if semitones == 0 {
		return b
	}

	ratio := math.Pow(2, float64(semitones)/12.0)
	srcFrames := b.Frames()
	channels := b.Channels()
	dstFrames := int(math.Round(float64(srcFrames) / ratio))

	samples := make([]float32, dstFrames*channels)
	for i := 0; i < dstFrames; i++ {
		pos := float64(i) * ratio
		i0 := int(pos)
		frac := float32(pos - float64(i0))

		for c := 0; c < channels; c++ {
			s0 := b.Sample(i0, c)
			s1 := b.Sample(i0+1, c)
			samples[i*channels+c] = utils.Lerp(s0, s1, frac)
		}
	}

	out, err := audio.NewBuffer(b.SampleRate(), channels, samples)
	if err != nil {
		panic(err) // samples is frame aligned by construction
	}
	return out
}

// Map derives one playable buffer per layout key from the base note, keyed
// by note number. Rebuilding from the same base note and layout is bit for
// bit reproducible.
func Map(base BaseNote, layout *keyboard.Layout) *Instrument {
	notes := make(map[int]*audio.Buffer, layout.Len())
	for _, key := range layout.Keys() {
		notes[key.Note] = PitchShift(base.Buffer, key.Offset)
	}

	return &Instrument{
		layout: layout,
		notes:  notes,
	}
}

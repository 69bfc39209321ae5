// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/EricSpeidel/OpenWah/utils"
)

// Resample converts b to dstRate using Catmull-Rom cubic interpolation,
// preserving perceived pitch and channel count. This is rate conversion for
// a device boundary (speaker or file export); pitch shifting is a separate
// concern and deliberately does not go through here.
//
// Positions outside the buffer read as silence, so edge frames interpolate
// toward zero instead of indexing out of range.
func Resample(b *Buffer, dstRate int) *Buffer {
	if dstRate <= 0 || b.SampleRate() == dstRate || b.Empty() {
		return b
	}

	srcFrames := b.Frames()
	channels := b.Channels()
	step := float64(b.SampleRate()) / float64(dstRate)
	dstFrames := int(math.Round(float64(srcFrames) / step))

	samples := make([]float32, dstFrames*channels)
	for i := 0; i < dstFrames; i++ {
		pos := float64(i) * step
		i1 := int(pos)
		frac := float32(pos - float64(i1))

		for c := 0; c < channels; c++ {
			y0 := b.Sample(i1-1, c)
			y1 := b.Sample(i1, c)
			y2 := b.Sample(i1+1, c)
			y3 := b.Sample(i1+2, c)
			samples[i*channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, frac)
		}
	}

	return &Buffer{
		sampleRate: dstRate,
		channels:   channels,
		samples:    samples,
	}
}

package audio

// DownmixMono folds a multichannel buffer to mono by averaging the channels
// of each frame. Mono input is returned unchanged.
func DownmixMono(b *Buffer) *Buffer {
	channels := b.Channels()
	if channels == 1 {
		return b
	}

	frames := b.Frames()
	src := b.Samples()
	samples := make([]float32, frames)
	inv := float32(1.0) / float32(channels)

	switch channels {
	case 2: // stereo, by far the common case
		for f := 0; f < frames; f++ {
			samples[f] = (src[f*2] + src[f*2+1]) * 0.5
		}
	default:
		for f := 0; f < frames; f++ {
			var sum float32
			base := f * channels
			for c := 0; c < channels; c++ {
				sum += src[base+c]
			}
			samples[f] = sum * inv
		}
	}

	return &Buffer{
		sampleRate: b.SampleRate(),
		channels:   1,
		samples:    samples,
	}
}

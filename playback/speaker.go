package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/EricSpeidel/OpenWah/audio"
)

// DefaultGain scales every played buffer so overlapping notes have headroom
// before they clip.
const DefaultGain = 0.7

var initOnce sync.Once

// Speaker plays buffers through the default output device via the beep
// speaker. Buffers at other sample rates are converted to the device rate
// before playback; playing is fire-and-forget and notes overlap freely.
type Speaker struct {
	rate int
	gain float64
}

// NewSpeaker opens the output device at rate Hz with a ~50ms buffer.
// The underlying speaker is process-wide, so the first call decides the
// device rate.
func NewSpeaker(rate int) (*Speaker, error) {
	var err error
	initOnce.Do(func() {
		sr := beep.SampleRate(rate)
		err = speaker.Init(sr, sr.N(50*time.Millisecond))
	})
	if err != nil {
		return nil, fmt.Errorf("opening output device: %w", err)
	}

	return &Speaker{rate: rate, gain: DefaultGain}, nil
}

// Play converts b to the device rate if needed and queues it. It returns as
// soon as the note is queued; the device drains it in the background.
func (s *Speaker) Play(b *audio.Buffer) error {
	if b.Empty() {
		return nil
	}
	speaker.Play(newStreamer(audio.Resample(b, s.rate), s.gain))
	return nil
}

// Close shuts down the output device.
func (s *Speaker) Close() error {
	speaker.Close()
	return nil
}

// streamer adapts an immutable buffer to beep's pull model. Mono buffers
// play on both channels; extra channels beyond stereo are dropped.
type streamer struct {
	buf  *audio.Buffer
	gain float64
	pos  int
}

func newStreamer(b *audio.Buffer, gain float64) *streamer {
	return &streamer{buf: b, gain: gain}
}

func (st *streamer) Stream(samples [][2]float64) (int, bool) {
	frames := st.buf.Frames()
	if st.pos >= frames {
		return 0, false
	}

	n := 0
	for i := range samples {
		if st.pos >= frames {
			break
		}
		left := float64(st.buf.Sample(st.pos, 0)) * st.gain
		right := left
		if st.buf.Channels() > 1 {
			right = float64(st.buf.Sample(st.pos, 1)) * st.gain
		}
		samples[i][0] = left
		samples[i][1] = right
		st.pos++
		n++
	}
	return n, true
}

func (st *streamer) Err() error { return nil }

// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// Buffer is an immutable container of decoded PCM audio: interleaved float32
// samples in [-1,1] plus the sample rate they were captured at. Once
// constructed a Buffer is never modified; components exchange Buffers by
// reference and derive new ones instead of mutating in place.
type Buffer struct {
	sampleRate int
	channels   int
	samples    []float32
}

// NewBuffer validates the PCM invariants and wraps samples in a Buffer.
// The caller hands over ownership of samples and must not modify it afterwards.
func NewBuffer(sampleRate, channels int, samples []float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return nil, ErrPartialFrame
	}

	return &Buffer{
		sampleRate: sampleRate,
		channels:   channels,
		samples:    samples,
	}, nil
}

// Silence returns a buffer of the given length containing only zero samples.
func Silence(sampleRate, channels, frames int) *Buffer {
	if frames < 0 {
		frames = 0
	}
	return &Buffer{
		sampleRate: sampleRate,
		channels:   channels,
		samples:    make([]float32, frames*channels),
	}
}

// SampleRate of the PCM data in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Channels count (1=mono, 2=stereo).
func (b *Buffer) Channels() int { return b.channels }

// Samples returns the interleaved sample data. The slice is shared, not
// copied; callers must treat it as read-only.
func (b *Buffer) Samples() []float32 { return b.samples }

// Frames is the number of samples per channel.
func (b *Buffer) Frames() int { return len(b.samples) / b.channels }

// Duration of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(float64(b.Frames()) / float64(b.sampleRate) * float64(time.Second))
}

// Empty reports whether the buffer holds no frames.
func (b *Buffer) Empty() bool { return len(b.samples) == 0 }

// Sample returns the value at frame for channel ch. Positions outside the
// buffer read as silence, which keeps interpolation at the edges total.
func (b *Buffer) Sample(frame, ch int) float32 {
	if frame < 0 || frame >= b.Frames() {
		return 0
	}
	return b.samples[frame*b.channels+ch]
}

// Clone returns a Buffer with its own copy of the sample data.
func (b *Buffer) Clone() *Buffer {
	samples := make([]float32, len(b.samples))
	copy(samples, b.samples)
	return &Buffer{
		sampleRate: b.sampleRate,
		channels:   b.channels,
		samples:    samples,
	}
}

// Collect drains src into a Buffer. maxFrames caps how many frames are read
// (per channel); pass 0 or a negative value for no cap. Decoders for long
// files keep streaming until EOF, so callers that only need the head of a
// clip should set a cap rather than hold the whole file in memory.
func Collect(src Source, maxFrames int) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	var samples []float32
	buf := make([]float32, 4096-4096%channels)

	for {
		if maxFrames > 0 {
			framesLeft := maxFrames - len(samples)/channels
			if framesLeft <= 0 {
				break
			}
			if framesLeft*channels < len(buf) {
				buf = buf[:framesLeft*channels]
			}
		}

		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}

	// Drop a trailing partial frame; some decoders report sample counts that
	// are not frame aligned at end of stream.
	samples = samples[:len(samples)-len(samples)%channels]

	return NewBuffer(src.SampleRate(), channels, samples)
}

// BufferSource adapts a Buffer back into a streaming Source so buffers can be
// fed through rate conversion and downmix stages.
type BufferSource struct {
	buf *Buffer
	pos int
}

func NewBufferSource(b *Buffer) *BufferSource {
	return &BufferSource{buf: b}
}

func (s *BufferSource) SampleRate() int { return s.buf.SampleRate() }
func (s *BufferSource) Channels() int   { return s.buf.Channels() }
func (s *BufferSource) BufSize() int    { return 4096 }
func (s *BufferSource) Close() error    { return nil }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	samples := s.buf.Samples()
	if s.pos >= len(samples) {
		return 0, io.EOF
	}

	n := copy(dst, samples[s.pos:])
	// Keep reads frame aligned so downstream stages see whole frames.
	n -= n % s.buf.Channels()
	s.pos += n

	if s.pos >= len(samples) {
		return n, io.EOF
	}
	return n, nil
}

// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	failWith   error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := len(buf.Data)
	if n > len(m.samples)-m.offset {
		n = len(m.samples) - m.offset
	}

	copy(buf.Data, m.samples[m.offset:m.offset+n])
	m.offset += n

	return n, nil
}

func newMockSource(rate, channels, bitDepth int, samples []int) (*source, *mockAiffReader) {
	mock := &mockAiffReader{sampleRate: rate, channels: channels, samples: samples}
	return &source{
		dec:        mock,
		sampleRate: rate,
		channels:   channels,
		bitDepth:   bitDepth,
	}, mock
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not AIFF data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecoder_PlainReaderInput(t *testing.T) {
	t.Parallel()

	// Not an io.ReadSeeker, and not AIFF either: the buffering path still
	// runs before validation rejects the data.
	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewBufferString("FORMAT? no"))

	if err == nil {
		t.Error("Decode() error = nil, want error")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(44100, 2, 16, make([]int, 100))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive value", src.BufSize())
	}
}

func TestSource_ReadSamples_16Bit(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(8000, 1, 16, []int{0, 16384, 32767, -16384, -32768})

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}

	expected := []float32{0.0, 0.5, 1.0, -0.5, -1.0}
	for i := 0; i < n; i++ {
		if math.Abs(float64(dst[i]-expected[i])) > 0.01 {
			t.Errorf("dst[%d] = %v, want ≈%v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_8Bit(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(8000, 1, 8, []int{0, 64, 127, -64, -128})

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	expected := []float32{0.0, 0.5, 0.9921875, -0.5, -1.0}
	for i := 0; i < n; i++ {
		if math.Abs(float64(dst[i]-expected[i])) > 0.01 {
			t.Errorf("dst[%d] = %v, want ≈%v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_24Bit(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(8000, 1, 24, []int{0, 4194304, 8388607, -8388608})

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	expected := []float32{0.0, 0.5, 1.0, -1.0}
	for i := 0; i < n; i++ {
		if math.Abs(float64(dst[i]-expected[i])) > 0.01 {
			t.Errorf("dst[%d] = %v, want ≈%v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(8000, 1, 16, make([]int, 100))

	n, err := src.ReadSamples(nil)

	if err != nil {
		t.Errorf("ReadSamples() with empty buffer error = %v, want nil", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(8000, 1, 16, []int{100, 200})

	dst := make([]float32, 4)
	n1, err1 := src.ReadSamples(dst)

	if err1 != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err1)
	}
	if n1 != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n1)
	}

	n2, err2 := src.ReadSamples(dst)
	if err2 != io.EOF {
		t.Errorf("Second ReadSamples() error = %v, want io.EOF", err2)
	}
	if n2 != 0 {
		t.Errorf("Second ReadSamples() n = %d, want 0", n2)
	}
}

func TestSource_ReadSamples_ReadError(t *testing.T) {
	t.Parallel()

	src, mock := newMockSource(8000, 1, 16, nil)
	mock.failWith = io.ErrUnexpectedEOF

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)

	if err != io.ErrUnexpectedEOF {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src, _ := newMockSource(44100, 2, 16, make([]int, 100))

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"

	"github.com/EricSpeidel/OpenWah/internal/audiotest"
)

func collect(t *testing.T, src Source) *Buffer {
	t.Helper()

	b, err := Collect(src, 0)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return b
}

func TestResample_SameRatePassthrough(t *testing.T) {
	t.Parallel()

	b := collect(t, audiotest.NewSineSource(8000, 1, 800, 440.0))

	out := Resample(b, 8000)
	if out != b {
		t.Error("Resample() to the same rate should return the buffer unchanged")
	}
}

func TestResample_Downsampling(t *testing.T) {
	t.Parallel()

	b := collect(t, audiotest.NewSineSource(44100, 1, 44100, 440.0))

	out := Resample(b, 8000)

	if out.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", out.SampleRate())
	}
	if math.Abs(float64(out.Frames()-8000)) > 1 {
		t.Errorf("Frames() = %d, want ≈8000", out.Frames())
	}
	for i, s := range out.Samples() {
		if s < -1.5 || s > 1.5 {
			t.Fatalf("samples[%d] = %v, outside reasonable range", i, s)
		}
	}
}

func TestResample_Upsampling(t *testing.T) {
	t.Parallel()

	b := collect(t, audiotest.NewSineSource(8000, 1, 8000, 440.0))

	out := Resample(b, 44100)

	if out.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", out.SampleRate())
	}
	if math.Abs(float64(out.Frames()-44100)) > 1 {
		t.Errorf("Frames() = %d, want ≈44100", out.Frames())
	}
}

func TestResample_StereoPreserved(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(44100, 2, 1000, func(frame, channel int) float32 {
		if channel == 0 {
			return 0.3
		}
		return 0.7
	})
	b := collect(t, src)

	out := Resample(b, 22050)

	if out.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", out.Channels())
	}

	// Interior frames should keep the per-channel levels; edges interpolate
	// toward silence.
	for f := 2; f < out.Frames()-2; f++ {
		left := out.Sample(f, 0)
		right := out.Sample(f, 1)
		if math.Abs(float64(left-0.3)) > 0.05 {
			t.Fatalf("frame %d left = %v, want ≈0.3", f, left)
		}
		if math.Abs(float64(right-0.7)) > 0.05 {
			t.Fatalf("frame %d right = %v, want ≈0.7", f, right)
		}
	}
}

func TestResample_EmptyBuffer(t *testing.T) {
	t.Parallel()

	b := Silence(44100, 1, 0)

	out := Resample(b, 8000)
	if !out.Empty() {
		t.Errorf("Resample() of empty buffer has %d frames, want 0", out.Frames())
	}
}

func TestDownmixMono_StereoAverage(t *testing.T) {
	t.Parallel()

	b, err := NewBuffer(8000, 2, []float32{0.2, 0.6, -0.4, 0.4})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	out := DownmixMono(b)

	if out.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", out.Channels())
	}
	want := []float32{0.4, 0.0}
	for i, w := range want {
		if got := out.Samples()[i]; math.Abs(float64(got-w)) > 1e-6 {
			t.Errorf("Samples()[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestDownmixMono_MonoPassthrough(t *testing.T) {
	t.Parallel()

	b := Silence(8000, 1, 10)
	if out := DownmixMono(b); out != b {
		t.Error("DownmixMono() of mono buffer should return it unchanged")
	}
}

func TestDownmixMono_QuadAverage(t *testing.T) {
	t.Parallel()

	b, err := NewBuffer(8000, 4, []float32{0.4, 0.4, 0.4, 0.4, 0.1, 0.2, 0.3, 0.4})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	out := DownmixMono(b)

	want := []float32{0.4, 0.25}
	for i, w := range want {
		if got := out.Samples()[i]; math.Abs(float64(got-w)) > 1e-6 {
			t.Errorf("Samples()[%d] = %v, want %v", i, got, w)
		}
	}
}

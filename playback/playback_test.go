// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"math"
	"testing"

	"github.com/EricSpeidel/OpenWah/audio"
)

func TestNull_Play(t *testing.T) {
	t.Parallel()

	b := audio.Silence(44100, 1, 100)

	if err := (Null{}).Play(b); err != nil {
		t.Errorf("Play() error = %v, want nil", err)
	}
	if err := (Null{}).Play(nil); err != nil {
		t.Errorf("Play(nil) error = %v, want nil", err)
	}
}

func TestStreamer_MonoPlaysOnBothChannels(t *testing.T) {
	t.Parallel()

	b, err := audio.NewBuffer(44100, 1, []float32{0.5, -0.5, 0.25})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	st := newStreamer(b, 1.0)

	out := make([][2]float64, 3)
	n, ok := st.Stream(out)

	if !ok {
		t.Fatal("Stream() ok = false, want true")
	}
	if n != 3 {
		t.Fatalf("Stream() n = %d, want 3", n)
	}

	for i, want := range []float64{0.5, -0.5, 0.25} {
		if math.Abs(out[i][0]-want) > 1e-6 || math.Abs(out[i][1]-want) > 1e-6 {
			t.Errorf("frame %d = (%v, %v), want (%v, %v) on both channels",
				i, out[i][0], out[i][1], want, want)
		}
	}
}

func TestStreamer_StereoKeepsChannels(t *testing.T) {
	t.Parallel()

	b, err := audio.NewBuffer(44100, 2, []float32{0.5, -0.5, 0.25, -0.25})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	st := newStreamer(b, 1.0)

	out := make([][2]float64, 2)
	n, ok := st.Stream(out)

	if !ok || n != 2 {
		t.Fatalf("Stream() = (%d, %v), want (2, true)", n, ok)
	}

	if math.Abs(out[0][0]-0.5) > 1e-6 || math.Abs(out[0][1]-(-0.5)) > 1e-6 {
		t.Errorf("frame 0 = (%v, %v), want (0.5, -0.5)", out[0][0], out[0][1])
	}
	if math.Abs(out[1][0]-0.25) > 1e-6 || math.Abs(out[1][1]-(-0.25)) > 1e-6 {
		t.Errorf("frame 1 = (%v, %v), want (0.25, -0.25)", out[1][0], out[1][1])
	}
}

func TestStreamer_AppliesGain(t *testing.T) {
	t.Parallel()

	b, err := audio.NewBuffer(44100, 1, []float32{1.0})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	st := newStreamer(b, DefaultGain)

	out := make([][2]float64, 1)
	st.Stream(out)

	if math.Abs(out[0][0]-DefaultGain) > 1e-6 {
		t.Errorf("gained sample = %v, want %v", out[0][0], DefaultGain)
	}
}

func TestStreamer_EndsAfterBuffer(t *testing.T) {
	t.Parallel()

	b, err := audio.NewBuffer(44100, 1, []float32{0.1, 0.2})
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	st := newStreamer(b, 1.0)

	out := make([][2]float64, 8)
	n1, ok1 := st.Stream(out)
	if n1 != 2 || !ok1 {
		t.Fatalf("first Stream() = (%d, %v), want (2, true)", n1, ok1)
	}

	n2, ok2 := st.Stream(out)
	if n2 != 0 || ok2 {
		t.Errorf("drained Stream() = (%d, %v), want (0, false)", n2, ok2)
	}

	if st.Err() != nil {
		t.Errorf("Err() = %v, want nil", st.Err())
	}
}

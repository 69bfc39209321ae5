package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"silence", 0.0, 0},
		{"full positive", 1.0, 32767},
		{"full negative", -1.0, -32767},
		{"half positive", 0.5, 16383},
		{"clamps above range", 1.5, 32767},
		{"clamps below range", -1.5, -32767},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.in); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

package window

import "testing"

func TestPixelRatio(t *testing.T) {
	tests := []struct {
		logical, drawable int
		want              float32
	}{
		{1024, 1024, 1},
		{1024, 2048, 2},
		{800, 1200, 1.5},
		{0, 1200, 1},
		{800, 0, 1},
	}
	for _, tt := range tests {
		if got := pixelRatio(tt.logical, tt.drawable); got != tt.want {
			t.Errorf("pixelRatio(%d, %d) = %v, want %v", tt.logical, tt.drawable, got, tt.want)
		}
	}
}

package text

import (
	"image/color"
	"testing"

	"github.com/Faultbox/primview/pkg/math"
)

func TestNewFace(t *testing.T) {
	face, err := NewFace(nil, 18)
	if err != nil {
		t.Fatalf("NewFace() error = %v", err)
	}
	defer face.Close()

	if h := face.Metrics().Height.Ceil(); h < 18 || h > 30 {
		t.Errorf("line height = %d, want about 18-30px", h)
	}
}

func TestNewFaceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		size float64
	}{
		{"zero size", nil, 0},
		{"negative size", nil, -4},
		{"not a font", []byte("definitely not a font"), 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFace(tt.data, tt.size); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRasterize(t *testing.T) {
	face, err := NewFace(nil, 18)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	yellow := color.RGBA{R: 255, G: 255, A: 255}
	short := Rasterize(face, "Hi", yellow)
	long := Rasterize(face, "Hi there, teapot", yellow)

	if long.Bounds().Dx() <= short.Bounds().Dx() {
		t.Errorf("longer text should be wider: %d <= %d", long.Bounds().Dx(), short.Bounds().Dx())
	}
	if short.Bounds().Dy() != long.Bounds().Dy() {
		t.Errorf("single-line heights differ: %d vs %d", short.Bounds().Dy(), long.Bounds().Dy())
	}

	var opaque, blue int
	for i := 0; i < len(long.Pix); i += 4 {
		if long.Pix[i+3] == 0xff {
			opaque++
		}
		if long.Pix[i+2] != 0 {
			blue++
		}
	}
	if opaque == 0 {
		t.Error("no fully covered pixels")
	}
	if blue != 0 {
		t.Errorf("%d pixels carry blue in yellow text", blue)
	}
}

func TestRasterizeEmpty(t *testing.T) {
	face, err := NewFace(nil, 12)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	img := Rasterize(face, "", color.White)
	if img.Bounds().Dx() != 1 {
		t.Errorf("width = %d, want 1", img.Bounds().Dx())
	}
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatal("empty text should leave the image transparent")
		}
	}
}

func TestQuadVertices(t *testing.T) {
	q := quadVertices(10, 20, 100, 30)

	corners := map[[2]float32][2]float32{}
	for i := 0; i < len(q); i += 4 {
		corners[[2]float32{q[i], q[i+1]}] = [2]float32{q[i+2], q[i+3]}
	}

	want := map[[2]float32][2]float32{
		{10, 20}:  {0, 0},
		{110, 20}: {1, 0},
		{10, 50}:  {0, 1},
		{110, 50}: {1, 1},
	}
	if len(corners) != len(want) {
		t.Fatalf("got %d distinct corners, want 4", len(corners))
	}
	for pos, uv := range want {
		if corners[pos] != uv {
			t.Errorf("corner %v uv = %v, want %v", pos, corners[pos], uv)
		}
	}
}

func TestScreenProjection(t *testing.T) {
	p := screenProjection(1024, 720)

	tests := []struct {
		in   math.Vec3
		want math.Vec3
	}{
		{math.Vec3{X: 0, Y: 0}, math.Vec3{X: -1, Y: 1}},
		{math.Vec3{X: 1024, Y: 720}, math.Vec3{X: 1, Y: -1}},
		{math.Vec3{X: 512, Y: 360}, math.Vec3{}},
	}
	for _, tt := range tests {
		// orthographic, so w stays 1
		got := math.Vec3{
			X: p[0]*tt.in.X + p[4]*tt.in.Y + p[8]*tt.in.Z + p[12],
			Y: p[1]*tt.in.X + p[5]*tt.in.Y + p[9]*tt.in.Z + p[13],
			Z: p[2]*tt.in.X + p[6]*tt.in.Y + p[10]*tt.in.Z + p[14],
		}
		if got.Distance(tt.want) > 1e-5 {
			t.Errorf("project %v = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		in   [3]float32
		want color.RGBA
	}{
		{[3]float32{1, 1, 0}, color.RGBA{255, 255, 0, 255}},
		{[3]float32{0.5, -1, 2}, color.RGBA{128, 0, 255, 255}},
	}
	for _, tt := range tests {
		if got := toRGBA(tt.in); got != tt.want {
			t.Errorf("toRGBA(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package thickline

import (
	"image/color"
	"math"
	"testing"
)

func colorNear(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", Red},
		{"00ff00", Green},
		{"#00F", Blue},
		{"fff", White},
		{"#808080", RGB(128.0/255, 128.0/255, 128.0/255)},
		{"", Black},
		{"#12345", Black},
		{"#GG0000", RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); !colorNear(got, tt.want) {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorNRGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		opacity float64
		want    color.NRGBA
	}{
		{"opaque red", Red, 1, color.NRGBA{R: 255, A: 255}},
		{"transparent", White, 0, color.NRGBA{R: 255, G: 255, B: 255}},
		{"out of range", RGB(2, -1, 0.5), 3, color.NRGBA{R: 255, G: 0, B: 127, A: 255}},
	}
	for _, tt := range tests {
		if got := tt.c.NRGBA(tt.opacity); got != tt.want {
			t.Errorf("%s: NRGBA = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 255, A: 128})
	if !colorNear(got, RGB(1, 0, 1)) {
		t.Errorf("FromColor = %+v, want magenta", got)
	}
	if got := FromColor(color.Black); !colorNear(got, Black) {
		t.Errorf("FromColor(black) = %+v", got)
	}
}

//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/thickline"
)

func decodeFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func TestMakeLineUniform(t *testing.T) {
	shared := thickline.NewShared()
	shared.Viewport = thickline.Viewport{X: 10, Y: 20, Width: 800, Height: 600}
	shared.CameraExtents = mgl64.Vec2{8, 6}
	shared.Projection = mgl64.Ortho(-4, 4, -3, 3, 0.1, 100)

	u := &thickline.Uniforms{
		Color:       thickline.RGB(1, 0.5, 0.25),
		Opacity:     0.75,
		Width:       0.1,
		DashLength:  0.2,
		DashOffset:  0.05,
		DrawRange:   mgl64.Vec2{0.25, 0.5},
		TotalLength: 3,
		Shared:      shared,
	}
	world := mgl64.Translate3D(1, 2, 3)

	buf := makeLineUniform(u, world)
	if len(buf) != lineUniformSize {
		t.Fatalf("expected %d bytes, got %d", lineUniformSize, len(buf))
	}

	// Column-major matrices: translation sits in elements 12..14.
	if got := decodeFloat32(buf[offWorld+12*4:]); got != 1 {
		t.Errorf("world[12] = %v, want 1", got)
	}
	if got := decodeFloat32(buf[offWorld+14*4:]); got != 3 {
		t.Errorf("world[14] = %v, want 3", got)
	}
	if got := decodeFloat32(buf[offView:]); got != 1 {
		t.Errorf("view[0] = %v, want 1 (identity)", got)
	}
	if got, want := decodeFloat32(buf[offProjection:]), float32(shared.Projection[0]); got != want {
		t.Errorf("projection[0] = %v, want %v", got, want)
	}

	tests := []struct {
		name string
		off  int
		want float32
	}{
		{"viewport.x", offViewport, 10},
		{"viewport.y", offViewport + 4, 20},
		{"viewport.w", offViewport + 8, 800},
		{"viewport.h", offViewport + 12, 600},
		{"color.r", offColor, 1},
		{"color.g", offColor + 4, 0.5},
		{"color.b", offColor + 8, 0.25},
		{"opacity", offColor + 12, 0.75},
		{"extents.x", offCameraExtents, 8},
		{"extents.y", offCameraExtents + 4, 6},
		{"range.start", offDrawRange, 0.25},
		{"range.end", offDrawRange + 4, 0.5},
		{"width", offWidth, 0.1},
		{"dashLength", offDashLength, 0.2},
		{"dashOffset", offDashOffset, 0.05},
		{"totalLength", offTotalLength, 3},
	}
	for _, tt := range tests {
		if got := decodeFloat32(buf[tt.off:]); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMakeLineUniformNilShared(t *testing.T) {
	u := &thickline.Uniforms{Width: 1}
	buf := makeLineUniform(u, mgl64.Ident4())
	// Falls back to the default shared block: 1x1 viewport.
	if got := decodeFloat32(buf[offViewport+8:]); got != 1 {
		t.Errorf("viewport width = %v, want 1", got)
	}
}

package thickline

import "github.com/go-gl/mathgl/mgl64"

// Default style values for new lines.
const (
	DefaultWidth   = 0.04
	DefaultOpacity = 1.0
)

// Viewport is a rectangle in device pixels.
type Viewport struct {
	X, Y, Width, Height float64
}

// Shared holds the process-wide uniforms that every line reads: the
// current viewport, the camera's world-space extents and its matrices.
//
// Shared is not synchronized. One writer updates it once per frame before
// any line that references it is drawn; lines only read it.
type Shared struct {
	Viewport      Viewport
	CameraExtents mgl64.Vec2
	Projection    mgl64.Mat4
	View          mgl64.Mat4
}

// NewShared returns a shared block for a 1x1 viewport showing one world
// unit, with identity matrices.
func NewShared() *Shared {
	return &Shared{
		Viewport:      Viewport{Width: 1, Height: 1},
		CameraExtents: mgl64.Vec2{1, 1},
		Projection:    mgl64.Ident4(),
		View:          mgl64.Ident4(),
	}
}

var defaultShared = NewShared()

// DefaultShared returns the block used by lines created without WithShared.
func DefaultShared() *Shared { return defaultShared }

// PixelsPerUnit returns how many device pixels one world unit spans
// horizontally at the camera's focal plane.
func (s *Shared) PixelsPerUnit() float64 {
	if s.CameraExtents[0] <= 0 {
		return 1
	}
	return s.Viewport.Width / s.CameraExtents[0]
}

// UnitsPerPixel is the reciprocal of PixelsPerUnit.
func (s *Shared) UnitsPerPixel() float64 {
	return 1 / s.PixelsPerUnit()
}

// Uniforms is the parameter block of one line's shader program. The Line
// setters write into it; the GPU layer packs it into the uniform buffer
// each frame.
type Uniforms struct {
	Color       Color
	Opacity     float64
	Width       float64 // world units
	DashLength  float64 // world units, 0 disables dashing
	DashOffset  float64 // world units
	DrawRange   mgl64.Vec2
	TotalLength float64

	Shared *Shared
}

func defaultUniforms() Uniforms {
	return Uniforms{
		Color:     White,
		Opacity:   DefaultOpacity,
		Width:     DefaultWidth,
		DrawRange: mgl64.Vec2{0, 1},
		Shared:    defaultShared,
	}
}

// HalfWidthPixels returns half the line width in device pixels for a point
// whose clip-space w is clipW. For orthographic cameras w is 1 and the
// width is constant on screen.
func (u *Uniforms) HalfWidthPixels(clipW float64) float64 {
	if clipW == 0 {
		clipW = 1
	}
	return 0.5 * u.Width * u.Shared.projectedPixelsPerUnit() / clipW
}

// projectedPixelsPerUnit returns how many device pixels one world unit
// spans horizontally at clip w = 1, read from the projection's x scale.
// Dividing by a point's clip w gives the scale at that point's depth.
// Projections without a positive x scale fall back to PixelsPerUnit.
func (s *Shared) projectedPixelsPerUnit() float64 {
	if sx := s.Projection.At(0, 0); sx > 0 {
		return 0.5 * s.Viewport.Width * sx
	}
	return s.PixelsPerUnit()
}

package thickline

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera bundles the matrices and world extents the line shader needs.
// Extents are the world-space size of the visible frame at the focal plane.
type Camera struct {
	Projection   mgl64.Mat4
	View         mgl64.Mat4
	Extents      mgl64.Vec2
	Orthographic bool
}

const (
	orthoEyeDistance = 50
	orthoNear        = 0.1
	orthoFar         = 100
)

// OrthographicCamera returns a camera looking down -Z at center and
// showing a frame of width x height world units.
func OrthographicCamera(width, height float64, center mgl64.Vec3) Camera {
	eye := center.Add(mgl64.Vec3{0, 0, orthoEyeDistance})
	return Camera{
		Projection:   mgl64.Ortho(-width/2, width/2, -height/2, height/2, orthoNear, orthoFar),
		View:         mgl64.LookAtV(eye, center, mgl64.Vec3{0, 1, 0}),
		Extents:      mgl64.Vec2{width, height},
		Orthographic: true,
	}
}

// PerspectiveCamera returns a camera at eye looking at center. fovy is the
// vertical field of view in radians. Extents are measured at the distance
// between eye and center.
func PerspectiveCamera(fovy, aspect, near, far float64, eye, center, up mgl64.Vec3) Camera {
	dist := center.Sub(eye).Len()
	h := 2 * dist * math.Tan(fovy/2)
	return Camera{
		Projection: mgl64.Perspective(fovy, aspect, near, far),
		View:       mgl64.LookAtV(eye, center, up),
		Extents:    mgl64.Vec2{h * aspect, h},
	}
}

// Apply writes the camera and viewport into the shared uniform block.
func (c Camera) Apply(s *Shared, vp Viewport) {
	s.Viewport = vp
	s.CameraExtents = c.Extents
	s.Projection = c.Projection
	s.View = c.View
}

// RayFromPixel returns the world-space ray through the pixel (px, py) of
// the viewport, with y growing downward.
func (c Camera) RayFromPixel(px, py float64, vp Viewport) Ray {
	ndcX := (px-vp.X)/vp.Width*2 - 1
	ndcY := 1 - (py-vp.Y)/vp.Height*2

	inv := c.Projection.Mul4(c.View).Inv()
	near := unproject(inv, ndcX, ndcY, -1)
	far := unproject(inv, ndcX, ndcY, 1)

	return Ray{
		Origin:    near,
		Direction: far.Sub(near).Normalize(),
		Near:      0,
		Far:       math.Inf(1),
	}
}

func unproject(inv mgl64.Mat4, x, y, z float64) mgl64.Vec3 {
	v := inv.Mul4x1(mgl64.Vec4{x, y, z, 1})
	return v.Vec3().Mul(1 / v[3])
}

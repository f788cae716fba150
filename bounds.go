package thickline

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds encloses every point of a line, both as a sphere around the
// centroid and as an axis-aligned box. Bounds are used to reject rays and
// cull lines early; the shader never reads them.
type Bounds struct {
	Center mgl64.Vec3
	Radius float64
	Min    mgl64.Vec3
	Max    mgl64.Vec3
}

// ComputeBounds returns the bounds of points. The sphere is centered on
// the centroid with the largest point-to-centroid distance as radius.
func ComputeBounds(points []mgl64.Vec3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}

	var sum mgl64.Vec3
	lo, hi := points[0], points[0]
	for _, p := range points {
		sum = sum.Add(p)
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	center := sum.Mul(1 / float64(len(points)))

	var radius float64
	for _, p := range points {
		radius = math.Max(radius, p.Sub(center).Len())
	}

	return Bounds{Center: center, Radius: radius, Min: lo, Max: hi}
}

// Expand returns the bounds grown by margin on every side.
func (b Bounds) Expand(margin float64) Bounds {
	m := mgl64.Vec3{margin, margin, margin}
	return Bounds{
		Center: b.Center,
		Radius: b.Radius + margin,
		Min:    b.Min.Sub(m),
		Max:    b.Max.Add(m),
	}
}

// ContainsPoint reports whether p lies inside the bounding box.
func (b Bounds) ContainsPoint(p mgl64.Vec3) bool {
	for k := 0; k < 3; k++ {
		if p[k] < b.Min[k] || p[k] > b.Max[k] {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether the bounding sphere overlaps the sphere
// at center with the given radius.
func (b Bounds) IntersectsSphere(center mgl64.Vec3, radius float64) bool {
	return b.Center.Sub(center).Len() <= b.Radius+radius
}

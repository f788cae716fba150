package thickline

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PickRadius is the screen-space tolerance, in device pixels, that
// PickThreshold adds around a line.
const PickRadius = 5.0

// Ray is a half line with a valid distance range [Near, Far]. Direction
// must be normalized.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	Near      float64
	Far       float64
}

// NewRay returns a ray with the unbounded range [0, +Inf).
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		Far:       math.Inf(1),
	}
}

// At returns the point at distance s along the ray.
func (r Ray) At(s float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(s))
}

// DistanceToPoint returns the distance between p and the closest point of
// the ray.
func (r Ray) DistanceToPoint(p mgl64.Vec3) float64 {
	s := math.Max(0, p.Sub(r.Origin).Dot(r.Direction))
	return r.At(s).Sub(p).Len()
}

// transform maps the ray through m. The direction is renormalized, so
// distances along the result are in the target space.
func (r Ray) transform(m mgl64.Mat4) Ray {
	o := m.Mul4x1(r.Origin.Vec4(1))
	d := m.Mul4x1(r.Direction.Vec4(0)).Vec3()
	return Ray{
		Origin:    o.Vec3().Mul(1 / o[3]),
		Direction: d.Normalize(),
		Near:      r.Near,
		Far:       r.Far,
	}
}

// Intersection is a pick hit in the shape of a generic scene intersection
// record.
type Intersection struct {
	// Distance from the ray origin to Point, in world units.
	Distance float64
	// Point is the closest point on the ray, in world space.
	Point mgl64.Vec3
	// PointOnLine is the closest point on the hit segment, in world space.
	PointOnLine mgl64.Vec3
	// Segment is the index of the hit segment.
	Segment int
	Object  *Line
}

// closestRaySegment returns the squared distance between the ray and the
// segment a-b together with the ray parameter s >= 0 and the segment
// parameter t in [0, 1] of the closest points.
func closestRaySegment(r Ray, a, b mgl64.Vec3) (distSq, s, t float64) {
	d := r.Direction
	e := b.Sub(a)
	w := r.Origin.Sub(a)

	dd := d.Dot(d)
	ee := e.Dot(e)
	de := d.Dot(e)
	dw := d.Dot(w)
	ew := e.Dot(w)

	if ee < 1e-18 {
		// Segment is a point.
		s = math.Max(0, -dw/dd)
	} else {
		denom := dd*ee - de*de
		if denom > 1e-18 {
			s = math.Max(0, (de*ew-dw*ee)/denom)
		}
		t = (de*s + ew) / ee
		switch {
		case t < 0:
			t = 0
			s = math.Max(0, -dw/dd)
		case t > 1:
			t = 1
			s = math.Max(0, (de-dw)/dd)
		}
	}

	onRay := r.At(s)
	onSeg := a.Add(e.Mul(t))
	diff := onRay.Sub(onSeg)
	return diff.Dot(diff), s, t
}

// PickThreshold returns the world-space pick tolerance for this line: a
// screen radius of pixelRadius converted through the shared camera, plus
// half the line width.
func (l *Line) PickThreshold(pixelRadius float64) float64 {
	return pixelRadius*l.uniforms.Shared.UnitsPerPixel() + l.uniforms.Width/2
}

// Raycast tests the world-space ray against every segment of the line and
// returns the hit nearest to the ray origin. A segment is a candidate when
// its distance to the ray is at most threshold; the hit distance must lie
// within [ray.Near, ray.Far].
//
// A line that has never been built reports no hit.
func (l *Line) Raycast(ray Ray, threshold float64) (Intersection, bool) {
	g, err := l.builder.Geometry()
	if err != nil {
		return Intersection{}, false
	}

	local := ray.transform(l.world.Inv())
	localThreshold := threshold / meanScale(l.world)
	if l.boundsValid && local.DistanceToPoint(l.bounds.Center) > l.bounds.Radius+localThreshold {
		return Intersection{}, false
	}

	limitSq := localThreshold * localThreshold
	var (
		best  Intersection
		found bool
	)
	for i := 0; i < g.Segments(); i++ {
		a, b := g.SegmentEnds(i)
		distSq, s, t := closestRaySegment(local, a, b)
		if distSq > limitSq {
			continue
		}

		point := transformPoint(l.world, local.At(s))
		onLine := transformPoint(l.world, a.Add(b.Sub(a).Mul(t)))
		dist := ray.Origin.Sub(point).Len()
		if dist < ray.Near || dist > ray.Far {
			continue
		}
		if found && dist >= best.Distance {
			continue
		}
		best = Intersection{
			Distance:    dist,
			Point:       point,
			PointOnLine: onLine,
			Segment:     i,
			Object:      l,
		}
		found = true
	}
	return best, found
}

func transformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	return v.Vec3().Mul(1 / v[3])
}

// meanScale returns the average axis scale encoded in m.
func meanScale(m mgl64.Mat4) float64 {
	sx := m.Col(0).Vec3().Len()
	sy := m.Col(1).Vec3().Len()
	sz := m.Col(2).Vec3().Len()
	s := (sx + sy + sz) / 3
	if s == 0 {
		return 1
	}
	return s
}

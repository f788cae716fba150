package thickline

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Covers runs the fragment-stage coverage test for the pixel-space point
// f against this segment. It is the CPU counterpart of fs_main in
// line.wgsl and must stay in step with it.
//
// The predicates are independent: geometric coverage (segment body or
// arrowhead wedge), draw range, dash pattern and join ownership. Cheap
// scalar rejections run before the neighbor tests.
func (s *ScreenSegment) Covers(f mgl64.Vec2, u *Uniforms) bool {
	if u.DrawRange[0] >= u.DrawRange[1] {
		return false
	}

	if s.Role.IsWedge() {
		if !wedgeCovers(s.Start, s.End, f) {
			return false
		}
	} else if !bodyCovers(s.Start, s.End, f, s.HalfWidth) {
		return false
	}

	arc := s.Arc(f)
	if arc < u.DrawRange[0] || arc > u.DrawRange[1] {
		return false
	}
	if !dashOn(arc, u) {
		return false
	}

	return s.ownsJoin(f)
}

// ownsJoin applies the join ownership rule: the next segment owns the
// shared join disk, so fragments it covers are dropped here. A pre-arrow
// segment cedes to the arrowhead wedge instead.
func (s *ScreenSegment) ownsJoin(f mgl64.Vec2) bool {
	if s.Next.Sub(s.End).Len() < degenerateEpsilon {
		return true
	}
	if s.Role.IsPreArrow() {
		return !wedgeCovers(s.End, s.Next, f)
	}
	return !bodyCovers(s.End, s.Next, f, s.HalfWidth)
}

// Arc returns the normalized arc-length coordinate of f. Inside the
// segment's extent it interpolates between Proportion and EndProportion;
// in the start and end caps it is measured on the neighboring segment so
// that dash and draw-range boundaries cross joins continuously.
func (s *ScreenSegment) Arc(f mgl64.Vec2) float64 {
	length := s.Length()
	if length < degenerateEpsilon {
		return clamp01(s.Proportion)
	}
	t := f.Sub(s.Start).Dot(s.End.Sub(s.Start)) / (length * length)

	var arc float64
	switch {
	case t < 0 && s.Previous.Sub(s.Start).Len() >= degenerateEpsilon:
		arc = lerp(s.PreviousProportion, s.previousEndProportion(), projectOnto(s.Previous, s.Start, f))
	case t > 1 && s.Next.Sub(s.End).Len() >= degenerateEpsilon:
		arc = lerp(s.EndProportion, s.NextProportion, projectOnto(s.End, s.Next, f))
	default:
		arc = lerp(s.Proportion, s.EndProportion, clamp01(t))
	}
	return clamp01(arc)
}

// bodyCovers reports whether f lies within hw of the segment a-b, that is
// inside the rectangle spanned by the segment or one of the end disks.
func bodyCovers(a, b, f mgl64.Vec2, hw float64) bool {
	if f.Sub(a).Len() <= hw || f.Sub(b).Len() <= hw {
		return true
	}
	ab := b.Sub(a)
	length := ab.Len()
	if length < degenerateEpsilon {
		return false
	}
	dir := ab.Mul(1 / length)
	af := f.Sub(a)
	t := af.Dot(dir)
	if t < 0 || t > length {
		return false
	}
	d := math.Abs(af[0]*dir[1] - af[1]*dir[0])
	return d <= hw
}

// wedgeCovers reports whether f lies in the arrowhead triangle whose base
// is centered on base and whose apex is tip.
func wedgeCovers(base, tip, f mgl64.Vec2) bool {
	ab := tip.Sub(base)
	length := ab.Len()
	if length < degenerateEpsilon {
		return false
	}
	dir := ab.Mul(1 / length)
	af := f.Sub(base)
	t := af.Dot(dir)
	if t < 0 || t > length {
		return false
	}
	d := math.Abs(af[0]*dir[1] - af[1]*dir[0])
	return d <= length*wedgeSlope*(1-t/length)
}

// dashOn reports whether arc falls in an "on" dash. A dash length of zero
// disables dashing.
func dashOn(arc float64, u *Uniforms) bool {
	if u.DashLength <= 0 {
		return true
	}
	k := math.Floor((arc*u.TotalLength + u.DashOffset) / u.DashLength)
	return k-2*math.Floor(k/2) < 0.5
}

// projectOnto returns the clamped parameter of f projected onto a-b.
func projectOnto(a, b, f mgl64.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return 0
	}
	return clamp01(f.Sub(a).Dot(ab) / l2)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp01(x float64) float64 { return math.Min(math.Max(x, 0), 1) }

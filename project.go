package thickline

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// goldenRatio sets the arrowhead shape: the wedge half-angle satisfies
// tan(halfAngle) = 1 / (2 * goldenRatio).
const goldenRatio = 1.618033988749895

// wedgeSlope is tan of the wedge half-angle.
const wedgeSlope = 1 / (2 * goldenRatio)

// degenerateEpsilon is the screen distance in pixels below which a
// neighbor point is treated as absent.
const degenerateEpsilon = 1e-6

// ScreenSegment is one segment reconstructed in viewport pixel space, the
// way the vertex stage hands it to the fragment stage. Pixel coordinates
// grow rightward and downward from the viewport origin.
type ScreenSegment struct {
	Start, End     mgl64.Vec2
	Previous, Next mgl64.Vec2
	HalfWidth      float64
	Role           CornerFlags

	// Arc coordinates at Previous, Start, End and Next.
	PreviousProportion float64
	Proportion         float64
	EndProportion      float64
	NextProportion     float64

	// clip-space w of Start and End, needed to place corners.
	startW, endW float64
}

// ProjectSegment runs the vertex-stage math for one segment: it projects
// the segment and its neighbors through projection * view * world into
// viewport pixels and derives the on-screen half width.
func ProjectSegment(seg SegmentAttributes, u *Uniforms, world mgl64.Mat4) ScreenSegment {
	s := u.Shared
	mvp := s.Projection.Mul4(s.View).Mul4(world)

	start, startW := toScreen(mvp, seg.Start, s.Viewport)
	end, endW := toScreen(mvp, seg.End, s.Viewport)
	prev, _ := toScreen(mvp, seg.Previous, s.Viewport)
	next, _ := toScreen(mvp, seg.Next, s.Viewport)

	out := ScreenSegment{
		Start:         start,
		End:           end,
		Previous:      prev,
		Next:          next,
		HalfWidth:     u.HalfWidthPixels(0.5 * (startW + endW)),
		Role:          seg.Role,
		Proportion:    seg.Proportion,
		EndProportion: seg.EndProportion,
		startW:        startW,
		endW:          endW,
	}

	// Arc coordinates of the neighbor points, from world-space distances.
	out.PreviousProportion = seg.Proportion
	out.NextProportion = seg.EndProportion
	if u.TotalLength > 0 {
		back := seg.Start.Sub(seg.Previous).Len() / u.TotalLength
		if seg.Proportion <= 0 && back > 0 {
			// First segment of a closed path: the previous segment is the
			// closing edge, which ends at arc 1.
			out.PreviousProportion = 1 - back
		} else {
			out.PreviousProportion -= back
		}
		out.NextProportion += seg.Next.Sub(seg.End).Len() / u.TotalLength
	}
	return out
}

// previousEndProportion returns the arc coordinate at the end of the
// previous segment: Proportion, or 1 when the arc wraps around the
// closure of a closed path.
func (s *ScreenSegment) previousEndProportion() float64 {
	if s.PreviousProportion > s.Proportion {
		return 1
	}
	return s.Proportion
}

// toScreen maps a model-space point to viewport pixels and returns its
// clip-space w alongside.
func toScreen(mvp mgl64.Mat4, p mgl64.Vec3, vp Viewport) (mgl64.Vec2, float64) {
	clip := mvp.Mul4x1(p.Vec4(1))
	w := clip[3]
	if math.Abs(w) < degenerateEpsilon {
		w = 1
	}
	ndcX, ndcY := clip[0]/w, clip[1]/w
	return mgl64.Vec2{
		vp.X + (ndcX*0.5+0.5)*vp.Width,
		vp.Y + (0.5-ndcY*0.5)*vp.Height,
	}, w
}

// Direction returns the unit screen direction from Start to End, or +X
// for a segment that collapses to a point on screen.
func (s *ScreenSegment) Direction() mgl64.Vec2 {
	d := s.End.Sub(s.Start)
	l := d.Len()
	if l < degenerateEpsilon {
		return mgl64.Vec2{1, 0}
	}
	return d.Mul(1 / l)
}

// Length returns the on-screen length of the segment in pixels.
func (s *ScreenSegment) Length() float64 {
	return s.End.Sub(s.Start).Len()
}

// WedgeHalfWidth returns the half width of the arrowhead at its base.
func (s *ScreenSegment) WedgeHalfWidth() float64 {
	return s.Length() * wedgeSlope
}

// Extent returns how far the quad reaches beyond the centerline.
func (s *ScreenSegment) Extent() float64 {
	if s.Role.IsWedge() {
		return math.Max(s.HalfWidth, s.WedgeHalfWidth())
	}
	return s.HalfWidth
}

// Corner returns the pixel position of the quad corner encoded by flags:
// the corner's anchor offset by Extent * (segment vector + normal), where
// the segment vector points away from the segment at either end.
func (s *ScreenSegment) Corner(flags CornerFlags) mgl64.Vec2 {
	dir := s.Direction()
	anchor := s.Start
	along := dir.Mul(-1)
	if flags.IsEnd() {
		anchor = s.End
		along = dir
	}
	normal := mgl64.Vec2{-dir[1], dir[0]}.Mul(flags.Side())
	return anchor.Add(along.Add(normal).Mul(s.Extent()))
}

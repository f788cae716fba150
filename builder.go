package thickline

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ClosedEpsilon is the distance below which the first and last points of a
// path are considered coincident, making the path closed.
const ClosedEpsilon = 1e-3

const (
	verticesPerSegment = 4
	indicesPerSegment  = 6
)

// Builder turns point lists into segment quad geometry. A Builder owns the
// geometry buffers it returns; the returned *Geometry is rewritten by the
// next successful Build. Input validation happens before any buffer is
// touched, so a rejected point list leaves the previous geometry intact.
//
// Builder is not safe for concurrent use.
type Builder struct {
	arena      vertexArena
	scratch    []mgl64.Vec3
	cumulative []float64
	built      bool
}

// NewBuilder returns an empty builder. No storage is allocated until the
// first Build.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build writes the segment quads for points into the builder's buffers.
//
// With arrow set, the tail of the path is replaced so that the final
// segment is exactly ArrowLength long and tagged as the arrowhead wedge;
// the segment before it is tagged pre-arrow.
func (b *Builder) Build(points []mgl64.Vec3, arrow bool) (*Geometry, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	var pts []mgl64.Vec3
	if arrow {
		trimmed, err := trimForArrow(b.scratch[:0], points)
		if err != nil {
			return nil, err
		}
		pts = trimmed
	} else {
		pts = append(b.scratch[:0], points...)
	}
	b.scratch = pts

	n := len(pts)
	total := b.accumulate(pts)
	if total <= 0 || !isFinite(total) {
		return nil, fmt.Errorf("%w: %d points", ErrZeroLength, n)
	}

	closed := !arrow && n > 2 && pts[0].Sub(pts[n-1]).Len() < ClosedEpsilon
	segments := n - 1

	b.arena.reserve(segments)
	g := &b.arena.geom

	for i := 0; i < segments; i++ {
		prev, err := previousIndex(i, n, closed)
		if err != nil {
			return nil, err
		}
		next, err := nextIndex(i, n, closed)
		if err != nil {
			return nil, err
		}

		var role CornerFlags
		if arrow {
			switch i {
			case segments - 1:
				role = FlagWedge
			case segments - 2:
				role = FlagPreArrow
			}
		}

		prop := float32(b.cumulative[i] / total)
		endProp := float32(b.cumulative[i+1] / total)
		if i == segments-1 {
			endProp = 1
		}

		g.writeSegment(i, pts[i], pts[i+1], pts[prev], pts[next], role, prop, endProp)
	}

	g.points = append(g.points[:0], pts...)
	g.totalLength = total
	g.closed = closed
	g.arrow = arrow
	g.version++
	b.built = true

	return g, nil
}

// Geometry returns the most recently built geometry.
func (b *Builder) Geometry() (*Geometry, error) {
	if !b.built {
		return nil, ErrNotBuilt
	}
	return &b.arena.geom, nil
}

// Allocations returns how many times the builder allocated storage. A
// rebuild with an unchanged point count never increments it.
func (b *Builder) Allocations() int {
	return b.arena.allocations
}

// accumulate fills b.cumulative with the arc length at every point and
// returns the total length.
func (b *Builder) accumulate(pts []mgl64.Vec3) float64 {
	if cap(b.cumulative) < len(pts) {
		b.cumulative = make([]float64, len(pts))
	}
	b.cumulative = b.cumulative[:len(pts)]
	b.cumulative[0] = 0
	for i := 1; i < len(pts); i++ {
		b.cumulative[i] = b.cumulative[i-1] + pts[i].Sub(pts[i-1]).Len()
	}
	return b.cumulative[len(pts)-1]
}

// previousIndex returns the index of the point before segment i's start.
// Closed paths wrap to the point before the (duplicated) last point; open
// paths repeat the start point, which yields a neutral join direction.
func previousIndex(i, n int, closed bool) (int, error) {
	idx := i - 1
	if idx < 0 {
		if closed {
			idx = n - 2
		} else {
			idx = i
		}
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: previous of segment %d in %d points", ErrMissingNeighbor, i, n)
	}
	return idx, nil
}

// nextIndex returns the index of the point after segment i's end.
func nextIndex(i, n int, closed bool) (int, error) {
	idx := i + 2
	if idx > n-1 {
		if closed {
			idx -= n - 1
		} else {
			idx = i + 1
		}
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: next of segment %d in %d points", ErrMissingNeighbor, i, n)
	}
	return idx, nil
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

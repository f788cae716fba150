package thickline

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ArrowLength is the world-space length of the arrowhead wedge. The final
// segment of an arrow-terminated line always has exactly this length.
const ArrowLength = 0.3

// arrowSnapEpsilon is the parameter below which the synthetic point is
// snapped onto A instead of adding a zero-length segment.
const arrowSnapEpsilon = 1e-9

// trimForArrow replaces the tail of points with a single synthetic point
// placed ArrowLength away from the final point, so that the last segment
// is exactly as long as the arrowhead. The result is appended to dst.
//
// Walking backward from the end, A is the last point at least ArrowLength
// away from the final point B and A' is its successor. The synthetic point
// is A + t(A'-A) where |A + t(A'-A) - B| = ArrowLength, t in [0, 1].
func trimForArrow(dst, points []mgl64.Vec3) ([]mgl64.Vec3, error) {
	n := len(points)
	if n < 2 {
		return dst, ErrTooFewPoints
	}
	b := points[n-1]

	a := -1
	for i := n - 2; i >= 0; i-- {
		if points[i].Sub(b).Len() >= ArrowLength {
			a = i
			break
		}
	}
	if a < 0 {
		return dst, fmt.Errorf("%w: no point lies %.3g from the tip", ErrNoArrowSolution, ArrowLength)
	}

	t, err := solveArrowParameter(points[a], points[a+1], b)
	if err != nil {
		return dst, err
	}

	dst = append(dst[:0], points[:a+1]...)
	if t <= arrowSnapEpsilon {
		// A itself is ArrowLength from the tip.
		return append(dst, b), nil
	}
	start, succ := points[a], points[a+1]
	synthetic := start.Add(succ.Sub(start).Mul(t))
	return append(dst, synthetic, b), nil
}

// solveArrowParameter solves |A + t(A'-A) - B|^2 = ArrowLength^2 for t.
//
// With d = A'-A and f = A-B this is
//
//	(d·d) t^2 + 2(f·d) t + (f·f - L^2) = 0.
//
// Because |A-B| >= L and |A'-B| < L the polynomial changes sign on [0, 1],
// so the smaller root in the unit interval is the crossing point.
func solveArrowParameter(a, aNext, b mgl64.Vec3) (float64, error) {
	d := aNext.Sub(a)
	f := a.Sub(b)
	dd := d.Dot(d)
	if dd == 0 {
		return 0, fmt.Errorf("%w: anchor and successor coincide", ErrNoArrowSolution)
	}

	lo, hi, ok := arrowRoots(dd, 2*f.Dot(d), f.Dot(f)-ArrowLength*ArrowLength)
	if !ok {
		return 0, fmt.Errorf("%w: quadratic has no real root", ErrNoArrowSolution)
	}
	for _, t := range [2]float64{lo, hi} {
		if t >= -arrowRootEpsilon && t <= 1+arrowRootEpsilon {
			return clamp01(t), nil
		}
	}
	return 0, fmt.Errorf("%w: quadratic has no root in [0, 1]", ErrNoArrowSolution)
}

// arrowRootEpsilon is how far outside [0, 1] a root may fall from rounding
// and still be accepted.
const arrowRootEpsilon = 1e-12

// arrowRoots returns the real roots of a·t^2 + b·t + c = 0 in ascending
// order; a must be positive. The larger-magnitude root comes from the
// formula with the sign of b and the other from the product of roots, so
// neither loses precision when b^2 dominates 4ac.
func arrowRoots(a, b, c float64) (lo, hi float64, ok bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	if q == 0 {
		// b and c are both zero: double root at 0.
		return 0, 0, true
	}
	lo, hi = q/a, c/q
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

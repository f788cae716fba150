package thickline

import "errors"

// Geometry and style errors. All are returned synchronously from the call
// that detected them; test with errors.Is.
var (
	// ErrTooFewPoints is returned when a point list has fewer than two points.
	ErrTooFewPoints = errors.New("thickline: a line needs at least 2 points")

	// ErrNoArrowSolution is returned when no point of the path lies far enough
	// from the final point to place an arrowhead of ArrowLength.
	ErrNoArrowSolution = errors.New("thickline: no valid arrow solution")

	// ErrZeroLength is returned for paths whose total arc length is zero.
	ErrZeroLength = errors.New("thickline: path has zero length")

	// ErrNotBuilt is returned when geometry is requested or rebuilt before
	// any point list was ever set.
	ErrNotBuilt = errors.New("thickline: geometry has not been built")

	// ErrMissingNeighbor is returned when a neighbor lookup falls outside the
	// point list. It indicates a broken builder invariant.
	ErrMissingNeighbor = errors.New("thickline: missing neighbor point")

	// ErrInvalidDrawRange is returned when a draw range is not a sub-range of [0, 1].
	ErrInvalidDrawRange = errors.New("thickline: draw range must satisfy 0 <= start <= end <= 1")
)

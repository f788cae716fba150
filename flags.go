package thickline

import "fmt"

// CornerFlags is the packed per-vertex code stored in the cornerFlags
// channel. The bit layout is shared with the WGSL vertex and fragment
// stages and must not change independently of line.wgsl.
//
//	bit 0  end corner (0 = start of segment, 1 = end of segment)
//	bit 1  side (0 = left of the centerline, 1 = right)
//	bit 2  arrow wedge (this quad draws the arrowhead)
//	bit 3  pre-arrow (this quad immediately precedes the arrowhead)
type CornerFlags uint32

const (
	FlagEnd      CornerFlags = 1 << 0
	FlagRight    CornerFlags = 1 << 1
	FlagWedge    CornerFlags = 1 << 2
	FlagPreArrow CornerFlags = 1 << 3
)

// quadCorners lists the corner codes of one segment quad in vertex order.
// Indices [0,1,2] and [2,1,3] triangulate the quad.
var quadCorners = [4]CornerFlags{
	0,                   // start, left
	FlagRight,           // start, right
	FlagEnd,             // end, left
	FlagEnd | FlagRight, // end, right
}

// quadIndices is the fixed two-triangle pattern, offset by 4 per segment.
var quadIndices = [6]uint32{0, 1, 2, 2, 1, 3}

// IsEnd reports whether the corner belongs to the segment's end point.
func (f CornerFlags) IsEnd() bool { return f&FlagEnd != 0 }

// Side returns -1 for left corners and +1 for right corners.
func (f CornerFlags) Side() float64 {
	if f&FlagRight != 0 {
		return 1
	}
	return -1
}

// IsWedge reports whether the quad is the arrowhead wedge.
func (f CornerFlags) IsWedge() bool { return f&FlagWedge != 0 }

// IsPreArrow reports whether the quad immediately precedes the arrowhead.
func (f CornerFlags) IsPreArrow() bool { return f&FlagPreArrow != 0 }

// Role returns only the segment-wide role bits (wedge, pre-arrow).
func (f CornerFlags) Role() CornerFlags { return f & (FlagWedge | FlagPreArrow) }

func (f CornerFlags) String() string {
	end := "start"
	if f.IsEnd() {
		end = "end"
	}
	side := "left"
	if f&FlagRight != 0 {
		side = "right"
	}
	switch {
	case f.IsWedge():
		return fmt.Sprintf("%s/%s/wedge", end, side)
	case f.IsPreArrow():
		return fmt.Sprintf("%s/%s/pre-arrow", end, side)
	}
	return end + "/" + side
}

package thickline

import "github.com/go-gl/mathgl/mgl64"

// Geometry is the vertex data of one line: four duplicated rows per
// segment quad in each attribute channel plus a triangle index list.
//
// Vector channels hold 3 float32 components per vertex; scalar channels
// hold one value per vertex. All slices are owned by the Builder that
// produced the geometry and are rewritten by its next Build.
type Geometry struct {
	Position         []float32
	EndPosition      []float32
	PreviousPosition []float32
	NextPosition     []float32
	CornerFlags      []uint32
	Proportion       []float32
	EndProportion    []float32
	Indices          []uint32

	points      []mgl64.Vec3
	segments    int
	totalLength float64
	closed      bool
	arrow       bool
	version     uint64
}

// Channel describes one vertex attribute channel for host draw submission.
type Channel struct {
	Name       string
	Components int
	// Integer is true for unsigned integer channels (cornerFlags).
	Integer bool
}

// Channel names, in vertex buffer slot order.
const (
	ChannelPosition         = "position"
	ChannelEndPosition      = "endPosition"
	ChannelPreviousPosition = "previousPosition"
	ChannelNextPosition     = "nextPosition"
	ChannelCornerFlags      = "cornerFlags"
	ChannelProportion       = "proportion"
	ChannelEndProportion    = "endProportion"
)

// Channels lists the attribute channels in vertex buffer slot order.
func Channels() []Channel {
	return []Channel{
		{Name: ChannelPosition, Components: 3},
		{Name: ChannelEndPosition, Components: 3},
		{Name: ChannelPreviousPosition, Components: 3},
		{Name: ChannelNextPosition, Components: 3},
		{Name: ChannelCornerFlags, Components: 1, Integer: true},
		{Name: ChannelProportion, Components: 1},
		{Name: ChannelEndProportion, Components: 1},
	}
}

// Segments returns the number of segment quads.
func (g *Geometry) Segments() int { return g.segments }

// VertexCount returns 4 per segment.
func (g *Geometry) VertexCount() int { return g.segments * verticesPerSegment }

// IndexCount returns 6 per segment.
func (g *Geometry) IndexCount() int { return g.segments * indicesPerSegment }

// TotalLength returns the arc length of the path in world units.
func (g *Geometry) TotalLength() float64 { return g.totalLength }

// Closed reports whether the first and last points coincide.
func (g *Geometry) Closed() bool { return g.closed }

// Arrow reports whether the geometry ends in an arrowhead wedge.
func (g *Geometry) Arrow() bool { return g.arrow }

// Version increases by one on every successful build. GPU layers compare
// it against the version they last uploaded.
func (g *Geometry) Version() uint64 { return g.version }

// Points returns the point list the geometry was built from, after arrow
// substitution. The slice must not be modified.
func (g *Geometry) Points() []mgl64.Vec3 { return g.points }

// SegmentEnds returns the start and end position of segment i, read back
// from the position channels.
func (g *Geometry) SegmentEnds(i int) (start, end mgl64.Vec3) {
	row := i * verticesPerSegment * 3
	return vec3At(g.Position, row), vec3At(g.EndPosition, row)
}

// SegmentAttributes is the per-segment view of the vertex rows, as seen by
// the shader stages.
type SegmentAttributes struct {
	Start, End     mgl64.Vec3
	Previous, Next mgl64.Vec3
	Role           CornerFlags
	Proportion     float64
	EndProportion  float64
}

// Segment returns the attributes shared by the four corners of segment i.
func (g *Geometry) Segment(i int) SegmentAttributes {
	v := i * verticesPerSegment
	row := v * 3
	return SegmentAttributes{
		Start:         vec3At(g.Position, row),
		End:           vec3At(g.EndPosition, row),
		Previous:      vec3At(g.PreviousPosition, row),
		Next:          vec3At(g.NextPosition, row),
		Role:          CornerFlags(g.CornerFlags[v]).Role(),
		Proportion:    float64(g.Proportion[v]),
		EndProportion: float64(g.EndProportion[v]),
	}
}

// writeSegment fills the four corner rows and six indices of segment i.
func (g *Geometry) writeSegment(i int, start, end, prev, next mgl64.Vec3, role CornerFlags, prop, endProp float32) {
	base := i * verticesPerSegment
	for c, corner := range quadCorners {
		v := base + c
		putVec3(g.Position, v*3, start)
		putVec3(g.EndPosition, v*3, end)
		putVec3(g.PreviousPosition, v*3, prev)
		putVec3(g.NextPosition, v*3, next)
		g.CornerFlags[v] = uint32(corner | role)
		g.Proportion[v] = prop
		g.EndProportion[v] = endProp
	}

	idx := i * indicesPerSegment
	for k, q := range quadIndices {
		g.Indices[idx+k] = uint32(base) + q //nolint:gosec // vertex count fits uint32
	}
}

func putVec3(dst []float32, off int, v mgl64.Vec3) {
	dst[off] = float32(v[0])
	dst[off+1] = float32(v[1])
	dst[off+2] = float32(v[2])
}

func vec3At(src []float32, off int) mgl64.Vec3 {
	return mgl64.Vec3{float64(src[off]), float64(src[off+1]), float64(src[off+2])}
}

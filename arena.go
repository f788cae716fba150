package thickline

// vertexArena owns the CPU-side attribute and index storage of one line.
//
// Storage is sized for exactly the live segment count. A build with the
// same segment count rewrites the existing slices in place; any other
// count drops them and allocates fresh, exactly-sized slices. The arena
// never grows incrementally.
type vertexArena struct {
	geom        Geometry
	allocations int
}

// reserve sizes the arena for segments quads and reports whether new
// storage had to be allocated.
func (a *vertexArena) reserve(segments int) bool {
	g := &a.geom
	if g.Indices != nil && g.segments == segments {
		return false
	}

	verts := segments * verticesPerSegment
	g.Position = make([]float32, verts*3)
	g.EndPosition = make([]float32, verts*3)
	g.PreviousPosition = make([]float32, verts*3)
	g.NextPosition = make([]float32, verts*3)
	g.CornerFlags = make([]uint32, verts)
	g.Proportion = make([]float32, verts)
	g.EndProportion = make([]float32, verts)
	g.Indices = make([]uint32, segments*indicesPerSegment)
	g.segments = segments
	a.allocations++

	Logger().Debug("thickline: arena resized",
		"segments", segments,
		"vertices", verts,
		"indices", segments*indicesPerSegment,
		"allocations", a.allocations)
	return true
}

package thickline

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Line is a renderable variable-width polyline: one Builder's geometry
// coupled with one shader parameter block.
//
// Setters write straight into the parameter block and take effect on the
// next draw. Point and arrow changes rebuild the geometry synchronously.
// A Line is not safe for concurrent use.
type Line struct {
	builder  *Builder
	uniforms Uniforms
	arrow    bool

	points      []mgl64.Vec3
	bounds      Bounds
	boundsValid bool
	world       mgl64.Mat4
}

// NewLine creates a line with no points. Geometry is built by the first
// SetPoints call.
func NewLine(opts ...LineOption) *Line {
	o := defaultLineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &Line{
		builder:  NewBuilder(),
		uniforms: defaultUniforms(),
		arrow:    o.arrow,
		world:    mgl64.Ident4(),
	}
	o.apply(&l.uniforms)
	return l
}

// SetPoints replaces the point list and rebuilds the geometry. Buffers are
// reallocated only if the segment count changes. Pass updateBounds=false
// when the points will be replaced again before the next draw or pick; the
// previous bounds are then marked stale.
//
// On error the line keeps its previous points and geometry.
func (l *Line) SetPoints(points []mgl64.Vec3, updateBounds bool) error {
	if len(points) < 2 {
		return fmt.Errorf("set points: %w: got %d", ErrTooFewPoints, len(points))
	}

	g, err := l.builder.Build(points, l.arrow)
	if err != nil {
		return fmt.Errorf("set points: %w", err)
	}

	l.points = append(l.points[:0], points...)
	l.uniforms.TotalLength = g.TotalLength()
	if updateBounds {
		l.bounds = ComputeBounds(g.Points())
		l.boundsValid = true
	} else {
		l.boundsValid = false
	}
	return nil
}

// Rebuild rebuilds the geometry from the current points, for example after
// the arrow setting changed.
func (l *Line) Rebuild() error {
	if len(l.points) == 0 {
		return ErrNotBuilt
	}
	return l.SetPoints(l.points, true)
}

// Points returns a copy of the point list last passed to SetPoints.
func (l *Line) Points() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(l.points))
	copy(out, l.points)
	return out
}

// Geometry returns the current vertex data, or ErrNotBuilt before the
// first successful SetPoints.
func (l *Line) Geometry() (*Geometry, error) {
	return l.builder.Geometry()
}

// Allocations returns how many times the line's buffers were allocated.
func (l *Line) Allocations() int {
	return l.builder.Allocations()
}

// Bounds returns the bounding volume and whether it is current.
func (l *Line) Bounds() (Bounds, bool) {
	return l.bounds, l.boundsValid
}

// Uniforms returns the line's shader parameter block.
func (l *Line) Uniforms() *Uniforms {
	return &l.uniforms
}

// TotalLength returns the arc length of the built path in world units.
func (l *Line) TotalLength() float64 {
	return l.uniforms.TotalLength
}

// Width returns the line width in world units.
func (l *Line) Width() float64 { return l.uniforms.Width }

// SetWidth sets the line width in world units.
func (l *Line) SetWidth(w float64) { l.uniforms.Width = w }

// Color returns the line color.
func (l *Line) Color() Color { return l.uniforms.Color }

// SetColor sets the line color.
func (l *Line) SetColor(c Color) { l.uniforms.Color = c }

// Opacity returns the line opacity in [0, 1].
func (l *Line) Opacity() float64 { return l.uniforms.Opacity }

// SetOpacity sets the line opacity, clamped to [0, 1].
func (l *Line) SetOpacity(o float64) { l.uniforms.Opacity = clamp01(o) }

// DashLength returns the dash length in world units; zero means solid.
func (l *Line) DashLength() float64 { return l.uniforms.DashLength }

// SetDashLength sets the dash length in world units. Zero or negative
// values draw a solid line.
func (l *Line) SetDashLength(length float64) {
	if length < 0 {
		length = 0
	}
	l.uniforms.DashLength = length
}

// DashOffset returns the dash phase offset in world units.
func (l *Line) DashOffset() float64 { return l.uniforms.DashOffset }

// SetDashOffset shifts the dash pattern along the path.
func (l *Line) SetDashOffset(offset float64) { l.uniforms.DashOffset = offset }

// DrawRange returns the visible [start, end] fraction of the path.
func (l *Line) DrawRange() mgl64.Vec2 { return l.uniforms.DrawRange }

// SetDrawRange sets the visible [start, end] fraction of the path.
func (l *Line) SetDrawRange(start, end float64) error {
	if start < 0 || end > 1 || start > end {
		return fmt.Errorf("%w: got [%g, %g]", ErrInvalidDrawRange, start, end)
	}
	l.uniforms.DrawRange = mgl64.Vec2{start, end}
	return nil
}

// Arrow reports whether the line ends in an arrowhead.
func (l *Line) Arrow() bool { return l.arrow }

// SetArrow switches the arrowhead on or off and rebuilds the geometry if
// points are set. If the rebuild fails the previous setting is restored.
func (l *Line) SetArrow(arrow bool) error {
	if arrow == l.arrow {
		return nil
	}
	prev := l.arrow
	l.arrow = arrow
	if len(l.points) == 0 {
		return nil
	}
	if err := l.Rebuild(); err != nil {
		l.arrow = prev
		return err
	}
	return nil
}

// Shared returns the process-wide uniform block the line reads.
func (l *Line) Shared() *Shared { return l.uniforms.Shared }

// MatrixWorld returns the model-to-world transform.
func (l *Line) MatrixWorld() mgl64.Mat4 { return l.world }

// SetMatrixWorld sets the model-to-world transform supplied by the host
// scene graph.
func (l *Line) SetMatrixWorld(m mgl64.Mat4) { l.world = m }

// ScreenSegments projects every segment of the line with the current
// shared camera, appending to dst.
func (l *Line) ScreenSegments(dst []ScreenSegment) ([]ScreenSegment, error) {
	g, err := l.builder.Geometry()
	if err != nil {
		return dst, err
	}
	for i := 0; i < g.Segments(); i++ {
		dst = append(dst, ProjectSegment(g.Segment(i), &l.uniforms, l.world))
	}
	return dst, nil
}

package thickline

import "github.com/go-gl/mathgl/mgl64"

// LineOption configures a Line during creation.
//
// Example:
//
//	l := thickline.NewLine(
//	    thickline.WithWidth(0.05),
//	    thickline.WithColor(thickline.Hex("#58C4DD")),
//	    thickline.WithDash(0.1, 0),
//	)
type LineOption func(*lineOptions)

// lineOptions holds optional configuration for Line creation.
type lineOptions struct {
	width      *float64
	color      *Color
	opacity    *float64
	dashLength float64
	dashOffset float64
	drawRange  *mgl64.Vec2
	arrow      bool
	shared     *Shared
}

func defaultLineOptions() lineOptions {
	return lineOptions{}
}

// apply writes the collected options over the default uniforms.
func (o *lineOptions) apply(u *Uniforms) {
	if o.width != nil {
		u.Width = *o.width
	}
	if o.color != nil {
		u.Color = *o.color
	}
	if o.opacity != nil {
		u.Opacity = clamp01(*o.opacity)
	}
	if o.dashLength > 0 {
		u.DashLength = o.dashLength
	}
	u.DashOffset = o.dashOffset
	if o.drawRange != nil {
		u.DrawRange = *o.drawRange
	}
	if o.shared != nil {
		u.Shared = o.shared
	}
}

// WithWidth sets the line width in world units.
func WithWidth(w float64) LineOption {
	return func(o *lineOptions) {
		o.width = &w
	}
}

// WithColor sets the line color.
func WithColor(c Color) LineOption {
	return func(o *lineOptions) {
		o.color = &c
	}
}

// WithOpacity sets the line opacity.
func WithOpacity(opacity float64) LineOption {
	return func(o *lineOptions) {
		o.opacity = &opacity
	}
}

// WithDash sets the dash length and phase offset in world units.
func WithDash(length, offset float64) LineOption {
	return func(o *lineOptions) {
		o.dashLength = length
		o.dashOffset = offset
	}
}

// WithDrawRange sets the initial visible fraction of the path. Values are
// clamped to [0, 1]; an empty range hides the line.
func WithDrawRange(start, end float64) LineOption {
	return func(o *lineOptions) {
		r := mgl64.Vec2{clamp01(start), clamp01(end)}
		o.drawRange = &r
	}
}

// WithArrow terminates the line with an arrowhead.
func WithArrow() LineOption {
	return func(o *lineOptions) {
		o.arrow = true
	}
}

// WithShared makes the line read viewport and camera state from s instead
// of DefaultShared.
func WithShared(s *Shared) LineOption {
	return func(o *lineOptions) {
		o.shared = s
	}
}

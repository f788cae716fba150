// Package thickline renders variable-width polylines with dashes, partial
// draw ranges and arrowheads.
//
// # Overview
//
// A Line turns an ordered list of 3D points into a triangle mesh of one
// quad per segment. The quads are expanded to their on-screen width in
// the vertex stage, so a line keeps a constant pixel width under an
// orthographic camera and a depth-correct width under a perspective one.
// Dashes, draw ranges, joins and arrowheads are resolved per fragment
// from the segment's neighbors and normalized arc-length coordinates.
//
// # Quick Start
//
//	cam := thickline.OrthographicCamera(4, 3, mgl64.Vec3{})
//	cam.Apply(thickline.DefaultShared(), thickline.Viewport{Width: 800, Height: 600})
//
//	line := thickline.NewLine(
//	    thickline.WithWidth(0.05),
//	    thickline.WithColor(thickline.Hex("#ff8800")),
//	    thickline.WithDash(0.2, 0),
//	    thickline.WithArrow(),
//	)
//	if err := line.SetPoints(points, true); err != nil {
//	    return err
//	}
//
//	img, err := thickline.NewSoftwareRenderer(800, 600).Render(line)
//
// # Renderers
//
// The gpu sub-package draws lines into a wgpu render pass with the
// embedded WGSL shader. SoftwareRenderer runs the same coverage rules on
// the CPU and produces an *image.RGBA.
//
// # Coordinate System
//
// Points are in model space and pass through the line's world matrix and
// the shared view and projection matrices. Screen positions are device
// pixels with the origin at the viewport's top-left corner and Y pointing
// down.
//
// # Picking
//
// Line.Raycast finds the closest point on the polyline to a ray within a
// world-space threshold; Line.PickThreshold converts a pixel radius into
// that threshold using the shared camera extents.
//
// # Logging
//
// The package is silent by default. Use SetLogger to route debug output
// (buffer reallocations, renderer lifecycle) to a slog.Logger.
package thickline

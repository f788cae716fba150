package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/thickline"
)

// sceneConfig holds the flags shared by the render and pick commands.
type sceneConfig struct {
	width, height int
	lineWidth     float64
	dash          float64
	drawEnd       float64
	perspective   bool
}

// scene is the demo content: a camera, a viewport and named lines.
type scene struct {
	camera   thickline.Camera
	viewport thickline.Viewport
	shared   *thickline.Shared
	lines    []*thickline.Line
	names    []string
}

// buildScene lays out four sample lines in a 4 x 3 world-unit frame
// centered on the origin.
func buildScene(cfg sceneConfig) (*scene, error) {
	vp := thickline.Viewport{Width: float64(cfg.width), Height: float64(cfg.height)}
	aspect := vp.Width / vp.Height

	cam := thickline.OrthographicCamera(3*aspect, 3, mgl64.Vec3{})
	if cfg.perspective {
		cam = thickline.PerspectiveCamera(mgl64.DegToRad(45), aspect, 0.1, 100,
			mgl64.Vec3{0, -2, 4}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	}
	shared := thickline.NewShared()
	cam.Apply(shared, vp)

	s := &scene{camera: cam, viewport: vp, shared: shared}

	add := func(name string, pts []mgl64.Vec3, opts ...thickline.LineOption) error {
		opts = append([]thickline.LineOption{
			thickline.WithShared(shared),
			thickline.WithWidth(cfg.lineWidth),
			thickline.WithDrawRange(0, cfg.drawEnd),
		}, opts...)
		l := thickline.NewLine(opts...)
		if err := l.SetPoints(pts, true); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		s.lines = append(s.lines, l)
		s.names = append(s.names, name)
		return nil
	}

	zigzag := []mgl64.Vec3{{-1.8, 0.6, 0}, {-1.4, 1.2, 0}, {-1.0, 0.6, 0}, {-0.6, 1.2, 0}, {-0.2, 0.6, 0}}
	if err := add("zigzag", zigzag, thickline.WithColor(thickline.Hex("#e6194b"))); err != nil {
		return nil, err
	}

	square := []mgl64.Vec3{{0.4, 0.5, 0}, {1.4, 0.5, 0}, {1.4, 1.3, 0}, {0.4, 1.3, 0}, {0.4, 0.5, 0}}
	if err := add("square", square, thickline.WithColor(thickline.Hex("#3cb44b"))); err != nil {
		return nil, err
	}

	wave := make([]mgl64.Vec3, 64)
	for i := range wave {
		x := -1.8 + 3.6*float64(i)/float64(len(wave)-1)
		wave[i] = mgl64.Vec3{x, -0.2 + 0.3*math.Sin(3*x), 0}
	}
	if err := add("wave", wave,
		thickline.WithColor(thickline.Hex("#4363d8")),
		thickline.WithDash(cfg.dash, 0),
	); err != nil {
		return nil, err
	}

	arrow := []mgl64.Vec3{{-1.6, -1.2, 0}, {-0.4, -0.9, 0}, {0.6, -1.2, 0}, {1.6, -0.9, 0}}
	if err := add("arrow", arrow,
		thickline.WithColor(thickline.Hex("#f58231")),
		thickline.WithArrow(),
	); err != nil {
		return nil, err
	}
	return s, nil
}

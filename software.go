package thickline

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	xdraw "golang.org/x/image/draw"
)

// DefaultSupersample is the per-axis sample factor of a new
// SoftwareRenderer.
const DefaultSupersample = 4

// SoftwareRenderer rasterizes lines on the CPU with the same per-fragment
// coverage rules as the GPU shader. Each output pixel is sampled on a
// Supersample x Supersample grid and the grid is filtered down with a
// bilinear kernel.
//
// The renderer reuses its sample buffer between frames and is not safe
// for concurrent use.
type SoftwareRenderer struct {
	width, height int
	supersample   int
	background    color.Color

	samples *image.RGBA
	segs    []ScreenSegment
}

// NewSoftwareRenderer creates a renderer producing width x height images
// on a transparent background.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		width:       width,
		height:      height,
		supersample: DefaultSupersample,
		background:  color.Transparent,
	}
}

// SetSupersample sets the per-axis sample factor. Values below 1 are
// treated as 1 (one sample at each pixel center).
func (r *SoftwareRenderer) SetSupersample(n int) {
	r.supersample = max(n, 1)
}

// SetBackground sets the color the image is cleared to.
func (r *SoftwareRenderer) SetBackground(c color.Color) {
	r.background = c
}

// Viewport returns a viewport covering the whole output image.
func (r *SoftwareRenderer) Viewport() Viewport {
	return Viewport{Width: float64(r.width), Height: float64(r.height)}
}

// Render draws lines in order into a new image. Lines that have not been
// built are skipped.
func (r *SoftwareRenderer) Render(lines ...*Line) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	if err := r.RenderTo(dst, lines...); err != nil {
		return nil, err
	}
	return dst, nil
}

// RenderTo clears dst to the background and draws lines into it. dst must
// match the renderer's size.
func (r *SoftwareRenderer) RenderTo(dst *image.RGBA, lines ...*Line) error {
	if dst.Bounds().Dx() != r.width || dst.Bounds().Dy() != r.height {
		return fmt.Errorf("render: target is %v, renderer is %dx%d", dst.Bounds().Size(), r.width, r.height)
	}

	ss := r.supersample
	target := dst
	if ss > 1 {
		rect := image.Rect(0, 0, r.width*ss, r.height*ss)
		if r.samples == nil || r.samples.Bounds() != rect {
			r.samples = image.NewRGBA(rect)
		}
		target = r.samples
	}
	xdraw.Draw(target, target.Bounds(), image.NewUniform(r.background), image.Point{}, xdraw.Src)

	for _, l := range lines {
		if l == nil {
			continue
		}
		if err := r.drawLine(target, l); err != nil {
			return err
		}
	}

	if ss > 1 {
		xdraw.BiLinear.Scale(dst, dst.Bounds(), r.samples, r.samples.Bounds(), xdraw.Src, nil)
	}
	Logger().Debug("software render",
		"lines", len(lines),
		"size", dst.Bounds().Size(),
		"supersample", ss,
	)
	return nil
}

// drawLine blends every covered sample of every segment of l into target.
// Join ownership guarantees each sample is claimed by at most one segment.
func (r *SoftwareRenderer) drawLine(target *image.RGBA, l *Line) error {
	var err error
	r.segs, err = l.ScreenSegments(r.segs[:0])
	if errors.Is(err, ErrNotBuilt) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	u := l.Uniforms()
	src := l.Color().NRGBA(l.Opacity())
	if src.A == 0 {
		return nil
	}
	scale := float64(r.supersample)
	bounds := target.Bounds()

	for i := range r.segs {
		seg := &r.segs[i]
		box := segmentBox(seg, scale).Intersect(bounds)
		for y := box.Min.Y; y < box.Max.Y; y++ {
			for x := box.Min.X; x < box.Max.X; x++ {
				f := mgl64.Vec2{(float64(x) + 0.5) / scale, (float64(y) + 0.5) / scale}
				if seg.Covers(f, u) {
					blendOver(target, x, y, src)
				}
			}
		}
	}
	return nil
}

// segmentBox returns the sample-space bounding box of the segment's quad.
func segmentBox(seg *ScreenSegment, scale float64) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range quadCorners {
		p := seg.Corner(c)
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	if math.IsNaN(minX) || math.IsInf(minX, 0) || math.IsInf(maxX, 0) ||
		math.IsNaN(minY) || math.IsInf(minY, 0) || math.IsInf(maxY, 0) {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX*scale)), int(math.Floor(minY*scale)),
		int(math.Ceil(maxX*scale))+1, int(math.Ceil(maxY*scale))+1,
	)
}

// blendOver composites the non-premultiplied color c over the pixel at
// (x, y) with the source-over operator.
func blendOver(img *image.RGBA, x, y int, c color.NRGBA) {
	i := img.PixOffset(x, y)
	a := uint32(c.A)
	inv := 255 - a
	px := img.Pix[i : i+4 : i+4]
	px[0] = uint8((uint32(c.R)*a + uint32(px[0])*inv + 127) / 255)
	px[1] = uint8((uint32(c.G)*a + uint32(px[1])*inv + 127) / 255)
	px[2] = uint8((uint32(c.B)*a + uint32(px[2])*inv + 127) / 255)
	px[3] = uint8((a*255 + uint32(px[3])*inv + 127) / 255)
}

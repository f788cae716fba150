//go:build !nogpu

// Package gpu draws thickline lines into a wgpu render pass.
//
// A Renderer owns one render pipeline and caches per-line GPU buffers.
// Geometry is uploaded only when a line's points change; style changes
// only rewrite the line's uniform block.
//
// Usage:
//
//	r := gpu.NewRenderer(device, queue, gpu.WithSampleCount(1))
//	defer r.Destroy()
//
//	// inside a render pass:
//	if err := r.Draw(rp, lines...); err != nil {
//	    return err
//	}
package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/thickline"
	gpuimpl "github.com/gogpu/thickline/internal/gpu"
)

// ErrNoHALProvider is returned by NewRendererFromProvider when the
// provider does not expose HAL device and queue handles.
var ErrNoHALProvider = errors.New("thickline/gpu: provider does not expose HAL types")

// Renderer draws lines with a shared pipeline and per-line buffers.
// It is safe for concurrent use; draws are serialized.
type Renderer struct {
	mu        sync.Mutex
	device    hal.Device
	lines     *gpuimpl.LineRenderer
	resources map[*thickline.Line]*gpuimpl.LineResources
}

// NewRenderer creates a renderer for device and queue. The pipeline is
// created on the first Draw.
func NewRenderer(device hal.Device, queue hal.Queue, opts ...Option) *Renderer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{
		device: device,
		lines: gpuimpl.NewLineRenderer(device, queue, gpuimpl.Config{
			SampleCount:  o.sampleCount,
			TargetFormat: o.targetFormat,
			SPIRV:        o.spirv,
			DepthStencil: o.depthStencil,
		}),
		resources: make(map[*thickline.Line]*gpuimpl.LineResources),
	}
	cfg := r.lines.Config()
	thickline.Logger().Info("line renderer created",
		"samples", cfg.SampleCount,
		"format", cfg.TargetFormat,
	)
	return r
}

// NewRendererFromProvider creates a renderer on a device shared by a host
// application. The provider must implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue. Its surface format
// becomes the target format unless WithTargetFormat overrides it.
func NewRendererFromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Renderer, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}

	if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		opts = append([]Option{WithTargetFormat(f)}, opts...)
	}
	return NewRenderer(device, queue, opts...), nil
}

// Draw uploads what changed for each line and records one indexed draw
// per line into rp. Lines without geometry are skipped.
func (r *Renderer) Draw(rp hal.RenderPassEncoder, lines ...*thickline.Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range lines {
		if line == nil {
			continue
		}
		g, err := line.Geometry()
		if errors.Is(err, thickline.ErrNotBuilt) {
			continue
		}
		if err != nil {
			return fmt.Errorf("draw line: %w", err)
		}

		res := r.resources[line]
		if res == nil {
			res = &gpuimpl.LineResources{}
			r.resources[line] = res
		}
		if err := r.lines.Prepare(res, g, line.Uniforms(), line.MatrixWorld()); err != nil {
			return fmt.Errorf("prepare line: %w", err)
		}
		r.lines.RecordDraw(rp, res)
	}
	return nil
}

// Release frees the GPU buffers cached for line. The line can be drawn
// again later; its buffers are then recreated.
func (r *Renderer) Release(line *thickline.Line) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.resources[line]
	if !ok {
		thickline.Logger().Warn("release of a line with no GPU buffers")
		return
	}
	res.Destroy(r.device)
	delete(r.resources, line)
}

// Cached returns the number of lines holding GPU buffers.
func (r *Renderer) Cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.resources)
}

// Allocations returns how many times the buffers of line were allocated,
// or 0 if it has never been drawn.
func (r *Renderer) Allocations(line *thickline.Line) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.resources[line]; ok {
		return res.Allocations()
	}
	return 0
}

// Destroy releases every cached buffer and the pipeline. Safe to call
// more than once.
func (r *Renderer) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for line, res := range r.resources {
		res.Destroy(r.device)
		delete(r.resources, line)
	}
	r.lines.Destroy()
	thickline.Logger().Debug("line renderer destroyed")
}

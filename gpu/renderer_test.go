//go:build !nogpu

package gpu

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/thickline"
)

func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// withRenderPass runs fn inside a render pass on the noop device.
func withRenderPass(t *testing.T, device hal.Device, fn func(rp hal.RenderPassEncoder)) {
	t.Helper()
	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "test_encoder",
	})
	if err != nil {
		t.Fatalf("create command encoder: %v", err)
	}
	if err := encoder.BeginEncoding("test_frame"); err != nil {
		t.Fatalf("begin encoding: %v", err)
	}
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{Label: "test_pass"})
	fn(rp)
	rp.End()
	encoder.DiscardEncoding()
}

func newTestLine(t *testing.T, n int) *thickline.Line {
	t.Helper()
	line := thickline.NewLine(thickline.WithWidth(0.1))
	setZigzag(t, line, n)
	return line
}

func setZigzag(t *testing.T, line *thickline.Line, n int) {
	t.Helper()
	pts := make([]mgl64.Vec3, n)
	for i := range pts {
		pts[i] = mgl64.Vec3{float64(i), float64(i % 2), 0}
	}
	if err := line.SetPoints(pts, true); err != nil {
		t.Fatalf("SetPoints failed: %v", err)
	}
}

func TestRendererDrawCachesResources(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	r := NewRenderer(device, queue, WithSampleCount(1))
	defer r.Destroy()

	a := newTestLine(t, 3)
	b := newTestLine(t, 5)
	empty := thickline.NewLine()

	withRenderPass(t, device, func(rp hal.RenderPassEncoder) {
		if err := r.Draw(rp, a, b, empty, nil); err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
	})
	if got := r.Cached(); got != 2 {
		t.Errorf("Cached = %d, want 2 (unbuilt and nil lines skipped)", got)
	}

	// Redraw with a same-size rebuild of a and a resize of b.
	setZigzag(t, a, 3)
	setZigzag(t, b, 8)
	withRenderPass(t, device, func(rp hal.RenderPassEncoder) {
		if err := r.Draw(rp, a, b); err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
	})
	if got := r.Allocations(a); got != 1 {
		t.Errorf("Allocations(a) = %d, want 1", got)
	}
	if got := r.Allocations(b); got != 2 {
		t.Errorf("Allocations(b) = %d, want 2", got)
	}

	r.Release(a)
	if got := r.Cached(); got != 1 {
		t.Errorf("Cached after Release = %d, want 1", got)
	}
	if got := r.Allocations(a); got != 0 {
		t.Errorf("Allocations(a) after Release = %d, want 0", got)
	}
	// Releasing an unknown line is a no-op.
	r.Release(empty)

	r.Destroy()
	if got := r.Cached(); got != 0 {
		t.Errorf("Cached after Destroy = %d, want 0", got)
	}
	r.Destroy()
}

func TestRendererOptions(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	r := NewRenderer(device, queue,
		WithSampleCount(1),
		WithTargetFormat(gputypes.TextureFormatRGBA8Unorm),
		WithDepthStencil(),
	)
	defer r.Destroy()

	withRenderPass(t, device, func(rp hal.RenderPassEncoder) {
		if err := r.Draw(rp, newTestLine(t, 4)); err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
	})
}

// testProvider is a gpucontext.DeviceProvider exposing noop HAL handles.
type testProvider struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat
}

func (p *testProvider) Device() gpucontext.Device             { return nil }
func (p *testProvider) Queue() gpucontext.Queue               { return nil }
func (p *testProvider) Adapter() gpucontext.Adapter           { return nil }
func (p *testProvider) SurfaceFormat() gputypes.TextureFormat { return p.format }
func (p *testProvider) HalDevice() any                        { return p.device }
func (p *testProvider) HalQueue() any                         { return p.queue }

// plainProvider has no HAL accessors.
type plainProvider struct{}

func (plainProvider) Device() gpucontext.Device             { return nil }
func (plainProvider) Queue() gpucontext.Queue               { return nil }
func (plainProvider) Adapter() gpucontext.Adapter           { return nil }
func (plainProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatUndefined }

func TestNewRendererFromProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	p := &testProvider{device: device, queue: queue, format: gputypes.TextureFormatRGBA8Unorm}
	r, err := NewRendererFromProvider(p, WithSampleCount(1))
	if err != nil {
		t.Fatalf("NewRendererFromProvider failed: %v", err)
	}
	defer r.Destroy()

	if got := r.lines.Config().TargetFormat; got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("TargetFormat = %v, want provider surface format", got)
	}

	// An explicit option wins over the surface format.
	r2, err := NewRendererFromProvider(p, WithTargetFormat(gputypes.TextureFormatBGRA8Unorm))
	if err != nil {
		t.Fatalf("NewRendererFromProvider failed: %v", err)
	}
	defer r2.Destroy()
	if got := r2.lines.Config().TargetFormat; got != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("TargetFormat = %v, want BGRA8Unorm override", got)
	}
}

func TestNewRendererFromProviderErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
	}{
		{"no HAL accessors", plainProvider{}},
		{"nil HAL handles", &testProvider{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRendererFromProvider(tt.provider)
			if !errors.Is(err, ErrNoHALProvider) {
				t.Errorf("err = %v, want ErrNoHALProvider", err)
			}
		})
	}
}

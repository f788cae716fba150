//go:build !nogpu

package gpu

import "github.com/gogpu/gputypes"

// Option configures a Renderer.
type Option func(*options)

type options struct {
	sampleCount  uint32
	targetFormat gputypes.TextureFormat
	spirv        bool
	depthStencil bool
}

// WithSampleCount sets the MSAA sample count of the render target.
// The default is 4.
func WithSampleCount(n uint32) Option {
	return func(o *options) {
		o.sampleCount = n
	}
}

// WithTargetFormat sets the color attachment format. The default is
// BGRA8Unorm, or the provider's surface format for
// NewRendererFromProvider.
func WithTargetFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		o.targetFormat = f
	}
}

// WithSPIRV compiles the line shader to SPIR-V through naga before
// creating the shader module, for backends that do not accept WGSL.
func WithSPIRV() Option {
	return func(o *options) {
		o.spirv = true
	}
}

// WithDepthStencil builds the pipeline for render passes that carry a
// Depth24PlusStencil8 attachment. Lines neither test nor write it.
func WithDepthStencil() Option {
	return func(o *options) {
		o.depthStencil = true
	}
}

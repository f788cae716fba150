//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DefaultSampleCount is the MSAA sample count used when Config leaves it
// zero.
const DefaultSampleCount = 4

// Config selects the render target the line pipeline is built for.
type Config struct {
	// SampleCount is the MSAA sample count of the color target.
	SampleCount uint32

	// TargetFormat is the color attachment format.
	TargetFormat gputypes.TextureFormat

	// SPIRV precompiles the shader through naga instead of handing WGSL
	// to the backend.
	SPIRV bool

	// DepthStencil adds a depth/stencil state that ignores the attachment,
	// for render passes that carry a Depth24PlusStencil8 buffer.
	DepthStencil bool
}

func (c Config) withDefaults() Config {
	if c.SampleCount == 0 {
		c.SampleCount = DefaultSampleCount
	}
	if c.TargetFormat == gputypes.TextureFormatUndefined {
		c.TargetFormat = gputypes.TextureFormatBGRA8Unorm
	}
	return c
}

// LineRenderer draws line geometry as indexed triangle lists. Quads are
// expanded to screen-space width in the vertex stage and coverage
// (dashes, draw range, joins, arrowheads) is decided per fragment.
//
// All lines share one pipeline; per-line state lives in LineResources.
type LineRenderer struct {
	device hal.Device
	queue  hal.Queue
	config Config

	// GPU objects for the render pipeline.
	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline
}

// NewLineRenderer creates a line renderer for the given device and queue.
// The pipeline is not created until the first draw or EnsurePipeline.
func NewLineRenderer(device hal.Device, queue hal.Queue, config Config) *LineRenderer {
	return &LineRenderer{
		device: device,
		queue:  queue,
		config: config.withDefaults(),
	}
}

// Config returns the effective configuration.
func (lr *LineRenderer) Config() Config { return lr.config }

// Destroy releases all GPU resources held by the renderer. Safe to call
// multiple times or on a renderer with no allocated resources.
func (lr *LineRenderer) Destroy() {
	lr.destroyPipeline()
}

// EnsurePipeline creates the shader, layouts and render pipeline if they
// don't already exist.
func (lr *LineRenderer) EnsurePipeline() error {
	if lr.pipeline != nil {
		return nil
	}
	return lr.createPipeline()
}

// RecordDraw records one line's draw into an existing render pass. This
// is a no-op if res is nil or holds no geometry.
func (lr *LineRenderer) RecordDraw(rp hal.RenderPassEncoder, res *LineResources) {
	if res == nil || res.indexCount == 0 || lr.pipeline == nil {
		return
	}
	rp.SetPipeline(lr.pipeline)
	rp.SetBindGroup(0, res.bindGroup, nil)
	for slot, buf := range res.vertBufs {
		rp.SetVertexBuffer(uint32(slot), buf, 0) //nolint:gosec // slot < 7
	}
	rp.SetIndexBuffer(res.idxBuf, gputypes.IndexFormatUint32, 0)
	rp.DrawIndexed(res.indexCount, 1, 0, 0, 0)
}

// createPipeline compiles the line shader and creates the render pipeline
// with premultiplied alpha blending and MSAA.
func (lr *LineRenderer) createPipeline() error {
	desc, err := lineShaderDescriptor(lr.config.SPIRV)
	if err != nil {
		return err
	}
	shader, err := lr.device.CreateShaderModule(desc)
	if err != nil {
		return fmt.Errorf("compile line shader: %w", err)
	}
	lr.shader = shader

	uniformLayout, err := lr.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "line_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		lr.destroyPipeline()
		return fmt.Errorf("create line uniform layout: %w", err)
	}
	lr.uniformLayout = uniformLayout

	pipeLayout, err := lr.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "line_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{lr.uniformLayout},
	})
	if err != nil {
		lr.destroyPipeline()
		return fmt.Errorf("create line pipeline layout: %w", err)
	}
	lr.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeDesc := &hal.RenderPipelineDescriptor{
		Label:  "line_pipeline",
		Layout: lr.pipeLayout,
		Vertex: hal.VertexState{
			Module:     lr.shader,
			EntryPoint: "vs_main",
			Buffers:    lineVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     lr.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    lr.config.TargetFormat,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: lr.config.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	}
	if lr.config.DepthStencil {
		pipeDesc.DepthStencil = passThroughDepthStencil()
	}

	pipeline, err := lr.device.CreateRenderPipeline(pipeDesc)
	if err != nil {
		lr.destroyPipeline()
		return fmt.Errorf("create line pipeline: %w", err)
	}
	lr.pipeline = pipeline

	slogger().Debug("line pipeline created",
		"samples", lr.config.SampleCount,
		"spirv", lr.config.SPIRV,
		"depthStencil", lr.config.DepthStencil,
	)
	return nil
}

// passThroughDepthStencil returns a depth/stencil state that neither
// tests nor writes the attachment.
func passThroughDepthStencil() *hal.DepthStencilState {
	keep := hal.StencilFaceState{
		Compare:     gputypes.CompareFunctionAlways,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      hal.StencilOperationKeep,
	}
	return &hal.DepthStencilState{
		Format:            gputypes.TextureFormatDepth24PlusStencil8,
		DepthWriteEnabled: false,
		DepthCompare:      gputypes.CompareFunctionAlways,
		StencilFront:      keep,
		StencilBack:       keep,
		StencilReadMask:   0x00,
		StencilWriteMask:  0x00,
	}
}

// destroyPipeline releases all pipeline resources in reverse creation order.
func (lr *LineRenderer) destroyPipeline() {
	if lr.device == nil {
		return
	}
	if lr.pipeline != nil {
		lr.device.DestroyRenderPipeline(lr.pipeline)
		lr.pipeline = nil
	}
	if lr.pipeLayout != nil {
		lr.device.DestroyPipelineLayout(lr.pipeLayout)
		lr.pipeLayout = nil
	}
	if lr.uniformLayout != nil {
		lr.device.DestroyBindGroupLayout(lr.uniformLayout)
		lr.uniformLayout = nil
	}
	if lr.shader != nil {
		lr.device.DestroyShaderModule(lr.shader)
		lr.shader = nil
	}
}

// Vertex buffer strides in bytes.
const (
	vec3Stride   = 12
	scalarStride = 4
)

// lineVertexLayout returns one vertex buffer layout per attribute
// channel, in slot order: position, endPosition, previousPosition,
// nextPosition, cornerFlags, proportion, endProportion.
func lineVertexLayout() []gputypes.VertexBufferLayout {
	vec3 := func(loc uint32) gputypes.VertexBufferLayout {
		return gputypes.VertexBufferLayout{
			ArrayStride: vec3Stride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: loc},
			},
		}
	}
	scalar := func(loc uint32, format gputypes.VertexFormat) gputypes.VertexBufferLayout {
		return gputypes.VertexBufferLayout{
			ArrayStride: scalarStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: format, Offset: 0, ShaderLocation: loc},
			},
		}
	}
	return []gputypes.VertexBufferLayout{
		vec3(0),                                 // position
		vec3(1),                                 // endPosition
		vec3(2),                                 // previousPosition
		vec3(3),                                 // nextPosition
		scalar(4, gputypes.VertexFormatUint32),  // cornerFlags
		scalar(5, gputypes.VertexFormatFloat32), // proportion
		scalar(6, gputypes.VertexFormatFloat32), // endProportion
	}
}

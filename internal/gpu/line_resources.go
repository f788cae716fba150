//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/thickline"
)

// channelCount is the number of vertex attribute channels per line.
const channelCount = 7

// LineResources holds the GPU buffers of one line. Vertex and index
// buffers are sized exactly for the current segment count and are
// recreated only when it changes; their contents are rewritten only when
// the geometry version changes. The uniform block is rewritten on every
// Prepare.
type LineResources struct {
	vertBufs   [channelCount]hal.Buffer
	idxBuf     hal.Buffer
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
	indexCount uint32

	segments    int
	version     uint64
	uploaded    bool
	allocations int
	uploads     int

	staging  []byte
	uniforms []byte
}

// Allocations returns how many times the vertex and index buffers were
// (re)created.
func (r *LineResources) Allocations() int { return r.allocations }

// Uploads returns how many times vertex data was written to the GPU.
func (r *LineResources) Uploads() int { return r.uploads }

// Segments returns the segment count the buffers are sized for.
func (r *LineResources) Segments() int { return r.segments }

// Prepare makes res ready to draw g with parameter block u and the given
// world matrix. The pipeline is created on first use.
func (lr *LineRenderer) Prepare(res *LineResources, g *thickline.Geometry, u *thickline.Uniforms, world mgl64.Mat4) error {
	if err := lr.EnsurePipeline(); err != nil {
		return err
	}

	if g.Segments() != res.segments || res.idxBuf == nil {
		res.destroyGeometry(lr.device)
		if err := res.allocateGeometry(lr.device, g.Segments()); err != nil {
			res.destroyGeometry(lr.device)
			return err
		}
	}

	if res.uniformBuf == nil {
		if err := res.allocateUniforms(lr.device, lr.uniformLayout); err != nil {
			return err
		}
	}

	if !res.uploaded || res.version != g.Version() {
		res.uploadGeometry(lr.queue, g)
	}

	if cap(res.uniforms) < lineUniformSize {
		res.uniforms = make([]byte, lineUniformSize)
	}
	lr.queue.WriteBuffer(res.uniformBuf, 0, packLineUniform(res.uniforms[:lineUniformSize], u, world))
	return nil
}

// allocateGeometry creates exact-size vertex and index buffers.
func (r *LineResources) allocateGeometry(device hal.Device, segments int) error {
	vertices := uint64(segments) * 4 //nolint:gosec // segments is non-negative
	sizes := [channelCount]uint64{
		vertices * vec3Stride,
		vertices * vec3Stride,
		vertices * vec3Stride,
		vertices * vec3Stride,
		vertices * scalarStride,
		vertices * scalarStride,
		vertices * scalarStride,
	}
	channels := thickline.Channels()
	for i, size := range sizes {
		buf, err := device.CreateBuffer(&hal.BufferDescriptor{
			Label: "line_" + channels[i].Name,
			Size:  size,
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create %s buffer: %w", channels[i].Name, err)
		}
		r.vertBufs[i] = buf
	}

	idxBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "line_indices",
		Size:  uint64(segments) * 6 * 4, //nolint:gosec // segments is non-negative
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create index buffer: %w", err)
	}
	r.idxBuf = idxBuf
	r.segments = segments
	r.indexCount = uint32(segments * 6) //nolint:gosec // index count fits uint32
	r.uploaded = false
	r.allocations++

	slogger().Debug("line buffers allocated",
		"segments", segments,
		"allocations", r.allocations,
	)
	return nil
}

// allocateUniforms creates the uniform buffer and its bind group.
func (r *LineResources) allocateUniforms(device hal.Device, layout hal.BindGroupLayout) error {
	uniformBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "line_uniform",
		Size:  lineUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}

	bindGroup, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "line_bind",
		Layout: layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: lineUniformSize,
			}},
		},
	})
	if err != nil {
		device.DestroyBuffer(uniformBuf)
		return fmt.Errorf("create line bind group: %w", err)
	}
	r.uniformBuf = uniformBuf
	r.bindGroup = bindGroup
	return nil
}

// uploadGeometry writes every channel and the index list.
func (r *LineResources) uploadGeometry(queue hal.Queue, g *thickline.Geometry) {
	floats := [...][]float32{g.Position, g.EndPosition, g.PreviousPosition, g.NextPosition}
	for i, ch := range floats {
		r.staging = appendFloat32s(r.staging[:0], ch)
		queue.WriteBuffer(r.vertBufs[i], 0, r.staging)
	}
	r.staging = appendUint32s(r.staging[:0], g.CornerFlags)
	queue.WriteBuffer(r.vertBufs[4], 0, r.staging)
	r.staging = appendFloat32s(r.staging[:0], g.Proportion)
	queue.WriteBuffer(r.vertBufs[5], 0, r.staging)
	r.staging = appendFloat32s(r.staging[:0], g.EndProportion)
	queue.WriteBuffer(r.vertBufs[6], 0, r.staging)
	r.staging = appendUint32s(r.staging[:0], g.Indices)
	queue.WriteBuffer(r.idxBuf, 0, r.staging)

	r.version = g.Version()
	r.uploaded = true
	r.uploads++
}

// destroyGeometry releases the vertex and index buffers.
func (r *LineResources) destroyGeometry(device hal.Device) {
	for i, buf := range r.vertBufs {
		if buf != nil {
			device.DestroyBuffer(buf)
			r.vertBufs[i] = nil
		}
	}
	if r.idxBuf != nil {
		device.DestroyBuffer(r.idxBuf)
		r.idxBuf = nil
	}
	r.segments = 0
	r.indexCount = 0
	r.uploaded = false
}

// Destroy releases every buffer and the bind group. Safe to call more
// than once.
func (r *LineResources) Destroy(device hal.Device) {
	if device == nil {
		return
	}
	if r.bindGroup != nil {
		device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	if r.uniformBuf != nil {
		device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
	}
	r.destroyGeometry(device)
}

func appendFloat32s(dst []byte, src []float32) []byte {
	for _, v := range src {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}

func appendUint32s(dst []byte, src []uint32) []byte {
	for _, v := range src {
		dst = binary.LittleEndian.AppendUint32(dst, v)
	}
	return dst
}

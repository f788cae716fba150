//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/thickline"
)

// lineUniformSize is the byte size of the line shader's uniform block.
// Layout (std140-compatible, all f32):
//
//	projection     mat4x4 @   0
//	view           mat4x4 @  64
//	world          mat4x4 @ 128
//	viewport       vec4   @ 192  (x, y, width, height)
//	color          vec4   @ 208  (r, g, b, opacity)
//	camera_extents vec2   @ 224
//	draw_range     vec2   @ 232
//	width          f32    @ 240
//	dash_length    f32    @ 244
//	dash_offset    f32    @ 248
//	total_length   f32    @ 252
const lineUniformSize = 256

// Byte offsets into the uniform block.
const (
	offProjection    = 0
	offView          = 64
	offWorld         = 128
	offViewport      = 192
	offColor         = 208
	offCameraExtents = 224
	offDrawRange     = 232
	offWidth         = 240
	offDashLength    = 244
	offDashOffset    = 248
	offTotalLength   = 252
)

// makeLineUniform packs u and the world matrix into a 256-byte block.
// mgl64 matrices are column-major, matching WGSL's mat4x4 storage.
func makeLineUniform(u *thickline.Uniforms, world mgl64.Mat4) []byte {
	return packLineUniform(make([]byte, lineUniformSize), u, world)
}

// packLineUniform writes the uniform block into buf, which must be at
// least lineUniformSize bytes, and returns buf.
func packLineUniform(buf []byte, u *thickline.Uniforms, world mgl64.Mat4) []byte {
	s := u.Shared
	if s == nil {
		s = thickline.DefaultShared()
	}
	putMat4(buf[offProjection:], s.Projection)
	putMat4(buf[offView:], s.View)
	putMat4(buf[offWorld:], world)

	putFloats(buf[offViewport:], s.Viewport.X, s.Viewport.Y, s.Viewport.Width, s.Viewport.Height)
	putFloats(buf[offColor:], u.Color.R, u.Color.G, u.Color.B, u.Opacity)
	putFloats(buf[offCameraExtents:], s.CameraExtents[0], s.CameraExtents[1])
	putFloats(buf[offDrawRange:], u.DrawRange[0], u.DrawRange[1])
	putFloats(buf[offWidth:], u.Width, u.DashLength, u.DashOffset, u.TotalLength)
	return buf
}

func putMat4(dst []byte, m mgl64.Mat4) {
	for i, v := range m {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(float32(v)))
	}
}

func putFloats(dst []byte, vs ...float64) {
	for i, v := range vs {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(float32(v)))
	}
}

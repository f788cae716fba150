// Package gpu renders thickline geometry through the wgpu HAL.
//
// A LineRenderer owns the shader and render pipeline. LineResources owns
// the per-line vertex, index and uniform buffers and re-uploads them only
// when the line's geometry version changes. Both are driven by the public
// thickline/gpu package.
package gpu

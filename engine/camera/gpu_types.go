package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (208 bytes, std430 aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
// Size: 208 bytes (std430 / WGSL aligned).
type GPUCameraUniform struct {
	View     [16]float32 // offset   0: view matrix including arcball rotation (mat4x4<f32>)
	Proj     [16]float32 // offset  64: projection matrix (mat4x4<f32>)
	ViewProj [16]float32 // offset 128: combined view-projection matrix (mat4x4<f32>)
	Eye      [3]float32  // offset 192: world-space camera position (vec3<f32>)
	_pad     float32     // offset 204: padding to 208 bytes
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (208)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	putMat := func(offset int, m [16]float32) {
		for i := range 16 {
			binary.LittleEndian.PutUint32(buf[offset+i*4:], math.Float32bits(m[i]))
		}
	}
	putMat(0, g.View)
	putMat(64, g.Proj)
	putMat(128, g.ViewProj)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[192+i*4:], math.Float32bits(g.Eye[i]))
	}
	binary.LittleEndian.PutUint32(buf[204:], 0) // _pad
	return buf
}

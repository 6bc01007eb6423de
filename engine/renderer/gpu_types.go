package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
)

//go:embed assets/gizmo.wgsl
var gizmoShaderSource string

// GizmoShaderSource returns the complete WGSL module for the gizmo pipeline, with the
// CameraUniform struct definition prepended.
//
// Returns:
//   - string: the WGSL source
func GizmoShaderSource() string {
	return camera.GPUCameraUniformSource + "\n" + gizmoShaderSource
}

// GPUGizmoVertex is a single line-list vertex. Size: 24 bytes.
type GPUGizmoVertex struct {
	Position [3]float32 // offset  0: @location(0) vec3<f32>
	Color    [3]float32 // offset 12: @location(1) vec3<f32>
}

// GPUGizmoVertexSize is the stride of GPUGizmoVertex in a vertex buffer.
const GPUGizmoVertexSize = 24

// GizmoLineList flattens polylines into line-list vertices, two per segment.
//
// Parameters:
//   - lines: the polylines to flatten
//
// Returns:
//   - []GPUGizmoVertex: the vertices in draw order
func GizmoLineList(lines []common.Polyline) []GPUGizmoVertex {
	n := 0
	for _, l := range lines {
		if len(l.Points) > 1 {
			n += 2 * (len(l.Points) - 1)
		}
	}
	out := make([]GPUGizmoVertex, 0, n)
	for _, l := range lines {
		for i := 1; i < len(l.Points); i++ {
			out = append(out,
				GPUGizmoVertex{Position: l.Points[i-1], Color: l.Color},
				GPUGizmoVertex{Position: l.Points[i], Color: l.Color},
			)
		}
	}
	return out
}

// MarshalGizmoVertices serializes vertices into a byte buffer suitable for GPU upload.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: the serialized byte buffer
func MarshalGizmoVertices(vertices []GPUGizmoVertex) []byte {
	buf := make([]byte, len(vertices)*GPUGizmoVertexSize)
	for i, v := range vertices {
		base := i * GPUGizmoVertexSize
		for j := range 3 {
			binary.LittleEndian.PutUint32(buf[base+j*4:], math.Float32bits(v.Position[j]))
			binary.LittleEndian.PutUint32(buf[base+12+j*4:], math.Float32bits(v.Color[j]))
		}
	}
	return buf
}

package renderer

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestGizmoLineList(t *testing.T) {
	tests := []struct {
		name  string
		lines []common.Polyline
		want  int
	}{
		{"empty", nil, 0},
		{"single point", []common.Polyline{{Points: []mgl32.Vec3{{0, 0, 0}}}}, 0},
		{"two strips", []common.Polyline{
			{Points: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}},
			{Points: []mgl32.Vec3{{0, 0, 0}, {0, 0, 1}}},
		}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(GizmoLineList(tt.lines)); got != tt.want {
				t.Errorf("len(GizmoLineList()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGizmoLineListSharesEndpoints(t *testing.T) {
	red := [3]float32{1, 0, 0}
	v := GizmoLineList([]common.Polyline{{Points: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, Color: red}})
	if v[1].Position != v[2].Position {
		t.Errorf("segment ends %v and next start %v differ", v[1].Position, v[2].Position)
	}
	if v[3].Position != [3]float32{1, 1, 0} || v[3].Color != red {
		t.Errorf("last vertex = %+v", v[3])
	}
}

func TestGizmoVertexCount(t *testing.T) {
	segments := 8
	v := GizmoLineList(common.Gizmo(1, segments))
	want := 2 * (3*segments + 3*common.GizmoAxisSteps)
	if len(v) != want {
		t.Errorf("vertex count = %d, want %d", len(v), want)
	}
}

func TestMarshalGizmoVertices(t *testing.T) {
	buf := MarshalGizmoVertices([]GPUGizmoVertex{
		{Position: [3]float32{1, 2, 3}, Color: [3]float32{0.5, 0.25, 1}},
		{Position: [3]float32{-1, 0, 4}},
	})
	if len(buf) != 2*GPUGizmoVertexSize {
		t.Fatalf("len = %d, want %d", len(buf), 2*GPUGizmoVertexSize)
	}
	read := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	tests := []struct {
		offset int
		want   float32
	}{
		{0, 1}, {8, 3}, {12, 0.5}, {20, 1}, {24, -1}, {32, 4}, {36, 0},
	}
	for _, tt := range tests {
		if got := read(tt.offset); got != tt.want {
			t.Errorf("float at %d = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestGizmoShaderSource(t *testing.T) {
	src := GizmoShaderSource()
	for _, want := range []string{"struct CameraUniform", "var<uniform> camera: CameraUniform", "fn vs_main", "fn fs_main"} {
		if !strings.Contains(src, want) {
			t.Errorf("shader source missing %q", want)
		}
	}
	if strings.Index(src, "struct CameraUniform") > strings.Index(src, "var<uniform> camera") {
		t.Error("CameraUniform must be declared before use")
	}
}

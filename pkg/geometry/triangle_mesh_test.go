package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleMesh(t *testing.T) {
	vertices := []mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 0, 1}, {1, 0, 1},
	}
	faces := []int{0, 1, 2, 1, 3, 2}
	mesh := NewTriangleMesh(vertices, faces)

	require.Equal(t, 2, mesh.TriangleCount())

	a, b, c := mesh.Triangle(0)
	assert.Equal(t, vertices[0], a)
	assert.Equal(t, vertices[1], b)
	assert.Equal(t, vertices[2], c)

	// Two right triangles forming a unit square
	assert.InDelta(t, 1.0, mesh.Area(), 1e-12)
}

func TestTriangleMeshValidation(t *testing.T) {
	vertices := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	assert.Panics(t, func() {
		NewTriangleMesh(vertices, []int{0, 1})
	}, "face indices must come in groups of 3")

	assert.Panics(t, func() {
		NewTriangleMesh(vertices, []int{0, 1, 5})
	}, "out-of-bounds index must be rejected")

	assert.Panics(t, func() {
		NewTriangleMesh(vertices, []int{0, 1, -1})
	}, "negative index must be rejected")
}

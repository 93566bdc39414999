// Package geometry provides triangle geometry backing mesh area lights.
package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
)

// TriangleMesh stores shared vertices with triangle face indices. It
// satisfies the lights package's Geometry interface.
type TriangleMesh struct {
	vertices []mgl64.Vec3
	faces    []int
}

// NewTriangleMesh creates a triangle mesh from vertices and face indices;
// each group of 3 indices forms a triangle.
func NewTriangleMesh(vertices []mgl64.Vec3, faces []int) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}
	for _, index := range faces {
		if index < 0 || index >= len(vertices) {
			panic("Face index out of bounds")
		}
	}
	return &TriangleMesh{vertices: vertices, faces: faces}
}

// TriangleCount returns the number of triangles in the mesh.
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.faces) / 3
}

// Triangle returns the vertices of the i-th triangle.
func (tm *TriangleMesh) Triangle(i int) (a, b, c mgl64.Vec3) {
	return tm.vertices[tm.faces[i*3]], tm.vertices[tm.faces[i*3+1]], tm.vertices[tm.faces[i*3+2]]
}

// Area returns the total surface area of the mesh.
func (tm *TriangleMesh) Area() float64 {
	total := 0.0
	for i := 0; i < tm.TriangleCount(); i++ {
		a, b, c := tm.Triangle(i)
		total += 0.5 * b.Sub(a).Cross(c.Sub(a)).Len()
	}
	return total
}

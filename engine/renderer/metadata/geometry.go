package metadata

import (
	"fmt"

	"github.com/spaghettifunk/filare/engine/math"
)

// Mesh is the immutable geometry of one loaded object. Points are stored
// densely and faces hold zero-based indices into them; the 1-based indices
// of the source file are translated and bounds-checked at construction, so
// the per-frame path never validates.
type Mesh struct {
	Name   string
	Points []math.Vec3
	Faces  [][]uint32
}

// IntegrityError reports a structurally invalid mesh: a face referencing a
// vertex outside the loaded point range, or a face with fewer than three
// vertices. Meshes are rejected whole, before any frame is rendered.
type IntegrityError struct {
	Mesh   string
	Face   int
	Reason string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("mesh %q: face %d: %s", e.Mesh, e.Face, e.Reason)
}

// NewMesh builds a Mesh from points and faces carrying 1-based vertex
// indices (the source file convention). Every index is validated against
// [1, len(points)] and stored zero-based.
func NewMesh(name string, points []math.Vec3, faces [][]uint32) (*Mesh, error) {
	out := &Mesh{
		Name:   name,
		Points: points,
		Faces:  make([][]uint32, 0, len(faces)),
	}
	for fi, face := range faces {
		if len(face) < 3 {
			return nil, &IntegrityError{
				Mesh:   name,
				Face:   fi,
				Reason: fmt.Sprintf("has %d vertices, need at least 3", len(face)),
			}
		}
		translated := make([]uint32, len(face))
		for vi, idx := range face {
			if idx < 1 || idx > uint32(len(points)) {
				return nil, &IntegrityError{
					Mesh:   name,
					Face:   fi,
					Reason: fmt.Sprintf("vertex index %d out of range [1, %d]", idx, len(points)),
				}
			}
			translated[vi] = idx - 1
		}
		out.Faces = append(out.Faces, translated)
	}
	return out, nil
}

// VertexCount returns the number of points in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Points)
}

// FaceCount returns the number of faces in the mesh.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

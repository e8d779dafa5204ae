package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/filare/engine/math"
	"github.com/spaghettifunk/filare/engine/renderer/metadata"
)

func writeMesh(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.obj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTriangle(t *testing.T) {
	path := writeMesh(t, `v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
f 1 2 3
`)

	var ml MeshLoader
	mesh, err := ml.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.VertexCount() != 3 {
		t.Fatalf("got %d vertices, want 3", mesh.VertexCount())
	}
	if mesh.FaceCount() != 1 {
		t.Fatalf("got %d faces, want 1", mesh.FaceCount())
	}
	if !mesh.Points[1].Compare(math.NewVec3(1, 0, 0), 1e-6) {
		t.Fatalf("vertex 1 = %+v, want (1,0,0)", mesh.Points[1])
	}
	// File indices are 1-based, storage is 0-based.
	want := []uint32{0, 1, 2}
	for i, idx := range mesh.Faces[0] {
		if idx != want[i] {
			t.Fatalf("face indices = %v, want %v", mesh.Faces[0], want)
		}
	}
}

func TestLoadSkipsUnknownTags(t *testing.T) {
	path := writeMesh(t, `# a comment line
v 0 0 0
vn 0.0 1.0 0.0
vt 0.5 0.5
v 1 0 0
v 0 1 0
g group1
f 1 2 3
`)

	var ml MeshLoader
	mesh, err := ml.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.VertexCount() != 3 || mesh.FaceCount() != 1 {
		t.Fatalf("got %d vertices / %d faces, want 3 / 1", mesh.VertexCount(), mesh.FaceCount())
	}
}

func TestLoadFailsOnBadNumericToken(t *testing.T) {
	path := writeMesh(t, "v 1.0 abc 3.0\n")

	var ml MeshLoader
	_, err := ml.Load(path)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if pe.Token != "abc" || pe.Line != 1 {
		t.Fatalf("ParseError = %+v, want token \"abc\" on line 1", pe)
	}
}

func TestLoadFailsOnBadFaceIndexToken(t *testing.T) {
	path := writeMesh(t, "v 0 0 0\nf 1 two 3\n")

	var ml MeshLoader
	var pe *ParseError
	if _, err := ml.Load(path); !errors.As(err, &pe) {
		t.Fatalf("got %v, want *ParseError", err)
	}
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	var ml MeshLoader
	_, err := ml.Load(filepath.Join(t.TempDir(), "nope.obj"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoadRejectsOutOfRangeFaceIndex(t *testing.T) {
	path := writeMesh(t, `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 4
`)

	var ml MeshLoader
	_, err := ml.Load(path)
	var ie *metadata.IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("got %v, want *metadata.IntegrityError", err)
	}
}

func TestLoadRejectsShortFace(t *testing.T) {
	path := writeMesh(t, "v 0 0 0\nv 1 0 0\nf 1 2\n")

	var ml MeshLoader
	_, err := ml.Load(path)
	var ie *metadata.IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("got %v, want *metadata.IntegrityError", err)
	}
}

func TestLoadFailsOnWrongCoordinateCount(t *testing.T) {
	path := writeMesh(t, "v 1.0 2.0\n")

	var ml MeshLoader
	var pe *ParseError
	if _, err := ml.Load(path); !errors.As(err, &pe) {
		t.Fatalf("got %v, want *ParseError", err)
	}
}

package loaders

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spaghettifunk/filare/engine/math"
	"github.com/spaghettifunk/filare/engine/renderer/metadata"
)

// ParseError reports a malformed numeric token in a mesh file. Bad tokens
// are never substituted with defaults; the whole load fails.
type ParseError struct {
	Path  string
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: cannot parse %q: %v", e.Path, e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MeshLoader parses the line-oriented vertex/face text format:
//
//	v <x> <y> <z>          one vertex, three real numbers
//	f <i1> <i2> <i3> ...   one face, 1-based vertex indices
//
// Lines with any other leading token are ignored.
type MeshLoader struct{}

// Load reads and parses the mesh at path. It fails with a wrapped I/O
// error if the file cannot be opened, a *ParseError on a malformed
// numeric token, and a *metadata.IntegrityError if a face references a
// vertex outside the loaded range.
func (ml *MeshLoader) Load(path string) (*metadata.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh file: %w", err)
	}
	defer file.Close()

	var points []math.Vec3
	var faces [][]uint32

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "v":
			if len(words) != 4 {
				return nil, &ParseError{
					Path:  path,
					Line:  lineNo,
					Token: strings.Join(words[1:], " "),
					Err:   fmt.Errorf("vertex needs exactly 3 coordinates, got %d", len(words)-1),
				}
			}
			var coords [3]float32
			for i, w := range words[1:] {
				f, err := strconv.ParseFloat(w, 32)
				if err != nil {
					return nil, &ParseError{Path: path, Line: lineNo, Token: w, Err: err}
				}
				coords[i] = float32(f)
			}
			points = append(points, math.NewVec3(coords[0], coords[1], coords[2]))
		case "f":
			face := make([]uint32, 0, len(words)-1)
			for _, w := range words[1:] {
				idx, err := strconv.ParseUint(w, 10, 32)
				if err != nil {
					return nil, &ParseError{Path: path, Line: lineNo, Token: w, Err: err}
				}
				face = append(face, uint32(idx))
			}
			faces = append(faces, face)
		default:
			// Unrecognized tags (comments, normals, texture
			// coordinates) are skipped.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mesh file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return metadata.NewMesh(name, points, faces)
}

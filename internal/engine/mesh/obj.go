// Package mesh builds CPU-side geometry: Wavefront OBJ models and the
// procedural star field and ground grid.
package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/varkon/internal/engine/gfx"
)

// objKey identifies a unique position/uv/normal combination.
type objKey struct {
	v, vt, vn int
}

// LoadOBJ reads and parses an OBJ file.
func LoadOBJ(path string) (gfx.MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return gfx.MeshData{}, err
	}
	defer f.Close()

	data, err := ParseOBJ(f)
	if err != nil {
		return gfx.MeshData{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return data, nil
}

// ParseOBJ parses positions, texture coordinates, normals and faces.
// Polygons are fan-triangulated and vertices are de-duplicated per unique
// v/vt/vn triple. Materials and groups are ignored.
func ParseOBJ(r io.Reader) (gfx.MeshData, error) {
	var (
		positions []mgl32.Vec3
		uvs       []mgl32.Vec2
		normals   []mgl32.Vec3
		out       gfx.MeshData
	)
	seen := make(map[objKey]uint32)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
			continue
		}

		switch parts[0] {
		case "v":
			v, err := parseFloats(parts[1:], 3)
			if err != nil {
				return out, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, mgl32.Vec3{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(parts[1:], 2)
			if err != nil {
				return out, fmt.Errorf("line %d: texcoord: %w", lineNo, err)
			}
			uvs = append(uvs, mgl32.Vec2{v[0], v[1]})
		case "vn":
			v, err := parseFloats(parts[1:], 3)
			if err != nil {
				return out, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})
		case "f":
			if len(parts) < 4 {
				return out, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			face := make([]uint32, 0, len(parts)-1)
			for _, ref := range parts[1:] {
				key, err := parseFaceRef(ref, len(positions), len(uvs), len(normals))
				if err != nil {
					return out, fmt.Errorf("line %d: %w", lineNo, err)
				}
				idx, ok := seen[key]
				if !ok {
					idx = uint32(len(out.Vertices))
					out.Vertices = append(out.Vertices, buildVertex(key, positions, uvs, normals))
					seen[key] = idx
				}
				face = append(face, idx)
			}
			for i := 1; i+1 < len(face); i++ {
				out.Indices = append(out.Indices, face[0], face[i], face[i+1])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return out, err
	}
	return out, nil
}

func buildVertex(key objKey, positions []mgl32.Vec3, uvs []mgl32.Vec2, normals []mgl32.Vec3) gfx.Vertex {
	v := gfx.Vertex{Position: positions[key.v]}
	if key.vt >= 0 {
		v.TexCoord = uvs[key.vt]
	}
	if key.vn >= 0 {
		v.Normal = normals[key.vn]
	} else {
		v.Normal = mgl32.Vec3{0, 1, 0}
	}
	return v
}

// parseFaceRef parses "v", "v/vt", "v//vn" or "v/vt/vn" into zero-based
// indices. Missing components are -1. Negative OBJ indices are relative to
// the end of the respective list.
func parseFaceRef(ref string, nv, nvt, nvn int) (objKey, error) {
	fields := strings.Split(ref, "/")
	key := objKey{v: -1, vt: -1, vn: -1}

	var err error
	if key.v, err = resolveIndex(fields[0], nv); err != nil || key.v < 0 {
		return key, fmt.Errorf("bad vertex reference %q", ref)
	}
	if len(fields) > 1 && fields[1] != "" {
		if key.vt, err = resolveIndex(fields[1], nvt); err != nil || key.vt < 0 {
			return key, fmt.Errorf("bad texcoord reference %q", ref)
		}
	}
	if len(fields) > 2 && fields[2] != "" {
		if key.vn, err = resolveIndex(fields[2], nvn); err != nil || key.vn < 0 {
			return key, fmt.Errorf("bad normal reference %q", ref)
		}
	}
	return key, nil
}

func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return -1, err
	}
	switch {
	case i > 0 && i <= count:
		return i - 1, nil
	case i < 0 && -i <= count:
		return count + i, nil
	default:
		return -1, fmt.Errorf("index %d out of range (%d)", i, count)
	}
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

package mesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `
# a unit quad
mtllib quad.mtl
o Quad
v 0 0 0
v 1 0 0
v 1 0 1
v 0 0 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 1 0
usemtl Default
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJQuad(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader(quadOBJ))
	require.NoError(t, err)

	assert.Len(t, data.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, data.Indices)
	assert.Equal(t, mgl32.Vec3{1, 0, 1}, data.Vertices[2].Position)
	assert.Equal(t, mgl32.Vec2{1, 1}, data.Vertices[2].TexCoord)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, data.Vertices[2].Normal)
}

func TestParseOBJFaceFormats(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		vertices  int
		indices   int
		wantError bool
	}{
		{
			name:     "positions only",
			src:      "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n",
			vertices: 3,
			indices:  3,
		},
		{
			name:     "position and normal",
			src:      "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nf 1//1 2//1 3//1\n",
			vertices: 3,
			indices:  3,
		},
		{
			name:     "negative indices",
			src:      "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n",
			vertices: 3,
			indices:  3,
		},
		{
			name:     "shared vertices are deduplicated",
			src:      "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nf 1 2 3\nf 2 4 3\n",
			vertices: 4,
			indices:  6,
		},
		{
			name:      "index out of range",
			src:       "v 0 0 0\nf 1 2 3\n",
			wantError: true,
		},
		{
			name:      "degenerate face",
			src:       "v 0 0 0\nv 1 0 0\nf 1 2\n",
			wantError: true,
		},
		{
			name:      "bad number",
			src:       "v 0 zero 0\n",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ParseOBJ(strings.NewReader(tt.src))
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, data.Vertices, tt.vertices)
			assert.Len(t, data.Indices, tt.indices)
		})
	}
}

func TestParseOBJDefaultNormal(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	require.NoError(t, err)
	for _, v := range data.Vertices {
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, v.Normal)
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte(quadOBJ), 0o644))

	data, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Len(t, data.Indices, 6)

	_, err = LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}

func TestStarFieldDeterministic(t *testing.T) {
	a := StarField(500, 2000)
	b := StarField(500, 2000)

	require.Len(t, a.Vertices, 500)
	require.Len(t, a.Indices, 500)
	assert.Equal(t, a, b)

	for i, v := range a.Vertices {
		assert.Equal(t, uint32(i), a.Indices[i])
		for axis := 0; axis < 3; axis++ {
			assert.LessOrEqual(t, v.Position[axis], float32(1000))
			assert.GreaterOrEqual(t, v.Position[axis], float32(-1000))
		}
	}
}

func TestGround(t *testing.T) {
	g := Ground(200)

	n := GroundGridSize
	require.Len(t, g.Vertices, (n+1)*(n+1))
	require.Len(t, g.Indices, n*n*6)

	// Center vertex is flat, corners curve down.
	center := g.Vertices[(n/2)*(n+1)+n/2]
	assert.InDelta(t, 0, center.Position.Y(), 1e-6)
	assert.InDelta(t, 0, center.Position.X(), 1e-4)

	corner := g.Vertices[0]
	assert.Equal(t, float32(-200), corner.Position.X())
	assert.Less(t, corner.Position.Y(), float32(0))

	for _, idx := range g.Indices {
		assert.Less(t, idx, uint32(len(g.Vertices)))
	}
}

func TestBox(t *testing.T) {
	b := Box(1, 1, 3)
	assert.Len(t, b.Vertices, 24)
	assert.Len(t, b.Indices, 36)
	for _, v := range b.Vertices {
		assert.Equal(t, float32(3), abs(v.Position.Z()))
		assert.InDelta(t, 1, v.Normal.Len(), 1e-6)
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereCounts(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{64, 64},
		{32, 16},
		{3, 2},
		{8, 3},
	}

	for _, tt := range tests {
		m := Sphere(1, tt.w, tt.h)
		assert.Len(t, m.Vertices, (tt.w+1)*(tt.h+1), "w=%d h=%d", tt.w, tt.h)
		assert.Len(t, m.Indices, 6*tt.w*(tt.h-1), "w=%d h=%d", tt.w, tt.h)
		assert.Equal(t, 2*tt.w*(tt.h-1), m.TriangleCount())
	}
}

func TestSphereClampsSegments(t *testing.T) {
	m := Sphere(1, 0, 0)
	assert.Len(t, m.Vertices, (MinWidthSegments+1)*(MinHeightSegments+1))
}

func TestSphereUnitPositions(t *testing.T) {
	m := Sphere(1, 64, 64)
	for i, v := range m.Vertices {
		p := v.Position
		l := math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		require.InDelta(t, 1, l, 1e-5, "vertex %d", i)
		for k := 0; k < 3; k++ {
			require.InDelta(t, p[k], v.Normal[k], 1e-5, "vertex %d", i)
		}
	}
}

func TestSphereRadius(t *testing.T) {
	m := Sphere(2.5, 16, 8)
	assert.InDelta(t, 2.5, m.Vertices[0].Position[1], 1e-5)
	assert.InDelta(t, -2.5, m.Vertices[len(m.Vertices)-1].Position[1], 1e-5)
	// Normals stay unit length regardless of radius
	n := m.Vertices[len(m.Vertices)/2].Normal
	assert.InDelta(t, 1, math32.Sqrt(n[0]*n[0]+n[1]*n[1]+n[2]*n[2]), 1e-5)
}

func TestSphereOrientation(t *testing.T) {
	const w, h = 4, 2
	m := Sphere(1, w, h)

	// First vertex of the equator row starts at -X.
	equator := m.Vertices[(w+1)*1]
	assert.InDelta(t, -1, equator.Position[0], 1e-5)
	assert.InDelta(t, 0, equator.Position[1], 1e-5)
	assert.InDelta(t, 0, equator.Position[2], 1e-5)

	// A quarter turn reaches +Z.
	quarter := m.Vertices[(w+1)*1+1]
	assert.InDelta(t, 1, quarter.Position[2], 1e-5)

	// North pole row has v = 1, south pole row v = 0.
	assert.InDelta(t, 1, m.Vertices[0].TexCoord[1], 1e-6)
	assert.InDelta(t, 0, m.Vertices[len(m.Vertices)-1].TexCoord[1], 1e-6)

	// Pole rows carry half-segment u offsets.
	assert.InDelta(t, 0.5/w, m.Vertices[0].TexCoord[0], 1e-6)
	assert.InDelta(t, 1-0.5/w, m.Vertices[len(m.Vertices)-1].TexCoord[0], 1e-6)
}

func TestSphereIndicesInRange(t *testing.T) {
	m := Sphere(1, 12, 7)
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		require.Less(t, idx, n, "index %d", i)
	}
}

func TestUploadRejectsEmpty(t *testing.T) {
	_, err := Upload(&Mesh{})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Upload(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

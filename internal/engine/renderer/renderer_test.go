package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNormalMatrixRotationOnly(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{4.5, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	model := mgl32.HomogRotate3DY(0.7)

	// For a rigid transform the normal matrix is the rotation itself.
	want := view.Mul4(model).Mat3()
	got := NormalMatrix(view, model)
	assert.InDeltaSlice(t, want[:], got[:], 1e-5)
}

func TestNormalMatrixUniformScale(t *testing.T) {
	model := mgl32.Scale3D(2, 2, 2)
	n := NormalMatrix(mgl32.Ident4(), model)

	// Normals keep their direction; only the length changes.
	v := n.Mul3x1(mgl32.Vec3{0, 0, 1})
	assert.InDelta(t, 0, v.X(), 1e-6)
	assert.InDelta(t, 0, v.Y(), 1e-6)
	assert.Greater(t, v.Z(), float32(0))
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	model := mgl32.Scale3D(1, 4, 1)
	n := NormalMatrix(mgl32.Ident4(), model)

	// A surface tilted 45 degrees in XY is stretched along Y, so its
	// normal leans toward X.
	v := n.Mul3x1(mgl32.Vec3{1, 1, 0}.Normalize()).Normalize()
	assert.Greater(t, v.X(), v.Y())
}

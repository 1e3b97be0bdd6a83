package mesh

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrEmpty is returned when uploading a mesh without vertices or indices.
var ErrEmpty = errors.New("mesh: empty mesh")

// Vertex attribute locations used by the shaders.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTexCoord = 2
)

// GPUMesh is a mesh resident in GPU buffers.
type GPUMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Upload copies the mesh into a new VAO with interleaved vertex data.
// Requires a current GL context.
func Upload(m *Mesh) (*GPUMesh, error) {
	if m == nil || len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, ErrEmpty
	}

	g := &GPUMesh{}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(AttribPosition, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(AttribPosition)
	// Normal
	gl.VertexAttribPointerWithOffset(AttribNormal, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(AttribNormal)
	// TexCoord
	gl.VertexAttribPointerWithOffset(AttribTexCoord, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(AttribTexCoord)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	g.indexCount = int32(len(m.Indices))
	gl.BindVertexArray(0)

	return g, nil
}

// Draw issues one indexed draw call. The caller binds the program.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers. Safe to call more than once.
func (g *GPUMesh) Delete() {
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
		g.ebo = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}

// Package ui2d provides a simple immediate-mode 2D UI rendered with OpenGL.
package ui2d

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/globe/internal/engine/shader"
)

// Renderer batches quads for one frame and draws them in End. Coordinates
// are window points with the origin at the top left.
type Renderer struct {
	width, height int

	solid  *shader.Program
	glyphs *shader.Program

	solidVAO, solidVBO uint32
	glyphVAO, glyphVBO uint32

	batch *batch
	font  *Font
}

// New creates a renderer for a screen of width x height points.
// Requires a current GL context.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{width: width, height: height, batch: newBatch()}

	var err error
	if r.solid, err = shader.NewProgram("ui_solid", solidVertexShader, solidFragmentShader); err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}
	if r.glyphs, err = shader.NewProgram("ui_glyph", glyphVertexShader, glyphFragmentShader); err != nil {
		r.Close()
		return nil, fmt.Errorf("create glyph shader: %w", err)
	}

	r.solidVAO, r.solidVBO = createBuffers([]int32{2, 4})
	r.glyphVAO, r.glyphVBO = createBuffers([]int32{2, 2, 4})

	if r.font, err = NewFont(); err != nil {
		r.Close()
		return nil, fmt.Errorf("create font: %w", err)
	}
	return r, nil
}

// Resize updates the screen size in points.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Begin discards the previous frame's quads.
func (r *Renderer) Begin() {
	r.batch.reset()
}

// End draws the frame's quads over the scene and restores blend, depth
// and cull state.
func (r *Renderer) End() {
	var blend, depth, cull, depthMask bool
	gl.GetBooleanv(gl.BLEND, &blend)
	gl.GetBooleanv(gl.DEPTH_TEST, &depth)
	gl.GetBooleanv(gl.CULL_FACE, &cull)
	gl.GetBooleanv(gl.DEPTH_WRITEMASK, &depthMask)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.DepthMask(false)

	proj := mgl32.Ortho(0, float32(r.width), float32(r.height), 0, -1, 1)

	if n := r.batch.solidCount(); n > 0 {
		r.solid.Use()
		r.solid.SetMat4("uProjection", proj)
		upload(r.solidVAO, r.solidVBO, r.batch.solid)
		gl.DrawArrays(gl.TRIANGLES, 0, n)
	}

	if n := r.batch.glyphCount(); n > 0 {
		r.glyphs.Use()
		r.glyphs.SetMat4("uProjection", proj)
		r.glyphs.SetInt("uAtlas", 0)
		r.font.tex.Bind(0)
		upload(r.glyphVAO, r.glyphVBO, r.batch.glyphs)
		gl.DrawArrays(gl.TRIANGLES, 0, n)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	setCap(gl.BLEND, blend)
	setCap(gl.DEPTH_TEST, depth)
	setCap(gl.CULL_FACE, cull)
	gl.DepthMask(depthMask)
}

func setCap(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func upload(vao, vbo uint32, data []float32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STREAM_DRAW)
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.font != nil {
		r.font.Close()
		r.font = nil
	}
	for _, vao := range []*uint32{&r.solidVAO, &r.glyphVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, vbo := range []*uint32{&r.solidVBO, &r.glyphVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
			*vbo = 0
		}
	}
	if r.solid != nil {
		r.solid.Delete()
		r.solid = nil
	}
	if r.glyphs != nil {
		r.glyphs.Delete()
		r.glyphs = nil
	}
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, width, height float32, color Color) {
	r.batch.rect(x, y, width, height, color)
}

// DrawRectOutline draws a rectangle outline.
func (r *Renderer) DrawRectOutline(x, y, width, height, thickness float32, color Color) {
	r.batch.outline(x, y, width, height, thickness, color)
}

// DrawPanel draws a filled rectangle with a one point border.
func (r *Renderer) DrawPanel(x, y, width, height float32, bg, border Color) {
	r.batch.rect(x, y, width, height, bg)
	r.batch.outline(x, y, width, height, 1, border)
}

// DrawText draws text with its top left corner at (x, y).
func (r *Renderer) DrawText(x, y float32, text string, scale float32, color Color) {
	r.batch.text(r.font.Atlas, x, y, text, scale, color)
}

// MeasureText returns the width and height of rendered text.
func (r *Renderer) MeasureText(text string, scale float32) (float32, float32) {
	return r.font.Measure(text, scale)
}

// createBuffers creates a VAO/VBO pair of tightly packed float attributes
// with the given component counts at locations 0, 1, ...
func createBuffers(components []int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	var stride int32
	for _, n := range components {
		stride += n * 4
	}
	var offset uintptr
	for i, n := range components {
		gl.VertexAttribPointerWithOffset(uint32(i), n, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(uint32(i))
		offset += uintptr(n * 4)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

const solidVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
    gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
    vColor = aColor;
}
`

const solidFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
`

const glyphVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vUV;
out vec4 vColor;

void main() {
    gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
`

const glyphFragmentShader = `
#version 410 core

uniform sampler2D uAtlas;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(vColor.rgb, vColor.a * texture(uAtlas, vUV).a);
}
`

// Package renderer draws the globe scene with OpenGL.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/engine/mesh"
	"github.com/Faultbox/globe/internal/engine/shader"
	"github.com/Faultbox/globe/internal/engine/texture"
	"github.com/Faultbox/globe/internal/globe"
	"github.com/Faultbox/globe/internal/logger"
	"github.com/Faultbox/globe/internal/shading"
)

// Texture units used by the globe program.
const (
	UnitDay   = 0
	UnitNight = 1
	UnitBump  = 2
)

// SourceFunc returns the GLSL sources for a program name.
type SourceFunc func(name string) (shading.Sources, error)

// Config holds renderer configuration.
type Config struct {
	// Drawable size in pixels.
	Width  int
	Height int

	ClearColor [3]float32
	Sources    SourceFunc
}

// Textures are the images sampled by the globe program.
type Textures struct {
	Day   *texture.Texture
	Night *texture.Texture
	Bump  *texture.Texture
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	globeProgram      *shader.Program
	atmosphereProgram *shader.Program

	// One sphere shared by the globe and the atmosphere shell.
	sphere   *mesh.GPUMesh
	textures Textures
}

// New creates a new renderer and compiles its programs.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.Sources == nil {
		cfg.Sources = shading.Embedded
	}
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
		zap.Int("max_texture_size", texture.MaxSize()),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.globeProgram, err = r.compile(shading.ProgramGlobe)
	if err != nil {
		return nil, err
	}
	r.atmosphereProgram, err = r.compile(shading.ProgramAtmosphere)
	if err != nil {
		r.globeProgram.Delete()
		return nil, err
	}

	return r, nil
}

func (r *Renderer) compile(name string) (*shader.Program, error) {
	src, err := r.config.Sources(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load shader sources: %w", err)
	}
	p, err := shader.NewProgram(name, src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	logger.Debug("shader program created", zap.String("program", name), zap.Uint32("id", p.ID()))
	return p, nil
}

// Upload moves the sphere and the decoded textures to the GPU. The
// renderer owns the uploaded resources from then on.
func (r *Renderer) Upload(sphere *mesh.Mesh, day, night, bump *texture.Decoded) error {
	gpu, err := mesh.Upload(sphere)
	if err != nil {
		return fmt.Errorf("failed to upload sphere: %w", err)
	}
	r.sphere = gpu

	uploads := []struct {
		dst **texture.Texture
		img *texture.Decoded
	}{
		{&r.textures.Day, day},
		{&r.textures.Night, night},
		{&r.textures.Bump, bump},
	}
	for _, u := range uploads {
		if u.img == nil {
			continue
		}
		t, err := texture.Upload(u.img.RGBA, texture.GlobeParams)
		if err != nil {
			return fmt.Errorf("failed to upload %s texture: %w", u.img.Name, err)
		}
		*u.dst = t
		logger.Debug("texture uploaded",
			zap.String("name", u.img.Name),
			zap.Int32("width", t.Width),
			zap.Int32("height", t.Height))
	}

	if r.textures.Day == nil || r.textures.Night == nil {
		return errors.New("day and night textures are required")
	}

	logger.Info("scene uploaded",
		zap.Int("vertices", len(sphere.Vertices)),
		zap.Int("triangles", sphere.TriangleCount()))
	return nil
}

// Reload recompiles one program from its current sources. The running
// program is kept when compilation fails.
func (r *Renderer) Reload(name string) error {
	var p *shader.Program
	switch name {
	case shading.ProgramGlobe:
		p = r.globeProgram
	case shading.ProgramAtmosphere:
		p = r.atmosphereProgram
	default:
		return fmt.Errorf("unknown program %q", name)
	}

	src, err := r.config.Sources(name)
	if err != nil {
		return err
	}
	return p.Reload(src.Vertex, src.Fragment)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, t := range []*texture.Texture{r.textures.Day, r.textures.Night, r.textures.Bump} {
		if t != nil {
			t.Delete()
		}
	}
	if r.sphere != nil {
		r.sphere.Delete()
	}
	if r.globeProgram != nil {
		r.globeProgram.Delete()
	}
	if r.atmosphereProgram != nil {
		r.atmosphereProgram.Delete()
	}
}

// Resize sets the viewport to the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawScene draws the opaque globe, then the blended atmosphere shell.
func (r *Renderer) DrawScene(s *globe.Scene, view, projection mgl32.Mat4) {
	if r.sphere == nil {
		return
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	// Globe: front faces, day/night shading.
	model := s.Globe.Model()
	p := r.globeProgram
	p.Use()
	p.SetMat4(shading.UniformModel, model)
	p.SetMat4(shading.UniformView, view)
	p.SetMat4(shading.UniformProjection, projection)
	p.SetMat3(shading.UniformNormalMatrix, NormalMatrix(view, model))
	p.SetVec3(shading.UniformLightDirection, s.Light.Vec())
	p.SetInt(shading.UniformDayTexture, UnitDay)
	p.SetInt(shading.UniformNightTexture, UnitNight)
	p.SetInt(shading.UniformBumpMap, UnitBump)
	r.textures.Day.Bind(UnitDay)
	r.textures.Night.Bind(UnitNight)
	if r.textures.Bump != nil {
		r.textures.Bump.Bind(UnitBump)
	}
	gl.CullFace(gl.BACK)
	r.sphere.Draw()

	// Atmosphere: back faces only, alpha blended over the globe.
	p = r.atmosphereProgram
	p.Use()
	p.SetMat4(shading.UniformModel, s.Atmosphere.Model())
	p.SetMat4(shading.UniformView, view)
	p.SetMat4(shading.UniformProjection, projection)
	p.SetVec3(shading.UniformColor, s.Atmosphere.Color)
	p.SetFloat(shading.UniformOpacity, s.Atmosphere.Opacity)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	gl.CullFace(gl.FRONT)
	r.sphere.Draw()
	gl.CullFace(gl.BACK)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	gl.ActiveTexture(gl.TEXTURE0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of
// view * model, which maps object normals into view space.
func NormalMatrix(view, model mgl32.Mat4) mgl32.Mat3 {
	return view.Mul4(model).Mat3().Inv().Transpose()
}

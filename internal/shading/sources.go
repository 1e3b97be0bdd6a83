package shading

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// Program names.
const (
	ProgramGlobe      = "globe"
	ProgramAtmosphere = "atmosphere"
)

// Uniform names shared by the GLSL sources and the renderer.
const (
	UniformDayTexture     = "dayTexture"
	UniformNightTexture   = "nightTexture"
	UniformBumpMap        = "bumpMap"
	UniformLightDirection = "lightDirection"
	UniformModel          = "uModel"
	UniformView           = "uView"
	UniformProjection     = "uProjection"
	UniformNormalMatrix   = "uNormalMatrix"
	UniformColor          = "uColor"
	UniformOpacity        = "uOpacity"
)

//go:embed shaders/*.vert shaders/*.frag
var embedded embed.FS

// Sources holds the GLSL text of one program.
type Sources struct {
	Name     string
	Vertex   string
	Fragment string
}

// Embedded returns the sources compiled into the binary.
func Embedded(name string) (Sources, error) {
	sub, err := fs.Sub(embedded, "shaders")
	if err != nil {
		return Sources{}, err
	}
	return load(sub, name)
}

// FromDir reads <name>.vert and <name>.frag from dir.
func FromDir(dir, name string) (Sources, error) {
	return load(os.DirFS(dir), name)
}

func load(fsys fs.FS, name string) (Sources, error) {
	vert, err := fs.ReadFile(fsys, name+".vert")
	if err != nil {
		return Sources{}, fmt.Errorf("program %s: %w", name, err)
	}
	frag, err := fs.ReadFile(fsys, name+".frag")
	if err != nil {
		return Sources{}, fmt.Errorf("program %s: %w", name, err)
	}
	return Sources{Name: name, Vertex: string(vert), Fragment: string(frag)}, nil
}

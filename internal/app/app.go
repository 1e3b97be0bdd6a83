// Package app wires the window, renderer, scene and controls into the
// running globe viewer.
package app

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/config"
	"github.com/Faultbox/globe/internal/debugpanel"
	"github.com/Faultbox/globe/internal/engine/camera"
	"github.com/Faultbox/globe/internal/engine/input"
	"github.com/Faultbox/globe/internal/engine/mesh"
	"github.com/Faultbox/globe/internal/engine/renderer"
	"github.com/Faultbox/globe/internal/engine/screenshot"
	"github.com/Faultbox/globe/internal/engine/shader"
	"github.com/Faultbox/globe/internal/engine/texture"
	"github.com/Faultbox/globe/internal/engine/ui2d"
	"github.com/Faultbox/globe/internal/engine/window"
	"github.com/Faultbox/globe/internal/globe"
	"github.com/Faultbox/globe/internal/logger"
	"github.com/Faultbox/globe/internal/loop"
	"github.com/Faultbox/globe/internal/shading"
)

// Title is the window title.
const Title = "Globe"

// App is the globe viewer instance.
type App struct {
	config *config.Config

	window     *window.Window
	renderer   *renderer.Renderer
	watcher    *shader.Watcher
	screenshot *screenshot.Capturer
	// capture is set by F12 and cleared once the frame is saved.
	capture bool

	scene      *globe.Scene
	camera     *camera.OrbitCamera
	projection *camera.Perspective
	controls   *orbitControls

	input  *input.Dispatcher
	panel  *debugpanel.Panel
	loop   *loop.Loop
	unsubs []input.Unsubscribe

	// unsubResize is released first at teardown so no resize reaches
	// closed GL resources.
	unsubResize input.Unsubscribe
}

// New creates the window and GL resources and loads the textures.
// Must be called from the main thread.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{config: cfg}
	if err := a.init(ctx); err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("viewer initialized successfully")
	return a, nil
}

func (a *App) init(ctx context.Context) error {
	cfg := a.config

	scene, err := globe.NewScene(cfg)
	if err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}
	a.scene = scene

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		HighDPI:    cfg.Graphics.HighDPI,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	sources := renderer.SourceFunc(shading.Embedded)
	if dir := cfg.Debug.ShaderDir; dir != "" {
		sources = func(name string) (shading.Sources, error) {
			return shading.FromDir(dir, name)
		}
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		ClearColor: cfg.Graphics.ClearColor,
		Sources:    sources,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.loadScene(ctx); err != nil {
		return err
	}

	if dir := cfg.Debug.ShaderDir; dir != "" {
		a.watcher, err = shader.NewWatcher(dir)
		if err != nil {
			logger.Warn("shader hot reload disabled", zap.String("dir", dir), zap.Error(err))
		}
	}

	w, h := a.window.Size()
	a.camera = camera.NewOrbitCamera(mgl32.Vec3(cfg.Camera.Position), mgl32.Vec3{})
	a.camera.DampingFactor = cfg.Camera.DampingFactor
	a.camera.EnableDamping = cfg.Camera.DampingFactor > 0
	a.camera.RotateSpeed = cfg.Camera.RotateSpeed
	a.camera.ZoomSpeed = cfg.Camera.ZoomSpeed
	a.camera.MinDistance = cfg.Camera.MinDistance
	if cfg.Camera.MaxDistance > 0 {
		a.camera.MaxDistance = cfg.Camera.MaxDistance
	}
	a.projection = camera.NewPerspective(cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far, w, h)
	a.controls = newOrbitControls(a.camera, h)

	ui, err := ui2d.NewContext(w, h)
	if err != nil {
		return fmt.Errorf("failed to create ui: %w", err)
	}
	a.panel = debugpanel.New(ui, a.scene, cfg.Light, cfg.Debug.Panel, w)

	a.screenshot = screenshot.New(cfg.Debug.ScreenshotDir, "globe")

	a.loop = loop.New(loop.NewWallClock(), a.tick)
	a.loop.OnStats(a.panel.SetStats)

	a.input = input.New()
	a.subscribe()
	return nil
}

// loadScene decodes the textures off the main thread and uploads them
// together with the sphere.
func (a *App) loadScene(ctx context.Context) error {
	assets := a.config.Assets

	maxSize := texture.MaxSize()
	if assets.MaxTextureSize > 0 && (maxSize <= 0 || assets.MaxTextureSize < maxSize) {
		maxSize = assets.MaxTextureSize
	}

	reqs := []texture.Request{
		{Name: "day", Path: assets.AssetPath(assets.Day)},
		{Name: "night", Path: assets.AssetPath(assets.Night)},
	}
	if assets.Bump != "" {
		reqs = append(reqs, texture.Request{Name: "bump", Path: assets.AssetPath(assets.Bump)})
	}

	images, err := texture.LoadAll(ctx, reqs, texture.LoadOptions{
		MaxSize: maxSize,
		FlipY:   true,
		Workers: assets.DecodeWorkers,
	})
	if err != nil {
		return fmt.Errorf("failed to load textures: %w", err)
	}

	var bump *texture.Decoded
	if len(images) > 2 {
		bump = images[2]
	}

	globeCfg := a.config.Globe
	// The mesh stays at unit radius; the node scale carries the radius.
	sphere := mesh.Sphere(1, globeCfg.WidthSegments, globeCfg.HeightSegments)
	if err := a.renderer.Upload(sphere, images[0], images[1], bump); err != nil {
		return fmt.Errorf("failed to upload scene: %w", err)
	}
	return nil
}

func (a *App) subscribe() {
	a.unsubResize = a.input.OnResize(a.resize)
	a.unsubs = append(a.unsubs,
		// The panel sees pointer input before the orbit controls.
		a.input.OnPointer(a.panel.HandlePointer),
		a.input.OnPointer(a.controls.pointer),
		a.input.OnWheel(a.panel.HandleWheel),
		a.input.OnWheel(a.controls.wheel),
		a.input.OnKey(a.key),
		a.input.OnQuit(a.loop.Stop),
	)
}

// resize receives the new window size in points.
func (a *App) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.projection.SetViewport(width, height)
	a.controls.resize(width, height)
	a.renderer.Resize(a.window.DrawableSize())
	a.panel.Resize(width, height)
}

func (a *App) key(e input.Event) {
	if e.Type == input.EventKeyDown && !e.Repeat {
		switch e.Key {
		case input.KeyEscape:
			a.loop.Stop()
			return
		case input.KeyF12:
			a.capture = true
			return
		}
	}
	a.panel.HandleKey(e)
}

// Run runs the render loop until the window closes or ctx is done.
func (a *App) Run(ctx context.Context) error {
	logger.Info("starting render loop")
	return a.loop.Run(ctx)
}

func (a *App) tick(dt float64) error {
	if a.input.Poll() {
		return loop.ErrQuit
	}
	a.reloadShaders()

	a.scene.Advance(dt)
	a.scene.SyncSun()
	a.camera.Update()

	a.renderer.Begin()
	a.renderer.DrawScene(a.scene, a.camera.ViewMatrix(), a.projection.Matrix())
	a.renderer.End()

	a.panel.Draw()

	if a.capture {
		a.capture = false
		a.saveScreenshot()
	}

	a.window.SwapBuffers()
	return nil
}

func (a *App) saveScreenshot() {
	w, h := a.window.DrawableSize()
	path, err := a.screenshot.Capture(w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (a *App) reloadShaders() {
	if a.watcher == nil {
		return
	}
	for _, name := range a.watcher.Pending() {
		if err := a.renderer.Reload(name); err != nil {
			logger.Warn("shader reload failed", zap.String("program", name), zap.Error(err))
		}
	}
}

// Close releases everything in reverse order of creation. Safe to call on
// a partially initialized App.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.loop != nil {
		a.loop.Stop()
	}
	if a.unsubResize != nil {
		a.unsubResize()
		a.unsubResize = nil
	}
	for _, unsub := range a.unsubs {
		unsub()
	}
	a.unsubs = nil
	if a.panel != nil {
		a.panel.Close()
		a.panel = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Warn("failed to close shader watcher", zap.Error(err))
		}
		a.watcher = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}

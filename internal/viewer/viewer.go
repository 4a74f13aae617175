// Package viewer runs the interactive scene viewer: window, input, camera,
// scene animation and rendering in one frame loop.
package viewer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/scenery/internal/assets"
	"github.com/Faultbox/scenery/internal/config"
	"github.com/Faultbox/scenery/internal/engine/camera"
	"github.com/Faultbox/scenery/internal/engine/debug"
	"github.com/Faultbox/scenery/internal/engine/input"
	"github.com/Faultbox/scenery/internal/engine/renderer"
	"github.com/Faultbox/scenery/internal/engine/scene"
	"github.com/Faultbox/scenery/internal/engine/window"
	"github.com/Faultbox/scenery/internal/logger"
	"github.com/Faultbox/scenery/internal/viewer/status"
)

// maxFrameTime caps dt so a stall (window drag, breakpoint) does not make
// animations and the camera jump.
const maxFrameTime = 250 * time.Millisecond

// Viewer is the main viewer instance.
type Viewer struct {
	config   *config.Config
	log      *zap.Logger
	running  bool
	world    *scene.World
	store    *assets.Store
	camera   *camera.Controller
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	fps      *status.FPSCounter
	shots    *debug.ScreenshotCapture
	watcher  *assets.Watcher

	// screenshot is requested by a key press and taken after the next
	// frame is drawn, before the buffers swap.
	screenshot bool
}

// New loads the scene and its resources and opens the window.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
		fps:    status.NewFPSCounter(),
		shots:  debug.NewScreenshotCapture("screenshots", "scene"),
	}

	v.store = assets.NewStore(cfg, assets.Loaders{})
	if err := v.loadScene(); err != nil {
		return nil, err
	}

	v.camera = camera.NewController(v.world.Camera.Placement, v.world.Camera.Projection, camera.Speeds{
		FreeroamRotate: cfg.Camera.FreeroamRotateSpeed,
		FreeroamMove:   cfg.Camera.FreeroamMoveSpeed,
		OrbitalRotate:  cfg.Camera.OrbitalRotateSpeed,
		OrbitalZoom:    cfg.Camera.OrbitalZoomSpeed,
	})
	if mode, ok := camera.ParseBehaviour(cfg.Camera.Mode); ok {
		v.camera.SetBehaviour(mode)
	}

	width, height := v.world.Window.Width, v.world.Window.Height
	if cfg.Graphics.Width > 0 {
		width = cfg.Graphics.Width
	}
	if cfg.Graphics.Height > 0 {
		height = cfg.Graphics.Height
	}

	// Create window (this also creates the OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      v.title(),
		Width:      width,
		Height:     height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{Width: w, Height: h}, renderer.DefaultOptions())
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.watch()

	v.log.Info("viewer initialized",
		zap.String("scene", cfg.Scene.File),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Stringer("camera", v.camera.Behaviour),
	)
	return v, nil
}

// Run starts the frame loop and returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true
	lastTime := time.Now()

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		elapsed := now.Sub(lastTime)
		lastTime = now
		if elapsed > maxFrameTime {
			elapsed = maxFrameTime
		}
		dt := float32(elapsed.Seconds())

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()
		v.checkReload()

		// 2. Move the camera
		for _, key := range v.input.HeldCameraKeys() {
			v.camera.HandleKey(key, dt)
		}

		// 3. Animate and render
		opts := v.renderer.Options()
		frame := v.world.Frame(dt, v.store, scene.FrameOptions{ShowPaths: opts.Debug})

		v.renderer.Begin(v.camera.ProjectionMatrix(v.renderer.Aspect()), v.camera.ViewMatrix())
		v.renderer.SetLights(v.world.Lights)
		v.renderer.Draw(frame)
		v.renderer.End()

		if v.screenshot {
			v.screenshot = false
			v.saveScreenshot()
		}

		// 4. Present
		v.window.SwapBuffers()

		if v.fps.Tick(elapsed) {
			v.window.SetTitle(v.title())
			v.log.Debug("fps", zap.Float64("fps", v.fps.FPS()), zap.Int("items", len(frame.Items)))
		}
	}

	return nil
}

// handleEvents applies resizes and the single-press toggles.
func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := v.window.Size()
			v.renderer.Resize(w, h)
		case input.EventKeyDown:
			v.handleKey(event.Key)
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	opts := v.renderer.Options()

	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
		return
	case sdl.SCANCODE_C:
		v.camera.ToggleMode()
		v.log.Info("camera mode", zap.Stringer("mode", v.camera.Behaviour))
	case sdl.SCANCODE_1:
		opts.Polygon = opts.Polygon.Next()
	case sdl.SCANCODE_2:
		opts.Debug = !opts.Debug
	case sdl.SCANCODE_3:
		opts.Cull = opts.Cull.Next()
	case sdl.SCANCODE_4:
		opts.Lighting = !opts.Lighting
	case sdl.SCANCODE_5:
		opts.Filter = opts.Filter.Next()
	case sdl.SCANCODE_0:
		v.window.ToggleFullscreen()
	case sdl.SCANCODE_F5:
		v.reload()
		return
	case sdl.SCANCODE_F12:
		v.screenshot = true
		return
	default:
		return
	}

	if opts != v.renderer.Options() {
		v.renderer.SetOptions(opts)
		v.log.Debug("render options",
			zap.Stringer("polygon", opts.Polygon),
			zap.Stringer("cull", opts.Cull),
			zap.Bool("lighting", opts.Lighting),
			zap.Stringer("filter", opts.Filter),
			zap.Bool("debug", opts.Debug),
		)
	}
	v.window.SetTitle(v.title())
}

// loadScene reads the scene file and every model and texture it names.
// Missing models and textures are reported but not fatal; the groups that
// use them are drawn without them.
func (v *Viewer) loadScene() error {
	world, err := scene.Load(v.config.Scene.File)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}

	v.store.Clear()
	if err := v.store.LoadWorld(world); err != nil {
		for _, e := range multierr.Errors(err) {
			v.log.Warn("resource unavailable", zap.Error(e))
		}
	}
	v.world = world
	return nil
}

// reload replaces the scene with a fresh copy from disk. The camera keeps
// its current placement; a scene that fails to parse leaves the old one in
// place.
func (v *Viewer) reload() {
	if err := v.loadScene(); err != nil {
		v.log.Error("reload failed", zap.Error(err))
		return
	}
	v.renderer.Purge()
	v.log.Info("scene reloaded", zap.String("scene", v.config.Scene.File))
	v.watch()
}

// watch (re)starts the file watcher on the scene and its resources.
func (v *Viewer) watch() {
	if !v.config.Scene.Watch {
		return
	}
	if v.watcher != nil {
		v.watcher.Close()
		v.watcher = nil
	}

	files := []string{v.config.Scene.File}
	for _, name := range v.world.ModelFiles() {
		files = append(files, v.config.ModelPath(name))
	}
	for _, name := range v.world.TextureFiles() {
		files = append(files, v.config.TexturePath(name))
	}

	w, err := assets.NewWatcher(files, assets.DefaultDebounce)
	if err != nil {
		v.log.Warn("file watching disabled", zap.Error(err))
		return
	}
	v.watcher = w
}

func (v *Viewer) checkReload() {
	if v.watcher == nil {
		return
	}
	select {
	case names := <-v.watcher.Changes():
		v.log.Info("files changed", zap.Strings("files", names))
		v.reload()
	default:
	}
}

func (v *Viewer) saveScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	name, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("file", name))
}

func (v *Viewer) title() string {
	line := status.Line{
		Name:    filepath.Base(v.config.Scene.File),
		FPS:     v.fps.FPS(),
		ShowFPS: v.config.Graphics.ShowFPS,
		Mode:    v.camera.Behaviour.String(),
	}
	opts := renderer.DefaultOptions()
	if v.renderer != nil {
		opts = v.renderer.Options()
	}
	line.Polygon = opts.Polygon.String()
	line.Cull = opts.Cull.String()
	line.Lighting = opts.Lighting
	line.Filter = opts.Filter.String()
	line.Debug = opts.Debug
	return line.String()
}

// Close releases the renderer and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.watcher != nil {
		v.watcher.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
	if v.store != nil {
		hits, misses := v.store.Stats()
		v.log.Debug("asset store", zap.Int("hits", hits), zap.Int("misses", misses))
	}
}

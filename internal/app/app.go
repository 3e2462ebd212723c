// Package app runs the editor windows: event dispatch, preset reloads
// and drawing, once per frame on the main thread.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/nurbs-editor/internal/config"
	"github.com/Faultbox/nurbs-editor/internal/editor"
	"github.com/Faultbox/nurbs-editor/internal/engine/debug"
	"github.com/Faultbox/nurbs-editor/internal/engine/input"
	"github.com/Faultbox/nurbs-editor/internal/engine/renderer"
	"github.com/Faultbox/nurbs-editor/internal/engine/shading"
	"github.com/Faultbox/nurbs-editor/internal/engine/window"
	"github.com/Faultbox/nurbs-editor/internal/logger"
	"github.com/Faultbox/nurbs-editor/internal/preset"
	"github.com/Faultbox/nurbs-editor/pkg/math"
	"github.com/Faultbox/nurbs-editor/pkg/nurbs"
)

var (
	background     = math.Vec3{X: 0.12, Y: 0.12, Z: 0.14}
	wireframeColor = math.Vec3{X: 0.9, Y: 0.9, Z: 0.9}
	netColor       = math.Vec3{X: 0.5, Y: 0.8, Z: 1}
	boundsColor    = math.Vec3{X: 0.9, Y: 0.9, Z: 0.3}
	normalsColor   = math.Vec3{X: 0, Y: 1, Z: 0}
)

// Surface is the NURBS surface editor.
type Surface struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	state   *editor.State
	control *editor.Controller
	store   *preset.Store
	watcher *preset.Watcher
	shots   *debug.Screenshots
	capture bool

	// Window size in screen coordinates, for cursor conversion.
	width, height int
	status        string
}

// NewSurface opens the window and builds the editor from cfg.
func NewSurface(cfg *config.Config) (*Surface, error) {
	logger.Info("initializing surface editor",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &Surface{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window created
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		Background: background,
		PointSize:  8,
		LineWidth:  1,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.width, a.height = a.window.Size()
	a.shots = debug.NewScreenshots(cfg.Editor.ScreenshotDir, "surface")

	a.state = editor.StateFromConfig(cfg, float32(dw)/float32(max(dh, 1)))
	a.control = editor.NewController(a.state, cfg.Editor.PickTolerance)

	a.store, err = preset.NewStore(cfg.Preset.Path)
	if err != nil {
		a.Close()
		return nil, err
	}
	if a.store.Path() != "" {
		a.reload()
	}
	if cfg.Preset.Watch && a.store.Path() != "" {
		a.watcher, err = a.store.Watch()
		if err != nil {
			logger.Warn("preset hot reload disabled", zap.Error(err))
		}
	}

	logger.Info("surface editor initialized")
	return a, nil
}

// Run processes events and draws until the window is closed.
func (a *Surface) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handle(event)
		}

		a.pollPreset()
		a.render()
		if a.capture {
			a.capture = false
			saveScreenshot(a.shots, a.renderer)
		}
		a.updateStatus()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the window, GL resources and the preset watcher.
func (a *Surface) Close() {
	logger.Info("closing surface editor")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Warn("closing preset watcher", zap.Error(err))
		}
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *Surface) cursor(e input.Event) math.Vec2 {
	return math.ScreenToNDC(float32(e.MouseX), float32(e.MouseY), float32(a.width), float32(a.height))
}

func (a *Surface) handle(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		a.width, a.height = a.window.Size()
		dw, dh := a.window.DrawableSize()
		a.renderer.Resize(dw, dh)
		a.state.SetViewport(dw, dh)
	case input.EventKeyDown:
		a.handleKey(e)
	case input.EventMouseDown:
		a.control.ButtonDown(editor.Button(e.Button), a.cursor(e))
	case input.EventMouseUp:
		a.control.ButtonUp(editor.Button(e.Button), a.cursor(e))
	case input.EventMouseMove:
		a.control.Move(a.cursor(e))
	case input.EventMouseWheel:
		a.control.Wheel(e.Wheel, a.cursor(e))
	}
}

func (a *Surface) handleKey(e input.Event) {
	switch e.Key {
	case keyQuit:
		a.running = false
	case keySave:
		if err := a.store.Save(a.state.Grid()); err != nil {
			logger.Error("failed to save preset", zap.Error(err))
		} else {
			logger.Info("preset saved", zap.String("path", a.store.Path()))
		}
	case keyReload:
		a.reload()
	case keyShot:
		a.capture = true
	default:
		if action, ok := surfaceKeys[e.Key]; ok {
			a.state.Apply(action)
		}
	}
}

// reload replaces the grid with the preset file, keeping the current
// grid when the file is missing or malformed.
func (a *Surface) reload() {
	g := nurbs.DefaultGrid()
	if err := a.store.Load(g); err != nil {
		if !errors.Is(err, preset.ErrNoPath) {
			logger.Warn("failed to load preset", zap.Error(err))
		}
		return
	}
	a.state.SetGrid(g)
	logger.Info("preset loaded", zap.String("path", a.store.Path()))
}

func (a *Surface) pollPreset() {
	if a.watcher == nil {
		return
	}
	select {
	case _, ok := <-a.watcher.Changes():
		if !ok {
			a.watcher = nil
			return
		}
		// Dragging a point that was just replaced would be confusing
		if a.control.Phase() == editor.DraggingPoint {
			return
		}
		g := nurbs.DefaultGrid()
		changed, err := a.store.Reload(g)
		if err != nil {
			logger.Warn("failed to reload preset", zap.Error(err))
			return
		}
		if changed {
			a.state.SetGrid(g)
			logger.Info("preset reloaded", zap.String("path", a.store.Path()))
		}
	default:
	}
}

func (a *Surface) render() {
	s := a.state
	r := a.renderer

	if m, rebuilt := s.Mesh(); rebuilt {
		r.UploadMesh(m.Buffers())
		r.UploadControlPoints(s.Grid().PointsBuffer())
		r.UploadBounds(m.Bounds.LineVertices())
		r.UploadNormals(m.NormalLines(s.NormalLength))
	}
	if s.Dirty.Take(editor.DirtyLight) {
		r.UploadLight(s.Light().Buffer())
	}

	model := s.ModelMatrix()
	view := s.Camera.ScaledViewMatrix()
	proj := s.Camera.ProjectionMatrix()

	r.Begin()
	if s.Fill {
		shading.Draw(r, s.Shading, shading.Frame{
			Model:      model,
			View:       view,
			Proj:       proj,
			Material:   s.Material(),
			Ambient:    s.Ambient,
			Light:      s.Light(),
			IndexCount: r.MeshIndexCount(),
		})
	}
	if s.Wireframe {
		r.DrawWireframe(model, view, proj, wireframeColor)
	}
	if s.ShowBounds {
		r.DrawBounds(model, view, proj, boundsColor)
	}
	if s.ShowNormals {
		r.DrawNormals(model, view, proj, normalsColor)
	}
	if s.ShowNet {
		r.DrawControlNet(model, view, proj, netColor)
	}
	if s.ShowPoints {
		r.DrawControlPoints(model, view, proj)
	}
	if s.ShowLight {
		r.DrawLight(view, proj, s.Light().Intensity)
	}
	r.End()
}

func (a *Surface) updateStatus() {
	s := a.state
	u, v := s.Tessellation()
	snap := "off"
	if s.Snap.Enabled() {
		snap = fmt.Sprintf("%.2f", s.Snap.Size())
	}
	status := fmt.Sprintf("%s | %dx%d | snap %s | fov %.0f°",
		s.Shading, u, v, snap, math.Degrees(s.Camera.FOV))
	if status != a.status {
		a.status = status
		a.window.SetStatus(status)
	}
}

type pixelReader interface {
	ReadPixels() (pixels []byte, width, height int)
}

func saveScreenshot(shots *debug.Screenshots, r pixelReader) {
	pixels, w, h := r.ReadPixels()
	path, err := shots.Save(pixels, w, h)
	if err != nil {
		logger.Error("failed to save screenshot", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

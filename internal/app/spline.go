package app

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/nurbs-editor/internal/config"
	"github.com/Faultbox/nurbs-editor/internal/editor"
	"github.com/Faultbox/nurbs-editor/internal/engine/debug"
	"github.com/Faultbox/nurbs-editor/internal/engine/input"
	"github.com/Faultbox/nurbs-editor/internal/engine/renderer"
	"github.com/Faultbox/nurbs-editor/internal/engine/window"
	"github.com/Faultbox/nurbs-editor/internal/logger"
	"github.com/Faultbox/nurbs-editor/pkg/math"
)

var (
	curveColor   = math.Vec3{X: 1, Y: 0.6, Z: 0.1}
	pointColor   = math.Vec3{X: 1, Y: 1, Z: 1}
	tangentColor = math.Vec3{X: 0.4, Y: 0.7, Z: 1}
	tipColor     = math.Vec3{X: 0.2, Y: 1, Z: 0.4}
)

// tangentFactorStep is the tangent factor change per key press.
const tangentFactorStep = 0.1

// Spline is the 2D spline editor.
type Spline struct {
	running  bool
	window   *window.Window
	renderer *renderer.LineRenderer
	input    *input.Input
	control  *editor.SplineController
	shots    *debug.Screenshots
	capture  bool

	width, height int
	status        string
}

// NewSpline opens the window and builds the spline editor from cfg.
func NewSpline(cfg *config.Config) (*Spline, error) {
	logger.Info("initializing spline editor")

	a := &Spline{}

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

	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.NewLineRenderer(renderer.Config{
		Width:      dw,
		Height:     dh,
		Background: background,
		PointSize:  10,
		LineWidth:  2,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.control = editor.SplineControllerFromConfig(cfg)
	a.shots = debug.NewScreenshots(cfg.Editor.ScreenshotDir, "spline")
	a.width, a.height = a.window.Size()
	a.control.SetViewport(a.width, a.height)

	return a, nil
}

// Run processes events and draws until the window is closed.
func (a *Spline) Run() error {
	a.running = true
	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handle(event)
		}
		a.render()
		if a.capture {
			a.capture = false
			saveScreenshot(a.shots, a.renderer)
		}
		a.updateStatus()
		a.window.SwapBuffers()
	}
	return nil
}

// Close releases the window and GL resources.
func (a *Spline) Close() {
	logger.Info("closing spline editor")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *Spline) cursor(e input.Event) math.Vec2 {
	return math.ScreenToNDC(float32(e.MouseX), float32(e.MouseY), float32(a.width), float32(a.height))
}

func (a *Spline) handle(e input.Event) {
	c := a.control
	switch e.Type {
	case input.EventWindowResize:
		a.width, a.height = a.window.Size()
		c.SetViewport(a.width, a.height)
		a.renderer.Resize(a.window.DrawableSize())
	case input.EventKeyDown:
		a.handleKey(e.Key)
	case input.EventMouseDown:
		c.ButtonDown(editor.Button(e.Button), a.cursor(e))
	case input.EventMouseUp:
		c.ButtonUp(editor.Button(e.Button), a.cursor(e))
	case input.EventMouseMove:
		c.Move(a.cursor(e))
	}
}

func (a *Spline) handleKey(key sdl.Scancode) {
	c := a.control
	switch key {
	case keyQuit:
		a.running = false
		return
	case keyShot:
		a.capture = true
		return
	case sdl.SCANCODE_P:
		c.ShowPoints = !c.ShowPoints
	case sdl.SCANCODE_T:
		c.ShowTangents = !c.ShowTangents
	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		c.SetApproximation(c.Approximation() + 1)
	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		c.SetApproximation(c.Approximation() - 1)
	case sdl.SCANCODE_RIGHTBRACKET:
		c.SetTangentFactor(c.Spline.TangentFactor + tangentFactorStep)
	case sdl.SCANCODE_LEFTBRACKET:
		c.SetTangentFactor(c.Spline.TangentFactor - tangentFactorStep)
	default:
		return
	}
	logger.Debug("spline settings",
		zap.Int("approximation", c.Approximation()),
		zap.Float32("tangent_factor", c.Spline.TangentFactor),
	)
}

func (a *Spline) render() {
	c := a.control
	r := a.renderer
	if c.TakeDirty() {
		r.Upload(c.Buffers())
	}

	r.Begin()
	r.DrawCurve(curveColor)
	if c.ShowTangents {
		r.DrawTangents(c.Spline.Len(), tangentColor, tipColor)
	}
	if c.ShowPoints {
		r.DrawPoints(c.Spline.Len(), pointColor)
	}
	r.End()
}

func (a *Spline) updateStatus() {
	c := a.control
	status := fmt.Sprintf("%d points | %d samples/segment | tangent x%.1f",
		c.Spline.Len(), c.Approximation(), c.Spline.TangentFactor)
	if status != a.status {
		a.status = status
		a.window.SetStatus(status)
	}
}

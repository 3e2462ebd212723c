package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/nurbs-editor/internal/engine/shader"
	"github.com/Faultbox/nurbs-editor/internal/engine/shaders"
	"github.com/Faultbox/nurbs-editor/internal/logger"
	"github.com/Faultbox/nurbs-editor/pkg/math"
)

// LineRenderer draws flat 2D geometry in normalized device coordinates:
// the spline curve, its points and tangent handles.
type LineRenderer struct {
	config  Config
	program *shader.Program

	curveVAO, curveVBO     uint32
	handlesVAO, handlesVBO uint32
	curveCount             int32
}

// NewLineRenderer creates a line renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func NewLineRenderer(cfg Config) (*LineRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.LINE_SMOOTH)
	gl.ClearColor(cfg.Background.X, cfg.Background.Y, cfg.Background.Z, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	p, err := shader.New("line", shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	lr := &LineRenderer{config: cfg, program: p}
	lr.curveVAO, lr.curveVBO = newVec2Array()
	lr.handlesVAO, lr.handlesVBO = newVec2Array()
	return lr, nil
}

func newVec2Array() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// Close cleans up renderer resources.
func (lr *LineRenderer) Close() {
	logger.Info("closing line renderer")
	gl.DeleteVertexArrays(1, &lr.curveVAO)
	gl.DeleteVertexArrays(1, &lr.handlesVAO)
	gl.DeleteBuffers(1, &lr.curveVBO)
	gl.DeleteBuffers(1, &lr.handlesVBO)
	lr.program.Delete()
}

// Resize handles window resize.
func (lr *LineRenderer) Resize(width, height int) {
	lr.config.Width = width
	lr.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Begin starts a new frame.
func (lr *LineRenderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	lr.program.Use()
}

// Upload replaces the curve samples and the handle buffer.
func (lr *LineRenderer) Upload(curve, handles []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.curveVBO)
	bufferFloats(gl.ARRAY_BUFFER, curve, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.handlesVBO)
	bufferFloats(gl.ARRAY_BUFFER, handles, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	lr.curveCount = int32(len(curve) / 2)
}

// DrawCurve draws the sampled curve as a line strip.
func (lr *LineRenderer) DrawCurve(color math.Vec3) {
	lr.program.SetVec3("color", color)
	gl.LineWidth(lr.config.LineWidth)
	gl.BindVertexArray(lr.curveVAO)
	gl.DrawArrays(gl.LINE_STRIP, 0, lr.curveCount)
}

// DrawPoints draws the first count handle vertices (the spline points).
func (lr *LineRenderer) DrawPoints(count int, color math.Vec3) {
	lr.program.SetVec3("color", color)
	gl.PointSize(lr.config.PointSize)
	gl.BindVertexArray(lr.handlesVAO)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
}

// DrawTangents draws the tangent segments and their tips for count points.
func (lr *LineRenderer) DrawTangents(count int, lineColor, tipColor math.Vec3) {
	gl.BindVertexArray(lr.handlesVAO)
	lr.program.SetVec3("color", lineColor)
	gl.LineWidth(lr.config.LineWidth)
	gl.DrawArrays(gl.LINES, int32(count), int32(count*2))
	lr.program.SetVec3("color", tipColor)
	gl.PointSize(lr.config.PointSize)
	gl.DrawArrays(gl.POINTS, int32(count), int32(count*2))
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (lr *LineRenderer) ReadPixels() (pixels []byte, width, height int) {
	return readPixels(lr.config.Width, lr.config.Height)
}

// End finishes the current frame.
func (lr *LineRenderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/nurbs-editor/internal/engine/mesh"
	"github.com/Faultbox/nurbs-editor/internal/engine/shader"
	"github.com/Faultbox/nurbs-editor/internal/engine/shaders"
	"github.com/Faultbox/nurbs-editor/internal/engine/shading"
	"github.com/Faultbox/nurbs-editor/internal/logger"
	"github.com/Faultbox/nurbs-editor/pkg/math"
	"github.com/Faultbox/nurbs-editor/pkg/nurbs"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background math.Vec3
	PointSize  float32
	LineWidth  float32
}

// Renderer draws the surface editor scene. It implements shading.Backend.
type Renderer struct {
	config Config
	log    *zap.Logger

	programs map[shading.Program]*shader.Program
	current  *shader.Program

	// Tessellated surface: interleaved position/color/normal + indices
	meshVAO, meshVBO, meshEBO uint32
	meshIndexCount            int

	// Control points: positions, per-point colors and the net strip
	pointsVAO, pointsVBO, colorsVBO, netEBO uint32

	// Point light marker
	lightVAO, lightVBO uint32

	// Mesh bounding box edges
	boundsVAO, boundsVBO uint32
	boundsCount          int32

	// Vertex normal segments
	normalsVAO, normalsVBO uint32
	normalsCount           int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		programs: make(map[shading.Program]*shader.Program),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(cfg.Background.X, cfg.Background.Y, cfg.Background.Z, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	sources := []struct {
		id         shading.Program
		vert, frag string
	}{
		{shading.ProgramBase, shaders.BaseVertexShader, shaders.BaseFragmentShader},
		{shading.ProgramGouraud, shaders.GouraudVertexShader, shaders.BaseFragmentShader},
		{shading.ProgramPhong, shaders.PhongVertexShader, shaders.PhongFragmentShader},
	}
	for _, s := range sources {
		p, err := shader.New(s.id.String(), s.vert, s.frag)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("failed to create shader program: %w", err)
		}
		r.programs[s.id] = p
	}

	r.createMeshBuffers()
	r.createOverlayBuffers()
	r.lightVAO, r.lightVBO = newVec3Array()
	r.boundsVAO, r.boundsVBO = newVec3Array()
	r.normalsVAO, r.normalsVBO = newVec3Array()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, vao := range []*uint32{&r.meshVAO, &r.pointsVAO, &r.lightVAO, &r.boundsVAO, &r.normalsVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, buf := range []*uint32{&r.meshVBO, &r.meshEBO, &r.pointsVBO, &r.colorsVBO, &r.netEBO, &r.lightVBO, &r.boundsVBO, &r.normalsVBO} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	for _, p := range r.programs {
		p.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	r.current = nil
}

func (r *Renderer) createMeshBuffers() {
	const stride = mesh.FloatsPerVertex * 4

	gl.GenVertexArrays(1, &r.meshVAO)
	gl.BindVertexArray(r.meshVAO)

	gl.GenBuffers(1, &r.meshVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
	gl.GenBuffers(1, &r.meshEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.meshEBO)

	// Position (location = 0), color (1), normal (2)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 24)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *Renderer) createOverlayBuffers() {
	gl.GenVertexArrays(1, &r.pointsVAO)
	gl.BindVertexArray(r.pointsVAO)

	gl.GenBuffers(1, &r.pointsVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointsVBO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &r.colorsVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorsVBO)
	bufferFloats(gl.ARRAY_BUFFER, nurbs.PointColors, gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &r.netEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.netEBO)
	bufferIndices(gl.ELEMENT_ARRAY_BUFFER, nurbs.ControlNetIndices, gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// newVec3Array creates a position-only vertex array.
func newVec3Array() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// UploadMesh replaces the surface geometry.
func (r *Renderer) UploadMesh(vertices []float32, indices []uint32) {
	gl.BindVertexArray(r.meshVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
	bufferFloats(gl.ARRAY_BUFFER, vertices, gl.DYNAMIC_DRAW)
	bufferIndices(gl.ELEMENT_ARRAY_BUFFER, indices, gl.DYNAMIC_DRAW)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.meshIndexCount = len(indices)
	r.log.Debug("mesh uploaded",
		zap.Int("vertices", len(vertices)/mesh.FloatsPerVertex),
		zap.Int("indices", len(indices)),
	)
}

// MeshIndexCount returns the index count of the last uploaded mesh.
func (r *Renderer) MeshIndexCount() int {
	return r.meshIndexCount
}

// UploadControlPoints replaces the 16 control point positions.
func (r *Renderer) UploadControlPoints(points []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointsVBO)
	bufferFloats(gl.ARRAY_BUFFER, points, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// UploadLight replaces the light marker position.
func (r *Renderer) UploadLight(position []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lightVBO)
	bufferFloats(gl.ARRAY_BUFFER, position, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// UploadBounds replaces the bounding box line list.
func (r *Renderer) UploadBounds(lines []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.boundsVBO)
	bufferFloats(gl.ARRAY_BUFFER, lines, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.boundsCount = int32(len(lines) / 3)
}

// UploadNormals replaces the vertex normal line list.
func (r *Renderer) UploadNormals(lines []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.normalsVBO)
	bufferFloats(gl.ARRAY_BUFFER, lines, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.normalsCount = int32(len(lines) / 3)
}

// UseProgram implements shading.Backend.
func (r *Renderer) UseProgram(p shading.Program) {
	prog, ok := r.programs[p]
	if !ok {
		r.log.Error("unknown shader program", zap.Stringer("program", p))
		return
	}
	prog.Use()
	r.current = prog
}

// SetMat4 implements shading.Backend.
func (r *Renderer) SetMat4(name string, m math.Mat4) {
	if r.current != nil {
		r.current.SetMat4(name, m)
	}
}

// SetVec3 implements shading.Backend.
func (r *Renderer) SetVec3(name string, v math.Vec3) {
	if r.current != nil {
		r.current.SetVec3(name, v)
	}
}

// SetFloat implements shading.Backend.
func (r *Renderer) SetFloat(name string, f float32) {
	if r.current != nil {
		r.current.SetFloat(name, f)
	}
}

// SetInt implements shading.Backend.
func (r *Renderer) SetInt(name string, i int32) {
	if r.current != nil {
		r.current.SetInt(name, i)
	}
}

// DrawTriangles implements shading.Backend: filled surface triangles.
func (r *Renderer) DrawTriangles(indexCount int) {
	gl.BindVertexArray(r.meshVAO)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_INT, 0)
}

// useBase selects the unlit program with the given transforms.
func (r *Renderer) useBase(model, view, proj math.Mat4) {
	r.UseProgram(shading.ProgramBase)
	r.SetMat4(shading.UniformModel, model)
	r.SetMat4(shading.UniformView, view)
	r.SetMat4(shading.UniformProj, proj)
}

func (r *Renderer) singleColor(color math.Vec3) {
	r.SetInt(shading.UniformUseSingleColor, 1)
	r.SetVec3(shading.UniformSingleColor, color)
}

// DrawWireframe outlines the surface triangles in one color.
func (r *Renderer) DrawWireframe(model, view, proj math.Mat4, color math.Vec3) {
	r.useBase(model, view, proj)
	r.singleColor(color)
	gl.LineWidth(r.config.LineWidth)
	gl.BindVertexArray(r.meshVAO)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(r.meshIndexCount), gl.UNSIGNED_INT, 0)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// DrawControlPoints draws the 16 control points in their palette colors.
func (r *Renderer) DrawControlPoints(model, view, proj math.Mat4) {
	r.useBase(model, view, proj)
	r.SetInt(shading.UniformUseSingleColor, 0)
	gl.PointSize(r.config.PointSize)
	gl.BindVertexArray(r.pointsVAO)
	gl.DrawArrays(gl.POINTS, 0, nurbs.PointCount)
}

// DrawControlNet draws the grid rows and columns as one line strip.
func (r *Renderer) DrawControlNet(model, view, proj math.Mat4, color math.Vec3) {
	r.useBase(model, view, proj)
	r.singleColor(color)
	gl.LineWidth(r.config.LineWidth)
	gl.BindVertexArray(r.pointsVAO)
	gl.DrawElementsWithOffset(gl.LINE_STRIP, int32(len(nurbs.ControlNetIndices)), gl.UNSIGNED_INT, 0)
}

// DrawLight marks the point light position, colored by its intensity.
func (r *Renderer) DrawLight(view, proj math.Mat4, color math.Vec3) {
	r.useBase(math.Identity(), view, proj)
	r.singleColor(color)
	gl.PointSize(r.config.PointSize)
	gl.BindVertexArray(r.lightVAO)
	gl.DrawArrays(gl.POINTS, 0, 1)
}

// DrawBounds outlines the mesh bounding box.
func (r *Renderer) DrawBounds(model, view, proj math.Mat4, color math.Vec3) {
	r.useBase(model, view, proj)
	r.singleColor(color)
	gl.LineWidth(r.config.LineWidth)
	gl.BindVertexArray(r.boundsVAO)
	gl.DrawArrays(gl.LINES, 0, r.boundsCount)
}

// DrawNormals draws the vertex normals as short segments.
func (r *Renderer) DrawNormals(model, view, proj math.Mat4, color math.Vec3) {
	r.useBase(model, view, proj)
	r.singleColor(color)
	gl.LineWidth(r.config.LineWidth)
	gl.BindVertexArray(r.normalsVAO)
	gl.DrawArrays(gl.LINES, 0, r.normalsCount)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows. Call it
// before swapping.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	return readPixels(r.config.Width, r.config.Height)
}

func readPixels(width, height int) ([]byte, int, int) {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}

func bufferFloats(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, unsafe.Pointer(&data[0]), usage)
}

func bufferIndices(target uint32, data []uint32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, unsafe.Pointer(&data[0]), usage)
}

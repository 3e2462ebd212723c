package shading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/nurbs-editor/internal/engine/lighting"
	"github.com/Faultbox/nurbs-editor/internal/engine/mesh"
	"github.com/Faultbox/nurbs-editor/pkg/math"
)

// recorder captures every backend call.
type recorder struct {
	program Program
	mats    map[string]math.Mat4
	vecs    map[string]math.Vec3
	floats  map[string]float32
	ints    map[string]int32
	drawn   int
}

func newRecorder() *recorder {
	return &recorder{
		program: -1,
		mats:    map[string]math.Mat4{},
		vecs:    map[string]math.Vec3{},
		floats:  map[string]float32{},
		ints:    map[string]int32{},
		drawn:   -1,
	}
}

func (r *recorder) UseProgram(p Program) { r.program = p }
func (r *recorder) SetMat4(name string, m math.Mat4) { r.mats[name] = m }
func (r *recorder) SetVec3(name string, v math.Vec3) { r.vecs[name] = v }
func (r *recorder) SetFloat(name string, f float32) { r.floats[name] = f }
func (r *recorder) SetInt(name string, i int32) { r.ints[name] = i }
func (r *recorder) DrawTriangles(indexCount int) { r.drawn = indexCount }

func testFrame() Frame {
	return Frame{
		Model:      math.Identity(),
		View:       math.Translate(0, 0, -10),
		Proj:       math.Perspective(1, 1, 1, 100),
		Material:   mesh.DefaultMaterial(),
		Ambient:    lighting.DefaultAmbient(),
		Light:      lighting.DefaultPointLight(),
		IndexCount: 600,
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		mode Mode
		want Plan
	}{
		{None, Plan{Program: ProgramBase, Granularity: Unlit}},
		{Gouraud, Plan{Program: ProgramGouraud, Granularity: PerVertex, Lit: true}},
		{Phong, Plan{Program: ProgramPhong, Granularity: PerFragment, Lit: true}},
		{BlinnPhong, Plan{Program: ProgramPhong, Granularity: PerFragment, Lit: true, Blinn: true}},
		{Mode(42), Plan{Program: ProgramBase, Granularity: Unlit}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.mode))
		})
	}
}

func TestDrawUnlit(t *testing.T) {
	r := newRecorder()
	Draw(r, None, testFrame())

	assert.Equal(t, ProgramBase, r.program)
	assert.Len(t, r.mats, 3)
	assert.Empty(t, r.vecs)
	assert.Equal(t, int32(0), r.ints[UniformUseSingleColor])
	assert.NotContains(t, r.ints, UniformBlinn)
	assert.Equal(t, 600, r.drawn)
}

func TestDrawGouraud(t *testing.T) {
	r := newRecorder()
	f := testFrame()
	Draw(r, Gouraud, f)

	assert.Equal(t, ProgramGouraud, r.program)
	assert.Equal(t, f.Material.Kd, r.vecs[UniformKd])
	assert.Equal(t, f.Material.P, r.floats[UniformP])
	assert.Equal(t, f.Light.Attenuation, r.floats[UniformAttenuation])
	assert.NotContains(t, r.ints, UniformBlinn)
}

func TestDrawPhongAndBlinn(t *testing.T) {
	f := testFrame()

	r := newRecorder()
	plan := Draw(r, Phong, f)
	assert.False(t, plan.Blinn)
	assert.Equal(t, ProgramPhong, r.program)
	assert.Equal(t, int32(0), r.ints[UniformBlinn])
	// Light at (0,3,0) seen from a view translated by -10 along z.
	assert.Equal(t, math.Vec3{Y: 3, Z: -10}, r.vecs[UniformLightPos])
	assert.Equal(t, f.Ambient.Intensity, r.vecs[UniformAmbient])

	r = newRecorder()
	plan = Draw(r, BlinnPhong, f)
	assert.True(t, plan.Blinn)
	assert.Equal(t, int32(1), r.ints[UniformBlinn])
	assert.Equal(t, f.View, r.mats[UniformView])
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMode(" Blinn ")
	require.NoError(t, err)
	assert.Equal(t, BlinnPhong, got)

	_, err = ParseMode("toon")
	assert.Error(t, err)
}

func TestModeYAML(t *testing.T) {
	var cfg struct {
		Shading Mode `yaml:"shading"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("shading: gouraud\n"), &cfg))
	assert.Equal(t, Gouraud, cfg.Shading)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, "shading: gouraud\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("shading: toon\n"), &cfg))
}

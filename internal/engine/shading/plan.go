package shading

// Program names one of the compiled GPU programs.
type Program int

const (
	ProgramBase    Program = iota // Unlit vertex colors
	ProgramGouraud                // Lighting per vertex, interpolated
	ProgramPhong                  // Lighting per fragment, Phong or Blinn-Phong
)

func (p Program) String() string {
	switch p {
	case ProgramBase:
		return "base"
	case ProgramGouraud:
		return "gouraud"
	case ProgramPhong:
		return "phong"
	}
	return "unknown"
}

// Granularity is where the lighting equation is evaluated.
type Granularity int

const (
	Unlit Granularity = iota
	PerVertex
	PerFragment
)

// Plan is the outcome of selecting a mode.
type Plan struct {
	Program     Program
	Granularity Granularity
	Lit         bool // Material and light uniforms are required
	Blinn       bool // Half-vector specular instead of reflection
}

// Select maps a mode to its plan. Unknown modes fall back to unlit.
func Select(m Mode) Plan {
	switch m {
	case Gouraud:
		return Plan{Program: ProgramGouraud, Granularity: PerVertex, Lit: true}
	case Phong:
		return Plan{Program: ProgramPhong, Granularity: PerFragment, Lit: true}
	case BlinnPhong:
		return Plan{Program: ProgramPhong, Granularity: PerFragment, Lit: true, Blinn: true}
	}
	return Plan{Program: ProgramBase, Granularity: Unlit}
}

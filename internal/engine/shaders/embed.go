// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BaseVertexShader transforms positions and passes vertex colors through.
//
//go:embed base.vert
var BaseVertexShader string

// BaseFragmentShader writes the vertex color or a uniform override.
//
//go:embed base.frag
var BaseFragmentShader string

// GouraudVertexShader lights each vertex and interpolates the result.
//
//go:embed gouraud.vert
var GouraudVertexShader string

// PhongVertexShader passes view-space position and normal to the fragment stage.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader lights each fragment, Phong or Blinn-Phong.
//
//go:embed phong.frag
var PhongFragmentShader string

// LineVertexShader draws 2D line strips and points for the spline editor.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader fills with a single color.
//
//go:embed line.frag
var LineFragmentShader string

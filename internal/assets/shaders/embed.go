// Package shaders provides the embedded GLSL sources.
package shaders

import "embed"

// FS holds every *.glsl file in this directory, keyed by bare file name.
//
//go:embed *.glsl
var FS embed.FS

// TextVertexShader is the vertex shader for the text overlay quad.
//
//go:embed TextVertex.glsl
var TextVertexShader string

// TextFragmentShader is the fragment shader for the text overlay quad.
//
//go:embed TextFragment.glsl
var TextFragmentShader string

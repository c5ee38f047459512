// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TexturedVertexShader is the vertex shader for position+texcoord+colour vertices.
//
//go:embed textured.vert
var TexturedVertexShader string

// TexturedFragmentShader is the fragment shader for position+texcoord+colour vertices.
//
//go:embed textured.frag
var TexturedFragmentShader string

// Package model defines the immutable inputs of the rendering engine: the
// brand identity, the per-document customization and the render mode, along
// with the default-filling rules that make every input renderable.
//
// Normalisation never fails. Missing values resolve silently to documented
// defaults; unrecognised values also resolve to defaults but are reported as
// Corrections so callers can tell the user what was substituted.
package model

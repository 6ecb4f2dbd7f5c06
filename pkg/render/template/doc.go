// Package template defines the text template seam used for document shells
// wrapped around rendered markup. The pongo2 backed implementation lives in
// the gotemplate subpackage.
package template

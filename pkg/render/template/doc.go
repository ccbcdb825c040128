// Package template defines the page-rendering seam used to embed widgets in
// host templates, plus the pongo2 implementation in gotemplate.
package template

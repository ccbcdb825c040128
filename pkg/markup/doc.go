// Package markup holds the element tree produced by the button renderers.
// Elements keep attributes in insertion order so snapshots are reproducible;
// serialisation and escaping are delegated to gomponents, so every node here
// is also a gomponents Node and can be embedded directly in gomponents or templ
// pages.
package markup

package render

import (
	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/model"
)

// Renderer turns one configuration record into a markup tree. Rendering is
// total over valid configurations: it never validates and never fails.
type Renderer[C any] interface {
	Render(config C) *markup.Element
}

var (
	_ Renderer[model.Button]  = (*ButtonRenderer)(nil)
	_ Renderer[model.Group]   = (*GroupRenderer)(nil)
	_ Renderer[model.Toolbar] = (*ToolbarRenderer)(nil)
)

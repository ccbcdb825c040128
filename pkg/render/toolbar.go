package render

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/model"
)

// ToolbarRenderer renders a btn-toolbar of button groups.
type ToolbarRenderer struct {
	cfg    config
	groups *GroupRenderer
}

// NewToolbarRenderer constructs a ToolbarRenderer.
func NewToolbarRenderer(options ...Option) *ToolbarRenderer {
	cfg := newConfig(options)
	return &ToolbarRenderer{
		cfg:    cfg,
		groups: &GroupRenderer{cfg: cfg, buttons: &ButtonRenderer{cfg: cfg}},
	}
}

// Render builds the toolbar. Every group receives the toolbar's size and
// state unconditionally; group rules then apply to the buttons.
func (r *ToolbarRenderer) Render(toolbar model.Toolbar) *markup.Element {
	r.cfg.logger.Debug("render button toolbar", zap.Int("groups", len(toolbar.Groups)))

	container := markup.NewElement("div").AddClass(r.cfg.classes.Toolbar).SetAttr("role", "toolbar")
	for _, group := range toolbar.Groups {
		group = group.Clone()
		group.ButtonSize = toolbar.ButtonSize
		group.State = toolbar.State
		container.Append(r.groups.Render(group))
	}
	return container
}

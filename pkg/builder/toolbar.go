package builder

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/model"
	"github.com/goliatone/go-buttongen/pkg/render"
)

// ToolbarBuilder assembles a model.Toolbar.
type ToolbarBuilder struct {
	cfg     config
	latch   *latch
	toolbar *model.Toolbar
}

// NewToolbar starts a builder over an empty toolbar.
func NewToolbar(options ...Option) *ToolbarBuilder {
	return &ToolbarBuilder{cfg: newConfig(options), latch: &latch{}, toolbar: &model.Toolbar{}}
}

// Group appends a group configured by fn.
func (b *ToolbarBuilder) Group(fn func(*GroupBuilder)) *ToolbarBuilder {
	if b.latch.failed() {
		return b
	}
	if fn == nil {
		b.latch.missing("Toolbar.Group", "fn")
		return b
	}
	var group model.Group
	fn(&GroupBuilder{cfg: b.cfg, latch: b.latch, group: &group})
	if !b.latch.failed() {
		b.toolbar.Groups = append(b.toolbar.Groups, group)
	}
	return b
}

// ButtonSize sets the size pushed into every group.
func (b *ToolbarBuilder) ButtonSize(size model.Size, cond ...bool) *ToolbarBuilder {
	if b.latch.failed() {
		return b
	}
	if !enabled(cond) {
		size = model.SizeDefault
	}
	b.toolbar.ButtonSize = size
	return b
}

// Contextual sets the state pushed into every group.
func (b *ToolbarBuilder) Contextual(state model.ContextualState, cond ...bool) *ToolbarBuilder {
	if b.latch.failed() {
		return b
	}
	if !enabled(cond) {
		state = model.StateDefault
	}
	b.toolbar.State = state
	return b
}

func (b *ToolbarBuilder) Err() error {
	return b.latch.err
}

// Config returns a copy of the assembled toolbar.
func (b *ToolbarBuilder) Config() (model.Toolbar, error) {
	if err := b.latch.err; err != nil {
		return model.Toolbar{}, err
	}
	return b.toolbar.Clone(), nil
}

func (b *ToolbarBuilder) Render() (*markup.Element, error) {
	toolbar, err := b.Config()
	if err != nil {
		b.cfg.logger.Debug("toolbar builder rejected", zap.Error(err))
		return nil, err
	}
	return render.NewToolbarRenderer(b.cfg.rendererOptions()...).Render(toolbar), nil
}

func (b *ToolbarBuilder) MustRender() *markup.Element {
	el, err := b.Render()
	if err != nil {
		panic(err)
	}
	return el
}

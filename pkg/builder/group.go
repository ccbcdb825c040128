package builder

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/model"
	"github.com/goliatone/go-buttongen/pkg/render"
)

// GroupBuilder assembles a model.Group.
type GroupBuilder struct {
	cfg   config
	latch *latch
	group *model.Group
}

// NewGroup starts a builder over an empty group.
func NewGroup(options ...Option) *GroupBuilder {
	return &GroupBuilder{cfg: newConfig(options), latch: &latch{}, group: &model.Group{}}
}

// Button appends a button configured by fn. The button starts with a
// generated id like NewButton.
func (b *GroupBuilder) Button(fn func(*ButtonBuilder)) *GroupBuilder {
	if b.latch.failed() {
		return b
	}
	if fn == nil {
		b.latch.missing("Group.Button", "fn")
		return b
	}
	button := model.NewButton()
	fn(&ButtonBuilder{cfg: b.cfg, latch: b.latch, button: &button})
	if !b.latch.failed() {
		b.group.Buttons = append(b.group.Buttons, button)
	}
	return b
}

// ButtonSize sets the size pushed into buttons that own a dropdown.
func (b *GroupBuilder) ButtonSize(size model.Size, cond ...bool) *GroupBuilder {
	if b.latch.failed() {
		return b
	}
	if !enabled(cond) {
		size = model.SizeDefault
	}
	b.group.ButtonSize = size
	return b
}

// Contextual sets the state pushed into every button.
func (b *GroupBuilder) Contextual(state model.ContextualState, cond ...bool) *GroupBuilder {
	if b.latch.failed() {
		return b
	}
	if !enabled(cond) {
		state = model.StateDefault
	}
	b.group.State = state
	return b
}

func (b *GroupBuilder) Vertical() *GroupBuilder {
	if !b.latch.failed() {
		b.group.Vertical = true
	}
	return b
}

// Toolbar starts an independent toolbar builder with the same options.
func (b *GroupBuilder) Toolbar() *ToolbarBuilder {
	return &ToolbarBuilder{cfg: b.cfg, latch: &latch{}, toolbar: &model.Toolbar{}}
}

func (b *GroupBuilder) Err() error {
	return b.latch.err
}

// Config returns a copy of the assembled group.
func (b *GroupBuilder) Config() (model.Group, error) {
	if err := b.latch.err; err != nil {
		return model.Group{}, err
	}
	return b.group.Clone(), nil
}

func (b *GroupBuilder) Render() (*markup.Element, error) {
	group, err := b.Config()
	if err != nil {
		b.cfg.logger.Debug("group builder rejected", zap.Error(err))
		return nil, err
	}
	return render.NewGroupRenderer(b.cfg.rendererOptions()...).Render(group), nil
}

func (b *GroupBuilder) MustRender() *markup.Element {
	el, err := b.Render()
	if err != nil {
		panic(err)
	}
	return el
}

package builder

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/model"
	"github.com/goliatone/go-buttongen/pkg/render"
)

// ButtonBuilder assembles a model.Button.
type ButtonBuilder struct {
	cfg    config
	latch  *latch
	button *model.Button
}

// NewButton starts a builder over a fresh button with a generated id.
func NewButton(options ...Option) *ButtonBuilder {
	button := model.NewButton()
	return &ButtonBuilder{cfg: newConfig(options), latch: &latch{}, button: &button}
}

func (b *ButtonBuilder) ID(id string) *ButtonBuilder {
	if !b.latch.failed() {
		b.button.ID = id
	}
	return b
}

func (b *ButtonBuilder) Name(name string) *ButtonBuilder {
	if !b.latch.failed() {
		b.button.Name = name
	}
	return b
}

func (b *ButtonBuilder) Text(text string) *ButtonBuilder {
	if !b.latch.failed() {
		b.button.Text = text
	}
	return b
}

// Icon sets inline icon markup. It is sanitised at render time.
func (b *ButtonBuilder) Icon(markup string) *ButtonBuilder {
	if !b.latch.failed() {
		b.button.Icon = markup
	}
	return b
}

// Contextual sets the state, or resets it to default when cond is false.
func (b *ButtonBuilder) Contextual(state model.ContextualState, cond ...bool) *ButtonBuilder {
	if b.latch.failed() {
		return b
	}
	if !enabled(cond) {
		state = model.StateDefault
	}
	b.button.State = state
	return b
}

// Size sets the size, or resets it to default when cond is false.
func (b *ButtonBuilder) Size(size model.Size, cond ...bool) *ButtonBuilder {
	if b.latch.failed() {
		return b
	}
	if !enabled(cond) {
		size = model.SizeDefault
	}
	b.button.Size = size
	return b
}

func (b *ButtonBuilder) Block(cond ...bool) *ButtonBuilder {
	if !b.latch.failed() {
		b.button.Block = enabled(cond)
	}
	return b
}

func (b *ButtonBuilder) Active(cond ...bool) *ButtonBuilder {
	if !b.latch.failed() {
		b.button.Active = enabled(cond)
	}
	return b
}

func (b *ButtonBuilder) Disabled(cond ...bool) *ButtonBuilder {
	if !b.latch.failed() {
		b.button.Disabled = enabled(cond)
	}
	return b
}

// Submit turns the button into a form submit button.
func (b *ButtonBuilder) Submit() *ButtonBuilder {
	const op = "Button.Submit"
	if b.latch.failed() {
		return b
	}
	switch {
	case b.button.Action.Kind == model.ActionNavigate:
		b.latch.conflict(op, "button is navigational")
	case b.button.Action.Kind == model.ActionAjax:
		b.latch.conflict(op, "button is AJAX")
	default:
		b.button.Action = model.SubmitAction()
	}
	return b
}

// Click sets the JavaScript function invoked with the button id on click.
func (b *ButtonBuilder) Click(fn string, cond ...bool) *ButtonBuilder {
	if b.latch.failed() || !enabled(cond) {
		return b
	}
	if strings.TrimSpace(fn) == "" {
		b.latch.missing("Button.Click", "fn")
		return b
	}
	b.button.Click = fn
	return b
}

// Navigate turns the button into a link to url.
func (b *ButtonBuilder) Navigate(url string) *ButtonBuilder {
	const op = "Button.Navigate"
	if b.latch.failed() {
		return b
	}
	switch {
	case b.button.Action.Kind == model.ActionSubmit:
		b.latch.conflict(op, "button is submit")
	case b.button.Action.Kind == model.ActionAjax:
		b.latch.conflict(op, "button is AJAX")
	case strings.TrimSpace(url) == "":
		b.latch.missing(op, "url")
	default:
		b.button.Action = model.NavigateAction(url)
	}
	return b
}

// CSSClass appends an extra class.
func (b *ButtonBuilder) CSSClass(class string, cond ...bool) *ButtonBuilder {
	if b.latch.failed() || !enabled(cond) {
		return b
	}
	if strings.TrimSpace(class) == "" {
		b.latch.missing("Button.CSSClass", "class")
		return b
	}
	b.button.CSSClasses = append(b.button.CSSClasses, class)
	return b
}

// Ajax turns the button into an AJAX trigger configured by fn.
func (b *ButtonBuilder) Ajax(fn func(*AjaxBuilder)) *ButtonBuilder {
	const op = "Button.Ajax"
	if b.latch.failed() {
		return b
	}
	switch {
	case b.button.Action.Kind == model.ActionSubmit:
		b.latch.conflict(op, "button is submit")
		return b
	case b.button.Action.Kind == model.ActionNavigate:
		b.latch.conflict(op, "button is navigational")
		return b
	case fn == nil:
		b.latch.missing(op, "fn")
		return b
	}

	var ajax model.Ajax
	fn(&AjaxBuilder{latch: b.latch, ajax: &ajax})
	if !b.latch.failed() {
		b.button.Action = model.AjaxAction(ajax)
	}
	return b
}

// Dropdown attaches a menu configured by fn. With a navigate or AJAX action
// the button renders as a split button.
func (b *ButtonBuilder) Dropdown(fn func(*DropdownBuilder)) *ButtonBuilder {
	const op = "Button.Dropdown"
	if b.latch.failed() {
		return b
	}
	switch {
	case b.button.Action.Kind == model.ActionSubmit:
		b.latch.conflict(op, "button is submit")
		return b
	case fn == nil:
		b.latch.missing(op, "fn")
		return b
	}

	dropdown := &model.Dropdown{}
	fn(&DropdownBuilder{latch: b.latch, dropdown: dropdown})
	if !b.latch.failed() {
		b.button.Dropdown = dropdown
	}
	return b
}

// Err returns the first rejected call, if any.
func (b *ButtonBuilder) Err() error {
	return b.latch.err
}

// Config returns a copy of the assembled button.
func (b *ButtonBuilder) Config() (model.Button, error) {
	if err := b.latch.err; err != nil {
		return model.Button{}, err
	}
	return b.button.Clone(), nil
}

// Render renders the assembled button.
func (b *ButtonBuilder) Render() (*markup.Element, error) {
	button, err := b.Config()
	if err != nil {
		b.cfg.logger.Debug("button builder rejected", zap.Error(err))
		return nil, err
	}
	return render.NewButtonRenderer(b.cfg.rendererOptions()...).Render(button), nil
}

// MustRender is Render that panics on a latched error.
func (b *ButtonBuilder) MustRender() *markup.Element {
	el, err := b.Render()
	if err != nil {
		panic(err)
	}
	return el
}

package render

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/model"
)

// ButtonRenderer renders a single button, a link button, or a button with an
// attached dropdown. It holds no per-call state and can be reused.
type ButtonRenderer struct {
	cfg config
}

// NewButtonRenderer constructs a ButtonRenderer.
func NewButtonRenderer(options ...Option) *ButtonRenderer {
	return &ButtonRenderer{cfg: newConfig(options)}
}

// Render builds the markup for button. When a dropdown is attached the outer
// btn-group container is returned instead of the button element.
func (r *ButtonRenderer) Render(button model.Button) *markup.Element {
	anchor := button.Action.Anchor()
	r.cfg.logger.Debug("render button",
		zap.String("id", button.ID),
		zap.Stringer("action", button.Action.Kind),
		zap.Bool("dropdown", button.HasDropdown()),
	)

	primary := r.primary(button, anchor)
	outer := primary
	if button.Dropdown != nil {
		outer = r.cfg.composeDropdown(button, primary, anchor)
	}
	if ajax, ok := button.Action.AjaxConfig(); ok {
		r.cfg.applyAjax(primary, ajax, button.ID)
	}
	return outer
}

func (r *ButtonRenderer) primary(button model.Button, anchor bool) *markup.Element {
	classes := r.cfg.classes

	var el *markup.Element
	if anchor {
		el = markup.NewElement("a").AddClass(classes.Button).SetAttr("role", "button")
	} else {
		kind := "button"
		if button.Action.Kind == model.ActionSubmit {
			kind = "submit"
		}
		el = markup.NewElement("button").AddClass(classes.Button).SetAttr("type", kind)
	}

	el.SetAttrIf("id", button.ID)
	el.SetAttrIf("name", button.Name)
	if url, ok := button.Action.NavigateURL(); ok {
		el.SetAttr("href", url)
	}
	el.SetAttrIf("onclick", invoke(button.Click, button.ID))

	icon := r.cfg.sanitizeIcon(button.Icon)
	if icon != "" {
		el.Append(markup.Raw(icon))
	}
	if button.Text != "" {
		if icon != "" {
			el.Append(markup.Text(" "))
		}
		el.Append(markup.Text(button.Text))
	}

	el.AddClass(classes.state(button.State))
	el.AddClass(classes.buttonSize(button.Size.Suffix()))
	el.AddClassIf(classes.block(), button.Block)
	el.AddClassIf(classes.Active, button.Active)

	if button.Disabled {
		if anchor {
			el.AddClass(classes.Disabled)
			el.SetAttr("aria-disabled", "true")
		} else {
			el.SetAttr("disabled", "disabled")
		}
	}

	el.AddClass(button.CSSClasses...)
	return el
}

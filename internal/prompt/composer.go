package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-buttongen/pkg/document"
	"github.com/goliatone/go-buttongen/pkg/model"
)

var (
	stateOptions = []string{
		model.StateDefault.String(),
		model.StatePrimary.String(),
		model.StateSuccess.String(),
		model.StateInfo.String(),
		model.StateWarning.String(),
		model.StateDanger.String(),
		model.StateLink.String(),
	}
	sizeOptions = []string{
		model.SizeDefault.String(),
		model.SizeLarge.String(),
		model.SizeSmall.String(),
		model.SizeExtraSmall.String(),
	}
	modeOptions = []string{
		model.UpdateReplace.String(),
		model.UpdateAppend.String(),
		model.UpdateBefore.String(),
		model.UpdateAfter.String(),
	}
	actionOptions = []string{"none", "submit", "navigate", "ajax"}
)

// Composer asks for a button declaration one field at a time.
type Composer struct {
	driver Driver
}

// NewComposer returns a composer prompting through driver.
func NewComposer(driver Driver) *Composer {
	return &Composer{driver: driver}
}

// ComposeButton prompts for a single named button and returns it as a
// document ready to be encoded.
func (c *Composer) ComposeButton(ctx context.Context) (document.Document, string, error) {
	name, err := c.driver.Input(ctx, InputConfig{
		Message:   "Widget name:",
		Validator: required("widget name"),
	})
	if err != nil {
		return document.Document{}, "", err
	}
	name = strings.TrimSpace(name)

	spec, err := c.button(ctx)
	if err != nil {
		return document.Document{}, "", err
	}
	return document.Document{Buttons: map[string]document.ButtonSpec{name: spec}}, name, nil
}

func (c *Composer) button(ctx context.Context) (document.ButtonSpec, error) {
	var spec document.ButtonSpec

	text, err := c.driver.Input(ctx, InputConfig{Message: "Button text:"})
	if err != nil {
		return spec, err
	}
	spec.Text = text

	state, err := c.choose(ctx, "Contextual state:", stateOptions)
	if err != nil {
		return spec, err
	}
	spec.State = model.ContextualState(state)

	size, err := c.choose(ctx, "Size:", sizeOptions)
	if err != nil {
		return spec, err
	}
	spec.Size = model.Size(size)

	action, err := c.choose(ctx, "Action:", actionOptions)
	if err != nil {
		return spec, err
	}
	switch actionOptions[action] {
	case "submit":
		spec.Submit = true
	case "navigate":
		url, err := c.driver.Input(ctx, InputConfig{Message: "Navigate to URL:", Validator: required("url")})
		if err != nil {
			return spec, err
		}
		spec.Navigate = strings.TrimSpace(url)
	case "ajax":
		ajax, err := c.ajax(ctx)
		if err != nil {
			return spec, err
		}
		spec.Ajax = ajax
	}

	if spec.Submit {
		return spec, nil
	}
	items, err := c.dropdown(ctx)
	if err != nil {
		return spec, err
	}
	spec.Dropdown = items
	return spec, nil
}

func (c *Composer) ajax(ctx context.Context) (*document.AjaxSpec, error) {
	ajax := &document.AjaxSpec{}
	prompts := []struct {
		cfg    InputConfig
		target *string
	}{
		{InputConfig{Message: "AJAX URL:", Validator: required("url")}, &ajax.URL},
		{InputConfig{Message: "Update target element id:", Validator: required("update target id")}, &ajax.Update},
		{InputConfig{Message: "Busy indicator element id:", Validator: required("busy indicator id")}, &ajax.Loading},
	}
	for _, p := range prompts {
		value, err := c.driver.Input(ctx, p.cfg)
		if err != nil {
			return nil, err
		}
		*p.target = strings.TrimSpace(value)
	}

	mode, err := c.choose(ctx, "Update mode:", modeOptions)
	if err != nil {
		return nil, err
	}
	ajax.Mode = model.UpdateMode(mode)

	disable, err := c.driver.Confirm(ctx, ConfirmConfig{Message: "Disable the button during the call?"})
	if err != nil {
		return nil, err
	}
	ajax.DisableButton = disable
	return ajax, nil
}

func (c *Composer) dropdown(ctx context.Context) ([]document.ItemSpec, error) {
	add, err := c.driver.Confirm(ctx, ConfirmConfig{Message: "Add dropdown items?"})
	if err != nil || !add {
		return nil, err
	}

	var items []document.ItemSpec
	for {
		text, err := c.driver.Input(ctx, InputConfig{Message: "Item text:", Validator: required("item text")})
		if err != nil {
			return nil, err
		}
		url, err := c.driver.Input(ctx, InputConfig{Message: "Item URL (blank for none):"})
		if err != nil {
			return nil, err
		}
		item := document.ItemSpec{Text: strings.TrimSpace(text), Navigate: strings.TrimSpace(url)}
		if len(items) > 0 {
			if item.Separated, err = c.driver.Confirm(ctx, ConfirmConfig{Message: "Separate from the previous item?"}); err != nil {
				return nil, err
			}
		}
		items = append(items, item)

		more, err := c.driver.Confirm(ctx, ConfirmConfig{Message: "Add another item?"})
		if err != nil {
			return nil, err
		}
		if !more {
			return items, nil
		}
	}
}

func (c *Composer) choose(ctx context.Context, message string, options []string) (int, error) {
	idx, err := c.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(options) {
		return 0, fmt.Errorf("prompt: %s: selection %d out of range", strings.TrimSuffix(message, ":"), idx)
	}
	return idx, nil
}

func required(what string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(what + " is required")
		}
		return nil
	}
}

// Package buttongen builds and renders Bootstrap-style buttons, button groups
// and toolbars. It re-exports the entry points page code needs; the packages
// under pkg/ hold the model, builders, renderers and document loader.
package buttongen

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-buttongen/pkg/builder"
	"github.com/goliatone/go-buttongen/pkg/document"
	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/model"
	"github.com/goliatone/go-buttongen/pkg/render"
)

// Configuration records, aliased for page code that only imports the root.
type (
	Button  = model.Button
	Group   = model.Group
	Toolbar = model.Toolbar
)

// Builder errors.
var (
	ErrMissingArgument = builder.ErrMissingArgument
	ErrInvalidState    = builder.ErrInvalidState
)

// NewButton starts a button builder over a fresh configuration.
func NewButton(options ...builder.Option) *builder.ButtonBuilder {
	return builder.NewButton(options...)
}

// NewGroup starts a button-group builder over a fresh configuration.
func NewGroup(options ...builder.Option) *builder.GroupBuilder {
	return builder.NewGroup(options...)
}

// NewToolbar starts a toolbar builder over a fresh configuration.
func NewToolbar(options ...builder.Option) *builder.ToolbarBuilder {
	return builder.NewToolbar(options...)
}

// LoadDocuments loads declarative widget files from fsys.
func LoadDocuments(fsys fs.FS, options ...document.Option) (*document.Store, error) {
	return document.LoadFS(fsys, options...)
}

// RenderButton renders a configuration directly, bypassing the builder.
func RenderButton(button Button, options ...render.Option) string {
	return render.NewButtonRenderer(options...).Render(button).String()
}

// RenderGroup renders a group configuration directly.
func RenderGroup(group Group, options ...render.Option) string {
	return render.NewGroupRenderer(options...).Render(group).String()
}

// RenderToolbar renders a toolbar configuration directly.
func RenderToolbar(toolbar Toolbar, options ...render.Option) string {
	return render.NewToolbarRenderer(options...).Render(toolbar).String()
}

// HTML renders a builder result, propagating the builder's latched error.
func HTML(el *markup.Element, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return el.String(), nil
}

// WithThemeSelection resolves a theme through selector and returns the
// render option applying its class tokens.
func WithThemeSelection(selector theme.ThemeSelector, name, variant string) (render.Option, error) {
	if selector == nil {
		return nil, errors.New("buttongen: theme selector is nil")
	}
	selection, err := selector.Select(strings.TrimSpace(name), strings.TrimSpace(variant))
	if err != nil {
		return nil, fmt.Errorf("buttongen: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("buttongen: theme %q has no manifest", name)
	}
	return render.WithTheme(selection.Manifest, selection.Variant), nil
}

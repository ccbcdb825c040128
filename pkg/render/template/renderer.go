package template

import (
	"errors"
	"io"

	"github.com/goliatone/go-buttongen/pkg/document"
	"github.com/goliatone/go-buttongen/pkg/markup"
)

var (
	// ErrTemplateNotFound reports a named template missing from every loader.
	ErrTemplateNotFound = errors.New("template: template not found")
	// ErrFilterExists reports a filter name that is already registered.
	// Filters are process-wide, so the first registration wins.
	ErrFilterExists = errors.New("template: filter already registered")
)

// TemplateRenderer renders named page templates or inline template content.
// When out writers are provided the result is also written to each of them.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// WidgetSource resolves named widgets for template functions.
// *document.Store satisfies it.
type WidgetSource interface {
	Render(kind document.Kind, name string) (*markup.Element, error)
}

var _ WidgetSource = (*document.Store)(nil)

package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/pkg/builder"
	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/model"
	"github.com/goliatone/go-buttongen/pkg/render"
)

// ErrNotFound reports a lookup of an undeclared widget.
var ErrNotFound = errors.New("document: widget not found")

// Kind names a widget family.
type Kind string

const (
	KindButton  Kind = "button"
	KindGroup   Kind = "group"
	KindToolbar Kind = "toolbar"
)

// ParseKind accepts singular and plural forms plus "button_group".
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "button", "buttons":
		return KindButton, nil
	case "group", "groups", "button_group", "button-group":
		return KindGroup, nil
	case "toolbar", "toolbars":
		return KindToolbar, nil
	default:
		return "", fmt.Errorf("document: unknown widget kind %q", raw)
	}
}

// Option customises loading and the builders used by a Store.
type Option func(*options)

type options struct {
	logger        *zap.Logger
	renderOptions []render.Option
	validate      *validator.Validate
}

// WithLogger routes load diagnostics and builder rejections through logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRenderOptions forwards options to Store.Render.
func WithRenderOptions(opts ...render.Option) Option {
	return func(o *options) {
		o.renderOptions = append(o.renderOptions, opts...)
	}
}

// WithValidator replaces the structural validator, e.g. to register
// project-specific tags.
func WithValidator(validate *validator.Validate) Option {
	return func(o *options) {
		o.validate = validate
	}
}

type entry[S any] struct {
	spec   S
	source string
}

// Store holds the widget specs of a document set. It is read-only after
// loading and safe for concurrent lookups.
type Store struct {
	opts     options
	buttons  map[string]entry[ButtonSpec]
	groups   map[string]entry[GroupSpec]
	toolbars map[string]entry[ToolbarSpec]
}

// Load reads every widget file below dir on disk.
func Load(dir string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("document: directory is required")
	}
	return LoadFS(os.DirFS(dir), opts...)
}

// LoadFS reads every .yaml, .yml, .json and .jsonc file in fsys. The first
// decode, validation, builder or duplicate-name error stops loading.
func LoadFS(fsys fs.FS, opts ...Option) (*Store, error) {
	if fsys == nil {
		return nil, errors.New("document: filesystem is required")
	}
	store := NewStore(opts...)

	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		format, ok := FormatFromPath(name)
		if !ok {
			return nil
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("document: read %s: %w", name, err)
		}
		doc, err := decode(format, data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return store.Add(name, doc)
	})
	if err != nil {
		return nil, err
	}

	store.opts.logger.Debug("widget documents loaded",
		zap.Int("buttons", len(store.buttons)),
		zap.Int("groups", len(store.groups)),
		zap.Int("toolbars", len(store.toolbars)),
	)
	return store, nil
}

// NewStore returns an empty store. Use Add to populate it.
func NewStore(opts ...Option) *Store {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.validate == nil {
		o.validate = newValidator()
	}
	return &Store{
		opts:     o,
		buttons:  make(map[string]entry[ButtonSpec]),
		groups:   make(map[string]entry[GroupSpec]),
		toolbars: make(map[string]entry[ToolbarSpec]),
	}
}

// Add validates doc and registers every widget under source. Each spec is
// replayed through the builder first; nothing is registered if any spec is
// invalid or any name is already taken. Add is not safe for concurrent use
// with lookups.
func (s *Store) Add(source string, doc Document) error {
	if err := s.opts.validate.Struct(doc); err != nil {
		return fmt.Errorf("%s: document: validate: %w", source, err)
	}
	for _, name := range sortedKeys(doc.Buttons) {
		if err := s.checkName(KindButton, name); err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		if _, err := s.buildButton(doc.Buttons[name]); err != nil {
			return fmt.Errorf("%s: button %q: %w", source, name, err)
		}
	}
	for _, name := range sortedKeys(doc.Groups) {
		if err := s.checkName(KindGroup, name); err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		if _, err := s.buildGroup(doc.Groups[name]); err != nil {
			return fmt.Errorf("%s: group %q: %w", source, name, err)
		}
	}
	for _, name := range sortedKeys(doc.Toolbars) {
		if err := s.checkName(KindToolbar, name); err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		if _, err := s.buildToolbar(doc.Toolbars[name]); err != nil {
			return fmt.Errorf("%s: toolbar %q: %w", source, name, err)
		}
	}

	for name, spec := range doc.Buttons {
		s.buttons[name] = entry[ButtonSpec]{spec: spec, source: source}
	}
	for name, spec := range doc.Groups {
		s.groups[name] = entry[GroupSpec]{spec: spec, source: source}
	}
	for name, spec := range doc.Toolbars {
		s.toolbars[name] = entry[ToolbarSpec]{spec: spec, source: source}
	}
	return nil
}

func (s *Store) checkName(kind Kind, name string) error {
	var (
		source string
		taken  bool
	)
	switch kind {
	case KindButton:
		source, taken = declaredIn(s.buttons, name)
	case KindGroup:
		source, taken = declaredIn(s.groups, name)
	case KindToolbar:
		source, taken = declaredIn(s.toolbars, name)
	}
	if taken {
		return fmt.Errorf("document: duplicate %s %q (already declared in %s)", kind, name, source)
	}
	return nil
}

func declaredIn[S any](entries map[string]entry[S], name string) (string, bool) {
	e, ok := entries[name]
	return e.source, ok
}

// Names lists the declared widget names of kind in sorted order.
func (s *Store) Names(kind Kind) []string {
	switch kind {
	case KindButton:
		return sortedKeys(s.buttons)
	case KindGroup:
		return sortedKeys(s.groups)
	case KindToolbar:
		return sortedKeys(s.toolbars)
	default:
		return nil
	}
}

// Button builds the named button. Buttons without an explicit id receive a
// fresh generated id on every call.
func (s *Store) Button(name string) (model.Button, error) {
	e, ok := s.buttons[name]
	if !ok {
		return model.Button{}, fmt.Errorf("%w: button %q", ErrNotFound, name)
	}
	return s.buildButton(e.spec)
}

// Group builds the named group.
func (s *Store) Group(name string) (model.Group, error) {
	e, ok := s.groups[name]
	if !ok {
		return model.Group{}, fmt.Errorf("%w: group %q", ErrNotFound, name)
	}
	return s.buildGroup(e.spec)
}

// Toolbar builds the named toolbar.
func (s *Store) Toolbar(name string) (model.Toolbar, error) {
	e, ok := s.toolbars[name]
	if !ok {
		return model.Toolbar{}, fmt.Errorf("%w: toolbar %q", ErrNotFound, name)
	}
	return s.buildToolbar(e.spec)
}

// Render builds and renders the named widget.
func (s *Store) Render(kind Kind, name string) (*markup.Element, error) {
	switch kind {
	case KindButton:
		button, err := s.Button(name)
		if err != nil {
			return nil, err
		}
		return render.NewButtonRenderer(s.rendererOptions()...).Render(button), nil
	case KindGroup:
		group, err := s.Group(name)
		if err != nil {
			return nil, err
		}
		return render.NewGroupRenderer(s.rendererOptions()...).Render(group), nil
	case KindToolbar:
		toolbar, err := s.Toolbar(name)
		if err != nil {
			return nil, err
		}
		return render.NewToolbarRenderer(s.rendererOptions()...).Render(toolbar), nil
	default:
		return nil, fmt.Errorf("document: unknown widget kind %q", kind)
	}
}

func (s *Store) buildButton(spec ButtonSpec) (model.Button, error) {
	b := builder.NewButton(s.builderOptions()...)
	spec.apply(b)
	return b.Config()
}

func (s *Store) buildGroup(spec GroupSpec) (model.Group, error) {
	g := builder.NewGroup(s.builderOptions()...)
	spec.apply(g)
	return g.Config()
}

func (s *Store) buildToolbar(spec ToolbarSpec) (model.Toolbar, error) {
	t := builder.NewToolbar(s.builderOptions()...)
	spec.apply(t)
	return t.Config()
}

func (s *Store) builderOptions() []builder.Option {
	return []builder.Option{builder.WithLogger(s.opts.logger)}
}

func (s *Store) rendererOptions() []render.Option {
	out := make([]render.Option, 0, len(s.opts.renderOptions)+1)
	out = append(out, render.WithLogger(s.opts.logger))
	return append(out, s.opts.renderOptions...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

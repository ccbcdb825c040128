package builder

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/pkg/render"
)

// Option customises builders created by NewButton, NewGroup and NewToolbar.
type Option func(*config)

type config struct {
	renderOptions []render.Option
	logger        *zap.Logger
}

func newConfig(options []Option) config {
	var cfg config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}

// WithRenderOptions forwards options to the renderer used by Render.
func WithRenderOptions(options ...render.Option) Option {
	return func(cfg *config) {
		cfg.renderOptions = append(cfg.renderOptions, options...)
	}
}

// WithLogger logs rejected builder calls and is forwarded to the renderer.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

func (c config) rendererOptions() []render.Option {
	out := make([]render.Option, 0, len(c.renderOptions)+1)
	out = append(out, render.WithLogger(c.logger))
	return append(out, c.renderOptions...)
}

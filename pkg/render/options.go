package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// DefaultToggleLabel is the screen-reader text inside split-button toggles.
const DefaultToggleLabel = "Toggle Dropdown"

// placeholderHref keeps anchors focusable without navigating.
const placeholderHref = "javascript:void(0)"

// Option customises the renderers.
type Option func(*config)

type config struct {
	classes     Classes
	logger      *zap.Logger
	iconPolicy  *bluemonday.Policy
	toggleLabel string
}

func newConfig(options []Option) config {
	cfg := config{
		classes:     DefaultClasses(),
		toggleLabel: DefaultToggleLabel,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.iconPolicy == nil {
		cfg.iconPolicy = iconSanitizer()
	}
	return cfg
}

// WithClasses overrides class names. Empty fields keep their defaults.
func WithClasses(classes Classes) Option {
	return func(cfg *config) {
		cfg.classes = cfg.classes.merge(classes)
	}
}

// WithTheme reads class overrides from a go-theme manifest. Variant tokens
// win over the manifest's base tokens. See the Token* constants for the keys.
func WithTheme(manifest *theme.Manifest, variant string) Option {
	return func(cfg *config) {
		if manifest == nil {
			return
		}
		tokens := make(map[string]string, len(manifest.Tokens))
		for key, value := range manifest.Tokens {
			tokens[key] = value
		}
		if variant = strings.TrimSpace(variant); variant != "" {
			if v, ok := manifest.Variants[variant]; ok {
				for key, value := range v.Tokens {
					tokens[key] = value
				}
			}
		}
		cfg.classes = cfg.classes.merge(classesFromTokens(tokens))
		if label := strings.TrimSpace(tokens[TokenToggleLabel]); label != "" {
			cfg.toggleLabel = label
		}
	}
}

// WithLogger routes debug output through logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithIconPolicy replaces the sanitiser applied to Button.Icon markup.
func WithIconPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.iconPolicy = policy
		}
	}
}

// WithToggleLabel sets the screen-reader label of split-button toggles.
func WithToggleLabel(label string) Option {
	return func(cfg *config) {
		if label = strings.TrimSpace(label); label != "" {
			cfg.toggleLabel = label
		}
	}
}

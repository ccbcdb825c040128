package render

import (
	"strings"

	"github.com/goliatone/go-buttongen/pkg/model"
)

// Classes names the CSS classes the renderers emit. The defaults follow
// Bootstrap 3; callers targeting a different stylesheet can override any
// subset through WithClasses or WithTheme.
type Classes struct {
	Button           string
	Active           string
	Disabled         string
	Group            string
	GroupVertical    string
	Toolbar          string
	DropdownToggle   string
	DropdownMenu     string
	Divider          string
	Caret            string
	ScreenReaderOnly string
}

// DefaultClasses returns the Bootstrap 3 class set.
func DefaultClasses() Classes {
	return Classes{
		Button:           "btn",
		Active:           "active",
		Disabled:         "disabled",
		Group:            "btn-group",
		GroupVertical:    "btn-group-vertical",
		Toolbar:          "btn-toolbar",
		DropdownToggle:   "dropdown-toggle",
		DropdownMenu:     "dropdown-menu",
		Divider:          "divider",
		Caret:            "caret",
		ScreenReaderOnly: "sr-only",
	}
}

// Theme token keys recognised by WithTheme.
const (
	TokenButton           = "buttons.class.button"
	TokenActive           = "buttons.class.active"
	TokenDisabled         = "buttons.class.disabled"
	TokenGroup            = "buttons.class.group"
	TokenGroupVertical    = "buttons.class.groupVertical"
	TokenToolbar          = "buttons.class.toolbar"
	TokenDropdownToggle   = "buttons.class.dropdownToggle"
	TokenDropdownMenu     = "buttons.class.dropdownMenu"
	TokenDivider          = "buttons.class.divider"
	TokenCaret            = "buttons.class.caret"
	TokenScreenReaderOnly = "buttons.class.srOnly"
	TokenToggleLabel      = "buttons.toggleLabel"
)

// merge overlays the non-empty fields of override.
func (c Classes) merge(override Classes) Classes {
	pick := func(base, next string) string {
		if next = strings.TrimSpace(next); next != "" {
			return next
		}
		return base
	}
	return Classes{
		Button:           pick(c.Button, override.Button),
		Active:           pick(c.Active, override.Active),
		Disabled:         pick(c.Disabled, override.Disabled),
		Group:            pick(c.Group, override.Group),
		GroupVertical:    pick(c.GroupVertical, override.GroupVertical),
		Toolbar:          pick(c.Toolbar, override.Toolbar),
		DropdownToggle:   pick(c.DropdownToggle, override.DropdownToggle),
		DropdownMenu:     pick(c.DropdownMenu, override.DropdownMenu),
		Divider:          pick(c.Divider, override.Divider),
		Caret:            pick(c.Caret, override.Caret),
		ScreenReaderOnly: pick(c.ScreenReaderOnly, override.ScreenReaderOnly),
	}
}

func classesFromTokens(tokens map[string]string) Classes {
	return Classes{
		Button:           tokens[TokenButton],
		Active:           tokens[TokenActive],
		Disabled:         tokens[TokenDisabled],
		Group:            tokens[TokenGroup],
		GroupVertical:    tokens[TokenGroupVertical],
		Toolbar:          tokens[TokenToolbar],
		DropdownToggle:   tokens[TokenDropdownToggle],
		DropdownMenu:     tokens[TokenDropdownMenu],
		Divider:          tokens[TokenDivider],
		Caret:            tokens[TokenCaret],
		ScreenReaderOnly: tokens[TokenScreenReaderOnly],
	}
}

func (c Classes) state(state model.ContextualState) string {
	return c.Button + "-" + state.String()
}

func (c Classes) buttonSize(suffix string) string {
	if suffix == "" {
		return ""
	}
	return c.Button + "-" + suffix
}

func (c Classes) groupSize(suffix string) string {
	if suffix == "" {
		return ""
	}
	return c.Group + "-" + suffix
}

func (c Classes) block() string {
	return c.Button + "-block"
}

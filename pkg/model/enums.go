package model

import (
	"fmt"
	"strings"
)

// ContextualState is the semantic colour category applied to a button.
type ContextualState uint8

const (
	StateDefault ContextualState = iota
	StatePrimary
	StateSuccess
	StateInfo
	StateWarning
	StateDanger
	StateLink
)

var stateNames = [...]string{
	StateDefault: "default",
	StatePrimary: "primary",
	StateSuccess: "success",
	StateInfo:    "info",
	StateWarning: "warning",
	StateDanger:  "danger",
	StateLink:    "link",
}

func (s ContextualState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("ContextualState(%d)", uint8(s))
}

// ParseContextualState resolves a state name, ignoring case. An empty string
// maps to StateDefault.
func ParseContextualState(raw string) (ContextualState, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return StateDefault, nil
	}
	for idx, candidate := range stateNames {
		if candidate == name {
			return ContextualState(idx), nil
		}
	}
	return StateDefault, fmt.Errorf("model: unknown contextual state %q", raw)
}

func (s ContextualState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ContextualState) UnmarshalText(text []byte) error {
	parsed, err := ParseContextualState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Size is the requested button (or button group) size.
type Size uint8

const (
	SizeDefault Size = iota
	SizeLarge
	SizeSmall
	SizeExtraSmall
)

func (s Size) String() string {
	switch s {
	case SizeDefault:
		return "default"
	case SizeLarge:
		return "large"
	case SizeSmall:
		return "small"
	case SizeExtraSmall:
		return "extra-small"
	default:
		return fmt.Sprintf("Size(%d)", uint8(s))
	}
}

// Suffix returns the short class suffix for the size ("lg", "sm", "xs"), or an
// empty string for the default size which carries no class.
func (s Size) Suffix() string {
	switch s {
	case SizeLarge:
		return "lg"
	case SizeSmall:
		return "sm"
	case SizeExtraSmall:
		return "xs"
	default:
		return ""
	}
}

// ParseSize accepts both the long names and the class suffixes.
func ParseSize(raw string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "default", "md":
		return SizeDefault, nil
	case "large", "lg":
		return SizeLarge, nil
	case "small", "sm":
		return SizeSmall, nil
	case "extra-small", "extrasmall", "xs":
		return SizeExtraSmall, nil
	default:
		return SizeDefault, fmt.Errorf("model: unknown size %q", raw)
	}
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UpdateMode controls how an AJAX response is placed into its update target.
type UpdateMode uint8

const (
	UpdateReplace UpdateMode = iota
	UpdateAppend
	UpdateBefore
	UpdateAfter
)

var updateModeNames = [...]string{
	UpdateReplace: "replace",
	UpdateAppend:  "append",
	UpdateBefore:  "before",
	UpdateAfter:   "after",
}

func (m UpdateMode) String() string {
	if int(m) < len(updateModeNames) {
		return updateModeNames[m]
	}
	return fmt.Sprintf("UpdateMode(%d)", uint8(m))
}

// ParseUpdateMode resolves a mode name, ignoring case. Empty means replace.
func ParseUpdateMode(raw string) (UpdateMode, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return UpdateReplace, nil
	}
	for idx, candidate := range updateModeNames {
		if candidate == name {
			return UpdateMode(idx), nil
		}
	}
	return UpdateReplace, fmt.Errorf("model: unknown update mode %q", raw)
}

func (m UpdateMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *UpdateMode) UnmarshalText(text []byte) error {
	parsed, err := ParseUpdateMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

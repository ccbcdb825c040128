package model

import (
	"slices"

	"github.com/google/uuid"
)

// ActionKind identifies how a button (or dropdown item) performs its action.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionSubmit
	ActionNavigate
	ActionAjax
)

func (k ActionKind) String() string {
	switch k {
	case ActionSubmit:
		return "submit"
	case ActionNavigate:
		return "navigate"
	case ActionAjax:
		return "ajax"
	default:
		return "none"
	}
}

// Action is a tagged union over the mutually exclusive action kinds. URL is
// only meaningful for ActionNavigate and Ajax only for ActionAjax; renderers
// never look at a payload that does not match Kind.
type Action struct {
	Kind ActionKind
	URL  string
	Ajax *Ajax
}

// SubmitAction renders the button as a form submit button.
func SubmitAction() Action {
	return Action{Kind: ActionSubmit}
}

// NavigateAction renders the button as a link to url.
func NavigateAction(url string) Action {
	return Action{Kind: ActionNavigate, URL: url}
}

// AjaxAction renders the button as an unobtrusive AJAX trigger.
func AjaxAction(ajax Ajax) Action {
	return Action{Kind: ActionAjax, Ajax: &ajax}
}

// Anchor reports whether the action needs link semantics (navigate or ajax).
func (a Action) Anchor() bool {
	return a.Kind == ActionNavigate || a.Kind == ActionAjax
}

// AjaxConfig returns the AJAX payload when Kind is ActionAjax.
func (a Action) AjaxConfig() (*Ajax, bool) {
	if a.Kind != ActionAjax || a.Ajax == nil {
		return nil, false
	}
	return a.Ajax, true
}

// NavigateURL returns the target when Kind is ActionNavigate.
func (a Action) NavigateURL() (string, bool) {
	if a.Kind != ActionNavigate {
		return "", false
	}
	return a.URL, true
}

func (a Action) clone() Action {
	if a.Ajax != nil {
		ajax := *a.Ajax
		a.Ajax = &ajax
	}
	return a
}

// Ajax describes an unobtrusive AJAX call. Callback fields hold script
// function names, not invocations.
type Ajax struct {
	URL                     string
	UpdateTargetID          string
	BusyIndicatorID         string
	Mode                    UpdateMode
	OnStart                 string
	OnSuccess               string
	OnError                 string
	OnComplete              string
	ClearUpdateAreaOnStart  bool
	DisableButtonDuringCall bool
}

// DropdownItem is one entry of a dropdown menu. Its Action is limited to
// ActionNone, ActionNavigate or ActionAjax.
type DropdownItem struct {
	Text      string
	Action    Action
	Click     string
	Separated bool
}

// Dropdown is the ordered menu attached to a button.
type Dropdown struct {
	Items []DropdownItem
}

// Clone returns a deep copy of the dropdown.
func (d *Dropdown) Clone() *Dropdown {
	if d == nil {
		return nil
	}
	items := slices.Clone(d.Items)
	for idx := range items {
		items[idx].Action = items[idx].Action.clone()
	}
	return &Dropdown{Items: items}
}

// Button configures a single button widget.
type Button struct {
	ID   string
	Name string
	Text string
	// Icon is optional inline markup (an SVG or an icon-font element) placed
	// before Text. Renderers sanitise it before output.
	Icon       string
	State      ContextualState
	Size       Size
	Block      bool
	Active     bool
	Disabled   bool
	Action     Action
	Click      string
	CSSClasses []string
	Dropdown   *Dropdown
}

// NewButton returns an empty button carrying a freshly generated id.
func NewButton() Button {
	return Button{ID: uuid.NewString()}
}

// HasDropdown reports whether a dropdown menu is attached.
func (b Button) HasDropdown() bool {
	return b.Dropdown != nil
}

// Clone returns a deep copy of the button.
func (b Button) Clone() Button {
	b.Action = b.Action.clone()
	b.CSSClasses = slices.Clone(b.CSSClasses)
	b.Dropdown = b.Dropdown.Clone()
	return b
}

// Group configures a button group. ButtonSize and State are pushed into the
// member buttons at render time.
type Group struct {
	Buttons    []Button
	Vertical   bool
	ButtonSize Size
	State      ContextualState
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	g.Buttons = slices.Clone(g.Buttons)
	for idx := range g.Buttons {
		g.Buttons[idx] = g.Buttons[idx].Clone()
	}
	return g
}

// Toolbar configures a button toolbar. ButtonSize and State are pushed into
// every group at render time.
type Toolbar struct {
	Groups     []Group
	ButtonSize Size
	State      ContextualState
}

// Clone returns a deep copy of the toolbar.
func (t Toolbar) Clone() Toolbar {
	t.Groups = slices.Clone(t.Groups)
	for idx := range t.Groups {
		t.Groups[idx] = t.Groups[idx].Clone()
	}
	return t
}

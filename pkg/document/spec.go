package document

import (
	"github.com/goliatone/go-buttongen/pkg/builder"
	"github.com/goliatone/go-buttongen/pkg/model"
)

// Document is the content of a single widget file. Map keys are widget names.
type Document struct {
	Buttons  map[string]ButtonSpec  `yaml:"buttons,omitempty" json:"buttons,omitempty" validate:"dive,keys,required,endkeys"`
	Groups   map[string]GroupSpec   `yaml:"groups,omitempty" json:"groups,omitempty" validate:"dive,keys,required,endkeys"`
	Toolbars map[string]ToolbarSpec `yaml:"toolbars,omitempty" json:"toolbars,omitempty" validate:"dive,keys,required,endkeys"`
}

// ButtonSpec declares a button. Submit, Navigate and Ajax are mutually
// exclusive; the builder rejects combinations at load time.
type ButtonSpec struct {
	ID       string                `yaml:"id,omitempty" json:"id,omitempty"`
	Name     string                `yaml:"name,omitempty" json:"name,omitempty"`
	Text     string                `yaml:"text,omitempty" json:"text,omitempty"`
	Icon     string                `yaml:"icon,omitempty" json:"icon,omitempty"`
	State    model.ContextualState `yaml:"state,omitempty" json:"state,omitempty"`
	Size     model.Size            `yaml:"size,omitempty" json:"size,omitempty"`
	Block    bool                  `yaml:"block,omitempty" json:"block,omitempty"`
	Active   bool                  `yaml:"active,omitempty" json:"active,omitempty"`
	Disabled bool                  `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Submit   bool                  `yaml:"submit,omitempty" json:"submit,omitempty"`
	Navigate string                `yaml:"navigate,omitempty" json:"navigate,omitempty"`
	Click    string                `yaml:"click,omitempty" json:"click,omitempty"`
	Classes  []string              `yaml:"classes,omitempty" json:"classes,omitempty" validate:"dive,required"`
	Ajax     *AjaxSpec             `yaml:"ajax,omitempty" json:"ajax,omitempty"`
	Dropdown []ItemSpec            `yaml:"dropdown,omitempty" json:"dropdown,omitempty" validate:"dive"`
}

// AjaxSpec declares the AJAX behaviour of a button or dropdown item.
type AjaxSpec struct {
	URL             string           `yaml:"url,omitempty" json:"url,omitempty" validate:"required"`
	Update          string           `yaml:"update,omitempty" json:"update,omitempty"`
	Loading         string           `yaml:"loading,omitempty" json:"loading,omitempty"`
	Mode            model.UpdateMode `yaml:"mode,omitempty" json:"mode,omitempty"`
	OnStart         string           `yaml:"onStart,omitempty" json:"onStart,omitempty"`
	OnSuccess       string           `yaml:"onSuccess,omitempty" json:"onSuccess,omitempty"`
	OnError         string           `yaml:"onError,omitempty" json:"onError,omitempty"`
	OnComplete      string           `yaml:"onComplete,omitempty" json:"onComplete,omitempty"`
	ClearUpdateArea bool             `yaml:"clearUpdateArea,omitempty" json:"clearUpdateArea,omitempty"`
	DisableButton   bool             `yaml:"disableButton,omitempty" json:"disableButton,omitempty"`
}

// ItemSpec declares a dropdown item.
type ItemSpec struct {
	Text      string    `yaml:"text,omitempty" json:"text,omitempty" validate:"required"`
	Navigate  string    `yaml:"navigate,omitempty" json:"navigate,omitempty"`
	Click     string    `yaml:"click,omitempty" json:"click,omitempty"`
	Ajax      *AjaxSpec `yaml:"ajax,omitempty" json:"ajax,omitempty"`
	Separated bool      `yaml:"separated,omitempty" json:"separated,omitempty"`
}

// GroupSpec declares a button group.
type GroupSpec struct {
	Vertical bool                  `yaml:"vertical,omitempty" json:"vertical,omitempty"`
	Size     model.Size            `yaml:"size,omitempty" json:"size,omitempty"`
	State    model.ContextualState `yaml:"state,omitempty" json:"state,omitempty"`
	Buttons  []ButtonSpec          `yaml:"buttons" json:"buttons" validate:"required,dive"`
}

// ToolbarSpec declares a toolbar.
type ToolbarSpec struct {
	Size   model.Size            `yaml:"size,omitempty" json:"size,omitempty"`
	State  model.ContextualState `yaml:"state,omitempty" json:"state,omitempty"`
	Groups []GroupSpec           `yaml:"groups" json:"groups" validate:"required,dive"`
}

func (s ButtonSpec) apply(b *builder.ButtonBuilder) {
	if s.ID != "" {
		b.ID(s.ID)
	}
	b.Name(s.Name).
		Text(s.Text).
		Icon(s.Icon).
		Contextual(s.State).
		Size(s.Size).
		Block(s.Block).
		Active(s.Active).
		Disabled(s.Disabled)
	if s.Click != "" {
		b.Click(s.Click)
	}
	for _, class := range s.Classes {
		b.CSSClass(class)
	}
	if s.Submit {
		b.Submit()
	}
	if s.Navigate != "" {
		b.Navigate(s.Navigate)
	}
	if s.Ajax != nil {
		b.Ajax(s.Ajax.apply)
	}
	if len(s.Dropdown) > 0 {
		b.Dropdown(func(d *builder.DropdownBuilder) {
			for _, item := range s.Dropdown {
				d.Item(item.apply)
			}
		})
	}
}

func (s *AjaxSpec) apply(a *builder.AjaxBuilder) {
	a.URL(s.URL).UpdateMode(s.Mode)
	if s.Update != "" {
		a.UpdateID(s.Update)
	}
	if s.Loading != "" {
		a.BusyIndicatorID(s.Loading)
	}
	a.Start(s.OnStart).
		Success(s.OnSuccess).
		Error(s.OnError).
		Complete(s.OnComplete).
		ClearUpdateArea(s.ClearUpdateArea)
	if s.DisableButton {
		a.DisableButton()
	}
}

func (s ItemSpec) apply(i *builder.ItemBuilder) {
	i.Text(s.Text)
	if s.Click != "" {
		i.ClickHandler(s.Click)
	}
	if s.Navigate != "" {
		i.Navigate(s.Navigate)
	}
	if s.Ajax != nil {
		i.Ajax(s.Ajax.apply)
	}
	if s.Separated {
		i.Separated()
	}
}

func (s GroupSpec) apply(g *builder.GroupBuilder) {
	g.Contextual(s.State).ButtonSize(s.Size)
	if s.Vertical {
		g.Vertical()
	}
	for _, button := range s.Buttons {
		g.Button(button.apply)
	}
}

func (s ToolbarSpec) apply(t *builder.ToolbarBuilder) {
	t.Contextual(s.State).ButtonSize(s.Size)
	for _, group := range s.Groups {
		t.Group(group.apply)
	}
}

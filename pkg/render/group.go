package render

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/model"
)

// GroupRenderer renders a button group, pushing the group's defaults into
// its buttons before delegating to a ButtonRenderer.
type GroupRenderer struct {
	cfg     config
	buttons *ButtonRenderer
}

// NewGroupRenderer constructs a GroupRenderer.
func NewGroupRenderer(options ...Option) *GroupRenderer {
	cfg := newConfig(options)
	return &GroupRenderer{cfg: cfg, buttons: &ButtonRenderer{cfg: cfg}}
}

// Render builds the btn-group container. The group's ButtonSize only reaches
// buttons that own a dropdown, so split toggles match the group; plain
// buttons keep their own size. The group's State always overrides.
func (r *GroupRenderer) Render(group model.Group) *markup.Element {
	classes := r.cfg.classes
	r.cfg.logger.Debug("render button group",
		zap.Int("buttons", len(group.Buttons)),
		zap.Bool("vertical", group.Vertical),
	)

	container := markup.NewElement("div")
	if group.Vertical {
		container.AddClass(classes.GroupVertical)
	} else {
		container.AddClass(classes.Group)
	}
	container.SetAttr("role", "group")
	container.AddClass(classes.groupSize(group.ButtonSize.Suffix()))

	for _, button := range group.Buttons {
		container.Append(r.buttons.Render(propagateGroup(group, button)))
	}
	return container
}

func propagateGroup(group model.Group, button model.Button) model.Button {
	button = button.Clone()
	if button.HasDropdown() {
		button.Size = group.ButtonSize
	}
	button.State = group.State
	return button
}

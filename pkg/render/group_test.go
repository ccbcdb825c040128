package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-buttongen/pkg/model"
	"github.com/goliatone/go-buttongen/pkg/render"
)

func TestGroupRenderer_SizeOnlyReachesDropdownButtons(t *testing.T) {
	group := model.Group{
		ButtonSize: model.SizeLarge,
		State:      model.StateDanger,
		Buttons: []model.Button{
			{Text: "A", Size: model.SizeSmall, State: model.StateSuccess},
			{
				Text:     "B",
				Action:   model.NavigateAction("/b"),
				Dropdown: &model.Dropdown{Items: []model.DropdownItem{{Text: "C", Action: model.NavigateAction("/c")}}},
			},
		},
	}

	got := render.NewGroupRenderer().Render(group)
	want := el("div", attrs("class", "btn-group btn-group-lg", "role", "group"),
		el("button", attrs("class", "btn btn-danger btn-sm", "type", "button"), text("A")),
		el("div", attrs("class", "btn-group"),
			el("a", attrs("class", "btn btn-danger btn-lg", "role", "button", "href", "/b"), text("B")),
			el("button", attrs(
				"class", "dropdown-toggle btn btn-danger btn-lg",
				"type", "button",
				"data-toggle", "dropdown",
				"aria-haspopup", "true",
				"aria-expanded", "false",
			),
				el("span", attrs("class", "caret")),
				el("span", attrs("class", "sr-only"), text(render.DefaultToggleLabel)),
			),
			el("ul", attrs("class", "dropdown-menu"),
				el("li", nil, el("a", attrs("href", "/c"), text("C"))),
			),
		),
	)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("group mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupRenderer_Vertical(t *testing.T) {
	got := render.NewGroupRenderer().Render(model.Group{
		Vertical: true,
		Buttons:  []model.Button{{Text: "Up"}, {Text: "Down"}},
	})

	if !got.HasClass("btn-group-vertical") || got.HasClass("btn-group") {
		t.Fatalf("unexpected classes %v", got.Classes())
	}
	if role, _ := got.Attr("role"); role != "group" {
		t.Fatalf("role: got %q", role)
	}
	if n := len(got.Find(byTag("button"))); n != 2 {
		t.Fatalf("expected 2 buttons, got %d", n)
	}
}

func TestGroupRenderer_EmptyGroup(t *testing.T) {
	got := render.NewGroupRenderer().Render(model.Group{})
	if diff := cmp.Diff(`<div class="btn-group" role="group"></div>`, got.String()); diff != "" {
		t.Fatalf("empty group mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupRenderer_DoesNotMutateInput(t *testing.T) {
	group := model.Group{
		ButtonSize: model.SizeExtraSmall,
		State:      model.StateWarning,
		Buttons: []model.Button{
			{Text: "A"},
			{Text: "B", Dropdown: &model.Dropdown{Items: []model.DropdownItem{{Text: "x"}}}},
		},
	}
	before := group.Clone()

	render.NewGroupRenderer().Render(group)

	if diff := cmp.Diff(before, group); diff != "" {
		t.Fatalf("group mutated (-before +after):\n%s", diff)
	}
}

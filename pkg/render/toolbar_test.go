package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-buttongen/pkg/model"
	"github.com/goliatone/go-buttongen/pkg/render"
)

func TestToolbarRenderer_PropagatesSizeAndState(t *testing.T) {
	toolbar := model.Toolbar{
		ButtonSize: model.SizeLarge,
		State:      model.StateDanger,
		Groups: []model.Group{
			{State: model.StateInfo, Buttons: []model.Button{{Text: "X"}}},
			{Buttons: []model.Button{{Text: "Y", Size: model.SizeSmall}}},
		},
	}

	got := render.NewToolbarRenderer().Render(toolbar)
	want := el("div", attrs("class", "btn-toolbar", "role", "toolbar"),
		el("div", attrs("class", "btn-group btn-group-lg", "role", "group"),
			el("button", attrs("class", "btn btn-danger", "type", "button"), text("X")),
		),
		el("div", attrs("class", "btn-group btn-group-lg", "role", "group"),
			el("button", attrs("class", "btn btn-danger btn-sm", "type", "button"), text("Y")),
		),
	)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("toolbar mismatch (-want +got):\n%s", diff)
	}
}

func TestToolbarRenderer_HTML(t *testing.T) {
	toolbar := model.Toolbar{Groups: []model.Group{{Buttons: []model.Button{{Text: "Save & close"}}}}}

	got := render.NewToolbarRenderer().Render(toolbar).String()
	want := `<div class="btn-toolbar" role="toolbar"><div class="btn-group" role="group">` +
		`<button class="btn btn-default" type="button">Save &amp; close</button></div></div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("toolbar html mismatch (-want +got):\n%s", diff)
	}
}

func TestToolbarRenderer_DoesNotMutateInput(t *testing.T) {
	toolbar := model.Toolbar{
		ButtonSize: model.SizeSmall,
		State:      model.StatePrimary,
		Groups:     []model.Group{{ButtonSize: model.SizeLarge, Buttons: []model.Button{{Text: "A"}}}},
	}
	before := toolbar.Clone()

	render.NewToolbarRenderer().Render(toolbar)

	if diff := cmp.Diff(before, toolbar); diff != "" {
		t.Fatalf("toolbar mutated (-before +after):\n%s", diff)
	}
}

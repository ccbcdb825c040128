package builder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-buttongen/pkg/builder"
	"github.com/goliatone/go-buttongen/pkg/model"
)

func TestGroupBuilder_Render(t *testing.T) {
	el, err := builder.NewGroup().
		ButtonSize(model.SizeSmall).
		Contextual(model.StateSuccess).
		Button(func(b *builder.ButtonBuilder) { b.ID("a").Text("A").Size(model.SizeLarge) }).
		Button(func(b *builder.ButtonBuilder) { b.ID("b").Text("B").Submit() }).
		Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<div class="btn-group btn-group-sm" role="group">` +
		`<button class="btn btn-success btn-lg" type="button" id="a">A</button>` +
		`<button class="btn btn-success" type="submit" id="b">B</button>` +
		`</div>`
	if diff := cmp.Diff(want, el.String()); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupBuilder_NestedErrorLatches(t *testing.T) {
	g := builder.NewGroup().
		Button(func(b *builder.ButtonBuilder) { b.Text("ok") }).
		Button(func(b *builder.ButtonBuilder) { b.Submit().Navigate("/x") }).
		Button(func(b *builder.ButtonBuilder) { b.Navigate("") })

	if !errors.Is(g.Err(), builder.ErrInvalidState) {
		t.Fatalf("expected the first nested failure, got %v", g.Err())
	}
	if _, err := g.Config(); err == nil {
		t.Fatalf("expected Config to fail")
	}
	if _, err := g.Render(); err == nil {
		t.Fatalf("expected Render to fail")
	}
}

func TestGroupBuilder_MissingButtonCallback(t *testing.T) {
	g := builder.NewGroup().Button(nil)
	var berr *builder.Error
	if !errors.As(g.Err(), &berr) || berr.Op != "Group.Button" || !errors.Is(berr, builder.ErrMissingArgument) {
		t.Fatalf("unexpected error %v", g.Err())
	}
}

func TestGroupBuilder_Config(t *testing.T) {
	got, err := builder.NewGroup().
		Vertical().
		ButtonSize(model.SizeLarge, false).
		Contextual(model.StateWarning).
		Button(func(b *builder.ButtonBuilder) { b.ID("a") }).
		Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	want := model.Group{
		Vertical: true,
		State:    model.StateWarning,
		Buttons:  []model.Button{{ID: "a"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupBuilder_ToolbarIsIndependent(t *testing.T) {
	g := builder.NewGroup().Button(nil)
	tb := g.Toolbar()
	if tb.Err() != nil {
		t.Fatalf("toolbar should not inherit the group's error, got %v", tb.Err())
	}
	got, err := tb.Config()
	if err != nil || len(got.Groups) != 0 {
		t.Fatalf("expected empty toolbar, got %+v %v", got, err)
	}
}

package builder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-buttongen/pkg/builder"
	"github.com/goliatone/go-buttongen/pkg/model"
)

func TestToolbarBuilder_RoundTrip(t *testing.T) {
	el := builder.NewToolbar().
		ButtonSize(model.SizeLarge).
		Contextual(model.StateDanger).
		Group(func(g *builder.GroupBuilder) {
			g.Button(func(b *builder.ButtonBuilder) { b.ID("only").Text("Delete") })
		}).
		MustRender()

	want := `<div class="btn-toolbar" role="toolbar">` +
		`<div class="btn-group btn-group-lg" role="group">` +
		`<button class="btn btn-danger" type="button" id="only">Delete</button>` +
		`</div></div>`
	if diff := cmp.Diff(want, el.String()); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestToolbarBuilder_Errors(t *testing.T) {
	tb := builder.NewToolbar().Group(nil)
	if !errors.Is(tb.Err(), builder.ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", tb.Err())
	}

	tb = builder.NewToolbar().Group(func(g *builder.GroupBuilder) {
		g.Button(func(b *builder.ButtonBuilder) { b.Navigate("/x").Submit() })
	})
	if _, err := tb.Render(); !errors.Is(err, builder.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestToolbarBuilder_Config(t *testing.T) {
	got, err := builder.NewToolbar().
		Contextual(model.StateInfo).
		ButtonSize(model.SizeExtraSmall).
		Group(func(g *builder.GroupBuilder) { g.Vertical() }).
		Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	want := model.Toolbar{
		State:      model.StateInfo,
		ButtonSize: model.SizeExtraSmall,
		Groups:     []model.Group{{Vertical: true}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

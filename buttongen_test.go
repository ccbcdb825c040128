package buttongen_test

import (
	"errors"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	buttongen "github.com/goliatone/go-buttongen"
	"github.com/goliatone/go-buttongen/pkg/builder"
	"github.com/goliatone/go-buttongen/pkg/document"
	"github.com/goliatone/go-buttongen/pkg/model"
	"github.com/goliatone/go-buttongen/pkg/render"
	"github.com/goliatone/go-buttongen/pkg/testsupport"
)

func TestNewButton_HTML(t *testing.T) {
	got, err := buttongen.HTML(buttongen.NewButton().
		ID("go").
		Text("Go").
		Contextual(model.StateSuccess).
		Navigate("/go").
		Render())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<a class="btn btn-success" role="button" id="go" href="/go">Go</a>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestNewButton_ErrorsSurface(t *testing.T) {
	_, err := buttongen.HTML(buttongen.NewButton().Navigate("/a").Submit().Render())
	if !errors.Is(err, buttongen.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	_, err = buttongen.HTML(buttongen.NewGroup().Button(nil).Render())
	if !errors.Is(err, buttongen.ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}
}

func TestNewGroup_AndToolbar(t *testing.T) {
	group, err := buttongen.NewGroup().
		Vertical().
		Button(func(b *builder.ButtonBuilder) { b.ID("a").Text("A") }).
		Config()
	if err != nil {
		t.Fatalf("group config: %v", err)
	}
	want := `<div class="btn-group-vertical" role="group"><button class="btn btn-default" type="button" id="a">A</button></div>`
	if diff := cmp.Diff(want, buttongen.RenderGroup(group)); diff != "" {
		t.Fatalf("group mismatch (-want +got):\n%s", diff)
	}

	toolbar, err := buttongen.NewToolbar().Group(func(g *builder.GroupBuilder) {
		g.Button(func(b *builder.ButtonBuilder) { b.ID("b").Text("B") })
	}).Config()
	if err != nil {
		t.Fatalf("toolbar config: %v", err)
	}
	want = `<div class="btn-toolbar" role="toolbar"><div class="btn-group" role="group">` +
		`<button class="btn btn-default" type="button" id="b">B</button></div></div>`
	if diff := cmp.Diff(want, buttongen.RenderToolbar(toolbar)); diff != "" {
		t.Fatalf("toolbar mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderButton_WithThemeSelection(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "flat",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "flat",
			Version: "1.0.0",
			Tokens:  map[string]string{render.TokenButton: "button"},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{render.TokenActive: "is-active"}},
			},
		},
	}}

	opt, err := buttongen.WithThemeSelection(selector, " flat ", "dark")
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if selector.name != "flat" || selector.variant != "dark" {
		t.Fatalf("unexpected selector args %q %q", selector.name, selector.variant)
	}

	got := buttongen.RenderButton(buttongen.Button{ID: "x", Text: "X", Active: true}, opt)
	want := `<button class="button button-default is-active" type="button" id="x">X</button>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestWithThemeSelection_Errors(t *testing.T) {
	if _, err := buttongen.WithThemeSelection(nil, "x", ""); err == nil {
		t.Fatalf("expected error for nil selector")
	}
	failing := &stubThemeSelector{err: errors.New("boom")}
	if _, err := buttongen.WithThemeSelection(failing, "x", ""); err == nil {
		t.Fatalf("expected selector error")
	}
	empty := &stubThemeSelector{selection: &theme.Selection{Theme: "x"}}
	if _, err := buttongen.WithThemeSelection(empty, "x", ""); err == nil {
		t.Fatalf("expected error for missing manifest")
	}
}

func TestLoadDocuments(t *testing.T) {
	store, err := buttongen.LoadDocuments(fstest.MapFS{
		"w.yaml": {Data: []byte("buttons:\n  back:\n    id: back\n    text: Back\n    navigate: /\n")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	el := testsupport.MustRenderWidget(t, store, document.KindButton, "back")
	if diff := cmp.Diff(`<a class="btn btn-default" role="button" id="back" href="/">Back</a>`, el.String()); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error

	name    string
	variant string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.name = name
	s.variant = variant
	return s.selection, s.err
}

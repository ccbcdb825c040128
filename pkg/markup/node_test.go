package markup

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElement_SetAttrKeepsPosition(t *testing.T) {
	el := NewElement("a")
	el.SetAttr("id", "one").SetAttr("href", "/x").SetAttr("id", "two")

	want := []Attr{{Name: "id", Value: "two"}, {Name: "href", Value: "/x"}}
	if diff := cmp.Diff(want, el.Attrs); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}

	if value, ok := el.RemoveAttr("id"); !ok || value != "two" {
		t.Fatalf("remove attr: got %q (ok=%v)", value, ok)
	}
	if el.HasAttr("id") {
		t.Fatalf("id should be removed")
	}
}

func TestElement_AddClassDeduplicates(t *testing.T) {
	el := NewElement("button")
	el.AddClass("btn").AddClass("btn btn-default", "").AddClassIf("active", false).AddClassIf("btn-lg", true)

	if diff := cmp.Diff([]string{"btn", "btn-default", "btn-lg"}, el.Classes()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
	if !el.HasClass("btn-default") || el.HasClass("active") {
		t.Fatalf("unexpected HasClass result: %v", el.Classes())
	}
}

func TestElement_RenderHTML(t *testing.T) {
	group := NewElement("div").AddClass("btn-group").SetAttr("role", "group")
	button := NewElement("button").AddClass("btn btn-default").SetAttr("type", "button")
	button.Append(Text("Save & close"))
	group.Append(button, nil)

	want := `<div class="btn-group" role="group"><button class="btn btn-default" type="button">Save &amp; close</button></div>`
	if got := group.String(); got != want {
		t.Fatalf("render mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestElement_FindAndTextContent(t *testing.T) {
	menu := NewElement("ul").AddClass("dropdown-menu")
	for _, label := range []string{"One", "Two"} {
		link := NewElement("a").Append(Text(label))
		menu.Append(NewElement("li").Append(link))
	}

	links := menu.Find(func(el *Element) bool { return el.Tag == "a" })
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if got := menu.TextContent(); got != "OneTwo" {
		t.Fatalf("text content: got %q", got)
	}
}

func TestComponent_WritesFragment(t *testing.T) {
	el := NewElement("span").AddClass("caret")

	var buf bytes.Buffer
	if err := Component(el).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render component: %v", err)
	}
	if got := buf.String(); got != `<span class="caret"></span>` {
		t.Fatalf("unexpected component output %q", got)
	}

	rec := httptest.NewRecorder()
	Handler(el).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Body.String() != `<span class="caret"></span>` {
		t.Fatalf("unexpected handler body %q", rec.Body.String())
	}
}

package markup

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Node is anything that can appear inside an Element. It matches the
// gomponents Node contract.
type Node = g.Node

// Attr is a single attribute. A Value of "" still renders as name="".
type Attr struct {
	Name  string
	Value string
}

// Text is literal text content; it is escaped on output.
type Text string

func (t Text) Render(w io.Writer) error {
	return g.Text(string(t)).Render(w)
}

// Raw is markup emitted verbatim. Callers are responsible for sanitising it.
type Raw string

func (r Raw) Render(w io.Writer) error {
	return g.Raw(string(r)).Render(w)
}

// Element is an HTML element with ordered attributes and children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// NewElement creates an empty element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr replaces an existing attribute in place, keeping its position, or
// appends a new one.
func (e *Element) SetAttr(name, value string) *Element {
	for idx := range e.Attrs {
		if e.Attrs[idx].Name == name {
			e.Attrs[idx].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// SetAttrIf sets the attribute only when value is non-empty.
func (e *Element) SetAttrIf(name, value string) *Element {
	if value == "" {
		return e
	}
	return e.SetAttr(name, value)
}

// RemoveAttr drops the named attribute and returns its previous value.
func (e *Element) RemoveAttr(name string) (string, bool) {
	for idx, attr := range e.Attrs {
		if attr.Name == name {
			e.Attrs = append(e.Attrs[:idx], e.Attrs[idx+1:]...)
			return attr.Value, true
		}
	}
	return "", false
}

// AddClass appends class tokens to the class attribute. Empty tokens and
// duplicates are ignored.
func (e *Element) AddClass(classes ...string) *Element {
	current := e.Classes()
	changed := false
	for _, raw := range classes {
		for _, token := range strings.Fields(raw) {
			if containsToken(current, token) {
				continue
			}
			current = append(current, token)
			changed = true
		}
	}
	if changed {
		e.SetAttr("class", strings.Join(current, " "))
	}
	return e
}

// AddClassIf appends class when cond holds.
func (e *Element) AddClassIf(class string, cond bool) *Element {
	if !cond {
		return e
	}
	return e.AddClass(class)
}

// Classes returns the class tokens in order.
func (e *Element) Classes() []string {
	value, ok := e.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(value)
}

// HasClass reports whether the class token is present.
func (e *Element) HasClass(class string) bool {
	return containsToken(e.Classes(), class)
}

// Append adds children in order. Nil children are skipped.
func (e *Element) Append(children ...Node) *Element {
	for _, child := range children {
		if child == nil {
			continue
		}
		if el, ok := child.(*Element); ok && el == nil {
			continue
		}
		e.Children = append(e.Children, child)
	}
	return e
}

// ChildElements returns the direct element children, skipping text.
func (e *Element) ChildElements() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Find walks the tree depth-first (including e) and returns every element
// matching match.
func (e *Element) Find(match func(*Element) bool) []*Element {
	if e == nil || match == nil {
		return nil
	}
	var out []*Element
	var walk func(*Element)
	walk = func(el *Element) {
		if match(el) {
			out = append(out, el)
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(e)
	return out
}

// TextContent concatenates the text of every Text descendant.
func (e *Element) TextContent() string {
	if e == nil {
		return ""
	}
	var builder strings.Builder
	for _, child := range e.Children {
		switch v := child.(type) {
		case Text:
			builder.WriteString(string(v))
		case *Element:
			builder.WriteString(v.TextContent())
		}
	}
	return builder.String()
}

// Node converts the element into a gomponents tree.
func (e *Element) Node() g.Node {
	nodes := make([]g.Node, 0, len(e.Attrs)+len(e.Children))
	for _, attr := range e.Attrs {
		nodes = append(nodes, g.Attr(attr.Name, attr.Value))
	}
	nodes = append(nodes, e.Children...)
	return g.El(e.Tag, nodes...)
}

// Render writes the element as HTML.
func (e *Element) Render(w io.Writer) error {
	if e == nil {
		return nil
	}
	return e.Node().Render(w)
}

// String renders the element to a string, returning "" on write failure.
func (e *Element) String() string {
	return String(e)
}

// String renders any node to a string.
func String(node Node) string {
	if node == nil {
		return ""
	}
	var builder strings.Builder
	if err := node.Render(&builder); err != nil {
		return ""
	}
	return builder.String()
}

// Component adapts a node into a templ component.
func Component(node Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// Handler serves the node as an HTML fragment.
func Handler(node Node) http.Handler {
	return templ.Handler(Component(node))
}

func containsToken(tokens []string, token string) bool {
	for _, candidate := range tokens {
		if candidate == token {
			return true
		}
	}
	return false
}

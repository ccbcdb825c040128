package render_test

import (
	"github.com/goliatone/go-buttongen/pkg/markup"
)

func el(tag string, attrs []markup.Attr, children ...markup.Node) *markup.Element {
	return &markup.Element{Tag: tag, Attrs: attrs, Children: children}
}

func attrs(pairs ...string) []markup.Attr {
	var out []markup.Attr
	for idx := 0; idx+1 < len(pairs); idx += 2 {
		out = append(out, markup.Attr{Name: pairs[idx], Value: pairs[idx+1]})
	}
	return out
}

func text(value string) markup.Text {
	return markup.Text(value)
}

func byTag(tag string) func(*markup.Element) bool {
	return func(el *markup.Element) bool { return el.Tag == tag }
}

func byClass(class string) func(*markup.Element) bool {
	return func(el *markup.Element) bool { return el.HasClass(class) }
}

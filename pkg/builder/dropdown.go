package builder

import (
	"strings"

	"github.com/goliatone/go-buttongen/pkg/model"
)

// DropdownBuilder collects menu items.
type DropdownBuilder struct {
	latch    *latch
	dropdown *model.Dropdown
}

// Item appends an item configured by fn.
func (b *DropdownBuilder) Item(fn func(*ItemBuilder)) *DropdownBuilder {
	if b.latch.failed() {
		return b
	}
	if fn == nil {
		b.latch.missing("Dropdown.Item", "fn")
		return b
	}
	var item model.DropdownItem
	fn(&ItemBuilder{latch: b.latch, item: &item})
	if !b.latch.failed() {
		b.dropdown.Items = append(b.dropdown.Items, item)
	}
	return b
}

// ItemBuilder configures a single dropdown item.
type ItemBuilder struct {
	latch *latch
	item  *model.DropdownItem
}

func (b *ItemBuilder) Text(text string) *ItemBuilder {
	if b.latch.failed() {
		return b
	}
	if strings.TrimSpace(text) == "" {
		b.latch.missing("Item.Text", "text")
		return b
	}
	b.item.Text = text
	return b
}

func (b *ItemBuilder) Navigate(url string) *ItemBuilder {
	const op = "Item.Navigate"
	switch {
	case b.latch.failed():
	case b.item.Action.Kind == model.ActionAjax:
		b.latch.conflict(op, "item is AJAX")
	case strings.TrimSpace(url) == "":
		b.latch.missing(op, "url")
	default:
		b.item.Action = model.NavigateAction(url)
	}
	return b
}

// ClickHandler sets the JavaScript function invoked without arguments.
func (b *ItemBuilder) ClickHandler(fn string) *ItemBuilder {
	if b.latch.failed() {
		return b
	}
	if strings.TrimSpace(fn) == "" {
		b.latch.missing("Item.ClickHandler", "fn")
		return b
	}
	b.item.Click = fn
	return b
}

func (b *ItemBuilder) Ajax(fn func(*AjaxBuilder)) *ItemBuilder {
	const op = "Item.Ajax"
	switch {
	case b.latch.failed():
		return b
	case b.item.Action.Kind == model.ActionNavigate:
		b.latch.conflict(op, "item is navigational")
		return b
	case fn == nil:
		b.latch.missing(op, "fn")
		return b
	}

	var ajax model.Ajax
	fn(&AjaxBuilder{latch: b.latch, ajax: &ajax})
	if !b.latch.failed() {
		b.item.Action = model.AjaxAction(ajax)
	}
	return b
}

// Separated draws a divider before the item unless it is the first one.
func (b *ItemBuilder) Separated() *ItemBuilder {
	if !b.latch.failed() {
		b.item.Separated = true
	}
	return b
}

package render

import (
	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/model"
)

// composeDropdown wraps primary in a btn-group together with the menu. In
// split mode primary keeps its own action and a sibling toggle opens the
// menu; otherwise primary itself becomes the toggle.
func (c config) composeDropdown(button model.Button, primary *markup.Element, split bool) *markup.Element {
	classes := c.classes
	caret := markup.NewElement("span").AddClass(classes.Caret)

	var toggle *markup.Element
	if split {
		toggle = markup.NewElement("button").
			AddClass(classes.DropdownToggle, classes.Button, classes.state(button.State)).
			AddClass(classes.buttonSize(button.Size.Suffix())).
			SetAttr("type", "button")
	} else {
		toggle = primary
		toggle.AddClass(classes.DropdownToggle)
	}
	toggle.SetAttr("data-toggle", "dropdown").
		SetAttr("aria-haspopup", "true").
		SetAttr("aria-expanded", "false")

	group := markup.NewElement("div").AddClass(classes.Group)
	group.Append(primary)
	if split {
		label := markup.NewElement("span").AddClass(classes.ScreenReaderOnly).Append(markup.Text(c.toggleLabel))
		toggle.Append(caret, label)
		group.Append(toggle)
	} else {
		primary.Append(caret)
	}

	menu := markup.NewElement("ul").AddClass(classes.DropdownMenu)
	for idx, item := range button.Dropdown.Items {
		if item.Separated && idx > 0 {
			menu.Append(markup.NewElement("li").AddClass(classes.Divider).SetAttr("role", "separator"))
		}
		menu.Append(markup.NewElement("li").Append(c.dropdownLink(item)))
	}
	group.Append(menu)
	return group
}

func (c config) dropdownLink(item model.DropdownItem) *markup.Element {
	link := markup.NewElement("a")
	switch url, navigate := item.Action.NavigateURL(); {
	case item.Click != "":
		link.SetAttr("href", placeholderHref)
		link.SetAttr("onclick", invoke(item.Click, ""))
	case navigate:
		link.SetAttr("href", url)
	default:
		link.SetAttr("href", placeholderHref)
	}
	link.Append(markup.Text(item.Text))

	if ajax, ok := item.Action.AjaxConfig(); ok {
		c.applyAjax(link, ajax, "")
	}
	return link
}

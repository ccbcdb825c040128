package model

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseSize_AcceptsSuffixes(t *testing.T) {
	cases := map[string]Size{
		"":            SizeDefault,
		"Large":       SizeLarge,
		"lg":          SizeLarge,
		"sm":          SizeSmall,
		"extra-small": SizeExtraSmall,
		"XS":          SizeExtraSmall,
	}
	for raw, want := range cases {
		got, err := ParseSize(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %v, got %v", raw, want, got)
		}
	}

	if _, err := ParseSize("huge"); err == nil {
		t.Fatalf("expected error for unknown size")
	}
}

func TestContextualState_String(t *testing.T) {
	if got := StateDanger.String(); got != "danger" {
		t.Fatalf("want danger, got %q", got)
	}
	if got := StateDefault.String(); got != "default" {
		t.Fatalf("want default, got %q", got)
	}
}

func TestEnums_DecodeFromYAML(t *testing.T) {
	var payload struct {
		State ContextualState `yaml:"state"`
		Size  Size            `yaml:"size"`
		Mode  UpdateMode      `yaml:"mode"`
	}
	raw := []byte("state: Warning\nsize: xs\nmode: after\n")
	if err := yaml.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.State != StateWarning || payload.Size != SizeExtraSmall || payload.Mode != UpdateAfter {
		t.Fatalf("unexpected decode result: %+v", payload)
	}

	if err := yaml.Unmarshal([]byte("state: purple\n"), &payload); err == nil {
		t.Fatalf("expected error for unknown state")
	}
}

func TestButtonClone_IsDeep(t *testing.T) {
	original := NewButton()
	original.CSSClasses = []string{"a"}
	original.Action = AjaxAction(Ajax{URL: "/x"})
	original.Dropdown = &Dropdown{Items: []DropdownItem{{Text: "one"}}}

	clone := original.Clone()
	clone.CSSClasses[0] = "b"
	clone.Action.Ajax.URL = "/y"
	clone.Dropdown.Items[0].Text = "two"

	if original.CSSClasses[0] != "a" || original.Action.Ajax.URL != "/x" || original.Dropdown.Items[0].Text != "one" {
		t.Fatalf("clone aliased the original: %+v", original)
	}
	if original.ID == "" {
		t.Fatalf("expected generated id")
	}
	if NewButton().ID == original.ID {
		t.Fatalf("expected unique ids")
	}
}

package builder

import (
	"strings"

	"github.com/goliatone/go-buttongen/pkg/model"
)

// AjaxBuilder configures the AJAX behaviour of a button or dropdown item.
type AjaxBuilder struct {
	latch *latch
	ajax  *model.Ajax
}

func (b *AjaxBuilder) URL(url string) *AjaxBuilder {
	b.required("Ajax.URL", "url", url, &b.ajax.URL)
	return b
}

// UpdateID names the element whose content receives the response.
func (b *AjaxBuilder) UpdateID(id string) *AjaxBuilder {
	b.required("Ajax.UpdateID", "id", id, &b.ajax.UpdateTargetID)
	return b
}

// BusyIndicatorID names the element shown while the request is in flight.
func (b *AjaxBuilder) BusyIndicatorID(id string) *AjaxBuilder {
	b.required("Ajax.BusyIndicatorID", "id", id, &b.ajax.BusyIndicatorID)
	return b
}

func (b *AjaxBuilder) UpdateMode(mode model.UpdateMode) *AjaxBuilder {
	if !b.latch.failed() {
		b.ajax.Mode = mode
	}
	return b
}

func (b *AjaxBuilder) Start(fn string) *AjaxBuilder {
	b.optional(fn, &b.ajax.OnStart)
	return b
}

func (b *AjaxBuilder) Success(fn string) *AjaxBuilder {
	b.optional(fn, &b.ajax.OnSuccess)
	return b
}

func (b *AjaxBuilder) Error(fn string) *AjaxBuilder {
	b.optional(fn, &b.ajax.OnError)
	return b
}

func (b *AjaxBuilder) Complete(fn string) *AjaxBuilder {
	b.optional(fn, &b.ajax.OnComplete)
	return b
}

// DisableButton disables the triggering button while the request runs.
func (b *AjaxBuilder) DisableButton() *AjaxBuilder {
	if !b.latch.failed() {
		b.ajax.DisableButtonDuringCall = true
	}
	return b
}

// ClearUpdateArea empties the update target when the request starts.
func (b *AjaxBuilder) ClearUpdateArea(cond ...bool) *AjaxBuilder {
	if !b.latch.failed() {
		b.ajax.ClearUpdateAreaOnStart = enabled(cond)
	}
	return b
}

func (b *AjaxBuilder) required(op, arg, value string, dst *string) {
	if b.latch.failed() {
		return
	}
	if strings.TrimSpace(value) == "" {
		b.latch.missing(op, arg)
		return
	}
	*dst = value
}

func (b *AjaxBuilder) optional(value string, dst *string) {
	if !b.latch.failed() {
		*dst = value
	}
}

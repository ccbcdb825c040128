package render

import (
	"github.com/goliatone/go-buttongen/pkg/markup"
	"github.com/goliatone/go-buttongen/pkg/model"
)

// Attribute names understood by jquery-unobtrusive-ajax.
const (
	AttrAjax         = "data-ajax"
	AttrAjaxUpdate   = "data-ajax-update"
	AttrAjaxMode     = "data-ajax-mode"
	AttrAjaxURL      = "data-ajax-url"
	AttrAjaxLoading  = "data-ajax-loading"
	AttrAjaxBegin    = "data-ajax-begin"
	AttrAjaxSuccess  = "data-ajax-success"
	AttrAjaxFailure  = "data-ajax-failure"
	AttrAjaxComplete = "data-ajax-complete"
)

// applyAjax decorates el with the AJAX attributes. elementID is the id passed
// to callbacks; dropdown items pass "" and their callbacks take no id.
func (c config) applyAjax(el *markup.Element, ajax *model.Ajax, elementID string) {
	if ajax == nil {
		return
	}

	begin := invoke(ajax.OnStart, elementID)
	complete := invoke(ajax.OnComplete, elementID)
	if ajax.DisableButtonDuringCall && elementID != "" {
		begin += jqueryCall(elementID, "addClass('"+c.classes.Disabled+"')")
		complete += jqueryCall(elementID, "removeClass('"+c.classes.Disabled+"')")
	}

	el.SetAttr(AttrAjax, "true")
	el.SetAttrIf(AttrAjaxUpdate, selector(ajax.UpdateTargetID))
	el.SetAttr(AttrAjaxMode, ajax.Mode.String())
	el.SetAttrIf(AttrAjaxURL, ajax.URL)
	el.SetAttrIf(AttrAjaxLoading, selector(ajax.BusyIndicatorID))
	el.SetAttrIf(AttrAjaxBegin, begin)
	el.SetAttrIf(AttrAjaxSuccess, invokeWithData(ajax.OnSuccess, elementID))
	el.SetAttrIf(AttrAjaxFailure, invoke(ajax.OnError, elementID))
	el.SetAttrIf(AttrAjaxComplete, complete)

	if ajax.ClearUpdateAreaOnStart && ajax.UpdateTargetID != "" {
		handler, _ := el.RemoveAttr("onclick")
		el.SetAttr("onclick", handler+jqueryCall(ajax.UpdateTargetID, "html('')"))
	}
}

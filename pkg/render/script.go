package render

import "strings"

var jsStringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// invoke builds "fn('<id>');", or "fn();" when id is empty. An empty fn
// yields "".
func invoke(fn, id string) string {
	fn = strings.TrimSpace(fn)
	if fn == "" {
		return ""
	}
	if id == "" {
		return fn + "();"
	}
	return fn + "('" + jsStringEscaper.Replace(id) + "');"
}

// invokeWithData is invoke for success callbacks, which also receive the
// response payload.
func invokeWithData(fn, id string) string {
	fn = strings.TrimSpace(fn)
	if fn == "" {
		return ""
	}
	if id == "" {
		return fn + "(data);"
	}
	return fn + "('" + jsStringEscaper.Replace(id) + "', data);"
}

func jqueryCall(id, call string) string {
	return "$('#" + jsStringEscaper.Replace(id) + "')." + call + ";"
}

func selector(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	return "#" + id
}

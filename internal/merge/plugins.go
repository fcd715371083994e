package merge

import (
	"regexp"
	"strings"
)

var pluginsArrayRe = regexp.MustCompile(`plugins:\s*\[`)

// InjectPlugin imports the plugin and registers call as the first element
// of the first plugins array. An empty call defaults to Name().
func InjectPlugin(content string, imp Import, call string) string {
	if call == "" {
		call = imp.Call()
	}
	content = InjectImport(content, imp)
	out, _ := insertIntoPlugins(content, 0, len(content), call)
	return out
}

// insertIntoPlugins registers call in the first plugins array found in
// content[from:to]. The boolean reports whether an array was found.
func insertIntoPlugins(content string, from, to int, call string) (string, bool) {
	loc := pluginsArrayRe.FindStringIndex(content[from:to])
	if loc == nil {
		return content, false
	}
	open := from + loc[1] - 1
	end := matchClose(content, open)
	if end < 0 {
		return content, false
	}

	if containsCall(content[open+1:end], call) {
		return content, true
	}

	after := content[open+1:]
	switch {
	case strings.HasPrefix(strings.TrimLeft(after, " \t"), "]"):
		// plugins: []
		return insertAt(content, open+1, call), true
	case strings.HasPrefix(strings.TrimLeft(after, " \t"), "\n"):
		indent := lineIndent(content, open) + "  "
		return insertAt(content, open+1, "\n"+indent+call+","), true
	default:
		// plugins: [solid()]
		return insertAt(content, open+1, call+", "), true
	}
}

// containsCall reports whether call is already a top-level element of the
// array body, ignoring whitespace differences.
func containsCall(body, call string) bool {
	squash := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	want := squash(call)
	for _, el := range splitTopLevel(body) {
		if squash(el) == want {
			return true
		}
	}
	return false
}

// splitTopLevel splits an array body on commas that are not nested.
func splitTopLevel(body string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(', '[', '{':
			if end := matchClose(body, i); end > 0 {
				i = end
			}
		case '"', '\'', '`':
			q := body[i]
			for i++; i < len(body) && body[i] != q; i++ {
				if body[i] == '\\' {
					i++
				}
			}
		case ',':
			parts = append(parts, body[start:i])
			start = i + 1
		}
	}
	parts = append(parts, body[start:])
	return parts
}

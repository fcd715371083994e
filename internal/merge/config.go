package merge

import (
	"fmt"
	"regexp"
)

var presetRe = regexp.MustCompile(`preset:\s*["'][^"']*["']`)

// InjectConfigBlock adds `key: value,` as the first property of the
// defineConfig({ ... }) object.
func InjectConfigBlock(content, key, value string) string {
	loc := defineConfigRe.FindStringIndex(content)
	if loc == nil {
		return content
	}
	if hasKey(content, loc[1]-1, key) {
		return content
	}
	return insertAt(content, loc[1], fmt.Sprintf("\n  %s: %s,", key, value))
}

// InjectNestedPlugin registers a plugin inside the `vite: { plugins: [...] }`
// block of a SolidStart config. Three shapes are handled: no vite block,
// a vite block without plugins, and a vite block with a plugins array.
func InjectNestedPlugin(content string, imp Import, call string) string {
	if call == "" {
		call = imp.Call()
	}
	content = InjectImport(content, imp)

	if vite, ok := findBlock(content, "vite"); ok {
		if out, found := insertIntoPlugins(content, vite.Open, vite.Close, call); found {
			return out
		}
		indent := lineIndent(content, vite.Open) + "  "
		return insertAt(content, vite.Open+1, fmt.Sprintf("\n%splugins: [%s],", indent, call))
	}

	loc := defineConfigRe.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return insertAt(content, loc[1], fmt.Sprintf("\n  vite: {\n    plugins: [%s],\n  },", call))
}

// InjectNestedConfig adds `key: value,` inside the vite block, creating the
// block when it does not exist.
func InjectNestedConfig(content, key, value string) string {
	if vite, ok := findBlock(content, "vite"); ok {
		if hasKey(content, vite.Open, key) {
			return content
		}
		indent := lineIndent(content, vite.Open) + "  "
		return insertAt(content, vite.Open+1, fmt.Sprintf("\n%s%s: %s,", indent, key, value))
	}

	loc := defineConfigRe.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return insertAt(content, loc[1], fmt.Sprintf("\n  vite: {\n    %s: %s,\n  },", key, value))
}

// InjectServerPreset sets `server: { preset: "<preset>" }`. An existing
// preset value is replaced; otherwise the key (followed by extra, which must
// already be indented) is added to the server block, creating it if needed.
func InjectServerPreset(content, preset, extra string) string {
	entry := fmt.Sprintf("preset: %q,", preset)
	if extra != "" {
		entry += "\n" + extra
	}

	if server, ok := findBlock(content, "server"); ok {
		body := server.body(content)
		if loc := presetRe.FindStringIndex(body); loc != nil {
			start := server.Open + 1 + loc[0]
			end := server.Open + 1 + loc[1]
			return content[:start] + fmt.Sprintf("preset: %q", preset) + content[end:]
		}
		indent := lineIndent(content, server.Open) + "  "
		return insertAt(content, server.Open+1, "\n"+indent+entry)
	}

	loc := defineConfigRe.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return insertAt(content, loc[1], fmt.Sprintf("\n  server: {\n    %s\n  },", entry))
}

// hasKey reports whether the object opened at content[open] has key as a
// direct property.
func hasKey(content string, open int, key string) bool {
	end := matchClose(content, open)
	if end < 0 {
		return false
	}
	body := content[open+1 : end]
	re := regexp.MustCompile(`^\s*` + regexp.QuoteMeta(key) + `\s*:`)
	for _, prop := range splitTopLevel(body) {
		if re.MatchString(prop) {
			return true
		}
	}
	return false
}

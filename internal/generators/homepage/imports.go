package homepage

import (
	"regexp"
	"sort"
	"strings"
)

var (
	defaultNamedImportRe = regexp.MustCompile(`^import\s+([A-Za-z_$][\w$]*)\s*,\s*\{([^}]+)\}\s+from\s+["']([^"']+)["'];?$`)
	namedImportRe        = regexp.MustCompile(`^import\s+\{([^}]+)\}\s+from\s+["']([^"']+)["'];?$`)
	defaultImportRe      = regexp.MustCompile(`^import\s+([A-Za-z_$][\w$]*)\s+from\s+["']([^"']+)["'];?$`)
)

type importGroup struct {
	module string
	def    string
	named  map[string]bool
}

func (g *importGroup) line() string {
	names := make([]string, 0, len(g.named))
	for n := range g.named {
		names = append(names, n)
	}
	sort.Strings(names)

	from := ` from "` + g.module + `";`
	switch {
	case g.def != "" && len(names) > 0:
		return "import " + g.def + ", { " + strings.Join(names, ", ") + " }" + from
	case g.def != "":
		return "import " + g.def + from
	case len(names) > 0:
		return "import { " + strings.Join(names, ", ") + " }" + from
	}
	return ""
}

// MergeImports combines import lines per module in first-seen order,
// unioning and sorting named bindings. A line whose default binding
// conflicts with an earlier one, and any line that is not a recognised
// import, is kept verbatim after the merged lines.
func MergeImports(lines []string) []string {
	var (
		groups      []*importGroup
		byModule    = map[string]*importGroup{}
		passthrough []string
	)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		var def, names, module string
		if m := defaultNamedImportRe.FindStringSubmatch(trimmed); m != nil {
			def, names, module = m[1], m[2], m[3]
		} else if m := namedImportRe.FindStringSubmatch(trimmed); m != nil {
			names, module = m[1], m[2]
		} else if m := defaultImportRe.FindStringSubmatch(trimmed); m != nil {
			def, module = m[1], m[2]
		} else {
			passthrough = append(passthrough, line)
			continue
		}

		g, ok := byModule[module]
		if ok && def != "" && g.def != "" && g.def != def {
			passthrough = append(passthrough, line)
			continue
		}
		if !ok {
			g = &importGroup{module: module, named: map[string]bool{}}
			byModule[module] = g
			groups = append(groups, g)
		}
		if g.def == "" {
			g.def = def
		}
		for _, n := range strings.Split(names, ",") {
			if n = strings.TrimSpace(n); n != "" {
				g.named[n] = true
			}
		}
	}

	out := make([]string, 0, len(groups)+len(passthrough))
	for _, g := range groups {
		if l := g.line(); l != "" {
			out = append(out, l)
		}
	}
	return append(out, passthrough...)
}

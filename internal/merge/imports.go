package merge

import (
	"fmt"
	"regexp"
	"strings"
)

var importLineRe = regexp.MustCompile(`(?m)^import .+ from .+;?[ \t]*$`)

// Import describes one binding to import from a module.
type Import struct {
	Name    string
	From    string
	Default bool
}

// Statement renders the import line.
func (i Import) Statement() string {
	if i.Default {
		return fmt.Sprintf("import %s from %q;", i.Name, i.From)
	}
	return fmt.Sprintf("import { %s } from %q;", i.Name, i.From)
}

// Call is the default registration expression, Name().
func (i Import) Call() string {
	return i.Name + "()"
}

// InjectImport adds the import after the last import line, or at the top
// of the file when there is none. It is skipped when the module already
// imports the same binding.
func InjectImport(content string, imp Import) string {
	if hasImport(content, imp) {
		return content
	}
	return insertImport(content, imp.Statement())
}

// InsertImportLine adds a literal import line unless that exact line is present.
func InsertImportLine(content, line string) string {
	for _, existing := range strings.Split(content, "\n") {
		if strings.TrimSpace(existing) == strings.TrimSpace(line) {
			return content
		}
	}
	return insertImport(content, line)
}

func insertImport(content, line string) string {
	matches := importLineRe.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return line + "\n" + content
	}
	end := matches[len(matches)-1][1]
	return insertAt(content, end, "\n"+line)
}

func hasImport(content string, imp Import) bool {
	nameRe := regexp.MustCompile(`\b` + regexp.QuoteMeta(imp.Name) + `\b`)
	for _, line := range importLineRe.FindAllString(content, -1) {
		if !strings.Contains(line, `"`+imp.From+`"`) && !strings.Contains(line, `'`+imp.From+`'`) {
			continue
		}
		clause := line[:strings.LastIndex(line, " from ")]
		if nameRe.MatchString(clause) {
			return true
		}
	}
	return false
}

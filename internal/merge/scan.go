package merge

import (
	"regexp"
	"strings"
)

var defineConfigRe = regexp.MustCompile(`defineConfig\(\{`)

// matchClose returns the index of the bracket closing the one at open,
// or -1. Quoted strings are skipped.
func matchClose(content string, open int) int {
	var closer byte
	switch content[open] {
	case '{':
		closer = '}'
	case '[':
		closer = ']'
	case '(':
		closer = ')'
	default:
		return -1
	}
	opener := content[open]

	depth := 0
	var quote byte
	for i := open; i < len(content); i++ {
		c := content[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// block is a "key: {" object literal located in content.
// Open is the index of '{' and Close the index of the matching '}'.
type block struct {
	Open  int
	Close int
}

func (b block) body(content string) string {
	return content[b.Open+1 : b.Close]
}

// findBlock locates the first `key: {` object literal.
func findBlock(content, key string) (block, bool) {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `:\s*\{`)
	loc := re.FindStringIndex(content)
	if loc == nil {
		return block{}, false
	}
	open := loc[1] - 1
	end := matchClose(content, open)
	if end < 0 {
		return block{}, false
	}
	return block{Open: open, Close: end}, true
}

// lineIndent returns the leading whitespace of the line containing pos.
func lineIndent(content string, pos int) string {
	start := strings.LastIndexByte(content[:pos], '\n') + 1
	end := start
	for end < len(content) && (content[end] == ' ' || content[end] == '\t') {
		end++
	}
	return content[start:end]
}

func insertAt(content string, pos int, text string) string {
	return content[:pos] + text + content[pos:]
}

package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"text/template"
	"unicode"

	"github.com/gosimple/slug"
)

// Renderer handles template parsing and rendering with caching
type Renderer struct {
	funcMap template.FuncMap
	left    string
	right   string
	cache   map[string]*template.Template
	mu      sync.RWMutex // Protect cache for concurrent access
}

// NewRenderer creates a renderer with built-in helper functions
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// NewRendererWithDelims creates a renderer using custom action delimiters.
// JSX sources use "{{" for inline objects, so their templates need another pair.
func NewRendererWithDelims(left, right string) *Renderer {
	r := NewRenderer()
	r.left = left
	r.right = right
	return r
}

// RenderString renders a template from a string
// The name is used for caching and error messages
func (r *Renderer) RenderString(name, templateStr string, data any) ([]byte, error) {
	tmpl, err := r.lookup(r.getCacheKey("string", name), func() (string, error) {
		return templateStr, nil
	}, name)
	if err != nil {
		return nil, err
	}
	return r.executeTemplate(tmpl, data)
}

// RenderFS renders a template from a filesystem (usually an embed.FS)
func (r *Renderer) RenderFS(fsys fs.FS, path string, data any) ([]byte, error) {
	tmpl, err := r.lookup(r.getCacheKey("fs", path), func() (string, error) {
		b, err := fs.ReadFile(fsys, path)
		if err != nil {
			return "", fmt.Errorf("failed to read template from fs '%s': %w", path, err)
		}
		return string(b), nil
	}, path)
	if err != nil {
		return nil, err
	}
	return r.executeTemplate(tmpl, data)
}

// ClearCache clears the template cache (useful for testing)
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

func (r *Renderer) lookup(cacheKey string, source func() (string, error), name string) (*template.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.cache[cacheKey]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	text, err := source()
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Delims(r.left, r.right).Funcs(r.funcMap).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
	}

	r.mu.Lock()
	r.cache[cacheKey] = tmpl
	r.mu.Unlock()

	return tmpl, nil
}

// executeTemplate executes a parsed template with the given data
func (r *Renderer) executeTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

// getCacheKey generates a cache key for a template
func (r *Renderer) getCacheKey(typ, identifier string) string {
	return fmt.Sprintf("%s:%s", typ, identifier)
}

// defaultFuncMap returns the default template function map
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"pascalCase": PascalCase, // my-app → MyApp
		"camelCase":  CamelCase,  // my-app → myApp
		"kebabCase":  slug.Make,  // My App → my-app

		"quote":     Quote, // test → "test"
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"trim":      strings.TrimSpace,
		"join":      strings.Join,
		"contains":  strings.Contains,
		"hasPrefix": strings.HasPrefix,
		"replace":   strings.ReplaceAll,

		"default": Default,
	}
}

// words splits an identifier on '-', '_', spaces and '.'
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
}

// PascalCase converts kebab-case, snake_case or camelCase to PascalCase
// Examples: my-app → MyApp, user_name → UserName, userName → UserName
func PascalCase(s string) string {
	parts := words(s)
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}

// CamelCase converts kebab-case, snake_case or PascalCase to camelCase
// Examples: my-app → myApp, UserName → userName
func CamelCase(s string) string {
	p := PascalCase(s)
	if p == "" {
		return ""
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// Quote wraps a string in double quotes
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// Default returns the default value if the given value is nil or empty
func Default(defaultVal, val any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	switch v := val.(type) {
	case []any:
		if len(v) == 0 {
			return defaultVal
		}
	case map[string]any:
		if len(v) == 0 {
			return defaultVal
		}
	}
	return val
}

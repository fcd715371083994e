package homepage

import (
	"regexp"
	"sort"
	"strings"

	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/merge"
)

var routerOpenRe = regexp.MustCompile(`(^|\n)([ \t]*)<Router\b`)

// Provider is a context component wrapping the whole router.
type Provider struct {
	Import string
	Open   string
	Close  string
	// Lower priorities wrap outside higher ones.
	Priority int
}

// BuildProviders returns the providers cfg needs, outermost first.
func BuildProviders(cfg *config.ProjectConfig) []Provider {
	var providers []Provider
	if cfg.API == config.APITRPC {
		providers = append(providers, Provider{
			Import:   `import { QueryProvider } from "./lib/trpc/QueryProvider";`,
			Open:     "<QueryProvider>",
			Close:    "</QueryProvider>",
			Priority: 10,
		})
	}
	if cfg.Auth == config.AuthClerk {
		providers = append(providers, Provider{
			Import:   `import { ClerkWrapper } from "./lib/clerk";`,
			Open:     "<ClerkWrapper>",
			Close:    "</ClerkWrapper>",
			Priority: 5,
		})
	}

	sort.SliceStable(providers, func(i, j int) bool {
		return providers[i].Priority < providers[j].Priority
	})
	return providers
}

// WrapWithProviders imports each provider and wraps the <Router> element,
// opening tags in the given order and closing tags in reverse. Content
// already wrapped by any of the providers is only given missing imports.
func WrapWithProviders(content string, providers []Provider) string {
	for _, p := range providers {
		content = merge.InsertImportLine(content, p.Import)
	}

	for _, p := range providers {
		if strings.Contains(content, p.Open) {
			return content
		}
	}

	loc := routerOpenRe.FindStringSubmatchIndex(content)
	if loc == nil {
		return content
	}
	indent := content[loc[4]:loc[5]]

	opening := make([]string, len(providers))
	closing := make([]string, len(providers))
	for i, p := range providers {
		opening[i] = indent + p.Open
		closing[len(providers)-1-i] = indent + p.Close
	}

	content = content[:loc[4]] + strings.Join(opening, "\n") + "\n" + content[loc[4]:]

	end := strings.Index(content, "</Router>")
	if end < 0 {
		return content
	}
	end += len("</Router>")
	return content[:end] + "\n" + strings.Join(closing, "\n") + content[end:]
}

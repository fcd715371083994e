package homepage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/templates"
)

// Section identifiers.
const (
	SectionAPIDatabase = "api-db"
	SectionAPI         = "api"
	SectionAuth        = "auth"
)

// SectionOrder is the display order of sections on the homepage. It is
// unrelated to the order generators run in.
var SectionOrder = []string{SectionAPIDatabase, SectionAPI, SectionAuth}

// Section is a feature demonstration shown on the homepage.
type Section struct {
	ID      string
	Imports []string
	// Markup is the card placed inside the page container.
	Markup string
	// Component is optional source of a helper component used by Markup.
	Component string
}

// BuildSections returns the sections for cfg in SectionOrder. A combined
// API and database section replaces the API-only one.
func BuildSections(cfg *config.ProjectConfig) []Section {
	var sections []Section

	if s, ok := apiDatabaseSection(cfg); ok {
		sections = append(sections, s)
	} else if s, ok := apiSection(cfg); ok {
		sections = append(sections, s)
	}
	if s, ok := authSection(cfg); ok {
		sections = append(sections, s)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return orderOf(sections[i].ID) < orderOf(sections[j].ID)
	})
	return sections
}

func orderOf(id string) int {
	for i, s := range SectionOrder {
		if s == id {
			return i
		}
	}
	return len(SectionOrder)
}

func apiDatabaseSection(cfg *config.ProjectConfig) (Section, bool) {
	if cfg.Database == config.DatabaseNone {
		return Section{}, false
	}
	switch cfg.API {
	case config.APITRPC:
		return Section{
			ID: SectionAPIDatabase,
			Imports: []string{
				`import { Show, For } from "solid-js";`,
				`import { useUsers } from "../lib/trpc/hooks";`,
			},
			Component: component("users-query.tsx"),
			Markup:    card("Database", "<UsersList />"),
		}, true
	case config.APIHono:
		return Section{
			ID:        SectionAPIDatabase,
			Imports:   []string{`import { createResource, Show, For } from "solid-js";`},
			Component: component("users-fetch.tsx"),
			Markup:    card("Database", "<UsersList />"),
		}, true
	}
	return Section{}, false
}

func apiSection(cfg *config.ProjectConfig) (Section, bool) {
	switch cfg.API {
	case config.APITRPC:
		return Section{
			ID: SectionAPI,
			Imports: []string{
				`import { Show } from "solid-js";`,
				`import { useHello } from "../lib/trpc/hooks";`,
			},
			Component: component("hello-query.tsx"),
			Markup:    card("API", "<HelloMessage />"),
		}, true
	case config.APIHono:
		return Section{
			ID:        SectionAPI,
			Imports:   []string{`import { createResource, Show } from "solid-js";`},
			Component: component("hello-fetch.tsx"),
			Markup:    card("API", "<ApiMessage />"),
		}, true
	}
	return Section{}, false
}

func authSection(cfg *config.ProjectConfig) (Section, bool) {
	switch cfg.Auth {
	case config.AuthBetterAuth:
		return Section{
			ID: SectionAuth,
			Imports: []string{
				`import { Show } from "solid-js";`,
				`import { useSession, signOut } from "../lib/auth/client";`,
			},
			Component: component("auth-status.tsx"),
			Markup:    card("Auth", "<AuthStatus />"),
		}, true
	case config.AuthClerk:
		return Section{
			ID:      SectionAuth,
			Imports: []string{`import { SignedIn, SignedOut, SignInButton, UserButton } from "clerk-solidjs";`},
			Markup:  component("clerk-card.tsx"),
		}, true
	}
	return Section{}, false
}

func card(title, body string) string {
	return fmt.Sprintf("      <section class=\"card\">\n        <h2>%s</h2>\n        %s\n      </section>", title, body)
}

func component(name string) string {
	return strings.TrimRight(templates.MustFeature("homepage/"+name), "\n")
}

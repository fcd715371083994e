// Package compat decides which option values a framework cannot support.
package compat

import (
	"fmt"
	"strings"

	"github.com/simonhull/solidified/internal/config"
)

const (
	clientOnlyAPIReason      = "Requires server routes; Vite template is client-only."
	clientOnlyDatabaseReason = "Requires server runtime; Vite template is client-only."
	clientOnlyAuthReason     = "Requires server routes; Vite template is client-only."
)

// CheckedAxes are the axes gated on server capability, in issue order.
var CheckedAxes = []config.Axis{config.AxisAPI, config.AxisDatabase, config.AxisAuth}

// Issue is one selected value the framework cannot support.
type Issue struct {
	Field  config.Axis
	Value  string
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s=%s (%s)", i.Field, i.Value, i.Reason)
}

// IncompatibleError aggregates every Issue of a configuration.
type IncompatibleError struct {
	Issues []Issue
}

func (e *IncompatibleError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return "Incompatible selections: " + strings.Join(parts, ", ")
}

// DisabledOptions maps each unavailable value of axis to the reason it is unavailable.
// The map is empty for server-capable frameworks and for axes that are not gated.
func DisabledOptions(framework config.Framework, axis config.Axis) map[string]string {
	if framework.ServerCapable() {
		return map[string]string{}
	}

	switch axis {
	case config.AxisAPI:
		return map[string]string{
			string(config.APITRPC): clientOnlyAPIReason,
			string(config.APIHono): clientOnlyAPIReason,
		}
	case config.AxisDatabase:
		return map[string]string{
			string(config.DatabaseDrizzle): clientOnlyDatabaseReason,
			string(config.DatabasePrisma):  clientOnlyDatabaseReason,
		}
	case config.AxisAuth:
		return map[string]string{
			string(config.AuthBetterAuth): clientOnlyAuthReason,
		}
	}
	return map[string]string{}
}

// Issues re-checks a full configuration, one entry per offending axis.
func Issues(cfg *config.ProjectConfig) []Issue {
	var issues []Issue
	for _, axis := range CheckedAxes {
		value := cfg.Get(axis)
		if value == config.None {
			continue
		}
		if reason, ok := DisabledOptions(cfg.Framework, axis)[value]; ok {
			issues = append(issues, Issue{Field: axis, Value: value, Reason: reason})
		}
	}
	return issues
}

// Assert returns an *IncompatibleError when Issues is non-empty.
func Assert(cfg *config.ProjectConfig) error {
	issues := Issues(cfg)
	if len(issues) == 0 {
		return nil
	}
	return &IncompatibleError{Issues: issues}
}

package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
	writer      io.Writer = os.Stdout
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// IsVerbose reports whether verbose output is enabled.
func IsVerbose() bool {
	return verboseMode
}

// SetWriter redirects all output to w. A nil writer restores stdout.
func SetWriter(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	writer = w
}

// Writer returns the destination currently used for output.
func Writer() io.Writer {
	return writer
}

// Success prints a success message with ✨ emoji and green color.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Created project: my-app")
func Success(msg string) {
	fmt.Fprintln(writer, successStyle.Render("✨ "+msg))
}

// Error prints an error message with ❌ emoji and red color.
// Use this for failures that need user attention.
func Error(msg string) {
	fmt.Fprintln(writer, errorStyle.Render("❌ "+msg))
}

// Warn prints a warning with ⚠️ emoji and yellow color.
func Warn(msg string) {
	fmt.Fprintln(writer, warnStyle.Render("⚠️  "+msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
//
// Example:
//
//	output.Info("Next steps:")
func Info(msg string) {
	fmt.Fprintln(writer, infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("cd my-app")
//	output.Step("bun install")
func Step(msg string) {
	fmt.Fprintln(writer, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
//
// Example:
//
//	output.Verbose("Applying tailwind...")
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(writer, stepStyle.Render("🔍 "+msg))
	}
}

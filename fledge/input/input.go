// Package input asks simple yes/no questions on the terminal.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	in  io.Reader = os.Stdin
	out io.Writer = os.Stdout
)

// SetIO replaces the reader and writer used for prompts. Nil restores
// stdin and stdout.
func SetIO(r io.Reader, w io.Writer) {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	in, out = r, w
}

// Confirm asks a yes/no question. Enter or a read error returns defaultYes.
//
//	if input.Confirm("Directory my-app is not empty. Continue?", false) {
//	    // y or yes
//	}
//	// Displays: Directory my-app is not empty. Continue? [y/N]: _
func Confirm(message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprint(out, promptStyle.Render(message)+" "+hintStyle.Render(hint)+": ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return defaultYes
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	}
	return false
}

// Package input provides the small terminal prompts the CLI needs outside
// the option wizard.
//
// Prompts read from stdin and write to stdout unless SetIO swaps them,
// which is how tests feed answers:
//
//	input.SetIO(strings.NewReader("y\n"), io.Discard)
//	defer input.SetIO(nil, nil)
//
// Non-interactive runs (--yes, no TTY) should not prompt at all.
package input

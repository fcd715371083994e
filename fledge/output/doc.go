// Package output provides styled terminal output for CLI tools.
//
// # Usage
//
//	import "github.com/simonhull/solidified/fledge/output"
//
//	output.Success("Project created")
//	output.Info("Next steps:")
//	output.Step("cd my-app")
//	output.Error("Something went wrong")
//
// # Verbose Mode
//
// Enable verbose output for debugging:
//
//	output.SetVerbose(true)
//	output.Verbose("This only prints in verbose mode")
//
// # Styling
//
//   - Success: ✨ green bold
//   - Error: ❌ red bold
//   - Warn: ⚠️ yellow
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
//
// Output goes to stdout unless redirected with SetWriter, which tests use
// to capture messages.
package output

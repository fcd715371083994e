package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureOutput redirects the package writer during f
func captureOutput(t *testing.T, f func()) string {
	t.Helper()

	var buf bytes.Buffer
	SetWriter(&buf)
	t.Cleanup(func() { SetWriter(nil) })

	f()
	return buf.String()
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string)
		emoji string
	}{
		{"success", Success, "✨"},
		{"error", Error, "❌"},
		{"warn", Warn, "⚠️"},
		{"info", Info, "ℹ️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(t, func() { tt.fn("hello there") })
			assert.Contains(t, out, tt.emoji)
			assert.Contains(t, out, "hello there")
		})
	}
}

func TestStep(t *testing.T) {
	out := captureOutput(t, func() { Step("cd my-app") })
	assert.Contains(t, out, "   cd my-app")
}

func TestVerbose(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	SetVerbose(false)
	out := captureOutput(t, func() { Verbose("hidden") })
	assert.Empty(t, out)

	SetVerbose(true)
	assert.True(t, IsVerbose())
	out = captureOutput(t, func() { Verbose("shown") })
	assert.Contains(t, out, "🔍")
	assert.Contains(t, out, "shown")
}

package input

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes uppercase", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"anything else", "maybe\n", true, false},
		{"enter takes default yes", "\n", true, true},
		{"enter takes default no", "\n", false, false},
		{"eof takes default", "", true, true},
		{"answer without newline", "y", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetIO(strings.NewReader(tt.answer), &buf)
			t.Cleanup(func() { SetIO(nil, nil) })

			assert.Equal(t, tt.want, Confirm("Continue?", tt.defaultYes))
			assert.Contains(t, buf.String(), "Continue?")
		})
	}
}

func TestConfirm_Hint(t *testing.T) {
	var buf bytes.Buffer
	SetIO(strings.NewReader("\n"), &buf)
	t.Cleanup(func() { SetIO(nil, nil) })

	Confirm("Overwrite?", true)
	assert.Contains(t, buf.String(), "[Y/n]")

	buf.Reset()
	SetIO(strings.NewReader("\n"), &buf)
	Confirm("Overwrite?", false)
	assert.Contains(t, buf.String(), "[y/N]")
}

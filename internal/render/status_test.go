package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityOK, "ok"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityInfo, "info"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sev.String())
		})
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name       string
		sev        Severity
		wantSymbol string
		wantColor  string
	}{
		{"ok", SeverityOK, "✓", ansiSuccess},
		{"warning", SeverityWarning, "⚠", ansiWarning},
		{"error", SeverityError, "✗", ansiError},
		{"info", SeverityInfo, "ℹ", "38;2;52;152;219"}, // #3498DB
	}

	r := testRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.StatusLine("git found in PATH", tt.sev)
			plain := stripANSI(out)

			assert.True(t, strings.HasPrefix(plain, tt.wantSymbol+" "), "got %q", plain)
			assert.Contains(t, plain, "git found in PATH")
			assert.Contains(t, out, tt.wantColor)
		})
	}
}

package output

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestColorSchemes(t *testing.T) {
	for name, scheme := range map[string]*ColorScheme{
		"DefaultColorScheme": DefaultColorScheme(),
		"NoColorScheme":      NoColorScheme(),
	} {
		for i, c := range scheme.all() {
			if c == nil {
				t.Errorf("%s color %d should not be nil", name, i)
			}
		}
	}
}

func TestNoColorSchemeIsPlain(t *testing.T) {
	// Force colors on globally so only DisableColor can turn them off
	original := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = original }()

	scheme := NoColorScheme()
	for i, c := range scheme.all() {
		if got := c.Sprint("P50"); got != "P50" {
			t.Errorf("color %d: Sprint() = %q, want plain text", i, got)
		}
	}

	colored := DefaultColorScheme().Title.Sprint("BENCHMARK")
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("DefaultColorScheme Title should emit ANSI codes, got %q", colored)
	}
}

func TestSchemeFor(t *testing.T) {
	original := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = original }()

	if got := SchemeFor(true).Error.Sprint("x"); got != "x" {
		t.Errorf("SchemeFor(true) should disable colors, got %q", got)
	}
	if got := SchemeFor(false).Error.Sprint("x"); got == "x" {
		t.Error("SchemeFor(false) should keep colors")
	}
}

func TestIcons(t *testing.T) {
	tests := []struct {
		name     string
		iconFunc func(bool) string
		expected string
	}{
		{"SuccessIcon", SuccessIcon, "✓"},
		{"ErrorIcon", ErrorIcon, "✗"},
		{"InfoIcon", InfoIcon, "ℹ"},
		{"WarningIcon", WarningIcon, "⚠"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if icon := tt.iconFunc(true); icon != tt.expected {
				t.Errorf("%s(true) = %q, want %q", tt.name, icon, tt.expected)
			}

			if icon := tt.iconFunc(false); !strings.Contains(icon, tt.expected) {
				t.Errorf("%s(false) = %q, should contain %q", tt.name, icon, tt.expected)
			}
		})
	}
}

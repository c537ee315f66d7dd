package ui

import "testing"

func TestNormalizeAccentColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"hex", "#a78bfa", "#A78BFA", true},
		{"hex uppercase", "#FF00AA", "#FF00AA", true},
		{"ansi code", "212", "212", true},
		{"ansi zero", "0", "0", true},
		{"ansi out of range", "256", "", false},
		{"negative", "-1", "", false},
		{"short hex", "#fff", "", false},
		{"not a color", "purple-ish", "", false},
		{"empty", "", "", false},
		{"whitespace", "  141  ", "141", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeAccentColor(tt.input)
			if ok != tt.ok {
				t.Fatalf("normalizeAccentColor(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("normalizeAccentColor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfigureThemeIgnoresInvalid(t *testing.T) {
	before := AccentColor()
	ConfigureTheme("not-a-color")
	if got := AccentColor(); got != before {
		t.Errorf("accent changed to %q after invalid input", got)
	}

	ConfigureTheme("#123456")
	if got := AccentColor(); got != "#123456" {
		t.Errorf("accent = %q, want #123456", got)
	}

	// Restore for other tests.
	ConfigureTheme(before)
}

package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only spaces", "    ", ""},
		{"trims ends", "  Asha Rao  ", "Asha Rao"},
		{"collapses inner runs", "Asha    Rao", "Asha Rao"},
		{"tabs and newlines", "Asha\t\nRao", "Asha Rao"},
		{"already clean", "Asha Rao", "Asha Rao"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCity(t *testing.T) {
	if got := NormalizeCity(" Bengaluru "); got != "Bengaluru" {
		t.Errorf("NormalizeCity() = %q, want %q", got, "Bengaluru")
	}
	// case is preserved, frequency counting is exact-match
	if got := NormalizeCity("bengaluru"); got != "bengaluru" {
		t.Errorf("NormalizeCity() = %q, want %q", got, "bengaluru")
	}
}

package sanitizer

import "testing"

func TestMobileValid(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		want   bool
	}{
		{"valid subscriber number", "9876543210", true},
		{"valid 8-series", "8123456789", true},
		{"landline style leading 1", "1234567890", false},
		{"too short", "98765", false},
		{"too long", "98765432101", false},
		{"empty", "", false},
		{"all zeros", "0000000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MobileValid(tt.mobile); got != tt.want {
				t.Errorf("MobileValid(%q) = %v, want %v", tt.mobile, got, tt.want)
			}
		})
	}
}

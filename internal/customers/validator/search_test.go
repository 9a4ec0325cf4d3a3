package validator

import (
	"strings"
	"testing"

	"github.com/reachronakofficial756/excelSort/pkg/logger"
	"github.com/reachronakofficial756/excelSort/pkg/model"
)

func TestSearchValidator(t *testing.T) {
	v := NewSearchValidator(logger.Discard())

	tests := []struct {
		name    string
		mobile  string
		wantErr string
	}{
		{"plain number", "9876543210", ""},
		{"formatted number", "+91 98765-43210", ""},
		{"numeric export artifact", "9876543210.0", ""},
		{"single digit", "7", ""},
		{"empty", "", "Mobile is required"},
		{"too long", strings.Repeat("9", 65), "at most 64 characters"},
		{"no digits", "call me maybe", "at least one digit"},
		{"only punctuation", "+-()", "at least one digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&model.SearchRequest{Mobile: tt.mobile})
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate(%q) = %v, want nil", tt.mobile, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate(%q) = nil, want error containing %q", tt.mobile, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate(%q) = %q, want message containing %q", tt.mobile, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "Mobile", Message: "Mobile is required"},
	}
	got := errs.Error()
	if !strings.Contains(got, "1 error(s)") || !strings.Contains(got, "Mobile is required") {
		t.Errorf("Error() = %q", got)
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should render as empty string")
	}
}

package validation_test

import (
	"strings"
	"testing"

	"github.com/stmtkit/stmtkit/pkg/validation"
)

func TestErrors_Err(t *testing.T) {
	var errs validation.Errors

	if errs.Err() != nil {
		t.Errorf("Err() on empty = %v, want nil", errs.Err())
	}

	errs.Add("filename", "is required")

	if errs.Err() == nil {
		t.Error("Err() after Add = nil, want error")
	}
}

func TestErrors_Error(t *testing.T) {
	var errs validation.Errors
	errs.Add("filename", "is required")
	errs.Add("file_size", "must be positive")

	msg := errs.Error()

	if !strings.Contains(msg, "filename: is required") {
		t.Errorf("Error() = %q, missing filename failure", msg)
	}
	if !strings.Contains(msg, "file_size: must be positive") {
		t.Errorf("Error() = %q, missing file_size failure", msg)
	}
}

func TestErrors_MaxLength(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		max     int
		wantErr bool
	}{
		{"under limit", "abc", 5, false},
		{"at limit", "abcde", 5, false},
		{"over limit", "abcdef", 5, true},
		{"multibyte at limit", strings.Repeat("é", 5), 5, false},
		{"multibyte over limit", strings.Repeat("é", 6), 5, true},
		{"counts characters not bytes", strings.Repeat("日", 4), 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errs validation.Errors
			errs.MaxLength("field", tt.value, tt.max)

			if got := len(errs) > 0; got != tt.wantErr {
				t.Errorf("MaxLength(%q, %d) produced error = %v, want %v", tt.value, tt.max, got, tt.wantErr)
			}
		})
	}
}

func TestErrors_Required(t *testing.T) {
	var errs validation.Errors

	errs.Required("present", "value")
	if len(errs) != 0 {
		t.Errorf("Required() on non-empty value produced %d errors, want 0", len(errs))
	}

	errs.Required("missing", "")
	if len(errs) != 1 {
		t.Fatalf("Required() on empty value produced %d errors, want 1", len(errs))
	}
	if errs[0].Field != "missing" {
		t.Errorf("FieldError.Field = %q, want missing", errs[0].Field)
	}
}

package errors

import (
	"strings"
	"testing"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid default prefix", "FDO Impro", false},
		{"valid with dash", "Set - Evening", false},
		{"valid unicode", "Läpimeno", false},

		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too long", strings.Repeat("a", 200), true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"traversal", "..", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel("folder prefix", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateLabel(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"mp3", false},
		{"flac", false},
		{"m4a", false},
		{"", true},
		{".mp3", true},
		{"mp 3", true},
		{"verylongextension", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateExtension(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtension(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCount(t *testing.T) {
	if err := ValidateCount(0); err != nil {
		t.Errorf("ValidateCount(0) error = %v, want nil", err)
	}
	if err := ValidateCount(99); err != nil {
		t.Errorf("ValidateCount(99) error = %v, want nil", err)
	}
	err := ValidateCount(-1)
	if !Is(err, ErrCodeInvalidInput) {
		t.Errorf("ValidateCount(-1) = %v, want %v", err, ErrCodeInvalidInput)
	}
}

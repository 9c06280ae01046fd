package errors

import (
	"strings"
	"unicode"
)

// maxLabelLength bounds folder prefixes and track labels, which become part
// of every generated file name.
const maxLabelLength = 128

// ValidateLabel validates a naming label (folder prefix or track label) used
// to build output names. Labels end up inside file names, so they must be a
// single path component.
//
// Validation rules:
//   - No empty or whitespace-only labels
//   - Maximum length of 128 characters
//   - No control characters or null bytes
//   - No path separators or traversal sequences
func ValidateLabel(kind, label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidConfig, "%s cannot be empty", kind)
	}

	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidConfig, "%s too long (max %d characters)", kind, maxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "%s contains invalid control characters", kind)
		}
	}

	if strings.ContainsAny(label, `/\`) {
		return New(ErrCodeInvalidConfig, "%s cannot contain path separators", kind)
	}

	if strings.Contains(label, "..") {
		return New(ErrCodeInvalidConfig, "%s cannot contain path traversal sequences (..)", kind)
	}

	return nil
}

// ValidateExtension validates a file extension from the audio extension list.
// Extensions are given without the leading dot and must be short alphanumerics.
func ValidateExtension(ext string) error {
	if ext == "" {
		return New(ErrCodeInvalidConfig, "extension cannot be empty")
	}
	if strings.HasPrefix(ext, ".") {
		return New(ErrCodeInvalidConfig, "extension %q must not start with a dot", ext)
	}
	if len(ext) > 10 {
		return New(ErrCodeInvalidConfig, "extension %q too long (max 10 characters)", ext)
	}
	for _, r := range ext {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return New(ErrCodeInvalidConfig, "extension %q contains invalid characters", ext)
		}
	}
	return nil
}

// ValidateCount validates a requested number of orderings.
func ValidateCount(count int) error {
	if count < 0 {
		return New(ErrCodeInvalidInput, "count must be a non-negative integer, got %d", count)
	}
	return nil
}

package errors

import (
	"strings"
	"unicode"
)

// NotBlank returns a validation error naming field when value is empty or
// only whitespace.
func NotBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeValidation, "%s is required", field)
	}
	return nil
}

// ValidateText rejects values that cannot be written as XML text, i.e.
// values containing control characters other than tab, newline and
// carriage return.
func ValidateText(field, value string) error {
	for _, r := range value {
		if unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r' {
			return New(ErrCodeValidation, "%s contains invalid control characters", field)
		}
	}
	return nil
}

// ValidateModuleName validates a module qualifier for safety.
// A blank name is valid and denotes the root (or only) module.
//
// Validation rules:
//   - No control characters or null bytes
//   - No absolute names (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateModuleName(name string) error {
	if name == "" {
		return nil
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeValidation, "module name contains invalid control characters")
		}
	}

	if strings.HasPrefix(name, "/") {
		return New(ErrCodeValidation, "module name must be relative: %q", name)
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeValidation, "module name cannot contain path traversal sequences (..)")
	}

	if strings.Contains(name, "\\") {
		return New(ErrCodeValidation, "module name cannot contain backslashes")
	}

	return nil
}

// ValidatePath validates a file path inside a project for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

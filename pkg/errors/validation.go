package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxNameLength bounds phase names and filename prefixes.
const maxNameLength = 64

// ValidateName validates a catalog name that ends up inside an output filename.
//
// The rules are conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// phaseNameRegex matches lowercase, dash-separated phase names.
var phaseNameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidatePhaseName validates a phase name used on the command line and in
// batch filenames.
func ValidatePhaseName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if !phaseNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid phase name: %q (lowercase letters, digits and dashes)", name)
	}
	return nil
}

// prefixRegex matches the two-digit numeric filename prefix.
var prefixRegex = regexp.MustCompile(`^[0-9]{2}$`)

// ValidatePrefix validates a batch filename prefix such as "21".
func ValidatePrefix(prefix string) error {
	if !prefixRegex.MatchString(prefix) {
		return New(ErrCodeInvalidName, "invalid filename prefix: %q (want two digits)", prefix)
	}
	return nil
}

package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// nodeIDRegex matches node ids safe to embed in edge and terminal ids.
// Hyphens are allowed; the edge id scheme stays unambiguous because ids
// are only ever compared whole.
var nodeIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateNodeID validates a script node id for safety and correctness.
// Empty ids are allowed at parse time (the layout engine synthesizes
// fallbacks); this checks ids that are present.
//
// The validation rules are intentionally conservative:
//   - No control characters
//   - Must start with a letter or digit
//   - Only letters, digits, dots, underscores, and hyphens
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return nil
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidScript, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScript, "node id contains control characters")
		}
	}

	if !nodeIDRegex.MatchString(id) {
		return New(ErrCodeInvalidScript, "invalid node id: %q", id)
	}

	return nil
}

// ValidateOutputFormat validates a diagram output format name.
// Only "json" is supported today; a recognizable-but-unsupported format
// reports ErrCodeUnsupported so callers can distinguish it from garbage
// input.
func ValidateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "json":
		return nil
	case "":
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	default:
		return New(ErrCodeUnsupported, "unsupported output format: %q (supported: json)", format)
	}
}

// ValidatePath validates a user-supplied file path for safety.
// It prevents path traversal into unexpected locations and ensures a
// reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || (unicode.IsControl(r) && r != '\t') {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

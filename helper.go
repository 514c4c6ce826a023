// FILE: lixenwraith/bind/helper.go
package bind

import (
	"fmt"
	"strings"
)

// KeySeparator separates the segments of a property key.
const KeySeparator = "/"

// joinKey builds the full key of a property from its parent key and key.
func joinKey(parent, key string) string {
	parent = strings.Trim(parent, KeySeparator)
	key = strings.Trim(key, KeySeparator)
	if parent == "" {
		return key
	}
	if key == "" {
		return parent
	}
	return parent + KeySeparator + key
}

// validateKey checks that every segment of key is a valid bare key.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}
	for _, segment := range strings.Split(key, KeySeparator) {
		if !isValidKeySegment(segment) {
			return fmt.Errorf("%w: invalid segment %q in key %q", ErrInvalidKey, segment, key)
		}
	}
	return nil
}

// isValidKeySegment checks if a single key segment is a valid bare key.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	// Bare keys are sequences of ASCII letters, ASCII digits, underscores, and dashes (A-Za-z0-9_-).
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}

package errors

import (
	"unicode"
)

// MaxIdentityLength bounds how long an item identity may be.
const MaxIdentityLength = 256

// ValidateIdentity validates a single item identity.
//
// Identities are opaque to the engine but they end up in log lines, DOT
// output and TOML files, so the rules reject what would corrupt those:
//   - No empty identities
//   - No control characters (newlines included)
//   - Maximum length of [MaxIdentityLength] bytes
func ValidateIdentity(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "item identity cannot be empty")
	}

	if len(id) > MaxIdentityLength {
		return New(ErrCodeInvalidInput, "item identity too long (max %d characters)", MaxIdentityLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "item identity %q contains control characters", id)
		}
	}

	return nil
}

// ValidateIdentities validates every identity and rejects duplicates.
// An empty list is allowed: a grid with no items is degenerate but well-defined.
func ValidateIdentities(ids []string) error {
	seen := make(map[string]int, len(ids))
	for i, id := range ids {
		if err := ValidateIdentity(id); err != nil {
			return err
		}
		if prev, dup := seen[id]; dup {
			return New(ErrCodeInvalidInput, "duplicate item identity %q at positions %d and %d", id, prev, i)
		}
		seen[id] = i
	}
	return nil
}

package domain

import "strings"

// DeriveKey turns a display name into its slug: surrounding whitespace
// trimmed, internal space runs collapsed to single hyphens, lowercased.
// Deterministic and idempotent; re-applied whenever a name changes.
func DeriveKey(name string) string {
	fields := strings.Fields(name)
	return strings.ToLower(strings.Join(fields, "-"))
}

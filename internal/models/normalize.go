package models

import "strings"

// NormalizeUsername returns the canonical form of a username used for uniqueness
// and lookup: trimmed, internal whitespace collapsed to single spaces, lower-cased.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.Join(strings.Fields(username), " "))
}

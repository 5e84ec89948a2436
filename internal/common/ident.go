package common

import (
	"go/token"
	"strings"
)

// IsValidIdent returns true if s is a valid Go identifier, not a keyword,
// and not the blank identifier.
func IsValidIdent(s string) bool {
	return s != "_" && token.IsIdentifier(s)
}

// LowerFirst lower-cases the first byte of s.
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}

	return strings.ToLower(s[:1]) + s[1:]
}

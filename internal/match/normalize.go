package match

import (
	"strings"
)

// NormalizeIdent folds case and drops '_', '-' and spaces so that
// "each", "Each" and "e_ach" compare equal.
func NormalizeIdent(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

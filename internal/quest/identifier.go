package quest

import (
	"regexp"
	"strings"
	"unicode"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidateIdentifier checks a proposed entity identifier. A candidate equal
// to current always succeeds, so a no-op rename never errors. The existing
// slice carries the sibling IDs to check for collisions; callers that do
// not enforce uniqueness (quest renames) pass nil.
//
// Rules apply in order: empty/whitespace-only, embedded whitespace,
// characters outside [A-Za-z0-9_], duplicate among existing (current
// excluded).
func ValidateIdentifier(candidate string, existing []string, current string) error {
	if candidate == current {
		return nil
	}
	if strings.TrimSpace(candidate) == "" {
		return ErrEmptyIdentifier
	}
	if strings.IndexFunc(candidate, unicode.IsSpace) >= 0 {
		return ErrContainsWhitespace
	}
	if !identifierPattern.MatchString(candidate) {
		return ErrInvalidCharacter
	}
	for _, id := range existing {
		if id == candidate && id != current {
			return ErrDuplicateIdentifier
		}
	}
	return nil
}

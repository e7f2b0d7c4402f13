// Package ids generates row and section identifiers.
//
// Row IDs are short and human friendly: consonant, vowel, consonant, digit (e.g. "ZEK3").
// They are a display convenience rather than a primary key, so collisions are possible;
// NewUniqueRowID retries against a caller-provided set when uniqueness matters.
package ids

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

const (
	consonants = "BCDFGHJKLMNPQRSTVWXYZ"
	vowels     = "AEIOU"
	digits     = "0123456789"
	base36     = "0123456789abcdefghijklmnopqrstuvwxyz"

	sectionSuffixLen = 6
	maxUniqueTries   = 64
)

// RowIDPattern matches a complete row ID (case-insensitive).
var RowIDPattern = regexp.MustCompile(`(?i)^[BCDFGHJKLMNPQRSTVWXYZ][AEIOU][BCDFGHJKLMNPQRSTVWXYZ]\d$`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NewRowID returns a random 4-character row ID, always uppercase.
func NewRowID() string {
	var b [4]byte
	b[0] = consonants[rand.IntN(len(consonants))]
	b[1] = vowels[rand.IntN(len(vowels))]
	b[2] = consonants[rand.IntN(len(consonants))]
	b[3] = digits[rand.IntN(len(digits))]
	return string(b[:])
}

// NewUniqueRowID returns a row ID for which taken reports false. After a bounded number
// of attempts it gives up and returns the last candidate.
func NewUniqueRowID(taken func(id string) bool) string {
	id := NewRowID()
	if taken == nil {
		return id
	}
	for i := 0; i < maxUniqueTries && taken(id); i++ {
		id = NewRowID()
	}
	return id
}

// IsRowID reports whether s is a well-formed row ID.
func IsRowID(s string) bool {
	return RowIDPattern.MatchString(strings.TrimSpace(s))
}

// NewSectionID returns prefix-<6 random base36 chars>.
func NewSectionID(prefix string) string {
	var b [sectionSuffixLen]byte
	for i := range b {
		b[i] = base36[rand.IntN(len(base36))]
	}
	return prefix + "-" + string(b[:])
}

// RowSectionID derives the section id for a row section label. Two rows tagged with the
// same label must resolve to the same section, so this is deterministic.
func RowSectionID(name string) string {
	return "rowSection-" + whitespaceRun.ReplaceAllString(name, "_")
}

// ColSectionID is the column-section counterpart of RowSectionID.
func ColSectionID(name string) string {
	return "colSection-" + whitespaceRun.ReplaceAllString(name, "_")
}

// Package dictionary holds word definitions and the rules for the words they are stored under.
package dictionary

import (
	"regexp"
	"strings"
)

var validWordPattern = regexp.MustCompile(`^[a-zA-Z]+$`)

// Entry is a stored word and its definition.
type Entry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Normalize trims surrounding whitespace and lowercases a word.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// IsValidWord reports whether word is a non-empty run of ASCII letters.
func IsValidWord(word string) bool {
	return validWordPattern.MatchString(word)
}

// Package normalize holds the pure string normalization primitives shared by
// the resolver and the calculators. All functions are total: any input,
// including empty strings, maps to a well-defined output.
package normalize

import (
	"strings"
	"unicode"
)

// Text lowercases, strips punctuation, and collapses runs of whitespace.
// Returns "" for empty or whitespace-only input.
func Text(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			// punctuation becomes a separator so "st. mary's" and
			// "st marys" collapse to comparable forms
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Postcode uppercases and removes all whitespace. Returns "" for empty input.
func Postcode(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// Phone strips everything but digits. Returns "" when no digits remain.
func Phone(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokens returns the whitespace-separated word set of the normalized text.
func Tokens(s string) map[string]struct{} {
	norm := Text(s)
	if norm == "" {
		return nil
	}
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(norm) {
		set[tok] = struct{}{}
	}
	return set
}

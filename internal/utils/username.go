package utils

import (
	"strings"
	"unicode/utf8"
)

// NormalizeUsername lowercases ASCII letters and digits and replaces every
// other rune with a single '-'. The result has one rune per input rune.
func NormalizeUsername(username string) string {
	var b strings.Builder
	b.Grow(utf8.RuneCountInString(username))
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// LoginUsername returns the part of a "<domain>-<name>" username after the
// last '-', or the username itself when it has no '-'.
// It works on the raw username, not on the normalized one.
func LoginUsername(username string) string {
	if i := strings.LastIndexByte(username, '-'); i >= 0 {
		return username[i+1:]
	}
	return username
}

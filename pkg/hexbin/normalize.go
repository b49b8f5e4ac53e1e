package hexbin

import "strings"

// padDigit is appended when the stripped text has an odd number of characters.
const padDigit = '0'

// isSeparator reports whether r is dropped during normalization.
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\n', '\r':
		return true
	}
	return false
}

// StripSeparators removes spaces, line feeds and carriage returns from text.
// Every other character is kept as is, valid hex or not.
func StripSeparators(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if isSeparator(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Normalize strips separators and pads with a trailing '0' when the number of
// remaining characters (runes, not bytes) is odd. The result always holds an
// even number of characters.
func Normalize(text string) string {
	return string(normalizeRunes(text))
}

func normalizeRunes(text string) []rune {
	out := make([]rune, 0, len(text)+1)
	for _, r := range text {
		if isSeparator(r) {
			continue
		}
		out = append(out, r)
	}
	if len(out)%2 != 0 {
		out = append(out, padDigit)
	}
	return out
}

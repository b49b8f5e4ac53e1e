package hexbin

// DecodeDigit returns the 4-bit value of a hex digit.
// '0'-'9', 'A'-'F' and 'a'-'f' are accepted. Anything else, full-width
// variants included, yields an *InvalidHexDigitError.
func DecodeDigit(r rune) (byte, error) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), nil
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, nil
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, nil
	}
	return 0, &InvalidHexDigitError{Char: r}
}

// IsDigit reports whether r is an accepted hex digit.
func IsDigit(r rune) bool {
	_, err := DecodeDigit(r)
	return err == nil
}

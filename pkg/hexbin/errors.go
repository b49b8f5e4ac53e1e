package hexbin

import (
	"fmt"

	"golang.org/x/text/width"
)

// InvalidHexDigitError is returned when a character outside 0-9, A-F, a-f is
// met during decoding.
type InvalidHexDigitError struct {
	Char rune
}

func (e *InvalidHexDigitError) Error() string {
	if la, ok := e.LookAlike(); ok {
		return fmt.Sprintf("invalid hex digit %q (full-width look-alike of %q)", e.Char, la)
	}
	return fmt.Sprintf("invalid hex digit %q", e.Char)
}

// LookAlike returns the ASCII hex digit that Char folds to when it is a
// full-width form such as '１' or 'Ａ'. The character is still rejected; this
// only helps to explain why.
func (e *InvalidHexDigitError) LookAlike() (rune, bool) {
	p := width.LookupRune(e.Char)
	if p.Kind() != width.EastAsianFullwidth {
		return 0, false
	}
	narrow := p.Narrow()
	if narrow == 0 || !IsDigit(narrow) {
		return 0, false
	}
	return narrow, true
}

// MalformedPairingError is returned by Assemble when its input cannot be split
// into pairs. Normalize never produces such input.
type MalformedPairingError struct {
	Chunk []rune
}

func (e *MalformedPairingError) Error() string {
	return fmt.Sprintf("malformed pairing: chunk %q is not two characters", string(e.Chunk))
}

// IoFailureError wraps an error returned by a LineSource.
type IoFailureError struct {
	Err error
}

func (e *IoFailureError) Error() string {
	return fmt.Sprintf("read failed: %v", e.Err)
}

func (e *IoFailureError) Unwrap() error {
	return e.Err
}

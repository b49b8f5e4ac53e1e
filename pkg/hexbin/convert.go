package hexbin

import (
	"errors"
	"io"
	"strings"
)

// Convert decodes hex text, ignoring spaces and line breaks.
// An odd number of digits is padded with a trailing '0' ("aBcDE" gives AB CD E0).
func Convert(text string) ([]byte, error) {
	return Assemble(normalizeRunes(text))
}

// ConvertLines concatenates lines without separator and decodes the result.
// An empty slice gives an empty result.
func ConvertLines(lines []string) ([]byte, error) {
	return Convert(strings.Join(lines, ""))
}

// ConvertSource reads src until it is exhausted and decodes everything read.
//
// A zero-length line or io.EOF ends the input. Lines are kept with their
// terminators; blank lines carry nothing once normalized. Any other read
// error is returned as an *IoFailureError and nothing is decoded.
func ConvertSource(src LineSource) ([]byte, error) {
	var sb strings.Builder
	for {
		line, err := src.ReadLine()
		sb.WriteString(line)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &IoFailureError{Err: err}
		}
		if len(line) == 0 {
			break
		}
	}
	return Convert(sb.String())
}

// ConvertReader decodes all hex text readable from r.
// Opening and closing r is the caller's business.
func ConvertReader(r io.Reader) ([]byte, error) {
	return ConvertSource(NewLineSource(r))
}

// MustConvert is like Convert but panics on invalid input.
func MustConvert(text string) []byte {
	data, err := Convert(text)
	if err != nil {
		panic(err)
	}
	return data
}

// MustConvertLines is like ConvertLines but panics on invalid input.
func MustConvertLines(lines ...string) []byte {
	data, err := ConvertLines(lines)
	if err != nil {
		panic(err)
	}
	return data
}

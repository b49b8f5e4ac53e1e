package tlv

import (
	"fmt"

	"github.com/gregLibert/text2binary/pkg/hexbin"
)

// Hex constructs a byte slice from a series of hex strings.
// Parts follow hexbin rules: spaces and line breaks are ignored and an odd
// digit count is padded with a trailing '0'. It panics on invalid input.
func Hex(parts ...string) []byte {
	data, err := hexbin.ConvertLines(parts)
	if err != nil {
		panic(fmt.Sprintf("invalid input %q: %v", parts, err))
	}
	return data
}

package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"
)

// Describe decodes data as BER-TLV and returns one line per packet.
// Nested packets are indented by two spaces per level. Primitive values are
// shown as upper-case hex, followed by a quoted preview when every byte is
// printable ASCII.
func Describe(data []byte) ([]string, error) {
	packets, err := Decode(data)
	if err != nil {
		return nil, err
	}

	var lines []string
	writePackets(&lines, packets, 0)
	return lines, nil
}

func writePackets(lines *[]string, packets []bertlv.TLV, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, p := range packets {
		tag := strings.ToUpper(p.Tag)

		if IsConstructed(p) {
			size := len(getPacketRawData(p))
			*lines = append(*lines, fmt.Sprintf("%s%s (constructed, %d bytes)", indent, tag, size))
			writePackets(lines, p.TLVs, depth+1)
			continue
		}

		*lines = append(*lines, fmt.Sprintf("%s%s: %s", indent, tag, formatByteValue(p.Value)))
	}
}

func formatByteValue(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}

	hexVal := strings.ToUpper(hex.EncodeToString(data))
	if isPrintable(data) {
		return fmt.Sprintf("%s (%q)", hexVal, string(data))
	}
	return hexVal
}

func isPrintable(data []byte) bool {
	for _, b := range data {
		if b < 32 || b > 126 {
			return false
		}
	}
	return true
}

// MakeSafeASCII replaces every non-printable byte with '.'.
func MakeSafeASCII(data []byte) string {
	out := make([]byte, len(data))
	for i, b := range data {
		if b >= 32 && b <= 126 {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// Package tlv inspects converted payloads as BER-TLV
// (Basic Encoding Rules - Tag-Length-Value) data.
package tlv

import (
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"

	"github.com/gregLibert/text2binary/pkg/bits"
	"github.com/gregLibert/text2binary/pkg/hexbin"
)

// Decode parses raw BER-TLV data into a tree of packets.
func Decode(data []byte) ([]bertlv.TLV, error) {
	packets, err := bertlv.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("bertlv decode failed: %w", err)
	}
	return packets, nil
}

// GetValue scans the raw data for a specific top-level tag and returns its raw payload.
func GetValue(data []byte, tag uint) ([]byte, error) {
	packets, err := Decode(data)
	if err != nil {
		return nil, err
	}

	targetTag := strings.ToUpper(fmt.Sprintf("%X", tag))

	for _, p := range packets {
		if strings.ToUpper(p.Tag) == targetTag {
			return getPacketRawData(p), nil
		}
	}
	return nil, fmt.Errorf("tag %s not found", targetTag)
}

// IsConstructed reports whether bit 6 of the first tag byte is set.
func IsConstructed(p bertlv.TLV) bool {
	if len(p.TLVs) > 0 {
		return true
	}
	raw, err := hexbin.Convert(p.Tag)
	if err != nil || len(raw) == 0 {
		return false
	}
	return bits.IsSet(raw[0], 6)
}

func getPacketRawData(p bertlv.TLV) []byte {
	if len(p.TLVs) > 0 {
		if enc, err := bertlv.Encode(p.TLVs); err == nil {
			return enc
		}
	}
	return p.Value
}

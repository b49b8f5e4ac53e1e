package hexbin

import "github.com/gregLibert/text2binary/pkg/bits"

// Assemble decodes normalized characters two at a time into bytes.
// The first character of a pair is the high nibble.
//
// The input must hold an even number of characters; otherwise a
// *MalformedPairingError naming the leftover chunk is returned before any
// decoding. On a decode failure the error is returned with a nil slice.
// Empty input gives an empty, non-nil slice.
func Assemble(normalized []rune) ([]byte, error) {
	if len(normalized)%2 != 0 {
		return nil, &MalformedPairingError{Chunk: normalized[len(normalized)-1:]}
	}

	out := make([]byte, 0, len(normalized)/2)
	for i := 0; i < len(normalized); i += 2 {
		b, err := decodePair(normalized[i : i+2])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func decodePair(pair []rune) (byte, error) {
	if len(pair) != 2 {
		return 0, &MalformedPairingError{Chunk: pair}
	}

	high, err := DecodeDigit(pair[0])
	if err != nil {
		return 0, err
	}
	low, err := DecodeDigit(pair[1])
	if err != nil {
		return 0, err
	}
	return bits.JoinNibbles(high, low), nil
}

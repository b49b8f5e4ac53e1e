/*
Package apdu sends converted payloads to a smart card as raw command APDUs.

A payload produced by hexbin is parsed as an ISO/IEC 7816-3 Command APDU,
transmitted through a Transmitter and the card response is decoded. The
transport behaviors of T=0 cards are followed automatically:

  - "61 XX": XX bytes are waiting. A GET RESPONSE is issued with Le = XX.
  - "6C XX": the expected length was wrong. The command is re-sent with Le = XX.

Every exchange is kept in a Trace.
*/
package apdu

import (
	"bytes"
	"fmt"
)

// COMMAND APDU (C-APDU):
// Header CLA INS P1 P2, then an optional body.
//
// ENCODING CASES (ISO 7816-3):
// - Case 1: Header only.
// - Case 2: Header + Le.
// - Case 3: Header + Lc + Data.
// - Case 4: Header + Lc + Data + Le.
//
// Short lengths use one byte (Lc up to 255, Le up to 256 with 00 meaning 256).
// Extended lengths start with a 00 marker followed by two bytes
// (Lc up to 65535, Le up to 65536 with 0000 meaning 65536).

// APDU Limits according to ISO 7816-3.
const (
	HeaderSize = 4

	MaxShortLc    = 255
	MaxShortLe    = 256
	MaxExtendedLc = 65535
	MaxExtendedLe = 65536
)

// Command represents a command sent to the card.
type Command struct {
	Class       byte
	Instruction byte
	P1, P2      byte
	Data        []byte
	Ne          int // Expected response length (0 means none)
}

// ParseCommand decodes a raw C-APDU in any of the four short or extended cases.
func ParseCommand(raw []byte) (*Command, error) {
	if len(raw) < HeaderSize {
		return nil, fmt.Errorf("command too short: length %d", len(raw))
	}

	cmd := &Command{
		Class:       raw[0],
		Instruction: raw[1],
		P1:          raw[2],
		P2:          raw[3],
	}
	body := raw[HeaderSize:]

	switch {
	case len(body) == 0:
		// Case 1
		return cmd, nil

	case len(body) == 1:
		// Case 2 Short
		cmd.Ne = shortLe(body[0])
		return cmd, nil

	case body[0] != 0x00:
		// Case 3/4 Short
		lc := int(body[0])
		switch len(body) {
		case 1 + lc:
		case 2 + lc:
			cmd.Ne = shortLe(body[len(body)-1])
		default:
			return nil, fmt.Errorf("short Lc %d does not match body length %d", lc, len(body))
		}
		cmd.Data = body[1 : 1+lc]
		return cmd, nil

	case len(body) == 3:
		// Case 2 Extended
		cmd.Ne = extendedLe(body[1], body[2])
		return cmd, nil

	case len(body) > 3:
		// Case 3/4 Extended
		lc := int(body[1])<<8 | int(body[2])
		if lc == 0 {
			return nil, fmt.Errorf("extended Lc is zero")
		}
		switch len(body) {
		case 3 + lc:
		case 5 + lc:
			cmd.Ne = extendedLe(body[len(body)-2], body[len(body)-1])
		default:
			return nil, fmt.Errorf("extended Lc %d does not match body length %d", lc, len(body))
		}
		cmd.Data = body[3 : 3+lc]
		return cmd, nil
	}

	return nil, fmt.Errorf("malformed command body: % X", body)
}

func shortLe(b byte) int {
	if b == 0x00 {
		return MaxShortLe
	}
	return int(b)
}

func extendedLe(hi, lo byte) int {
	le := int(hi)<<8 | int(lo)
	if le == 0 {
		return MaxExtendedLe
	}
	return le
}

// Bytes encodes the Command into its byte representation (C-APDU).
// Extended encoding is selected when Data exceeds MaxShortLc bytes or Ne
// exceeds MaxShortLe.
func (c *Command) Bytes() ([]byte, error) {
	nc := len(c.Data)
	ne := c.Ne

	if nc > MaxExtendedLc {
		return nil, fmt.Errorf("data too long: %d bytes", nc)
	}
	if ne < 0 || ne > MaxExtendedLe {
		return nil, fmt.Errorf("invalid Ne: %d", ne)
	}

	buf := new(bytes.Buffer)
	buf.Write([]byte{c.Class, c.Instruction, c.P1, c.P2})

	isExtended := nc > MaxShortLc || ne > MaxShortLe

	if nc > 0 {
		if !isExtended {
			buf.WriteByte(byte(nc))
		} else {
			buf.WriteByte(0x00)
			buf.WriteByte(byte(nc >> 8))
			buf.WriteByte(byte(nc))
		}
		buf.Write(c.Data)
	}

	if ne > 0 {
		if !isExtended {
			// 0x00 represents 256
			buf.WriteByte(byte(ne))
		} else {
			// Case 2 Extended needs the 00 marker to tell Le from Lc
			if nc == 0 {
				buf.WriteByte(0x00)
			}
			// 0x0000 represents 65536
			buf.WriteByte(byte(ne >> 8))
			buf.WriteByte(byte(ne))
		}
	}

	return buf.Bytes(), nil
}

// String returns a readable representation of the command meta-data.
func (c *Command) String() string {
	return fmt.Sprintf("CLA: %02X INS: %02X | P1: %02X, P2: %02X | Lc: %d | Le: %d",
		c.Class, c.Instruction, c.P1, c.P2, len(c.Data), c.Ne)
}

// Response represents the reply from the card (R-APDU).
type Response struct {
	Data   []byte
	Status StatusWord
}

// ParseResponse parses raw bytes received from the card.
// The input must contain at least 2 bytes (SW1, SW2).
func ParseResponse(raw []byte) (*Response, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("response too short: length %d", len(raw))
	}

	indexSW1 := len(raw) - 2

	return &Response{
		Data:   raw[:indexSW1],
		Status: NewStatusWord(raw[indexSW1], raw[indexSW1+1]),
	}, nil
}

// String returns a readable representation of the response.
func (r *Response) String() string {
	return fmt.Sprintf("Data (%d bytes) | Status: %s", len(r.Data), r.Status.Verbose())
}

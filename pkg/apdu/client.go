package apdu

import (
	"fmt"

	"github.com/gregLibert/text2binary/pkg/bits"
)

// INS_GET_RESPONSE retrieves the bytes announced by a '61XX' status.
const INS_GET_RESPONSE byte = 0xC0

// MaxExchanges bounds the number of transactions a single Send may chain.
const MaxExchanges = 32

// Transmitter abstracts the physical card connection.
// *scard.Card satisfies it.
type Transmitter interface {
	Transmit(cmd []byte) ([]byte, error)
}

// Client manages the high-level communication with the card.
type Client struct {
	Card Transmitter
}

// NewClient creates a new Client instance.
func NewClient(card Transmitter) *Client {
	return &Client{Card: card}
}

// Send parses raw as a C-APDU, transmits it and handles protocol logic (61xx, 6Cxx).
// On error the trace gathered so far is returned along with it.
func (c *Client) Send(raw []byte) (Trace, error) {
	cmd, err := ParseCommand(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}
	return c.SendCommand(cmd)
}

// SendCommand transmits cmd and follows '61XX' and '6CXX' statuses.
func (c *Client) SendCommand(cmd *Command) (Trace, error) {
	var trace Trace

	for len(trace) < MaxExchanges {
		tx, err := c.exchange(cmd)
		if err != nil {
			return trace, err
		}
		trace = append(trace, tx)

		sw := tx.Response.Status
		switch sw.SW1() {
		case 0x61:
			// GET RESPONSE must use the same logical channel, without chaining.
			cmd = &Command{
				Class:       cmd.Class &^ bits.Bit(5),
				Instruction: INS_GET_RESPONSE,
				Ne:          shortLe(sw.SW2()),
			}
		case 0x6C:
			retry := *cmd
			retry.Ne = shortLe(sw.SW2())
			cmd = &retry
		default:
			return trace, nil
		}
	}

	return trace, fmt.Errorf("gave up after %d exchanges", MaxExchanges)
}

func (c *Client) exchange(cmd *Command) (Transaction, error) {
	rawCmd, err := cmd.Bytes()
	if err != nil {
		return Transaction{}, fmt.Errorf("encoding error: %w", err)
	}

	rawResp, err := c.Card.Transmit(rawCmd)
	if err != nil {
		return Transaction{}, fmt.Errorf("transmission error: %w", err)
	}

	resp, err := ParseResponse(rawResp)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{Command: cmd, Response: resp}, nil
}

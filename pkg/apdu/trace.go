package apdu

import (
	"fmt"
	"strings"
)

// Transaction represents a completed Command-Response pair.
type Transaction struct {
	Command  *Command
	Response *Response
}

// IsSuccess checks if the transaction ended with a successful status.
// It returns false if the response is missing.
func (t *Transaction) IsSuccess() bool {
	if t.Response == nil {
		return false
	}
	return t.Response.Status.IsSuccess()
}

// Trace is a sequence of transactions (Command-Response pairs).
// It represents the full history of a logical exchange (including 61xx/6Cxx retries).
type Trace []Transaction

// Last returns the final transaction of the trace.
// Returns nil if the trace is empty.
func (t Trace) Last() *Transaction {
	if len(t) == 0 {
		return nil
	}
	return &t[len(t)-1]
}

// IsSuccess checks if the FINAL transaction in the trace was successful.
func (t Trace) IsSuccess() bool {
	last := t.Last()
	if last == nil {
		return false
	}
	return last.IsSuccess()
}

// Data concatenates the response data of every transaction, which is how
// a 61XX chain delivers a long response.
func (t Trace) Data() []byte {
	var out []byte
	for _, tx := range t {
		if tx.Response != nil {
			out = append(out, tx.Response.Data...)
		}
	}
	return out
}

// Describe returns one block per transaction.
func (t Trace) Describe() string {
	var sb strings.Builder
	for i, tx := range t {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "[%d] >> %s", i+1, tx.Command)
		if raw, err := tx.Command.Bytes(); err == nil {
			fmt.Fprintf(&sb, "\n    C-APDU: %X", raw)
		}
		if tx.Response != nil {
			fmt.Fprintf(&sb, "\n    << %s", tx.Response)
			if len(tx.Response.Data) > 0 {
				fmt.Fprintf(&sb, "\n    R-DATA: %X", tx.Response.Data)
			}
		}
	}
	return sb.String()
}

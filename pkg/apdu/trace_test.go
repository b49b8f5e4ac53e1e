package apdu

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func makeTx(sw StatusWord, data ...byte) Transaction {
	return Transaction{
		Command:  &Command{},
		Response: &Response{Data: data, Status: sw},
	}
}

func TestTransaction_IsSuccess(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want bool
	}{
		{
			name: "Successful Transaction (9000)",
			tx:   makeTx(SW_NO_ERROR),
			want: true,
		},
		{
			name: "Process Completed (6110)",
			tx:   makeTx(NewStatusWord(0x61, 0x10)),
			want: true,
		},
		{
			name: "Error Transaction (6A82)",
			tx:   makeTx(SW_ERR_FILE_NOT_FOUND),
			want: false,
		},
		{
			name: "Nil Response (Incomplete Transaction)",
			tx:   Transaction{Command: &Command{}, Response: nil},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tx.IsSuccess(); got != tt.want {
				t.Errorf("Transaction.IsSuccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrace_Logic(t *testing.T) {
	t.Run("Empty Trace", func(t *testing.T) {
		var tr Trace
		if tr.Last() != nil {
			t.Error("Empty trace Last() should be nil")
		}
		if tr.IsSuccess() {
			t.Error("Empty trace IsSuccess() should be false")
		}
	})

	t.Run("Multi-Step Trace (Scenario: 61XX then 9000)", func(t *testing.T) {
		tr := Trace{
			makeTx(NewStatusWord(0x61, 0x02), 0x01),
			makeTx(SW_NO_ERROR, 0x02, 0x03),
		}

		if tr.Last().Response.Status != SW_NO_ERROR {
			t.Errorf("Last transaction mismatch")
		}
		if !tr.IsSuccess() {
			t.Error("Trace should be successful if the last action succeeded")
		}
		if diff := cmp.Diff([]byte{0x01, 0x02, 0x03}, tr.Data()); diff != "" {
			t.Errorf("Data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Failure at the end", func(t *testing.T) {
		tr := Trace{
			makeTx(SW_NO_ERROR),
			makeTx(SW_ERR_FILE_NOT_FOUND),
		}

		if tr.IsSuccess() {
			t.Error("Trace should fail if the last action failed")
		}
	})
}

func TestTrace_Describe(t *testing.T) {
	tr := Trace{
		{
			Command:  &Command{Instruction: 0xB0, Ne: 4},
			Response: &Response{Status: NewStatusWord(0x6C, 0x02)},
		},
		{
			Command:  &Command{Instruction: 0xB0, Ne: 2},
			Response: &Response{Data: []byte{0xCA, 0xFE}, Status: SW_NO_ERROR},
		},
	}

	expectedLines := []string{
		"[1] >> CLA: 00 INS: B0 | P1: 00, P2: 00 | Lc: 0 | Le: 4",
		"    C-APDU: 00B0000004",
		"    << Data (0 bytes) | Status: [6C02] Wrong length, correct Le is 2",
		"[2] >> CLA: 00 INS: B0 | P1: 00, P2: 00 | Lc: 0 | Le: 2",
		"    C-APDU: 00B0000002",
		"    << Data (2 bytes) | Status: [9000] No error",
		"    R-DATA: CAFE",
	}

	actualLines := strings.Split(tr.Describe(), "\n")
	if diff := cmp.Diff(expectedLines, actualLines); diff != "" {
		t.Errorf("Mismatch (-want +got):\n%s", diff)
	}
}

package apdu

import (
	"fmt"

	"github.com/gregLibert/text2binary/pkg/bits"
)

// StatusWord represents the two-byte status response (SW1-SW2) returned by the smart card.
type StatusWord uint16

// Standard Status Word codes defined in ISO/IEC 7816-4.
const (
	SW_NO_ERROR StatusWord = 0x9000

	SW_WARN_NO_INFO        StatusWord = 0x6200
	SW_WARN_DATA_CORRUPTED StatusWord = 0x6281
	SW_WARN_EOF_REACHED    StatusWord = 0x6282

	SW_ERR_WRONG_LENGTH            StatusWord = 0x6700
	SW_ERR_SECURITY_STATUS_NOT_SAT StatusWord = 0x6982
	SW_ERR_COND_OF_USE_NOT_SAT     StatusWord = 0x6985
	SW_ERR_INCORRECT_PARAMS_DATA   StatusWord = 0x6A80
	SW_ERR_FUNC_NOT_SUPPORTED      StatusWord = 0x6A81
	SW_ERR_FILE_NOT_FOUND          StatusWord = 0x6A82
	SW_ERR_RECORD_NOT_FOUND        StatusWord = 0x6A83
	SW_ERR_INCORRECT_PARAMS_P1P2   StatusWord = 0x6A86
	SW_ERR_WRONG_P1P2              StatusWord = 0x6B00
	SW_ERR_INS_INVALID             StatusWord = 0x6D00
	SW_ERR_CLA_NOT_SUPPORTED       StatusWord = 0x6E00
	SW_ERR_UNKNOWN                 StatusWord = 0x6F00
)

var statusNames = map[StatusWord]string{
	SW_NO_ERROR:                    "No error",
	SW_WARN_NO_INFO:                "Warning: NV memory unchanged",
	SW_WARN_DATA_CORRUPTED:         "Warning: Part of returned data may be corrupted",
	SW_WARN_EOF_REACHED:            "Warning: End of file or record reached",
	SW_ERR_WRONG_LENGTH:            "Wrong length",
	SW_ERR_SECURITY_STATUS_NOT_SAT: "Security status not satisfied",
	SW_ERR_COND_OF_USE_NOT_SAT:     "Conditions of use not satisfied",
	SW_ERR_INCORRECT_PARAMS_DATA:   "Incorrect parameters in the data field",
	SW_ERR_FUNC_NOT_SUPPORTED:      "Function not supported",
	SW_ERR_FILE_NOT_FOUND:          "File or application not found",
	SW_ERR_RECORD_NOT_FOUND:        "Record not found",
	SW_ERR_INCORRECT_PARAMS_P1P2:   "Incorrect parameters P1-P2",
	SW_ERR_WRONG_P1P2:              "Wrong parameters P1-P2",
	SW_ERR_INS_INVALID:             "Instruction code not supported or invalid",
	SW_ERR_CLA_NOT_SUPPORTED:       "Class not supported",
	SW_ERR_UNKNOWN:                 "No precise diagnosis",
}

// NewStatusWord creates a StatusWord instance from two separate bytes.
func NewStatusWord(sw1, sw2 byte) StatusWord {
	return StatusWord(uint16(sw1)<<8 | uint16(sw2))
}

// SW1 returns the first byte (high byte) of the status word.
func (sw StatusWord) SW1() byte {
	return byte(sw >> 8)
}

// SW2 returns the second byte (low byte) of the status word.
func (sw StatusWord) SW2() byte {
	return byte(sw)
}

// IsCounter checks for '63CX', where X is a counter (e.g. remaining PIN tries).
func (sw StatusWord) IsCounter() bool {
	return sw.SW1() == 0x63 && bits.HighNibble(sw.SW2()) == 0x0C
}

// IsSuccess returns true if the command was processed successfully (9000) or
// if data is available (61XX).
func (sw StatusWord) IsSuccess() bool {
	return sw == SW_NO_ERROR || sw.SW1() == 0x61
}

// IsWarning returns true if the status indicates a warning (62XX or 63XX).
func (sw StatusWord) IsWarning() bool {
	sw1 := sw.SW1()
	return sw1 == 0x62 || sw1 == 0x63
}

// IsError returns true if the status indicates an execution or checking error (64XX to 6FXX).
func (sw StatusWord) IsError() bool {
	sw1 := sw.SW1()
	return sw1 >= 0x64 && sw1 <= 0x6F
}

// Verbose returns a human-readable description of the status word.
func (sw StatusWord) Verbose() string {
	sw1 := sw.SW1()
	sw2 := sw.SW2()

	switch {
	case sw1 == 0x61:
		return fmt.Sprintf("[%04X] Process completed, %d bytes available", uint16(sw), sw2)
	case sw1 == 0x6C:
		return fmt.Sprintf("[%04X] Wrong length, correct Le is %d", uint16(sw), sw2)
	case sw.IsCounter():
		return fmt.Sprintf("[%04X] Warning: State changed, counter = %d", uint16(sw), bits.LowNibble(sw2))
	}

	if name, ok := statusNames[sw]; ok {
		return fmt.Sprintf("[%04X] %s", uint16(sw), name)
	}
	return fmt.Sprintf("[%04X] %s", uint16(sw), sw.genericCategoryDescription())
}

// genericCategoryDescription provides a fallback description based on SW1.
func (sw StatusWord) genericCategoryDescription() string {
	switch sw.SW1() {
	case 0x62:
		return "Warning: NV memory unchanged"
	case 0x63:
		return "Warning: NV memory changed"
	case 0x64:
		return "Execution Error: NV memory unchanged"
	case 0x65:
		return "Execution Error: NV memory changed"
	case 0x66:
		return "Execution Error: Security issue"
	case 0x68:
		return "Checking Error: Function not supported"
	case 0x69:
		return "Checking Error: Command not allowed"
	case 0x6A:
		return "Checking Error: Wrong parameters"
	default:
		return "Unknown Status"
	}
}

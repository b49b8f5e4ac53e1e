/*
Package hexbin converts hexadecimal text into raw bytes.

The text may be split by spaces and line breaks ("\n", "\r") and letters are
case-insensitive. All entry points share one pipeline:

 1. Normalize drops the whitespace and, if an odd number of characters is
    left, appends a trailing '0'.
 2. Assemble walks the normalized characters two at a time. The first
    character of each pair is the high nibble.
 3. DecodeDigit maps each character to its 4-bit value.

The first invalid character aborts the conversion. No partial output is ever
returned with an error.

# Entry points

  - Convert: a single string.
  - ConvertLines: a slice of strings, concatenated without separator.
  - ConvertSource: a LineSource read until exhaustion.
  - ConvertReader: any io.Reader (an open file, a socket, a buffer).

Example:

	data, err := hexbin.Convert("00 12\n34 56")
	if err != nil {
	    var bad *hexbin.InvalidHexDigitError
	    if errors.As(err, &bad) {
	        log.Printf("offending character: %q", bad.Char)
	    }
	    return err
	}
	// data == []byte{0x00, 0x12, 0x34, 0x56}

MustConvert and MustConvertLines panic instead of returning an error. They are
meant for fixtures and hard-coded constants.
*/
package hexbin

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ebfe/scard"
	"github.com/gregLibert/text2binary/pkg/apdu"
	"github.com/gregLibert/text2binary/pkg/hexbin"
	"github.com/gregLibert/text2binary/pkg/tlv"
)

// hexArgs collects repeated -x flags.
type hexArgs []string

func (h *hexArgs) String() string     { return strings.Join(*h, " ") }
func (h *hexArgs) Set(v string) error { *h = append(*h, v); return nil }

func main() {
	var inline hexArgs
	flag.Var(&inline, "x", "Hex text to convert (repeatable, joined without separator)")
	output := flag.String("o", "", "Write the binary payload to this file instead of stdout")
	dump := flag.Bool("dump", false, "Print a hex dump instead of raw bytes")
	describe := flag.Bool("tlv", false, "Print the payload decoded as BER-TLV")
	send := flag.Bool("send", false, "Transmit the payload as a command APDU to a smart card reader")
	readerName := flag.String("reader", "", "PC/SC reader to use with -send (default: first reader)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Convert hexadecimal text into binary.\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [flags] [file ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Spaces and line breaks are ignored, letters are case-insensitive and an odd\n")
		fmt.Fprintf(os.Stderr, "digit count is padded with a trailing 0. With no file and no -x, stdin is read.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -x \"00 A4 04 00\" -dump\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -o payload.bin payload.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -send select_pse.txt\n", os.Args[0])
	}

	flag.Parse()

	payload, err := readPayload(inline, flag.Args())
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	switch {
	case *send:
		if err := sendToCard(*readerName, payload); err != nil {
			log.Fatalf("Send failed: %v", err)
		}
	case *describe:
		lines, err := tlv.Describe(payload)
		if err != nil {
			log.Fatalf("TLV decoding failed: %v", err)
		}
		fmt.Println(strings.Join(lines, "\n"))
	default:
		if err := writePayload(*output, *dump, payload); err != nil {
			log.Fatalf("Write failed: %v", err)
		}
	}
}

// readPayload converts the -x values, then every file in order.
// Each file is converted on its own, so odd-length padding applies per file.
func readPayload(inline []string, files []string) ([]byte, error) {
	var payload []byte

	if len(inline) > 0 {
		data, err := hexbin.ConvertLines(inline)
		if err != nil {
			return nil, fmt.Errorf("-x: %w", err)
		}
		payload = append(payload, data...)
	}

	if len(inline) == 0 && len(files) == 0 {
		files = []string{"-"}
	}

	for _, name := range files {
		data, err := convertFile(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		payload = append(payload, data...)
	}

	return payload, nil
}

func convertFile(name string) ([]byte, error) {
	if name == "-" {
		return hexbin.ConvertReader(os.Stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: Failed to close %s: %v", name, err)
		}
	}()

	return hexbin.ConvertReader(f)
}

func writePayload(path string, dump bool, payload []byte) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("Warning: Failed to close %s: %v", path, err)
			}
		}()
		w = f
	}

	if dump {
		_, err := io.WriteString(w, hexDump(payload))
		return err
	}
	_, err := w.Write(payload)
	return err
}

// hexDump renders 16 bytes per line: offset, hex bytes, printable ASCII.
func hexDump(data []byte) string {
	var sb strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[off:end]
		fmt.Fprintf(&sb, "%08X  %-47s  |%s|\n", off, fmt.Sprintf("% X", row), tlv.MakeSafeASCII(row))
	}
	return sb.String()
}

// sendToCard establishes the PC/SC context, connects to the reader and
// transmits the payload.
func sendToCard(readerName string, payload []byte) error {
	ctx, err := scard.EstablishContext()
	if err != nil {
		return fmt.Errorf("establishing context: %w", err)
	}
	defer func() {
		if err := ctx.Release(); err != nil {
			log.Printf("Warning: Failed to release context: %v", err)
		}
	}()

	if readerName == "" {
		readers, err := ctx.ListReaders()
		if err != nil || len(readers) == 0 {
			return fmt.Errorf("no smart card reader found")
		}
		readerName = readers[0]
	}

	fmt.Printf(">> Using reader: %s\n", readerName)

	// Force T=0 or T=1 to avoid "Parameter Incorrect" errors (Error 57)
	card, err := ctx.Connect(readerName, scard.ShareShared, scard.ProtocolT0|scard.ProtocolT1)
	if err != nil {
		return fmt.Errorf("connecting to card: %w", err)
	}
	defer func() {
		if err := card.Disconnect(scard.LeaveCard); err != nil {
			log.Printf("Warning: Failed to disconnect card: %v", err)
		}
	}()

	trace, err := apdu.NewClient(card).Send(payload)
	if len(trace) > 0 {
		fmt.Println(trace.Describe())
	}
	if err != nil {
		return err
	}

	if data := trace.Data(); len(data) > 0 {
		fmt.Printf("\n>> Response data (%d bytes)\n", len(data))
		if lines, err := tlv.Describe(data); err == nil && len(lines) > 0 {
			fmt.Println(strings.Join(lines, "\n"))
		} else {
			fmt.Print(hexDump(data))
		}
	}

	if !trace.IsSuccess() {
		return fmt.Errorf("card returned %s", trace.Last().Response.Status.Verbose())
	}
	return nil
}

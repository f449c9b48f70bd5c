package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/joshuapare/edidkit/internal/format"
)

const (
	hexColumns = 16
	qrSize     = 512
)

var (
	hexEdit   editFlags
	hexString bool
	hexCopy   bool
	hexQR     string
)

func init() {
	cmd := newHexCmd()
	hexEdit.bind(cmd)
	cmd.Flags().BoolVar(&hexString, "string", false, "Print the block as a comma-separated hex string")
	cmd.Flags().BoolVar(&hexCopy, "copy", false, "Copy the hex string to the clipboard")
	cmd.Flags().StringVar(&hexQR, "qr", "", "Write the hex string as a QR code PNG to this file")
	rootCmd.AddCommand(cmd)
}

func newHexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex <file.reg>",
		Short: "Show the EDID block as hex, highlighting edited bytes",
		Long: `The hex command prints block 0 as a 16-column hex grid. When size
flags are given the edited block is shown and changed bytes are highlighted.

Example:
  edidctl hex monitor.reg
  edidctl hex monitor.reg --diagonal 21.5 --ptm
  edidctl hex monitor.reg --diagonal 21.5 --string --copy
  edidctl hex monitor.reg --qr edid.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hexEdit.capture(cmd)
			return runHex(args)
		},
	}
	return cmd
}

func runHex(args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	if hexEdit.set() {
		if _, err := s.Apply(hexEdit.request(s)); err != nil {
			return fmt.Errorf("failed to apply size: %w", err)
		}
	}
	b := s.Working()
	hex := format.FormatHex(b[:])

	if hexCopy {
		if err := clipboard.WriteAll(hex); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		printVerbose("Copied %d bytes to clipboard\n", format.BlockSize)
	}
	if hexQR != "" {
		if err := qrcode.WriteFile(hex, qrcode.Medium, qrSize, hexQR); err != nil {
			return fmt.Errorf("failed to write QR code: %w", err)
		}
		printVerbose("Wrote QR code: %s\n", hexQR)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"device":  s.DevicePath(),
			"hex":     hex,
			"changed": s.ChangedOffsets(),
		})
	}
	if hexString {
		printInfo("%s\n", hex)
		return nil
	}
	printInfo("%s", renderHexGrid(s.Original(), b))
	return nil
}

// renderHexGrid lays out working in rows of 16 bytes, marking bytes that
// differ from original.
func renderHexGrid(original, working format.Block) string {
	var sb strings.Builder

	sb.WriteString("    ")
	for c := range hexColumns {
		sb.WriteString(" " + render(headerStyle, format.ByteHex(c)))
	}
	sb.WriteString("\n")

	var changed []string
	for row := 0; row < format.BlockSize; row += hexColumns {
		sb.WriteString(render(offsetStyle, format.ByteHex(row)) + " |")
		for i := row; i < row+hexColumns; i++ {
			cell := format.ByteHex(int(working[i]))
			if working[i] != original[i] {
				cell = render(changedStyle, cell)
				changed = append(changed, fmt.Sprintf("0x%02X", i))
			}
			sb.WriteString(" " + cell)
		}
		sb.WriteString("\n")
	}

	if len(changed) > 0 {
		sb.WriteString("\nchanged: " + strings.Join(changed, " ") + "\n")
	}
	return sb.String()
}

package format

import (
	"fmt"
	"strings"
)

const (
	// HexByteSeparator separates bytes in a hex string.
	HexByteSeparator = ","
	// HexByteFormat is the format string for a single hex byte.
	HexByteFormat = "%02x"
)

// ByteHex formats n as two lowercase hex digits. n outside [0,255] is a
// programming error and panics.
func ByteHex(n int) string {
	if n < 0 || n > 0xFF {
		panic(fmt.Sprintf("format: byte value out of range: %d", n))
	}
	return fmt.Sprintf(HexByteFormat, n)
}

// FormatHex renders data as comma-separated two-digit lowercase hex, the
// form used by hex: values in .reg files.
func FormatHex(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 3)
	for i, v := range data {
		if i > 0 {
			b.WriteString(HexByteSeparator)
		}
		b.WriteString(ByteHex(int(v)))
	}
	return b.String()
}

// String renders the block with FormatHex.
func (b Block) String() string {
	return FormatHex(b[:])
}

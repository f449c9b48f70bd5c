package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleEDID returns a valid EDID 1.4 base block for a 1920x1080 panel with
// a 52x29 cm screen and a 527x296 mm preferred-mode image size.
func SampleEDID() []byte {
	b := make([]byte, 128)
	copy(b, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	copy(b[0x08:], []byte{0x10, 0xAC, 0xB1, 0xA0, 0x4C, 0x35, 0x32, 0x30})
	b[0x10], b[0x11] = 0x1D, 0x1E // week, year
	b[0x12], b[0x13] = 0x01, 0x04 // version 1.4
	b[0x14] = 0xA5                // digital input
	b[0x15], b[0x16] = 52, 29     // cm
	b[0x17], b[0x18] = 0x78, 0x3A
	// Preferred timing: 1920x1080@60, 527x296 mm.
	copy(b[0x36:], []byte{
		0x02, 0x3A, 0x80, 0x18, 0x71, 0x38, 0x2D, 0x40,
		0x58, 0x2C, 0x45, 0x00, 0x0F, 0x28, 0x21, 0x00, 0x00, 0x1E,
	})
	// Monitor name descriptor.
	copy(b[0x48:], []byte{0x00, 0x00, 0x00, 0xFC, 0x00})
	copy(b[0x4D:], []byte("DELL P2419H\n "))
	b[0x7E] = 0x00 // no extensions
	FixChecksum(b)
	return b
}

// FixChecksum rewrites byte 127 of a 128-byte block so the block sums to 0
// modulo 256.
func FixChecksum(b []byte) {
	sum := 0
	for _, v := range b[:127] {
		sum += int(v)
	}
	b[127] = byte((256 - sum%256) % 256)
}

// HexList renders data as a .reg hex list (lowercase, comma separated).
func HexList(data []byte) string {
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, ",")
}

// RegBuilder assembles .reg documents for tests.
type RegBuilder struct {
	sb   strings.Builder
	Wrap bool // wrap hex values the way regedit does
}

// NewRegBuilder starts a document with the version 5 header.
func NewRegBuilder() *RegBuilder {
	rb := &RegBuilder{}
	rb.sb.WriteString(RegHeader + "\r\n\r\n")
	return rb
}

// Section opens a [key] section.
func (rb *RegBuilder) Section(key string) *RegBuilder {
	rb.sb.WriteString("[" + key + "]\r\n")
	return rb
}

// Line writes a raw line.
func (rb *RegBuilder) Line(s string) *RegBuilder {
	rb.sb.WriteString(s + "\r\n")
	return rb
}

// Hex writes "name"=hex:data, wrapped at 80 columns when rb.Wrap is set.
func (rb *RegBuilder) Hex(name string, data []byte) *RegBuilder {
	prefix := fmt.Sprintf("%q=hex:", name)
	if !rb.Wrap {
		return rb.Line(prefix + HexList(data))
	}
	line := prefix
	for i, v := range data {
		tok := fmt.Sprintf("%02x", v)
		if i < len(data)-1 {
			tok += ","
		}
		if len(line)+len(tok) > 77 {
			rb.sb.WriteString(line + "\\\r\n")
			line = "  "
		}
		line += tok
	}
	return rb.Line(line)
}

// Blank writes an empty line.
func (rb *RegBuilder) Blank() *RegBuilder {
	rb.sb.WriteString("\r\n")
	return rb
}

func (rb *RegBuilder) String() string { return rb.sb.String() }

// Bytes returns the document as UTF-8 bytes.
func (rb *RegBuilder) Bytes() []byte { return []byte(rb.sb.String()) }

// MonitorExport returns a document like `reg export` of a display's Enum
// key: the Device Parameters key holding edid, plus unrelated neighbours.
func MonitorExport(devicePath string, edid []byte) *RegBuilder {
	rb := NewRegBuilder()
	rb.Section(EnumRoot + `\` + devicePath).
		Line(`"DeviceDesc"="@monitor.inf,%pnpmonitor.devicedesc%;Generic PnP Monitor"`).
		Line(`"Capabilities"=dword:000000f0`).
		Blank().
		Section(DeviceParametersKey(devicePath)).
		Hex("EDID", edid).
		Blank().
		Section(EnumRoot + `\` + devicePath + `\Properties`).
		Blank()
	return rb
}

// WriteTemp writes content to name inside t.TempDir and returns the path.
func WriteTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

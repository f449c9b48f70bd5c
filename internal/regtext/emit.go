package regtext

import (
	"strings"

	"github.com/joshuapare/edidkit/internal/format"
)

// EmitOptions controls the text produced by the document writers.
type EmitOptions struct {
	// OutputEncoding is "", "UTF-8", "UTF-16LE" or "Windows-1252".
	OutputEncoding string
	// WithBOM prefixes the output with the encoding's byte order mark.
	// Windows-1252 has none and rejects it with ErrNoByteOrderMark.
	WithBOM bool
	// WrapLines wraps hex values at 80 columns with backslash continuation,
	// the way regedit exports them.
	WrapLines bool
}

// DeviceParametersKey returns the full key holding devicePath's EDID.
func DeviceParametersKey(devicePath string) string {
	return EnumKeyPrefix + devicePath + DeviceParametersSuffix
}

// OverrideKey returns the full EDID_OVERRIDE key of devicePath.
func OverrideKey(devicePath string) string {
	return EnumKeyPrefix + devicePath + OverrideSuffix
}

// OverrideDocument returns a .reg document that installs b as the block 0
// override of devicePath.
func OverrideDocument(devicePath string, b format.Block, opts EmitOptions) ([]byte, error) {
	var sb strings.Builder
	writeOverrideHeader(&sb, devicePath)
	writeHexValue(&sb, OverrideBlock0ValueName, b[:], opts.WrapLines)
	return encodeOutput(sb.String(), opts.OutputEncoding, opts.WithBOM)
}

// RemovalDocument returns a .reg document that deletes devicePath's block 0
// override.
func RemovalDocument(devicePath string, opts EmitOptions) ([]byte, error) {
	var sb strings.Builder
	writeOverrideHeader(&sb, devicePath)
	sb.WriteString(Quote + escapeRegString(OverrideBlock0ValueName) + Quote + ValueAssignment)
	sb.WriteString(DeleteValueToken + CRLF)
	return encodeOutput(sb.String(), opts.OutputEncoding, opts.WithBOM)
}

func writeOverrideHeader(sb *strings.Builder, devicePath string) {
	sb.WriteString(RegFileHeader + CRLF + CRLF)
	sb.WriteString(KeyOpenBracket + OverrideKey(devicePath) + KeyCloseBracket + CRLF)
}

// writeHexValue emits "name"=hex:xx,xx,... followed by CRLF.
func writeHexValue(sb *strings.Builder, name string, data []byte, wrap bool) {
	line := Quote + escapeRegString(name) + Quote + ValueAssignment + HexPrefix
	if !wrap {
		sb.WriteString(line + format.FormatHex(data) + CRLF)
		return
	}
	for i, v := range data {
		tok := format.ByteHex(int(v))
		if i < len(data)-1 {
			tok += format.HexByteSeparator
		}
		// Leave room for the trailing backslash.
		if len(line)+len(tok) > WrapWidth-len(Backslash) {
			sb.WriteString(line + Backslash + CRLF)
			line = ContinuationIndent
		}
		line += tok
	}
	sb.WriteString(line + CRLF)
}

package regtext

const (
	// ============================================================================
	// .reg File Format Tokens
	// ============================================================================

	// RegFileHeader is the required header line for .reg files version 5.00
	RegFileHeader = "Windows Registry Editor Version 5.00"

	// KeyOpenBracket marks the start of a registry key path
	KeyOpenBracket = "["

	// KeyCloseBracket marks the end of a registry key path
	KeyCloseBracket = "]"

	// ValueAssignment separates value names from their data
	ValueAssignment = "="

	// CommentPrefix marks a comment line
	CommentPrefix = ";"

	// Quote is the double-quote character for value names and string data
	Quote = "\""

	// Backslash is used for escaping, path separators and line continuation
	Backslash = "\\"

	// EscapedQuote is the escaped double-quote sequence
	EscapedQuote = "\\\""

	// EscapedBackslash is the escaped backslash sequence
	EscapedBackslash = "\\\\"

	// CRLF is the Windows line ending (carriage return + line feed)
	CRLF = "\r\n"

	// LF is the line feed character
	LF = "\n"

	// HexPrefix identifies binary data in .reg format
	HexPrefix = "hex:"

	// DeleteValueToken marks a value for deletion
	DeleteValueToken = "-"

	// ============================================================================
	// Display device keys
	// ============================================================================

	// EnumKeyPrefix is the path every device instance key starts with.
	EnumKeyPrefix = `HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Enum\`

	// DisplayClassPrefix starts the instance path of every monitor.
	DisplayClassPrefix = `DISPLAY\`

	// DeviceParametersSuffix ends the key holding the monitor-reported EDID.
	DeviceParametersSuffix = `\Device Parameters`

	// OverrideSuffix ends the key Windows reads EDID overrides from.
	OverrideSuffix = DeviceParametersSuffix + `\EDID_OVERRIDE`

	// EDIDValueName is the value holding the monitor-reported EDID.
	EDIDValueName = "EDID"

	// OverrideBlock0ValueName is the override value for EDID block 0.
	OverrideBlock0ValueName = "0"

	// ============================================================================
	// Encoding Names
	// ============================================================================

	// EncodingUTF8 is the identifier for UTF-8 encoding
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding
	EncodingUTF16LE = "UTF-16LE"

	// EncodingWindows1252 is the identifier for ANSI exports
	EncodingWindows1252 = "WINDOWS-1252"

	// ============================================================================
	// Hex Data Formatting
	// ============================================================================

	// MinPayloadTokens is the smallest hex list that can hold EDID block 0.
	MinPayloadTokens = 128

	// WrapWidth is the column regedit wraps long hex values at.
	WrapWidth = 80

	// ContinuationIndent prefixes every continuation line of a wrapped value.
	ContinuationIndent = "  "
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)

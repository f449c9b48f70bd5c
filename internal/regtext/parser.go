package regtext

import (
	"fmt"
	"strings"

	"github.com/joshuapare/edidkit/internal/format"
	"github.com/joshuapare/edidkit/pkg/types"
)

// ParseOptions controls how a registry export is read.
type ParseOptions struct {
	// InputEncoding names the text encoding when the data has no byte order
	// mark: "", "UTF-8", "UTF-16LE" or "Windows-1252". Empty auto-detects
	// between UTF-8 and UTF-16LE.
	InputEncoding string

	// DevicePath restricts parsing to one monitor instance (compared
	// case-insensitively). Empty accepts every DISPLAY instance; when the
	// export holds several, the last EDID found wins.
	DevicePath string
}

// Record is the result of scanning one registry export.
type Record struct {
	// WellFormed is false when the header line is missing; every other field
	// is then zero.
	WellFormed bool
	// PayloadFound reports that Payload holds block 0 of a device EDID.
	PayloadFound bool
	// OverridePresent reports an existing EDID_OVERRIDE "0" value.
	OverridePresent bool
	// DevicePath is the instance path (e.g. DISPLAY\DELA0B1\5&2d9c&0&UID4352)
	// that Payload was read from.
	DevicePath string
	// Payload is nil unless PayloadFound.
	Payload *format.Block

	// Devices lists every monitor instance seen, in document order.
	Devices []Device
	// Diagnostics holds non-fatal findings such as undecodable hex tokens.
	Diagnostics []types.Diagnostic
}

// Device summarizes one DISPLAY instance found in the export.
type Device struct {
	Path            string
	HasEDID         bool
	OverridePresent bool
}

// section tags the kind of [key] the scanner is currently inside.
type section int

const (
	sectionNone             section = iota // before the first key
	sectionDeviceParameters                // ...\Enum\DISPLAY\<id>\Device Parameters
	sectionOverride                        // ...\Device Parameters\EDID_OVERRIDE
	sectionOther                           // any other key
)

// Parse scans a registry export for a monitor's EDID and EDID_OVERRIDE
// values. Only an unsupported encoding is an error; every other problem is
// reported through the Record.
func Parse(data []byte, opts ParseOptions) (*Record, error) {
	text, err := decodeInput(data, opts.InputEncoding)
	if err != nil {
		return nil, err
	}
	return parseText(text, opts), nil
}

// ParseString is Parse for text that is already decoded.
func ParseString(text string, opts ParseOptions) *Record {
	return parseText(text, opts)
}

func parseText(text string, opts ParseOptions) *Record {
	text = strings.TrimPrefix(text, byteOrderMark)
	text = joinContinuations(strings.TrimSpace(text))
	lines := strings.Split(text, LF)

	rec := &Record{}
	if len(lines) == 0 || !strings.EqualFold(strings.TrimSpace(lines[0]), RegFileHeader) {
		return rec
	}
	rec.WellFormed = true

	s := scanner{rec: rec, filter: opts.DevicePath}
	for i := 1; i < len(lines); i++ {
		s.line(i+1, strings.TrimSpace(lines[i]))
	}
	return rec
}

// byteOrderMark is U+FEFF as it appears in text decoded without BOM removal.
const byteOrderMark = "\ufeff"

// scanner carries the single-pass state of parseText.
type scanner struct {
	rec    *Record
	filter string

	current section
	path    string // instance path of the current section
}

func (s *scanner) line(n int, line string) {
	if line == "" || strings.HasPrefix(line, CommentPrefix) {
		return
	}
	if strings.HasPrefix(line, KeyOpenBracket) && strings.HasSuffix(line, KeyCloseBracket) {
		s.enter(line[1 : len(line)-1])
		return
	}

	switch s.current {
	case sectionDeviceParameters:
		name, data, ok := splitValueLine(line)
		if ok && strings.EqualFold(name, EDIDValueName) {
			s.edidValue(n, data)
		}
	case sectionOverride:
		name, data, ok := splitValueLine(line)
		if ok && name == OverrideBlock0ValueName {
			s.overrideValue(n, data)
		}
	}
}

// enter switches the current section for a [key] line.
func (s *scanner) enter(key string) {
	s.current, s.path = classifyKey(key)
	if s.current == sectionOther || s.current == sectionNone {
		return
	}
	if s.filter != "" && !strings.EqualFold(s.path, s.filter) {
		s.current, s.path = sectionOther, ""
		return
	}
	s.device()
}

// classifyKey recognizes the two display keys the parser cares about.
func classifyKey(key string) (section, string) {
	rest, ok := cutPrefixFold(key, EnumKeyPrefix)
	if !ok {
		return sectionOther, ""
	}
	kind := sectionOverride
	path, ok := cutSuffixFold(rest, OverrideSuffix)
	if !ok {
		kind = sectionDeviceParameters
		if path, ok = cutSuffixFold(rest, DeviceParametersSuffix); !ok {
			return sectionOther, ""
		}
	}
	if _, ok := cutPrefixFold(path, DisplayClassPrefix); !ok || len(path) == len(DisplayClassPrefix) {
		return sectionOther, ""
	}
	return kind, path
}

// device returns the Devices entry for the current path, adding it on
// first sight.
func (s *scanner) device() *Device {
	for i := range s.rec.Devices {
		if strings.EqualFold(s.rec.Devices[i].Path, s.path) {
			return &s.rec.Devices[i]
		}
	}
	s.rec.Devices = append(s.rec.Devices, Device{Path: s.path})
	return &s.rec.Devices[len(s.rec.Devices)-1]
}

func (s *scanner) edidValue(n int, data string) {
	list, ok := cutPrefixFold(data, HexPrefix)
	if !ok {
		s.warn(n, fmt.Sprintf("EDID value is not hex: data (%.16q)", data))
		return
	}
	tokens := splitHexList(list)
	block, ok := s.payload(n, tokens, true)
	if !ok {
		return
	}
	s.rec.Payload = &block
	s.rec.PayloadFound = true
	s.rec.DevicePath = s.path
	s.device().HasEDID = true
}

func (s *scanner) overrideValue(n int, data string) {
	list, ok := cutPrefixFold(data, HexPrefix)
	if !ok {
		return // "0"=- and friends
	}
	if _, ok := s.payload(n, splitHexList(list), false); !ok {
		return
	}
	s.rec.OverridePresent = true
	s.device().OverridePresent = true
	s.rec.Diagnostics = append(s.rec.Diagnostics, types.Diagnostic{
		Severity: types.SevInfo,
		Category: types.DiagOverride,
		Line:     n,
		Offset:   -1,
		Issue:    fmt.Sprintf("EDID_OVERRIDE already present for %s", s.path),
	})
}

// payload extracts block 0 from tokens. Every undecodable token is
// reported when report is set; the block is usable only when the first 128
// tokens all decode.
func (s *scanner) payload(n int, tokens []hexToken, report bool) (format.Block, bool) {
	var block format.Block
	valid := true
	for i, tok := range tokens {
		if tok.ok {
			if i < format.BlockSize {
				block[i] = tok.value
			}
			continue
		}
		if i < format.BlockSize {
			valid = false
		}
		if report {
			s.rec.Diagnostics = append(s.rec.Diagnostics, types.Diagnostic{
				Severity: types.SevWarning,
				Category: types.DiagSyntax,
				Line:     n,
				Offset:   i,
				Issue:    fmt.Sprintf("invalid hex string: %q", tok.text),
			})
		}
	}
	if len(tokens) < MinPayloadTokens {
		if report {
			s.warn(n, fmt.Sprintf("EDID value has %d bytes, need at least %d", len(tokens), MinPayloadTokens))
		}
		return block, false
	}
	return block, valid
}

func (s *scanner) warn(n int, msg string) {
	s.rec.Diagnostics = append(s.rec.Diagnostics, types.Diagnostic{
		Severity: types.SevWarning,
		Category: types.DiagSyntax,
		Line:     n,
		Offset:   -1,
		Issue:    msg,
	})
}

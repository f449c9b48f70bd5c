package regtext

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupportedEncoding is returned for encoding names other than UTF-8,
// UTF-16LE and Windows-1252.
var ErrUnsupportedEncoding = errors.New("regtext: unsupported encoding")

// ErrNoByteOrderMark is returned when a BOM is requested for Windows-1252,
// which has none.
var ErrNoByteOrderMark = errors.New("regtext: encoding has no byte order mark")

// decodeInput converts input data to a UTF-8 string. A byte order mark
// overrides enc. Without one, an empty enc selects UTF-8 unless the data
// looks like BOM-less UTF-16LE.
func decodeInput(data []byte, enc string) (string, error) {
	// Check for UTF-16LE BOM
	if bytes.HasPrefix(data, UTF16LEBOM) {
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), data)
	}
	// Check for UTF-8 BOM - just skip it
	if bytes.HasPrefix(data, UTF8BOM) {
		return string(data[len(UTF8BOM):]), nil
	}
	switch normalizeEncoding(enc) {
	case "":
		if looksUTF16LE(data) {
			return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), data)
		}
		return string(data), nil
	case EncodingUTF8:
		return string(data), nil
	case EncodingUTF16LE:
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), data)
	case EncodingWindows1252:
		return decodeWith(charmap.Windows1252, data)
	default:
		return "", ErrUnsupportedEncoding
	}
}

func decodeWith(e encoding.Encoding, data []byte) (string, error) {
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// looksUTF16LE reports whether data starts with an ASCII character encoded
// as UTF-16LE, which is how `reg export` output looks once its BOM is lost.
func looksUTF16LE(data []byte) bool {
	return len(data) >= 4 && data[0] != 0 && data[1] == 0 && data[2] != 0 && data[3] == 0
}

// encodeOutput converts UTF-8 text to the requested output encoding.
func encodeOutput(s, enc string, withBOM bool) ([]byte, error) {
	switch normalizeEncoding(enc) {
	case "", EncodingUTF8:
		if withBOM {
			return append(append([]byte{}, UTF8BOM...), s...), nil
		}
		return []byte(s), nil
	case EncodingUTF16LE:
		bom := unicode.IgnoreBOM
		if withBOM {
			bom = unicode.UseBOM
		}
		return unicode.UTF16(unicode.LittleEndian, bom).NewEncoder().Bytes([]byte(s))
	case EncodingWindows1252:
		if withBOM {
			return nil, ErrNoByteOrderMark
		}
		return charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	default:
		return nil, ErrUnsupportedEncoding
	}
}

// normalizeEncoding maps the spellings accepted on the command line to the
// canonical names above.
func normalizeEncoding(enc string) string {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(enc), "_", "-")) {
	case "":
		return ""
	case "UTF-8", "UTF8":
		return EncodingUTF8
	case "UTF-16LE", "UTF16LE", "UTF-16", "UTF16", "UNICODE":
		return EncodingUTF16LE
	case "WINDOWS-1252", "CP1252", "ANSI", "LATIN1":
		return EncodingWindows1252
	default:
		return "?" + enc
	}
}

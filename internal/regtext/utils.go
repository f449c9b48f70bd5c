package regtext

import (
	"strings"
	"unicode"
)

// joinContinuations removes every backslash that ends a physical line,
// together with the line break (any number of CRs then LF) and the
// indentation of the following line, so a wrapped value becomes one line.
func joinContinuations(s string) string {
	if !strings.Contains(s, Backslash+LF) && !strings.Contains(s, Backslash+"\r") {
		return s // Fast path: nothing wrapped
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		j := i + 1
		for j < len(s) && s[j] == '\r' {
			j++
		}
		if j >= len(s) || s[j] != '\n' {
			b.WriteByte(s[i])
			continue
		}
		j++
		for j < len(s) && unicode.IsSpace(rune(s[j])) {
			j++
		}
		i = j - 1
	}
	return b.String()
}

// unescapeRegString unescapes a string from .reg format.
// .reg files escape backslashes as \\ and quotes as \"
func unescapeRegString(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s // Fast path: no backslashes = no escapes
	}
	s = strings.ReplaceAll(s, EscapedBackslash, Backslash)
	s = strings.ReplaceAll(s, EscapedQuote, Quote)
	return s
}

// escapeRegString is the inverse of unescapeRegString.
func escapeRegString(s string) string {
	s = strings.ReplaceAll(s, Backslash, EscapedBackslash)
	s = strings.ReplaceAll(s, Quote, EscapedQuote)
	return s
}

// findClosingQuote finds the position of the closing quote in a line,
// accounting for escaped quotes (preceded by an odd number of backslashes).
// Returns -1 if no valid closing quote is found.
// The search starts at position 1 (assuming the opening quote is at position 0).
func findClosingQuote(line string) int {
	for i := 1; i < len(line); i++ {
		if line[i] != '"' {
			continue
		}
		numBackslashes := 0
		for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
			numBackslashes++
		}
		if numBackslashes%2 == 1 {
			continue // Escaped quote, keep looking
		}
		return i
	}
	return -1
}

// splitValueLine splits `"name"=data` into its unescaped name and raw data.
// ok is false for lines that are not named value assignments.
func splitValueLine(line string) (name, data string, ok bool) {
	if !strings.HasPrefix(line, Quote) {
		return "", "", false
	}
	end := findClosingQuote(line)
	if end < 0 {
		return "", "", false
	}
	rest := strings.TrimLeft(line[end+1:], " \t")
	if !strings.HasPrefix(rest, ValueAssignment) {
		return "", "", false
	}
	return unescapeRegString(line[1:end]), strings.TrimSpace(rest[1:]), true
}

// hexToken is one comma-separated element of a hex: list.
type hexToken struct {
	text  string
	value byte
	ok    bool
}

// splitHexList tokenizes the data after a hex: prefix. Whitespace inside
// the list is ignored; an empty trailing element (from a trailing comma) is
// dropped.
func splitHexList(list string) []hexToken {
	parts := strings.Split(list, ",")
	if n := len(parts); n > 0 && strings.TrimSpace(parts[n-1]) == "" {
		parts = parts[:n-1]
	}
	tokens := make([]hexToken, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		v, ok := parseHexByte(p)
		tokens[i] = hexToken{text: p, value: v, ok: ok}
	}
	return tokens
}

// parseHexByte parses one or two hex digits.
func parseHexByte(s string) (byte, bool) {
	switch len(s) {
	case 1:
		lo := hexCharToNibble(s[0])
		return lo, lo != 0xFF
	case 2:
		hi, lo := hexCharToNibble(s[0]), hexCharToNibble(s[1])
		if hi == 0xFF || lo == 0xFF {
			return 0, false
		}
		return hi<<4 | lo, true
	default:
		return 0, false
	}
}

// hexCharToNibble converts a hex character to its 4-bit value
// Returns 0xFF for invalid characters.
func hexCharToNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0xFF
	}
}

// cutPrefixFold is strings.CutPrefix with ASCII case folding.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

// cutSuffixFold is strings.CutSuffix with ASCII case folding.
func cutSuffixFold(s, suffix string) (string, bool) {
	if len(s) < len(suffix) || !strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s, false
	}
	return s[:len(s)-len(suffix)], true
}

// Package buf contains small helpers for bounds-checked slicing and the
// packed bit fields used by EDID descriptors.
package buf

// Nibble selects one half of a byte.
type Nibble uint8

const (
	LowNibble  Nibble = 0 // bits 0-3
	HighNibble Nibble = 4 // bits 4-7
)

// Mask returns the byte mask covering n.
func (n Nibble) Mask() byte {
	return 0x0F << uint(n)
}

// GetNibble extracts nibble n of b as a value in [0,15].
func GetNibble(b byte, n Nibble) byte {
	return (b >> uint(n)) & 0x0F
}

// PutNibble returns b with nibble n replaced by the low four bits of v.
func PutNibble(b byte, n Nibble, v byte) byte {
	return (b &^ n.Mask()) | ((v & 0x0F) << uint(n))
}

// Join12 combines an 8-bit low part with a 4-bit high part taken from
// nibble n of hi. EDID stores most 12-bit sizes this way.
func Join12(lo, hi byte, n Nibble) int {
	return int(lo) | int(GetNibble(hi, n))<<8
}

// Split12 returns the low byte of v and hi with nibble n replaced by bits
// 8-11 of v. Bits above 11 are discarded.
func Split12(v int, hi byte, n Nibble) (byte, byte) {
	return byte(v & 0xFF), PutNibble(hi, n, byte((v>>8)&0x0F))
}

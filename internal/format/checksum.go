package format

import "fmt"

// Checksum returns the byte that makes the sum of a block's 128 bytes a
// multiple of 256. first127 must be exactly the first 127 bytes of a block;
// any other length is a programming error and panics.
func Checksum(first127 []byte) byte {
	if len(first127) != ChecksumOffset {
		panic(fmt.Sprintf("format: checksum needs %d bytes, got %d", ChecksumOffset, len(first127)))
	}
	sum := 0
	for _, v := range first127 {
		sum += int(v)
	}
	rem := sum % 256
	if rem == 0 {
		return 0
	}
	return byte(256 - rem)
}

// ChecksumStatus returns the checksum b should carry and the one it does.
func ChecksumStatus(b Block) (want, got byte) {
	return Checksum(b[:ChecksumOffset]), b[ChecksumOffset]
}

// VerifyChecksum reports whether the stored checksum of b is correct.
func VerifyChecksum(b Block) bool {
	want, got := ChecksumStatus(b)
	return want == got
}

// withChecksum returns b with byte 127 recomputed.
func withChecksum(b Block) Block {
	b[ChecksumOffset] = Checksum(b[:ChecksumOffset])
	return b
}

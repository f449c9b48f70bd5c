package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/edidkit/internal/buf"
)

// Block is an EDID base block. It is a value type: assigning or passing a
// Block copies all 128 bytes, so a Block can never alias another.
type Block [BlockSize]byte

// FromBytes copies the first BlockSize bytes of p into a Block. Extension
// blocks that may follow are ignored.
func FromBytes(p []byte) (Block, error) {
	var b Block
	src, ok := buf.Slice(p, 0, BlockSize)
	if !ok {
		return b, fmt.Errorf("edid block: have %d bytes: %w", len(p), ErrTruncated)
	}
	copy(b[:], src)
	return b, nil
}

// Bytes returns a copy of the block as a slice.
func (b Block) Bytes() []byte {
	out := make([]byte, BlockSize)
	copy(out, b[:])
	return out
}

// Diff returns the offsets at which a and b differ, in ascending order.
func Diff(a, b Block) []int {
	var out []int
	for i := range a {
		if a[i] != b[i] {
			out = append(out, i)
		}
	}
	return out
}

// Header captures the identification fields of block 0.
type Header struct {
	Version  uint8
	Revision uint8
}

func (h Header) String() string {
	return fmt.Sprintf("%d.%d", h.Version, h.Revision)
}

// Supported reports whether the codec understands the block layout for h.
func (h Header) Supported() bool {
	if h.Version != EDIDVersion1 {
		return false
	}
	return h.Revision == EDIDRevision4 || h.Revision == EDIDRevision3
}

// ParseHeader validates the signature and version of b. When the signature
// is wrong the returned Header is zero; when only the version is unsupported
// the Header is filled in so callers can report it.
func ParseHeader(b Block) (Header, error) {
	if !bytes.Equal(b[HeaderOffset:HeaderOffset+len(HeaderSignature)], HeaderSignature) {
		return Header{}, fmt.Errorf("edid header: %w", ErrSignatureMismatch)
	}
	h := Header{Version: b[VersionOffset], Revision: b[RevisionOffset]}
	if !h.Supported() {
		return h, fmt.Errorf("edid header: version %s: %w", h, ErrUnsupported)
	}
	return h, nil
}

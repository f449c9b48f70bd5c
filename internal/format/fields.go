package format

import (
	"math"

	"github.com/joshuapare/edidkit/internal/buf"
)

// Get reads f from b.
func (f Split12Field) Get(b Block) int {
	return buf.Join12(b[f.Low], b[f.High], f.Nibble)
}

// put writes v into f, discarding bits above 11.
func (f Split12Field) put(b *Block, v int) {
	b[f.Low], b[f.High] = buf.Split12(v, b[f.High], f.Nibble)
}

// PixelSize returns the preferred timing mode's active pixel counts.
func PixelSize(b Block) (h, v int) {
	return PTMHPixel.Get(b), PTMVPixel.Get(b)
}

// ImageSizeMm returns the preferred timing mode's addressable image size in
// millimeters.
func ImageSizeMm(b Block) (h, v int) {
	return PTMHImage.Get(b), PTMVImage.Get(b)
}

// PhysicalSizeCm returns the screen size in centimeters. If either byte is
// zero the pair encodes an aspect ratio (or nothing), and (0, 0) is returned.
func PhysicalSizeCm(b Block) (h, v int) {
	h, v = int(b[PhysicalHSizeOffset]), int(b[PhysicalVSizeOffset])
	if h == 0 || v == 0 {
		return 0, 0
	}
	return h, v
}

// WithPhysicalSize returns a copy of b with the physical size set to the
// given centimeters, rounded to the nearest integer and clamped to [0,255].
// When setPTM is true the preferred timing mode image size is also set to the
// same size in millimeters. The checksum of the result is always valid.
//
// The PTM fields are 12 bits wide; larger values are truncated, not clamped.
func WithPhysicalSize(b Block, hCm, vCm float64, setPTM bool) Block {
	h := clampCm(hCm)
	v := clampCm(vCm)

	b[PhysicalHSizeOffset] = byte(h)
	b[PhysicalVSizeOffset] = byte(v)

	if setPTM {
		PTMHImage.put(&b, h*MmPerCm)
		PTMVImage.put(&b, v*MmPerCm)
	}
	return withChecksum(b)
}

func clampCm(cm float64) int {
	if math.IsNaN(cm) {
		return 0
	}
	r := math.Round(cm)
	switch {
	case r < 0:
		return 0
	case r > MaxPhysicalSizeCm:
		return MaxPhysicalSizeCm
	default:
		return int(r)
	}
}

// Package format houses the low-level codec for EDID base blocks (block 0).
// Every offset and bit mask the rest of the module relies on is declared in
// this file; accessors in fields.go are the only code that touches them.
package format

import "github.com/joshuapare/edidkit/internal/buf"

// BlockSize is the size of an EDID base block in bytes.
const BlockSize = 128

var (
	// HeaderSignature is the fixed eight-byte pattern at the start of block 0.
	// Layout:
	//   0x00  00 FF FF FF FF FF FF 00
	HeaderSignature = []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}
)

// Block 0 layout. Offsets are from the start of the block.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    8    Header signature
//	 0x12    1    EDID version
//	 0x13    1    EDID revision
//	 0x15    1    Horizontal screen size, cm (0 = undefined / aspect ratio)
//	 0x16    1    Vertical screen size, cm (0 = undefined / aspect ratio)
//	 0x36   18    First detailed timing descriptor (preferred timing mode)
//	 0x7F    1    Checksum
const (
	HeaderOffset   = 0x00
	VersionOffset  = 0x12
	RevisionOffset = 0x13

	PhysicalHSizeOffset = 0x15
	PhysicalVSizeOffset = 0x16

	// PTMOffset is the start of the preferred timing mode descriptor.
	PTMOffset = 0x36

	PTMHPixelLowOffset  = PTMOffset + 2
	PTMHPixelHighOffset = PTMOffset + 4 // upper nibble
	PTMVPixelLowOffset  = PTMOffset + 5
	PTMVPixelHighOffset = PTMOffset + 7 // upper nibble

	PTMHImageLowOffset = PTMOffset + 12
	PTMVImageLowOffset = PTMOffset + 13
	// PTMImageHighOffset holds bits 8-11 of both image sizes:
	// horizontal in the upper nibble, vertical in the lower.
	PTMImageHighOffset = PTMOffset + 14

	ChecksumOffset = BlockSize - 1
)

// Supported EDID versions.
const (
	EDIDVersion1  = 0x01
	EDIDRevision3 = 0x03
	EDIDRevision4 = 0x04
)

const (
	// MaxPhysicalSizeCm is the largest value the one-byte physical size fields hold.
	MaxPhysicalSizeCm = 0xFF
	// MaxImageSizeMm is the largest value a 12-bit PTM image size holds.
	MaxImageSizeMm = 0xFFF

	// CmPerInch converts between the two units used by screen sizes.
	CmPerInch = 2.54
	// MmPerCm converts physical size (cm) to PTM image size (mm).
	MmPerCm = 10
)

// Split12Field describes a 12-bit value stored as a low byte plus a nibble
// of another byte.
type Split12Field struct {
	Name   string
	Low    int
	High   int
	Nibble buf.Nibble
}

// Preferred timing mode 12-bit fields.
var (
	PTMHPixel = Split12Field{Name: "ptm_h_pixels", Low: PTMHPixelLowOffset, High: PTMHPixelHighOffset, Nibble: buf.HighNibble}
	PTMVPixel = Split12Field{Name: "ptm_v_pixels", Low: PTMVPixelLowOffset, High: PTMVPixelHighOffset, Nibble: buf.HighNibble}
	PTMHImage = Split12Field{Name: "ptm_h_image_mm", Low: PTMHImageLowOffset, High: PTMImageHighOffset, Nibble: buf.HighNibble}
	PTMVImage = Split12Field{Name: "ptm_v_image_mm", Low: PTMVImageLowOffset, High: PTMImageHighOffset, Nibble: buf.LowNibble}
)

// Field is one row of the layout table. Mask is 0xFF for whole bytes.
type Field struct {
	Name        string
	Offset      int
	Size        int
	Mask        byte
	Description string
}

// Fields lists every location the codec reads or writes, in offset order.
var Fields = []Field{
	{Name: "header", Offset: HeaderOffset, Size: len(HeaderSignature), Mask: 0xFF, Description: "fixed header signature"},
	{Name: "version", Offset: VersionOffset, Size: 1, Mask: 0xFF, Description: "EDID version"},
	{Name: "revision", Offset: RevisionOffset, Size: 1, Mask: 0xFF, Description: "EDID revision"},
	{Name: "physical_h_cm", Offset: PhysicalHSizeOffset, Size: 1, Mask: 0xFF, Description: "horizontal screen size, cm"},
	{Name: "physical_v_cm", Offset: PhysicalVSizeOffset, Size: 1, Mask: 0xFF, Description: "vertical screen size, cm"},
	{Name: "ptm_h_pixels_lo", Offset: PTMHPixelLowOffset, Size: 1, Mask: 0xFF, Description: "PTM horizontal active pixels, bits 0-7"},
	{Name: "ptm_h_pixels_hi", Offset: PTMHPixelHighOffset, Size: 1, Mask: buf.HighNibble.Mask(), Description: "PTM horizontal active pixels, bits 8-11"},
	{Name: "ptm_v_pixels_lo", Offset: PTMVPixelLowOffset, Size: 1, Mask: 0xFF, Description: "PTM vertical active lines, bits 0-7"},
	{Name: "ptm_v_pixels_hi", Offset: PTMVPixelHighOffset, Size: 1, Mask: buf.HighNibble.Mask(), Description: "PTM vertical active lines, bits 8-11"},
	{Name: "ptm_h_image_mm_lo", Offset: PTMHImageLowOffset, Size: 1, Mask: 0xFF, Description: "PTM horizontal image size, mm, bits 0-7"},
	{Name: "ptm_v_image_mm_lo", Offset: PTMVImageLowOffset, Size: 1, Mask: 0xFF, Description: "PTM vertical image size, mm, bits 0-7"},
	{Name: "ptm_h_image_mm_hi", Offset: PTMImageHighOffset, Size: 1, Mask: buf.HighNibble.Mask(), Description: "PTM horizontal image size, mm, bits 8-11"},
	{Name: "ptm_v_image_mm_hi", Offset: PTMImageHighOffset, Size: 1, Mask: buf.LowNibble.Mask(), Description: "PTM vertical image size, mm, bits 8-11"},
	{Name: "checksum", Offset: ChecksumOffset, Size: 1, Mask: 0xFF, Description: "block checksum"},
}

// FieldsAt returns the layout rows covering offset off.
func FieldsAt(off int) []Field {
	var out []Field
	for _, f := range Fields {
		if off >= f.Offset && off < f.Offset+f.Size {
			out = append(out, f)
		}
	}
	return out
}

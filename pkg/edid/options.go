package edid

import "github.com/joshuapare/edidkit/internal/regtext"

// OpenOptions controls how a registry export is decoded and which monitor
// is selected from it.
type OpenOptions = regtext.ParseOptions

// ExportOptions controls the encoding and layout of generated documents.
type ExportOptions = regtext.EmitOptions

// EditRequest describes a new screen size. The physical size is derived by
// scaling the HPixel x VPixel rectangle to DiagonalInches.
type EditRequest struct {
	DiagonalInches float64
	HPixel         int
	VPixel         int

	// SetPreferredModeSize also rewrites the preferred timing mode image
	// size (mm) to match the new physical size.
	SetPreferredModeSize bool
}

// Info is the decoded, display-oriented view of a block.
type Info struct {
	DevicePath string `json:"devicePath"`
	Version    uint8  `json:"version"`
	Revision   uint8  `json:"revision"`

	PixelH int `json:"pixelH"`
	PixelV int `json:"pixelV"`

	PhysicalHCm    int     `json:"physicalHCm"`
	PhysicalVCm    int     `json:"physicalVCm"`
	DiagonalInches float64 `json:"diagonalInches"`

	ImageHMm int `json:"imageHMm"`
	ImageVMm int `json:"imageVMm"`

	ChecksumValid bool `json:"checksumValid"`
}

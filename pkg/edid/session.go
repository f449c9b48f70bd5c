package edid

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/joshuapare/edidkit/internal/format"
	"github.com/joshuapare/edidkit/internal/logger"
	"github.com/joshuapare/edidkit/internal/regtext"
	"github.com/joshuapare/edidkit/pkg/types"
)

// Session holds one loaded EDID and its edited copy.
type Session struct {
	original   format.Block
	working    format.Block
	devicePath string
	header     format.Header

	checksumMismatch bool
	overridePresent  bool

	// lastDiagonal is the diagonal of the last successful Apply, 0 before.
	lastDiagonal float64

	report *types.DiagnosticReport
}

// Load starts a session from a parsed registry export.
func Load(rec *regtext.Record) (*Session, error) {
	if rec == nil || !rec.WellFormed {
		return nil, types.ErrNotAContainer
	}
	if !rec.PayloadFound || rec.Payload == nil {
		return nil, types.ErrPayloadMissing
	}

	b := *rec.Payload
	h, err := format.ParseHeader(b)
	if err != nil {
		switch {
		case errors.Is(err, format.ErrSignatureMismatch):
			return nil, fmt.Errorf("%w: %w", types.ErrBadSignature, err)
		case errors.Is(err, format.ErrUnsupported):
			return nil, fmt.Errorf("%w %s: %w", types.ErrUnsupportedVersion, h, err)
		}
		return nil, err
	}

	s := &Session{
		original:        b,
		working:         b,
		devicePath:      rec.DevicePath,
		header:          h,
		overridePresent: rec.OverridePresent,
		report:          types.NewDiagnosticReport(rec.DevicePath),
	}
	s.report.Add(rec.Diagnostics...)

	if want, got := format.ChecksumStatus(b); want != got {
		s.checksumMismatch = true
		s.report.Add(types.Diagnostic{
			Severity: types.SevWarning,
			Category: types.DiagIntegrity,
			Offset:   format.ChecksumOffset,
			Issue:    "EDID checksum mismatch",
			Expected: fmt.Sprintf("0x%02X", want),
			Actual:   fmt.Sprintf("0x%02X", got),
		})
	}

	logger.Debug("edid loaded",
		"device", s.devicePath,
		"version", h.String(),
		"checksum_mismatch", s.checksumMismatch,
		"override_present", s.overridePresent)
	return s, nil
}

// Open reads a registry export from r and loads it.
func Open(r io.Reader, opts OpenOptions) (*Session, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	rec, err := regtext.Parse(data, opts)
	if err != nil {
		return nil, err
	}
	return Load(rec)
}

// OpenFile is Open for a file on disk.
func OpenFile(path string, opts OpenOptions) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Open(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.report.Source = path
	return s, nil
}

// Apply derives a new working block from the original with the physical
// size implied by req. On error the working block is left unchanged.
func (s *Session) Apply(req EditRequest) (format.Block, error) {
	if s == nil {
		return format.Block{}, types.ErrNoSession
	}
	hCm, vCm, err := format.DimensionsByDiagonal(format.InchToCm(req.DiagonalInches), req.HPixel, req.VPixel)
	if err != nil {
		return s.working, fmt.Errorf("%w: %w", types.ErrDegenerateGeometry, err)
	}
	s.working = format.WithPhysicalSize(s.original, hCm, vCm, req.SetPreferredModeSize)
	s.lastDiagonal = req.DiagonalInches

	h, v := format.PhysicalSizeCm(s.working)
	logger.Debug("edid edited",
		"device", s.devicePath,
		"diagonal_in", req.DiagonalInches,
		"h_cm", h, "v_cm", v,
		"ptm", req.SetPreferredModeSize,
		"changed", len(s.ChangedOffsets()))
	return s.working, nil
}

// Original returns a copy of the block as loaded.
func (s *Session) Original() format.Block { return s.original }

// Working returns a copy of the block produced by the last Apply, or the
// original if nothing was applied.
func (s *Session) Working() format.Block { return s.working }

// DevicePath is the monitor instance path the EDID was read from.
func (s *Session) DevicePath() string { return s.devicePath }

// Header returns the EDID version of the loaded block.
func (s *Session) Header() format.Header { return s.header }

// ChecksumMismatch reports that the loaded block's checksum was wrong.
func (s *Session) ChecksumMismatch() bool { return s.checksumMismatch }

// OverridePresent reports that the export already carried an EDID_OVERRIDE.
func (s *Session) OverridePresent() bool { return s.overridePresent }

// Diagnostics returns the parse and load findings for the session.
func (s *Session) Diagnostics() *types.DiagnosticReport { return s.report }

// ChangedOffsets lists the byte offsets where working differs from original.
func (s *Session) ChangedOffsets() []int { return format.Diff(s.original, s.working) }

// Info decodes the working block.
func (s *Session) Info() Info {
	info := Describe(s.working)
	info.DevicePath = s.devicePath
	return info
}

// Describe decodes the display-relevant fields of b.
func Describe(b format.Block) Info {
	info := Info{
		Version:       b[format.VersionOffset],
		Revision:      b[format.RevisionOffset],
		ChecksumValid: format.VerifyChecksum(b),
	}
	info.PixelH, info.PixelV = format.PixelSize(b)
	info.PhysicalHCm, info.PhysicalVCm = format.PhysicalSizeCm(b)
	info.ImageHMm, info.ImageVMm = format.ImageSizeMm(b)
	info.DiagonalInches = roundTenth(format.CmToInch(format.DiagonalSize(float64(info.PhysicalHCm), float64(info.PhysicalVCm))))
	return info
}

// DefaultRequest seeds an edit from the original block: its preferred mode
// resolution and its current diagonal.
func (s *Session) DefaultRequest() EditRequest {
	info := Describe(s.original)
	return EditRequest{
		DiagonalInches: info.DiagonalInches,
		HPixel:         info.PixelH,
		VPixel:         info.PixelV,
	}
}

func roundTenth(v float64) float64 { return math.Round(v*10) / 10 }

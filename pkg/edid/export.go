package edid

import (
	"strconv"
	"strings"

	"github.com/joshuapare/edidkit/internal/regtext"
	"github.com/joshuapare/edidkit/pkg/types"
)

const (
	overrideFileSuffix = "inch-edid_override.reg"
	removalFileSuffix  = "-edid_override_removal.reg"
)

// OverrideDocument renders the working block as an EDID_OVERRIDE .reg
// document for the session's device.
func (s *Session) OverrideDocument(opts ExportOptions) ([]byte, error) {
	if s == nil {
		return nil, types.ErrNoSession
	}
	return regtext.OverrideDocument(s.devicePath, s.working, opts)
}

// RemovalDocument renders a .reg document that deletes the override.
func (s *Session) RemovalDocument(opts ExportOptions) ([]byte, error) {
	if s == nil {
		return nil, types.ErrNoSession
	}
	return regtext.RemovalDocument(s.devicePath, opts)
}

// OverrideFileName suggests a file name for OverrideDocument, e.g.
// DISPLAY_DELA0B1_5&2d9c&0&UID4352-21.5inch-edid_override.reg.
func (s *Session) OverrideFileName() string {
	d := s.lastDiagonal
	if d == 0 {
		d = s.DefaultRequest().DiagonalInches
	}
	return fileSafe(s.devicePath) + "-" + strconv.FormatFloat(d, 'f', -1, 64) + overrideFileSuffix
}

// RemovalFileName suggests a file name for RemovalDocument.
func (s *Session) RemovalFileName() string {
	return fileSafe(s.devicePath) + removalFileSuffix
}

// fileSafe replaces the path separators of an instance path.
func fileSafe(devicePath string) string {
	return strings.NewReplacer(`\`, "_", "/", "_").Replace(devicePath)
}

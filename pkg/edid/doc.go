/*
Package edid edits the physical screen size recorded in a monitor's EDID and
produces the EDID_OVERRIDE registry documents that install or remove the
edited block.

# Quick Start

Load a `reg export` of a monitor's Enum key, change the diagonal and write
the override:

	s, err := edid.OpenFile("monitor.reg", edid.OpenOptions{})
	if err != nil {
	    log.Fatal(err)
	}
	if _, err := s.Apply(edid.EditRequest{DiagonalInches: 21.5, HPixel: 1920, VPixel: 1080}); err != nil {
	    log.Fatal(err)
	}
	doc, err := s.OverrideDocument(edid.ExportOptions{})

# Sessions

A Session owns two copies of block 0: the original read from the export and
the working copy produced by the last Apply. Every Apply starts again from
the original, so repeated edits never accumulate rounding. Accessors return
copies; nothing a caller holds aliases session state.

# Error Handling

Load failures wrap the sentinels in pkg/types and can be matched with
errors.Is:

	s, err := edid.Load(rec)
	switch {
	case errors.Is(err, types.ErrNotAContainer):
	case errors.Is(err, types.ErrPayloadMissing):
	case errors.Is(err, types.ErrBadSignature), errors.Is(err, types.ErrUnsupportedVersion):
	}

A checksum mismatch in the source block is not an error. It is reported by
ChecksumMismatch and in Diagnostics; the exported block always carries a
freshly computed checksum.
*/
package edid

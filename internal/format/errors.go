package format

import "errors"

var (
	// ErrSignatureMismatch indicates block 0 had an unexpected header.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a block.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnsupported indicates a version/revision pair the codec does not handle.
	ErrUnsupported = errors.New("format: unsupported version")
	// ErrDegenerate indicates a geometric calculation had no defined result.
	ErrDegenerate = errors.New("format: degenerate geometry")
)

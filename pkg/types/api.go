package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // malformed container or block signature
	ErrKindUnsupported                // recognized but unsupported EDID version/revision
	ErrKindNotFound                   // EDID payload missing from the container
	ErrKindDomain                     // request cannot be satisfied (e.g., zero pixel size)
	ErrKindState                      // invalid operation for current state
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindDomain:
		return "domain"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned (usually wrapped) by the loaders and codecs.
var (
	// ErrNotAContainer indicates the text lacks the .reg version 5.00 header.
	ErrNotAContainer = &Error{Kind: ErrKindFormat, Msg: "not a registry export (missing header)"}
	// ErrPayloadMissing indicates no "EDID"=hex: value was found under a
	// display's Device Parameters key.
	ErrPayloadMissing = &Error{Kind: ErrKindNotFound, Msg: "EDID not found in registry export"}
	// ErrBadSignature indicates block 0 does not start with 00 FF FF FF FF FF FF 00.
	ErrBadSignature = &Error{Kind: ErrKindFormat, Msg: "invalid EDID header"}
	// ErrUnsupportedVersion indicates a version/revision pair other than 1.3 or 1.4.
	ErrUnsupportedVersion = &Error{Kind: ErrKindUnsupported, Msg: "unsupported EDID version"}
	// ErrDegenerateGeometry indicates sizes cannot be derived from the request
	// (both pixel dimensions zero, negative inputs, or a non-finite diagonal).
	ErrDegenerateGeometry = &Error{Kind: ErrKindDomain, Msg: "cannot derive screen size"}
	// ErrNoSession indicates an operation that needs a loaded EDID was called without one.
	ErrNoSession = &Error{Kind: ErrKindState, Msg: "no EDID loaded"}
)

// KindOf reports the ErrKind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind, true
}

// Package types holds the shared vocabulary of edidkit: typed errors with
// stable categories and the diagnostic records produced while reading a
// registry export or checking an EDID block.
//
// Design goals:
//   - Fatal conditions are errors; recoverable ones are Diagnostics.
//   - Typed errors with stable categories (format/unsupported/not-found/...).
//   - Nothing in here performs I/O or user-facing notification.
//
// This package has no dependencies beyond the standard library.
package types

// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"fmt"
	"strings"
)

// CodingPath is a breadcrumb trail of string/index segments locating a
// position within a nested structure, attached to every error this
// package returns.
type CodingPath []string

func (p CodingPath) String() string {
	if len(p) == 0 {
		return "$"
	}
	return "$." + strings.Join(p, ".")
}

func (p CodingPath) extend(seg string) CodingPath {
	next := make(CodingPath, len(p), len(p)+1)
	copy(next, p)
	return append(next, seg)
}

// CorruptedError reports malformed CBOR: a truncated stream, an invalid
// opcode, an exceeded length or nesting limit, non-UTF-8 text, or an
// integer that does not fit its target width. A wrong tag number is
// reported as a TypeMismatchError instead.
type CorruptedError struct {
	Path CodingPath
	Msg  string
	Err  error
}

func (e *CorruptedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cbor: data corrupted at %s: %s: %v", e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("cbor: data corrupted at %s: %s", e.Path, e.Msg)
}

func (e *CorruptedError) Unwrap() error { return e.Err }

// TypeMismatchError reports that the wire type at Path does not match what
// the caller requested.
type TypeMismatchError struct {
	Path   CodingPath
	Target string
	Wire   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cbor: type mismatch at %s: expected %s, found %s", e.Path, e.Target, e.Wire)
}

// ValueNotFoundError reports that an unkeyed container was exhausted, or
// that the input held no top-level item. A missing key in a keyed container
// is reported as a KeyNotFoundError instead.
type ValueNotFoundError struct {
	Path   CodingPath
	Target string
}

func (e *ValueNotFoundError) Error() string {
	return fmt.Sprintf("cbor: value not found at %s: expected %s", e.Path, e.Target)
}

// KeyNotFoundError reports that a specific key was absent from a keyed
// container.
type KeyNotFoundError struct {
	Path CodingPath
	Key  string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("cbor: key not found at %s: %q", e.Path, e.Key)
}

// InvalidValueError reports an encode-side failure: the user emitted no
// value, or a numeric value cannot be represented in any supported width.
type InvalidValueError struct {
	Path CodingPath
	Msg  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("cbor: invalid value at %s: %s", e.Path, e.Msg)
}

// contractViolation is panicked (never returned as an error) by the
// deferred-map state machine when caller code attempts to reopen a
// keyed slot under an incompatible container kind. It signals a programmer
// error in the Encodable implementation, not a data error.
type contractViolation struct {
	msg string
}

func (c contractViolation) String() string { return c.msg }

// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"fmt"
	"io"
)

// DefaultMaxArrayLength bounds the number of elements the scanner will
// allocate for any single array, map, or string (a map's key-value pair
// counts as two), guarding against a malicious length prefix forcing a
// huge allocation before any payload bytes have even been read.
const DefaultMaxArrayLength = 100_000

// DefaultMaxNestingDepth bounds how deeply arrays, maps, and tags may
// nest before scanning aborts with a CorruptedError, guarding against
// malicious or accidental unbounded recursion.
const DefaultMaxNestingDepth = 64

// cursor is a single forward-only reader over an in-memory byte slice
// (the scanner holds the input by shared reference for the duration of
// one scan call-chain; no allocation outlives it).
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor { return &cursor{data: data} }

func (c *cursor) readByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, io.ErrUnexpectedEOF
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) readN(n int) ([]byte, error) {
	if c.pos+n > len(c.data) {
		return nil, io.ErrUnexpectedEOF
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) peekByte() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos], true
}

func (c *cursor) atEOF() bool { return c.pos >= len(c.data) }

// scanner consumes a byte stream and emits a typed tree of CBOR items
// A single cursor is shared across the whole call-chain of scan().
type scanner struct {
	c              *cursor
	maxArrayLength int
	maxDepth       int
	path           CodingPath
}

func newScanner(data []byte, maxArrayLength, maxDepth int) *scanner {
	if maxArrayLength <= 0 {
		maxArrayLength = DefaultMaxArrayLength
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxNestingDepth
	}
	return &scanner{c: newCursor(data), maxArrayLength: maxArrayLength, maxDepth: maxDepth}
}

func (s *scanner) corrupted(msg string) error {
	return &CorruptedError{Path: s.path, Msg: msg}
}

func (s *scanner) corruptedf(err error, format string, args ...any) error {
	return &CorruptedError{Path: s.path, Msg: fmt.Sprintf(format, args...), Err: err}
}

// scan reads exactly one top-level CBOR item. If the cursor is already at
// EOF, it returns a kindNone scannedValue representing end of input.
func (s *scanner) scan() (scannedValue, error) {
	if s.c.atEOF() {
		return scannedValue{kind: kindNone}, nil
	}
	return s.scanAt(0)
}

func (s *scanner) scanAt(depth int) (scannedValue, error) {
	if depth > s.maxDepth {
		return scannedValue{}, s.corrupted("exceeded maximum nesting depth")
	}

	h, err := readHead(s.c)
	if err != nil {
		return scannedValue{}, s.corruptedf(err, "reading item head")
	}

	switch h.major {
	case mtUnsignedInt:
		return s.scanInt(h, litUint)
	case mtNegativeInt:
		return s.scanInt(h, litNint)
	case mtByteString:
		return s.scanBytesLike(h, depth, litBin, mtByteString)
	case mtTextString:
		return s.scanBytesLike(h, depth, litStr, mtTextString)
	case mtArray:
		return s.scanArray(h, depth)
	case mtMap:
		return s.scanMap(h, depth)
	case mtTag:
		return s.scanTag(h, depth)
	case mtSimple:
		return s.scanSimple(h, depth)
	default:
		return scannedValue{}, s.corrupted("unreachable major type")
	}
}

func (s *scanner) scanInt(h head, lk literalKind) (scannedValue, error) {
	width := widthFromAI(h)
	return scannedValue{kind: kindLiteral, lit: lk, bytes: uintBytes(h.arg, width), width: width}, nil
}

// scanBytesLike implements the byte/text string rule: definite length
// reads n bytes directly; indefinite length scans a sequence of
// definite-length chunk items of the same major type, each honoring its
// own declared length, until a top-level Break - never by searching the
// payload for a literal 0xFF, which could false-match inside chunk data.
func (s *scanner) scanBytesLike(h head, depth int, lk literalKind, want majorType) (scannedValue, error) {
	if !h.indefinite {
		n := int(h.arg)
		if n < 0 || n >= s.maxArrayLength {
			return scannedValue{}, s.corrupted("string length exceeds maximum")
		}
		b, err := s.c.readN(n)
		if err != nil {
			return scannedValue{}, s.corruptedf(err, "reading string payload")
		}
		return scannedValue{kind: kindLiteral, lit: lk, bytes: append([]byte(nil), b...)}, nil
	}

	var out []byte
	for {
		ch, err := readHead(s.c)
		if err != nil {
			return scannedValue{}, s.corruptedf(err, "reading indefinite string chunk")
		}
		if ch.major == mtSimple && ch.ai == aiIndefinite {
			return scannedValue{kind: kindLiteral, lit: lk, bytes: out}, nil
		}
		if ch.major != want || ch.indefinite {
			return scannedValue{}, s.corrupted("indefinite string chunk has wrong major type")
		}
		n := int(ch.arg)
		if n < 0 || len(out)+n >= s.maxArrayLength {
			return scannedValue{}, s.corrupted("indefinite string exceeds maximum length")
		}
		chunk, err := s.c.readN(n)
		if err != nil {
			return scannedValue{}, s.corruptedf(err, "reading indefinite string chunk payload")
		}
		out = append(out, chunk...)
	}
}

func (s *scanner) scanArray(h head, depth int) (scannedValue, error) {
	if !h.indefinite {
		n := int(h.arg)
		if n < 0 || n >= s.maxArrayLength {
			return scannedValue{}, s.corrupted("array length exceeds maximum")
		}
		items := make([]scannedValue, 0, n)
		for i := 0; i < n; i++ {
			s.path = s.path.extend(fmt.Sprintf("[%d]", i))
			v, err := s.scanAt(depth + 1)
			s.path = s.path[:len(s.path)-1]
			if err != nil {
				return scannedValue{}, err
			}
			items = append(items, v)
		}
		return scannedValue{kind: kindArray, items: items}, nil
	}

	var items []scannedValue
	for i := 0; ; i++ {
		if b, ok := s.c.peekByte(); ok && majorType(b>>5) == mtSimple && (b&0x1f) == aiIndefinite {
			_, _ = s.c.readByte()
			return scannedValue{kind: kindArray, items: items}, nil
		}
		if len(items) >= s.maxArrayLength {
			return scannedValue{}, s.corrupted("indefinite array exceeds maximum length")
		}
		s.path = s.path.extend(fmt.Sprintf("[%d]", i))
		v, err := s.scanAt(depth + 1)
		s.path = s.path[:len(s.path)-1]
		if err != nil {
			return scannedValue{}, err
		}
		items = append(items, v)
	}
}

// scanMap implements the map rule: Break is only accepted in key position
// for indefinite-length maps. A Break encountered in value position is a
// CorruptedError, not a silently stored value.
func (s *scanner) scanMap(h head, depth int) (scannedValue, error) {
	if !h.indefinite {
		n := int(h.arg)
		if n < 0 || n >= s.maxArrayLength/2 {
			return scannedValue{}, s.corrupted("map length exceeds maximum")
		}
		items := make([]scannedValue, 0, 2*n)
		for i := 0; i < n; i++ {
			k, err := s.scanAt(depth + 1)
			if err != nil {
				return scannedValue{}, err
			}
			v, err := s.scanAt(depth + 1)
			if err != nil {
				return scannedValue{}, err
			}
			items = append(items, k, v)
		}
		return scannedValue{kind: kindMap, items: items}, nil
	}

	var items []scannedValue
	for {
		if b, ok := s.c.peekByte(); ok && majorType(b>>5) == mtSimple && (b&0x1f) == aiIndefinite {
			_, _ = s.c.readByte()
			return scannedValue{kind: kindMap, items: items}, nil
		}
		if len(items) >= s.maxArrayLength {
			return scannedValue{}, s.corrupted("indefinite map exceeds maximum length")
		}
		key, err := s.scanAt(depth + 1)
		if err != nil {
			return scannedValue{}, err
		}
		val, err := s.scanAt(depth + 1)
		if err != nil {
			return scannedValue{}, err
		}
		if val.kind == kindLiteral && val.lit == litBreak {
			return scannedValue{}, s.corrupted("unexpected break in map value position")
		}
		items = append(items, key, val)
	}
}

func (s *scanner) scanTag(h head, depth int) (scannedValue, error) {
	inner, err := s.scanAt(depth + 1)
	if err != nil {
		return scannedValue{}, err
	}
	return scannedValue{kind: kindTagged, tag: h.arg, tagValue: &inner}, nil
}

func (s *scanner) scanSimple(h head, depth int) (scannedValue, error) {
	if h.indefinite {
		return scannedValue{kind: kindLiteral, lit: litBreak}, nil
	}
	switch h.ai {
	case simpleFalse:
		return scannedValue{kind: kindLiteral, lit: litBool, boolean: false}, nil
	case simpleTrue:
		return scannedValue{kind: kindLiteral, lit: litBool, boolean: true}, nil
	case simpleNull, simpleUndef:
		return scannedValue{kind: kindLiteral, lit: litNil}, nil
	case simpleFloat16:
		return scannedValue{kind: kindLiteral, lit: litFloat16, bytes: uintBytes(h.arg, 2)}, nil
	case simpleFloat32:
		return scannedValue{kind: kindLiteral, lit: litFloat32, bytes: uintBytes(h.arg, 4)}, nil
	case simpleFloat64:
		return scannedValue{kind: kindLiteral, lit: litFloat64, bytes: uintBytes(h.arg, 8)}, nil
	default:
		// ai 0..19 and 24 are reserved/simple values; accepted as unsigned
		// integers.
		if h.ai <= ai1Byte {
			return scannedValue{kind: kindLiteral, lit: litUint, bytes: uintBytes(h.arg, 1), width: 1}, nil
		}
		return scannedValue{}, s.corrupted("reserved simple value")
	}
}

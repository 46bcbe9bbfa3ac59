// SPDX-License-Identifier: Apache-2.0

package cbor

// encodedKind discriminates the variants of encodedValue.
type encodedKind uint8

const (
	encNone encodedKind = iota
	encLiteral
	encArray
	encMap
	encTagged
)

// encodedValue is the intermediate input to the writer, distinct from
// scannedValue because by this point the encoder has already chosen the
// exact wire representation of every leaf.
type encodedValue struct {
	kind encodedKind

	bytes []byte // encLiteral: fully self-contained head+payload bytes

	items []encodedValue // encArray: elements; encMap: flattened k0,v0,...

	tagHead  []byte        // encTagged: head+payload of the tag number (major 6)
	tagValue *encodedValue // encTagged: the wrapped value
}

func literalValue(b []byte) encodedValue { return encodedValue{kind: encLiteral, bytes: b} }

// appendHead returns the minimal-width head encoding of (major, n): the
// smallest of inline (n<=23), 1-byte, 2-byte, 4-byte, or 8-byte argument
// forms. It is total over all uint64 values - there is no unreachable
// branch.
func appendHead(m majorType, n uint64) []byte {
	top := byte(m) << 5
	switch {
	case n <= 23:
		return []byte{top | byte(n)}
	case n <= 0xff:
		return []byte{top | ai1Byte, byte(n)}
	case n <= 0xffff:
		return append([]byte{top | ai2Bytes}, uintBytes(n, 2)...)
	case n <= 0xffffffff:
		return append([]byte{top | ai4Bytes}, uintBytes(n, 4)...)
	default:
		return append([]byte{top | ai8Bytes}, uintBytes(n, 8)...)
	}
}

// appendIndefiniteHead returns the head byte for an indefinite-length
// container opener. The writer never produces these and nothing in the
// package calls it; it documents the wire form the scanner accepts.
func appendIndefiniteHead(m majorType) []byte {
	return []byte{byte(m)<<5 | aiIndefinite}
}

func breakByte() byte { return byte(mtSimple)<<5 | simpleBreak }

// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"math"
	"math/bits"
)

// valueKind discriminates the variants of scannedValue.
type valueKind uint8

const (
	kindNone valueKind = iota
	kindLiteral
	kindArray
	kindMap
	kindTagged
)

// literalKind discriminates the Literal(LitKind) payload of a scannedValue.
type literalKind uint8

const (
	litNil literalKind = iota
	litBreak
	litBool
	litUint
	litNint
	litFloat16
	litFloat32
	litFloat64
	litStr
	litBin
)

func (k literalKind) String() string {
	switch k {
	case litNil:
		return "null"
	case litBreak:
		return "break"
	case litBool:
		return "bool"
	case litUint:
		return "unsigned int"
	case litNint:
		return "negative int"
	case litFloat16, litFloat32, litFloat64:
		return "float"
	case litStr:
		return "text string"
	case litBin:
		return "byte string"
	default:
		return "unknown"
	}
}

// scannedValue is the intermediate output of the scanner. It is a closed
// sum type rendered as a single struct with a kind discriminant, the
// idiomatic Go shape for a tagged union.
type scannedValue struct {
	kind valueKind

	// Literal payload.
	lit     literalKind
	boolean bool
	bytes   []byte // big-endian argument (UInt/NInt), or raw payload (Str/Bin/Float)
	width   int    // 1, 2, 4, or 8 for UInt/NInt

	// Array/Map payload: flattened k0,v0,k1,v1,... for Map.
	items []scannedValue

	// Tagged payload.
	tag      uint64
	tagValue *scannedValue
}

func (v scannedValue) kindName() string {
	switch v.kind {
	case kindNone:
		return "none"
	case kindLiteral:
		return v.lit.String()
	case kindArray:
		return "array"
	case kindMap:
		return "map"
	case kindTagged:
		return "tag"
	default:
		return "unknown"
	}
}

func uintBytes(v uint64, width int) []byte {
	b := make([]byte, width)
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		b[0], b[1] = byte(v>>8), byte(v)
	case 4:
		b[0], b[1], b[2], b[3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
	case 8:
		for i := 7; i >= 0; i-- {
			b[i] = byte(v)
			v >>= 8
		}
	}
	return b
}

func bytesToUint(b []byte) uint64 { return be64(leftPad(b, 8)) }

func leftPad(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}
	p := make([]byte, n-len(b), n)
	return append(p, b...)
}

func widthFromAI(head head) int {
	switch head.ai {
	case ai2Bytes:
		return 2
	case ai4Bytes:
		return 4
	case ai8Bytes:
		return 8
	default:
		return 1 // inline (ai < 24) or 1-byte form (ai == 24)
	}
}

// float16ToFloat32 converts an IEEE 754 binary16 bit pattern to float32,
// preserving NaN payloads and infinities exactly.
func float16ToFloat32(h uint16) float32 {
	sign := uint32(h>>15) & 0x1
	exp := uint32(h>>10) & 0x1f
	mant := uint32(h) & 0x3ff

	var bits32 uint32
	switch exp {
	case 0:
		if mant == 0 {
			bits32 = sign << 31
		} else {
			// Subnormal half -> normalize into a float32.
			shift := uint32(bits.LeadingZeros32(mant) - 21)
			mant = (mant << shift) & 0x3ff
			bits32 = (sign << 31) | ((127 - 15 - shift + 1) << 23) | (mant << 13)
		}
	case 0x1f:
		bits32 = (sign << 31) | (0xff << 23) | (mant << 13)
	default:
		bits32 = (sign << 31) | ((exp - 15 + 127) << 23) | (mant << 13)
	}
	return math.Float32frombits(bits32)
}

// float32ToFloat16 converts f to its nearest IEEE 754 binary16 bit pattern.
// Nothing in the package calls it; the encoder never narrows float width
// on its own.
func float32ToFloat16(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & 0x8000
	exp := int32(b>>23) & 0xff
	mant := b & 0x7fffff

	switch {
	case exp == 0xff:
		if mant != 0 {
			return sign | 0x7c00 | uint16(mant>>13) | 1
		}
		return sign | 0x7c00
	case exp-127+15 >= 0x1f:
		return sign | 0x7c00
	case exp-127+15 <= 0:
		return sign
	default:
		return sign | uint16(exp-127+15)<<10 | uint16(mant>>13)
	}
}

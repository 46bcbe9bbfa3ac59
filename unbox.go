// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"math"
	"unicode/utf8"
)

// unboxUint converts a litUint literal's wire argument to a uint64. It is
// the identity conversion: the wire argument of an unsigned int item IS
// the represented value.
func unboxUint(v scannedValue) uint64 { return bytesToUint(v.bytes) }

// unboxNint converts a litNint literal's wire argument n to the signed
// value it represents: -1-n.
//
// The result is returned as the bit pattern of -1-n in two's complement,
// so that truncating it to a narrower signed width and reinterpreting the
// bits reproduces the bitwise-complement identity exactly: for any width
// W, decoding yields v = ^n truncated to W bits.
func unboxNint(v scannedValue) uint64 { return ^bytesToUint(v.bytes) }

// truncateSigned truncates bits to width bytes (1, 2, 4, or 8) and sign
// extends back to a full int64, the usual two's-complement approach to
// integer narrowing/widening.
func truncateSigned(bitsVal uint64, width int) int64 {
	switch width {
	case 1:
		return int64(int8(bitsVal))
	case 2:
		return int64(int16(bitsVal))
	case 4:
		return int64(int32(bitsVal))
	default:
		return int64(bitsVal)
	}
}

func truncateUnsigned(bitsVal uint64, width int) uint64 {
	switch width {
	case 1:
		return uint64(uint8(bitsVal))
	case 2:
		return uint64(uint16(bitsVal))
	case 4:
		return uint64(uint32(bitsVal))
	default:
		return bitsVal
	}
}

// fitsUnsigned reports whether u64 can be represented in an unsigned
// integer of the given width without loss.
func fitsUnsigned(u64 uint64, width int) bool {
	switch width {
	case 1:
		return u64 <= math.MaxUint8
	case 2:
		return u64 <= math.MaxUint16
	case 4:
		return u64 <= math.MaxUint32
	default:
		return true
	}
}

// fitsSigned reports whether the wire-represented unsigned magnitude u64
// (from a positive major-0 item) fits in a signed integer of the given
// width.
func fitsSigned(u64 uint64, width int) bool {
	switch width {
	case 1:
		return u64 <= math.MaxInt8
	case 2:
		return u64 <= math.MaxInt16
	case 4:
		return u64 <= math.MaxInt32
	default:
		return u64 <= math.MaxInt64
	}
}

// fitsNegative reports whether the wire argument n of a major-1 item
// (representing -1-n) fits in a signed integer of the given width.
func fitsNegative(n uint64, width int) bool {
	switch width {
	case 1:
		return n <= -(math.MinInt8 + 1)
	case 2:
		return n <= -(math.MinInt16 + 1)
	case 4:
		return n <= -(math.MinInt32 + 1)
	default:
		return n <= math.MaxInt64 // -1-n must stay within int64's range
	}
}

// unboxFloat up-converts any of the three float widths to float64,
// preserving bit-exact NaN payloads and infinities.
func unboxFloat(v scannedValue) float64 {
	switch v.lit {
	case litFloat16:
		return float64(float16ToFloat32(uint16(bytesToUint(v.bytes))))
	case litFloat32:
		return float64(math.Float32frombits(uint32(bytesToUint(v.bytes))))
	case litFloat64:
		return math.Float64frombits(bytesToUint(v.bytes))
	default:
		return 0
	}
}

func unboxFloat32(v scannedValue) float32 {
	switch v.lit {
	case litFloat16:
		return float16ToFloat32(uint16(bytesToUint(v.bytes)))
	case litFloat32:
		return math.Float32frombits(uint32(bytesToUint(v.bytes)))
	default:
		return float32(unboxFloat(v))
	}
}

// unboxString validates that bytes are well-formed UTF-8: Str payloads
// must be valid UTF-8, and a violation surfaces as a decode-time
// CorruptedError rather than a scan-time one.
func unboxString(v scannedValue) (string, bool) {
	if !utf8.Valid(v.bytes) {
		return "", false
	}
	return string(v.bytes), true
}

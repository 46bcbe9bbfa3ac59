// SPDX-License-Identifier: Apache-2.0

package cbor

import "fmt"

// majorType is the high 3 bits of a CBOR head byte.
type majorType byte

const (
	mtUnsignedInt majorType = 0
	mtNegativeInt majorType = 1
	mtByteString  majorType = 2
	mtTextString  majorType = 3
	mtArray       majorType = 4
	mtMap         majorType = 5
	mtTag         majorType = 6
	mtSimple      majorType = 7
)

func (m majorType) String() string {
	switch m {
	case mtUnsignedInt:
		return "unsigned int"
	case mtNegativeInt:
		return "negative int"
	case mtByteString:
		return "byte string"
	case mtTextString:
		return "text string"
	case mtArray:
		return "array"
	case mtMap:
		return "map"
	case mtTag:
		return "tag"
	case mtSimple:
		return "simple/float"
	default:
		return "unknown major type"
	}
}

// Additional-information markers (low 5 bits of the head byte).
const (
	ai1Byte      byte = 24
	ai2Bytes     byte = 25
	ai4Bytes     byte = 26
	ai8Bytes     byte = 27
	aiIndefinite byte = 31
)

// Well-known simple values on major type 7.
const (
	simpleFalse   byte = 20
	simpleTrue    byte = 21
	simpleNull    byte = 22
	simpleUndef   byte = 23
	simpleFloat16 byte = 25
	simpleFloat32 byte = 26
	simpleFloat64 byte = 27
	simpleBreak   byte = 31
)

// head is the decoded initial byte of a CBOR item, plus the argument it
// carries. For ai <= 23 the argument is ai itself; for ai in
// {24,25,26,27} the argument is read from 1/2/4/8 following bytes; for
// ai == 31 the item is either an indefinite-length container/string opener
// or (on major type 7) the break sentinel.
type head struct {
	major      majorType
	ai         byte
	arg        uint64
	indefinite bool
}

// readHead reads one head (and, if ai indicates, its following argument
// bytes) from c.
func readHead(c *cursor) (head, error) {
	b, err := c.readByte()
	if err != nil {
		return head{}, err
	}
	m := majorType(b >> 5)
	ai := b & 0x1f

	switch {
	case ai < ai1Byte:
		return head{major: m, ai: ai, arg: uint64(ai)}, nil
	case ai == ai1Byte:
		v, err := c.readN(1)
		if err != nil {
			return head{}, err
		}
		return head{major: m, ai: ai, arg: uint64(v[0])}, nil
	case ai == ai2Bytes:
		v, err := c.readN(2)
		if err != nil {
			return head{}, err
		}
		return head{major: m, ai: ai, arg: uint64(be16(v))}, nil
	case ai == ai4Bytes:
		v, err := c.readN(4)
		if err != nil {
			return head{}, err
		}
		return head{major: m, ai: ai, arg: uint64(be32(v))}, nil
	case ai == ai8Bytes:
		v, err := c.readN(8)
		if err != nil {
			return head{}, err
		}
		return head{major: m, ai: ai, arg: be64(v)}, nil
	case ai == aiIndefinite:
		return head{major: m, ai: ai, indefinite: true}, nil
	default:
		return head{}, fmt.Errorf("cbor: reserved additional information %d", ai)
	}
}

func be16(b []byte) uint16 { return uint16(b[0])<<8 | uint16(b[1]) }
func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
func be64(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"bytes"
	"fmt"
	"math"
)

// EncoderOption configures an Encoder at construction time.
type EncoderOption func(*encoderOptions)

type encoderOptions struct{}

// Encoder builds CBOR bytes from a top-level Encodable value.
type Encoder struct {
	opts encoderOptions
}

// NewEncoder returns a new Encoder.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e
}

// Encode serializes v to CBOR bytes.
func (e *Encoder) Encode(v Encodable) ([]byte, error) {
	result, err := encodeNested(nil, v)
	if err != nil {
		return nil, err
	}
	if result.kind == encNone {
		return nil, &InvalidValueError{Msg: "value encoded nothing"}
	}
	var buf bytes.Buffer
	if err := writeValue(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeNested spawns a sub-encoder, runs the user's EncodeCBOR, harvests
// its value, and wraps it in a CBOR tag if v also implements TaggedValue.
// It is shared by the top-level Encoder and by every container
// method that encodes a nested Encodable.
func encodeNested(path CodingPath, v Encodable) (encodedValue, error) {
	ve := &ValueEncoder{path: path}
	if err := v.EncodeCBOR(ve); err != nil {
		return encodedValue{}, err
	}
	result := ve.finalize()
	if tv, ok := v.(TaggedValue); ok {
		tagHead := appendHead(mtTag, tv.Tag())
		inner := result
		result = encodedValue{kind: encTagged, tagHead: tagHead, tagValue: &inner}
	}
	return result, nil
}

// ValueEncoder is the context handed to Encodable.EncodeCBOR. Exactly
// one of its three container factories should be used to produce a value.
// If more than one is used, a single value takes precedence over a keyed
// container, and a keyed container over an unkeyed one, regardless of call
// order; setting a single value after a keyed or unkeyed container was
// requested panics with a contractViolation.
type ValueEncoder struct {
	path CodingPath

	single     *encodedValue
	arr        *deferredArray
	mp         *deferredMap
	dictionary bool
}

// SingleValueContainer returns a container for encoding exactly one
// primitive or user Encodable value.
func (ve *ValueEncoder) SingleValueContainer() *SingleValueEncodingContainer {
	return &SingleValueEncodingContainer{ve: ve}
}

// KeyedContainer returns a container for encoding named fields into a CBOR
// map.
func (ve *ValueEncoder) KeyedContainer() *KeyedEncodingContainer {
	if ve.mp == nil {
		ve.mp = newDeferredMap()
	}
	return &KeyedEncodingContainer{path: ve.path, mp: ve.mp}
}

// UnkeyedContainer returns a container for encoding an ordered sequence
// into a CBOR array.
func (ve *ValueEncoder) UnkeyedContainer() *UnkeyedEncodingContainer {
	if ve.arr == nil {
		ve.arr = &deferredArray{}
	}
	return &UnkeyedEncodingContainer{path: ve.path, arr: ve.arr}
}

// markDictionary flags that an array produced via UnkeyedContainer should
// be reinterpreted as a flattened CBOR map of alternating key/value items
// at finalization, used by the generic Map type (dictionary.go), whose
// keys keep their native CBOR type instead of going through Key.
func (ve *ValueEncoder) markDictionary() { ve.dictionary = true }

func (ve *ValueEncoder) finalize() encodedValue {
	switch {
	case ve.single != nil:
		return *ve.single
	case ve.mp != nil:
		return ve.mp.finalize()
	case ve.arr != nil:
		v := ve.arr.finalize()
		if ve.dictionary {
			return asDictionaryMap(v)
		}
		return v
	default:
		return encodedValue{kind: encNone}
	}
}

// asDictionaryMap reinterprets an encArray of flattened key/value items as
// an encMap, per the dictionary marker rule. An odd item count (a
// malformed Dictionary implementation) degrades to an empty map rather
// than corrupting the stream.
func asDictionaryMap(v encodedValue) encodedValue {
	if v.kind != encArray {
		return v
	}
	if len(v.items)%2 != 0 {
		return encodedValue{kind: encMap}
	}
	return encodedValue{kind: encMap, items: v.items}
}

func (ve *ValueEncoder) setSingle(v encodedValue) {
	if ve.mp != nil || ve.arr != nil {
		panic(contractViolation{msg: "cbor: encoder already requested a keyed or unkeyed container"})
	}
	ve.single = &v
}

// SingleValueEncodingContainer encodes exactly one item.
type SingleValueEncodingContainer struct{ ve *ValueEncoder }

func (c *SingleValueEncodingContainer) EncodeNil() {
	c.ve.setSingle(literalValue([]byte{byte(mtSimple)<<5 | simpleNull}))
}

func (c *SingleValueEncodingContainer) EncodeBool(v bool) {
	b := byte(simpleFalse)
	if v {
		b = simpleTrue
	}
	c.ve.setSingle(literalValue([]byte{byte(mtSimple)<<5 | b}))
}

func (c *SingleValueEncodingContainer) encodeSigned(v int64) {
	if v >= 0 {
		c.ve.setSingle(literalValue(appendHead(mtUnsignedInt, uint64(v))))
		return
	}
	abs := uint64(-v)
	c.ve.setSingle(literalValue(appendHead(mtNegativeInt, abs-1)))
}

func (c *SingleValueEncodingContainer) EncodeInt(v int)     { c.encodeSigned(int64(v)) }
func (c *SingleValueEncodingContainer) EncodeInt8(v int8)   { c.encodeSigned(int64(v)) }
func (c *SingleValueEncodingContainer) EncodeInt16(v int16) { c.encodeSigned(int64(v)) }
func (c *SingleValueEncodingContainer) EncodeInt32(v int32) { c.encodeSigned(int64(v)) }
func (c *SingleValueEncodingContainer) EncodeInt64(v int64) { c.encodeSigned(v) }

func (c *SingleValueEncodingContainer) encodeUnsigned(v uint64) {
	c.ve.setSingle(literalValue(appendHead(mtUnsignedInt, v)))
}

func (c *SingleValueEncodingContainer) EncodeUint(v uint)     { c.encodeUnsigned(uint64(v)) }
func (c *SingleValueEncodingContainer) EncodeUint8(v uint8)   { c.encodeUnsigned(uint64(v)) }
func (c *SingleValueEncodingContainer) EncodeUint16(v uint16) { c.encodeUnsigned(uint64(v)) }
func (c *SingleValueEncodingContainer) EncodeUint32(v uint32) { c.encodeUnsigned(uint64(v)) }
func (c *SingleValueEncodingContainer) EncodeUint64(v uint64) { c.encodeUnsigned(v) }

func (c *SingleValueEncodingContainer) EncodeFloat32(v float32) {
	c.ve.setSingle(literalValue(append([]byte{byte(mtSimple)<<5 | simpleFloat32},
		uintBytes(uint64(math.Float32bits(v)), 4)...)))
}

func (c *SingleValueEncodingContainer) EncodeFloat64(v float64) {
	c.ve.setSingle(literalValue(append([]byte{byte(mtSimple)<<5 | simpleFloat64},
		uintBytes(math.Float64bits(v), 8)...)))
}

func (c *SingleValueEncodingContainer) EncodeString(v string) {
	b := []byte(v)
	c.ve.setSingle(literalValue(append(appendHead(mtTextString, uint64(len(b))), b...)))
}

func (c *SingleValueEncodingContainer) EncodeBytes(v []byte) {
	c.ve.setSingle(literalValue(append(appendHead(mtByteString, uint64(len(v))), v...)))
}

// EncodeValue encodes a nested user Encodable value.
func (c *SingleValueEncodingContainer) EncodeValue(v Encodable) error {
	val, err := encodeNested(c.ve.path, v)
	if err != nil {
		return err
	}
	c.ve.setSingle(val)
	return nil
}

// KeyedEncodingContainer encodes named fields into a CBOR map, preserving
// first-insertion order.
type KeyedEncodingContainer struct {
	path CodingPath
	mp   *deferredMap
}

func (c *KeyedEncodingContainer) child(key Key) CodingPath { return c.path.extend(key.StringValue()) }

func (c *KeyedEncodingContainer) EncodeNil(key Key) {
	c.mp.set(key.StringValue(), literalValue([]byte{byte(mtSimple)<<5 | simpleNull}))
}

func (c *KeyedEncodingContainer) EncodeBool(key Key, v bool) {
	b := byte(simpleFalse)
	if v {
		b = simpleTrue
	}
	c.mp.set(key.StringValue(), literalValue([]byte{byte(mtSimple)<<5 | b}))
}

func (c *KeyedEncodingContainer) encodeSigned(key Key, v int64) {
	if v >= 0 {
		c.mp.set(key.StringValue(), literalValue(appendHead(mtUnsignedInt, uint64(v))))
		return
	}
	abs := uint64(-v)
	c.mp.set(key.StringValue(), literalValue(appendHead(mtNegativeInt, abs-1)))
}

func (c *KeyedEncodingContainer) EncodeInt(key Key, v int)     { c.encodeSigned(key, int64(v)) }
func (c *KeyedEncodingContainer) EncodeInt8(key Key, v int8)   { c.encodeSigned(key, int64(v)) }
func (c *KeyedEncodingContainer) EncodeInt16(key Key, v int16) { c.encodeSigned(key, int64(v)) }
func (c *KeyedEncodingContainer) EncodeInt32(key Key, v int32) { c.encodeSigned(key, int64(v)) }
func (c *KeyedEncodingContainer) EncodeInt64(key Key, v int64) { c.encodeSigned(key, v) }

func (c *KeyedEncodingContainer) encodeUnsigned(key Key, v uint64) {
	c.mp.set(key.StringValue(), literalValue(appendHead(mtUnsignedInt, v)))
}

func (c *KeyedEncodingContainer) EncodeUint(key Key, v uint)     { c.encodeUnsigned(key, uint64(v)) }
func (c *KeyedEncodingContainer) EncodeUint8(key Key, v uint8)   { c.encodeUnsigned(key, uint64(v)) }
func (c *KeyedEncodingContainer) EncodeUint16(key Key, v uint16) { c.encodeUnsigned(key, uint64(v)) }
func (c *KeyedEncodingContainer) EncodeUint32(key Key, v uint32) { c.encodeUnsigned(key, uint64(v)) }
func (c *KeyedEncodingContainer) EncodeUint64(key Key, v uint64) { c.encodeUnsigned(key, v) }

func (c *KeyedEncodingContainer) EncodeFloat32(key Key, v float32) {
	c.mp.set(key.StringValue(), literalValue(append([]byte{byte(mtSimple)<<5 | simpleFloat32},
		uintBytes(uint64(math.Float32bits(v)), 4)...)))
}

func (c *KeyedEncodingContainer) EncodeFloat64(key Key, v float64) {
	c.mp.set(key.StringValue(), literalValue(append([]byte{byte(mtSimple)<<5 | simpleFloat64},
		uintBytes(math.Float64bits(v), 8)...)))
}

func (c *KeyedEncodingContainer) EncodeString(key Key, v string) {
	b := []byte(v)
	c.mp.set(key.StringValue(), literalValue(append(appendHead(mtTextString, uint64(len(b))), b...)))
}

func (c *KeyedEncodingContainer) EncodeBytes(key Key, v []byte) {
	c.mp.set(key.StringValue(), literalValue(append(appendHead(mtByteString, uint64(len(v))), v...)))
}

// EncodeValue encodes v, a nested user Encodable, into key. It always
// writes the key; callers wanting a nil pointer-shaped value written as
// CBOR null (as Person.EncodeCBOR does for its optional Address) must
// check for nil themselves and call EncodeNil instead.
func (c *KeyedEncodingContainer) EncodeValue(key Key, v Encodable) error {
	val, err := encodeNested(c.child(key), v)
	if err != nil {
		return fmt.Errorf("cbor: encoding key %q: %w", key.StringValue(), err)
	}
	c.mp.set(key.StringValue(), val)
	return nil
}

// NestedKeyedContainer opens a nested map-valued field.
func (c *KeyedEncodingContainer) NestedKeyedContainer(key Key) *KeyedEncodingContainer {
	return &KeyedEncodingContainer{path: c.child(key), mp: c.mp.openMap(key.StringValue())}
}

// NestedUnkeyedContainer opens a nested array-valued field.
func (c *KeyedEncodingContainer) NestedUnkeyedContainer(key Key) *UnkeyedEncodingContainer {
	return &UnkeyedEncodingContainer{path: c.child(key), arr: c.mp.openArray(key.StringValue())}
}

// SuperEncoder allocates the "super" slot.
func (c *KeyedEncodingContainer) SuperEncoder() *ValueEncoder { return c.SuperEncoderFor(SuperKey) }

// SuperEncoderFor allocates a slot keyed by key, for an explicit
// inheritance-chain key other than the default "super".
func (c *KeyedEncodingContainer) SuperEncoderFor(key Key) *ValueEncoder {
	ve := c.mp.openEncoder(key.StringValue())
	ve.path = c.child(key)
	return ve
}

// UnkeyedEncodingContainer encodes an ordered sequence into a CBOR array.
type UnkeyedEncodingContainer struct {
	path CodingPath
	arr  *deferredArray
}

func (c *UnkeyedEncodingContainer) next() CodingPath {
	return c.path.extend(fmt.Sprintf("[%d]", len(c.arr.items)))
}

func (c *UnkeyedEncodingContainer) EncodeNil() {
	c.arr.appendValue(literalValue([]byte{byte(mtSimple)<<5 | simpleNull}))
}

func (c *UnkeyedEncodingContainer) EncodeBool(v bool) {
	b := byte(simpleFalse)
	if v {
		b = simpleTrue
	}
	c.arr.appendValue(literalValue([]byte{byte(mtSimple)<<5 | b}))
}

func (c *UnkeyedEncodingContainer) encodeSigned(v int64) {
	if v >= 0 {
		c.arr.appendValue(literalValue(appendHead(mtUnsignedInt, uint64(v))))
		return
	}
	abs := uint64(-v)
	c.arr.appendValue(literalValue(appendHead(mtNegativeInt, abs-1)))
}

func (c *UnkeyedEncodingContainer) EncodeInt(v int)     { c.encodeSigned(int64(v)) }
func (c *UnkeyedEncodingContainer) EncodeInt8(v int8)   { c.encodeSigned(int64(v)) }
func (c *UnkeyedEncodingContainer) EncodeInt16(v int16) { c.encodeSigned(int64(v)) }
func (c *UnkeyedEncodingContainer) EncodeInt32(v int32) { c.encodeSigned(int64(v)) }
func (c *UnkeyedEncodingContainer) EncodeInt64(v int64) { c.encodeSigned(v) }

func (c *UnkeyedEncodingContainer) encodeUnsigned(v uint64) {
	c.arr.appendValue(literalValue(appendHead(mtUnsignedInt, v)))
}

func (c *UnkeyedEncodingContainer) EncodeUint(v uint)     { c.encodeUnsigned(uint64(v)) }
func (c *UnkeyedEncodingContainer) EncodeUint8(v uint8)   { c.encodeUnsigned(uint64(v)) }
func (c *UnkeyedEncodingContainer) EncodeUint16(v uint16) { c.encodeUnsigned(uint64(v)) }
func (c *UnkeyedEncodingContainer) EncodeUint32(v uint32) { c.encodeUnsigned(uint64(v)) }
func (c *UnkeyedEncodingContainer) EncodeUint64(v uint64) { c.encodeUnsigned(v) }

func (c *UnkeyedEncodingContainer) EncodeFloat32(v float32) {
	c.arr.appendValue(literalValue(append([]byte{byte(mtSimple)<<5 | simpleFloat32},
		uintBytes(uint64(math.Float32bits(v)), 4)...)))
}

func (c *UnkeyedEncodingContainer) EncodeFloat64(v float64) {
	c.arr.appendValue(literalValue(append([]byte{byte(mtSimple)<<5 | simpleFloat64},
		uintBytes(math.Float64bits(v), 8)...)))
}

func (c *UnkeyedEncodingContainer) EncodeString(v string) {
	b := []byte(v)
	c.arr.appendValue(literalValue(append(appendHead(mtTextString, uint64(len(b))), b...)))
}

func (c *UnkeyedEncodingContainer) EncodeBytes(v []byte) {
	c.arr.appendValue(literalValue(append(appendHead(mtByteString, uint64(len(v))), v...)))
}

// EncodeValue encodes a nested user Encodable value as the next element.
func (c *UnkeyedEncodingContainer) EncodeValue(v Encodable) error {
	path := c.next()
	val, err := encodeNested(path, v)
	if err != nil {
		return err
	}
	c.arr.appendValue(val)
	return nil
}

// NestedKeyedContainer opens a nested map as the next element.
func (c *UnkeyedEncodingContainer) NestedKeyedContainer() *KeyedEncodingContainer {
	return &KeyedEncodingContainer{path: c.next(), mp: c.arr.openMap()}
}

// NestedUnkeyedContainer opens a nested array as the next element.
func (c *UnkeyedEncodingContainer) NestedUnkeyedContainer() *UnkeyedEncodingContainer {
	return &UnkeyedEncodingContainer{path: c.next(), arr: c.arr.openArray()}
}

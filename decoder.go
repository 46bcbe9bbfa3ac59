// SPDX-License-Identifier: Apache-2.0

package cbor

import "fmt"

// DecoderOption configures a Decoder at construction time.
type DecoderOption func(*decoderOptions)

type decoderOptions struct {
	maxArrayLength int
	maxDepth       int
}

// WithMaxArrayLength overrides DefaultMaxArrayLength for one Decoder.
func WithMaxArrayLength(n int) DecoderOption {
	return func(o *decoderOptions) { o.maxArrayLength = n }
}

// WithMaxNestingDepth overrides DefaultMaxNestingDepth for one Decoder.
func WithMaxNestingDepth(n int) DecoderOption {
	return func(o *decoderOptions) { o.maxDepth = n }
}

// Decoder scans CBOR bytes into a typed intermediate tree, then drives a
// Decodable's DecodeCBOR against a ValueDecoder view of it.
type Decoder struct {
	opts decoderOptions
}

// NewDecoder returns a new Decoder.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// Decode scans data and initializes v from it.
func (d *Decoder) Decode(data []byte, v Decodable) error {
	s := newScanner(data, d.opts.maxArrayLength, d.opts.maxDepth)
	sv, err := s.scan()
	if err != nil {
		return err
	}
	if sv.kind == kindNone {
		return &ValueNotFoundError{Target: "top-level value"}
	}
	return decodeNested(nil, sv, v)
}

// decodeNested builds a ValueDecoder over sv and drives v's DecodeCBOR. If v
// also implements TaggedValue, sv must be a CBOR tag item whose tag number
// equals Tag(), and the inner tagged value is what the ValueDecoder exposes
// the mirror image of encodeNested's wrapping.
//
// A tagged item handed to a Decodable that does NOT implement TaggedValue is
// unwrapped transparently: the caller asked for no tag checking, so the
// inner value is exposed directly rather than surfacing the tag as a type
// mismatch.
func decodeNested(path CodingPath, sv scannedValue, v Decodable) error {
	actual := sv
	if tv, ok := v.(TaggedValue); ok {
		if sv.kind != kindTagged {
			return &TypeMismatchError{Path: path, Target: fmt.Sprintf("tag %d", tv.Tag()), Wire: sv.kindName()}
		}
		if sv.tag != tv.Tag() {
			return &TypeMismatchError{Path: path, Target: fmt.Sprintf("tag %d", tv.Tag()), Wire: fmt.Sprintf("tag %d", sv.tag)}
		}
		actual = *sv.tagValue
	} else if sv.kind == kindTagged {
		actual = *sv.tagValue
	}
	vd := &ValueDecoder{path: path, value: actual}
	return v.DecodeCBOR(vd)
}

// ValueDecoder is the context handed to Decodable.DecodeCBOR. Exactly
// one of its three container factories should be used, matching whichever
// shape the corresponding EncodeCBOR produced.
type ValueDecoder struct {
	path  CodingPath
	value scannedValue
}

// SingleValueContainer returns a container for decoding exactly one
// primitive or user Decodable value.
func (vd *ValueDecoder) SingleValueContainer() *SingleValueDecodingContainer {
	return &SingleValueDecodingContainer{path: vd.path, value: vd.value}
}

// KeyedContainer returns a container for decoding named fields out of a
// CBOR map. It fails with a TypeMismatchError if the underlying item is not
// a map.
func (vd *ValueDecoder) KeyedContainer() (*KeyedDecodingContainer, error) {
	if vd.value.kind != kindMap {
		return nil, &TypeMismatchError{Path: vd.path, Target: "map", Wire: vd.value.kindName()}
	}
	return newKeyedDecodingContainer(vd.path, vd.value.items)
}

// UnkeyedContainer returns a container for decoding an ordered sequence out
// of a CBOR array. It fails with a TypeMismatchError if the underlying item
// is not an array.
func (vd *ValueDecoder) UnkeyedContainer() (*UnkeyedDecodingContainer, error) {
	if vd.value.kind != kindArray {
		return nil, &TypeMismatchError{Path: vd.path, Target: "array", Wire: vd.value.kindName()}
	}
	return &UnkeyedDecodingContainer{path: vd.path, items: vd.value.items}, nil
}

// dictionaryItems exposes a CBOR map's flattened k0,v0,k1,v1,... items as
// a plain slice, for the generic Map[K,V] type (dictionary.go), which reads
// arbitrary-typed keys rather than the string keys a KeyedDecodingContainer
// expects.
func (vd *ValueDecoder) dictionaryItems() ([]scannedValue, error) {
	if vd.value.kind != kindMap {
		return nil, &TypeMismatchError{Path: vd.path, Target: "map", Wire: vd.value.kindName()}
	}
	return vd.value.items, nil
}

func requireLiteral(path CodingPath, sv scannedValue, target string) error {
	if sv.kind != kindLiteral {
		return &TypeMismatchError{Path: path, Target: target, Wire: sv.kindName()}
	}
	return nil
}

func decodeBoolValue(path CodingPath, sv scannedValue) (bool, error) {
	if err := requireLiteral(path, sv, "bool"); err != nil {
		return false, err
	}
	if sv.lit != litBool {
		return false, &TypeMismatchError{Path: path, Target: "bool", Wire: sv.lit.String()}
	}
	return sv.boolean, nil
}

func decodeSignedWidth(path CodingPath, sv scannedValue, width int) (int64, error) {
	if err := requireLiteral(path, sv, "integer"); err != nil {
		return 0, err
	}
	switch sv.lit {
	case litUint:
		u := unboxUint(sv)
		if !fitsSigned(u, width) {
			return 0, &CorruptedError{Path: path, Msg: "integer value out of range for target width"}
		}
		return int64(u), nil
	case litNint:
		n := bytesToUint(sv.bytes)
		if !fitsNegative(n, width) {
			return 0, &CorruptedError{Path: path, Msg: "integer value out of range for target width"}
		}
		return truncateSigned(unboxNint(sv), width), nil
	default:
		return 0, &TypeMismatchError{Path: path, Target: "integer", Wire: sv.lit.String()}
	}
}

func decodeUnsignedWidth(path CodingPath, sv scannedValue, width int) (uint64, error) {
	if err := requireLiteral(path, sv, "unsigned integer"); err != nil {
		return 0, err
	}
	if sv.lit != litUint {
		return 0, &TypeMismatchError{Path: path, Target: "unsigned integer", Wire: sv.lit.String()}
	}
	u := unboxUint(sv)
	if !fitsUnsigned(u, width) {
		return 0, &CorruptedError{Path: path, Msg: "integer value out of range for target width"}
	}
	return u, nil
}

func decodeFloat64Value(path CodingPath, sv scannedValue) (float64, error) {
	if err := requireLiteral(path, sv, "float"); err != nil {
		return 0, err
	}
	switch sv.lit {
	case litFloat16, litFloat32, litFloat64:
		return unboxFloat(sv), nil
	default:
		return 0, &TypeMismatchError{Path: path, Target: "float", Wire: sv.lit.String()}
	}
}

func decodeFloat32Value(path CodingPath, sv scannedValue) (float32, error) {
	if err := requireLiteral(path, sv, "float"); err != nil {
		return 0, err
	}
	switch sv.lit {
	case litFloat16, litFloat32, litFloat64:
		return unboxFloat32(sv), nil
	default:
		return 0, &TypeMismatchError{Path: path, Target: "float", Wire: sv.lit.String()}
	}
}

func decodeStringValue(path CodingPath, sv scannedValue) (string, error) {
	if err := requireLiteral(path, sv, "text string"); err != nil {
		return "", err
	}
	if sv.lit != litStr {
		return "", &TypeMismatchError{Path: path, Target: "text string", Wire: sv.lit.String()}
	}
	s, ok := unboxString(sv)
	if !ok {
		return "", &CorruptedError{Path: path, Msg: "text string is not valid UTF-8"}
	}
	return s, nil
}

func decodeBytesValue(path CodingPath, sv scannedValue) ([]byte, error) {
	if err := requireLiteral(path, sv, "byte string"); err != nil {
		return nil, err
	}
	if sv.lit != litBin {
		return nil, &TypeMismatchError{Path: path, Target: "byte string", Wire: sv.lit.String()}
	}
	return sv.bytes, nil
}

func isNilValue(sv scannedValue) bool { return sv.kind == kindLiteral && sv.lit == litNil }

// SingleValueDecodingContainer decodes exactly one item.
type SingleValueDecodingContainer struct {
	path  CodingPath
	value scannedValue
}

// DecodeNil reports whether the item is CBOR null/undefined, without error:
// callers branch on this before attempting any other Decode* call.
func (c *SingleValueDecodingContainer) DecodeNil() bool { return isNilValue(c.value) }

func (c *SingleValueDecodingContainer) DecodeBool() (bool, error) {
	return decodeBoolValue(c.path, c.value)
}

func (c *SingleValueDecodingContainer) DecodeInt() (int, error) {
	v, err := decodeSignedWidth(c.path, c.value, 8)
	return int(v), err
}
func (c *SingleValueDecodingContainer) DecodeInt8() (int8, error) {
	v, err := decodeSignedWidth(c.path, c.value, 1)
	return int8(v), err
}
func (c *SingleValueDecodingContainer) DecodeInt16() (int16, error) {
	v, err := decodeSignedWidth(c.path, c.value, 2)
	return int16(v), err
}
func (c *SingleValueDecodingContainer) DecodeInt32() (int32, error) {
	v, err := decodeSignedWidth(c.path, c.value, 4)
	return int32(v), err
}
func (c *SingleValueDecodingContainer) DecodeInt64() (int64, error) {
	return decodeSignedWidth(c.path, c.value, 8)
}

func (c *SingleValueDecodingContainer) DecodeUint() (uint, error) {
	v, err := decodeUnsignedWidth(c.path, c.value, 8)
	return uint(v), err
}
func (c *SingleValueDecodingContainer) DecodeUint8() (uint8, error) {
	v, err := decodeUnsignedWidth(c.path, c.value, 1)
	return uint8(v), err
}
func (c *SingleValueDecodingContainer) DecodeUint16() (uint16, error) {
	v, err := decodeUnsignedWidth(c.path, c.value, 2)
	return uint16(v), err
}
func (c *SingleValueDecodingContainer) DecodeUint32() (uint32, error) {
	v, err := decodeUnsignedWidth(c.path, c.value, 4)
	return uint32(v), err
}
func (c *SingleValueDecodingContainer) DecodeUint64() (uint64, error) {
	return decodeUnsignedWidth(c.path, c.value, 8)
}

func (c *SingleValueDecodingContainer) DecodeFloat32() (float32, error) {
	return decodeFloat32Value(c.path, c.value)
}
func (c *SingleValueDecodingContainer) DecodeFloat64() (float64, error) {
	return decodeFloat64Value(c.path, c.value)
}

func (c *SingleValueDecodingContainer) DecodeString() (string, error) {
	return decodeStringValue(c.path, c.value)
}
func (c *SingleValueDecodingContainer) DecodeBytes() ([]byte, error) {
	return decodeBytesValue(c.path, c.value)
}

// DecodeValue initializes v from the contained item.
func (c *SingleValueDecodingContainer) DecodeValue(v Decodable) error {
	return decodeNested(c.path, c.value, v)
}

// KeyedDecodingContainer decodes named fields out of a CBOR map.
// Keys are looked up by their StringValue; a map item whose key is not a
// text string is unreachable through any Key and is silently excluded from
// lookup (it cannot collide with a named field).
type KeyedDecodingContainer struct {
	path   CodingPath
	values map[string]scannedValue
	order  []string
}

func newKeyedDecodingContainer(path CodingPath, items []scannedValue) (*KeyedDecodingContainer, error) {
	if len(items)%2 != 0 {
		return nil, &CorruptedError{Path: path, Msg: "map has an odd number of flattened key/value items"}
	}
	values := make(map[string]scannedValue, len(items)/2)
	var order []string
	for i := 0; i < len(items); i += 2 {
		k := items[i]
		if k.kind != kindLiteral || k.lit != litStr {
			continue
		}
		name, ok := unboxString(k)
		if !ok {
			continue
		}
		if _, dup := values[name]; dup {
			continue
		}
		order = append(order, name)
		values[name] = items[i+1]
	}
	return &KeyedDecodingContainer{path: path, values: values, order: order}, nil
}

// AllKeys returns every string-keyed field name present, in first-seen
// order.
func (c *KeyedDecodingContainer) AllKeys() []string { return c.order }

// Contains reports whether key is present.
func (c *KeyedDecodingContainer) Contains(key Key) bool {
	_, ok := c.values[key.StringValue()]
	return ok
}

func (c *KeyedDecodingContainer) child(key Key) CodingPath { return c.path.extend(key.StringValue()) }

func (c *KeyedDecodingContainer) lookup(key Key) (scannedValue, error) {
	sv, ok := c.values[key.StringValue()]
	if !ok {
		return scannedValue{}, &KeyNotFoundError{Path: c.path, Key: key.StringValue()}
	}
	return sv, nil
}

// DecodeNil reports whether key is present and holds CBOR null/undefined.
// A missing key is treated the same as a non-nil miss: false.
func (c *KeyedDecodingContainer) DecodeNil(key Key) bool {
	sv, ok := c.values[key.StringValue()]
	return ok && isNilValue(sv)
}

func (c *KeyedDecodingContainer) DecodeBool(key Key) (bool, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return false, err
	}
	return decodeBoolValue(c.child(key), sv)
}

func (c *KeyedDecodingContainer) DecodeInt(key Key) (int, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	v, err := decodeSignedWidth(c.child(key), sv, 8)
	return int(v), err
}
func (c *KeyedDecodingContainer) DecodeInt8(key Key) (int8, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	v, err := decodeSignedWidth(c.child(key), sv, 1)
	return int8(v), err
}
func (c *KeyedDecodingContainer) DecodeInt16(key Key) (int16, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	v, err := decodeSignedWidth(c.child(key), sv, 2)
	return int16(v), err
}
func (c *KeyedDecodingContainer) DecodeInt32(key Key) (int32, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	v, err := decodeSignedWidth(c.child(key), sv, 4)
	return int32(v), err
}
func (c *KeyedDecodingContainer) DecodeInt64(key Key) (int64, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	return decodeSignedWidth(c.child(key), sv, 8)
}

func (c *KeyedDecodingContainer) DecodeUint(key Key) (uint, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	v, err := decodeUnsignedWidth(c.child(key), sv, 8)
	return uint(v), err
}
func (c *KeyedDecodingContainer) DecodeUint8(key Key) (uint8, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	v, err := decodeUnsignedWidth(c.child(key), sv, 1)
	return uint8(v), err
}
func (c *KeyedDecodingContainer) DecodeUint16(key Key) (uint16, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	v, err := decodeUnsignedWidth(c.child(key), sv, 2)
	return uint16(v), err
}
func (c *KeyedDecodingContainer) DecodeUint32(key Key) (uint32, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	v, err := decodeUnsignedWidth(c.child(key), sv, 4)
	return uint32(v), err
}
func (c *KeyedDecodingContainer) DecodeUint64(key Key) (uint64, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	return decodeUnsignedWidth(c.child(key), sv, 8)
}

func (c *KeyedDecodingContainer) DecodeFloat32(key Key) (float32, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	return decodeFloat32Value(c.child(key), sv)
}
func (c *KeyedDecodingContainer) DecodeFloat64(key Key) (float64, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	return decodeFloat64Value(c.child(key), sv)
}

func (c *KeyedDecodingContainer) DecodeString(key Key) (string, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return "", err
	}
	return decodeStringValue(c.child(key), sv)
}

func (c *KeyedDecodingContainer) DecodeBytes(key Key) ([]byte, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return decodeBytesValue(c.child(key), sv)
}

// DecodeValue initializes v from the value at key.
func (c *KeyedDecodingContainer) DecodeValue(key Key, v Decodable) error {
	sv, err := c.lookup(key)
	if err != nil {
		return err
	}
	return decodeNested(c.child(key), sv, v)
}

// NestedKeyedContainer opens a nested map-valued field.
func (c *KeyedDecodingContainer) NestedKeyedContainer(key Key) (*KeyedDecodingContainer, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	path := c.child(key)
	if sv.kind != kindMap {
		return nil, &TypeMismatchError{Path: path, Target: "map", Wire: sv.kindName()}
	}
	return newKeyedDecodingContainer(path, sv.items)
}

// NestedUnkeyedContainer opens a nested array-valued field.
func (c *KeyedDecodingContainer) NestedUnkeyedContainer(key Key) (*UnkeyedDecodingContainer, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	path := c.child(key)
	if sv.kind != kindArray {
		return nil, &TypeMismatchError{Path: path, Target: "array", Wire: sv.kindName()}
	}
	return &UnkeyedDecodingContainer{path: path, items: sv.items}, nil
}

// SuperDecoder retrieves the "super" slot.
func (c *KeyedDecodingContainer) SuperDecoder() (*ValueDecoder, error) {
	return c.SuperDecoderFor(SuperKey)
}

// SuperDecoderFor retrieves the slot keyed by key, for an explicit
// inheritance-chain key other than the default "super".
func (c *KeyedDecodingContainer) SuperDecoderFor(key Key) (*ValueDecoder, error) {
	sv, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return &ValueDecoder{path: c.child(key), value: sv}, nil
}

// UnkeyedDecodingContainer decodes an ordered sequence out of a CBOR
// array.
type UnkeyedDecodingContainer struct {
	path  CodingPath
	items []scannedValue
	idx   int
}

// Count returns the total number of elements.
func (c *UnkeyedDecodingContainer) Count() int { return len(c.items) }

// IsAtEnd reports whether every element has been consumed.
func (c *UnkeyedDecodingContainer) IsAtEnd() bool { return c.idx >= len(c.items) }

// CurrentIndex returns the index of the next element to be decoded.
func (c *UnkeyedDecodingContainer) CurrentIndex() int { return c.idx }

func (c *UnkeyedDecodingContainer) elementPath() CodingPath {
	return c.path.extend(fmt.Sprintf("[%d]", c.idx))
}

func (c *UnkeyedDecodingContainer) next() (scannedValue, error) {
	if c.idx >= len(c.items) {
		return scannedValue{}, &ValueNotFoundError{Path: c.elementPath(), Target: "array element"}
	}
	v := c.items[c.idx]
	c.idx++
	return v, nil
}

// DecodeNil reports whether the next element is CBOR null/undefined. If so,
// it is consumed; otherwise the cursor does not advance, so a subsequent
// Decode* call still sees the same element.
func (c *UnkeyedDecodingContainer) DecodeNil() (bool, error) {
	if c.idx >= len(c.items) {
		return false, &ValueNotFoundError{Path: c.elementPath(), Target: "array element"}
	}
	if isNilValue(c.items[c.idx]) {
		c.idx++
		return true, nil
	}
	return false, nil
}

func (c *UnkeyedDecodingContainer) DecodeBool() (bool, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return false, err
	}
	return decodeBoolValue(path, sv)
}

func (c *UnkeyedDecodingContainer) DecodeInt() (int, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	v, err := decodeSignedWidth(path, sv, 8)
	return int(v), err
}
func (c *UnkeyedDecodingContainer) DecodeInt8() (int8, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	v, err := decodeSignedWidth(path, sv, 1)
	return int8(v), err
}
func (c *UnkeyedDecodingContainer) DecodeInt16() (int16, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	v, err := decodeSignedWidth(path, sv, 2)
	return int16(v), err
}
func (c *UnkeyedDecodingContainer) DecodeInt32() (int32, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	v, err := decodeSignedWidth(path, sv, 4)
	return int32(v), err
}
func (c *UnkeyedDecodingContainer) DecodeInt64() (int64, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	return decodeSignedWidth(path, sv, 8)
}

func (c *UnkeyedDecodingContainer) DecodeUint() (uint, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	v, err := decodeUnsignedWidth(path, sv, 8)
	return uint(v), err
}
func (c *UnkeyedDecodingContainer) DecodeUint8() (uint8, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	v, err := decodeUnsignedWidth(path, sv, 1)
	return uint8(v), err
}
func (c *UnkeyedDecodingContainer) DecodeUint16() (uint16, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	v, err := decodeUnsignedWidth(path, sv, 2)
	return uint16(v), err
}
func (c *UnkeyedDecodingContainer) DecodeUint32() (uint32, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	v, err := decodeUnsignedWidth(path, sv, 4)
	return uint32(v), err
}
func (c *UnkeyedDecodingContainer) DecodeUint64() (uint64, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	return decodeUnsignedWidth(path, sv, 8)
}

func (c *UnkeyedDecodingContainer) DecodeFloat32() (float32, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	return decodeFloat32Value(path, sv)
}
func (c *UnkeyedDecodingContainer) DecodeFloat64() (float64, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return 0, err
	}
	return decodeFloat64Value(path, sv)
}

func (c *UnkeyedDecodingContainer) DecodeString() (string, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return "", err
	}
	return decodeStringValue(path, sv)
}

func (c *UnkeyedDecodingContainer) DecodeBytes() ([]byte, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return nil, err
	}
	return decodeBytesValue(path, sv)
}

// DecodeValue initializes v from the next element.
func (c *UnkeyedDecodingContainer) DecodeValue(v Decodable) error {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return err
	}
	return decodeNested(path, sv, v)
}

// NestedKeyedContainer opens the next element as a map.
func (c *UnkeyedDecodingContainer) NestedKeyedContainer() (*KeyedDecodingContainer, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return nil, err
	}
	if sv.kind != kindMap {
		return nil, &TypeMismatchError{Path: path, Target: "map", Wire: sv.kindName()}
	}
	return newKeyedDecodingContainer(path, sv.items)
}

// NestedUnkeyedContainer opens the next element as an array.
func (c *UnkeyedDecodingContainer) NestedUnkeyedContainer() (*UnkeyedDecodingContainer, error) {
	path := c.elementPath()
	sv, err := c.next()
	if err != nil {
		return nil, err
	}
	if sv.kind != kindArray {
		return nil, &TypeMismatchError{Path: path, Target: "array", Wire: sv.kindName()}
	}
	return &UnkeyedDecodingContainer{path: path, items: sv.items}, nil
}

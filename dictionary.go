// SPDX-License-Identifier: Apache-2.0

package cbor

import "fmt"

// Entry is one key/value pair of a Map, in insertion order.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered dictionary that serializes through the
// dictionary-marker mechanism: it drives its UnkeyedContainer with
// a flattened k0,v0,k1,v1,... sequence so that arbitrary key types retain
// their native CBOR representation (an int key stays a CBOR integer, not a
// stringified map key), then asks the encoder to reinterpret the resulting
// array as a CBOR map at finalization. This differs from an ordinary
// keyed record, whose keys are always stringified through the Key
// interface.
//
// K and V must each be one of the primitive Go types DecodeInt/EncodeInt
// and friends operate on, or implement Encodable/Decodable themselves.
type Map[K comparable, V any] struct {
	entries []Entry[K, V]
	index   map[K]int
}

// NewMap returns an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Set inserts or replaces the value for k, preserving k's original
// insertion position if it was already present.
func (m *Map[K, V]) Set(k K, v V) {
	if m.index == nil {
		m.index = make(map[K]int)
	}
	if i, ok := m.index[k]; ok {
		m.entries[i].Value = v
		return
	}
	m.index[k] = len(m.entries)
	m.entries = append(m.entries, Entry[K, V]{Key: k, Value: v})
}

// Get looks up the value for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	i, ok := m.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries[i].Value, true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.entries) }

// Range calls fn for every entry in insertion order, stopping early if fn
// returns false.
func (m *Map[K, V]) Range(fn func(k K, v V) bool) {
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// EncodeCBOR implements Encodable.
func (m *Map[K, V]) EncodeCBOR(enc *ValueEncoder) error {
	c := enc.UnkeyedContainer()
	for _, e := range m.entries {
		if err := encodeElement(c, e.Key); err != nil {
			return err
		}
		if err := encodeElement(c, e.Value); err != nil {
			return err
		}
	}
	enc.markDictionary()
	return nil
}

// DecodeCBOR implements Decodable.
func (m *Map[K, V]) DecodeCBOR(dec *ValueDecoder) error {
	items, err := dec.dictionaryItems()
	if err != nil {
		return err
	}
	if len(items)%2 != 0 {
		return &CorruptedError{Path: dec.path, Msg: "dictionary has an odd number of flattened key/value items"}
	}
	c := &UnkeyedDecodingContainer{path: dec.path, items: items}
	m.entries = m.entries[:0]
	m.index = make(map[K]int, len(items)/2)
	for !c.IsAtEnd() {
		k, err := decodeElementInto[K](c)
		if err != nil {
			return err
		}
		v, err := decodeElementInto[V](c)
		if err != nil {
			return err
		}
		m.index[k] = len(m.entries)
		m.entries = append(m.entries, Entry[K, V]{Key: k, Value: v})
	}
	return nil
}

// encodeElement dispatches v to the matching UnkeyedEncodingContainer
// method: Encodable values recurse through EncodeValue, everything else
// must be one of the primitive types the container knows how to encode.
func encodeElement(c *UnkeyedEncodingContainer, v any) error {
	switch x := v.(type) {
	case Encodable:
		return c.EncodeValue(x)
	case bool:
		c.EncodeBool(x)
	case string:
		c.EncodeString(x)
	case []byte:
		c.EncodeBytes(x)
	case int:
		c.EncodeInt(x)
	case int8:
		c.EncodeInt8(x)
	case int16:
		c.EncodeInt16(x)
	case int32:
		c.EncodeInt32(x)
	case int64:
		c.EncodeInt64(x)
	case uint:
		c.EncodeUint(x)
	case uint8:
		c.EncodeUint8(x)
	case uint16:
		c.EncodeUint16(x)
	case uint32:
		c.EncodeUint32(x)
	case uint64:
		c.EncodeUint64(x)
	case float32:
		c.EncodeFloat32(x)
	case float64:
		c.EncodeFloat64(x)
	default:
		return &InvalidValueError{Msg: fmt.Sprintf("dictionary element of type %T is neither Encodable nor a supported primitive", v)}
	}
	return nil
}

// decodeElementInto decodes the next unkeyed element as T: if *T implements
// Decodable it recurses through DecodeValue, otherwise T must be one of the
// primitive types the container knows how to decode.
func decodeElementInto[T any](c *UnkeyedDecodingContainer) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case Decodable:
		err = c.DecodeValue(p)
	case *bool:
		*p, err = c.DecodeBool()
	case *string:
		*p, err = c.DecodeString()
	case *[]byte:
		*p, err = c.DecodeBytes()
	case *int:
		*p, err = c.DecodeInt()
	case *int8:
		*p, err = c.DecodeInt8()
	case *int16:
		*p, err = c.DecodeInt16()
	case *int32:
		*p, err = c.DecodeInt32()
	case *int64:
		*p, err = c.DecodeInt64()
	case *uint:
		*p, err = c.DecodeUint()
	case *uint8:
		*p, err = c.DecodeUint8()
	case *uint16:
		*p, err = c.DecodeUint16()
	case *uint32:
		*p, err = c.DecodeUint32()
	case *uint64:
		*p, err = c.DecodeUint64()
	case *float32:
		*p, err = c.DecodeFloat32()
	case *float64:
		*p, err = c.DecodeFloat64()
	default:
		err = &InvalidValueError{Msg: fmt.Sprintf("dictionary element of type %T is neither Decodable nor a supported primitive", v)}
	}
	return v, err
}

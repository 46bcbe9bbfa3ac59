// SPDX-License-Identifier: Apache-2.0

package cbor

// Encodable is implemented by types that can serialize themselves into a
// CBOR item by driving a [ValueEncoder].
type Encodable interface {
	EncodeCBOR(enc *ValueEncoder) error
}

// Decodable is implemented by types that can initialize themselves from a
// CBOR item by driving a [ValueDecoder].
type Decodable interface {
	DecodeCBOR(dec *ValueDecoder) error
}

// TaggedValue is an optional capability. A value additionally implementing
// TaggedValue is encoded wrapped in a CBOR tag carrying Tag(), and is only
// accepted on decode when the wire tag number equals Tag().
type TaggedValue interface {
	Tag() uint64
}

// EncodableFunc adapts a plain function to Encodable.
type EncodableFunc func(enc *ValueEncoder) error

// EncodeCBOR implements Encodable.
func (f EncodableFunc) EncodeCBOR(enc *ValueEncoder) error { return f(enc) }

// DecodableFunc adapts a plain function to Decodable.
type DecodableFunc func(dec *ValueDecoder) error

// DecodeCBOR implements Decodable.
func (f DecodableFunc) DecodeCBOR(dec *ValueDecoder) error { return f(dec) }

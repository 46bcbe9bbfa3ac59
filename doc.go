// SPDX-License-Identifier: Apache-2.0

/*
Package cbor implements a Codable-style encoding/decoding API for RFC 8949
Concise Binary Object Representation (CBOR).

Unlike a reflection-driven marshaler, user types opt in explicitly by
implementing [Encodable] and/or [Decodable]. Each method is handed a
context object exposing three container shapes - a single value, a keyed
map, or an unkeyed array/sequence - mirroring how a hand-written parser
would walk the wire format itself.

# Encoding

	type Point struct{ X, Y int }

	func (p Point) EncodeCBOR(enc *cbor.ValueEncoder) error {
		kc := enc.KeyedContainer()
		kc.EncodeInt(cbor.StringKey("x"), p.X)
		kc.EncodeInt(cbor.StringKey("y"), p.Y)
		return nil
	}

	data, err := cbor.NewEncoder().Encode(Point{X: 1, Y: 2})

# Decoding

	func (p *Point) DecodeCBOR(dec *cbor.ValueDecoder) error {
		kc, err := dec.KeyedContainer()
		if err != nil {
			return err
		}
		if p.X, err = kc.DecodeInt(cbor.StringKey("x")); err != nil {
			return err
		}
		p.Y, err = kc.DecodeInt(cbor.StringKey("y"))
		return err
	}

	var p Point
	err := cbor.NewDecoder().Decode(data, &p)

# Tags

A type additionally implementing [TaggedValue] is wrapped in (or unwrapped
from) a CBOR tag carrying its declared tag number.

# Convenience wrappers

[Marshal] and [Unmarshal] are thin wrappers around [Encoder] and [Decoder]
that also know how to handle the built-in primitive types directly, without
requiring an [Encodable]/[Decodable] adapter, in the spirit of
encoding/json's top-level functions.

Not supported (see package-level non-goals): canonical (sorted) map key
ordering, deterministic float width narrowing, streaming over arbitrary
io.Reader/io.Writer sources, and CBOR sequence framing.
*/
package cbor

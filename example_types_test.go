// SPDX-License-Identifier: Apache-2.0

package cbor_test

import "github.com/nnabeyang/swift-cbor"

// Point is a plain two-field keyed record, the smallest exerciser of a
// primitive keyed round trip.
type Point struct {
	X, Y int
}

func (p Point) EncodeCBOR(enc *cbor.ValueEncoder) error {
	kc := enc.KeyedContainer()
	kc.EncodeInt(cbor.StringKey("x"), p.X)
	kc.EncodeInt(cbor.StringKey("y"), p.Y)
	return nil
}

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

// Address is nested inside Person to exercise keyed EncodeValue/DecodeValue
// of a nested user record.
type Address struct {
	City string
	Zip  string
}

func (a Address) EncodeCBOR(enc *cbor.ValueEncoder) error {
	kc := enc.KeyedContainer()
	kc.EncodeString(cbor.StringKey("city"), a.City)
	kc.EncodeString(cbor.StringKey("zip"), a.Zip)
	return nil
}

func (a *Address) DecodeCBOR(dec *cbor.ValueDecoder) error {
	kc, err := dec.KeyedContainer()
	if err != nil {
		return err
	}
	if a.City, err = kc.DecodeString(cbor.StringKey("city")); err != nil {
		return err
	}
	a.Zip, err = kc.DecodeString(cbor.StringKey("zip"))
	return err
}

// Person has an optional nested Address, exercising the DecodeNil/EncodeNil
// paths for a pointer-shaped field.
type Person struct {
	Name    string
	Address *Address
}

func (p Person) EncodeCBOR(enc *cbor.ValueEncoder) error {
	kc := enc.KeyedContainer()
	kc.EncodeString(cbor.StringKey("name"), p.Name)
	if p.Address == nil {
		kc.EncodeNil(cbor.StringKey("address"))
		return nil
	}
	return kc.EncodeValue(cbor.StringKey("address"), *p.Address)
}

func (p *Person) DecodeCBOR(dec *cbor.ValueDecoder) error {
	kc, err := dec.KeyedContainer()
	if err != nil {
		return err
	}
	if p.Name, err = kc.DecodeString(cbor.StringKey("name")); err != nil {
		return err
	}
	if kc.DecodeNil(cbor.StringKey("address")) {
		p.Address = nil
		return nil
	}
	p.Address = &Address{}
	return kc.DecodeValue(cbor.StringKey("address"), p.Address)
}

// Path is an unkeyed sequence of Point, exercising unkeyed containers of
// nested user Encodable/Decodable values.
type Path struct {
	Points []Point
}

func (p Path) EncodeCBOR(enc *cbor.ValueEncoder) error {
	uc := enc.UnkeyedContainer()
	for _, pt := range p.Points {
		if err := uc.EncodeValue(pt); err != nil {
			return err
		}
	}
	return nil
}

func (p *Path) DecodeCBOR(dec *cbor.ValueDecoder) error {
	uc, err := dec.UnkeyedContainer()
	if err != nil {
		return err
	}
	p.Points = make([]Point, 0, uc.Count())
	for !uc.IsAtEnd() {
		var pt Point
		if err := uc.DecodeValue(&pt); err != nil {
			return err
		}
		p.Points = append(p.Points, pt)
	}
	return nil
}

// Animal is the base of an inheritance-style chain: Dog encodes its own
// fields at the top level and delegates Animal's payload to the "super"
// slot.
type Animal struct {
	Name string
}

func (a Animal) encodeInto(kc *cbor.KeyedEncodingContainer) {
	kc.EncodeString(cbor.StringKey("name"), a.Name)
}

func (a *Animal) decodeFrom(kc *cbor.KeyedDecodingContainer) error {
	var err error
	a.Name, err = kc.DecodeString(cbor.StringKey("name"))
	return err
}

type Dog struct {
	Animal
	Breed string
}

func (d Dog) EncodeCBOR(enc *cbor.ValueEncoder) error {
	kc := enc.KeyedContainer()
	kc.EncodeString(cbor.StringKey("breed"), d.Breed)
	super := kc.SuperEncoder()
	d.Animal.encodeInto(super.KeyedContainer())
	return nil
}

func (d *Dog) DecodeCBOR(dec *cbor.ValueDecoder) error {
	kc, err := dec.KeyedContainer()
	if err != nil {
		return err
	}
	if d.Breed, err = kc.DecodeString(cbor.StringKey("breed")); err != nil {
		return err
	}
	super, err := kc.SuperDecoder()
	if err != nil {
		return err
	}
	superKC, err := super.KeyedContainer()
	if err != nil {
		return err
	}
	return d.Animal.decodeFrom(superKC)
}

// Opacity is the tagged single-field record worked through the hex
// scenarios: tag 1 wraps a single float64.
type Opacity struct {
	Value float64
}

func (Opacity) Tag() uint64 { return 1 }

func (o Opacity) EncodeCBOR(enc *cbor.ValueEncoder) error {
	enc.SingleValueContainer().EncodeFloat64(o.Value)
	return nil
}

func (o *Opacity) DecodeCBOR(dec *cbor.ValueDecoder) error {
	v, err := dec.SingleValueContainer().DecodeFloat64()
	if err != nil {
		return err
	}
	o.Value = v
	return nil
}

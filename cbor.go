// SPDX-License-Identifier: Apache-2.0

package cbor

import "fmt"

// Marshal serializes v to CBOR bytes. If v implements Encodable, its
// EncodeCBOR drives the result; otherwise v must be one of the primitive
// types a SingleValueEncodingContainer accepts. Marshal and Unmarshal are a
// convenience layer on top of Encoder/Decoder for callers with no nested
// structure to describe - the Encodable/Decodable bridge is the primary
// API.
func Marshal(v any) ([]byte, error) {
	enc, ok := v.(Encodable)
	if !ok {
		enc = EncodableFunc(func(ve *ValueEncoder) error {
			return encodePrimitive(ve.SingleValueContainer(), v)
		})
	}
	return NewEncoder().Encode(enc)
}

// Unmarshal decodes CBOR bytes into v. If v implements Decodable, its
// DecodeCBOR drives the result; otherwise v must be a pointer to one of the
// primitive types a SingleValueDecodingContainer accepts.
func Unmarshal(data []byte, v any) error {
	dec, ok := v.(Decodable)
	if !ok {
		dec = DecodableFunc(func(vd *ValueDecoder) error {
			return decodePrimitive(vd.SingleValueContainer(), v)
		})
	}
	return NewDecoder().Decode(data, dec)
}

func encodePrimitive(c *SingleValueEncodingContainer, v any) error {
	switch x := v.(type) {
	case nil:
		c.EncodeNil()
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
		return &InvalidValueError{Msg: fmt.Sprintf("value of type %T is neither Encodable nor a supported primitive", v)}
	}
	return nil
}

func decodePrimitive(c *SingleValueDecodingContainer, v any) error {
	var err error
	switch p := v.(type) {
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
		return &InvalidValueError{Msg: fmt.Sprintf("value of type %T is neither Decodable nor a pointer to a supported primitive", v)}
	}
	return err
}

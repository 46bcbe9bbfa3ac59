// SPDX-License-Identifier: Apache-2.0

package cbor_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/nnabeyang/swift-cbor"
)

func TestMarshalInt(t *testing.T) {
	for _, test := range []struct {
		expect []byte
		input  int64
	}{
		{expect: []byte{0x00}, input: 0},
		{expect: []byte{0x01}, input: 1},
		{expect: []byte{0x17}, input: 23},
		{expect: []byte{0x18, 0x18}, input: 24},
		{expect: []byte{0x18, 0x64}, input: 100},
		{expect: []byte{0x19, 0x03, 0xe8}, input: 1000},
		{expect: []byte{0x1a, 0x00, 0x0f, 0x42, 0x40}, input: 1000000},
		{expect: []byte{0x1b, 0x00, 0x00, 0x00, 0xe8, 0xd4, 0xa5, 0x10, 0x00}, input: 1000000000000},
		{expect: []byte{0x20}, input: -1},
		{expect: []byte{0x29}, input: -10},
		{expect: []byte{0x38, 0x63}, input: -100},
		{expect: []byte{0x39, 0x03, 0xe7}, input: -1000},
	} {
		got, err := cbor.Marshal(test.input)
		if err != nil {
			t.Fatalf("marshal %d: %v", test.input, err)
		}
		if !bytes.Equal(got, test.expect) {
			t.Errorf("marshal %d: expected % x, got % x", test.input, test.expect, got)
		}
	}
}

func TestMarshalFloat64(t *testing.T) {
	for _, test := range []struct {
		expect []byte
		input  float64
	}{
		{expect: []byte{0xfb, 0x3f, 0xf1, 0x99, 0x99, 0x99, 0x99, 0x99, 0x9a}, input: 1.1},
		{expect: []byte{0xfb, 0x7e, 0x37, 0xe4, 0x3c, 0x88, 0x00, 0x75, 0x9c}, input: 1.0e+300},
		{expect: []byte{0xfb, 0xc0, 0x10, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66}, input: -4.1},
	} {
		got, err := cbor.Marshal(test.input)
		if err != nil {
			t.Fatalf("marshal %v: %v", test.input, err)
		}
		if !bytes.Equal(got, test.expect) {
			t.Errorf("marshal %v: expected % x, got % x", test.input, test.expect, got)
		}
	}
}

func TestMarshalString(t *testing.T) {
	for _, test := range []struct {
		expect []byte
		input  string
	}{
		{expect: []byte{0x60}, input: ""},
		{expect: []byte{0x61, 0x61}, input: "a"},
		{expect: []byte{0x64, 0x49, 0x45, 0x54, 0x46}, input: "IETF"},
		{expect: []byte{0x62, 0x22, 0x5c}, input: "\"\\"},
		{expect: []byte{0x63, 0xe6, 0xb0, 0xb4}, input: "水"},
	} {
		got, err := cbor.Marshal(test.input)
		if err != nil {
			t.Fatalf("marshal %q: %v", test.input, err)
		}
		if !bytes.Equal(got, test.expect) {
			t.Errorf("marshal %q: expected % x, got % x", test.input, test.expect, got)
		}
	}
}

func TestMarshalBytes(t *testing.T) {
	for _, test := range []struct {
		expect []byte
		input  []byte
	}{
		{expect: []byte{0x40}, input: []byte{}},
		{expect: []byte{0x44, 0x01, 0x02, 0x03, 0x04}, input: []byte{0x01, 0x02, 0x03, 0x04}},
	} {
		got, err := cbor.Marshal(test.input)
		if err != nil {
			t.Fatalf("marshal % x: %v", test.input, err)
		}
		if !bytes.Equal(got, test.expect) {
			t.Errorf("marshal % x: expected % x, got % x", test.input, test.expect, got)
		}
	}
}

func TestMarshalBool(t *testing.T) {
	for _, test := range []struct {
		expect []byte
		input  bool
	}{
		{expect: []byte{0xf4}, input: false},
		{expect: []byte{0xf5}, input: true},
	} {
		got, err := cbor.Marshal(test.input)
		if err != nil {
			t.Fatalf("marshal %v: %v", test.input, err)
		}
		if !bytes.Equal(got, test.expect) {
			t.Errorf("marshal %v: expected % x, got % x", test.input, test.expect, got)
		}
	}
}

func TestMarshalNil(t *testing.T) {
	got, err := cbor.Marshal(nil)
	if err != nil {
		t.Fatalf("marshal nil: %v", err)
	}
	if want := []byte{0xf6}; !bytes.Equal(got, want) {
		t.Errorf("marshal nil: expected % x, got % x", want, got)
	}
}

func TestUnmarshalRoundTrip(t *testing.T) {
	for _, test := range []struct {
		name  string
		value any
	}{
		{"zero", int64(0)},
		{"small negative", int64(-24)},
		{"big positive", int64(1 << 40)},
		{"string", "round trip"},
		{"bytes", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"bool true", true},
		{"bool false", false},
	} {
		t.Run(test.name, func(t *testing.T) {
			data, err := cbor.Marshal(test.value)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			switch want := test.value.(type) {
			case int64:
				var got int64
				if err := cbor.Unmarshal(data, &got); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if got != want {
					t.Errorf("expected %d, got %d", want, got)
				}
			case string:
				var got string
				if err := cbor.Unmarshal(data, &got); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if got != want {
					t.Errorf("expected %q, got %q", want, got)
				}
			case []byte:
				var got []byte
				if err := cbor.Unmarshal(data, &got); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if !bytes.Equal(got, want) {
					t.Errorf("expected % x, got % x", want, got)
				}
			case bool:
				var got bool
				if err := cbor.Unmarshal(data, &got); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if got != want {
					t.Errorf("expected %v, got %v", want, got)
				}
			}
		})
	}
}

func TestUnmarshalIntWidthOverflow(t *testing.T) {
	input := []byte{0x18, 0xff} // 255, does not fit in an int8
	var got int8
	err := cbor.Unmarshal(input, &got)
	var corrupted *cbor.CorruptedError
	if !errors.As(err, &corrupted) {
		t.Fatalf("expected a CorruptedError, got %v", err)
	}
}

func TestPointRoundTrip(t *testing.T) {
	p := Point{X: 3, Y: -7}
	data, err := cbor.NewEncoder().Encode(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{
		0xa2,
		0x61, 0x78, 0x03,
		0x61, 0x79, 0x26,
	}
	if !bytes.Equal(data, want) {
		t.Fatalf("encode: expected % x, got % x", want, data)
	}

	var got Point
	if err := cbor.NewDecoder().Decode(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != p {
		t.Errorf("expected %+v, got %+v", p, got)
	}
}

func TestKeyedDecodingDuplicateKeyFirstWins(t *testing.T) {
	// {"x": 1, "x": 2, "y": 5} - a literal duplicate key in the map.
	input := []byte{
		0xa3,
		0x61, 0x78, 0x01,
		0x61, 0x78, 0x02,
		0x61, 0x79, 0x05,
	}
	var got Point
	if err := cbor.NewDecoder().Decode(input, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.X != 1 || got.Y != 5 {
		t.Errorf("expected first occurrence of duplicate key to win: {1 5}, got %+v", got)
	}
}

func TestPersonWithNilAddress(t *testing.T) {
	p := Person{Name: "Ada"}
	data, err := cbor.NewEncoder().Encode(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got Person
	if err := cbor.NewDecoder().Decode(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != p.Name || got.Address != nil {
		t.Errorf("expected %+v with nil address, got %+v", p, got)
	}
}

func TestPersonWithAddress(t *testing.T) {
	p := Person{Name: "Grace", Address: &Address{City: "NYC", Zip: "10001"}}
	data, err := cbor.NewEncoder().Encode(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got Person
	if err := cbor.NewDecoder().Decode(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != p.Name || got.Address == nil || *got.Address != *p.Address {
		t.Errorf("expected %+v, got %+v", p, got)
	}
}

func TestPathRoundTrip(t *testing.T) {
	path := Path{Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: -1, Y: 2}}}
	data, err := cbor.NewEncoder().Encode(path)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got Path
	if err := cbor.NewDecoder().Decode(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Points) != len(path.Points) {
		t.Fatalf("expected %d points, got %d", len(path.Points), len(got.Points))
	}
	for i := range path.Points {
		if got.Points[i] != path.Points[i] {
			t.Errorf("point %d: expected %+v, got %+v", i, path.Points[i], got.Points[i])
		}
	}
}

func TestDogSuperRoundTrip(t *testing.T) {
	d := Dog{Animal: Animal{Name: "Rex"}, Breed: "Husky"}
	data, err := cbor.NewEncoder().Encode(d)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got Dog
	if err := cbor.NewDecoder().Decode(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != d {
		t.Errorf("expected %+v, got %+v", d, got)
	}
}

func TestOpacityTagRoundTrip(t *testing.T) {
	o := Opacity{Value: 0.5}
	data, err := cbor.NewEncoder().Encode(o)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0xc1, 0xfb, 0x3f, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(data, want) {
		t.Fatalf("encode: expected % x, got % x", want, data)
	}

	var got Opacity
	if err := cbor.NewDecoder().Decode(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Value != o.Value {
		t.Errorf("expected %v, got %v", o.Value, got.Value)
	}
}

func TestOpacityWrongTagRejected(t *testing.T) {
	// Tag 2 (bignum) instead of the expected tag 1.
	data := []byte{0xc2, 0xfb, 0x3f, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	var got Opacity
	err := cbor.NewDecoder().Decode(data, &got)
	var mismatch *cbor.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected a TypeMismatchError, got %v", err)
	}
}

func TestMaxNestingDepthExceeded(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 100; i++ {
		buf.WriteByte(0x81) // array of length 1
	}
	buf.WriteByte(0x00)

	dec := cbor.NewDecoder(cbor.WithMaxNestingDepth(10))
	var got any
	err := dec.Decode(buf.Bytes(), cbor.DecodableFunc(func(vd *cbor.ValueDecoder) error {
		return nil
	}))
	var corrupted *cbor.CorruptedError
	if err == nil || !errors.As(err, &corrupted) {
		t.Fatalf("expected nesting depth to be rejected, got %v (got=%v)", err, got)
	}
}

func TestFloat16Decode(t *testing.T) {
	// 1.5 encoded as a half-precision float.
	input := []byte{0xf9, 0x3e, 0x00}
	var got float64
	if err := cbor.Unmarshal(input, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != 1.5 {
		t.Errorf("expected 1.5, got %v", got)
	}
}

func TestFloat64SpecialValues(t *testing.T) {
	for _, test := range []struct {
		name  string
		input []byte
		check func(float64) bool
	}{
		{"+inf", []byte{0xfb, 0x7f, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, func(f float64) bool { return math.IsInf(f, 1) }},
		{"nan", []byte{0xfb, 0x7f, 0xf8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, func(f float64) bool { return math.IsNaN(f) }},
	} {
		t.Run(test.name, func(t *testing.T) {
			var got float64
			if err := cbor.Unmarshal(test.input, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if test.name == "+inf" && !math.IsInf(got, 1) {
				t.Errorf("expected +Inf, got %v", got)
			}
			if test.name == "nan" && !math.IsNaN(got) {
				t.Errorf("expected NaN, got %v", got)
			}
		})
	}
}

func TestArrayRoundTrip(t *testing.T) {
	values := []int64{1, 2, 3}
	enc := cbor.EncodableFunc(func(ve *cbor.ValueEncoder) error {
		uc := ve.UnkeyedContainer()
		for _, v := range values {
			uc.EncodeInt64(v)
		}
		return nil
	})
	data, err := cbor.NewEncoder().Encode(enc)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0x83, 0x01, 0x02, 0x03}
	if !bytes.Equal(data, want) {
		t.Fatalf("encode: expected % x, got % x", want, data)
	}

	var got []int64
	dec := cbor.DecodableFunc(func(vd *cbor.ValueDecoder) error {
		uc, err := vd.UnkeyedContainer()
		if err != nil {
			return err
		}
		for !uc.IsAtEnd() {
			v, err := uc.DecodeInt64()
			if err != nil {
				return err
			}
			got = append(got, v)
		}
		return nil
	})
	if err := cbor.NewDecoder().Decode(data, dec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("expected %v, got %v", values, got)
	}
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("expected %v, got %v", values, got)
			break
		}
	}
}

func TestIndefiniteArrayDecode(t *testing.T) {
	// [1, 2, 3] as an indefinite-length array.
	input := []byte{0x9f, 0x01, 0x02, 0x03, 0xff}
	var got []int64
	dec := cbor.DecodableFunc(func(vd *cbor.ValueDecoder) error {
		uc, err := vd.UnkeyedContainer()
		if err != nil {
			return err
		}
		for !uc.IsAtEnd() {
			v, err := uc.DecodeInt64()
			if err != nil {
				return err
			}
			got = append(got, v)
		}
		return nil
	})
	if err := cbor.NewDecoder().Decode(input, dec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
}

func TestMultiWidthMapRoundTrip(t *testing.T) {
	// Five keys whose values exercise every unsigned integer head width:
	// inline, 1-byte, 2-byte, 4-byte, and 8-byte arguments.
	want := map[string]uint64{
		"inline": 23,
		"byte1":  24,
		"byte2":  1000,
		"byte4":  1_000_000,
		"byte8":  1_000_000_000_000,
	}
	enc := cbor.EncodableFunc(func(ve *cbor.ValueEncoder) error {
		kc := ve.KeyedContainer()
		for k, v := range want {
			kc.EncodeUint64(cbor.StringKey(k), v)
		}
		return nil
	})
	data, err := cbor.NewEncoder().Encode(enc)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got := map[string]uint64{}
	dec := cbor.DecodableFunc(func(vd *cbor.ValueDecoder) error {
		kc, err := vd.KeyedContainer()
		if err != nil {
			return err
		}
		for _, name := range kc.AllKeys() {
			v, err := kc.DecodeUint64(cbor.StringKey(name))
			if err != nil {
				return err
			}
			got[name] = v
		}
		return nil
	})
	if err := cbor.NewDecoder().Decode(data, dec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("key %q: expected %d, got %d", k, v, got[k])
		}
	}
}

func TestInt64MinRoundTrip(t *testing.T) {
	data, err := cbor.Marshal(int64(math.MinInt64))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := []byte{0x3b, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	if !bytes.Equal(data, want) {
		t.Fatalf("expected % x, got % x", want, data)
	}

	var got int64
	if err := cbor.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != math.MinInt64 {
		t.Errorf("expected %d, got %d", int64(math.MinInt64), got)
	}
}

func TestMaxFiniteFloat16Decode(t *testing.T) {
	// 0x7bff is the largest finite half-precision value, 65504.0.
	input := []byte{0xf9, 0x7b, 0xff}
	var got float64
	if err := cbor.Unmarshal(input, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != 65504.0 {
		t.Errorf("expected 65504, got %v", got)
	}
}

func TestEmptyMapRoundTrip(t *testing.T) {
	m := cbor.NewMap[string, int]()
	data, err := cbor.NewEncoder().Encode(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0xa0}
	if !bytes.Equal(data, want) {
		t.Fatalf("expected % x, got % x", want, data)
	}

	got := cbor.NewMap[string, int]()
	if err := cbor.NewDecoder().Decode(data, got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("expected an empty map, got %d entries", got.Len())
	}
}

func TestIndefiniteByteStringChunksHonorDeclaredLengths(t *testing.T) {
	// An indefinite byte string whose first chunk's payload contains a
	// literal 0xff byte that is not a break - the scanner must trust the
	// chunk's own declared length (2) rather than stopping at the first
	// 0xff byte it sees.
	input := []byte{
		0x5f,             // indefinite byte string
		0x42, 0xff, 0x01, // 2-byte chunk: {0xff, 0x01}
		0xff, // break
	}
	var got []byte
	if err := cbor.Unmarshal(input, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []byte{0xff, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("expected % x, got % x", want, got)
	}
}

func TestIndefiniteTextStringChunksConcatenate(t *testing.T) {
	// An indefinite text string made of two definite-length chunks,
	// "AB" and "CD", concatenated by the scanner into "ABCD".
	input := []byte{
		0x7f,                   // indefinite text string
		0x62, 0x41, 0x42, // "AB"
		0x62, 0x43, 0x44, // "CD"
		0xff, // break
	}
	var got string
	if err := cbor.Unmarshal(input, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != "ABCD" {
		t.Errorf("expected ABCD, got %q", got)
	}
}

func TestDecodeTreeIndefiniteMap(t *testing.T) {
	// {"x": 1, "y": 2} as an indefinite-length map.
	input := []byte{
		0xbf,
		0x61, 0x78, 0x01,
		0x61, 0x79, 0x02,
		0xff,
	}
	got, err := cbor.DecodeTree(input)
	if err != nil {
		t.Fatalf("decode tree: %v", err)
	}
	entries, ok := got.([]cbor.TreeEntry)
	if !ok || len(entries) != 2 {
		t.Fatalf("expected 2 map entries, got %+v", got)
	}
}

func TestDecodeTreeBreakInMapValueRejected(t *testing.T) {
	// Indefinite map whose first value slot is a bare break (0xff) instead
	// of a value - must be rejected, not accepted as a map value or treated
	// as ending the map early.
	input := []byte{
		0xbf,
		0x61, 0x78, // key "x"
		0xff, // break where a value is expected
	}
	_, err := cbor.DecodeTree(input)
	var corrupted *cbor.CorruptedError
	if !errors.As(err, &corrupted) {
		t.Fatalf("expected a CorruptedError, got %v", err)
	}
}

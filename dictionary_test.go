// SPDX-License-Identifier: Apache-2.0

package cbor_test

import (
	"testing"

	"github.com/nnabeyang/swift-cbor"
)

func TestMapRoundTrip(t *testing.T) {
	m := cbor.NewMap[string, int]()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)

	data, err := cbor.NewEncoder().Encode(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// The wire form is a flattened-array-turned-map: one CBOR map head
	// followed by 3 key/value pairs, in insertion order (not sorted).
	if data[0]&0xe0 != 0xa0 {
		t.Fatalf("expected a CBOR map head, got % x", data[:1])
	}
	if data[0]&0x1f != 3 {
		t.Fatalf("expected map length 3, got % x", data[:1])
	}

	got := cbor.NewMap[string, int]()
	if err := cbor.NewDecoder().Decode(data, got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", got.Len())
	}

	var order []string
	got.Range(func(k string, v int) bool {
		order = append(order, k)
		return true
	})
	if want := []string{"z", "a", "m"}; !equalStrings(order, want) {
		t.Errorf("expected insertion order %v, got %v", want, order)
	}

	for k, want := range map[string]int{"z": 1, "a": 2, "m": 3} {
		v, ok := got.Get(k)
		if !ok || v != want {
			t.Errorf("Get(%q): expected %d, got %d (ok=%v)", k, want, v, ok)
		}
	}
}

func TestMapSetOverwritePreservesPosition(t *testing.T) {
	m := cbor.NewMap[string, int]()
	m.Set("first", 1)
	m.Set("second", 2)
	m.Set("first", 100)

	if m.Len() != 2 {
		t.Fatalf("expected 2 entries after overwrite, got %d", m.Len())
	}

	var order []string
	m.Range(func(k string, v int) bool {
		order = append(order, k)
		return true
	})
	if want := []string{"first", "second"}; !equalStrings(order, want) {
		t.Errorf("expected order %v preserved across overwrite, got %v", want, order)
	}

	v, ok := m.Get("first")
	if !ok || v != 100 {
		t.Errorf("expected overwritten value 100, got %d (ok=%v)", v, ok)
	}
}

func TestMapOfEncodableValues(t *testing.T) {
	m := cbor.NewMap[string, Point]()
	m.Set("origin", Point{X: 0, Y: 0})
	m.Set("corner", Point{X: 3, Y: 4})

	data, err := cbor.NewEncoder().Encode(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got := cbor.NewMap[string, Point]()
	if err := cbor.NewDecoder().Decode(data, got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	v, ok := got.Get("corner")
	if !ok || v != (Point{X: 3, Y: 4}) {
		t.Errorf("expected corner = {3 4}, got %+v (ok=%v)", v, ok)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

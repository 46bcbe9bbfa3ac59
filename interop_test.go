// SPDX-License-Identifier: Apache-2.0

package cbor_test

import (
	"bytes"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/nnabeyang/swift-cbor"
)

// TestInteropWithFxamacker checks the minimal-width canonical form claim
// against an independent, widely-used implementation: for every definite-
// length, non-float value here, the two libraries must agree byte-for-byte.
func TestInteropWithFxamacker(t *testing.T) {
	for _, test := range []struct {
		name  string
		value any
	}{
		{"small int", int64(7)},
		{"negative int", int64(-100)},
		{"wide uint", uint64(1 << 40)},
		{"string", "interop"},
		{"bytes", []byte{0x01, 0x02, 0x03}},
		{"bool", true},
		{"empty array", []int64{}},
		{"array", []int64{1, 2, 3}},
	} {
		t.Run(test.name, func(t *testing.T) {
			ours, err := cbor.Marshal(test.value)
			if err != nil {
				t.Fatalf("cbor.Marshal: %v", err)
			}
			theirs, err := fxcbor.Marshal(test.value)
			if err != nil {
				t.Fatalf("fxcbor.Marshal: %v", err)
			}
			if !bytes.Equal(ours, theirs) {
				t.Errorf("wire mismatch: ours=% x theirs=% x", ours, theirs)
			}
		})
	}
}

// TestInteropDecodeFxamackerBytes checks that bytes fxamacker/cbor produces
// for a plain keyed map are readable by this package's Decodable bridge.
func TestInteropDecodeFxamackerBytes(t *testing.T) {
	data, err := fxcbor.Marshal(map[string]int{"x": 3, "y": -7})
	if err != nil {
		t.Fatalf("fxcbor.Marshal: %v", err)
	}
	var p Point
	if err := cbor.NewDecoder().Decode(data, &p); err != nil {
		t.Fatalf("cbor.Decode: %v", err)
	}
	if p.X != 3 || p.Y != -7 {
		t.Errorf("expected {3 -7}, got %+v", p)
	}
}

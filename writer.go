// SPDX-License-Identifier: Apache-2.0

package cbor

import "io"

// writeValue performs a depth-first traversal of an encodedValue tree,
// appending its canonical byte representation to w. Indefinite-
// length forms are never produced here; every array/map head carries its
// definite length.
func writeValue(w io.Writer, v encodedValue) error {
	switch v.kind {
	case encNone:
		return nil

	case encLiteral:
		_, err := w.Write(v.bytes)
		return err

	case encTagged:
		if _, err := w.Write(v.tagHead); err != nil {
			return err
		}
		if v.tagValue == nil {
			return nil
		}
		return writeValue(w, *v.tagValue)

	case encArray:
		if _, err := w.Write(appendHead(mtArray, uint64(len(v.items)))); err != nil {
			return err
		}
		for _, item := range v.items {
			if err := writeValue(w, item); err != nil {
				return err
			}
		}
		return nil

	case encMap:
		if len(v.items)%2 != 0 {
			return &InvalidValueError{Msg: "map has an odd number of flattened key/value items"}
		}
		if _, err := w.Write(appendHead(mtMap, uint64(len(v.items)/2))); err != nil {
			return err
		}
		for _, item := range v.items {
			if err := writeValue(w, item); err != nil {
				return err
			}
		}
		return nil

	default:
		return &InvalidValueError{Msg: "unknown encoded value kind"}
	}
}

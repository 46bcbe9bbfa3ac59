// SPDX-License-Identifier: Apache-2.0

package cbor

import "strconv"

// Key identifies a single value inside a keyed container. The wire
// representation of any key is always its StringValue, encoded as a CBOR
// text string, regardless of whether the key also carries an integer
// index.
//
// IntValue is informational only: the package never consults it, neither
// for wire encoding nor for coding-path breadcrumbs (unkeyed containers
// label elements by their position instead).
type Key interface {
	StringValue() string
	IntValue() (int, bool)
}

// stringKey is the common case: a key with no associated integer index.
type stringKey string

func (k stringKey) StringValue() string    { return string(k) }
func (k stringKey) IntValue() (int, bool)  { return 0, false }

// indexKey additionally carries an integer index, used by callers that
// enumerate keys programmatically (e.g. array-like structs with named
// fields).
type indexKey struct {
	name string
	idx  int
}

func (k indexKey) StringValue() string   { return k.name }
func (k indexKey) IntValue() (int, bool) { return k.idx, true }

// StringKey constructs a Key with no integer index.
func StringKey(s string) Key { return stringKey(s) }

// IndexKey constructs a Key whose string value is the decimal rendering of
// idx and whose integer index is idx itself.
func IndexKey(idx int) Key { return indexKey{name: strconv.Itoa(idx), idx: idx} }

// NamedIndexKey constructs a Key with an explicit string value and integer
// index, useful when a coding key enum has both a name and an ordinal.
func NamedIndexKey(name string, idx int) Key { return indexKey{name: name, idx: idx} }

// superKeyName is the distinguished key identifying the "parent-class
// payload" slot in an inheriting record. It
// is an ordinary string key on the wire, not a special wire construct.
const superKeyName = "super"

// SuperKey is the well-known key used by bare SuperEncoder/SuperDecoder
// calls (i.e. without an explicit forKey argument).
var SuperKey Key = stringKey(superKeyName)

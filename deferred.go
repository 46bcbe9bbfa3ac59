// SPDX-License-Identifier: Apache-2.0

package cbor

import "fmt"

// slotKind tracks what a deferredMap key currently holds, driving the
// state machine below.
type slotKind uint8

const (
	slotEmpty slotKind = iota
	slotValue
	slotArray
	slotMap
	slotEncoder
)

func (k slotKind) String() string {
	switch k {
	case slotValue:
		return "value"
	case slotArray:
		return "array"
	case slotMap:
		return "map"
	case slotEncoder:
		return "sub-encoder"
	default:
		return "empty"
	}
}

// future is one element of a deferredArray, or one value slot of a
// deferredMap: either a concrete encoded value, a handle to another
// deferred array/map, or a handle to a sub-encoder whose value is fetched
// lazily at finalization time - used by superEncoder.
type future struct {
	kind  slotKind
	value encodedValue
	arr   *deferredArray
	mp    *deferredMap
	ve    *ValueEncoder
}

func (f future) finalize() encodedValue {
	switch f.kind {
	case slotArray:
		return f.arr.finalize()
	case slotMap:
		return f.mp.finalize()
	case slotEncoder:
		return f.ve.finalize()
	default:
		return f.value
	}
}

// deferredArray is an ordered sequence of futures, appended to as the
// user's UnkeyedEncodingContainer methods are called.
type deferredArray struct {
	items []future
}

func (a *deferredArray) appendValue(v encodedValue) {
	a.items = append(a.items, future{kind: slotValue, value: v})
}

func (a *deferredArray) openArray() *deferredArray {
	child := &deferredArray{}
	a.items = append(a.items, future{kind: slotArray, arr: child})
	return child
}

func (a *deferredArray) openMap() *deferredMap {
	child := &deferredMap{slots: map[string]*future{}}
	a.items = append(a.items, future{kind: slotMap, mp: child})
	return child
}

func (a *deferredArray) finalize() encodedValue {
	items := make([]encodedValue, len(a.items))
	for i, f := range a.items {
		items[i] = f.finalize()
	}
	return encodedValue{kind: encArray, items: items}
}

// deferredMap is an ordered sequence of string keys (preserving insertion
// order) plus a keyed lookup to futures. It implements a state
// machine: setting a key that already holds a container future of
// a different container kind is a programmer error and panics with a
// contractViolation rather than returning an error.
type deferredMap struct {
	order []string
	slots map[string]*future
}

func newDeferredMap() *deferredMap { return &deferredMap{slots: map[string]*future{}} }

func (m *deferredMap) slotFor(key string, want slotKind) *future {
	if m.slots == nil {
		m.slots = map[string]*future{}
	}
	existing, ok := m.slots[key]
	if !ok {
		m.order = append(m.order, key)
		f := &future{kind: want}
		m.slots[key] = f
		return f
	}
	if existing.kind != slotValue && existing.kind != want {
		panic(contractViolation{msg: fmt.Sprintf(
			"cbor: key %q already holds a %s container, cannot reopen as %s", key, existing.kind, want)})
	}
	existing.kind = want
	return existing
}

// set writes a concrete value to key, overwriting the value but never the
// key's insertion-order position. Overwriting an established container
// future with a bare value is likewise rejected as a contract violation,
// matching the "any other -> ERROR" transition from the [arr]/[map] states.
func (m *deferredMap) set(key string, v encodedValue) {
	f := m.slotFor(key, slotValue)
	f.value = v
}

func (m *deferredMap) openArray(key string) *deferredArray {
	f := m.slotFor(key, slotArray)
	if f.arr == nil {
		f.arr = &deferredArray{}
	}
	return f.arr
}

func (m *deferredMap) openMap(key string) *deferredMap {
	f := m.slotFor(key, slotMap)
	if f.mp == nil {
		f.mp = newDeferredMap()
	}
	return f.mp
}

// openEncoder backs superEncoder: the returned *ValueEncoder is committed
// to key's slot, finalized only when the whole tree is finalized, so the
// caller may drive any of the three container shapes against it after the
// fact.
func (m *deferredMap) openEncoder(key string) *ValueEncoder {
	f := m.slotFor(key, slotEncoder)
	if f.ve == nil {
		f.ve = &ValueEncoder{}
	}
	return f.ve
}

func (m *deferredMap) contains(key string) bool {
	_, ok := m.slots[key]
	return ok
}

func (m *deferredMap) finalize() encodedValue {
	items := make([]encodedValue, 0, 2*len(m.order))
	for _, key := range m.order {
		keyBytes := append(appendHead(mtTextString, uint64(len(key))), []byte(key)...)
		items = append(items, literalValue(keyBytes), m.slots[key].finalize())
	}
	return encodedValue{kind: encMap, items: items}
}

// SPDX-License-Identifier: Apache-2.0

package cbor

// TreeEntry is one key/value pair of a decoded CBOR map, in wire order,
// returned by DecodeTree.
type TreeEntry struct {
	Key   any `yaml:"key"`
	Value any `yaml:"value"`
}

// TreeTag is a decoded CBOR tag item, returned by DecodeTree.
type TreeTag struct {
	Number uint64 `yaml:"tag"`
	Value  any    `yaml:"value"`
}

// DecodeTree scans data into a generic, untyped tree - nil, bool, uint64,
// int64, float64, string, []byte, []any (array), []TreeEntry (map), or
// TreeTag (tag) - with no target type required. It exists for diagnostic
// tooling (cmd/cbor2yaml) that needs to render arbitrary CBOR without
// knowing its shape in advance, the same role Karpenter's controller debug
// dumps and fxamacker/cbor's Diagnose play elsewhere in the pack.
func DecodeTree(data []byte) (any, error) {
	s := newScanner(data, 0, 0)
	sv, err := s.scan()
	if err != nil {
		return nil, err
	}
	return treeFromScanned(sv), nil
}

func treeFromScanned(sv scannedValue) any {
	switch sv.kind {
	case kindLiteral:
		switch sv.lit {
		case litBool:
			return sv.boolean
		case litUint:
			return unboxUint(sv)
		case litNint:
			return int64(unboxNint(sv))
		case litFloat16, litFloat32, litFloat64:
			return unboxFloat(sv)
		case litStr:
			s, _ := unboxString(sv)
			return s
		case litBin:
			return sv.bytes
		default:
			return nil
		}
	case kindArray:
		out := make([]any, len(sv.items))
		for i, item := range sv.items {
			out[i] = treeFromScanned(item)
		}
		return out
	case kindMap:
		entries := make([]TreeEntry, 0, len(sv.items)/2)
		for i := 0; i+1 < len(sv.items); i += 2 {
			entries = append(entries, TreeEntry{
				Key:   treeFromScanned(sv.items[i]),
				Value: treeFromScanned(sv.items[i+1]),
			})
		}
		return entries
	case kindTagged:
		return TreeTag{Number: sv.tag, Value: treeFromScanned(*sv.tagValue)}
	default:
		return nil
	}
}

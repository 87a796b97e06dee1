package settings

import (
	"reflect"
	"sort"

	"github.com/cockroachdb/errors"
)

// Kind tags the shape held by a Value.
type Kind uint8

const (
	KindUndefined Kind = iota // absent; never merged
	KindScalar                // string, number, bool or null
	KindMapping               // string-keyed mapping
	KindSequence              // ordered sequence
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "undefined"
	}
}

// Map is a string-keyed mapping of settings values.
type Map map[string]Value

// Value is a tagged settings value. The zero Value is undefined.
type Value struct {
	kind     Kind
	scalar   any
	mapping  Map
	sequence []Value
}

// Scalar wraps a leaf value. A nil argument is a defined null.
func Scalar(v any) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Mapping wraps m. A nil m becomes an empty mapping.
func Mapping(m Map) Value {
	if m == nil {
		m = Map{}
	}
	return Value{kind: KindMapping, mapping: m}
}

// Sequence wraps items in order.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, sequence: items}
}

// Kind returns the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsDefined reports whether v holds anything, including null.
func (v Value) IsDefined() bool { return v.kind != KindUndefined }

// Scalar returns the leaf value, or nil for composites.
func (v Value) Scalar() any { return v.scalar }

// Map returns the mapping, or nil when v is not a mapping.
func (v Value) Map() Map { return v.mapping }

// Items returns the sequence, or nil when v is not a sequence.
func (v Value) Items() []Value { return v.sequence }

// Any converts v back to plain Go values: map[string]any, []any or the scalar.
func (v Value) Any() any {
	switch v.kind {
	case KindMapping:
		return v.mapping.Any()
	case KindSequence:
		out := make([]any, len(v.sequence))
		for i, item := range v.sequence {
			out[i] = item.Any()
		}
		return out
	default:
		return v.scalar
	}
}

// clone deep-copies composites so that merged targets never alias a source.
func (v Value) clone() Value {
	switch v.kind {
	case KindMapping:
		return Mapping(v.mapping.Clone())
	case KindSequence:
		items := make([]Value, len(v.sequence))
		for i, item := range v.sequence {
			items[i] = item.clone()
		}
		return Sequence(items...)
	default:
		return v
	}
}

// Any converts m to a map[string]any. Undefined entries are dropped.
func (m Map) Any() map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if !v.IsDefined() {
			continue
		}
		out[k] = v.Any()
	}
	return out
}

// Clone returns a deep copy of m.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v.clone()
	}
	return out
}

// Keys returns the keys of m in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromAny converts decoded YAML or JSON data into a Value.
//
// Mappings must have string keys. Slices other than []byte become sequences.
// Anything else is kept as a scalar.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Scalar(nil), nil
	case Value:
		return t, nil
	case Map:
		return Mapping(t), nil
	case map[string]any:
		m := make(Map, len(t))
		for k, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, errors.Wrapf(err, "key %q", k)
			}
			m[k] = v
		}
		return Mapping(m), nil
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, errors.Wrapf(err, "index %d", i)
			}
			items[i] = v
		}
		return Sequence(items...), nil
	case string, bool, int, int64, float64, []byte:
		return Scalar(t), nil
	}
	return fromReflect(reflect.ValueOf(x))
}

// FromMap converts a decoded document into a Map.
func FromMap(m map[string]any) (Map, error) {
	v, err := FromAny(m)
	if err != nil {
		return nil, err
	}
	return v.Map(), nil
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Map:
		m := make(Map, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, ok := iter.Key().Interface().(string)
			if !ok {
				return Value{}, errors.Newf("mapping key %v is %T, want string",
					iter.Key().Interface(), iter.Key().Interface())
			}
			v, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, errors.Wrapf(err, "key %q", key)
			}
			m[key] = v
		}
		return Mapping(m), nil
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			v, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Value{}, errors.Wrapf(err, "index %d", i)
			}
			items[i] = v
		}
		return Sequence(items...), nil
	default:
		return Scalar(rv.Interface()), nil
	}
}

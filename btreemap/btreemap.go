// Package btreemap provides the ordered map used for every protobuf map field
// in generated code. Iteration order is ascending key order, never insertion
// or hash order, so two maps holding the same entries iterate and encode
// identically.
package btreemap

import (
	"bytes"
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/google/btree"

	"github.com/fnasraoui/logicaldecoding/jsoncodec"
)

// Key lists the key types protobuf allows in map fields. false orders before
// true.
type Key interface {
	bool | int32 | int64 | uint32 | uint64 | string
}

const degree = 16

type entry[K Key, V any] struct {
	key   K
	value V
}

// Map is a key-ordered map. The zero value is an empty map ready to use.
// Like a builtin map, copies of a Map share storage; use Clone for an
// independent copy.
type Map[K Key, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

// From builds a Map holding the entries of m.
func From[K Key, V any](m map[K]V) Map[K, V] {
	var out Map[K, V]
	for k, v := range m {
		out.Set(k, v)
	}
	return out
}

func (m *Map[K, V]) init() {
	if m.tree == nil {
		m.tree = btree.NewG(degree, func(a, b entry[K, V]) bool {
			return less(a.key, b.key)
		})
	}
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int {
	if m.tree == nil {
		return 0
	}
	return m.tree.Len()
}

// Get returns the value stored under k.
func (m Map[K, V]) Get(k K) (V, bool) {
	if m.tree == nil {
		var zero V
		return zero, false
	}
	e, ok := m.tree.Get(entry[K, V]{key: k})
	return e.value, ok
}

// Has reports whether k is present.
func (m Map[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Set stores v under k, replacing any previous value.
func (m *Map[K, V]) Set(k K, v V) {
	m.init()
	m.tree.ReplaceOrInsert(entry[K, V]{key: k, value: v})
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	if m.tree == nil {
		return false
	}
	_, ok := m.tree.Delete(entry[K, V]{key: k})
	return ok
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.tree = nil
}

// Ascend calls fn for each entry in ascending key order until fn returns false.
func (m Map[K, V]) Ascend(fn func(k K, v V) bool) {
	if m.tree == nil {
		return
	}
	m.tree.Ascend(func(e entry[K, V]) bool {
		return fn(e.key, e.value)
	})
}

// All iterates over the entries in ascending key order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Ascend(yield)
	}
}

// Keys returns the keys in ascending order.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	m.Ascend(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Clone returns a copy that does not share storage with m. Values are copied
// shallowly.
func (m Map[K, V]) Clone() Map[K, V] {
	if m.tree == nil {
		return Map[K, V]{}
	}
	return Map[K, V]{tree: m.tree.Clone()}
}

// Equal reports whether a and b hold the same entries.
func Equal[K Key, V comparable](a, b Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc reports whether a and b hold the same keys with values that eq
// considers equal.
func EqualFunc[K Key, V any](a, b Map[K, V], eq func(V, V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	type kv struct {
		k K
		v V
	}
	left := make([]kv, 0, a.Len())
	a.Ascend(func(k K, v V) bool {
		left = append(left, kv{k, v})
		return true
	})
	i := 0
	equal := true
	b.Ascend(func(k K, v V) bool {
		if left[i].k != k || !eq(left[i].v, v) {
			equal = false
			return false
		}
		i++
		return true
	})
	return equal
}

// MarshalJSON encodes the map as a JSON object with keys in ascending order.
// Non-string keys are written in their decimal or boolean text form.
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	first := true
	m.Ascend(func(k K, v V) bool {
		var key, value []byte
		if key, err = jsoncodec.Marshal(formatKey(k)); err != nil {
			return false
		}
		if value, err = jsoncodec.Marshal(v); err != nil {
			err = fmt.Errorf("key %v: %w", k, err)
			return false
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the contents of m with the entries of a JSON object.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var raw map[string]jsoncodec.RawMessage
	if err := jsoncodec.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Clear()
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		k, err := parseKey[K](name)
		if err != nil {
			return err
		}
		var v V
		if err := jsoncodec.Unmarshal(raw[name], &v); err != nil {
			return fmt.Errorf("key %q: %w", name, err)
		}
		m.Set(k, v)
	}
	return nil
}

func less[K Key](a, b K) bool {
	switch x := any(a).(type) {
	case bool:
		return !x && any(b).(bool)
	case int32:
		return x < any(b).(int32)
	case int64:
		return x < any(b).(int64)
	case uint32:
		return x < any(b).(uint32)
	case uint64:
		return x < any(b).(uint64)
	case string:
		return x < any(b).(string)
	}
	panic(fmt.Sprintf("btreemap: unsupported key type %T", a))
}

func formatKey[K Key](k K) string {
	switch x := any(k).(type) {
	case bool:
		return strconv.FormatBool(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case string:
		return x
	}
	panic(fmt.Sprintf("btreemap: unsupported key type %T", k))
}

func parseKey[K Key](s string) (K, error) {
	var zero K
	var (
		v   any
		err error
	)
	switch any(zero).(type) {
	case bool:
		v, err = strconv.ParseBool(s)
	case int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		v = int32(n)
	case int64:
		v, err = strconv.ParseInt(s, 10, 64)
	case uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		v = uint32(n)
	case uint64:
		v, err = strconv.ParseUint(s, 10, 64)
	case string:
		v = s
	}
	if err != nil {
		return zero, fmt.Errorf("invalid map key %q: %w", s, err)
	}
	return v.(K), nil
}

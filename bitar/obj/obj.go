// Package obj provides generic helpers over maps.
package obj

import (
	"cmp"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"time"
)

// Entry is a key/value pair of a map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Keys returns the keys of m in ascending order.
func Keys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}

// Entries returns the pairs of m ordered by key.
func Entries[M ~map[K]V, K cmp.Ordered, V any](m M) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))

	for _, k := range Keys(m) {
		out = append(out, Entry[K, V]{Key: k, Value: m[k]})
	}

	return out
}

// FromEntries builds a map from pairs. Later pairs win on duplicate keys.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	out := make(map[K]V, len(entries))

	for _, e := range entries {
		out[e.Key] = e.Value
	}

	return out
}

// Pick returns a new map holding only the given keys that exist in m.
func Pick[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := make(M, len(keys))

	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}

	return out
}

// Omit returns a new map without the given keys.
func Omit[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := maps.Clone(m)
	if out == nil {
		out = make(M)
	}

	for _, k := range keys {
		delete(out, k)
	}

	return out
}

// Filter returns a new map with the pairs pred accepts.
func Filter[M ~map[K]V, K comparable, V any](m M, pred func(K, V) bool) M {
	out := make(M)

	for k, v := range m {
		if pred(k, v) {
			out[k] = v
		}
	}

	return out
}

// HasKey reports whether m contains k.
func HasKey[M ~map[K]V, K comparable, V any](m M, k K) bool {
	_, ok := m[k]

	return ok
}

// Remap returns a map with the keys of m all set to value.
func Remap[M ~map[K]V, K comparable, V, W any](m M, value W) map[K]W {
	out := make(map[K]W, len(m))

	for k := range m {
		out[k] = value
	}

	return out
}

// Split returns one map per group, each holding the group's keys present in m.
//
//	obj.Split(m, []string{"a", "b"}, []string{"c"}) // [{a b} {c}]
func Split[M ~map[K]V, K comparable, V any](m M, groups ...[]K) []M {
	out := make([]M, len(groups))

	for i, group := range groups {
		out[i] = Pick(m, group...)
	}

	return out
}

// Flatten turns nested maps and slices into a single level map keyed by path: map
// keys are joined with "." and slice elements get a "[i]" suffix. time.Time values
// are leaves rendered with String; empty maps and slices disappear.
//
//	obj.Flatten(map[string]any{"a": map[string]any{"b": 1}, "c": []any{3, 4}})
//	// map[a.b:1 c[0]:3 c[1]:4]
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any)

	for k, v := range m {
		flatten(out, k, v)
	}

	return out
}

func flatten(out map[string]any, path string, value any) {
	if value == nil {
		out[path] = nil
		return
	}

	if t, ok := value.(time.Time); ok {
		out[path] = t.String()
		return
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			out[path] = value
			return
		}

		iter := rv.MapRange()
		for iter.Next() {
			flatten(out, path+"."+iter.Key().String(), iter.Value().Interface())
		}
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			out[path] = value
			return
		}

		for i := range rv.Len() {
			flatten(out, path+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface())
		}
	default:
		out[path] = value
	}
}

package reactivity

import (
	"fmt"
	"iter"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Object is a plain record: string or Symbol keys in insertion order plus an
// optional prototype consulted for keys it does not own. The prototype is an
// *Object or a *ReactiveObject.
type Object struct {
	keys   []Key
	fields map[Key]any
	proto  any
	skip   bool
}

// NewObject builds an object from alternating keys and values.
func NewObject(kv ...any) *Object {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("reactivity: NewObject needs key/value pairs, got %d values", len(kv)))
	}
	o := &Object{fields: make(map[Key]any, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		o.Set(kv[i], kv[i+1])
	}
	return o
}

// Get reads key from the object or, failing that, its prototype chain.
func (o *Object) Get(key Key) any {
	v, _ := o.Lookup(key)
	return v
}

// Lookup is Get that also reports whether the key was found.
func (o *Object) Lookup(key Key) (any, bool) {
	if v, ok := o.fields[key]; ok {
		return v, true
	}
	switch p := o.proto.(type) {
	case *Object:
		return p.Lookup(key)
	case *ReactiveObject:
		if p.Has(key) {
			return p.Get(key), true
		}
	}
	return nil, false
}

// lookupRaw walks the prototype chain without going through any wrapper.
func (o *Object) lookupRaw(key Key) (any, bool) {
	for cur := o; cur != nil; {
		if v, ok := cur.fields[key]; ok {
			return v, true
		}
		switch p := cur.proto.(type) {
		case *Object:
			cur = p
		case *ReactiveObject:
			cur = p.target
		default:
			cur = nil
		}
	}
	return nil, false
}

func (o *Object) GetOwn(key Key) (any, bool) {
	v, ok := o.fields[key]
	return v, ok
}

func (o *Object) Set(key Key, value any) {
	if o.fields == nil {
		o.fields = map[Key]any{}
	}
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = value
}

// Delete removes an own key. Deleting a missing key succeeds.
func (o *Object) Delete(key Key) bool {
	if _, ok := o.fields[key]; !ok {
		return true
	}
	delete(o.fields, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return true
}

func (o *Object) HasOwn(key Key) bool {
	_, ok := o.fields[key]
	return ok
}

// Has reports whether key is present on the object or its prototype chain.
func (o *Object) Has(key Key) bool {
	if o.HasOwn(key) {
		return true
	}
	switch p := o.proto.(type) {
	case *Object:
		return p.Has(key)
	case *ReactiveObject:
		return p.Has(key)
	}
	return false
}

// Keys returns the own keys in insertion order.
func (o *Object) Keys() []Key {
	return slices.Clone(o.keys)
}

func (o *Object) Len() int {
	return len(o.keys)
}

// SetPrototype sets the object consulted for missing keys. Anything other
// than nil, an *Object or a *ReactiveObject is ignored.
func (o *Object) SetPrototype(proto any) {
	switch proto.(type) {
	case nil, *Object, *ReactiveObject:
		o.proto = proto
	}
}

func (o *Object) Prototype() any {
	return o.proto
}

type holeT struct{}

// Array is a list that may contain holes: indexes inside its length that
// hold no element.
type Array struct {
	items []any
	skip  bool
}

func NewArray(items ...any) *Array {
	return &Array{items: slices.Clone(items)}
}

func (a *Array) Len() int {
	return len(a.items)
}

// Get returns the element at i, or nil for holes and indexes out of range.
func (a *Array) Get(i int) any {
	if !a.Has(i) {
		return nil
	}
	return a.items[i]
}

// Has reports whether index i holds an element.
func (a *Array) Has(i int) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	_, isHole := a.items[i].(holeT)
	return !isHole
}

// Set stores v at i, growing the array with holes when i is past the end.
func (a *Array) Set(i int, v any) {
	if i < 0 {
		return
	}
	for len(a.items) <= i {
		a.items = append(a.items, holeT{})
	}
	a.items[i] = v
}

// Delete punches a hole at i without changing the length.
func (a *Array) Delete(i int) bool {
	if a.Has(i) {
		a.items[i] = holeT{}
	}
	return true
}

// SetLen truncates the array or extends it with holes.
func (a *Array) SetLen(n int) {
	n = max(n, 0)
	if n < len(a.items) {
		clear(a.items[n:])
		a.items = a.items[:n]
		return
	}
	for len(a.items) < n {
		a.items = append(a.items, holeT{})
	}
}

// Slice copies the elements out, holes read as nil.
func (a *Array) Slice() []any {
	out := make([]any, len(a.items))
	for i := range a.items {
		out[i] = a.Get(i)
	}
	return out
}

// Map is an insertion-ordered map. Keys must be comparable.
type Map struct {
	keys   []any
	values map[any]any
	skip   bool
}

// NewMap builds a map from alternating keys and values.
func NewMap(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("reactivity: NewMap needs key/value pairs, got %d values", len(kv)))
	}
	m := &Map{values: make(map[any]any, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}
	return m
}

func (m *Map) Get(key any) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Map) Has(key any) bool {
	_, ok := m.values[key]
	return ok
}

func (m *Map) Set(key, value any) {
	if m.values == nil {
		m.values = map[any]any{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Map) Delete(key any) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

func (m *Map) Clear() {
	clear(m.values)
	m.keys = nil
}

func (m *Map) Len() int {
	return len(m.keys)
}

func (m *Map) Keys() []any {
	return slices.Clone(m.keys)
}

// All yields the entries present when iteration starts, skipping any removed
// along the way.
func (m *Map) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, k := range slices.Clone(m.keys) {
			v, ok := m.values[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

func (m *Map) clone() *Map {
	c := &Map{keys: slices.Clone(m.keys), values: make(map[any]any, len(m.values))}
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}

// Set is an insertion-ordered set. Members must be comparable.
type Set struct {
	members mapset.Set[any]
	order   []any
	skip    bool
}

func NewSet(members ...any) *Set {
	s := &Set{members: mapset.NewThreadUnsafeSet[any]()}
	for _, m := range members {
		s.Add(m)
	}
	return s
}

func (s *Set) Has(v any) bool {
	return s.members != nil && s.members.Contains(v)
}

func (s *Set) Add(v any) {
	if s.members == nil {
		s.members = mapset.NewThreadUnsafeSet[any]()
	}
	if s.members.Add(v) {
		s.order = append(s.order, v)
	}
}

func (s *Set) Delete(v any) bool {
	if !s.Has(v) {
		return false
	}
	s.members.Remove(v)
	if i := slices.Index(s.order, v); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

func (s *Set) Clear() {
	if s.members != nil {
		s.members.Clear()
	}
	s.order = nil
}

func (s *Set) Len() int {
	return len(s.order)
}

func (s *Set) Values() []any {
	return slices.Clone(s.order)
}

// All yields the members present when iteration starts, skipping any
// removed along the way.
func (s *Set) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range slices.Clone(s.order) {
			if !s.Has(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Set) clone() *Set {
	return NewSet(s.order...)
}

package reactivity

import "iter"

// ReactiveMap is the wrapper of a *Map. Keys may be given in wrapped or raw
// form; both address the same entry.
type ReactiveMap struct {
	proxyBase
	target *Map

	// set for a readonly view of a mutable wrapper
	inner *ReactiveMap
}

func (r *ReactiveMap) raw() any { return r.target }

func (r *ReactiveMap) isReactive() bool {
	return !r.readonly || r.inner != nil
}

func (r *ReactiveMap) trackKey(op OpType, key any) {
	if r.readonly {
		return
	}
	rawKey := ToRaw(key)
	if !identical(key, rawKey) {
		r.rs.track(r.target, op, key)
	}
	r.rs.track(r.target, op, rawKey)
}

func (r *ReactiveMap) Get(key any) (any, bool) {
	r.trackKey(OpGet, key)

	lookup := key
	switch rawKey := ToRaw(key); {
	case r.target.Has(key):
	case r.target.Has(rawKey):
		lookup = rawKey
	default:
		if r.inner != nil {
			// let the mutable wrapper record its own dependency
			r.inner.Get(key)
		}
		return nil, false
	}

	var v any
	if r.inner != nil {
		v, _ = r.inner.Get(lookup)
	} else {
		v, _ = r.target.Get(lookup)
	}
	return r.wrapNested(v), true
}

func (r *ReactiveMap) Has(key any) bool {
	r.trackKey(OpHas, key)
	has := r.target.Has
	if r.inner != nil {
		has = r.inner.Has
	}
	rawKey := ToRaw(key)
	if identical(key, rawKey) {
		return has(key)
	}
	return has(key) || has(rawKey)
}

// Size depends on membership only.
func (r *ReactiveMap) Size() int {
	if r.inner != nil {
		return r.inner.Size()
	}
	if !r.readonly {
		r.rs.track(r.target, OpIterate, IterateKey)
	}
	return r.target.Len()
}

// Set stores value under key and returns r.
func (r *ReactiveMap) Set(key, value any) *ReactiveMap {
	if r.readonly {
		r.warnReadonly(OpSet, key, r.target)
		return r
	}
	if !r.shallow && !IsShallow(value) && !IsReadonly(value) {
		value = ToRaw(value)
	}

	t := r.target
	hadKey := t.Has(key)
	if !hadKey {
		key = ToRaw(key)
		hadKey = t.Has(key)
	} else if devMode {
		r.checkIdentityKeys(key)
	}

	oldValue, _ := t.Get(key)
	t.Set(key, value)
	if !hadKey {
		r.rs.trigger(t, OpAdd, key, value, nil, nil)
	} else if hasChanged(value, oldValue) {
		r.rs.trigger(t, OpSet, key, value, oldValue, nil)
	}
	return r
}

func (r *ReactiveMap) Delete(key any) bool {
	if r.readonly {
		r.warnReadonly(OpDelete, key, r.target)
		return false
	}
	t := r.target
	hadKey := t.Has(key)
	if !hadKey {
		key = ToRaw(key)
		hadKey = t.Has(key)
	} else if devMode {
		r.checkIdentityKeys(key)
	}

	oldValue, _ := t.Get(key)
	ok := t.Delete(key)
	if hadKey {
		r.rs.trigger(t, OpDelete, key, nil, oldValue, nil)
	}
	return ok
}

// Clear removes every entry and invalidates everything tracked on the map.
func (r *ReactiveMap) Clear() {
	if r.readonly {
		r.warnReadonly(OpClear, nil, r.target)
		return
	}
	t := r.target
	hadItems := t.Len() != 0
	var oldTarget any
	if devMode {
		oldTarget = t.clone()
	}
	t.Clear()
	if hadItems {
		r.rs.trigger(t, OpClear, nil, nil, nil, oldTarget)
	}
}

func (r *ReactiveMap) checkIdentityKeys(key any) {
	rawKey := ToRaw(key)
	if !identical(rawKey, key) && r.target.Has(rawKey) {
		r.rs.warn("map contains both the raw and reactive versions of the same object as keys, which can lead to inconsistencies",
			"key", key, "target", r.target)
	}
}

// ForEach calls fn for every entry with the value and key wrapped like Get
// results.
func (r *ReactiveMap) ForEach(fn func(value, key any, m *ReactiveMap)) {
	for k, v := range r.All() {
		fn(v, k, r)
	}
}

// All yields wrapped key/value pairs. Each range depends on the map's
// membership and values.
func (r *ReactiveMap) All() iter.Seq2[any, any] {
	return r.iterate(IterateKey)
}

// Entries is All.
func (r *ReactiveMap) Entries() iter.Seq2[any, any] {
	return r.iterate(IterateKey)
}

// Keys yields the wrapped keys. Ranging over it depends on membership only,
// so replacing a value does not re-run the ranging effect.
func (r *ReactiveMap) Keys() iter.Seq[any] {
	return func(yield func(any) bool) {
		for k := range r.iterate(MapKeyIterateKey) {
			if !yield(k) {
				return
			}
		}
	}
}

func (r *ReactiveMap) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range r.iterate(IterateKey) {
			if !yield(v) {
				return
			}
		}
	}
}

func (r *ReactiveMap) iterate(key Key) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		var entries iter.Seq2[any, any]
		if r.inner != nil {
			entries = r.inner.iterate(key)
		} else {
			if !r.readonly {
				r.rs.track(r.target, OpIterate, key)
			}
			entries = r.target.All()
		}
		for k, v := range entries {
			if !yield(r.wrapNested(k), r.wrapNested(v)) {
				return
			}
		}
	}
}

// ReactiveSet is the wrapper of a *Set.
type ReactiveSet struct {
	proxyBase
	target *Set

	// set for a readonly view of a mutable wrapper
	inner *ReactiveSet
}

func (r *ReactiveSet) raw() any { return r.target }

func (r *ReactiveSet) isReactive() bool {
	return !r.readonly || r.inner != nil
}

func (r *ReactiveSet) Has(v any) bool {
	raw := ToRaw(v)
	if !r.readonly {
		if !identical(v, raw) {
			r.rs.track(r.target, OpHas, v)
		}
		r.rs.track(r.target, OpHas, raw)
	}
	has := r.target.Has
	if r.inner != nil {
		has = r.inner.Has
	}
	if identical(v, raw) {
		return has(v)
	}
	return has(v) || has(raw)
}

func (r *ReactiveSet) Size() int {
	if r.inner != nil {
		return r.inner.Size()
	}
	if !r.readonly {
		r.rs.track(r.target, OpIterate, IterateKey)
	}
	return r.target.Len()
}

// Add inserts the raw form of v and returns r.
func (r *ReactiveSet) Add(v any) *ReactiveSet {
	if r.readonly {
		r.warnReadonly(OpAdd, v, r.target)
		return r
	}
	if !r.shallow && !IsShallow(v) && !IsReadonly(v) {
		v = ToRaw(v)
	}
	if !r.target.Has(v) {
		r.target.Add(v)
		r.rs.trigger(r.target, OpAdd, v, v, nil, nil)
	}
	return r
}

func (r *ReactiveSet) Delete(v any) bool {
	if r.readonly {
		r.warnReadonly(OpDelete, v, r.target)
		return false
	}
	t := r.target
	hadKey := t.Has(v)
	if !hadKey {
		v = ToRaw(v)
		hadKey = t.Has(v)
	} else if devMode {
		raw := ToRaw(v)
		if !identical(raw, v) && t.Has(raw) {
			r.rs.warn("set contains both the raw and reactive versions of the same object, which can lead to inconsistencies",
				"key", v, "target", t)
		}
	}
	ok := t.Delete(v)
	if hadKey {
		r.rs.trigger(t, OpDelete, v, nil, v, nil)
	}
	return ok
}

func (r *ReactiveSet) Clear() {
	if r.readonly {
		r.warnReadonly(OpClear, nil, r.target)
		return
	}
	t := r.target
	hadItems := t.Len() != 0
	var oldTarget any
	if devMode {
		oldTarget = t.clone()
	}
	t.Clear()
	if hadItems {
		r.rs.trigger(t, OpClear, nil, nil, nil, oldTarget)
	}
}

// ForEach calls fn for every member; value and key are the same wrapped
// member.
func (r *ReactiveSet) ForEach(fn func(value, key any, s *ReactiveSet)) {
	for v := range r.Values() {
		fn(v, v, r)
	}
}

// Values yields the wrapped members.
func (r *ReactiveSet) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		var members iter.Seq[any]
		if r.inner != nil {
			members = r.inner.Values()
		} else {
			if !r.readonly {
				r.rs.track(r.target, OpIterate, IterateKey)
			}
			members = r.target.All()
		}
		for v := range members {
			if !yield(r.wrapNested(v)) {
				return
			}
		}
	}
}

// Keys is Values.
func (r *ReactiveSet) Keys() iter.Seq[any] {
	return r.Values()
}

// All is Values.
func (r *ReactiveSet) All() iter.Seq[any] {
	return r.Values()
}

// Entries yields every member paired with itself.
func (r *ReactiveSet) Entries() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for v := range r.Values() {
			if !yield(v, v) {
				return
			}
		}
	}
}

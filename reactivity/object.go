package reactivity

import "iter"

// ReactiveObject is the wrapper of an *Object. Reads through it are tracked
// and writes through it trigger.
type ReactiveObject struct {
	proxyBase
	target *Object

	// set for a readonly view of a mutable wrapper
	inner *ReactiveObject
}

func (r *ReactiveObject) raw() any { return r.target }

func (r *ReactiveObject) isReactive() bool {
	return !r.readonly || r.inner != nil
}

// Get reads key through the prototype chain. Unless the wrapper is shallow,
// refs are unwrapped and nested targets come back wrapped with the same
// variant.
func (r *ReactiveObject) Get(key Key) any {
	var res any
	if r.inner != nil {
		res = r.inner.Get(key)
	} else {
		res = r.target.Get(key)
	}

	if skipTracking(key) {
		return res
	}
	if !r.readonly {
		r.rs.track(r.target, OpGet, key)
	}
	if r.shallow {
		return res
	}
	if ref, ok := res.(AnyRef); ok {
		return ref.AnyValue()
	}
	return r.wrapNested(res)
}

// Set writes key on the wrapped object. It reports false when the write was
// refused: the wrapper is readonly, or the slot holds a readonly ref and
// value is not a ref.
//
// A key found only on the prototype chain is written to this object and
// triggers here alone.
func (r *ReactiveObject) Set(key Key, value any) bool {
	if r.readonly {
		r.warnReadonly(OpSet, key, r.target)
		return false
	}

	t := r.target
	oldValue, _ := t.lookupRaw(key)
	if IsReadonly(oldValue) && IsRef(oldValue) && !IsRef(value) {
		return false
	}
	if !r.shallow {
		if !IsShallow(value) && !IsReadonly(value) {
			oldValue = ToRaw(oldValue)
			value = ToRaw(value)
		}
		if ref, ok := oldValue.(AnyRef); ok && !IsRef(value) {
			ref.SetAnyValue(value)
			return true
		}
	}

	hadKey := t.HasOwn(key)
	t.Set(key, value)

	if !hadKey {
		r.rs.trigger(t, OpAdd, key, value, nil, nil)
	} else if hasChanged(value, oldValue) {
		r.rs.trigger(t, OpSet, key, value, oldValue, nil)
	}
	return true
}

// Delete removes an own key and triggers if it was present.
func (r *ReactiveObject) Delete(key Key) bool {
	if r.readonly {
		r.warnReadonly(OpDelete, key, r.target)
		return false
	}
	oldValue, hadKey := r.target.GetOwn(key)
	ok := r.target.Delete(key)
	if ok && hadKey {
		r.rs.trigger(r.target, OpDelete, key, nil, oldValue, nil)
	}
	return ok
}

// Has reports whether key is on the object or its prototype chain.
func (r *ReactiveObject) Has(key Key) bool {
	if r.inner != nil {
		return r.inner.Has(key)
	}
	res := r.target.Has(key)
	if r.readonly {
		return res
	}
	if s, ok := key.(Symbol); !ok || !builtInSymbols.Contains(s) {
		r.rs.track(r.target, OpHas, key)
	}
	return res
}

// OwnKeys lists the own keys and depends on the key set, not on any value.
func (r *ReactiveObject) OwnKeys() []Key {
	if r.inner != nil {
		return r.inner.OwnKeys()
	}
	if !r.readonly {
		r.rs.track(r.target, OpIterate, IterateKey)
	}
	return r.target.Keys()
}

func (r *ReactiveObject) Len() int {
	return len(r.OwnKeys())
}

// All yields own keys with their values read through Get.
func (r *ReactiveObject) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for _, k := range r.OwnKeys() {
			if !yield(k, r.Get(k)) {
				return
			}
		}
	}
}

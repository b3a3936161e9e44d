package reactivity

type targetType int

const (
	targetInvalid targetType = iota
	targetCommon
	targetCollection
)

func targetTypeOf(v any) targetType {
	switch t := v.(type) {
	case *Object:
		if t != nil && !t.skip {
			return targetCommon
		}
	case *Array:
		if t != nil && !t.skip {
			return targetCommon
		}
	case *Map:
		if t != nil && !t.skip {
			return targetCollection
		}
	case *Set:
		if t != nil && !t.skip {
			return targetCollection
		}
	}
	return targetInvalid
}

// isObject reports whether v can be wrapped, or already is a wrapper.
func isObject(v any) bool {
	switch v.(type) {
	case *Object, *Array, *Map, *Set,
		*ReactiveObject, *ReactiveArray, *ReactiveMap, *ReactiveSet:
		return true
	}
	return false
}

// proxyBase carries a wrapper's flags. They live on the wrapper, never in the
// wrapped data.
type proxyBase struct {
	rs       *ReactiveSystem
	readonly bool
	shallow  bool
}

func (p *proxyBase) base() *proxyBase {
	return p
}

type wrapper interface {
	base() *proxyBase
	raw() any
	isReactive() bool
}

// Reactive returns the mutable deep wrapper of v. Values that cannot be
// wrapped, and readonly wrappers, are returned unchanged.
func (rs *ReactiveSystem) Reactive(v any) any {
	if IsReadonly(v) {
		return v
	}
	return rs.createReactiveObject(v, false, false, rs.reactiveMap)
}

// ShallowReactive wraps only the top level of v: nested values are returned
// as stored and refs are not unwrapped.
func (rs *ReactiveSystem) ShallowReactive(v any) any {
	return rs.createReactiveObject(v, false, true, rs.shallowReactiveMap)
}

// Readonly returns a deep read-only view of v. A readonly view of a mutable
// wrapper still tracks through it.
func (rs *ReactiveSystem) Readonly(v any) any {
	return rs.createReactiveObject(v, true, false, rs.readonlyMap)
}

func (rs *ReactiveSystem) ShallowReadonly(v any) any {
	return rs.createReactiveObject(v, true, true, rs.shallowReadonlyMap)
}

func (rs *ReactiveSystem) createReactiveObject(target any, readonly, shallow bool, cache *proxyCache) any {
	base := proxyBase{rs: rs, readonly: readonly, shallow: shallow}

	if w, ok := target.(wrapper); ok {
		// only a readonly view of a mutable wrapper is a new wrapper
		if !readonly || !w.isReactive() || w.base().readonly {
			return target
		}
		switch t := target.(type) {
		case *ReactiveObject:
			return cached(&cache.overObjects, t, func() *ReactiveObject {
				return &ReactiveObject{proxyBase: base, target: t.target, inner: t}
			})
		case *ReactiveArray:
			return cached(&cache.overArrays, t, func() *ReactiveArray {
				return &ReactiveArray{proxyBase: base, target: t.target, inner: t}
			})
		case *ReactiveMap:
			return cached(&cache.overMaps, t, func() *ReactiveMap {
				return &ReactiveMap{proxyBase: base, target: t.target, inner: t}
			})
		case *ReactiveSet:
			return cached(&cache.overSets, t, func() *ReactiveSet {
				return &ReactiveSet{proxyBase: base, target: t.target, inner: t}
			})
		}
		return target
	}

	if targetTypeOf(target) == targetInvalid {
		if devMode && target != nil && !isObject(target) {
			rs.warn("value cannot be made reactive", "target", target)
		}
		return target
	}

	switch t := target.(type) {
	case *Object:
		return cached(&cache.objects, t, func() *ReactiveObject {
			return &ReactiveObject{proxyBase: base, target: t}
		})
	case *Array:
		return cached(&cache.arrays, t, func() *ReactiveArray {
			return &ReactiveArray{proxyBase: base, target: t}
		})
	case *Map:
		return cached(&cache.maps, t, func() *ReactiveMap {
			return &ReactiveMap{proxyBase: base, target: t}
		})
	case *Set:
		return cached(&cache.sets, t, func() *ReactiveSet {
			return &ReactiveSet{proxyBase: base, target: t}
		})
	}
	return target
}

// IsReactive reports whether v is a mutable wrapper, or a readonly view of
// one.
func IsReactive(v any) bool {
	if w, ok := v.(wrapper); ok {
		return w.isReactive()
	}
	return false
}

type readonlyFlagged interface {
	isReadonly() bool
}

type shallowFlagged interface {
	isShallow() bool
}

// IsReadonly reports whether v is a readonly wrapper or a computed ref
// without a setter.
func IsReadonly(v any) bool {
	if w, ok := v.(wrapper); ok {
		return w.base().readonly
	}
	if r, ok := v.(readonlyFlagged); ok {
		return r.isReadonly()
	}
	return false
}

// IsShallow reports whether v is a shallow wrapper or a shallow ref.
func IsShallow(v any) bool {
	if w, ok := v.(wrapper); ok {
		return w.base().shallow
	}
	if s, ok := v.(shallowFlagged); ok {
		return s.isShallow()
	}
	return false
}

// IsProxy reports whether v is any kind of wrapper.
func IsProxy(v any) bool {
	_, ok := v.(wrapper)
	return ok
}

// ToRaw returns the plain data behind any wrapper, v itself otherwise.
func ToRaw(v any) any {
	if w, ok := v.(wrapper); ok {
		return w.raw()
	}
	return v
}

// MarkRaw flags v so that it is never wrapped, and returns it.
func MarkRaw[T any](v T) T {
	switch t := ToRaw(v).(type) {
	case *Object:
		t.skip = true
	case *Array:
		t.skip = true
	case *Map:
		t.skip = true
	case *Set:
		t.skip = true
	}
	return v
}

func (rs *ReactiveSystem) toReactive(v any) any {
	if isObject(v) {
		return rs.Reactive(v)
	}
	return v
}

func (rs *ReactiveSystem) toReadonly(v any) any {
	if isObject(v) {
		return rs.Readonly(v)
	}
	return v
}

// wrapNested applies the nesting rule of a deep wrapper to a value read
// from it.
func (p *proxyBase) wrapNested(v any) any {
	if p.shallow {
		return v
	}
	if p.readonly {
		return p.rs.toReadonly(v)
	}
	return p.rs.toReactive(v)
}

func (p *proxyBase) warnReadonly(op OpType, key Key, target any) {
	p.rs.warn("operation failed: target is readonly", "op", op, "key", key, "target", target)
}

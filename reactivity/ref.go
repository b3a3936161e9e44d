package reactivity

// Getter is anything with a readable tracked value: refs, computed refs and
// custom refs.
type Getter[T any] interface {
	Value() T
}

// AnyRef is the untyped view of every ref kind.
type AnyRef interface {
	AnyValue() any
	SetAnyValue(v any)
	forceTrigger()
}

// Ref is a tracked single value. Unless shallow, a wrappable value stored in a
// Ref[any] (or a ref of the matching wrapper type) is wrapped reactively.
type Ref[T any] struct {
	rs       *ReactiveSystem
	value    T
	rawValue T
	dep      *Dep
	shallow  bool
}

func NewRef[T any](rs *ReactiveSystem, value T) *Ref[T] {
	return createRef(rs, value, false)
}

// ShallowRef creates a ref whose value is stored as given; only replacing the
// value triggers.
func ShallowRef[T any](rs *ReactiveSystem, value T) *Ref[T] {
	return createRef(rs, value, true)
}

func createRef[T any](rs *ReactiveSystem, value T, shallow bool) *Ref[T] {
	r := &Ref[T]{rs: rs, shallow: shallow}
	if shallow {
		r.rawValue = value
		r.value = value
	} else {
		r.rawValue = rawOf(value)
		r.value = r.convert(value)
	}
	return r
}

// MakeRef returns v when it already is a ref, a new Ref[any] holding v
// otherwise.
func MakeRef(rs *ReactiveSystem, v any) AnyRef {
	if r, ok := v.(AnyRef); ok {
		return r
	}
	return NewRef(rs, v)
}

// MakeShallowRef is MakeRef for shallow refs.
func MakeShallowRef(rs *ReactiveSystem, v any) AnyRef {
	if r, ok := v.(AnyRef); ok {
		return r
	}
	return ShallowRef(rs, v)
}

func (r *Ref[T]) convert(v T) T {
	if w, ok := r.rs.toReactive(v).(T); ok {
		return w
	}
	return v
}

func rawOf[T any](v T) T {
	if raw, ok := ToRaw(v).(T); ok {
		return raw
	}
	return v
}

func (r *Ref[T]) Value() T {
	r.rs.trackRefValue(&r.dep, r)
	return r.value
}

// SetValue stores v and triggers when it differs from the current raw
// value.
func (r *Ref[T]) SetValue(v T) {
	useDirect := r.shallow || IsShallow(v) || IsReadonly(v)
	if !useDirect {
		v = rawOf(v)
	}
	if !hasChanged(v, r.rawValue) {
		return
	}
	r.rawValue = v
	if useDirect {
		r.value = v
	} else {
		r.value = r.convert(v)
	}
	r.rs.triggerRefValue(r.dep, r, v)
}

func (r *Ref[T]) AnyValue() any { return r.Value() }

func (r *Ref[T]) SetAnyValue(v any) {
	if t, ok := v.(T); ok {
		r.SetValue(t)
	} else if v == nil {
		var zero T
		r.SetValue(zero)
	}
}

func (r *Ref[T]) forceTrigger() {
	r.rs.triggerRefValue(r.dep, r, r.value)
}

func (r *Ref[T]) isShallow() bool { return r.shallow }

func (rs *ReactiveSystem) trackRefValue(dep **Dep, target any) {
	if !rs.shouldTrack || rs.activeEffect == nil {
		return
	}
	if *dep == nil {
		*dep = newDep()
	}
	var ev *DebuggerEvent
	if devMode {
		ev = &DebuggerEvent{Effect: rs.activeEffect, Target: target, Type: OpGet, Key: ValueKey}
	}
	rs.trackEffects(*dep, ev)
}

func (rs *ReactiveSystem) triggerRefValue(dep *Dep, target, newValue any) {
	if dep == nil {
		return
	}
	var ev *DebuggerEvent
	if devMode {
		ev = &DebuggerEvent{Target: target, Type: OpSet, Key: ValueKey, NewValue: newValue}
	}
	rs.triggerEffects(dep.snapshot(), ev)
}

func IsRef(v any) bool {
	_, ok := v.(AnyRef)
	return ok
}

// Unref returns the value of a ref, v itself otherwise.
func Unref(v any) any {
	if r, ok := v.(AnyRef); ok {
		return r.AnyValue()
	}
	return v
}

// TriggerRef notifies the subscribers of r without changing it. Use it after
// mutating the inside of a shallow ref's value.
func TriggerRef(r AnyRef) {
	r.forceTrigger()
}

// CustomRef is a ref whose tracking and triggering are driven by user code.
type CustomRef[T any] struct {
	rs  *ReactiveSystem
	dep *Dep
	get func() T
	set func(T)
}

// NewCustomRef hands factory the track and trigger callbacks of a new ref and
// uses the returned functions to read and write it.
func NewCustomRef[T any](rs *ReactiveSystem, factory func(track, trigger func()) (get func() T, set func(T))) *CustomRef[T] {
	r := &CustomRef[T]{rs: rs}
	r.get, r.set = factory(
		func() { rs.trackRefValue(&r.dep, r) },
		func() { rs.triggerRefValue(r.dep, r, nil) },
	)
	return r
}

func (r *CustomRef[T]) Value() T { return r.get() }

func (r *CustomRef[T]) SetValue(v T) { r.set(v) }

func (r *CustomRef[T]) AnyValue() any { return r.get() }

func (r *CustomRef[T]) SetAnyValue(v any) {
	if t, ok := v.(T); ok {
		r.set(t)
	}
}

func (r *CustomRef[T]) forceTrigger() {
	r.rs.triggerRefValue(r.dep, r, nil)
}

// ObjectRef is a ref bound to one key of a reactive object.
type ObjectRef struct {
	object       *ReactiveObject
	key          Key
	defaultValue any
}

// ToRef returns a ref that reads and writes key through obj. A ref already
// stored at key is returned as is.
func ToRef(obj *ReactiveObject, key Key, defaultValue ...any) AnyRef {
	if v, ok := obj.target.lookupRaw(key); ok {
		if r, ok := v.(AnyRef); ok {
			return r
		}
	}
	r := &ObjectRef{object: obj, key: key}
	if len(defaultValue) > 0 {
		r.defaultValue = defaultValue[0]
	}
	return r
}

// ToRefs converts every own key of obj into a ref bound to it.
func ToRefs(obj *ReactiveObject) map[Key]AnyRef {
	refs := map[Key]AnyRef{}
	for _, k := range obj.OwnKeys() {
		refs[k] = ToRef(obj, k)
	}
	return refs
}

func (r *ObjectRef) AnyValue() any {
	if v := r.object.Get(r.key); v != nil {
		return v
	}
	return r.defaultValue
}

func (r *ObjectRef) SetAnyValue(v any) {
	r.object.Set(r.key, v)
}

func (r *ObjectRef) forceTrigger() {}

package reactivity

import "errors"

var ErrReadonly = errors.New("reactivity: computed value is readonly")

// ComputedRef is a lazily recomputed cached value. A source change only marks
// it dirty and notifies its subscribers; the getter runs on the next read.
type ComputedRef[T any] struct {
	rs     *ReactiveSystem
	dep    *Dep
	value  T
	effect *ReactiveEffect
	dirty  bool
	getter func(oldValue T) T
	setter func(T)
}

func Computed[T any](rs *ReactiveSystem, getter func(oldValue T) T) *ComputedRef[T] {
	return WritableComputed(rs, getter, nil)
}

// WritableComputed is Computed with a setter called by SetValue.
func WritableComputed[T any](rs *ReactiveSystem, getter func(oldValue T) T, setter func(T)) *ComputedRef[T] {
	c := &ComputedRef[T]{
		rs:     rs,
		dirty:  true,
		getter: getter,
		setter: setter,
	}
	c.effect = NewReactiveEffect(rs, func() error {
		c.value = c.getter(c.value)
		return nil
	}, func() {
		if !c.dirty {
			c.dirty = true
			rs.triggerRefValue(c.dep, c, nil)
		}
	})
	c.effect.computed = true
	return c
}

func (c *ComputedRef[T]) isSignalAware() {}

func (c *ComputedRef[T]) Value() T {
	c.rs.trackRefValue(&c.dep, c)
	if c.dirty {
		c.dirty = false
		if err := c.effect.Run(); err != nil {
			c.rs.reportError(c, err)
		}
	}
	return c.value
}

// SetValue hands v to the setter. It fails with ErrReadonly when there is
// none.
func (c *ComputedRef[T]) SetValue(v T) error {
	if c.setter == nil {
		c.rs.warn("write operation failed: computed value is readonly")
		return ErrReadonly
	}
	c.setter(v)
	return nil
}

// Effect returns the effect that recomputes c. Stopping it freezes c at its
// last value.
func (c *ComputedRef[T]) Effect() *ReactiveEffect {
	return c.effect
}

func (c *ComputedRef[T]) AnyValue() any { return c.Value() }

func (c *ComputedRef[T]) SetAnyValue(v any) {
	if t, ok := v.(T); ok {
		_ = c.SetValue(t)
	}
}

func (c *ComputedRef[T]) forceTrigger() {
	c.rs.triggerRefValue(c.dep, c, nil)
}

func (c *ComputedRef[T]) isReadonly() bool { return c.setter == nil }

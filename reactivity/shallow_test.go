package reactivity_test

import (
	"testing"

	"github.com/delaneyj/deepwatch/reactivity"
	"github.com/stretchr/testify/assert"
)

// should not make non-reactive properties reactive
func TestShallowReactive(t *testing.T) {
	rs := newSystem(t)
	props := rs.ShallowReactive(reactivity.NewObject("n", reactivity.NewObject("foo", 1))).(*reactivity.ReactiveObject)

	assert.True(t, reactivity.IsReactive(props))
	assert.True(t, reactivity.IsShallow(props))
	assert.False(t, reactivity.IsReactive(props.Get("n")))
}

// should keep reactive properties reactive
func TestShallowReactiveKeepsReactive(t *testing.T) {
	rs := newSystem(t)
	props := rs.ShallowReactive(reactivity.NewObject("n", rs.Reactive(reactivity.NewObject("foo", 1)))).(*reactivity.ReactiveObject)
	props.Set("n", rs.Reactive(reactivity.NewObject("foo", 2)))
	assert.True(t, reactivity.IsReactive(props.Get("n")))
}

// should allow shallow and normal reactive for same target
func TestShallowAndDeepForSameTarget(t *testing.T) {
	rs := newSystem(t)
	original := reactivity.NewObject("foo", reactivity.NewObject())
	shallow := rs.ShallowReactive(original).(*reactivity.ReactiveObject)
	deep := rs.Reactive(original).(*reactivity.ReactiveObject)

	assert.NotSame(t, shallow, deep)
	assert.True(t, reactivity.IsReactive(deep.Get("foo")))
	assert.False(t, reactivity.IsReactive(shallow.Get("foo")))
}

// should not unwrap refs
func TestShallowReactiveRefs(t *testing.T) {
	rs := newSystem(t)
	r := reactivity.NewRef(rs, 1)
	props := rs.ShallowReactive(reactivity.NewObject("r", r)).(*reactivity.ReactiveObject)
	assert.Same(t, r, props.Get("r"))

	// writes replace the slot instead of going through the ref
	props.Set("r", 2)
	assert.Equal(t, 2, props.Get("r"))
	assert.Equal(t, 1, r.Value())
}

// should respond to top level changes only
func TestShallowReactiveTopLevelOnly(t *testing.T) {
	rs := newSystem(t)
	nested := reactivity.NewObject("b", 1)
	props := rs.ShallowReactive(reactivity.NewObject("a", nested)).(*reactivity.ReactiveObject)

	calls := 0
	reactivity.Effect(rs, func() error {
		calls++
		props.Get("a").(*reactivity.Object).Get("b")
		return nil
	})
	nested.Set("b", 2)
	assert.Equal(t, 1, calls)
	props.Set("a", reactivity.NewObject("b", 3))
	assert.Equal(t, 2, calls)
}

// shallow reactive collections should not wrap values
func TestShallowReactiveMap(t *testing.T) {
	rs := newSystem(t)
	inner := reactivity.NewObject()
	m := rs.ShallowReactive(reactivity.NewMap("a", inner)).(*reactivity.ReactiveMap)

	v, _ := m.Get("a")
	assert.Same(t, inner, v)
	for _, v := range m.All() {
		assert.False(t, reactivity.IsReactive(v))
	}

	var size int
	reactivity.Effect(rs, func() error {
		size = m.Size()
		return nil
	})
	m.Set("b", 1)
	assert.Equal(t, 2, size)
}

// shallow readonly should not make nested values readonly
func TestShallowReadonly(t *testing.T) {
	rs, buf := newLoggedSystem(t)
	nested := reactivity.NewObject("foo", 1)
	props := rs.ShallowReadonly(reactivity.NewObject("n", nested)).(*reactivity.ReactiveObject)

	assert.True(t, reactivity.IsReadonly(props))
	assert.True(t, reactivity.IsShallow(props))
	assert.False(t, reactivity.IsReactive(props))
	assert.False(t, props.Set("n", 2))
	assertWarned(t, buf, "target is readonly")

	n := props.Get("n")
	assert.Same(t, nested, n)
	assert.False(t, reactivity.IsReadonly(n))
	n.(*reactivity.Object).Set("foo", 2)
	assert.Equal(t, 2, nested.Get("foo"))
}

// shallowRef should only trigger on value replacement
func TestShallowRef(t *testing.T) {
	rs := newSystem(t)
	obj := reactivity.NewObject("a", 1)
	sref := reactivity.ShallowRef[any](rs, obj)

	assert.True(t, reactivity.IsShallow(sref))
	assert.Same(t, obj, sref.Value())
	assert.False(t, reactivity.IsReactive(sref.Value()))

	var dummy any
	reactivity.Effect(rs, func() error {
		dummy = sref.Value().(*reactivity.Object).Get("a")
		return nil
	})
	assert.Equal(t, 1, dummy)

	sref.Value().(*reactivity.Object).Set("a", 2)
	assert.Equal(t, 1, dummy)

	sref.SetValue(reactivity.NewObject("a", 3))
	assert.Equal(t, 3, dummy)
}

// shallowRef should keep reactive values as given
func TestShallowRefOfReactive(t *testing.T) {
	rs := newSystem(t)
	observed := rs.Reactive(reactivity.NewObject())
	sref := reactivity.ShallowRef(rs, observed)
	assert.Same(t, observed, sref.Value())
}

// triggerRef should force a shallow ref's subscribers to run
func TestTriggerRef(t *testing.T) {
	rs := newSystem(t)
	obj := reactivity.NewObject("a", 1)
	sref := reactivity.ShallowRef(rs, obj)

	var dummy any
	reactivity.Effect(rs, func() error {
		dummy = sref.Value().Get("a")
		return nil
	})
	obj.Set("a", 2)
	assert.Equal(t, 1, dummy)

	reactivity.TriggerRef(sref)
	assert.Equal(t, 2, dummy)
}

// triggerRef should be a no-op without subscribers
func TestTriggerRefUnused(t *testing.T) {
	rs := newSystem(t)
	assert.NotPanics(t, func() {
		reactivity.TriggerRef(reactivity.NewRef(rs, 1))
	})
}

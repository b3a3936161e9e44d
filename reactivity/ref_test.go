package reactivity_test

import (
	"math"
	"testing"

	"github.com/delaneyj/deepwatch/reactivity"
	"github.com/stretchr/testify/assert"
)

// should hold a value
func TestRef(t *testing.T) {
	rs := newSystem(t)
	a := reactivity.NewRef(rs, 1)
	assert.Equal(t, 1, a.Value())
	a.SetValue(2)
	assert.Equal(t, 2, a.Value())
}

// should be reactive
func TestRefReactive(t *testing.T) {
	rs := newSystem(t)
	a := reactivity.NewRef(rs, 1)

	var dummy int
	calls := 0
	reactivity.Effect(rs, func() error {
		calls++
		dummy = a.Value()
		return nil
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, dummy)

	a.SetValue(2)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, dummy)

	// same value should not trigger
	a.SetValue(2)
	assert.Equal(t, 2, calls)
}

// should not trigger when NaN is set again
func TestRefNaN(t *testing.T) {
	rs := newSystem(t)
	a := reactivity.NewRef(rs, math.NaN())

	calls := 0
	reactivity.Effect(rs, func() error {
		calls++
		a.Value()
		return nil
	})
	a.SetValue(math.NaN())
	assert.Equal(t, 1, calls)
	a.SetValue(0)
	assert.Equal(t, 2, calls)
}

// should make nested properties reactive
func TestRefNested(t *testing.T) {
	rs := newSystem(t)
	raw := reactivity.NewObject("count", 1)
	a := reactivity.NewRef[any](rs, raw)

	assert.True(t, reactivity.IsReactive(a.Value()))

	var dummy any
	reactivity.Effect(rs, func() error {
		dummy = a.Value().(*reactivity.ReactiveObject).Get("count")
		return nil
	})
	assert.Equal(t, 1, dummy)
	a.Value().(*reactivity.ReactiveObject).Set("count", 2)
	assert.Equal(t, 2, dummy)

	// replacing with the wrapper of the same object is no change
	calls := 0
	reactivity.Effect(rs, func() error {
		calls++
		a.Value()
		return nil
	})
	a.SetValue(rs.Reactive(raw))
	assert.Equal(t, 1, calls)
}

// a typed wrapper ref should hold the wrapper
func TestRefOfWrapperType(t *testing.T) {
	rs := newSystem(t)
	observed := reactiveObject(rs, "a", 1)
	r := reactivity.NewRef(rs, observed)
	assert.Same(t, observed, r.Value())

	// refs of raw types keep raw values
	raw := reactivity.NewObject()
	r2 := reactivity.NewRef(rs, raw)
	assert.Same(t, raw, r2.Value())
}

// isRef and unref
func TestIsRefUnref(t *testing.T) {
	rs := newSystem(t)
	r := reactivity.NewRef(rs, 1)
	c := reactivity.Computed(rs, func(int) int { return 1 })

	assert.True(t, reactivity.IsRef(r))
	assert.True(t, reactivity.IsRef(c))
	assert.False(t, reactivity.IsRef(1))
	assert.False(t, reactivity.IsRef(reactiveObject(rs)))

	assert.Equal(t, 1, reactivity.Unref(r))
	assert.Equal(t, 1, reactivity.Unref(c))
	assert.Equal(t, 2, reactivity.Unref(2))
}

// makeRef should reuse refs
func TestMakeRef(t *testing.T) {
	rs := newSystem(t)
	r := reactivity.NewRef(rs, 1)
	assert.Same(t, r, reactivity.MakeRef(rs, r))
	assert.Same(t, r, reactivity.MakeShallowRef(rs, r))

	made := reactivity.MakeRef(rs, reactivity.NewObject())
	assert.True(t, reactivity.IsReactive(made.AnyValue()))

	shallow := reactivity.MakeShallowRef(rs, reactivity.NewObject())
	assert.False(t, reactivity.IsReactive(shallow.AnyValue()))
	assert.True(t, reactivity.IsShallow(shallow))
}

// SetAnyValue should ignore values of another type
func TestRefSetAnyValue(t *testing.T) {
	rs := newSystem(t)
	r := reactivity.NewRef(rs, 1)
	r.SetAnyValue(5)
	assert.Equal(t, 5, r.Value())
	r.SetAnyValue("nope")
	assert.Equal(t, 5, r.Value())

	p := reactivity.NewRef(rs, reactivity.NewObject())
	p.SetAnyValue(nil)
	assert.Nil(t, p.Value())
}

// customRef
func TestCustomRef(t *testing.T) {
	rs := newSystem(t)
	value := 1
	var doTrigger func()
	custom := reactivity.NewCustomRef(rs, func(track, trigger func()) (func() int, func(int)) {
		doTrigger = trigger
		get := func() int {
			track()
			return value
		}
		set := func(v int) {
			value = v
		}
		return get, set
	})

	assert.True(t, reactivity.IsRef(custom))

	var dummy int
	reactivity.Effect(rs, func() error {
		dummy = custom.Value()
		return nil
	})
	assert.Equal(t, 1, dummy)

	custom.SetValue(2)
	// should not trigger yet
	assert.Equal(t, 1, dummy)

	doTrigger()
	assert.Equal(t, 2, dummy)
}

// toRef
func TestToRef(t *testing.T) {
	rs := newSystem(t)
	a := reactiveObject(rs, "x", 1)
	x := reactivity.ToRef(a, "x")

	assert.True(t, reactivity.IsRef(x))
	assert.Equal(t, 1, x.AnyValue())

	// source -> proxy
	a.Set("x", 2)
	assert.Equal(t, 2, x.AnyValue())

	// proxy -> source
	x.SetAnyValue(3)
	assert.Equal(t, 3, a.Get("x"))

	// reactivity
	var dummy any
	reactivity.Effect(rs, func() error {
		dummy = x.AnyValue()
		return nil
	})
	assert.Equal(t, 3, dummy)
	a.Set("x", 4)
	assert.Equal(t, 4, dummy)

	// should return the ref stored at the key
	r := reactivity.NewRef(rs, 5)
	b := reactiveObject(rs, "r", r)
	assert.Same(t, r, reactivity.ToRef(b, "r"))
}

// toRef default value
func TestToRefDefault(t *testing.T) {
	rs := newSystem(t)
	a := reactiveObject(rs)
	x := reactivity.ToRef(a, "x", 1)
	assert.Equal(t, 1, x.AnyValue())

	a.Set("x", 2)
	assert.Equal(t, 2, x.AnyValue())
	a.Delete("x")
	assert.Equal(t, 1, x.AnyValue())
}

// toRefs
func TestToRefs(t *testing.T) {
	rs := newSystem(t)
	a := reactiveObject(rs, "x", 1, "y", 2)
	refs := reactivity.ToRefs(a)

	assert.Len(t, refs, 2)
	assert.Equal(t, 1, refs["x"].AnyValue())
	assert.Equal(t, 2, refs["y"].AnyValue())

	a.Set("x", 2)
	refs["y"].SetAnyValue(3)
	assert.Equal(t, 2, refs["x"].AnyValue())
	assert.Equal(t, 3, a.Get("y"))

	var x, y any
	reactivity.Effect(rs, func() error {
		x = refs["x"].AnyValue()
		y = refs["y"].AnyValue()
		return nil
	})
	refs["x"].SetAnyValue(4)
	a.Set("y", 5)
	assert.Equal(t, 4, x)
	assert.Equal(t, 5, y)
}

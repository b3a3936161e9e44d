package reactivity_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/delaneyj/deepwatch/reactivity"
	"github.com/stretchr/testify/assert"
)

// should combine explicit sources
func TestDerived2(t *testing.T) {
	rs := newSystem(t)
	first := reactivity.NewRef(rs, "John")
	last := reactivity.NewRef(rs, "Doe")

	calls := 0
	full := reactivity.Derived2(rs, first, last, func(f, l string) string {
		calls++
		return f + " " + l
	})
	assert.Equal(t, 0, calls)
	assert.Equal(t, "John Doe", full.Value())

	last.SetValue("Smith")
	assert.Equal(t, "John Smith", full.Value())
	assert.Equal(t, 2, calls)
}

// should not track reads made inside the getter
func TestDerivedUntrackedGetter(t *testing.T) {
	rs := newSystem(t)
	src := reactivity.NewRef(rs, 1)
	hidden := reactivity.NewRef(rs, 10)

	d := reactivity.Derived1(rs, src, func(v int) int {
		return v + hidden.Value()
	})
	assert.Equal(t, 11, d.Value())

	hidden.SetValue(20)
	assert.Equal(t, 11, d.Value())

	src.SetValue(2)
	assert.Equal(t, 22, d.Value())
}

// should chain derived values
func TestDerivedChain(t *testing.T) {
	rs := newSystem(t)
	src := reactivity.NewRef(rs, 1)
	double := reactivity.Derived1(rs, src, func(v int) int { return v * 2 })
	label := reactivity.Derived2(rs, src, double, func(v, d int) string {
		return fmt.Sprintf("%d*2=%d", v, d)
	})
	assert.Equal(t, "1*2=2", label.Value())
	src.SetValue(3)
	assert.Equal(t, "3*2=6", label.Value())
}

// should run the watcher now and on every change of a source
func TestWatch1(t *testing.T) {
	rs := newSystem(t)
	src := reactivity.NewRef(rs, 1)
	hidden := reactivity.NewRef(rs, 0)

	var seen []int
	reactivity.Watch1(rs, src, func(v int) error {
		seen = append(seen, v+hidden.Value())
		return nil
	})
	assert.Equal(t, []int{1}, seen)

	src.SetValue(2)
	assert.Equal(t, []int{1, 2}, seen)

	// reads inside the watcher are not dependencies
	hidden.SetValue(100)
	assert.Equal(t, []int{1, 2}, seen)
}

// should watch computed and ref sources together
func TestWatch3(t *testing.T) {
	rs := newSystem(t)
	a := reactivity.NewRef(rs, 1)
	b := reactivity.NewRef(rs, "x")
	c := reactivity.Computed(rs, func(bool) bool { return a.Value() > 1 })

	var last string
	runner := reactivity.Watch3(rs, a, b, c, func(a int, b string, c bool) error {
		last = fmt.Sprintf("%d %s %t", a, b, c)
		return nil
	})
	assert.Equal(t, "1 x false", last)

	a.SetValue(2)
	assert.Equal(t, "2 x true", last)
	b.SetValue("y")
	assert.Equal(t, "2 y true", last)

	runner.Stop()
	b.SetValue("z")
	assert.Equal(t, "2 y true", last)
}

// watcher errors should reach the system error handler
func TestWatchError(t *testing.T) {
	var reported []error
	rs := reactivity.CreateReactiveSystem(func(from reactivity.SignalAware, err error) {
		reported = append(reported, err)
	})
	boom := errors.New("boom")
	src := reactivity.NewRef(rs, 0)

	reactivity.Watch1(rs, src, func(v int) error {
		if v > 0 {
			return boom
		}
		return nil
	})
	assert.Empty(t, reported)

	src.SetValue(1)
	assert.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], boom)
}

// watcher options should be honored
func TestWatchLazyScheduler(t *testing.T) {
	rs := newSystem(t)
	src := reactivity.NewRef(rs, 1)

	runs, scheduled := 0, 0
	runner := reactivity.Watch1(rs, src, func(int) error {
		runs++
		return nil
	}, reactivity.WithLazy(), reactivity.WithScheduler(func() {
		scheduled++
	}))
	assert.Equal(t, 0, runs)

	assert.NoError(t, runner.Run())
	assert.Equal(t, 1, runs)

	src.SetValue(2)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, scheduled)
}

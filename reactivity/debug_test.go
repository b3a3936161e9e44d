//go:build !deepwatch_prod

package reactivity_test

import (
	"testing"

	"github.com/delaneyj/deepwatch/reactivity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// events should be reported when tracking
func TestOnTrack(t *testing.T) {
	rs := newSystem(t)
	obj := reactiveObject(rs, "foo", 1, "bar", 2)

	var events []reactivity.DebuggerEvent
	runner := reactivity.Effect(rs, func() error {
		obj.Get("foo")
		obj.Has("bar")
		obj.OwnKeys()
		// a second read of the same location is no new dependency
		obj.Get("foo")
		return nil
	}, reactivity.WithOnTrack(func(e reactivity.DebuggerEvent) {
		events = append(events, e)
	}))

	raw := reactivity.ToRaw(obj)
	require.Len(t, events, 3)
	assert.Equal(t, reactivity.DebuggerEvent{
		Effect: runner.Effect(), Target: raw, Type: reactivity.OpGet, Key: "foo",
	}, events[0])
	assert.Equal(t, reactivity.DebuggerEvent{
		Effect: runner.Effect(), Target: raw, Type: reactivity.OpHas, Key: "bar",
	}, events[1])
	assert.Equal(t, reactivity.DebuggerEvent{
		Effect: runner.Effect(), Target: raw, Type: reactivity.OpIterate, Key: reactivity.IterateKey,
	}, events[2])
}

// events should be reported when triggering
func TestOnTrigger(t *testing.T) {
	rs := newSystem(t)
	obj := reactiveObject(rs, "foo", 1)

	var events []reactivity.DebuggerEvent
	runner := reactivity.Effect(rs, func() error {
		obj.Get("foo")
		return nil
	}, reactivity.WithOnTrigger(func(e reactivity.DebuggerEvent) {
		events = append(events, e)
	}))

	raw := reactivity.ToRaw(obj)
	obj.Set("foo", 2)
	require.Len(t, events, 1)
	assert.Equal(t, reactivity.DebuggerEvent{
		Effect:   runner.Effect(),
		Target:   raw,
		Type:     reactivity.OpSet,
		Key:      "foo",
		NewValue: 2,
		OldValue: 1,
	}, events[0])

	obj.Delete("foo")
	require.Len(t, events, 2)
	assert.Equal(t, reactivity.OpDelete, events[1].Type)
	assert.Equal(t, "foo", events[1].Key)
	assert.Equal(t, 2, events[1].OldValue)
}

// ref events use the value key
func TestOnTrackRef(t *testing.T) {
	rs := newSystem(t)
	r := reactivity.NewRef(rs, 1)

	var tracked, triggered []reactivity.DebuggerEvent
	reactivity.Effect(rs, func() error {
		r.Value()
		return nil
	}, reactivity.WithOnTrack(func(e reactivity.DebuggerEvent) {
		tracked = append(tracked, e)
	}), reactivity.WithOnTrigger(func(e reactivity.DebuggerEvent) {
		triggered = append(triggered, e)
	}))

	r.SetValue(2)
	require.NotEmpty(t, tracked)
	assert.Equal(t, reactivity.ValueKey, tracked[0].Key)
	assert.Same(t, r, tracked[0].Target)
	require.Len(t, triggered, 1)
	assert.Equal(t, reactivity.OpSet, triggered[0].Type)
	assert.Equal(t, 2, triggered[0].NewValue)
}

// clearing a collection reports the old contents
func TestOnTriggerClear(t *testing.T) {
	rs := newSystem(t)
	m := reactiveMap(rs, "a", 1)

	var events []reactivity.DebuggerEvent
	reactivity.Effect(rs, func() error {
		m.Size()
		return nil
	}, reactivity.WithOnTrigger(func(e reactivity.DebuggerEvent) {
		events = append(events, e)
	}))

	m.Clear()
	require.Len(t, events, 1)
	assert.Equal(t, reactivity.OpClear, events[0].Type)
	old, ok := events[0].OldTarget.(*reactivity.Map)
	require.True(t, ok)
	assert.Equal(t, 1, old.Len())
	assert.Equal(t, 0, reactivity.ToRaw(m).(*reactivity.Map).Len())
}

// should warn when both raw and reactive versions of the same key exist
func TestMapIdentityKeyWarning(t *testing.T) {
	rs, buf := newLoggedSystem(t)
	raw := reactivity.NewObject()
	wrapped := rs.Reactive(raw)

	target := reactivity.NewMap(raw, 1, wrapped, 2)
	m := rs.Reactive(target).(*reactivity.ReactiveMap)
	m.Set(wrapped, 3)
	assert.Contains(t, buf.String(), "raw and reactive versions of the same object")
}

// should warn when a value cannot be made reactive
func TestNonObjectWarning(t *testing.T) {
	rs, buf := newLoggedSystem(t)
	rs.Reactive(1)
	assert.Contains(t, buf.String(), "value cannot be made reactive")

	buf.Reset()
	rs.Reactive(reactivity.MarkRaw(reactivity.NewObject()))
	assert.Empty(t, buf.String())
}

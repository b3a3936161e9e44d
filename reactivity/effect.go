package reactivity

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

type ErrFn func() error

// EffectScheduler replaces the synchronous re-run of a triggered effect. It
// decides when, if ever, the effect runs again.
type EffectScheduler func()

// DebuggerEvent describes one track or trigger operation. It is only
// delivered in development builds.
type DebuggerEvent struct {
	Effect    *ReactiveEffect
	Target    any
	Type      OpType
	Key       Key
	NewValue  any
	OldValue  any
	OldTarget any
}

// ReactiveEffect is the unit of recomputation. Reads performed while it runs
// become its dependencies and a change to any of them re-runs it, or hands it
// to its scheduler.
type ReactiveEffect struct {
	rs        *ReactiveSystem
	fn        ErrFn
	scheduler EffectScheduler
	active    bool
	deps      []*Dep
	parent    *ReactiveEffect

	computed     bool
	allowRecurse bool
	deferStop    bool

	onStop    func()
	onTrack   func(DebuggerEvent)
	onTrigger func(DebuggerEvent)
}

func (e *ReactiveEffect) isSignalAware() {}

// NewReactiveEffect creates an inactive-until-run effect. It is recorded in
// the currently running effect scope, if any.
func NewReactiveEffect(rs *ReactiveSystem, fn ErrFn, scheduler EffectScheduler) *ReactiveEffect {
	e := &ReactiveEffect{
		rs:        rs,
		fn:        fn,
		scheduler: scheduler,
		active:    true,
	}
	rs.recordEffectScope(e, nil)
	return e
}

func (e *ReactiveEffect) Active() bool {
	return e.active
}

// Deps returns the dependency sets e currently belongs to.
func (e *ReactiveEffect) Deps() []*Dep {
	return slices.Clone(e.deps)
}

// Run invokes the effect function and rebuilds its dependencies. A stopped
// effect runs the function without tracking. An effect already running
// further up the current call chain returns immediately.
func (e *ReactiveEffect) Run() error {
	if !e.active {
		return e.fn()
	}
	rs := e.rs
	for p := rs.activeEffect; p != nil; p = p.parent {
		if p == e {
			return nil
		}
	}

	e.parent = rs.activeEffect
	lastShouldTrack := rs.shouldTrack
	rs.activeEffect = e
	rs.shouldTrack = true

	rs.effectTrackDepth++
	rs.trackOpBit = 1 << rs.effectTrackDepth
	if rs.effectTrackDepth <= rs.maxMarkerBits {
		rs.initDepMarkers(e)
	} else {
		e.cleanup()
	}

	defer func() {
		if rs.effectTrackDepth <= rs.maxMarkerBits {
			rs.finalizeDepMarkers(e)
		}
		rs.effectTrackDepth--
		rs.trackOpBit = 1 << rs.effectTrackDepth

		rs.activeEffect = e.parent
		rs.shouldTrack = lastShouldTrack
		e.parent = nil

		if e.deferStop {
			e.Stop()
		}
	}()

	return e.fn()
}

// Stop detaches the effect from every dependency for good. Stopping the
// effect from inside its own run is deferred until the run returns.
func (e *ReactiveEffect) Stop() {
	if e.rs.activeEffect == e {
		e.deferStop = true
		return
	}
	if !e.active {
		return
	}
	e.cleanup()
	if e.onStop != nil {
		e.onStop()
	}
	e.active = false
}

func (e *ReactiveEffect) cleanup() {
	for _, d := range e.deps {
		d.delete(e)
	}
	clear(e.deps)
	e.deps = e.deps[:0]
}

// track records a read of key on target by the active effect.
func (rs *ReactiveSystem) track(target any, op OpType, key Key) {
	if !rs.shouldTrack || rs.activeEffect == nil {
		return
	}
	dm := rs.targets.lookup(target, true)
	if dm == nil {
		return
	}
	var ev *DebuggerEvent
	if devMode {
		ev = &DebuggerEvent{Effect: rs.activeEffect, Target: target, Type: op, Key: key}
	}
	rs.trackEffects(dm.getOrCreate(key), ev)
}

func (rs *ReactiveSystem) trackEffects(dep *Dep, ev *DebuggerEvent) {
	e := rs.activeEffect
	if !rs.shouldTrack || e == nil || !e.active {
		return
	}

	shouldTrack := false
	if rs.effectTrackDepth <= rs.maxMarkerBits {
		if !rs.newTracked(dep) {
			dep.n |= rs.trackOpBit
			shouldTrack = !rs.wasTracked(dep)
		}
	} else {
		shouldTrack = !dep.has(e)
	}
	if !shouldTrack {
		return
	}

	dep.add(e)
	e.deps = append(e.deps, dep)
	if devMode && ev != nil && e.onTrack != nil {
		e.onTrack(*ev)
	}
}

// trigger notifies every effect that depends on the locations changed by op.
func (rs *ReactiveSystem) trigger(target any, op OpType, key Key, newValue, oldValue, oldTarget any) {
	dm := rs.targets.lookup(target, false)
	if dm == nil {
		return
	}
	_, isArray := target.(*Array)
	_, isMap := target.(*Map)

	var deps []*Dep
	switch {
	case op == OpClear:
		dm.each(func(_ Key, d *Dep) {
			deps = append(deps, d)
		})
	case isArray && key == LengthKey:
		newLen, _ := newValue.(int)
		dm.each(func(k Key, d *Dep) {
			if k == LengthKey {
				deps = append(deps, d)
			} else if i, ok := k.(int); ok && i >= newLen {
				deps = append(deps, d)
			}
		})
	default:
		deps = append(deps, dm.get(key))
		switch op {
		case OpAdd:
			if !isArray {
				deps = append(deps, dm.get(IterateKey))
				if isMap {
					deps = append(deps, dm.get(MapKeyIterateKey))
				}
			} else if _, ok := key.(int); ok {
				deps = append(deps, dm.get(LengthKey))
			}
		case OpDelete:
			if !isArray {
				deps = append(deps, dm.get(IterateKey))
				if isMap {
					deps = append(deps, dm.get(MapKeyIterateKey))
				}
			}
		case OpSet:
			if isMap {
				deps = append(deps, dm.get(IterateKey))
			}
		}
	}
	deps = slices.DeleteFunc(deps, func(d *Dep) bool { return d == nil })

	var ev *DebuggerEvent
	if devMode {
		ev = &DebuggerEvent{
			Target:    target,
			Type:      op,
			Key:       key,
			NewValue:  newValue,
			OldValue:  oldValue,
			OldTarget: oldTarget,
		}
	}

	switch len(deps) {
	case 0:
		return
	case 1:
		rs.triggerEffects(deps[0].snapshot(), ev)
		return
	}

	seen := mapset.NewThreadUnsafeSet[*ReactiveEffect]()
	var effects []*ReactiveEffect
	for _, d := range deps {
		for _, e := range d.order {
			if seen.Add(e) {
				effects = append(effects, e)
			}
		}
	}
	rs.triggerEffects(effects, ev)
}

// triggerEffects notifies computed effects before plain ones so that any
// derived value a plain effect reads is already dirty when it re-runs.
func (rs *ReactiveSystem) triggerEffects(effects []*ReactiveEffect, ev *DebuggerEvent) {
	for _, e := range effects {
		if e.computed {
			rs.triggerEffect(e, ev)
		}
	}
	for _, e := range effects {
		if !e.computed {
			rs.triggerEffect(e, ev)
		}
	}
}

func (rs *ReactiveSystem) triggerEffect(e *ReactiveEffect, ev *DebuggerEvent) {
	if e == rs.activeEffect && !e.allowRecurse {
		return
	}
	// stopped while an earlier subscriber of the same trigger ran
	if !e.active {
		return
	}
	if devMode && ev != nil && e.onTrigger != nil {
		event := *ev
		event.Effect = e
		e.onTrigger(event)
	}
	if e.scheduler != nil {
		e.scheduler()
		return
	}
	if err := e.Run(); err != nil {
		rs.reportError(e, err)
	}
}

type effectOptions struct {
	lazy         bool
	scheduler    EffectScheduler
	scope        *EffectScope
	allowRecurse bool
	onStop       func()
	onTrack      func(DebuggerEvent)
	onTrigger    func(DebuggerEvent)
}

type EffectOption func(o *effectOptions)

// WithLazy skips the initial run; the effect tracks nothing until its runner
// is first called.
func WithLazy() EffectOption {
	return func(o *effectOptions) { o.lazy = true }
}

func WithScheduler(s EffectScheduler) EffectOption {
	return func(o *effectOptions) { o.scheduler = s }
}

// WithScope records the effect in s in addition to the running scope.
func WithScope(s *EffectScope) EffectOption {
	return func(o *effectOptions) { o.scope = s }
}

// WithAllowRecurse lets the effect be re-triggered by its own writes.
func WithAllowRecurse() EffectOption {
	return func(o *effectOptions) { o.allowRecurse = true }
}

func WithOnStop(fn func()) EffectOption {
	return func(o *effectOptions) { o.onStop = fn }
}

// WithOnTrack is called for every new dependency. Development builds only.
func WithOnTrack(fn func(DebuggerEvent)) EffectOption {
	return func(o *effectOptions) { o.onTrack = fn }
}

// WithOnTrigger is called whenever a dependency change notifies the effect.
// Development builds only.
func WithOnTrigger(fn func(DebuggerEvent)) EffectOption {
	return func(o *effectOptions) { o.onTrigger = fn }
}

// EffectRunner is the handle returned by Effect.
type EffectRunner struct {
	effect *ReactiveEffect
}

func (r *EffectRunner) Run() error {
	return r.effect.Run()
}

func (r *EffectRunner) Stop() {
	r.effect.Stop()
}

func (r *EffectRunner) Effect() *ReactiveEffect {
	return r.effect
}

// Stop stops the effect behind r.
func Stop(r *EffectRunner) {
	r.Stop()
}

// Effect runs fn immediately and again whenever anything it read changes.
// Errors from the initial run and from re-runs go to the system's
// OnErrorFunc.
func Effect(rs *ReactiveSystem, fn ErrFn, opts ...EffectOption) *EffectRunner {
	var o effectOptions
	for _, opt := range opts {
		opt(&o)
	}

	e := NewReactiveEffect(rs, fn, o.scheduler)
	e.allowRecurse = o.allowRecurse
	e.onStop = o.onStop
	e.onTrack = o.onTrack
	e.onTrigger = o.onTrigger
	if o.scope != nil {
		rs.recordEffectScope(e, o.scope)
	}

	r := &EffectRunner{effect: e}
	if !o.lazy {
		if err := e.Run(); err != nil {
			rs.reportError(e, err)
		}
	}
	return r
}

package reactivity

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Dep is the subscriber set of one observable location.
//
// w and n hold one was-tracked / new-tracked bit per level of effect
// recursion, so an effect re-running at depth d only touches bit 1<<d.
type Dep struct {
	subs  mapset.Set[*ReactiveEffect]
	order []*ReactiveEffect
	w     uint32
	n     uint32
}

func newDep(effects ...*ReactiveEffect) *Dep {
	d := &Dep{subs: mapset.NewThreadUnsafeSet[*ReactiveEffect]()}
	for _, e := range effects {
		d.add(e)
	}
	return d
}

func (d *Dep) has(e *ReactiveEffect) bool {
	return d.subs.Contains(e)
}

func (d *Dep) add(e *ReactiveEffect) {
	if d.subs.Add(e) {
		d.order = append(d.order, e)
	}
}

func (d *Dep) delete(e *ReactiveEffect) {
	if !d.subs.Contains(e) {
		return
	}
	d.subs.Remove(e)
	if i := slices.Index(d.order, e); i >= 0 {
		d.order = slices.Delete(d.order, i, i+1)
	}
}

// Len returns the number of subscribed effects.
func (d *Dep) Len() int {
	return len(d.order)
}

// snapshot copies the subscribers in insertion order so that effects can
// unsubscribe while being notified.
func (d *Dep) snapshot() []*ReactiveEffect {
	return slices.Clone(d.order)
}

func (rs *ReactiveSystem) wasTracked(d *Dep) bool {
	return d.w&rs.trackOpBit > 0
}

func (rs *ReactiveSystem) newTracked(d *Dep) bool {
	return d.n&rs.trackOpBit > 0
}

// initDepMarkers flags every current dependency of e as tracked before this
// run.
func (rs *ReactiveSystem) initDepMarkers(e *ReactiveEffect) {
	for _, d := range e.deps {
		d.w |= rs.trackOpBit
	}
}

// finalizeDepMarkers drops the dependencies that e no longer read during the
// run that just ended and clears this level's bits.
func (rs *ReactiveSystem) finalizeDepMarkers(e *ReactiveEffect) {
	ptr := 0
	for _, d := range e.deps {
		if rs.wasTracked(d) && !rs.newTracked(d) {
			d.delete(e)
		} else {
			e.deps[ptr] = d
			ptr++
		}
		d.w &^= rs.trackOpBit
		d.n &^= rs.trackOpBit
	}
	clear(e.deps[ptr:])
	e.deps = e.deps[:ptr]
}

// depsMap holds the Deps of one target keyed by location, in the order the
// locations were first tracked.
type depsMap struct {
	deps map[Key]*Dep
	keys []Key
}

func (m *depsMap) get(key Key) *Dep {
	return m.deps[key]
}

func (m *depsMap) getOrCreate(key Key) *Dep {
	if d, ok := m.deps[key]; ok {
		return d
	}
	if m.deps == nil {
		m.deps = map[Key]*Dep{}
	}
	d := newDep()
	m.deps[key] = d
	m.keys = append(m.keys, key)
	return d
}

func (m *depsMap) each(fn func(key Key, d *Dep)) {
	for _, k := range m.keys {
		fn(k, m.deps[k])
	}
}

// targetMap is the dependency graph. It is keyed weakly by raw target so an
// entry never keeps its target alive.
type targetMap struct {
	objects weakMap[Object, *depsMap]
	arrays  weakMap[Array, *depsMap]
	maps    weakMap[Map, *depsMap]
	sets    weakMap[Set, *depsMap]
}

func (t *targetMap) lookup(target any, create bool) *depsMap {
	switch x := target.(type) {
	case *Object:
		return lookupDeps(&t.objects, x, create)
	case *Array:
		return lookupDeps(&t.arrays, x, create)
	case *Map:
		return lookupDeps(&t.maps, x, create)
	case *Set:
		return lookupDeps(&t.sets, x, create)
	}
	return nil
}

func lookupDeps[K any](m *weakMap[K, *depsMap], target *K, create bool) *depsMap {
	if dm, ok := m.get(target); ok {
		return dm
	}
	if !create {
		return nil
	}
	dm := &depsMap{}
	m.set(target, dm)
	return dm
}

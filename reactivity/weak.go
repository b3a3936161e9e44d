package reactivity

import "weak"

const minSweepSize = 64

// weakMap maps objects to values without keeping the objects alive. Entries
// of collected keys are swept lazily whenever the map doubles in size.
//
// Values must not reference their key, or the key can never be collected.
type weakMap[K, V any] struct {
	entries map[weak.Pointer[K]]V
	sweepAt int
}

func (m *weakMap[K, V]) get(key *K) (v V, ok bool) {
	if m.entries == nil {
		return v, false
	}
	v, ok = m.entries[weak.Make(key)]
	return v, ok
}

func (m *weakMap[K, V]) set(key *K, v V) {
	if m.entries == nil {
		m.entries = map[weak.Pointer[K]]V{}
		m.sweepAt = minSweepSize
	}
	if len(m.entries) >= m.sweepAt {
		m.sweep()
	}
	m.entries[weak.Make(key)] = v
}

func (m *weakMap[K, V]) sweep() {
	for wp := range m.entries {
		if wp.Value() == nil {
			delete(m.entries, wp)
		}
	}
	m.sweepAt = max(minSweepSize, 2*len(m.entries))
}

func (m *weakMap[K, V]) len() int {
	return len(m.entries)
}

// proxyCache keeps one wrapper per target for a single wrapping variant.
// Wrappers are held weakly too: a wrapper nobody references can be rebuilt
// without anyone observing a change of identity.
type proxyCache struct {
	objects weakMap[Object, weak.Pointer[ReactiveObject]]
	arrays  weakMap[Array, weak.Pointer[ReactiveArray]]
	maps    weakMap[Map, weak.Pointer[ReactiveMap]]
	sets    weakMap[Set, weak.Pointer[ReactiveSet]]

	// readonly views over mutable wrappers are keyed by the wrapper.
	overObjects weakMap[ReactiveObject, weak.Pointer[ReactiveObject]]
	overArrays  weakMap[ReactiveArray, weak.Pointer[ReactiveArray]]
	overMaps    weakMap[ReactiveMap, weak.Pointer[ReactiveMap]]
	overSets    weakMap[ReactiveSet, weak.Pointer[ReactiveSet]]
}

func cached[K, W any](m *weakMap[K, weak.Pointer[W]], key *K, create func() *W) *W {
	if wp, ok := m.get(key); ok {
		if w := wp.Value(); w != nil {
			return w
		}
	}
	w := create()
	m.set(key, weak.Make(w))
	return w
}

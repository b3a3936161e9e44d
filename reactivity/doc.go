// Package reactivity is a fine-grained dependency tracking runtime.
//
// Plain data (Object, Array, Map, Set) is wrapped by a ReactiveSystem so that
// reads made while an effect runs are recorded as dependencies of that effect,
// and writes re-run every effect that read the changed location. Refs box a
// single value with the same contract, and computed refs cache a derived
// value until one of its sources changes.
//
//	rs := reactivity.CreateReactiveSystem(nil)
//	state := rs.Reactive(reactivity.NewObject("count", 1)).(*reactivity.ReactiveObject)
//	reactivity.Effect(rs, func() error {
//		fmt.Println(state.Get("count"))
//		return nil
//	})
//	state.Set("count", 2) // prints 2
//
// A ReactiveSystem is not safe for concurrent use. Give each goroutine that
// drives reactive state its own system.
package reactivity

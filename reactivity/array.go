package reactivity

import "iter"

// ReactiveArray is the wrapper of an *Array. Index reads depend on the index,
// Len depends on LengthKey.
type ReactiveArray struct {
	proxyBase
	target *Array

	// set for a readonly view of a mutable wrapper
	inner *ReactiveArray
}

func (r *ReactiveArray) raw() any { return r.target }

func (r *ReactiveArray) isReactive() bool {
	return !r.readonly || r.inner != nil
}

// Get reads index i. Refs stored at an index are returned as refs.
func (r *ReactiveArray) Get(i int) any {
	var res any
	if r.inner != nil {
		res = r.inner.Get(i)
	} else {
		res = r.target.Get(i)
	}
	if !r.readonly {
		r.rs.track(r.target, OpGet, i)
	}
	if r.shallow || IsRef(res) {
		return res
	}
	return r.wrapNested(res)
}

func (r *ReactiveArray) Len() int {
	if r.inner != nil {
		return r.inner.Len()
	}
	if !r.readonly {
		r.rs.track(r.target, OpGet, LengthKey)
	}
	return r.target.Len()
}

// Has reports whether index i holds an element.
func (r *ReactiveArray) Has(i int) bool {
	if r.inner != nil {
		return r.inner.Has(i)
	}
	if !r.readonly {
		r.rs.track(r.target, OpHas, i)
	}
	return r.target.Has(i)
}

// Set stores v at i. Writing at or past the end adds an element and
// notifies length subscribers.
func (r *ReactiveArray) Set(i int, v any) bool {
	if r.readonly {
		r.warnReadonly(OpSet, i, r.target)
		return false
	}
	if i < 0 {
		return false
	}

	t := r.target
	oldValue := t.Get(i)
	if IsReadonly(oldValue) && IsRef(oldValue) && !IsRef(v) {
		return false
	}
	if !r.shallow && !IsShallow(v) && !IsReadonly(v) {
		oldValue = ToRaw(oldValue)
		v = ToRaw(v)
	}

	hadKey := i < t.Len()
	t.Set(i, v)
	if !hadKey {
		r.rs.trigger(t, OpAdd, i, v, nil, nil)
	} else if hasChanged(v, oldValue) {
		r.rs.trigger(t, OpSet, i, v, oldValue, nil)
	}
	return true
}

// SetLen changes the length. Shrinking notifies subscribers of the length
// and of every index at or past the new length.
func (r *ReactiveArray) SetLen(n int) bool {
	if r.readonly {
		r.warnReadonly(OpSet, LengthKey, r.target)
		return false
	}
	n = max(n, 0)
	oldLen := r.target.Len()
	r.target.SetLen(n)
	if n != oldLen {
		r.rs.trigger(r.target, OpSet, LengthKey, n, oldLen, nil)
	}
	return true
}

// Delete leaves a hole at i.
func (r *ReactiveArray) Delete(i int) bool {
	if r.readonly {
		r.warnReadonly(OpDelete, i, r.target)
		return false
	}
	hadKey := r.target.Has(i)
	oldValue := r.target.Get(i)
	ok := r.target.Delete(i)
	if ok && hadKey {
		r.rs.trigger(r.target, OpDelete, i, nil, oldValue, nil)
	}
	return ok
}

// Keys returns the indexes holding elements.
func (r *ReactiveArray) Keys() []int {
	if r.inner != nil {
		return r.inner.Keys()
	}
	if !r.readonly {
		r.rs.track(r.target, OpIterate, LengthKey)
	}
	keys := make([]int, 0, r.target.Len())
	for i := range r.target.Len() {
		if r.target.Has(i) {
			keys = append(keys, i)
		}
	}
	return keys
}

// All yields every index with its value read through Get.
func (r *ReactiveArray) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i := 0; i < r.Len(); i++ {
			if !yield(i, r.Get(i)) {
				return
			}
		}
	}
}

// Slice copies the elements out through Get.
func (r *ReactiveArray) Slice() []any {
	n := r.Len()
	out := make([]any, n)
	for i := range n {
		out[i] = r.Get(i)
	}
	return out
}

// Includes reports whether v is an element, treating NaN as equal to NaN.
func (r *ReactiveArray) Includes(v any) bool {
	return r.search(v, sameValueZero, false) >= 0
}

// IndexOf returns the first index of v or -1.
func (r *ReactiveArray) IndexOf(v any) int {
	return r.search(v, strictEquals, false)
}

// LastIndexOf returns the last index of v or -1.
func (r *ReactiveArray) LastIndexOf(v any) int {
	return r.search(v, strictEquals, true)
}

// search depends on every index. It looks for v among the raw elements and
// retries with the raw form of v, so a wrapper finds the element it wraps.
func (r *ReactiveArray) search(v any, eq func(a, b any) bool, fromEnd bool) int {
	if r.readonly {
		// readonly views compare against what Get hands out
		return indexIn(r.Slice(), v, eq, fromEnd)
	}
	n := r.Len()
	for i := range n {
		r.rs.track(r.target, OpGet, i)
	}
	items := r.target.Slice()
	if i := indexIn(items, v, eq, fromEnd); i >= 0 {
		return i
	}
	return indexIn(items, ToRaw(v), eq, fromEnd)
}

func indexIn(items []any, v any, eq func(a, b any) bool, fromEnd bool) int {
	if fromEnd {
		for i := len(items) - 1; i >= 0; i-- {
			if eq(items[i], v) {
				return i
			}
		}
		return -1
	}
	for i, item := range items {
		if eq(item, v) {
			return i
		}
	}
	return -1
}

// mutate runs a length-changing operation with tracking paused, so that its
// internal reads of the length never become dependencies of the caller.
func (r *ReactiveArray) mutate(op string, fn func()) bool {
	if r.readonly {
		r.rs.warn("operation failed: target is readonly", "op", op, "target", r.target)
		return false
	}
	r.rs.PauseTracking()
	defer r.rs.ResumeTracking()
	fn()
	return true
}

// move copies the element at from to to, or punches a hole at to.
func (r *ReactiveArray) move(from, to int) {
	if r.Has(from) {
		r.Set(to, r.Get(from))
	} else {
		r.Delete(to)
	}
}

// Push appends items and returns the new length.
func (r *ReactiveArray) Push(items ...any) int {
	n := r.target.Len()
	r.mutate("push", func() {
		n = r.Len()
		for i, v := range items {
			r.Set(n+i, v)
		}
		n += len(items)
		r.SetLen(n)
	})
	return n
}

// Pop removes and returns the last element.
func (r *ReactiveArray) Pop() any {
	var res any
	r.mutate("pop", func() {
		n := r.Len()
		if n == 0 {
			r.SetLen(0)
			return
		}
		res = r.Get(n - 1)
		r.Delete(n - 1)
		r.SetLen(n - 1)
	})
	return res
}

// Shift removes and returns the first element.
func (r *ReactiveArray) Shift() any {
	var res any
	r.mutate("shift", func() {
		n := r.Len()
		if n == 0 {
			r.SetLen(0)
			return
		}
		res = r.Get(0)
		for k := 1; k < n; k++ {
			r.move(k, k-1)
		}
		r.Delete(n - 1)
		r.SetLen(n - 1)
	})
	return res
}

// Unshift prepends items and returns the new length.
func (r *ReactiveArray) Unshift(items ...any) int {
	n := r.target.Len()
	r.mutate("unshift", func() {
		n = r.Len()
		if len(items) > 0 {
			for k := n; k > 0; k-- {
				r.move(k-1, k+len(items)-1)
			}
			for j, v := range items {
				r.Set(j, v)
			}
		}
		n += len(items)
		r.SetLen(n)
	})
	return n
}

// Splice removes deleteCount elements at start, inserts items in their
// place and returns the removed elements. A negative start counts from the
// end.
func (r *ReactiveArray) Splice(start, deleteCount int, items ...any) []any {
	var removed []any
	r.mutate("splice", func() {
		n := r.Len()
		if start < 0 {
			start = max(n+start, 0)
		}
		start = min(start, n)
		deleteCount = min(max(deleteCount, 0), n-start)

		removed = make([]any, deleteCount)
		for k := range deleteCount {
			if r.Has(start + k) {
				removed[k] = r.Get(start + k)
			}
		}

		itemCount := len(items)
		switch {
		case itemCount < deleteCount:
			for k := start; k < n-deleteCount; k++ {
				r.move(k+deleteCount, k+itemCount)
			}
			for k := n; k > n-deleteCount+itemCount; k-- {
				r.Delete(k - 1)
			}
		case itemCount > deleteCount:
			for k := n - deleteCount; k > start; k-- {
				r.move(k+deleteCount-1, k+itemCount-1)
			}
		}
		for j, v := range items {
			r.Set(start+j, v)
		}
		r.SetLen(n - deleteCount + itemCount)
	})
	return removed
}

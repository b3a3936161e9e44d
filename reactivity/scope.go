package reactivity

// EffectScope collects the effects created while it runs so that they can be
// stopped together. Scopes created inside a running scope are stopped with it
// unless they are detached.
type EffectScope struct {
	rs       *ReactiveSystem
	active   bool
	detached bool
	effects  []*ReactiveEffect
	cleanups []func()

	parent *EffectScope
	scopes []*EffectScope
	index  int
}

func NewEffectScope(rs *ReactiveSystem, detached bool) *EffectScope {
	s := &EffectScope{
		rs:       rs,
		active:   true,
		detached: detached,
		parent:   rs.activeScope,
	}
	if !detached && s.parent != nil {
		s.index = len(s.parent.scopes)
		s.parent.scopes = append(s.parent.scopes, s)
	}
	return s
}

func (s *EffectScope) Active() bool {
	return s.active
}

// Run calls fn with s as the current scope. Running a stopped scope does
// nothing.
func (s *EffectScope) Run(fn ErrFn) error {
	if !s.active {
		s.rs.warn("cannot run an inactive effect scope")
		return nil
	}
	current := s.rs.activeScope
	s.rs.activeScope = s
	defer func() {
		s.rs.activeScope = current
	}()
	return fn()
}

// Stop stops every effect and child scope and runs the registered disposers.
func (s *EffectScope) Stop() {
	s.stop(false)
}

func (s *EffectScope) stop(fromParent bool) {
	if !s.active {
		return
	}
	for _, e := range s.effects {
		e.Stop()
	}
	for _, fn := range s.cleanups {
		fn()
	}
	for _, child := range s.scopes {
		child.stop(true)
	}

	// unlink from the parent in O(1) by moving its last child into our slot
	if !s.detached && s.parent != nil && !fromParent {
		siblings := s.parent.scopes
		last := siblings[len(siblings)-1]
		s.parent.scopes = siblings[:len(siblings)-1]
		if last != s {
			s.parent.scopes[s.index] = last
			last.index = s.index
		}
	}
	s.parent = nil
	s.effects = nil
	s.cleanups = nil
	s.scopes = nil
	s.active = false
}

func (rs *ReactiveSystem) recordEffectScope(e *ReactiveEffect, scope *EffectScope) {
	if scope == nil {
		scope = rs.activeScope
	}
	if scope != nil && scope.active {
		scope.effects = append(scope.effects, e)
	}
}

// GetCurrentScope returns the scope currently running, if any.
func (rs *ReactiveSystem) GetCurrentScope() *EffectScope {
	return rs.activeScope
}

// OnScopeDispose registers fn to run when the current scope stops.
func OnScopeDispose(rs *ReactiveSystem, fn func()) {
	if rs.activeScope == nil {
		rs.warn("OnScopeDispose called without an active effect scope")
		return
	}
	rs.activeScope.cleanups = append(rs.activeScope.cleanups, fn)
}

package reactivity

import (
	"log/slog"
)

// MaxMarkerBits is the deepest effect nesting that uses the bitwise
// was/new-tracked markers. Deeper runs fall back to clearing the effect's
// dependencies up front and rebuilding them while it runs.
const MaxMarkerBits = 30

type OnErrorFunc func(from SignalAware, err error)

type SignalAware interface {
	isSignalAware()
}

type ReactiveSystem struct {
	activeEffect     *ReactiveEffect
	shouldTrack      bool
	trackStack       []bool
	effectTrackDepth int
	trackOpBit       uint32
	maxMarkerBits    int

	activeScope *EffectScope

	targets *targetMap

	reactiveMap        *proxyCache
	shallowReactiveMap *proxyCache
	readonlyMap        *proxyCache
	shallowReadonlyMap *proxyCache

	onError OnErrorFunc
	logger  *slog.Logger
}

type SystemOption func(rs *ReactiveSystem)

// WithLogger routes developer warnings and unhandled effect errors to l.
func WithLogger(l *slog.Logger) SystemOption {
	return func(rs *ReactiveSystem) {
		if l != nil {
			rs.logger = l
		}
	}
}

// WithMaxMarkerBits lowers the nesting depth served by the marker fast path.
// Values outside [0, MaxMarkerBits] are clamped.
func WithMaxMarkerBits(n int) SystemOption {
	return func(rs *ReactiveSystem) {
		rs.maxMarkerBits = min(max(n, 0), MaxMarkerBits)
	}
}

func CreateReactiveSystem(onError OnErrorFunc, opts ...SystemOption) *ReactiveSystem {
	rs := &ReactiveSystem{
		onError:            onError,
		shouldTrack:        true,
		trackOpBit:         1,
		maxMarkerBits:      MaxMarkerBits,
		targets:            &targetMap{},
		reactiveMap:        &proxyCache{},
		shallowReactiveMap: &proxyCache{},
		readonlyMap:        &proxyCache{},
		shallowReadonlyMap: &proxyCache{},
		logger:             slog.Default(),
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// PauseTracking stops reads from being recorded until the matching
// ResumeTracking call.
func (rs *ReactiveSystem) PauseTracking() {
	rs.trackStack = append(rs.trackStack, rs.shouldTrack)
	rs.shouldTrack = false
}

// EnableTracking turns tracking back on inside a paused region until the
// matching ResumeTracking call.
func (rs *ReactiveSystem) EnableTracking() {
	rs.trackStack = append(rs.trackStack, rs.shouldTrack)
	rs.shouldTrack = true
}

// ResumeTracking restores the tracking state saved by the last
// PauseTracking or EnableTracking.
func (rs *ReactiveSystem) ResumeTracking() {
	lastIdx := len(rs.trackStack) - 1
	if lastIdx < 0 {
		rs.shouldTrack = true
		return
	}
	rs.shouldTrack = rs.trackStack[lastIdx]
	rs.trackStack = rs.trackStack[:lastIdx]
}

// Untracked runs fn with tracking paused.
func (rs *ReactiveSystem) Untracked(fn func()) {
	rs.PauseTracking()
	defer rs.ResumeTracking()
	fn()
}

// ActiveEffect returns the effect currently running, if any.
func (rs *ReactiveSystem) ActiveEffect() *ReactiveEffect {
	return rs.activeEffect
}

func (rs *ReactiveSystem) warn(msg string, args ...any) {
	if devMode {
		rs.logger.Warn(msg, args...)
	}
}

func (rs *ReactiveSystem) reportError(from SignalAware, err error) {
	if rs.onError != nil {
		rs.onError(from, err)
		return
	}
	rs.logger.Error("effect failed", "err", err)
}

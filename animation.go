package tabstrip

// AnimProperty identifies which scalar of a StripTab an animation drives.
type AnimProperty int

const (
	// AnimWidth animates StripTab.width.
	AnimWidth AnimProperty = iota
	// AnimXOffset animates StripTab.offsetX.
	AnimXOffset
	// AnimYOffset animates StripTab.offsetY.
	AnimYOffset
)

func (p AnimProperty) String() string {
	switch p {
	case AnimWidth:
		return "width"
	case AnimXOffset:
		return "x-offset"
	case AnimYOffset:
		return "y-offset"
	}
	return "unknown"
}

// Easing maps normalized time t in [0, 1] to normalized progress.
type Easing func(t float64) float64

// EaseLinear is constant-velocity interpolation.
func EaseLinear(t float64) float64 { return t }

// EaseOut decelerates toward the end value.
func EaseOut(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseInOut accelerates then decelerates (smoothstep).
func EaseInOut(t float64) float64 { return t * t * (3 - 2*t) }

// propertyAnimation interpolates one scalar property of one tab.
type propertyAnimation struct {
	tab      *StripTab
	prop     AnimProperty
	from, to float64
	// startTime already includes any requested delay.
	startTime int64
	duration  int64
	ease      Easing
}

// valueAt returns the property value at time t, plus whether the
// animation has run to completion.
func (a *propertyAnimation) valueAt(t int64) (float64, bool) {
	if t <= a.startTime {
		return a.from, false
	}
	if a.duration <= 0 || t >= a.startTime+a.duration {
		return a.to, true
	}
	progress := a.ease(float64(t-a.startTime) / float64(a.duration))
	return a.from + (a.to-a.from)*progress, false
}

// apply writes the value into the tab's property.
func (a *propertyAnimation) apply(v float64) {
	switch a.prop {
	case AnimWidth:
		a.tab.width = v
	case AnimXOffset:
		a.tab.offsetX = v
	case AnimYOffset:
		a.tab.offsetY = v
	}
}

// animator is the strip's animation queue: time-driven interpolation
// of tab properties with at most one active animation per
// (tab, property) pair. Starting a new animation on a pair cancels
// the existing one ("last writer wins").
//
// Completion is an explicit signal: when the queue drains, onFinished
// runs exactly once, after every end value has been applied. The
// Strip uses this to remove dying tabs and notify the host model only
// after their close animation has visually finished.
type animator struct {
	anims      []*propertyAnimation
	onFinished func()
}

// start schedules an animation, cancelling any active animation on
// the same (tab, property) pair first.
func (an *animator) start(tab *StripTab, prop AnimProperty, from, to float64, now, delay, duration int64, ease Easing) {
	an.cancel(tab, prop)
	if ease == nil {
		ease = EaseLinear
	}
	an.anims = append(an.anims, &propertyAnimation{
		tab:       tab,
		prop:      prop,
		from:      from,
		to:        to,
		startTime: now + delay,
		duration:  duration,
		ease:      ease,
	})
}

// cancel removes the active animation on (tab, property), leaving the
// property at whatever value it last held.
func (an *animator) cancel(tab *StripTab, prop AnimProperty) {
	for i, a := range an.anims {
		if a.tab == tab && a.prop == prop {
			an.anims = append(an.anims[:i], an.anims[i+1:]...)
			return
		}
	}
}

// cancelTab removes every animation targeting the tab.
func (an *animator) cancelTab(tab *StripTab) {
	kept := an.anims[:0]
	for _, a := range an.anims {
		if a.tab != tab {
			kept = append(kept, a)
		}
	}
	an.anims = kept
}

// has reports whether an animation is active on (tab, property).
func (an *animator) has(tab *StripTab, prop AnimProperty) bool {
	for _, a := range an.anims {
		if a.tab == tab && a.prop == prop {
			return true
		}
	}
	return false
}

// active reports whether any animation is queued.
func (an *animator) active() bool { return len(an.anims) > 0 }

// update advances every queued animation to time t and reports
// whether all of them have completed. Completed animations stay
// queued until finishAll runs so that completion is a single explicit
// event rather than a per-frame side effect.
func (an *animator) update(t int64) bool {
	all := true
	for _, a := range an.anims {
		v, done := a.valueAt(t)
		a.apply(v)
		if !done {
			all = false
		}
	}
	return all
}

// finishAll jumps every queued animation to its end value, clears the
// queue, and fires the completion signal. Safe to call with an empty
// queue (no signal fires).
func (an *animator) finishAll() {
	if len(an.anims) == 0 {
		return
	}
	for _, a := range an.anims {
		a.apply(a.to)
	}
	an.anims = an.anims[:0]
	if an.onFinished != nil {
		an.onFinished()
	}
}

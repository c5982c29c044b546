package tabstrip

import "math"

// scrollMode distinguishes the two ways the scroll offset can be in
// motion without direct input: an eased scroll-to animation and a
// decelerating fling.
type scrollMode int

const (
	scrollModeIdle scrollMode = iota
	scrollModeScroll
	scrollModeFling
)

// scroller integrates the strip's scroll offset over time. A new
// scroll or fling unconditionally replaces whatever was in flight;
// the two mechanisms are never merged.
type scroller struct {
	mode scrollMode

	start, final float64
	startTime    int64
	duration     int64

	// fling state
	velocity float64 // units per second, signed
	decel    float64 // units per second^2, positive
	min, max float64

	cur float64
}

// startScroll begins an eased scroll from start by delta over duration.
func (s *scroller) startScroll(start, delta float64, now, duration int64) {
	s.mode = scrollModeScroll
	s.start = start
	s.final = start + delta
	s.startTime = now
	s.duration = duration
	s.cur = start
}

// fling begins a decelerating fling from start with the given
// velocity, stopping at whichever comes first: velocity zero or the
// [min, max] bound in the direction of travel.
func (s *scroller) fling(start, velocity float64, min, max float64, now int64, decel float64) {
	if velocity == 0 || decel <= 0 {
		s.stop()
		return
	}
	s.mode = scrollModeFling
	s.start = start
	s.velocity = velocity
	s.decel = decel
	s.min = min
	s.max = max
	s.startTime = now
	// Time to decelerate to zero.
	s.duration = int64(math.Abs(velocity) / decel * 1000)
	travel := velocity * math.Abs(velocity) / (2 * decel)
	s.final = clamp(start+travel, min, max)
	s.cur = start
}

// stop abandons any in-flight motion, leaving cur where it is.
func (s *scroller) stop() { s.mode = scrollModeIdle }

// active reports whether the scroller is driving the offset.
func (s *scroller) active() bool { return s.mode != scrollModeIdle }

// update advances to time t and reports whether the offset moved this
// frame. When the motion completes, cur holds the final offset and
// the scroller goes idle.
func (s *scroller) update(t int64) bool {
	if s.mode == scrollModeIdle {
		return false
	}
	elapsed := t - s.startTime
	if elapsed >= s.duration {
		s.cur = s.final
		s.mode = scrollModeIdle
		return true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	switch s.mode {
	case scrollModeScroll:
		progress := EaseOut(float64(elapsed) / float64(s.duration))
		s.cur = s.start + (s.final-s.start)*progress
	case scrollModeFling:
		te := float64(elapsed) / 1000
		sign := 1.0
		if s.velocity < 0 {
			sign = -1
		}
		x := s.start + s.velocity*te - sign*0.5*s.decel*te*te
		s.cur = clamp(x, s.min, s.max)
		if s.cur == s.min || s.cur == s.max {
			// Hit a bound early; the fling is over.
			s.mode = scrollModeIdle
		}
	}
	return true
}

// offset returns the current integrated offset.
func (s *scroller) offset() float64 { return s.cur }

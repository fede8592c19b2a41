package anim

import (
	"time"
)

// DefaultDuration is the settle duration used when none is configured.
const DefaultDuration = 350 * time.Millisecond

// Config is the timing profile of an animation.
type Config struct {
	Duration time.Duration
	Easing   Easing
}

// DefaultConfig eases in and out over [DefaultDuration].
var DefaultConfig = Config{Duration: DefaultDuration, Easing: EaseInOutQuad}

func (c Config) easing() Easing {
	if c.Easing == nil {
		return Linear
	}
	return c.Easing
}

// Scalar is a value that can jump or animate toward a target.
// The zero value rests at 0.
type Scalar struct {
	value float64

	from, to   float64
	elapsed    time.Duration
	cfg        Config
	active     bool
	onComplete func(finished bool)
}

// Value returns the current value, including mid-animation.
func (s *Scalar) Value() float64 {
	return s.value
}

// Target returns the value the scalar is heading to, or the current value
// when idle.
func (s *Scalar) Target() float64 {
	if s.active {
		return s.to
	}
	return s.value
}

// Animating reports whether an animation is in progress.
func (s *Scalar) Animating() bool {
	return s.active
}

// SetImmediate jumps to v. A running animation is cancelled and its
// callback is invoked with finished=false.
func (s *Scalar) SetImmediate(v float64) {
	s.cancel()
	s.value = v
}

// AnimateTo starts animating from the current value to target using cfg.
// A running animation is cancelled first (callback with finished=false).
// onComplete may be nil. It runs with finished=true once the scalar
// reaches target. A non-positive duration completes immediately.
func (s *Scalar) AnimateTo(target float64, cfg Config, onComplete func(finished bool)) {
	s.cancel()
	if cfg.Duration <= 0 {
		s.value = target
		if onComplete != nil {
			onComplete(true)
		}
		return
	}
	s.from = s.value
	s.to = target
	s.elapsed = 0
	s.cfg = cfg
	s.active = true
	s.onComplete = onComplete
}

// Advance moves the animation forward by dt and reports whether it is
// still running afterwards.
func (s *Scalar) Advance(dt time.Duration) bool {
	if !s.active {
		return false
	}
	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt
	if s.elapsed >= s.cfg.Duration {
		s.value = s.to
		done := s.onComplete
		s.active = false
		s.onComplete = nil
		if done != nil {
			done(true)
		}
		return s.active
	}
	t := float64(s.elapsed) / float64(s.cfg.Duration)
	s.value = s.from + (s.to-s.from)*s.cfg.easing()(t)
	return true
}

func (s *Scalar) cancel() {
	if !s.active {
		return
	}
	done := s.onComplete
	s.active = false
	s.onComplete = nil
	if done != nil {
		done(false)
	}
}

package anim

import (
	"sort"
	"strings"

	"github.com/matzehuels/gridsort/pkg/errors"
)

// Easing maps normalized time t in [0, 1] to progress in [0, 1].
// Implementations must return 0 at t=0 and 1 at t=1.
type Easing func(t float64) float64

// Linear advances at constant speed.
func Linear(t float64) float64 { return t }

// EaseInQuad starts slow and accelerates.
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad starts fast and decelerates.
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EaseInOutQuad accelerates through the first half and decelerates through the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInOutCubic is a steeper variant of [EaseInOutQuad].
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

var easings = map[string]Easing{
	"linear":            Linear,
	"ease-in":           EaseInQuad,
	"ease-out":          EaseOutQuad,
	"ease-in-out":       EaseInOutQuad,
	"ease-in-out-cubic": EaseInOutCubic,
}

// ParseEasing looks up an easing curve by name (case-insensitive).
func ParseEasing(name string) (Easing, error) {
	if e, ok := easings[strings.ToLower(strings.TrimSpace(name))]; ok {
		return e, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown easing %q (must be one of: %s)", name, strings.Join(EasingNames(), ", "))
}

// EasingNames returns the accepted easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

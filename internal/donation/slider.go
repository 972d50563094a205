package donation

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Range is the configured bounds of the amount slider.
type Range struct {
	Min  int
	Max  int
	Step int
}

// DefaultRange is used when no bounds are configured.
var DefaultRange = Range{Min: 1, Max: 1000, Step: 1}

// Contains reports whether v lies within the bounds.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp snaps v to the step grid anchored at Min and keeps it within bounds.
func (r Range) Clamp(v int) int {
	if v <= r.Min {
		return r.Min
	}
	if v >= r.Max {
		return r.Max
	}
	step := r.Step
	if step <= 0 {
		step = 1
	}
	offset := int(math.Round(float64(v-r.Min)/float64(step))) * step
	out := r.Min + offset
	if out > r.Max {
		out -= step
	}
	return out
}

// Parse converts raw slider input into an in-range amount. ok is false when
// the input is not a number; out-of-range numbers are clamped.
func (r Range) Parse(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err == nil {
		return r.Clamp(n), true
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return r.Min, true
		}
		return r.Max, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	// bounds are checked on the float; converting an out-of-range float to int is undefined
	if f <= float64(r.Min) {
		return r.Min, true
	}
	if f >= float64(r.Max) {
		return r.Max, true
	}
	return r.Clamp(int(math.Round(f))), true
}

// Nudge moves v by n steps, staying within bounds.
func (r Range) Nudge(v, n int) int {
	step := r.Step
	if step <= 0 {
		step = 1
	}
	return r.Clamp(v + n*step)
}

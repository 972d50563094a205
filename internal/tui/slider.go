package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/gofundme/internal/donation"
)

const sliderWidth = 24

// slider turns key presses into amount change events. It holds no amount of
// its own; the form's draft is the only source of the value.
type slider struct {
	bounds donation.Range
	typed  string
}

func newSlider(bounds donation.Range) slider {
	return slider{bounds: bounds}
}

// maxTyped is one digit more than the largest amount, enough to overshoot
// and clamp to Max.
func (s slider) maxTyped() int {
	return len(strconv.Itoa(s.bounds.Max)) + 1
}

// blur drops any partially typed amount.
func (s *slider) blur() { s.typed = "" }

// handleKey returns the raw value the control would emit for m, given the
// current amount. ok is false when the key does not change the slider.
func (s *slider) handleKey(m tea.KeyMsg, current int) (string, bool) {
	switch m.String() {
	case "left", "h", "-":
		s.typed = ""
		return strconv.Itoa(s.bounds.Nudge(current, -1)), true
	case "right", "l", "+":
		s.typed = ""
		return strconv.Itoa(s.bounds.Nudge(current, 1)), true
	case "pgdown":
		s.typed = ""
		return strconv.Itoa(s.bounds.Nudge(current, -10)), true
	case "pgup":
		s.typed = ""
		return strconv.Itoa(s.bounds.Nudge(current, 10)), true
	case "home":
		s.typed = ""
		return strconv.Itoa(s.bounds.Min), true
	case "end":
		s.typed = ""
		return strconv.Itoa(s.bounds.Max), true
	case "backspace":
		if s.typed == "" {
			return "", false
		}
		s.typed = s.typed[:len(s.typed)-1]
		if s.typed == "" {
			return "", false
		}
		return s.typed, true
	}
	if m.Type != tea.KeyRunes {
		return "", false
	}
	digits := string(m.Runes)
	if strings.Trim(digits, "0123456789") != "" {
		return "", false
	}
	if len(s.typed)+len(digits) > s.maxTyped() {
		return "", false
	}
	s.typed += digits
	return s.typed, true
}

func (s slider) view(value int, currency string, focused bool) string {
	filled := 0
	if span := s.bounds.Max - s.bounds.Min; span > 0 {
		filled = (value - s.bounds.Min) * sliderWidth / span
	}
	if filled < 0 {
		filled = 0
	}
	if filled > sliderWidth {
		filled = sliderWidth
	}
	bar := sliderFillStyle.Render(strings.Repeat("━", filled)) +
		"●" +
		sliderTrackStyle.Render(strings.Repeat("─", sliderWidth-filled))
	marker := " "
	if focused {
		marker = cursorMarker
	}
	return marker + " " + bar + "  " + amountStyle.Render(donation.FormatAmount(currency, value))
}

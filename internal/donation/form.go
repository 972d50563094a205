package donation

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Draft is the in-progress, editable donation entry.
type Draft struct {
	Name    string
	Caption string
	Amount  string
}

// DefaultAmount is the slider value of a fresh form.
const DefaultAmount = 5

// State is the form's position in the edit/submit cycle.
type State int

const (
	Editing State = iota
	Submitted
)

func (s State) String() string {
	if s == Submitted {
		return "submitted"
	}
	return "editing"
}

// Form owns the draft bound to the three inputs and the history of
// submitted donations. Each setter replaces exactly one draft field.
type Form struct {
	draft         Draft
	history       History
	bounds        Range
	defaultAmount int
	state         State

	now   func() time.Time
	newID func() string
}

// NewForm returns a form in the Editing state with default draft values.
// defaultAmount is clamped into bounds.
func NewForm(bounds Range, defaultAmount int) *Form {
	if bounds.Step <= 0 {
		bounds.Step = 1
	}
	if bounds.Max < bounds.Min {
		bounds = DefaultRange
	}
	f := &Form{
		bounds:        bounds,
		defaultAmount: bounds.Clamp(defaultAmount),
		now:           func() time.Time { return time.Now().UTC().Truncate(time.Second) },
		newID:         uuid.NewString,
	}
	f.Reset()
	return f
}

// Draft returns the current field values.
func (f *Form) Draft() Draft { return f.draft }

// Bounds returns the slider range the amount is held to.
func (f *Form) Bounds() Range { return f.bounds }

// State reports whether a submit just happened.
func (f *Form) State() State { return f.state }

// History returns the submitted donations in insertion order.
func (f *Form) History() []Record { return f.history.Records() }

// Count returns the number of submitted donations.
func (f *Form) Count() int { return f.history.Len() }

// AmountValue returns the draft amount as a number.
func (f *Form) AmountValue() int {
	n, err := strconv.Atoi(f.draft.Amount)
	if err != nil || !f.bounds.Contains(n) {
		return f.defaultAmount
	}
	return n
}

func (f *Form) SetName(v string) {
	f.draft.Name = v
	f.state = Editing
}

func (f *Form) SetCaption(v string) {
	f.draft.Caption = v
	f.state = Editing
}

// SetAmount applies a slider change. Out-of-range values are clamped; it
// returns false and leaves the amount untouched for non-numeric input.
func (f *Form) SetAmount(v string) bool {
	n, ok := f.bounds.Parse(v)
	if !ok {
		return false
	}
	f.draft.Amount = strconv.Itoa(n)
	f.state = Editing
	return true
}

// Reset restores the default draft without touching the history.
func (f *Form) Reset() {
	f.draft = Draft{Amount: strconv.Itoa(f.defaultAmount)}
}

// Snapshot copies the draft into a new record without changing any state.
func (f *Form) Snapshot() Record {
	return Record{
		ID:        f.newID(),
		DonorName: f.draft.Name,
		Caption:   f.draft.Caption,
		Amount:    f.AmountValue(),
		CreatedAt: f.now(),
	}
}

// Commit appends r to the history and resets the draft.
func (f *Form) Commit(r Record) {
	f.history.Append(r)
	f.Reset()
	f.state = Submitted
}

// Submit snapshots the draft, appends it and resets the form.
func (f *Form) Submit() Record {
	r := f.Snapshot()
	f.Commit(r)
	return r
}

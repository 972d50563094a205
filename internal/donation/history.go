package donation

// History is the append-only, insertion-ordered sequence of submitted
// donations for a session.
type History struct {
	records []Record
}

// Append adds r after every earlier record.
func (h *History) Append(r Record) {
	h.records = append(h.records, r)
}

// Records returns a copy of the history in insertion order.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Len returns the number of submitted donations.
func (h *History) Len() int { return len(h.records) }

package tui

import "github.com/jask/gofundme/internal/donation"

// submittedMsg carries a Submitter result back to the update loop.
type submittedMsg struct {
	seq    int
	record donation.Record
	err    error
}

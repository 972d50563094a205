package donation

import (
	"context"
	"errors"
	"fmt"
)

// ErrSubmissionFailed marks a recoverable submission failure. The draft is
// kept and the donation is not added to the history.
var ErrSubmissionFailed = errors.New("submission failed")

// Submitter records a donation with an external collaborator. A nil error
// means the donation was accepted.
type Submitter interface {
	Submit(ctx context.Context, r Record) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, r Record) error

func (fn SubmitterFunc) Submit(ctx context.Context, r Record) error { return fn(ctx, r) }

// LocalSubmitter accepts every donation without leaving the process.
type LocalSubmitter struct{}

func (LocalSubmitter) Submit(context.Context, Record) error { return nil }

// Failed wraps err so that errors.Is(err, ErrSubmissionFailed) holds.
func Failed(err error) error {
	if err == nil {
		return ErrSubmissionFailed
	}
	if errors.Is(err, ErrSubmissionFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
}

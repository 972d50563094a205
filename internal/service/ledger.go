package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jask/gofundme/internal/database/repository"
	"github.com/jask/gofundme/internal/donation"
)

// LedgerSubmitter appends accepted donations to the SQLite ledger.
type LedgerSubmitter struct {
	Donations *repository.DonationRepo
	Log       zerolog.Logger
}

func (s *LedgerSubmitter) Submit(ctx context.Context, r donation.Record) error {
	if s.Donations == nil {
		return donation.Failed(fmt.Errorf("ledger: repository not configured"))
	}
	row := repository.Donation{
		ID:        r.ID,
		DonorName: r.DonorName,
		Caption:   r.Caption,
		Amount:    int64(r.Amount),
		CreatedAt: r.CreatedAt,
	}
	if err := s.Donations.Insert(ctx, row); err != nil {
		s.Log.Error().Err(err).Str("donation_id", r.ID).Msg("ledger insert failed")
		return donation.Failed(fmt.Errorf("ledger insert: %w", err))
	}
	s.Log.Info().Str("donation_id", r.ID).Int("amount", r.Amount).Msg("donation recorded")
	return nil
}

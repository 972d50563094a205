package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/gofundme/internal/database"
	"github.com/jask/gofundme/internal/database/repository"
	"github.com/jask/gofundme/internal/donation"
)

func setupLedger(t *testing.T) (*LedgerSubmitter, *repository.DonationRepo, context.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewDonationRepo(db)
	return &LedgerSubmitter{Donations: repo, Log: zerolog.Nop()}, repo, ctx
}

func TestLedgerSubmitterRecordsDonation(t *testing.T) {
	t.Parallel()
	sub, repo, ctx := setupLedger(t)

	form := donation.NewForm(donation.DefaultRange, donation.DefaultAmount)
	form.SetName("Sponge Bob")
	form.SetCaption("Have a good time in the bottom of the ocean")
	form.SetAmount("234")
	rec := form.Snapshot()

	require.NoError(t, sub.Submit(ctx, rec))

	rows, err := repo.ListRecent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, rec.ID, rows[0].ID)
	require.Equal(t, "Sponge Bob", rows[0].DonorName)
	require.Equal(t, "Have a good time in the bottom of the ocean", rows[0].Caption)
	require.Equal(t, int64(234), rows[0].Amount)
}

func TestLedgerSubmitterFailure(t *testing.T) {
	t.Parallel()
	sub, _, ctx := setupLedger(t)

	rec := donation.Record{ID: "same", DonorName: "Jon Snow", Amount: 12, CreatedAt: database.Now()}
	require.NoError(t, sub.Submit(ctx, rec))

	err := sub.Submit(ctx, rec)
	require.ErrorIs(t, err, donation.ErrSubmissionFailed)

	var unconfigured LedgerSubmitter
	require.ErrorIs(t, unconfigured.Submit(ctx, rec), donation.ErrSubmissionFailed)
}

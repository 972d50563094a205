package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/gofundme/internal/database"
	"github.com/jask/gofundme/internal/database/repository"
)

func openTestDB(t *testing.T) *repository.DonationRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	// second run is a no-op
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewDonationRepo(db)
}

func TestDonationRepoInsertAndList(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestDB(t)

	base := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, repository.Donation{ID: "a", DonorName: "Sponge Bob", Caption: "Have a good time in the bottom of the ocean", Amount: 234, CreatedAt: base}))
	require.NoError(t, repo.Insert(ctx, repository.Donation{ID: "b", DonorName: "Jon Snow", Caption: "See you in Winterfell", Amount: 12, CreatedAt: base.Add(time.Minute)}))

	list, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "b", list[0].ID)
	require.Equal(t, "Jon Snow", list[0].DonorName)
	require.Equal(t, int64(12), list[0].Amount)
	require.True(t, base.Add(time.Minute).Equal(list[0].CreatedAt))
	require.Equal(t, "a", list[1].ID)

	limited, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)

	count, sum, err := repo.Total(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, int64(246), sum)
}

func TestDonationRepoRejectsDuplicateID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := openTestDB(t)

	d := repository.Donation{ID: "dup", DonorName: "A", Amount: 5, CreatedAt: database.Now()}
	require.NoError(t, repo.Insert(ctx, d))
	require.Error(t, repo.Insert(ctx, d))
}

package testdata

import (
	"context"
	"database/sql"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jask/gofundme/internal/database"
	"github.com/jask/gofundme/internal/database/repository"
)

var (
	donors = []string{"Sponge Bob", "Patrick Star", "Sandy Cheeks", "Jon Snow", "Arya Stark", "Squidward", ""}

	captions = []string{
		"Have a good time in the bottom of the ocean",
		"See you in Winterfell",
		"Good luck",
		"Keep going!",
		"",
	}
)

// SeedDonations inserts n sample donations spread over the last ten days in
// one transaction: either all rows land or none do. Amounts are whole units
// in [lo, hi].
func SeedDonations(ctx context.Context, db *sql.DB, rng *rand.Rand, n, lo, hi int) error {
	if hi < lo {
		lo, hi = hi, lo
	}
	now := database.Now()
	return database.WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewDonationRepo(tx)
		for i := 0; i < n; i++ {
			d := repository.Donation{
				ID:        uuid.NewString(),
				DonorName: donors[rng.Intn(len(donors))],
				Caption:   captions[rng.Intn(len(captions))],
				Amount:    int64(lo + rng.Intn(hi-lo+1)),
				CreatedAt: now.Add(-time.Duration(rng.Intn(10*24*60)) * time.Minute),
			}
			if err := repo.Insert(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
}

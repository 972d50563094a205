package repository

import "time"

// Donation represents a donations ledger row.
type Donation struct {
	ID        string
	DonorName string
	Caption   string
	Amount    int64
	CreatedAt time.Time
}

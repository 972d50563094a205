package repository

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DonationRepo handles the donations ledger. Rows are only ever inserted.
type DonationRepo struct {
	db DBTX
}

func NewDonationRepo(db DBTX) *DonationRepo {
	return &DonationRepo{db: db}
}

func (r *DonationRepo) Insert(ctx context.Context, d Donation) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO donations(id, donor_name, caption, amount, created_at)
	VALUES (?, ?, ?, ?, ?);
	`, d.ID, d.DonorName, d.Caption, d.Amount, d.CreatedAt.UTC())
	return err
}

// ListRecent returns up to limit donations, newest first.
func (r *DonationRepo) ListRecent(ctx context.Context, limit int) ([]Donation, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, donor_name, caption, amount, created_at
	FROM donations
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Donation
	for rows.Next() {
		var d Donation
		if err := rows.Scan(&d.ID, &d.DonorName, &d.Caption, &d.Amount, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DonationRepo) Total(ctx context.Context) (count int, sum int64, err error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM donations`)
	err = row.Scan(&count, &sum)
	return count, sum, err
}

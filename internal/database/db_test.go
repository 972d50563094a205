package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "tx.db")
	require.NoError(t, RunMigrations(dbPath))
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	insert := func(tx *sql.Tx, id string) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO donations(id, amount, created_at) VALUES (?, 5, ?)`, id, Now())
		return err
	}

	require.NoError(t, WithTx(ctx, db, func(tx *sql.Tx) error { return insert(tx, "kept") }))

	boom := errors.New("boom")
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		require.NoError(t, insert(tx, "dropped"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	var ids []string
	rows, err := db.QueryContext(ctx, `SELECT id FROM donations ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []string{"kept"}, ids)
}

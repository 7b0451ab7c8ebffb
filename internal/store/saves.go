package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type saveRepo struct {
	db DBTX
}

func (r *saveRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM saves WHERE key = ?`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("save %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("get save %q: %w", key, err)
	}
	return data, nil
}

func (r *saveRepo) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO saves (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put save %q: %w", key, err)
	}
	return nil
}

func (r *saveRepo) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM saves ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list save keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (r *saveRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saves`)
	if err != nil {
		return 0, fmt.Errorf("delete saves: %w", err)
	}
	return res.RowsAffected()
}

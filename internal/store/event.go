package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// sequenceCounter manages the global monotonic sequence number shared by
// every appended event. Snapshots record the sequence they were taken at,
// so events after a snapshot are those with a larger sequence.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db DBTX) (*sequenceCounter, error) {
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.ExecContext(ctx, `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{}, nil
}

// Next atomically returns the next sequence number and increments the
// counter. Pass the open transaction when called inside one.
func (sc *sequenceCounter) Next(ctx context.Context, db DBTX) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type eventRepo struct {
	db  DBTX
	seq *sequenceCounter
}

func (r *eventRepo) AppendStageClear(ctx context.Context, ev *StageClearEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	if ev.Sequence == 0 {
		seq, err := r.seq.Next(ctx, r.db)
		if err != nil {
			return err
		}
		ev.Sequence = seq
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stage_clear_events (
			id, sequence, timestamp, session_id, exam_body, grade, subject, stage,
			correct, total, rank, cleared, perfect, coins_earned, unlocked
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Sequence, ev.Timestamp.UnixMilli(), ev.SessionID, ev.ExamBody,
		ev.Grade, ev.Subject, ev.Stage, ev.Correct, ev.Total, ev.Rank,
		boolToInt(ev.Cleared), boolToInt(ev.Perfect), ev.CoinsEarned, ev.Unlocked,
	)
	if err != nil {
		return fmt.Errorf("append stage clear: %w", err)
	}
	return nil
}

func (r *eventRepo) ListStageClears(ctx context.Context, opts QueryOpts) ([]StageClearEvent, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, opts.To.UnixMilli())
	}

	q := `SELECT id, sequence, timestamp, session_id, exam_body, grade, subject, stage,
		correct, total, rank, cleared, perfect, coins_earned, unlocked
		FROM stage_clear_events`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list stage clears: %w", err)
	}
	defer rows.Close()

	var out []StageClearEvent
	for rows.Next() {
		var (
			ev               StageClearEvent
			ts               int64
			cleared, perfect int
		)
		if err := rows.Scan(&ev.ID, &ev.Sequence, &ts, &ev.SessionID, &ev.ExamBody,
			&ev.Grade, &ev.Subject, &ev.Stage, &ev.Correct, &ev.Total, &ev.Rank,
			&cleared, &perfect, &ev.CoinsEarned, &ev.Unlocked); err != nil {
			return nil, fmt.Errorf("scan stage clear: %w", err)
		}
		ev.Timestamp = time.UnixMilli(ts).UTC()
		ev.Cleared = cleared != 0
		ev.Perfect = perfect != 0
		out = append(out, ev)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

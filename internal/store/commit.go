package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// DefaultSnapshotKeep is how many progress snapshots CommitOutcome retains.
const DefaultSnapshotKeep = 50

// Outcome is everything a finished play session persists.
type Outcome struct {
	ExamBody string
	Progress []byte
	Event    *StageClearEvent
}

// CommitOutcome writes the updated progress, appends the event and takes
// a snapshot in a single transaction. Old snapshots are pruned afterwards.
func (s *Store) CommitOutcome(ctx context.Context, out Outcome) error {
	if out.Event == nil {
		return fmt.Errorf("commit outcome: missing event")
	}
	if !json.Valid(out.Progress) {
		return fmt.Errorf("commit outcome: progress is not valid JSON")
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		saves := &saveRepo{db: tx}
		if err := saves.Put(ctx, KeyRegisterProgress, out.Progress); err != nil {
			return err
		}
		events := &eventRepo{db: tx, seq: s.seq}
		if err := events.AppendStageClear(ctx, out.Event); err != nil {
			return err
		}
		snaps := &snapshotRepo{db: tx}
		return snaps.Save(ctx, &Snapshot{
			Sequence:  out.Event.Sequence,
			Timestamp: out.Event.Timestamp,
			Data: SnapshotData{
				Version:  1,
				ExamBody: out.ExamBody,
				Progress: json.RawMessage(out.Progress),
			},
		})
	})
	if err != nil {
		return fmt.Errorf("commit outcome: %w", err)
	}

	s.logger.Info("outcome committed",
		zap.String("session_id", out.Event.SessionID),
		zap.Int64("sequence", out.Event.Sequence),
		zap.Int("grade", out.Event.Grade),
		zap.String("subject", out.Event.Subject),
		zap.Int("stage", out.Event.Stage),
		zap.Bool("cleared", out.Event.Cleared),
	)

	if err := s.SnapshotRepo().Prune(ctx, DefaultSnapshotKeep); err != nil {
		s.logger.Warn("snapshot prune failed", zap.Error(err))
	}
	return nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("rollback failed", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}

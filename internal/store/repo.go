package store

import (
	"context"
	"encoding/json"
	"time"
)

// Save keys used by the app.
const (
	KeyRegisterProgress = "register-progress"
	KeyPlayConfig       = "register-play-config"
	KeyPracticeConfig   = "practice-config"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SaveRepo stores opaque JSON documents by key.
type SaveRepo interface {
	// Get returns the document for key, or an error wrapping ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put creates or replaces the document for key.
	Put(ctx context.Context, key string, data []byte) error

	// Keys lists stored keys in order.
	Keys(ctx context.Context) ([]string, error)

	// DeleteAll removes every document and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// SnapshotData is a point-in-time copy of the saved progress.
type SnapshotData struct {
	Version  int             `json:"version"`
	ExamBody string          `json:"examBody"`
	Progress json.RawMessage `json:"progress"`
}

// Snapshot represents a point-in-time capture of player state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// List returns up to limit snapshots, newest first.
	List(ctx context.Context, limit int) ([]Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// StageClearEvent records the result of one register play session.
type StageClearEvent struct {
	ID          string
	Sequence    int64
	Timestamp   time.Time
	SessionID   string
	ExamBody    string
	Grade       int
	Subject     string
	Stage       int
	Correct     int
	Total       int
	Rank        string
	Cleared     bool
	Perfect     bool
	CoinsEarned int

	// Unlocked names what the session unlocked, e.g. "subject:mul" or
	// "grade:9". Empty if nothing.
	Unlocked string
}

// EventRepo provides append and query access to play events.
type EventRepo interface {
	// AppendStageClear records a play result. ID, Sequence and Timestamp
	// are assigned when empty.
	AppendStageClear(ctx context.Context, ev *StageClearEvent) error

	// ListStageClears returns matching events, newest first.
	ListStageClears(ctx context.Context, opts QueryOpts) ([]StageClearEvent, error)
}

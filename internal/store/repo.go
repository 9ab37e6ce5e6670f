package store

import (
	"context"
	"time"

	"github.com/abhisek/shiksha/internal/ledger"
	"github.com/abhisek/shiksha/internal/profile"
)

// SnapshotVersion is the current SnapshotData layout version.
const SnapshotVersion = 1

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version  int                   `json:"version"`
	User     *profile.User         `json:"user,omitempty"`
	Progress []ledger.UserProgress `json:"progress,omitempty"`
	Attempts []ledger.QuizAttempt  `json:"attempts,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Clear deletes every snapshot.
	Clear(ctx context.Context) error
}

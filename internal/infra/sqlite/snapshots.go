package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fightclub-net/fightclub/internal/domain"
)

// ─── Snapshot Cache ─────────────────────────────────────────────────────────
// The raw documents of each completed fetch cycle are cached as one JSON
// payload, so a restart (or an offline start) can project the last known
// state instead of an empty dashboard.

// CachedSnapshot is one stored fetch cycle.
type CachedSnapshot struct {
	ID        string
	FetchedAt time.Time
	Payload   []byte
}

// SaveSnapshot stores a fetch cycle's raw payload.
func (d *DB) SaveSnapshot(id string, fetchedAt time.Time, payload []byte) error {
	_, err := d.db.Exec(
		`INSERT INTO snapshots (id, fetched_at, payload) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET fetched_at = excluded.fetched_at, payload = excluded.payload`,
		id, fetchedAt.Unix(), string(payload),
	)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", id, err)
	}
	return nil
}

// LatestSnapshot returns the most recently fetched snapshot.
// Returns ErrNoSnapshot when no refresh has ever completed.
func (d *DB) LatestSnapshot() (CachedSnapshot, error) {
	var snap CachedSnapshot
	var fetchedAt int64
	var payload string

	err := d.db.QueryRow(
		`SELECT id, fetched_at, payload FROM snapshots ORDER BY fetched_at DESC, id DESC LIMIT 1`,
	).Scan(&snap.ID, &fetchedAt, &payload)
	if err == sql.ErrNoRows {
		return snap, domain.ErrNoSnapshot
	}
	if err != nil {
		return snap, fmt.Errorf("latest snapshot: %w", err)
	}

	snap.FetchedAt = time.Unix(fetchedAt, 0)
	snap.Payload = []byte(payload)
	return snap, nil
}

// PruneSnapshots deletes all but the newest keep snapshots.
func (d *DB) PruneSnapshots(keep int) (int64, error) {
	res, err := d.db.Exec(
		`DELETE FROM snapshots WHERE id NOT IN (
			SELECT id FROM snapshots ORDER BY fetched_at DESC, id DESC LIMIT ?
		)`, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	return res.RowsAffected()
}

package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/fightclub-net/fightclub/internal/domain"
)

// ─── Preference Key-Value ───────────────────────────────────────────────────
// Small durable settings: active theme name, accent color, last ego viewed.

// SetPref stores a preference key-value pair.
func (d *DB) SetPref(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set pref %s: %w", key, err)
	}
	return nil
}

// GetPref retrieves a preference value by key.
// Returns ErrPrefNotFound if the key was never set.
func (d *DB) GetPref(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", domain.ErrPrefNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get pref %s: %w", key, err)
	}
	return value, nil
}

// DeletePref removes a preference key. Deleting an absent key is a no-op.
func (d *DB) DeletePref(key string) error {
	_, err := d.db.Exec(`DELETE FROM prefs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete pref %s: %w", key, err)
	}
	return nil
}

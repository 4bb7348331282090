package main

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS dashboard_snapshots (
		board_id   TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		generation INTEGER NOT NULL DEFAULT 0,
		expires_at DATETIME NOT NULL,
		saved_at   DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func SaveSnapshot(db *sql.DB, boardID string, data *DashboardData, expiresAt time.Time, generation int64) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT INTO dashboard_snapshots (board_id, payload, generation, expires_at, saved_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(board_id) DO UPDATE SET
			payload = excluded.payload,
			generation = excluded.generation,
			expires_at = excluded.expires_at,
			saved_at = excluded.saved_at`,
		boardID, string(payload), generation, expiresAt, time.Now(),
	)
	return err
}

// LoadSnapshot returns the stored payload for a board, or nil when there is
// none or it has expired.
func LoadSnapshot(db *sql.DB, boardID string, now time.Time) (*DashboardData, time.Time, error) {
	var payload string
	var expiresAt time.Time
	err := db.QueryRow(
		`SELECT payload, expires_at FROM dashboard_snapshots WHERE board_id = ?`,
		boardID,
	).Scan(&payload, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, err
	}
	if !now.Before(expiresAt) {
		return nil, time.Time{}, nil
	}

	var data DashboardData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, time.Time{}, err
	}
	return &data, expiresAt, nil
}

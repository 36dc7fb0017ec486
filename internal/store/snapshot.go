package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"bonuscalc/internal/model"
)

// SaveSnapshot 寫入自動存檔快照，覆蓋舊檔
func (s *Store) SaveSnapshot(state *model.AppState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (id, payload, saved_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
	`, string(payload), state.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot 讀取自動存檔快照，無存檔時回傳 (nil, nil)
func (s *Store) LoadSnapshot() (*model.AppState, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM snapshots WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var state model.AppState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &state, nil
}

// SnapshotTimestamp 最近一次存檔的時間戳（Unix 毫秒）
func (s *Store) SnapshotTimestamp() (int64, bool, error) {
	var savedAt int64
	err := s.db.QueryRow(`SELECT saved_at FROM snapshots WHERE id = 1`).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query snapshot timestamp: %w", err)
	}
	return savedAt, true, nil
}

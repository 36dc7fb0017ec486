package store

import "fmt"

// CreateImportLog 建立匯入日誌，回傳 import_log_id
func (s *Store) CreateImportLog(filename string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (filename, status)
		VALUES (?, 'processing')
	`, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// UpdateImportLog 完成匯入日誌更新
func (s *Store) UpdateImportLog(id int64, rawRows, persons, stage1Rows, stage2Rows int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			raw_rows = ?,
			persons = ?,
			stage1_rows = ?,
			stage2_rows = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, rawRows, persons, stage1Rows, stage2Rows, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

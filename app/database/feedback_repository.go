package database

import (
	"fmt"
)

// FeedbackRepositoryImpl handles database operations for user feedback
type FeedbackRepositoryImpl struct {
	db *DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *DB) *FeedbackRepositoryImpl {
	return &FeedbackRepositoryImpl{db: db}
}

// Insert stores a feedback entry
func (r *FeedbackRepositoryImpl) Insert(record FeedbackRecord) error {
	_, err := r.db.Exec(`
		INSERT INTO feedback (feedback, rating) VALUES (?, ?)
	`, record.Feedback, record.Rating)
	if err != nil {
		return fmt.Errorf("failed to store feedback: %w", err)
	}
	return nil
}

// Recent returns the most recent feedback entries, newest first
func (r *FeedbackRepositoryImpl) Recent(limit int) ([]FeedbackRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, created_at, feedback, rating
		FROM feedback
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var records []FeedbackRecord
	for rows.Next() {
		var record FeedbackRecord
		err := rows.Scan(&record.ID, &record.CreatedAt, &record.Feedback, &record.Rating)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

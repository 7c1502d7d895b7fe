package database

import (
	"encoding/json"
	"fmt"
)

// HistoryRepositoryImpl handles database operations for analysis history
type HistoryRepositoryImpl struct {
	db *DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *DB) *HistoryRepositoryImpl {
	return &HistoryRepositoryImpl{db: db}
}

// Insert stores an analysis record
func (r *HistoryRepositoryImpl) Insert(record AnalysisRecord) error {
	signals, err := json.Marshal(emptyIfNil(record.WarningSignals))
	if err != nil {
		return fmt.Errorf("failed to encode warning signals: %w", err)
	}
	topics, err := json.Marshal(emptyIfNil(record.Topics))
	if err != nil {
		return fmt.Errorf("failed to encode topics: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO analysis_history (
			title, verdict, confidence, word_count, source_url,
			warning_signals, topics, evidence_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.Title, record.Verdict, record.Confidence, record.WordCount,
		record.SourceURL, string(signals), string(topics), record.EvidenceCount)

	if err != nil {
		return fmt.Errorf("failed to store analysis record: %w", err)
	}

	return nil
}

// Recent returns the most recent analysis records, newest first
func (r *HistoryRepositoryImpl) Recent(limit int) ([]AnalysisRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, created_at, title, verdict, confidence, word_count,
			source_url, warning_signals, topics, evidence_count
		FROM analysis_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis history: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var record AnalysisRecord
		var signals, topics string

		err := rows.Scan(&record.ID, &record.CreatedAt, &record.Title,
			&record.Verdict, &record.Confidence, &record.WordCount,
			&record.SourceURL, &signals, &topics, &record.EvidenceCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis record: %w", err)
		}

		if err := json.Unmarshal([]byte(signals), &record.WarningSignals); err != nil {
			return nil, fmt.Errorf("failed to decode warning signals: %w", err)
		}
		if err := json.Unmarshal([]byte(topics), &record.Topics); err != nil {
			return nil, fmt.Errorf("failed to decode topics: %w", err)
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

// Count returns the total number of stored analysis records
func (r *HistoryRepositoryImpl) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM analysis_history`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count analysis records: %w", err)
	}
	return count, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

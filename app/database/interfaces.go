package database

type HistoryRepository interface {
	Insert(record AnalysisRecord) error
	Recent(limit int) ([]AnalysisRecord, error)
	Count() (int, error)
}

type FeedbackRepository interface {
	Insert(record FeedbackRecord) error
	Recent(limit int) ([]FeedbackRecord, error)
}

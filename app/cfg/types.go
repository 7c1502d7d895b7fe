package cfg

type Cfg struct {
	// Application configuration
	Port        string
	DBPath      string
	LexiconPath string
	ModelPath   string

	// Analysis settings
	SummarySentences   int
	MaxBodyWords       int
	MaxEvidenceSources int
	EvidenceFeedURL    string

	// Application metadata
	UserAgent    string
	APIAccessKey string
	Timezone     string
	Debug        bool
	Version      string
}

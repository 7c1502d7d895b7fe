package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Application configuration
	Port        string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	DBPath      string `long:"db-path" env:"DB_PATH" default:"./veracify.db" description:"Path to the SQLite database file"`
	LexiconPath string `long:"lexicon-path" env:"LEXICON_PATH" description:"Optional YAML file overriding the built-in analysis lexicon"`
	ModelPath   string `long:"model-path" env:"MODEL_PATH" default:"./model.json" description:"Path to the frozen classifier model artifact"`

	// Analysis settings
	SummarySentences   int    `long:"summary-sentences" env:"SUMMARY_SENTENCES" default:"5" description:"Target number of sentences for the extractive digest"`
	MaxBodyWords       int    `long:"max-body-words" env:"MAX_BODY_WORDS" default:"500" description:"Maximum word count for the digest body"`
	MaxEvidenceSources int    `long:"max-evidence-sources" env:"MAX_EVIDENCE_SOURCES" default:"5" description:"Maximum number of evidence sources per analysis"`
	EvidenceFeedURL    string `long:"evidence-feed-url" env:"EVIDENCE_FEED_URL" description:"Optional fact-check RSS feed URL used as the evidence provider"`

	// Application metadata
	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"Veracify/1.0" description:"User agent string for outbound HTTP requests"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for management endpoints (optional)"`
	Timezone     string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug        bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.SummarySentences < 1 {
		return nil, fmt.Errorf("summary sentences must be positive, got %d", raw.SummarySentences)
	}
	if raw.MaxBodyWords < 1 {
		return nil, fmt.Errorf("max body words must be positive, got %d", raw.MaxBodyWords)
	}
	if raw.MaxEvidenceSources < 0 {
		return nil, fmt.Errorf("max evidence sources must be non-negative, got %d", raw.MaxEvidenceSources)
	}

	cfg := &Cfg{
		Port:               raw.Port,
		DBPath:             raw.DBPath,
		LexiconPath:        raw.LexiconPath,
		ModelPath:          raw.ModelPath,
		SummarySentences:   raw.SummarySentences,
		MaxBodyWords:       raw.MaxBodyWords,
		MaxEvidenceSources: raw.MaxEvidenceSources,
		EvidenceFeedURL:    raw.EvidenceFeedURL,
		UserAgent:          raw.UserAgent,
		APIAccessKey:       raw.APIAccessKey,
		Timezone:           raw.Timezone,
		Debug:              raw.Debug,
		Version:            GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return err
		}
		time.Local = loc
	}
	return nil
}

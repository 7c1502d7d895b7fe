package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		Port:               "8080",
		DBPath:             "./test.db",
		LexiconPath:        "./lexicon.yml",
		ModelPath:          "./model.json",
		SummarySentences:   5,
		MaxBodyWords:       500,
		MaxEvidenceSources: 5,
		EvidenceFeedURL:    "https://example.com/factcheck.xml",
		UserAgent:          "Test Agent",
		APIAccessKey:       "test-key",
		Timezone:           "UTC",
		Debug:              true,
		Version:            "test-version",
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.DBPath != "./test.db" {
		t.Errorf("Expected DB path './test.db', got '%s'", cfg.DBPath)
	}
	if cfg.SummarySentences != 5 {
		t.Errorf("Expected 5 summary sentences, got %d", cfg.SummarySentences)
	}
	if cfg.MaxBodyWords != 500 {
		t.Errorf("Expected 500 max body words, got %d", cfg.MaxBodyWords)
	}
	if cfg.MaxEvidenceSources != 5 {
		t.Errorf("Expected 5 max evidence sources, got %d", cfg.MaxEvidenceSources)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.APIAccessKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.APIAccessKey)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}

func TestGet_PanicsWhenNotLoaded(t *testing.T) {
	saved := globalCfg
	globalCfg = nil
	defer func() {
		globalCfg = saved
		if r := recover(); r == nil {
			t.Error("Get should panic when configuration is not loaded")
		}
	}()
	Get()
}

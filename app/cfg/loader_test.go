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
		FeedsFile:    "./feeds.yml",
		OutputFile:   "./index.html",
		FetchTimeout: 60,
		EntryLimit:   50,
		UserAgent:    "Test Agent",
		Timezone:     "UTC",
		Debug:        true,
		Version:      "test-version",
	}

	if cfg.FeedsFile != "./feeds.yml" {
		t.Errorf("Expected feeds file './feeds.yml', got '%s'", cfg.FeedsFile)
	}
	if cfg.OutputFile != "./index.html" {
		t.Errorf("Expected output file './index.html', got '%s'", cfg.OutputFile)
	}
	if cfg.FetchTimeout != 60 {
		t.Errorf("Expected fetch timeout 60, got %d", cfg.FetchTimeout)
	}
	if cfg.EntryLimit != 50 {
		t.Errorf("Expected entry limit 50, got %d", cfg.EntryLimit)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be true")
	}
}

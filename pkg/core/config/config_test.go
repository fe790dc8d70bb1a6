package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Matcher.Default != "bm25" {
		t.Errorf("expected default matcher bm25, got %q", cfg.Matcher.Default)
	}
	if cfg.Matcher.Fuzzy.ThresholdFactor != 0.3 {
		t.Errorf("expected threshold factor 0.3, got %f", cfg.Matcher.Fuzzy.ThresholdFactor)
	}
	if cfg.Matcher.BM25.K1 != 1.2 || cfg.Matcher.BM25.B != 0.75 {
		t.Errorf("unexpected bm25 defaults: k1=%f b=%f", cfg.Matcher.BM25.K1, cfg.Matcher.BM25.B)
	}
	if cfg.Matcher.Context.MaxItems != 5 {
		t.Errorf("expected context window 5, got %d", cfg.Matcher.Context.MaxItems)
	}
	if cfg.Matcher.Context.Format != "qa_pairs" {
		t.Errorf("expected qa_pairs format, got %q", cfg.Matcher.Context.Format)
	}
	if cfg.Knowledge.Store.Type != "memory" {
		t.Errorf("expected memory store, got %q", cfg.Knowledge.Store.Type)
	}
	if cfg.Importer.MaxChunkSize != 1000 {
		t.Errorf("expected max chunk size 1000, got %d", cfg.Importer.MaxChunkSize)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("QAMATCH_MATCHER_DEFAULT", "fuzzy")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Matcher.Default != "fuzzy" {
		t.Errorf("expected env override, got %q", cfg.Matcher.Default)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"matcher": {"default": "exact", "bm25": {"k1": 1.5}},
		"knowledge": {"store": {"type": "file", "path": "corpus.json"}}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Matcher.Default != "exact" {
		t.Errorf("expected exact from file, got %q", cfg.Matcher.Default)
	}
	if cfg.Matcher.BM25.K1 != 1.5 {
		t.Errorf("expected k1 1.5 from file, got %f", cfg.Matcher.BM25.K1)
	}
	// 文件未设置的字段仍取默认值
	if cfg.Matcher.BM25.B != 0.75 {
		t.Errorf("expected default b, got %f", cfg.Matcher.BM25.B)
	}
	if cfg.Knowledge.Store.Type != "file" {
		t.Errorf("expected file store, got %q", cfg.Knowledge.Store.Type)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("expected missing file to be skipped, got %v", err)
	}
	if cfg.Matcher.Default != "bm25" {
		t.Errorf("expected defaults, got %q", cfg.Matcher.Default)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{"unknown matcher", func(c *Config) { c.Matcher.Default = "neural" }, ErrUnknownMatcher},
		{"negative max distance", func(c *Config) { c.Matcher.Fuzzy.MaxDistance = -1 }, ErrInvalidMaxDistance},
		{"zero threshold", func(c *Config) { c.Matcher.Fuzzy.ThresholdFactor = -0.1 }, ErrInvalidThresholdFactor},
		{"negative k1", func(c *Config) { c.Matcher.BM25.K1 = -1 }, ErrInvalidK1},
		{"b above one", func(c *Config) { c.Matcher.BM25.B = 1.2 }, ErrInvalidB},
		{"zero window", func(c *Config) { c.Matcher.Context.MaxItems = -1 }, ErrInvalidMaxItems},
		{"unknown format", func(c *Config) { c.Matcher.Context.Format = "xml" }, ErrUnknownFormat},
		{"unknown store", func(c *Config) { c.Knowledge.Store.Type = "redis" }, ErrUnknownStore},
		{"overlap too large", func(c *Config) { c.Importer.ChunkOverlap = 5000 }, ErrInvalidChunkOverlap},
		{"inverted chunk range", func(c *Config) { c.Importer.MaxChunkSize = 10 }, ErrInvalidChunkSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}

	if err := base().Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

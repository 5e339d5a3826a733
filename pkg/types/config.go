// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "course-recommender/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// StoreConfig holds settings for the document store.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "corpus/documents.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// IngestConfig holds settings for loading metadata dumps into the store.
type IngestConfig struct {
	HTTPConfig `yaml:",inline"`

	// BatchSize is the number of documents written per transaction
	// (default 500).
	BatchSize int `json:"batch_size" yaml:"batch_size"`
}

// RecommendConfig holds settings for the retrieval stage.
type RecommendConfig struct {
	// MaxResults is the default maximum number of ranked results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all stage configurations.
type Config struct {
	Store     StoreConfig     `json:"store" yaml:"store"`
	Ingest    IngestConfig    `json:"ingest" yaml:"ingest"`
	Recommend RecommendConfig `json:"recommend" yaml:"recommend"`
}

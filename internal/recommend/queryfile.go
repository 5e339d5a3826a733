// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// QueryFile is the on-disk representation of a search and its results. A
// search can be saved to a file and reloaded later without re-running the
// pipeline.
type QueryFile struct {
	Query   QueryParams  `yaml:"query"`
	Results []Result     `yaml:"results"`
	Summary QuerySummary `yaml:"summary"`
}

// QueryParams stores the query text and filters in a serializable form.
type QueryParams struct {
	Text      string `yaml:"text"`
	Year      string `yaml:"year,omitempty"`
	Submitter string `yaml:"submitter,omitempty"`
	Category  string `yaml:"category,omitempty"`
	Limit     int    `yaml:"limit,omitempty"`
}

// Filters converts the stored parameters back into a Filters value.
func (p QueryParams) Filters() Filters {
	return Filters{Year: p.Year, Submitter: p.Submitter, Category: p.Category}
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves query parameters and results to a YAML file.
func WriteQueryFile(path string, params QueryParams, results []Result) error {
	qf := QueryFile{
		Query:   params,
		Results: results,
		Summary: QuerySummary{
			Total:     len(results),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

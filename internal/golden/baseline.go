// Package golden captures and verifies the golden message/status baselines
// the fixture programs exist to reproduce. A baseline is the regression
// anchor for downstream similarity tooling: once captured, any drift in a
// fixture's output means the engine semantics changed.
package golden

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

const baselineVersion = 1

// Record is the observed output of one suite case.
type Record struct {
	Fixture string `json:"fixture"`
	Text    string `json:"text,omitempty"`
	Seed    int32  `json:"seed"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Baseline is the serialized golden output of a whole suite run.
type Baseline struct {
	Version         int       `json:"version"`
	Suite           string    `json:"suite"`
	CapturedAt      time.Time `json:"captured_at"`
	DurationSeconds float64   `json:"duration_seconds"`
	Records         []Record  `json:"records"`
}

// Load reads a baseline file written by a previous capture.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading baseline: %w", err)
	}
	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decoding baseline: %w", err)
	}
	if b.Version != baselineVersion {
		return nil, fmt.Errorf("unsupported baseline version %d", b.Version)
	}
	return &b, nil
}

// Write serializes the baseline as indented JSON. Records are kept in the
// stable order Capture produced so files diff cleanly.
func (b *Baseline) Write(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding baseline: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing baseline: %w", err)
	}
	return nil
}

// sortRecords orders records by fixture name, then seed, then text, so
// capture output is independent of scheduling.
func sortRecords(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Fixture != b.Fixture {
			return a.Fixture < b.Fixture
		}
		if a.Seed != b.Seed {
			return a.Seed < b.Seed
		}
		return a.Text < b.Text
	})
}

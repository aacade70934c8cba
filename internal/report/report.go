// Package report assembles validation output into an exportable document
// and serializes it to JSON, CSV, or cleaned FASTA.
//
// Build is pure assembly: no computation or validation logic lives here.
package report

import (
	"time"

	"github.com/noomesk/genome-cleaner/internal/stats"
	"github.com/noomesk/genome-cleaner/internal/validator"
)

// ToolVersion is embedded in report metadata.
const ToolVersion = "1.0.0"

// Report bundles the dataset summary with the full per-record table.
type Report struct {
	GeneratedAt time.Time          `json:"generated_at"`
	ToolVersion string             `json:"tool_version"`
	Summary     *stats.Summary     `json:"summary"`
	Records     []validator.Record `json:"records"`
}

// Build assembles a report from a summary and its records.
func Build(summary *stats.Summary, records []validator.Record) *Report {
	return &Report{
		GeneratedAt: time.Now().UTC(),
		ToolVersion: ToolVersion,
		Summary:     summary,
		Records:     records,
	}
}

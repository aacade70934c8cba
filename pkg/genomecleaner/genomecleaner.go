// Package genomecleaner provides a high-level API for cleaning and
// validating FASTA/FASTQ sequence data.
//
// The pipeline is a single synchronous pass: parse, validate, summarize,
// assemble. Each call owns its own state, so concurrent calls need no
// coordination.
//
// Example usage:
//
//	rep, err := genomecleaner.Process(content, genomecleaner.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d/%d valid\n", rep.Summary.ValidCount, rep.Summary.TotalCount)
package genomecleaner

import (
	"fmt"
	"io"
	"os"

	"github.com/noomesk/genome-cleaner/internal/parser"
	"github.com/noomesk/genome-cleaner/internal/report"
	"github.com/noomesk/genome-cleaner/internal/sequence"
	"github.com/noomesk/genome-cleaner/internal/stats"
	"github.com/noomesk/genome-cleaner/internal/validator"
)

// Re-export types for convenience
type (
	RawRecord        = parser.Record
	ValidatedRecord  = validator.Record
	Config           = validator.Config
	ComplexityConfig = validator.ComplexityConfig
	ErrorCode        = validator.ErrorCode
	Format           = parser.Format
	FormatError      = parser.FormatError
	Summary          = stats.Summary
	TopEntry         = stats.TopEntry
	Report           = report.Report
)

// Error codes
const (
	EmptySequence     = validator.EmptySequence
	InvalidCharacters = validator.InvalidCharacters
	BelowMinLength    = validator.BelowMinLength
	DuplicateHeader   = validator.DuplicateHeader
	LowComplexity     = validator.LowComplexity
)

// ErrorCodes lists every code in rule-evaluation order.
var ErrorCodes = validator.ErrorCodes

// Formats
const (
	FormatFASTA   = parser.FormatFASTA
	FormatFASTQ   = parser.FormatFASTQ
	FormatUnknown = parser.FormatUnknown
)

// DefaultConfig returns the standard processing settings.
func DefaultConfig() Config {
	return validator.DefaultConfig()
}

// Process runs the full pipeline over raw FASTA/FASTQ text and returns the
// assembled report. Parsing failures abort the whole call; per-record rule
// failures are recorded on the records and never abort.
func Process(text string, cfg Config) (*Report, error) {
	raw, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}

	records := validator.Validate(raw, cfg)
	summary := stats.Summarize(records)
	return report.Build(summary, records), nil
}

// ProcessFile reads a file and runs Process on its content.
func ProcessFile(path string, cfg Config) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return Process(string(data), cfg)
}

// DetectFormat inspects raw text content and reports its format.
func DetectFormat(text string) Format {
	return parser.DetectFormat(text)
}

// Sanitize normalizes a single sequence: uppercase, illegal characters
// replaced with 'N', length preserved.
func Sanitize(seq string) string {
	return sequence.Sanitize(seq)
}

// WriteCleaned re-emits records as FASTA text using their final sequences.
func WriteCleaned(w io.Writer, records []ValidatedRecord) error {
	return report.WriteFASTA(w, records)
}

// WriteCleanedFile writes cleaned FASTA output to a file.
func WriteCleanedFile(path string, records []ValidatedRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	return report.WriteFASTA(file, records)
}

// Version returns the tool version.
func Version() string {
	return report.ToolVersion
}

// Info returns a short description with the version.
func Info() string {
	return fmt.Sprintf("Genome Cleaner v%s - FASTA/FASTQ validation and cleaning", Version())
}

// Package validator evaluates raw sequence records against the cleaning
// rule set and produces validated records with ordered error codes.
//
// Rules run in a fixed order per record: empty sequence, invalid characters,
// minimum length, duplicate header, low complexity. The order of collected
// error codes mirrors that evaluation order. Rule failures are data, never
// control flow — every raw record yields exactly one validated record.
package validator

import (
	"strings"

	"github.com/noomesk/genome-cleaner/internal/parser"
	"github.com/noomesk/genome-cleaner/internal/sequence"
)

// Config controls one validation run.
type Config struct {
	// Sanitize uppercases sequences and replaces illegal characters with
	// 'N' before length and complexity scoring. It never clears the
	// invalid-characters error: sanitization repairs the data but the
	// record keeps the historical fact that the input was invalid.
	Sanitize bool
	// MinLength is the minimum acceptable final-sequence length.
	MinLength int
	// Complexity holds the low-complexity heuristic thresholds.
	Complexity ComplexityConfig
}

// DefaultConfig returns the standard settings: no sanitization, minimum
// length 20.
func DefaultConfig() Config {
	return Config{
		Sanitize:   false,
		MinLength:  20,
		Complexity: DefaultComplexity(),
	}
}

// Record is the validated form of a raw record. FinalSequence equals
// OriginalSequence unless sanitization ran. Length and GCContent are
// computed over FinalSequence. IsValid holds exactly when Errors is empty.
type Record struct {
	Header           string      `json:"header"`
	OriginalSequence string      `json:"original_sequence"`
	FinalSequence    string      `json:"final_sequence"`
	IsValid          bool        `json:"is_valid"`
	Errors           []ErrorCode `json:"errors"`
	Length           int         `json:"length"`
	GCContent        float64     `json:"gc_content"`
	InvalidCharCount int         `json:"invalid_char_count"`
	Index            int         `json:"index"`
}

// Sanitized reports whether sanitization changed the sequence.
func (r *Record) Sanitized() bool {
	return r.FinalSequence != r.OriginalSequence
}

// HasError reports whether the record carries the given code.
func (r *Record) HasError(code ErrorCode) bool {
	for _, c := range r.Errors {
		if c == code {
			return true
		}
	}
	return false
}

// Validate evaluates every raw record in file order and returns one
// validated record per input, order-preserving. It never fails.
//
// Duplicate detection uses a set of headers accumulated across this single
// call; the first occurrence of a header is never flagged. The set is local
// to the call, so concurrent runs do not interfere.
func Validate(records []parser.Record, cfg Config) []Record {
	results := make([]Record, 0, len(records))
	seen := make(map[string]bool, len(records))

	for i, raw := range records {
		rec := validateOne(raw, cfg, seen)
		rec.Index = i
		seen[raw.Header] = true
		results = append(results, rec)
	}

	return results
}

func validateOne(raw parser.Record, cfg Config, seen map[string]bool) Record {
	original := strings.TrimSpace(raw.Sequence)

	rec := Record{
		Header:           raw.Header,
		OriginalSequence: original,
		FinalSequence:    original,
		Errors:           []ErrorCode{},
	}

	if original == "" {
		// An empty sequence short-circuits the per-base rules; only the
		// duplicate-header check still applies, since it concerns the
		// header rather than the sequence.
		rec.Errors = append(rec.Errors, EmptySequence)
		if seen[raw.Header] {
			rec.Errors = append(rec.Errors, DuplicateHeader)
		}
		rec.GCContent = 0.0
		rec.IsValid = false
		return rec
	}

	// Invalid characters are counted against the pre-sanitization string
	// so sanitization can never mask them.
	rec.InvalidCharCount = sequence.CountInvalid(original)
	if rec.InvalidCharCount > 0 {
		rec.Errors = append(rec.Errors, InvalidCharacters)
	}

	if cfg.Sanitize {
		rec.FinalSequence = sequence.Sanitize(original)
	}
	rec.Length = len(rec.FinalSequence)
	rec.GCContent = sequence.GCContent(rec.FinalSequence)

	if rec.Length < cfg.MinLength {
		rec.Errors = append(rec.Errors, BelowMinLength)
	}

	if seen[raw.Header] {
		rec.Errors = append(rec.Errors, DuplicateHeader)
	}

	if IsLowComplexity(strings.ToUpper(rec.FinalSequence), cfg.Complexity) {
		rec.Errors = append(rec.Errors, LowComplexity)
	}

	rec.IsValid = len(rec.Errors) == 0
	return rec
}

// Package parser reads raw FASTA/FASTQ text into ordered sequence records.
//
// The format is detected from the content, not from a file extension: the
// first non-blank line decides. Parsing is deliberately lenient — malformed
// per-record data is kept and left to the validator, and a truncated trailing
// FASTQ block is dropped rather than reported.
package parser

import (
	"bufio"
	"fmt"
	"strings"
)

// Format identifies the detected input format.
type Format int

const (
	// FormatUnknown means the content matched neither format.
	FormatUnknown Format = iota
	// FormatFASTA marks '>'-headed records.
	FormatFASTA
	// FormatFASTQ marks '@'-headed 4-line records.
	FormatFASTQ
)

func (f Format) String() string {
	switch f {
	case FormatFASTA:
		return "FASTA"
	case FormatFASTQ:
		return "FASTQ"
	default:
		return "Unknown"
	}
}

// Record is a single raw sequence entry in file order. Quality is only set
// for FASTQ input; it is stored verbatim and never interpreted by the
// pipeline.
type Record struct {
	Header   string
	Sequence string
	Quality  string
}

// FormatError is returned when the input has no recognizable FASTA or FASTQ
// start marker.
type FormatError struct {
	FirstLine string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unrecognized format: first line must start with '>' or '@', got %q", e.FirstLine)
}

// DetectFormat inspects the first non-blank line of text.
func DetectFormat(text string) Format {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case '>':
			return FormatFASTA
		case '@':
			return FormatFASTQ
		default:
			return FormatUnknown
		}
	}
	return FormatUnknown
}

// Parse reads raw FASTA or FASTQ text and returns its records in file order.
//
// Empty or all-blank input yields an empty slice, not an error. Input whose
// first non-blank line starts with neither '>' nor '@' fails with a
// *FormatError.
func Parse(text string) ([]Record, error) {
	lines := splitLines(text)

	first := firstNonBlank(lines)
	if first == "" {
		return []Record{}, nil
	}

	switch first[0] {
	case '>':
		return parseFASTA(lines), nil
	case '@':
		return parseFASTQ(lines), nil
	default:
		return nil, &FormatError{FirstLine: first}
	}
}

func splitLines(text string) []string {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	return lines
}

func firstNonBlank(lines []string) string {
	for _, line := range lines {
		if line != "" {
			return line
		}
	}
	return ""
}

// parseFASTA groups '>'-headed records. Sequence lines between headers are
// concatenated; blank lines are skipped. A header with no sequence lines
// still produces a record — the validator is responsible for flagging it.
func parseFASTA(lines []string) []Record {
	records := make([]Record, 0)

	var current *Record
	for _, line := range lines {
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if current != nil {
				records = append(records, *current)
			}
			current = &Record{Header: strings.TrimSpace(line[1:])}
		} else if current != nil {
			current.Sequence += line
		}
	}
	if current != nil {
		records = append(records, *current)
	}

	return records
}

// parseFASTQ walks fixed 4-line units: header, sequence, separator, quality.
// Blank lines between units are skipped. A trailing partial unit is dropped.
func parseFASTQ(lines []string) []Record {
	records := make([]Record, 0)

	// Strip blank lines so unit boundaries stay aligned.
	content := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			content = append(content, line)
		}
	}

	for i := 0; i+3 < len(content); i += 4 {
		header := content[i]
		if !strings.HasPrefix(header, "@") {
			continue
		}
		separator := content[i+2]
		if !strings.HasPrefix(separator, "+") {
			continue
		}
		records = append(records, Record{
			Header:   strings.TrimSpace(header[1:]),
			Sequence: content[i+1],
			Quality:  content[i+3],
		})
	}

	return records
}

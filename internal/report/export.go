package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/noomesk/genome-cleaner/internal/validator"
)

// fastaLineWidth is the wrap column for re-emitted FASTA sequences.
const fastaLineWidth = 80

// WriteJSON writes the report as an indented JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// WriteCSV writes the report as a CSV document: a summary block, the
// top-longest ranking, then one row per record.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Genome Cleaner Report"},
		{"Generated", r.GeneratedAt.Format("2006-01-02T15:04:05Z07:00")},
		{"Tool Version", r.ToolVersion},
		{},
		{"SUMMARY"},
		{"Total Sequences", strconv.Itoa(r.Summary.TotalCount)},
		{"Valid Sequences", strconv.Itoa(r.Summary.ValidCount)},
		{"Invalid Sequences", strconv.Itoa(r.Summary.InvalidCount)},
		{"Sanitized Sequences", strconv.Itoa(r.Summary.SanitizedCount)},
		{"Duplicate Headers", strconv.Itoa(r.Summary.DuplicateHeaders)},
		{"Total Bases", strconv.Itoa(r.Summary.TotalBases)},
		{"Min Length", strconv.Itoa(r.Summary.MinLength)},
		{"Max Length", strconv.Itoa(r.Summary.MaxLength)},
		{"Avg Length", formatFloat(r.Summary.AvgLength)},
		{"Median Length", strconv.Itoa(r.Summary.MedianLength)},
		{"N50", strconv.Itoa(r.Summary.N50)},
		{"Avg GC Content", formatFloat(r.Summary.AvgGCContent)},
		{},
		{"ERROR HISTOGRAM"},
	}

	for _, code := range validator.ErrorCodes {
		if n, ok := r.Summary.ErrorHistogram[code]; ok {
			rows = append(rows, []string{code.String(), strconv.Itoa(n)})
		}
	}

	rows = append(rows, []string{}, []string{"TOP LONGEST"},
		[]string{"Rank", "Header", "Length", "GC Content"})
	for _, entry := range r.Summary.TopLongest {
		rows = append(rows, []string{
			strconv.Itoa(entry.Rank),
			entry.Header,
			strconv.Itoa(entry.Length),
			formatFloat(entry.GCContent),
		})
	}

	rows = append(rows, []string{}, []string{"RECORDS"},
		[]string{"Index", "Header", "Length", "GC Content", "Invalid Chars", "Valid", "Errors"})
	for _, rec := range r.Records {
		rows = append(rows, []string{
			strconv.Itoa(rec.Index),
			rec.Header,
			strconv.Itoa(rec.Length),
			formatFloat(rec.GCContent),
			strconv.Itoa(rec.InvalidCharCount),
			strconv.FormatBool(rec.IsValid),
			joinErrors(rec.Errors),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv report: %w", err)
	}
	return nil
}

// WriteFASTA re-emits records as FASTA text using the final (cleaned)
// sequence under the original header, wrapped at 80 columns. Records with
// empty sequences are skipped.
func WriteFASTA(w io.Writer, records []validator.Record) error {
	for _, rec := range records {
		if rec.FinalSequence == "" {
			continue
		}

		header := rec.Header
		if header == "" {
			header = "sequence"
		}

		if _, err := fmt.Fprintf(w, ">%s\n", header); err != nil {
			return fmt.Errorf("writing fasta: %w", err)
		}

		seq := rec.FinalSequence
		for i := 0; i < len(seq); i += fastaLineWidth {
			end := i + fastaLineWidth
			if end > len(seq) {
				end = len(seq)
			}
			if _, err := fmt.Fprintf(w, "%s\n", seq[i:end]); err != nil {
				return fmt.Errorf("writing fasta: %w", err)
			}
		}
	}
	return nil
}

func joinErrors(codes []validator.ErrorCode) string {
	names := make([]string, 0, len(codes))
	for _, c := range codes {
		names = append(names, c.String())
	}
	return strings.Join(names, ";")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// Package stats computes dataset-level metrics over validated records.
package stats

import (
	"sort"

	"github.com/noomesk/genome-cleaner/internal/validator"
)

// TopLongestSize is the number of entries kept in the top-longest ranking.
const TopLongestSize = 10

// TopEntry is one row of the top-longest ranking.
type TopEntry struct {
	Rank      int     `json:"rank"`
	Header    string  `json:"header"`
	Length    int     `json:"length"`
	GCContent float64 `json:"gc_content"`
	Index     int     `json:"index"`
}

// Summary aggregates one validation run. Averages are computed over all
// records, valid and invalid alike; AvgGCContent is the unweighted mean of
// per-record GC content.
type Summary struct {
	TotalCount       int                         `json:"total_count"`
	ValidCount       int                         `json:"valid_count"`
	InvalidCount     int                         `json:"invalid_count"`
	SanitizedCount   int                         `json:"sanitized_count"`
	DuplicateHeaders int                         `json:"duplicate_headers"`
	TotalBases       int                         `json:"total_bases"`
	AvgGCContent     float64                     `json:"avg_gc_content"`
	MinLength        int                         `json:"min_length"`
	MaxLength        int                         `json:"max_length"`
	AvgLength        float64                     `json:"avg_length"`
	MedianLength     int                         `json:"median_length"`
	N50              int                         `json:"n50"`
	ErrorHistogram   map[validator.ErrorCode]int `json:"error_histogram"`
	TopLongest       []TopEntry                  `json:"top_longest"`
	MostCommonError  string                      `json:"most_common_error,omitempty"`
}

// ValidRatio returns the proportion of valid records.
func (s *Summary) ValidRatio() float64 {
	if s.TotalCount == 0 {
		return 0.0
	}
	return float64(s.ValidCount) / float64(s.TotalCount)
}

// Summarize computes the dataset summary for a set of validated records.
// Zero records yield a zero-valued summary rather than an error.
func Summarize(records []validator.Record) *Summary {
	summary := &Summary{
		ErrorHistogram: make(map[validator.ErrorCode]int),
		TopLongest:     []TopEntry{},
	}

	if len(records) == 0 {
		return summary
	}

	summary.TotalCount = len(records)

	lengths := make([]int, 0, len(records))
	gcSum := 0.0

	for _, rec := range records {
		if rec.IsValid {
			summary.ValidCount++
		}
		if rec.Sanitized() {
			summary.SanitizedCount++
		}
		if rec.HasError(validator.DuplicateHeader) {
			summary.DuplicateHeaders++
		}
		for _, code := range rec.Errors {
			summary.ErrorHistogram[code]++
		}

		lengths = append(lengths, rec.Length)
		summary.TotalBases += rec.Length
		gcSum += rec.GCContent
	}

	summary.InvalidCount = summary.TotalCount - summary.ValidCount
	summary.AvgGCContent = gcSum / float64(summary.TotalCount)
	summary.AvgLength = float64(summary.TotalBases) / float64(summary.TotalCount)
	summary.MinLength, summary.MaxLength = minMax(lengths)
	summary.MedianLength = median(lengths)
	summary.N50 = n50(lengths, summary.TotalBases)
	summary.TopLongest = topLongest(records)
	summary.MostCommonError = mostCommonError(summary.ErrorHistogram)

	return summary
}

func minMax(lengths []int) (int, int) {
	min, max := lengths[0], lengths[0]
	for _, l := range lengths {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	return min, max
}

func median(lengths []int) int {
	sorted := make([]int, len(lengths))
	copy(sorted, lengths)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// n50 is the length at which half of all bases are contained in sequences of
// that length or longer.
func n50(lengths []int, totalBases int) int {
	sorted := make([]int, len(lengths))
	copy(sorted, lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	half := totalBases / 2
	running := 0
	for _, l := range sorted {
		running += l
		if running >= half {
			return l
		}
	}
	return sorted[len(sorted)-1]
}

// topLongest ranks up to TopLongestSize records by descending length. Ties
// keep file order: the earlier record wins and appears first.
func topLongest(records []validator.Record) []TopEntry {
	ranked := make([]int, len(records))
	for i := range records {
		ranked[i] = i
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return records[ranked[a]].Length > records[ranked[b]].Length
	})

	limit := TopLongestSize
	if len(ranked) < limit {
		limit = len(ranked)
	}

	top := make([]TopEntry, 0, limit)
	for rank, idx := range ranked[:limit] {
		rec := records[idx]
		top = append(top, TopEntry{
			Rank:      rank + 1,
			Header:    rec.Header,
			Length:    rec.Length,
			GCContent: rec.GCContent,
			Index:     rec.Index,
		})
	}
	return top
}

func mostCommonError(histogram map[validator.ErrorCode]int) string {
	best := ""
	bestCount := 0
	// Walk codes in rule order so equal counts resolve deterministically.
	for _, code := range validator.ErrorCodes {
		if n := histogram[code]; n > bestCount {
			best = code.String()
			bestCount = n
		}
	}
	return best
}

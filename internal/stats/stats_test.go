package stats

import (
	"testing"

	"github.com/noomesk/genome-cleaner/internal/parser"
	"github.com/noomesk/genome-cleaner/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validated(t *testing.T, input string, cfg validator.Config) []validator.Record {
	t.Helper()
	raw, err := parser.Parse(input)
	require.NoError(t, err)
	return validator.Validate(raw, cfg)
}

func TestSummarizeBasicCounts(t *testing.T) {
	cfg := validator.DefaultConfig()
	cfg.MinLength = 3

	records := validated(t, ">a\nACGT\n>b\nACGTN\n", cfg)
	summary := Summarize(records)

	assert.Equal(t, 2, summary.TotalCount)
	assert.Equal(t, 2, summary.ValidCount)
	assert.Equal(t, 0, summary.InvalidCount)
	assert.Equal(t, 9, summary.TotalBases)
	assert.Equal(t, 4, summary.MinLength)
	assert.Equal(t, 5, summary.MaxLength)
	assert.InDelta(t, 4.5, summary.AvgLength, 0.0001)
	// mean(0.5, 0.4)
	assert.InDelta(t, 0.45, summary.AvgGCContent, 0.0001)
	assert.InDelta(t, 1.0, summary.ValidRatio(), 0.0001)
}

func TestSummarizeErrorHistogram(t *testing.T) {
	cfg := validator.DefaultConfig()
	cfg.MinLength = 6

	// b: below min length; a (second): duplicate + below min length.
	records := validated(t, ">a\nACGTAGGTCA\n>b\nACGT\n>a\nTTA\n", cfg)
	summary := Summarize(records)

	assert.Equal(t, 1, summary.ValidCount)
	assert.Equal(t, 2, summary.InvalidCount)
	assert.Equal(t, 1, summary.DuplicateHeaders)
	assert.Equal(t, map[validator.ErrorCode]int{
		validator.BelowMinLength:  2,
		validator.DuplicateHeader: 1,
	}, summary.ErrorHistogram)
	assert.Equal(t, "below_min_length", summary.MostCommonError)
}

func TestSummarizeMultiErrorRecordCountsInEachBucket(t *testing.T) {
	cfg := validator.DefaultConfig()
	cfg.MinLength = 20

	records := validated(t, ">a\nACXT\n", cfg)
	summary := Summarize(records)

	assert.Equal(t, map[validator.ErrorCode]int{
		validator.InvalidCharacters: 1,
		validator.BelowMinLength:    1,
	}, summary.ErrorHistogram)
}

func TestSummarizeSanitizedCount(t *testing.T) {
	cfg := validator.DefaultConfig()
	cfg.MinLength = 3
	cfg.Sanitize = true

	records := validated(t, ">a\nACXT\n>b\nACGT\n", cfg)
	summary := Summarize(records)

	// Only the record whose sequence actually changed counts.
	assert.Equal(t, 1, summary.SanitizedCount)
}

func TestSummarizeMedianAndN50(t *testing.T) {
	cfg := validator.DefaultConfig()
	cfg.MinLength = 1

	input := ">s1\n" + bases(100) + "\n" +
		">s2\n" + bases(80) + "\n" +
		">s3\n" + bases(60) + "\n" +
		">s4\n" + bases(40) + "\n" +
		">s5\n" + bases(20) + "\n"
	summary := Summarize(validated(t, input, cfg))

	assert.Equal(t, 60, summary.MedianLength)
	// Total 300, half 150, 100+80 >= 150.
	assert.Equal(t, 80, summary.N50)
}

func TestTopLongestRanking(t *testing.T) {
	cfg := validator.DefaultConfig()
	cfg.MinLength = 1

	input := ">short\nAC\n>long\n" + bases(30) + "\n>mid\n" + bases(12) + "\n"
	summary := Summarize(validated(t, input, cfg))

	require.Len(t, summary.TopLongest, 3)
	assert.Equal(t, "long", summary.TopLongest[0].Header)
	assert.Equal(t, 1, summary.TopLongest[0].Rank)
	assert.Equal(t, "mid", summary.TopLongest[1].Header)
	assert.Equal(t, "short", summary.TopLongest[2].Header)
	assert.Equal(t, 30, summary.TopLongest[0].Length)
}

func TestTopLongestTiesKeepFileOrder(t *testing.T) {
	cfg := validator.DefaultConfig()
	cfg.MinLength = 1

	records := validated(t, ">first\n"+bases(12)+"\n>second\n"+bases(12)+"\n", cfg)
	summary := Summarize(records)

	require.Len(t, summary.TopLongest, 2)
	assert.Equal(t, "first", summary.TopLongest[0].Header)
	assert.Equal(t, "second", summary.TopLongest[1].Header)
}

func TestTopLongestCapsAtTen(t *testing.T) {
	cfg := validator.DefaultConfig()
	cfg.MinLength = 1

	input := ""
	for i := 0; i < 15; i++ {
		input += ">s" + string(rune('a'+i)) + "\n" + bases(10+i) + "\n"
	}
	summary := Summarize(validated(t, input, cfg))

	require.Len(t, summary.TopLongest, TopLongestSize)
	assert.Equal(t, 24, summary.TopLongest[0].Length)
	for i := 1; i < len(summary.TopLongest); i++ {
		assert.GreaterOrEqual(t,
			summary.TopLongest[i-1].Length,
			summary.TopLongest[i].Length)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize([]validator.Record{})

	assert.Equal(t, 0, summary.TotalCount)
	assert.Equal(t, 0.0, summary.AvgGCContent)
	assert.Equal(t, 0.0, summary.ValidRatio())
	assert.Empty(t, summary.ErrorHistogram)
	assert.Empty(t, summary.TopLongest)
	assert.Empty(t, summary.MostCommonError)
}

// bases builds a deterministic non-repetitive sequence of the given length.
func bases(n int) string {
	alphabet := []byte{'A', 'C', 'G', 'T', 'T', 'G', 'C', 'A', 'G', 'A', 'T', 'C'}
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[i%len(alphabet)]
	}
	return string(out)
}

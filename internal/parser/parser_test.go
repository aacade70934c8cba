package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatFASTA, DetectFormat(">seq1\nACGT\n"))
	assert.Equal(t, FormatFASTQ, DetectFormat("@read1\nACGT\n+\nIIII\n"))
	assert.Equal(t, FormatFASTA, DetectFormat("\n\n  \n>seq1\nACGT\n"))
	assert.Equal(t, FormatUnknown, DetectFormat("ACGT\n>seq1\n"))
	assert.Equal(t, FormatUnknown, DetectFormat(""))
	assert.Equal(t, FormatUnknown, DetectFormat("   \n\n"))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "FASTA", FormatFASTA.String())
	assert.Equal(t, "FASTQ", FormatFASTQ.String())
	assert.Equal(t, "Unknown", FormatUnknown.String())
}

func TestParseFASTA(t *testing.T) {
	records, err := Parse(">seq1 first\nACGT\nACGT\n>seq2\nTTTT\n")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "seq1 first", records[0].Header)
	assert.Equal(t, "ACGTACGT", records[0].Sequence)
	assert.Empty(t, records[0].Quality)

	assert.Equal(t, "seq2", records[1].Header)
	assert.Equal(t, "TTTT", records[1].Sequence)
}

func TestParseFASTAPreservesOrder(t *testing.T) {
	records, err := Parse(">a\nAA\n>b\nCC\n>c\nGG\n")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "a", records[0].Header)
	assert.Equal(t, "b", records[1].Header)
	assert.Equal(t, "c", records[2].Header)
}

func TestParseFASTASkipsBlankLines(t *testing.T) {
	records, err := Parse(">seq1\n\nACGT\n\n\n>seq2\n\nTT\nTT\n")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ACGT", records[0].Sequence)
	assert.Equal(t, "TTTT", records[1].Sequence)
}

func TestParseFASTATrimsWhitespace(t *testing.T) {
	records, err := Parse(">  seq1  \n  ACGT  \n")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "seq1", records[0].Header)
	assert.Equal(t, "ACGT", records[0].Sequence)
}

func TestParseFASTAKeepsEmptySequenceRecord(t *testing.T) {
	// A lone header still yields a record; flagging the empty sequence is
	// the validator's job.
	records, err := Parse(">a\n")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].Header)
	assert.Empty(t, records[0].Sequence)
}

func TestParseFASTQ(t *testing.T) {
	records, err := Parse("@read1\nACGT\n+\nIIII\n@read2\nTTAA\n+read2\nJJJJ\n")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "read1", records[0].Header)
	assert.Equal(t, "ACGT", records[0].Sequence)
	assert.Equal(t, "IIII", records[0].Quality)

	assert.Equal(t, "read2", records[1].Header)
	assert.Equal(t, "TTAA", records[1].Sequence)
	assert.Equal(t, "JJJJ", records[1].Quality)
}

func TestParseFASTQDropsTrailingPartialBlock(t *testing.T) {
	// 5 lines: one complete record plus one leftover header.
	records, err := Parse("@read1\nACGT\n+\nIIII\n@read2\n")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "read1", records[0].Header)
}

func TestParseFASTQAcceptsQualityLengthMismatch(t *testing.T) {
	// Quality is informational only; a short quality line is stored as-is.
	records, err := Parse("@read1\nACGTACGT\n+\nII\n")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ACGTACGT", records[0].Sequence)
	assert.Equal(t, "II", records[0].Quality)
}

func TestParseEmptyInput(t *testing.T) {
	records, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = Parse("\n  \n\n")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseFormatError(t *testing.T) {
	_, err := Parse("ACGTACGT\nACGT\n")
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "ACGTACGT", formatErr.FirstLine)
	assert.Contains(t, formatErr.Error(), "'>' or '@'")
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowComplexityDominantBase(t *testing.T) {
	cfg := DefaultComplexity()

	// 80% of 10 bases.
	assert.True(t, IsLowComplexity("AAAAAAAACG", cfg))
	// 70% of 10 bases.
	assert.False(t, IsLowComplexity("AAAAAAACGT", cfg))
	// Dominated but shorter than the length gate.
	assert.False(t, IsLowComplexity("AAAAAAACG", cfg))
}

func TestIsLowComplexityRepeatingUnit(t *testing.T) {
	cfg := DefaultComplexity()

	assert.True(t, IsLowComplexity("ATATATATATATATATATAT", cfg))
	assert.True(t, IsLowComplexity("CAGCAGCAGCAGCAGCAGCAG", cfg))
	// One interruption in 20 bases keeps coverage at 95%.
	assert.True(t, IsLowComplexity("ATATATATATCTATATATAT", cfg))
	// Unit of length 4 is beyond the window.
	assert.False(t, IsLowComplexity("ACGTACGTACGTACGTACGT", cfg))
}

func TestIsLowComplexityEmptyAndShort(t *testing.T) {
	cfg := DefaultComplexity()

	assert.False(t, IsLowComplexity("", cfg))
	assert.False(t, IsLowComplexity("A", cfg))
	assert.False(t, IsLowComplexity("AC", cfg))
}

func TestIsLowComplexityCustomThresholds(t *testing.T) {
	cfg := ComplexityConfig{
		MinDominantRatio:  0.5,
		MinDominantLength: 4,
		MaxUnit:           1,
		MinUnitCoverage:   1.0,
	}

	assert.True(t, IsLowComplexity("AATG", cfg))
	assert.False(t, IsLowComplexity("ACTG", cfg))
}

func TestRepeatCoverage(t *testing.T) {
	assert.InDelta(t, 1.0, repeatCoverage("ATATAT", 2), 0.0001)
	assert.InDelta(t, 1.0, repeatCoverage("AAAA", 1), 0.0001)
	assert.InDelta(t, 0.25, repeatCoverage("ATTT", 1), 0.0001)
	assert.Equal(t, 0.0, repeatCoverage("AT", 2))
	assert.Equal(t, 0.0, repeatCoverage("AT", 0))
}

func TestDominantRatio(t *testing.T) {
	assert.InDelta(t, 1.0, dominantRatio("AAAA"), 0.0001)
	assert.InDelta(t, 0.25, dominantRatio("ACGT"), 0.0001)
	assert.InDelta(t, 0.5, dominantRatio("AATG"), 0.0001)
}

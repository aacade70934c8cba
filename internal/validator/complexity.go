package validator

// ComplexityConfig holds the thresholds for the low-complexity heuristic.
// The defaults flag sequences dominated by a single base (>= 80% of a
// sequence at least 10 bases long) or covered by a short repeating unit
// (a 1-3 base unit spanning >= 90% of the sequence).
type ComplexityConfig struct {
	MinDominantRatio  float64
	MinDominantLength int
	MaxUnit           int
	MinUnitCoverage   float64
}

// DefaultComplexity returns the standard thresholds.
func DefaultComplexity() ComplexityConfig {
	return ComplexityConfig{
		MinDominantRatio:  0.80,
		MinDominantLength: 10,
		MaxUnit:           3,
		MinUnitCoverage:   0.90,
	}
}

// IsLowComplexity reports whether seq trips either heuristic. The sequence
// is expected to be uppercase already; callers pass the final (scored)
// sequence.
func IsLowComplexity(seq string, cfg ComplexityConfig) bool {
	if len(seq) == 0 {
		return false
	}

	if len(seq) >= cfg.MinDominantLength && dominantRatio(seq) >= cfg.MinDominantRatio {
		return true
	}

	for unit := 1; unit <= cfg.MaxUnit && unit < len(seq); unit++ {
		if repeatCoverage(seq, unit) >= cfg.MinUnitCoverage {
			return true
		}
	}

	return false
}

// dominantRatio returns the frequency of the most common character.
func dominantRatio(seq string) float64 {
	counts := make(map[byte]int)
	for i := 0; i < len(seq); i++ {
		counts[seq[i]]++
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	return float64(max) / float64(len(seq))
}

// repeatCoverage returns the fraction of seq covered by tiling its leading
// unit of the given length across the whole sequence.
func repeatCoverage(seq string, unit int) float64 {
	if unit <= 0 || unit >= len(seq) {
		return 0.0
	}

	pattern := seq[:unit]
	matched := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == pattern[i%unit] {
			matched++
		}
	}

	return float64(matched) / float64(len(seq))
}

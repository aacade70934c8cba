// Package sequence provides the DNA alphabet, sanitization, and
// base-composition helpers shared by the cleaning pipeline.
//
// The allowed alphabet is {A, C, G, T, N}, case-insensitive. Sanitization
// normalizes a raw sequence into that alphabet without changing its length,
// so positional correspondence with the original string is preserved.
package sequence

import "strings"

// ValidBases is the set of accepted nucleotide characters (uppercase).
var ValidBases = map[rune]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}

// IsValidBase reports whether c is an accepted uppercase base.
func IsValidBase(c rune) bool {
	return ValidBases[c]
}

// Sanitize normalizes a sequence: every character is uppercased and any
// character outside the accepted alphabet is replaced with 'N'. The result
// has exactly the same length as the input, and the function is idempotent:
// Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(s string) string {
	upper := strings.ToUpper(s)

	var b strings.Builder
	b.Grow(len(upper))
	for _, c := range upper {
		if ValidBases[c] {
			b.WriteRune(c)
		} else {
			b.WriteRune('N')
		}
	}
	return b.String()
}

// CountInvalid returns the number of characters in s that fall outside the
// accepted alphabet, after case folding. It never modifies s.
func CountInvalid(s string) int {
	count := 0
	for _, c := range strings.ToUpper(s) {
		if !ValidBases[c] {
			count++
		}
	}
	return count
}

// GCContent calculates the proportion of G and C bases in s, case-insensitive,
// over the full string length. An empty sequence has GC content 0 by
// convention.
func GCContent(s string) float64 {
	if len(s) == 0 {
		return 0.0
	}

	gcCount := 0
	for _, c := range strings.ToUpper(s) {
		if c == 'G' || c == 'C' {
			gcCount++
		}
	}

	return float64(gcCount) / float64(len(s))
}

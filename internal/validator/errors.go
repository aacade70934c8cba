package validator

import "fmt"

// ErrorCode identifies a validation rule failure. The set is closed so that
// histograms and exporters can match exhaustively.
type ErrorCode int

const (
	// EmptySequence marks a record whose sequence is empty.
	EmptySequence ErrorCode = iota
	// InvalidCharacters marks characters outside the {A,C,G,T,N} alphabet.
	InvalidCharacters
	// BelowMinLength marks a sequence shorter than the configured minimum.
	BelowMinLength
	// DuplicateHeader marks a header seen earlier in the same run.
	DuplicateHeader
	// LowComplexity marks a sequence dominated by one base or a short repeat.
	LowComplexity
)

// ErrorCodes lists every code in rule-evaluation order.
var ErrorCodes = []ErrorCode{
	EmptySequence,
	InvalidCharacters,
	BelowMinLength,
	DuplicateHeader,
	LowComplexity,
}

func (c ErrorCode) String() string {
	switch c {
	case EmptySequence:
		return "empty_sequence"
	case InvalidCharacters:
		return "invalid_characters"
	case BelowMinLength:
		return "below_min_length"
	case DuplicateHeader:
		return "duplicate_header"
	case LowComplexity:
		return "low_complexity"
	default:
		return fmt.Sprintf("error_code(%d)", int(c))
	}
}

// MarshalText serializes the code as its snake_case name, which also makes
// map[ErrorCode]int usable as a JSON object.
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a snake_case code name.
func (c *ErrorCode) UnmarshalText(text []byte) error {
	for _, code := range ErrorCodes {
		if code.String() == string(text) {
			*c = code
			return nil
		}
	}
	return fmt.Errorf("unknown error code %q", string(text))
}

package segment

import "fmt"

// Kind selects the segmentation rule set an engine applies.
type Kind int

// Supported boundary kinds.
const (
	// Character splits into extended grapheme clusters (UAX #29).
	Character Kind = iota

	// LineBreak splits at line-break opportunities (UAX #14).
	LineBreak

	// Sentence splits at sentence boundaries (UAX #29).
	Sentence

	// Word splits at word boundaries (UAX #29).
	Word
)

var kindNames = map[string]Kind{
	"character":  Character,
	"line-break": LineBreak,
	"sentence":   Sentence,
	"word":       Word,
}

// String returns the kind's external name.
func (k Kind) String() string {
	switch k {
	case Character:
		return "character"
	case LineBreak:
		return "line-break"
	case Sentence:
		return "sentence"
	case Word:
		return "word"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a boundary-kind label. Unknown labels fail with
// ErrInvalidKind, naming the offending parameter.
func ParseKind(s string) (Kind, error) {
	k, ok := kindNames[s]
	if !ok {
		return 0, fmt.Errorf("boundary: %w %q", ErrInvalidKind, s)
	}
	return k, nil
}

package textspan

import (
	"github.com/dshills/textspan/internal/recycle"
	"github.com/dshills/textspan/internal/segment"
	"github.com/dshills/textspan/internal/stats"
	"github.com/dshills/textspan/internal/text"
)

// Re-export commonly used types for convenience.
type (
	// Element is one input string or the missing value.
	Element = text.Element

	// Match is one located boundary segment in 1-based code-point
	// coordinates.
	Match = segment.Match

	// Matches is the result for one output position.
	Matches = segment.Matches

	// Kind selects a boundary rule set.
	Kind = segment.Kind

	// GeneralStats holds aggregate plain-text counts.
	GeneralStats = stats.GeneralStats

	// LatexStats holds aggregate LaTeX word-count statistics.
	LatexStats = stats.LatexStats
)

// Boundary kinds accepted by LocateBoundaries.
const (
	Character = segment.Character
	LineBreak = segment.LineBreak
	Sentence  = segment.Sentence
	Word      = segment.Word
)

// Errors surfaced by the operations below.
var (
	ErrInvalidKind         = segment.ErrInvalidKind
	ErrUnsupportedLocale   = segment.ErrUnsupportedLocale
	ErrIncompatibleLengths = recycle.ErrIncompatibleLengths
	ErrEmbeddedLineFeed    = stats.ErrEmbeddedLineFeed
)

// S returns a present element holding s.
func S(s string) Element { return text.S(s) }

// NA returns the missing element.
func NA() Element { return text.NA() }

// Strings wraps each string in a present element.
func Strings(ss ...string) []Element { return text.Strings(ss...) }

// DefaultLocale resolves the platform default locale identifier.
func DefaultLocale() string { return segment.DefaultLocale() }

// LocateBoundaries locates all boundaries of the requested kinds in
// each element of str. boundary holds kind labels ("character",
// "line-break", "sentence", "word") and locale holds locale
// identifiers ("" for the platform default); both are recycled against
// str. Each output position is either an ordered match list or the
// missing sentinel.
func LocateBoundaries(str, boundary, locale []Element) ([]Matches, error) {
	return segment.LocateBoundaries(str, boundary, locale)
}

// LocateWords locates word boundaries in each element of str, dropping
// segments with no word content. locale is recycled against str.
func LocateWords(str, locale []Element) ([]Matches, error) {
	return segment.LocateWords(str, locale)
}

// StatsGeneral computes general text statistics aggregated over the
// whole vector. Elements must not contain raw line feeds.
func StatsGeneral(str []Element) (GeneralStats, error) {
	return stats.General(str)
}

// StatsLatex computes LaTeX word-count statistics aggregated over the
// whole vector. Elements must not contain raw line feeds.
func StatsLatex(str []Element) (LatexStats, error) {
	return stats.Latex(str)
}

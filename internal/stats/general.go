package stats

import (
	"unicode"

	"github.com/dshills/textspan/internal/text"
)

// GeneralStats aggregates plain-text counts over a whole input vector.
type GeneralStats struct {
	// Lines is the number of non-missing elements.
	Lines int `json:"lines"`

	// LinesNonEmpty is the number of elements with at least one
	// non-whitespace code point.
	LinesNonEmpty int `json:"linesNonEmpty"`

	// Chars is the total code-point count.
	Chars int `json:"chars"`

	// CharsNonWhite is the count of non-whitespace code points.
	CharsNonWhite int `json:"charsNonWhite"`
}

// General scans every element of str once and accumulates general text
// statistics. Missing elements are skipped. Whitespace is the Unicode
// White_Space binary property, not an ASCII set. A raw line feed in any
// element returns ErrEmbeddedLineFeed with zero statistics.
func General(str []text.Element) (GeneralStats, error) {
	var st GeneralStats
	for _, e := range str {
		if e.Missing {
			continue
		}
		st.Lines++
		nonWhite := false
		for _, r := range e.Value {
			if r == '\n' {
				return GeneralStats{}, ErrEmbeddedLineFeed
			}
			st.Chars++
			if !unicode.Is(unicode.White_Space, r) {
				nonWhite = true
				st.CharsNonWhite++
			}
		}
		if nonWhite {
			st.LinesNonEmpty++
		}
	}
	return st, nil
}

package stats

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/textspan/internal/text"
)

// LatexStats aggregates LaTeX-aware counts over a whole input vector.
// The algorithm is the Kile 2.1.3 LaTeX word count, modified so that
// \end does not open a new environment.
type LatexStats struct {
	// CharsWord is the count of code points inside words.
	CharsWord int `json:"charsWord"`

	// CharsCmdEnvir is the count of code points belonging to commands
	// and environments, including the backslashes and braces.
	CharsCmdEnvir int `json:"charsCmdEnvir"`

	// CharsWhite is the count of whitespace and other non-word,
	// non-command code points.
	CharsWhite int `json:"charsWhite"`

	// Words is the number of words. A word starts at a letter; digits
	// continue a word but never start one.
	Words int `json:"words"`

	// Cmds is the number of commands and control symbols. \begin and
	// \end are not commands.
	Cmds int `json:"cmds"`

	// Envirs is the number of environments. Only \begin opens one.
	Envirs int `json:"envirs"`
}

// latexState is the scanner's per-element state. It resets to
// stStandard at the start of each element and never persists across
// elements.
type latexState int

const (
	stStandard latexState = iota
	stComment
	stControlSequence
	stControlSymbol // reserved; handled inline within stControlSequence
	stCommand
	stEnvironment
)

// latexScanner walks one element's code points and accumulates into a
// shared stats value. word tracks whether the scanner is currently
// inside a word.
type latexScanner struct {
	state latexState
	word  bool
	stats *LatexStats
}

// Latex scans every element of str with the LaTeX state machine.
// Missing elements are skipped. A raw line feed in any element, in any
// state, returns ErrEmbeddedLineFeed with zero statistics.
func Latex(str []text.Element) (LatexStats, error) {
	var st LatexStats
	for _, e := range str {
		if e.Missing {
			continue
		}
		sc := latexScanner{stats: &st}
		s := e.Value
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			i += size
			if r == '\n' {
				return LatexStats{}, ErrEmbeddedLineFeed
			}
			i += sc.step(r, s[i:])
		}
	}
	return st, nil
}

// step feeds one code point to the state machine. rest is the
// unconsumed remainder after r, used for look-ahead; the returned skip
// is the number of bytes of rest consumed by the transition (only the
// \begin and \end fast paths consume extra input).
func (sc *latexScanner) step(r rune, rest string) (skip int) {
	isLetter := unicode.IsLetter(r)
	isNumber := unicode.IsDigit(r)

	switch sc.state {
	case stStandard:
		switch {
		case r == '\\':
			sc.state = stControlSequence
			sc.stats.CharsCmdEnvir++
			if next, ok := lookahead(rest); ok {
				// A punctuation escape such as \" continues the
				// surrounding word, so K\"ahler counts once; ~ and ^
				// break it regardless.
				if !unicode.IsPunct(next) || next == '~' || next == '^' {
					sc.word = false
				}
			}
		case r == '%':
			sc.state = stComment
		case isLetter || isNumber:
			// Only a letter starts a new word: 42test counts as one
			// word, 42.2 counts as none.
			if isLetter && !sc.word {
				sc.word = true
				sc.stats.Words++
			}
			sc.stats.CharsWord++
		default:
			sc.stats.CharsWhite++
			sc.word = false
		}

	case stControlSequence:
		switch {
		case r == 'b' && strings.HasPrefix(rest, "egin"):
			sc.stats.Envirs++
			sc.stats.CharsCmdEnvir += 5
			sc.state = stEnvironment
			skip = 4
		case r == 'e' && strings.HasPrefix(rest, "nd"):
			// \end closes an environment rather than opening one, so
			// it is counted in characters only.
			sc.stats.CharsCmdEnvir += 3
			sc.state = stEnvironment
			skip = 2
		case isLetter:
			sc.stats.Cmds++
			sc.stats.CharsCmdEnvir++
			sc.state = stCommand
		default:
			// A control symbol such as \%, which is a literal percent
			// sign rather than a comment opener.
			sc.stats.Cmds++
			sc.stats.CharsCmdEnvir++
			sc.state = stStandard
		}

	case stCommand:
		switch {
		case isLetter:
			sc.stats.CharsCmdEnvir++
		case r == '\\':
			sc.stats.CharsCmdEnvir++
			sc.state = stControlSequence
		case r == '%':
			sc.state = stComment
		default:
			sc.stats.CharsWhite++
			sc.state = stStandard
		}

	case stEnvironment:
		switch {
		case r == '}':
			sc.stats.CharsCmdEnvir++
			sc.state = stStandard
		case r == '%':
			sc.state = stComment
		default:
			sc.stats.CharsCmdEnvir++
		}

	case stComment:
		// Absorb to the end of the element; a line feed is rejected
		// before stepping.
	}
	return skip
}

// lookahead returns the first code point of rest without consuming it.
func lookahead(rest string) (rune, bool) {
	if rest == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r, true
}

package segment

import (
	"fmt"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/language"
)

// RuleStatus classifies the span a word-kind engine just closed.
type RuleStatus int

const (
	// StatusNone marks a span with no word content (whitespace or
	// punctuation only).
	StatusNone RuleStatus = iota

	// StatusWord marks a span containing at least one letter or digit.
	StatusWord
)

// Span is one boundary-delimited segment in engine-native byte offsets.
// End is the offset one past the span's last byte and equals the Start
// of the following span.
type Span struct {
	Start  int
	End    int
	Status RuleStatus
}

// Engine is a boundary-detection instance configured for one kind and
// locale. It is bound to one string at a time and walked forward with
// Next. The zero value is not usable; construct with NewEngine.
//
// The segmentation rules are the locale-independent Unicode defaults
// (UAX #29 and UAX #14); the locale is validated at construction and
// carried for diagnostics.
type Engine struct {
	kind Kind
	tag  language.Tag

	// binding, reset by Bind
	rest  string
	pos   int
	state int
}

// NewEngine constructs an engine for the given kind and locale.
// An unparseable locale is reported as an engine failure.
func NewEngine(kind Kind, locale string) (*Engine, error) {
	tag, err := parseLocale(locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnsupportedLocale, locale, err)
	}
	return &Engine{kind: kind, tag: tag}, nil
}

// Kind returns the boundary kind the engine was built for.
func (e *Engine) Kind() Kind {
	return e.kind
}

// Locale returns the canonical locale tag the engine was built with.
func (e *Engine) Locale() string {
	return e.tag.String()
}

// Bind points the engine at s and rewinds it to the first boundary.
// The binding is reused across elements; Bind must be called before
// walking each one.
func (e *Engine) Bind(s string) {
	e.rest = s
	e.pos = 0
	e.state = -1
}

// Next returns the next boundary-delimited span, walking forward from
// the previous one. ok is false once the bound text is exhausted.
func (e *Engine) Next() (span Span, ok bool) {
	if len(e.rest) == 0 {
		return Span{}, false
	}

	var seg string
	switch e.kind {
	case Character:
		seg, e.rest, _, e.state = uniseg.FirstGraphemeClusterInString(e.rest, e.state)
	case LineBreak:
		seg, e.rest, _, e.state = uniseg.FirstLineSegmentInString(e.rest, e.state)
	case Sentence:
		seg, e.rest, e.state = uniseg.FirstSentenceInString(e.rest, e.state)
	case Word:
		seg, e.rest, e.state = uniseg.FirstWordInString(e.rest, e.state)
	}

	span.Start = e.pos
	e.pos += len(seg)
	span.End = e.pos
	if e.kind == Word {
		span.Status = classify(seg)
	}
	return span, true
}

// classify reports whether a word-kind span delimits an actual word.
// A span counts as a word when it contains at least one letter or digit
// code point; everything else is whitespace or punctuation between
// words.
func classify(seg string) RuleStatus {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return StatusWord
		}
	}
	return StatusNone
}

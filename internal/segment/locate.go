package segment

import (
	"github.com/dshills/textspan/internal/recycle"
	"github.com/dshills/textspan/internal/text"
)

// locator is the per-call engine reuse state: the engine is rebuilt
// only when the boundary kind switches between output positions. The
// locale seen at (re)construction time is the one applied; later locale
// changes without a kind switch do not rebuild the engine.
type locator struct {
	kind   Kind
	engine *Engine
}

func (lc *locator) configure(kind Kind, locale string) (*Engine, error) {
	if lc.engine != nil && lc.kind == kind {
		return lc.engine, nil
	}
	eng, err := NewEngine(kind, locale)
	if err != nil {
		return nil, err
	}
	lc.kind = kind
	lc.engine = eng
	return eng, nil
}

// LocateBoundaries locates all boundaries of the requested kinds in
// each element of str. The three operands are recycled to a common
// output length; output position i consumes element i mod L of each.
// A missing element, missing boundary kind, missing locale, or empty
// element yields the missing sentinel for that position only. An
// unknown boundary kind or unusable locale aborts the whole call.
func LocateBoundaries(str, boundary, locale []text.Element) ([]Matches, error) {
	n, err := recycle.CommonLength(len(str), len(boundary), len(locale))
	if err != nil {
		return nil, err
	}

	out := make([]Matches, n)
	var lc locator
	for i := 0; i < n; i++ {
		s := str[recycle.Index(i, len(str))]
		b := boundary[recycle.Index(i, len(boundary))]
		loc := locale[recycle.Index(i, len(locale))]

		if s.Missing || b.Missing || loc.Missing || s.Value == "" {
			out[i] = missingMatches()
			continue
		}

		kind, err := ParseKind(b.Value)
		if err != nil {
			return nil, err
		}
		eng, err := lc.configure(kind, loc.Value)
		if err != nil {
			return nil, err
		}
		out[i] = collect(eng, s, false)
	}
	return out, nil
}

// LocateWords locates word boundaries in each element of str, keeping
// only spans that delimit actual words. When filtering leaves nothing
// (or the element is missing or empty), the position's result is the
// missing sentinel.
func LocateWords(str, locale []text.Element) ([]Matches, error) {
	n, err := recycle.CommonLength(len(str), len(locale))
	if err != nil {
		return nil, err
	}

	out := make([]Matches, n)
	var lc locator
	for i := 0; i < n; i++ {
		s := str[recycle.Index(i, len(str))]
		loc := locale[recycle.Index(i, len(locale))]

		if s.Missing || loc.Missing {
			out[i] = missingMatches()
			continue
		}

		eng, err := lc.configure(Word, loc.Value)
		if err != nil {
			return nil, err
		}
		out[i] = collect(eng, s, true)
	}
	return out, nil
}

// collect binds the engine to one element, walks every boundary, and
// translates the spans into code-point matches. With wordsOnly set,
// spans with no word content are dropped before translation.
func collect(eng *Engine, elem text.Element, wordsOnly bool) Matches {
	cont := text.NewIndexable(elem)
	eng.Bind(elem.Value)

	var starts, ends []int
	for {
		span, ok := eng.Next()
		if !ok {
			break
		}
		if wordsOnly && span.Status == StatusNone {
			continue
		}
		starts = append(starts, span.Start)
		ends = append(ends, span.End)
	}
	if len(starts) == 0 {
		return missingMatches()
	}

	// 1-based starts; ends shifted onto the same axis so that each
	// match's end is the start of the segment after it.
	cont.Translate(starts, ends, 1, 1)

	ms := make(Matches, len(starts))
	for i := range ms {
		ms[i] = Match{Start: starts[i], End: ends[i]}
	}
	return ms
}

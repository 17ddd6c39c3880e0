package segment

import "strconv"

// MissingIndex is the coordinate value of the missing sentinel match.
const MissingIndex = -1

// Match is one located boundary segment in code-point coordinates:
// Start is the 1-based index of the segment's first code point, End the
// 1-based index one past its last, so that a match's End equals the
// next match's Start and the final match's End is the element's
// code-point length plus one.
type Match struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// IsMissing reports whether the match is the missing sentinel.
func (m Match) IsMissing() bool {
	return m.Start == MissingIndex && m.End == MissingIndex
}

// Matches is the result for one output position: an ordered list of
// non-overlapping matches, or the single-element missing sentinel.
type Matches []Match

// IsMissing reports whether the list is the "no boundaries" sentinel,
// emitted for missing inputs, empty elements, and word searches where
// every span was filtered out. These cases are deliberately
// indistinguishable.
func (ms Matches) IsMissing() bool {
	return len(ms) == 1 && ms[0].IsMissing()
}

// MarshalJSON renders the missing sentinel the same way as an empty
// match list.
func (ms Matches) MarshalJSON() ([]byte, error) {
	if ms.IsMissing() {
		return []byte("[]"), nil
	}
	out := []byte{'['}
	for i, m := range ms {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, `{"start":`...)
		out = strconv.AppendInt(out, int64(m.Start), 10)
		out = append(out, `,"end":`...)
		out = strconv.AppendInt(out, int64(m.End), 10)
		out = append(out, '}')
	}
	return append(out, ']'), nil
}

// missingMatches returns the sentinel result for one output position.
func missingMatches() Matches {
	return Matches{{Start: MissingIndex, End: MissingIndex}}
}

package text

import "sort"

// Indexable wraps one element and translates UTF-8 byte offsets into
// code-point indices. The checkpoint table is built on first use and
// reused across however many boundary queries the element receives
// within one call.
type Indexable struct {
	elem  Element
	table []int // table[i] = byte offset of code point i, plus one past-the-end entry
}

// NewIndexable returns a container for e. No work happens until the
// first translation request.
func NewIndexable(e Element) *Indexable {
	return &Indexable{elem: e}
}

// IsMissing reports whether the wrapped element is the missing value.
func (x *Indexable) IsMissing() bool {
	return x.elem.Missing
}

// String returns the element's UTF-8 form ("" for a missing element).
func (x *Indexable) String() string {
	if x.elem.Missing {
		return ""
	}
	return x.elem.Value
}

// Len returns the element's length in bytes.
func (x *Indexable) Len() int {
	return len(x.String())
}

// RuneCount returns the element's length in code points.
func (x *Indexable) RuneCount() int {
	return len(x.index()) - 1
}

// ByteOffset returns the byte offset of the code point at index ci.
// Passing RuneCount() returns the byte length, the past-the-end entry.
func (x *Indexable) ByteOffset(ci int) int {
	return x.index()[ci]
}

// Translate rewrites match boundaries in place from byte offsets into
// code-point indices. starts and ends are the two columns of a match
// list; every offset must be a code-point start (or the byte length)
// as reported by a boundary engine bound to this element. startBias
// and endBias are added to each translated index; passing 1 for both
// yields 1-based starts and half-open 1-based ends, so that a match's
// end equals the next match's start.
//
// Offsets arrive sorted by construction and are translated by a single
// merge over the checkpoint table; an out-of-order offset falls back to
// a binary search.
func (x *Indexable) Translate(starts, ends []int, startBias, endBias int) {
	table := x.index()
	translate(table, starts, startBias)
	translate(table, ends, endBias)
}

func translate(table, offsets []int, bias int) {
	ci := 0
	prev := -1
	for k, off := range offsets {
		if off < prev {
			ci = sort.SearchInts(table, off)
		} else {
			for ci < len(table)-1 && table[ci] < off {
				ci++
			}
		}
		prev = off
		offsets[k] = ci + bias
	}
}

// index returns the checkpoint table, building it on first use.
// For an element of n code points the table has n+1 entries; an empty
// element yields the single past-the-end entry.
func (x *Indexable) index() []int {
	if x.table == nil {
		s := x.String()
		t := make([]int, 0, len(s)+1)
		for i := range s {
			t = append(t, i)
		}
		x.table = append(t, len(s))
	}
	return x.table
}

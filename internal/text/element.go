package text

// Element is one input string, or the distinguished missing value.
// Elements are immutable once constructed.
type Element struct {
	// Value holds the element's code points, UTF-8 encoded.
	// It is meaningless when Missing is true.
	Value string

	// Missing marks the element as absent rather than empty.
	Missing bool
}

// S returns a present element holding s.
func S(s string) Element {
	return Element{Value: s}
}

// NA returns the missing element.
func NA() Element {
	return Element{Missing: true}
}

// Strings wraps each string in a present element.
func Strings(ss ...string) []Element {
	out := make([]Element, len(ss))
	for i, s := range ss {
		out[i] = S(s)
	}
	return out
}

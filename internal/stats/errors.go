package stats

import "errors"

// ErrEmbeddedLineFeed indicates a raw line feed inside an element.
// Elements are expected to be pre-split into lines by the caller, so
// this aborts the whole call with no partial counts.
var ErrEmbeddedLineFeed = errors.New("embedded line feed in element")

// Package text provides the input element type and the indexable text
// container used by boundary location.
//
// The container solves one problem: boundary engines report positions in
// UTF-8 byte offsets, while callers want positions in code points. Each
// container owns one element's bytes and a lazily built checkpoint table
// mapping code-point index to byte offset, so a batch of byte offsets can
// be rewritten into code-point indices in a single pass.
package text

// Package textspan provides Unicode-correct text analysis over vectors
// of strings: locating character, word, sentence, and line-break
// boundaries with results in code-point coordinates, and computing
// structural statistics over plain and LaTeX-flavored text.
//
// # Architecture
//
// The package is a thin facade over several sub-packages:
//
//   - internal/text: the indexable container bridging byte offsets and
//     code-point indices
//   - internal/segment: the boundary engine and the vectorized locate
//     operations
//   - internal/recycle: the modulo pairing rule for unequal-length
//     operand vectors
//   - internal/stats: the single-pass statistics scanners
//
// # Coordinates
//
// All boundary results are code-point positions, independent of UTF-8
// storage widths: a match's Start is the 1-based index of its first
// code point and its End is the 1-based index one past its last, so a
// match's End equals the following match's Start.
//
// # Basic Usage
//
//	str := textspan.Strings("Mr. Smith goes to town.")
//	out, err := textspan.LocateBoundaries(str,
//		textspan.Strings("sentence"), textspan.Strings("en-US"))
//
//	st, err := textspan.StatsLatex(textspan.Strings(`\begin{itemize}\item one\end{itemize}`))
package textspan

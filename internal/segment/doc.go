// Package segment locates linguistic and structural boundaries inside
// strings and reports them in code-point coordinates.
//
// # Architecture
//
// The package is built from three pieces:
//
//   - Engine: one boundary-detection instance per configured boundary
//     kind, driven by the Unicode segmentation rules in rivo/uniseg. An
//     engine is bound to one string at a time and walked forward,
//     yielding byte-offset spans.
//   - locator: the per-call reuse state. The engine is rebuilt only when
//     the boundary kind changes between output positions; re-binding the
//     text happens for every element.
//   - LocateBoundaries / LocateWords: the vectorized entry points. They
//     recycle their operands to a common length, run the engine per
//     element, and translate the collected spans into 1-based code-point
//     matches through the internal/text container.
//
// Word location additionally classifies each span: spans holding no
// letter or digit code point are dropped, so that results delimit actual
// words rather than the whitespace and punctuation between them.
package segment

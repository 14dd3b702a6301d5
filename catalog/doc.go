// Package catalog ships the fixed emoji table the codec encodes against.
//
// What:
//
//   - Exactly 2048 grapheme-cluster sequences, one per 11-bit symbol code.
//   - Index order in the table is the code assignment and therefore part of
//     the wire format: strings produced against one revision do not decode
//     against another. Version names the shipped revision.
//   - Shapes used (and the only shapes used): single pictographic scalars,
//     regional-indicator pairs, emoji-modifier (skin tone) sequences, VS16
//     presentation sequences, keycap sequences, ZWJ chains, and tag
//     sequences.
//
// Why:
//
//   - The codec needs one visually-atomic cluster per 11-bit value; a
//     curated table keeps every entry renderable and keeps cluster
//     boundaries stable under concatenation (no entry begins with a
//     joiner, modifier, selector, tag, enclosing mark, or unpaired
//     regional indicator).
//
// Curation and regeneration of the table are external tooling concerns;
// this package is a data asset. symbols.New re-verifies every integrity
// invariant at construction time regardless.
package catalog

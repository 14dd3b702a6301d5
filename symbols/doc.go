// Package symbols maintains the bijection between 11-bit codes and
// catalog grapheme clusters.
//
// What:
//
//   - Table maps code → cluster (SequenceFor) and cluster → code
//     (CodeFor). It is built once from a catalog slice and never mutated,
//     so a single Table may serve any number of concurrent encoders and
//     decoders without locking.
//   - New verifies the catalog's integrity invariants up front; a table
//     that constructs successfully cannot fail at lookup time for any
//     code an encoder can produce.
//
// Why:
//
//   - Every 11-bit value a packer emits needs exactly one cluster, and
//     every cluster a segmenter finds in well-formed output needs exactly
//     one code. Verifying the bijection (and that each entry is a single
//     grapheme cluster) at construction keeps encode infallible and makes
//     decode failures attributable to the input, never the table.
//
// Errors:
//
//   - ErrTableSize: fewer entries than the 2048 the code space requires.
//   - ErrDuplicateSequence: two entries share a cluster.
//   - ErrNotSingleCluster: an entry does not segment to exactly one
//     cluster.
//   - ErrUnknownGrapheme: CodeFor was handed a cluster outside the table.
//
// The first three are integrity failures of the shipped catalog — a
// process that hits them cannot meaningfully start. Only the last is a
// runtime condition, and only decode paths can reach it.
package symbols

// Package codec is the public face of emoji2048: bytes in, emoji out,
// and back again.
//
// What:
//
//   - Codec binds a symbols.Table to the Encode/Decode pipeline:
//     Encode = bitpack.Pack → table lookups → concatenation;
//     Decode = grapheme segmentation → reverse lookups → bitpack.Unpack.
//   - Default() is a process-wide Codec over the shipped catalog, built
//     lazily exactly once; package-level Encode and Decode use it.
//   - EncodeStream and DecodeStream adapt the codec to io.Reader and
//     io.Writer. Decoding streams incrementally with O(1) state;
//     encoding must read its entire input first because the wire format
//     places the padding header in the first symbol.
//
// Why:
//
//   - Grapheme-metered transports charge per perceived character. One
//     catalog cluster carries 11 payload bits, so a non-empty input of n
//     bytes costs ceil((8·n + 4)/11) clusters — below n once n ≥ 6.
//
// Errors (decode only; encode is total):
//
//   - symbols.ErrUnknownGrapheme — a cluster outside the catalog; the
//     returned error also carries the cluster's index and text.
//   - bitpack.ErrInvalidHeader — padding field outside 0..10.
//   - bitpack.ErrTruncated — non-byte-aligned payload after unpadding.
//
// All are matchable with errors.Is; none are retried or recovered
// internally, since decoding is deterministic.
//
// Concurrency: a Codec holds only an immutable table. Any number of
// goroutines may call all methods of one Codec concurrently.
package codec

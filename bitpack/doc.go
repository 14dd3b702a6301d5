// Package bitpack converts byte slices to sequences of 11-bit symbols
// and back, tracking final-group padding in an embedded header.
//
// What:
//
//   - Pack treats the input as one big-endian bit string (most significant
//     bit of byte 0 first), prepends a 4-bit header, splits the result
//     into consecutive 11-bit groups, and zero-pads the last group on its
//     low-order end. The header records how many padding bits were
//     appended (0..10) and therefore occupies the top 4 bits of the very
//     first symbol.
//   - Unpack reverses the split: it reads the header out of the first
//     symbol, drops the trailing padding bits, and returns the original
//     bytes.
//
// Wire format (fixed; changing it breaks decode compatibility):
//
//	bits    = header(4) ++ payload(8·n) ++ zeros(padding)
//	symbols = bits chunked into 11-bit groups, big-endian
//	padding = (11 − (4 + 8·n) mod 11) mod 11
//
// so a non-empty input always produces ceil((8·n + 4) / 11) symbols and
// the round-trip invariant 8·n == 11·len(symbols) − 4 − padding holds.
// Empty input produces zero symbols.
//
// Errors:
//
//   - ErrInvalidHeader: the header field exceeds 10. Unreachable for
//     symbols produced by Pack; indicates a corrupted or foreign stream.
//   - ErrTruncated: removing header and padding leaves a bit count that
//     is negative or not a multiple of 8.
//
// Complexity: Pack and Unpack are O(n) time, O(n) output memory, with a
// constant-size bit staging register.
package bitpack

// Package grapheme splits text into user-perceived characters using a
// restricted set of extended-grapheme-cluster rules.
//
// What:
//
//   - Segment partitions a string into an ordered slice of clusters; the
//     clusters concatenate back to the input exactly.
//   - Count reports the cluster count without materializing the slice.
//   - Scanner reads clusters incrementally from an io.RuneScanner.
//
// Why:
//
//   - The emoji2048 wire format concatenates catalog clusters with no
//     separators; decoding must split the string at exactly the cluster
//     boundaries the encoder produced.
//   - The catalog only ever emits a handful of sequence shapes, so a full
//     Unicode text-segmentation engine is unnecessary: a closed rule set
//     covering those shapes is exactly correct for this format and keeps
//     the package dependency-free.
//
// Rules (single left-to-right scan, one rune of lookahead):
//
//   - A regional indicator pairs with an immediately following regional
//     indicator (flag emoji); pairing is greedy from the left.
//   - ZERO WIDTH JOINER binds both of its neighbors into one cluster and
//     chains across multiple joiners.
//   - An emoji modifier (skin tone, U+1F3FB..U+1F3FF) extends the cluster.
//   - A variation selector (U+FE00..U+FE0F) extends the cluster.
//   - A tag sequence — base, one or more tag scalars, cancel tag — is one
//     cluster.
//   - A combining enclosing mark (U+20DD..U+20E4, e.g. the keycap mark)
//     extends the cluster.
//   - Any other scalar starts a new single-scalar cluster.
//
// Complexity:
//
//   - Segment/Count: O(len(s)) time, O(clusters) / O(1) memory.
//   - Scanner.Next: O(cluster) time, O(cluster) memory.
package grapheme

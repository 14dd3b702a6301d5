// Package emoji2048 packs arbitrary bytes into the fewest possible
// user-perceived characters — emoji grapheme clusters — and back.
//
// 🚀 What is emoji2048?
//
//	A pure-Go codec for transports that meter message length by grapheme
//	count rather than by bytes or code points:
//		• 11 bits of payload per grapheme cluster (a 2048-entry emoji table)
//		• Exact, lossless round trips — Decode(Encode(b)) == b, always
//		• A minimal, closed grapheme segmenter (flag pairs, ZWJ chains,
//		  skin tones, variation selectors, keycaps, tag sequences)
//		• Streaming adapters over io.Reader / io.Writer
//
// ✨ Why choose emoji2048?
//
//   - Dense – a non-empty payload always encodes to ceil((8n+4)/11) clusters
//   - Deterministic – no hidden mutable state; the symbol table is immutable
//     for the process lifetime and safe to share across goroutines
//   - Pure Go – no cgo, no general-purpose Unicode segmentation engine
//   - Honest errors – typed sentinels for every decode failure mode
//
// Under the hood, everything is organized into five subpackages:
//
//	bitpack/  — bytes ↔ 11-bit symbols, padding carried in a 4-bit header
//	catalog/  — the fixed, versioned 2048-entry emoji table
//	codec/    — Encode/Decode glue plus streaming variants
//	grapheme/ — restricted extended-grapheme-cluster segmentation
//	symbols/  — immutable code ↔ cluster bijection with integrity checks
//
// Quick example:
//
//	s := codec.Encode([]byte{0x41})  // two emoji clusters
//	b, err := codec.Decode(s)        // b == []byte{0x41}, err == nil
//
// The encoded string is a wire format: it is valid only against the exact
// catalog revision that produced it (see catalog.Version).
//
//	go get github.com/katalvlaran/emoji2048
package emoji2048

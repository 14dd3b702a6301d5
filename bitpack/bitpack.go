package bitpack

import "errors"

const (
	// SymbolBits is the payload width of one symbol.
	SymbolBits = 11
	// HeaderBits is the width of the padding-count field embedded in the
	// first symbol.
	HeaderBits = 4
	// MaxCode is the largest symbol value Pack can produce.
	MaxCode = 1<<SymbolBits - 1
	// MaxPadding is the largest legal padding-count value.
	MaxPadding = SymbolBits - 1
)

// Sentinel errors for unpacking.
var (
	// ErrInvalidHeader indicates a padding-count field outside 0..10.
	ErrInvalidHeader = errors.New("bitpack: padding header out of range")
	// ErrTruncated indicates the symbol stream does not describe a whole
	// number of bytes once header and padding are removed.
	ErrTruncated = errors.New("bitpack: symbol stream truncated")
)

// Pack converts data into 11-bit symbols. The returned padding count is
// also embedded in the top 4 bits of the first symbol, so the symbol
// slice alone is self-describing. Pack never fails; empty input yields
// (nil, 0).
func Pack(data []byte) (symbols []uint16, padding int) {
	if len(data) == 0 {
		return nil, 0
	}

	total := HeaderBits + 8*len(data)
	padding = (SymbolBits - total%SymbolBits) % SymbolBits
	symbols = make([]uint16, 0, (total+padding)/SymbolBits)

	// stage holds up to 18 pending bits: at most 10 carried over plus
	// one incoming byte.
	stage := uint32(padding)
	have := uint(HeaderBits)
	for _, b := range data {
		stage = stage<<8 | uint32(b)
		have += 8
		for have >= SymbolBits {
			have -= SymbolBits
			symbols = append(symbols, uint16(stage>>have)&MaxCode)
			stage &= 1<<have - 1
		}
	}
	if have > 0 {
		// Final short group, zero-padded on its low end.
		symbols = append(symbols, uint16(stage<<(SymbolBits-have))&MaxCode)
	}

	return symbols, padding
}

// Unpack reverses Pack. Empty input yields empty bytes. Symbols must be
// 11-bit values (the symbol table can produce nothing else).
func Unpack(symbols []uint16) ([]byte, error) {
	if len(symbols) == 0 {
		return []byte{}, nil
	}

	padding := int(symbols[0] >> (SymbolBits - HeaderBits))
	if padding > MaxPadding {
		return nil, ErrInvalidHeader
	}
	payload := len(symbols)*SymbolBits - HeaderBits - padding
	if payload < 0 || payload%8 != 0 {
		return nil, ErrTruncated
	}

	out := make([]byte, 0, payload/8)
	stage := uint32(symbols[0]) & (1<<(SymbolBits-HeaderBits) - 1)
	have := uint(SymbolBits - HeaderBits)
	for _, s := range symbols[1:] {
		stage = stage<<SymbolBits | uint32(s)
		have += SymbolBits
		for have >= 8 && len(out) < payload/8 {
			have -= 8
			out = append(out, byte(stage>>have))
			stage &= 1<<have - 1
		}
	}

	return out, nil
}

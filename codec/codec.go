package codec

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/emoji2048/bitpack"
	"github.com/katalvlaran/emoji2048/catalog"
	"github.com/katalvlaran/emoji2048/grapheme"
	"github.com/katalvlaran/emoji2048/symbols"
)

// Codec encodes and decodes against one immutable symbol table.
type Codec struct {
	table *symbols.Table
}

// New returns a Codec over t. Callers with custom catalogs build their
// table via symbols.New; everyone else wants Default.
func New(t *symbols.Table) *Codec {
	return &Codec{table: t}
}

// defaultCodec builds the shipped-catalog codec on first use. A catalog
// that fails its own integrity checks is unshippable, so this panics
// rather than returning an error nobody can act on.
var defaultCodec = sync.OnceValue(func() *Codec {
	t, err := symbols.New(catalog.Sequences())
	if err != nil {
		panic(fmt.Sprintf("codec: shipped catalog rejected: %v", err))
	}

	return New(t)
})

// Default returns the process-wide Codec over the shipped catalog.
func Default() *Codec {
	return defaultCodec()
}

// Encode encodes data with the default codec.
func Encode(data []byte) string {
	return Default().Encode(data)
}

// Decode decodes text with the default codec.
func Decode(text string) ([]byte, error) {
	return Default().Decode(text)
}

// Encode converts data into a string of catalog clusters, one per 11-bit
// symbol. It never fails; empty input yields the empty string.
//
// Time: O(n). Memory: O(output).
func (c *Codec) Encode(data []byte) string {
	syms, _ := bitpack.Pack(data)
	var b strings.Builder
	// Catalog clusters average a handful of bytes each.
	b.Grow(len(syms) * 4)
	for _, s := range syms {
		b.WriteString(c.table.SequenceFor(s))
	}

	return b.String()
}

// Decode recovers the bytes that produced text. The empty string decodes
// to empty bytes. Any cluster outside the catalog fails with
// symbols.ErrUnknownGrapheme (wrapped with its index); malformed streams
// fail with bitpack.ErrInvalidHeader or bitpack.ErrTruncated.
//
// Time: O(len(text)). Memory: O(output).
func (c *Codec) Decode(text string) ([]byte, error) {
	clusters := grapheme.Segment(text)
	syms := make([]uint16, len(clusters))
	for i, cl := range clusters {
		code, err := c.table.CodeFor(cl)
		if err != nil {
			return nil, fmt.Errorf("codec: cluster %d (%q): %w", i, cl, err)
		}
		syms[i] = code
	}

	return bitpack.Unpack(syms)
}

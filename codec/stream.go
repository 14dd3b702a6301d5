package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/emoji2048/bitpack"
	"github.com/katalvlaran/emoji2048/grapheme"
)

// EncodeStream reads all of r and writes its encoding to w. The wire
// format carries the padding count in the first symbol, which is not
// known until the input length is, so encoding cannot stream; this is an
// io adapter, not a constant-memory pipeline.
func (c *Codec) EncodeStream(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("codec: read input: %w", err)
	}
	if _, err := io.WriteString(w, c.Encode(data)); err != nil {
		return fmt.Errorf("codec: write output: %w", err)
	}

	return nil
}

// DecodeStream decodes the cluster stream r into w incrementally. It
// holds one cluster of lookahead and a constant-size bit register, so
// memory use is independent of stream length. Padding bits live only in
// the final symbol; bytes drawn from it are withheld until end of input
// so exactly the payload is written.
//
// Decode failures carry the same sentinels as Decode. Underlying read
// and write errors are returned wrapped.
func (c *Codec) DecodeStream(r io.Reader, w io.Writer) error {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	sc := grapheme.NewScanner(rs)
	bw := bufio.NewWriter(w)

	cur, err := sc.Next()
	if err == io.EOF {
		return nil // empty stream, empty payload
	}
	if err != nil {
		return fmt.Errorf("codec: read input: %w", err)
	}

	var (
		stage   uint32
		have    int
		padding int
		count   int // symbols consumed, current one included
		wrote   int // payload bytes written so far
	)
	for {
		next, nextErr := sc.Next()
		if nextErr != nil && nextErr != io.EOF {
			return fmt.Errorf("codec: read input: %w", nextErr)
		}
		last := nextErr == io.EOF

		code, err := c.table.CodeFor(cur)
		if err != nil {
			return fmt.Errorf("codec: cluster %d (%q): %w", count, cur, err)
		}
		count++

		if count == 1 {
			padding = int(code >> (bitpack.SymbolBits - bitpack.HeaderBits))
			if padding > bitpack.MaxPadding {
				return bitpack.ErrInvalidHeader
			}
			stage = uint32(code) & (1<<(bitpack.SymbolBits-bitpack.HeaderBits) - 1)
			have = bitpack.SymbolBits - bitpack.HeaderBits
		} else {
			stage = stage<<bitpack.SymbolBits | uint32(code)
			have += bitpack.SymbolBits
		}

		if last {
			payload := count*bitpack.SymbolBits - bitpack.HeaderBits - padding
			if payload < 0 || payload%8 != 0 {
				return bitpack.ErrTruncated
			}
			for wrote < payload/8 {
				have -= 8
				if err := bw.WriteByte(byte(stage >> have)); err != nil {
					return fmt.Errorf("codec: write output: %w", err)
				}
				stage &= 1<<have - 1
				wrote++
			}
			if err := bw.Flush(); err != nil {
				return fmt.Errorf("codec: write output: %w", err)
			}

			return nil
		}

		// Not the last symbol: every complete byte is real payload.
		for have >= 8 {
			have -= 8
			if err := bw.WriteByte(byte(stage >> have)); err != nil {
				return fmt.Errorf("codec: write output: %w", err)
			}
			stage &= 1<<have - 1
			wrote++
		}
		cur = next
	}
}

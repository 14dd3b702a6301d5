package codec_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emoji2048/bitpack"
	"github.com/katalvlaran/emoji2048/codec"
	"github.com/katalvlaran/emoji2048/symbols"
)

// TestEncodeStream_MatchesEncode verifies the streaming encoder emits
// byte-for-byte what Encode returns.
func TestEncodeStream_MatchesEncode(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := codec.Default()
	for _, n := range []int{0, 1, 2, 11, 64, 1000} {
		data := make([]byte, n)
		rng.Read(data)

		var out bytes.Buffer
		require.NoError(t, c.EncodeStream(bytes.NewReader(data), &out))
		require.Equal(t, c.Encode(data), out.String(), "n=%d", n)
	}
}

// TestDecodeStream_MatchesDecode verifies the streaming decoder
// reproduces Decode on encoder output of assorted sizes, exercising
// every padding value.
func TestDecodeStream_MatchesDecode(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	c := codec.Default()
	for n := 0; n <= 40; n++ {
		data := make([]byte, n)
		rng.Read(data)
		text := c.Encode(data)

		var out bytes.Buffer
		require.NoError(t, c.DecodeStream(strings.NewReader(text), &out), "n=%d", n)
		require.Equal(t, data, out.Bytes(), "n=%d", n)
	}
}

// TestDecodeStream_PlainReader verifies decoding works when the source
// is not already an io.RuneScanner.
func TestDecodeStream_PlainReader(t *testing.T) {
	c := codec.Default()
	data := []byte("through a plain reader")
	text := c.Encode(data)

	var out bytes.Buffer
	require.NoError(t, c.DecodeStream(bytes.NewReader([]byte(text)), &out))
	require.Equal(t, data, out.Bytes())
}

// TestDecodeStream_Empty verifies an empty stream writes nothing and
// succeeds.
func TestDecodeStream_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, codec.Default().DecodeStream(strings.NewReader(""), &out))
	require.Zero(t, out.Len())
}

// TestDecodeStream_Errors verifies the streaming decoder reports the
// same sentinels as Decode.
func TestDecodeStream_Errors(t *testing.T) {
	c := codec.Default()

	var out bytes.Buffer
	err := c.DecodeStream(strings.NewReader("not emoji"), &out)
	require.ErrorIs(t, err, symbols.ErrUnknownGrapheme)

	out.Reset()
	err = c.DecodeStream(strings.NewReader("🌀"), &out) // code 0: padding 0, 7 loose bits
	require.ErrorIs(t, err, bitpack.ErrTruncated)
}

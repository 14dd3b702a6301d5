package codec_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/emoji2048/bitpack"
	"github.com/katalvlaran/emoji2048/catalog"
	"github.com/katalvlaran/emoji2048/codec"
	"github.com/katalvlaran/emoji2048/grapheme"
	"github.com/katalvlaran/emoji2048/symbols"
)

// CodecSuite exercises encode/decode against the shipped catalog.
type CodecSuite struct {
	suite.Suite
	c *codec.Codec
}

func (s *CodecSuite) SetupSuite() {
	s.c = codec.Default()
}

// TestRoundTripRandom verifies Decode(Encode(b)) == b across sizes,
// including empty input.
func (s *CodecSuite) TestRoundTripRandom() {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n <= 200; n++ {
		data := make([]byte, n)
		rng.Read(data)
		got, err := s.c.Decode(s.c.Encode(data))
		require.NoError(s.T(), err, "n=%d", n)
		require.Equal(s.T(), data, got, "n=%d", n)
	}
}

// TestKnownVectors pins the wire format for a few inputs. These strings
// are part of the format contract for catalog revision 2048-u14.0-r1;
// if they change, Version must change too.
func (s *CodecSuite) TestKnownVectors() {
	cases := []struct {
		data []byte
		text string
	}{
		{nil, ""},
		{[]byte{0x41}, "🇬🇪🥻"},
		{[]byte("Hi"), "🐩💩"},
		{[]byte("Hello, World!"), "🐩💚🇰🇯🧪👦🌕🇽🇮👍🏽🇶🇸🎄"},
	}
	for _, tc := range cases {
		require.Equal(s.T(), tc.text, s.c.Encode(tc.data))
		got, err := s.c.Decode(tc.text)
		require.NoError(s.T(), err)
		if tc.data == nil {
			require.Empty(s.T(), got)
		} else {
			require.Equal(s.T(), tc.data, got)
		}
	}
}

// TestDensity verifies the cluster count is exactly ceil((8n+4)/11) and
// drops below the byte count from six bytes on.
func (s *CodecSuite) TestDensity() {
	rng := rand.New(rand.NewSource(2))
	for n := 1; n <= 64; n++ {
		data := make([]byte, n)
		rng.Read(data)
		clusters := grapheme.Count(s.c.Encode(data))
		require.Equal(s.T(), (8*n+4+10)/11, clusters, "n=%d", n)
		if n >= 6 {
			require.Less(s.T(), clusters, n, "n=%d", n)
		}
	}
}

// TestDecodeUnknownGrapheme verifies out-of-catalog clusters are
// rejected with the failing cluster's position in the message.
func (s *CodecSuite) TestDecodeUnknownGrapheme() {
	_, err := s.c.Decode("Invalid data")
	require.ErrorIs(s.T(), err, symbols.ErrUnknownGrapheme)
	require.Contains(s.T(), err.Error(), "cluster 0")

	// Valid prefix, then garbage: position reflects the garbage cluster.
	_, err = s.c.Decode(s.c.Encode([]byte{0x41}) + "A")
	require.ErrorIs(s.T(), err, symbols.ErrUnknownGrapheme)
	require.Contains(s.T(), err.Error(), "cluster 2")
}

// TestDecodeTruncated verifies a lone catalog cluster whose embedded
// padding field leaves a non-byte-aligned remainder is rejected. Code 0
// carries padding 0, implying 7 payload bits.
func (s *CodecSuite) TestDecodeTruncated() {
	_, err := s.c.Decode(catalog.Sequences()[0])
	require.ErrorIs(s.T(), err, bitpack.ErrTruncated)
}

// TestDecodeInvalidHeader verifies clusters whose codes put 11..15 in
// the padding field are rejected. Codes 1408 and 1920 have fields 11
// and 15.
func (s *CodecSuite) TestDecodeInvalidHeader() {
	seqs := catalog.Sequences()
	for _, code := range []int{1408, 1920} {
		_, err := s.c.Decode(seqs[code])
		require.ErrorIs(s.T(), err, bitpack.ErrInvalidHeader, "code %d", code)
	}
}

// TestDecodeHeaderOnly verifies the one self-consistent lone cluster
// (padding field 7, zero payload bits) decodes to empty bytes. Code 896
// is that cluster in the shipped catalog.
func (s *CodecSuite) TestDecodeHeaderOnly() {
	got, err := s.c.Decode(catalog.Sequences()[896])
	require.NoError(s.T(), err)
	require.Empty(s.T(), got)
}

// TestEmpty verifies both directions of the empty case.
func (s *CodecSuite) TestEmpty() {
	require.Equal(s.T(), "", s.c.Encode(nil))
	require.Equal(s.T(), "", s.c.Encode([]byte{}))

	got, err := s.c.Decode("")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []byte{}, got)
}

// TestPackageLevel verifies the Default()-backed conveniences agree with
// the explicit codec.
func (s *CodecSuite) TestPackageLevel() {
	data := []byte("package level")
	require.Equal(s.T(), s.c.Encode(data), codec.Encode(data))

	got, err := codec.Decode(codec.Encode(data))
	require.NoError(s.T(), err)
	require.Equal(s.T(), data, got)
}

// TestConcurrentUse verifies one codec serves parallel encode/decode
// calls without coordination.
func (s *CodecSuite) TestConcurrentUse() {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 50; i++ {
				data := make([]byte, rng.Intn(64))
				rng.Read(data)
				got, err := s.c.Decode(s.c.Encode(data))
				// assert, not require: FailNow must not run off the
				// test goroutine.
				s.Assert().NoError(err)
				s.Assert().Equal(data, got)
			}
		}(int64(g))
	}
	wg.Wait()
}

// TestCustomTable verifies a codec over an explicitly built table
// behaves identically to Default.
func (s *CodecSuite) TestCustomTable() {
	tbl, err := symbols.New(catalog.Sequences())
	require.NoError(s.T(), err)

	c := codec.New(tbl)
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	require.Equal(s.T(), s.c.Encode(data), c.Encode(data))
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecSuite))
}

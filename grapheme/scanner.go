package grapheme

import (
	"io"
	"strings"
)

// Scanner reads grapheme clusters one at a time from an io.RuneScanner.
// The boundary rules need at most one rune of lookahead, so the scanner
// holds no buffered input beyond the cluster under construction; it is
// suitable for decoding streams of unbounded length.
type Scanner struct {
	r   io.RuneScanner
	buf strings.Builder
}

// NewScanner returns a Scanner reading clusters from r.
func NewScanner(r io.RuneScanner) *Scanner {
	return &Scanner{r: r}
}

// Next returns the next cluster. It returns io.EOF once the input is
// exhausted, and any other error unchanged from the underlying reader.
// Malformed sequences (a dangling joiner or an unterminated tag run at
// end of input) are returned as-is; they cannot match any catalog entry
// and are rejected downstream.
func (s *Scanner) Next() (string, error) {
	first, _, err := s.r.ReadRune()
	if err != nil {
		return "", err
	}
	s.buf.Reset()
	s.buf.WriteRune(first)

	if isRegionalIndicator(first) {
		return s.nextRegionalPair()
	}

	for {
		r, _, err := s.r.ReadRune()
		if err == io.EOF {
			return s.buf.String(), nil
		}
		if err != nil {
			return "", err
		}

		switch {
		case isModifier(r) || isVariationSelector(r) || isEnclosingMark(r):
			s.buf.WriteRune(r)

		case r == zwj:
			s.buf.WriteRune(r)
			// The joiner binds the following scalar into this cluster;
			// its own extensions are picked up by the next iteration.
			joined, _, err := s.r.ReadRune()
			if err == io.EOF {
				return s.buf.String(), nil
			}
			if err != nil {
				return "", err
			}
			s.buf.WriteRune(joined)

		case isTag(r) || r == cancelTag:
			if err := s.readTagRun(r); err != nil {
				return "", err
			}

		default:
			if err := s.r.UnreadRune(); err != nil {
				return "", err
			}

			return s.buf.String(), nil
		}
	}
}

// nextRegionalPair completes a cluster whose first scalar is a regional
// indicator: it pairs with an immediately following regional indicator
// and takes no further extensions. Pairing is greedy from the left, so a
// run of 2k indicators always splits into k flag clusters.
func (s *Scanner) nextRegionalPair() (string, error) {
	r, _, err := s.r.ReadRune()
	switch {
	case err == io.EOF:
	case err != nil:
		return "", err
	case isRegionalIndicator(r):
		s.buf.WriteRune(r)
	default:
		if err := s.r.UnreadRune(); err != nil {
			return "", err
		}
	}

	return s.buf.String(), nil
}

// readTagRun consumes a run of tag scalars through the terminating
// cancel tag. first is the tag scalar already read.
func (s *Scanner) readTagRun(first rune) error {
	s.buf.WriteRune(first)
	r := first
	for r != cancelTag {
		var err error
		r, _, err = s.r.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !isTag(r) && r != cancelTag {
			return s.r.UnreadRune()
		}
		s.buf.WriteRune(r)
	}

	return nil
}

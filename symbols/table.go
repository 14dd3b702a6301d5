package symbols

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/emoji2048/bitpack"
	"github.com/katalvlaran/emoji2048/grapheme"
)

// minEntries is the number of entries a catalog must supply so that every
// 11-bit code has a cluster.
const minEntries = bitpack.MaxCode + 1

// Sentinel errors for table construction and reverse lookup.
var (
	// ErrTableSize indicates the catalog cannot cover the 11-bit code space.
	ErrTableSize = errors.New("symbols: catalog smaller than the code space")
	// ErrDuplicateSequence indicates two catalog entries share a cluster.
	ErrDuplicateSequence = errors.New("symbols: duplicate catalog sequence")
	// ErrNotSingleCluster indicates a catalog entry is not exactly one
	// grapheme cluster.
	ErrNotSingleCluster = errors.New("symbols: catalog entry is not a single cluster")
	// ErrUnknownGrapheme indicates a cluster with no catalog code.
	ErrUnknownGrapheme = errors.New("symbols: grapheme not in catalog")
)

// Table is an immutable code ↔ cluster bijection. The zero value is not
// usable; construct with New.
type Table struct {
	seqs  []string
	codes map[string]uint16
}

// New builds a Table from seqs, where the slice index is the code. It
// copies seqs, so later mutation of the argument cannot reach the table.
// Entries beyond the 11-bit code space are ignored: no packer output can
// address them.
//
// New verifies, for every addressable entry, that it is pairwise
// distinct and segments to exactly one grapheme cluster. Failures here
// mean the shipped catalog is broken, not that the caller erred.
//
// Time: O(N·L) over N entries of length L. Memory: O(N·L).
func New(seqs []string) (*Table, error) {
	if len(seqs) < minEntries {
		return nil, fmt.Errorf("%w: got %d entries, need %d", ErrTableSize, len(seqs), minEntries)
	}

	t := &Table{
		seqs:  make([]string, minEntries),
		codes: make(map[string]uint16, minEntries),
	}
	for code, seq := range seqs[:minEntries] {
		if n := grapheme.Count(seq); n != 1 {
			return nil, fmt.Errorf("%w: code %d (%q) segments to %d clusters", ErrNotSingleCluster, code, seq, n)
		}
		if prev, dup := t.codes[seq]; dup {
			return nil, fmt.Errorf("%w: codes %d and %d both map to %q", ErrDuplicateSequence, prev, code, seq)
		}
		t.seqs[code] = seq
		t.codes[seq] = uint16(code)
	}

	return t, nil
}

// SequenceFor returns the cluster for code. It is total over the 11-bit
// code space; codes outside it cannot be produced by bitpack.Pack and
// panic by slice bounds.
func (t *Table) SequenceFor(code uint16) string {
	return t.seqs[code]
}

// CodeFor returns the code whose cluster is seq, or ErrUnknownGrapheme.
func (t *Table) CodeFor(seq string) (uint16, error) {
	code, ok := t.codes[seq]
	if !ok {
		return 0, ErrUnknownGrapheme
	}

	return code, nil
}

// Size reports the number of addressable codes.
func (t *Table) Size() int {
	return len(t.seqs)
}

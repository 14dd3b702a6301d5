package catalog

// Version identifies the shipped table revision. Bump on any change to
// the entry set or order: both are breaking wire-format changes.
const Version = "2048-u14.0-r1"

// Size is the number of entries in the shipped table.
const Size = len(sequences)

// Sequences returns the table as a fresh slice: index is the 11-bit
// symbol code, value is the cluster's scalar values. The copy keeps the
// shipped data immutable no matter what callers do with the result.
func Sequences() []string {
	out := make([]string, len(sequences))
	copy(out, sequences[:])

	return out
}

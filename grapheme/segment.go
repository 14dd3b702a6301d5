package grapheme

import "strings"

// Segment partitions s into an ordered slice of grapheme clusters.
// For valid UTF-8 input the clusters concatenate back to s exactly;
// invalid bytes surface as U+FFFD replacement clusters (which no catalog
// entry matches). Segment of the empty string is nil.
//
// Time: O(len(s)). Memory: O(number of clusters).
func Segment(s string) []string {
	if s == "" {
		return nil
	}

	sc := NewScanner(strings.NewReader(s))
	clusters := make([]string, 0, len(s)/4)
	for {
		c, err := sc.Next()
		if err != nil {
			// strings.Reader can only fail with io.EOF.
			return clusters
		}
		clusters = append(clusters, c)
	}
}

// Count reports how many grapheme clusters s contains without keeping
// them. Useful for measuring encoded output the way metered transports do.
//
// Time: O(len(s)). Memory: O(max cluster length).
func Count(s string) int {
	sc := NewScanner(strings.NewReader(s))
	n := 0
	for {
		if _, err := sc.Next(); err != nil {
			return n
		}
		n++
	}
}

package grapheme

import (
	"reflect"
	"strings"
	"testing"
)

// TestSegment_SingleScalars verifies that scalars with no binding rule
// each form their own cluster, including plain ASCII.
func TestSegment_SingleScalars(t *testing.T) {
	got := Segment("a🌀b🐩")
	want := []string{"a", "🌀", "b", "🐩"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %q; want %q", got, want)
	}
}

// TestSegment_Empty verifies the empty string segments to nothing.
func TestSegment_Empty(t *testing.T) {
	if got := Segment(""); got != nil {
		t.Errorf("Segment(\"\") = %q; want nil", got)
	}
}

// TestSegment_RegionalIndicators verifies greedy left-to-right pairing:
// a run of 2k indicators yields k flags, and an odd trailing indicator
// stands alone.
func TestSegment_RegionalIndicators(t *testing.T) {
	ua, g := "\U0001F1FA\U0001F1E6", "\U0001F1EC"

	got := Segment(ua + ua)
	if want := []string{ua, ua}; !reflect.DeepEqual(got, want) {
		t.Errorf("two flags: got %q; want %q", got, want)
	}

	got = Segment(ua + g)
	if want := []string{ua, g}; !reflect.DeepEqual(got, want) {
		t.Errorf("flag + lone indicator: got %q; want %q", got, want)
	}
}

// TestSegment_ModifierAndSelector verifies rules (c) and (d): skin-tone
// modifiers and variation selectors bind into the preceding cluster.
func TestSegment_ModifierAndSelector(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"thumbs up medium", "\U0001F44D\U0001F3FD", []string{"\U0001F44D\U0001F3FD"}},
		{"sun with VS16", "☀️", []string{"☀️"}},
		{"two toned thumbs", "\U0001F44D\U0001F3FB\U0001F44D\U0001F3FF", []string{"\U0001F44D\U0001F3FB", "\U0001F44D\U0001F3FF"}},
		{"bare then toned", "\U0001F468\U0001F468\U0001F3FB", []string{"\U0001F468", "\U0001F468\U0001F3FB"}},
	}
	for _, tc := range cases {
		if got := Segment(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %q; want %q", tc.name, got, tc.want)
		}
	}
}

// TestSegment_Keycap verifies rule (f): VS16 plus the combining keycap
// mark stay attached to their base.
func TestSegment_Keycap(t *testing.T) {
	in := "5️⃣" + "7️⃣"
	want := []string{"5️⃣", "7️⃣"}
	if got := Segment(in); !reflect.DeepEqual(got, want) {
		t.Errorf("keycaps: got %q; want %q", got, want)
	}
}

// TestSegment_ZWJ verifies rule (b): the joiner binds both sides and
// chains, and selectors inside the chain stay bound.
func TestSegment_ZWJ(t *testing.T) {
	family := "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466"
	pirate := "\U0001F3F4‍☠️"

	got := Segment(family + pirate)
	if want := []string{family, pirate}; !reflect.DeepEqual(got, want) {
		t.Errorf("ZWJ chains: got %q; want %q", got, want)
	}

	// A dangling joiner at end of input stays in its cluster.
	if got := Segment("\U0001F468‍"); len(got) != 1 {
		t.Errorf("dangling joiner: got %d clusters; want 1", len(got))
	}
}

// TestSegment_TagSequence verifies rule (e): base + tags + cancel tag is
// one cluster, and the cancel tag closes it.
func TestSegment_TagSequence(t *testing.T) {
	scotland := "\U0001F3F4\U000E0067\U000E0062\U000E0073\U000E0063\U000E0074\U000E007F"

	got := Segment(scotland + "x")
	if want := []string{scotland, "x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("tag sequence: got %q; want %q", got, want)
	}

	// Unterminated tag run at end of input stays in one cluster.
	if got := Segment("\U0001F3F4\U000E0067\U000E0062"); len(got) != 1 {
		t.Errorf("unterminated tags: got %d clusters; want 1", len(got))
	}
}

// TestSegment_Concatenation verifies segmentation idempotence: joining
// already-segmented clusters and re-segmenting yields the same clusters,
// with no merging across boundaries. This is the property the decoder
// depends on.
func TestSegment_Concatenation(t *testing.T) {
	clusters := []string{
		"\U0001F1FA\U0001F1E6",   // flag
		"\U0001F44D\U0001F3FD",   // toned thumbs up
		"☀️",                     // VS16 sun
		"5️⃣",                    // keycap
		"\U0001F3F3️‍\U0001F308", // rainbow flag
		"\U0001F30A",             // plain wave
		"\U0001F1EC\U0001F1EA",   // another flag
	}
	joined := strings.Join(clusters, "")
	if got := Segment(joined); !reflect.DeepEqual(got, clusters) {
		t.Errorf("re-segmentation: got %q; want %q", got, clusters)
	}
}

// TestCount_MatchesSegment checks Count against len(Segment) on mixed
// inputs.
func TestCount_MatchesSegment(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii",
		"🇺🇦🇺🇦x👍🏽5️⃣",
		"\U0001F468‍\U0001F469‍\U0001F466 ok",
	}
	for _, in := range inputs {
		if got, want := Count(in), len(Segment(in)); got != want {
			t.Errorf("Count(%q) = %d; want %d", in, got, want)
		}
	}
}

// TestSegment_Reconstructs verifies clusters concatenate back to the
// input for valid UTF-8.
func TestSegment_Reconstructs(t *testing.T) {
	in := "x🇺🇦👍🏽☀️#️⃣🏴\U000E0067\U000E0062\U000E0073\U000E0063\U000E0074\U000E007F"
	if got := strings.Join(Segment(in), ""); got != in {
		t.Errorf("join(Segment) = %q; want %q", got, in)
	}
}

package similarity

import (
	"math"
	"testing"
)

func TestSimilarity_Identical(t *testing.T) {
	if got := Similarity("Red Apple", "Red Apple"); got != 1.0 {
		t.Errorf("expected 1.0 for identical strings, got %f", got)
	}
}

func TestSimilarity_CaseInsensitive(t *testing.T) {
	if got := Similarity("RED APPLE", "red apple"); got != 1.0 {
		t.Errorf("expected 1.0 ignoring case, got %f", got)
	}
}

func TestSimilarity_Disjoint(t *testing.T) {
	if got := Similarity("xyz", "qwf"); got != 0 {
		t.Errorf("expected 0 for disjoint strings, got %f", got)
	}
}

func TestSimilarity_Empty(t *testing.T) {
	if got := Similarity("", "apple"); got != 0 {
		t.Errorf("expected 0 for empty text, got %f", got)
	}
	if got := Similarity("apple", "   "); got != 0 {
		t.Errorf("expected 0 for blank phrase, got %f", got)
	}
}

func TestSimilarity_Typo(t *testing.T) {
	// "aple" shares the prefix trigrams of "apple"; a typo must still
	// clear the loosest retention threshold.
	got := Similarity("Red Apple", "aple")
	want := 4.0 / 11.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Similarity(Red Apple, aple) = %f, want %f", got, want)
	}
	if got <= 0.1 {
		t.Errorf("typo score %f should exceed 0.1", got)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := Similarity("fresh banana", "banana")
	b := Similarity("banana", "fresh banana")
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("expected symmetry, got %f vs %f", a, b)
	}
}

func TestSimilarity_MoreOverlapScoresHigher(t *testing.T) {
	closer := Similarity("Red Apple", "apple")
	farther := Similarity("Red Apple", "aple")
	if closer <= farther {
		t.Errorf("expected %f > %f", closer, farther)
	}
}

func TestFullTextMatches(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		phrase string
		want   bool
	}{
		{"exact token", "Fresh Kashmiri apples sold per kg", "apples", true},
		{"stemmed plural", "Fresh Kashmiri apples sold per kg", "apple", true},
		{"all tokens present", "Fresh Kashmiri apples sold per kg", "fresh apples", true},
		{"one token missing", "Fresh Kashmiri apples sold per kg", "fresh mango", false},
		{"case insensitive", "FRESH APPLES", "fresh", true},
		{"punctuation ignored", "apples, bananas & grapes", "bananas grapes", true},
		{"blank phrase", "anything", "   ", false},
		{"empty text", "", "apple", false},
		{"es plural", "storage boxes", "box", true},
		{"ss not stripped", "glass bottle", "glass", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FullTextMatches(tc.text, tc.phrase); got != tc.want {
				t.Errorf("FullTextMatches(%q, %q) = %v, want %v", tc.text, tc.phrase, got, tc.want)
			}
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"apples", "apple"},
		{"boxes", "box"},
		{"dishes", "dish"},
		{"glass", "glass"},
		{"gas", "gas"},
		{"kg", "kg"},
		{"banana", "banana"},
	}
	for _, tc := range tests {
		if got := stem(tc.in); got != tc.want {
			t.Errorf("stem(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTrigramSet_WordPadding(t *testing.T) {
	tris := trigramSet("ab")
	// "  ab " yields "  a", " ab", "ab "
	for _, want := range []string{"  a", " ab", "ab "} {
		if _, ok := tris[want]; !ok {
			t.Errorf("expected trigram %q in set %v", want, tris)
		}
	}
	if len(tris) != 3 {
		t.Errorf("expected 3 trigrams, got %d", len(tris))
	}
}

// Package similarity scores free-text phrases against catalog text.
//
// Two independent signals are provided: trigram set overlap (Jaccard over
// 3-character shingles, compatible with the pg_trgm definition) and
// token-level full-text containment. Candidates are typically retained
// when either signal fires.
package similarity

import (
	"strings"
	"unicode"
)

// Similarity returns the trigram Jaccard similarity of two strings in
// [0,1]. Identical strings score 1.0, strings sharing no trigrams score
// 0.0. Comparison is case-insensitive and word-oriented: each word is
// padded before shingling so prefixes weigh more than interior runs.
func Similarity(text, phrase string) float64 {
	a := trigramSet(text)
	b := trigramSet(phrase)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	shared := 0
	for t := range b {
		if _, ok := a[t]; ok {
			shared++
		}
	}
	if shared == 0 {
		return 0
	}

	union := len(a) + len(b) - shared
	return float64(shared) / float64(union)
}

// FullTextMatches reports whether every token of phrase appears in text.
// Tokens are lowercased, stripped of punctuation and lightly stemmed, so
// "apples" matches "apple". A blank phrase never matches.
func FullTextMatches(text, phrase string) bool {
	phraseTokens := tokenize(phrase)
	if len(phraseTokens) == 0 {
		return false
	}

	textTokens := make(map[string]struct{})
	for _, tok := range tokenize(text) {
		textTokens[tok] = struct{}{}
	}

	for _, tok := range phraseTokens {
		if _, ok := textTokens[tok]; !ok {
			return false
		}
	}
	return true
}

// trigramSet builds the set of 3-grams for a string. Words are padded
// with two leading and one trailing space, matching pg_trgm.
func trigramSet(s string) map[string]struct{} {
	words := splitWords(s)
	if len(words) == 0 {
		return nil
	}

	tris := make(map[string]struct{})
	for _, w := range words {
		padded := "  " + w + " "
		runes := []rune(padded)
		for i := 0; i+3 <= len(runes); i++ {
			tris[string(runes[i:i+3])] = struct{}{}
		}
	}
	return tris
}

// splitWords lowercases and splits a string into alphanumeric runs.
func splitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// tokenize splits into lowercase stemmed tokens for full-text matching.
func tokenize(s string) []string {
	words := splitWords(s)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if t := stem(w); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// esSuffixes are sibilant endings that pluralize with "es".
var esSuffixes = []string{"ses", "xes", "zes", "ches", "shes"}

// stem applies a light English plural strip so "apples" and "apple"
// compare equal, and "boxes" matches "box". Not a full stemmer.
func stem(w string) string {
	for _, suf := range esSuffixes {
		if strings.HasSuffix(w, suf) && len(w) > len(suf)+1 {
			return w[:len(w)-2]
		}
	}
	if strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 3 {
		return w[:len(w)-1]
	}
	return w
}

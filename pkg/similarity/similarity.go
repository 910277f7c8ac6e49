// Package similarity provides the lexical token-overlap heuristic
// used to suggest cross-framework control mappings. It is a plain
// Jaccard index over word-token sets, not semantic similarity; two
// controls that say the same thing in different words score low.
package similarity

import "strings"

// minTokenLen is the shortest token kept after tokenization.
// Tokens of length <= 2 ("a", "of", "to", "is") carry no signal.
const minTokenLen = 3

// Tokens lowercases s and splits it into the set of unique word-
// character runs ([a-z0-9_]+), dropping tokens shorter than three
// characters. Punctuation and whitespace are separators, not tokens.
func Tokens(s string) map[string]struct{} {
	s = strings.ToLower(s)
	set := make(map[string]struct{})

	start := -1
	flush := func(end int) {
		if start >= 0 && end-start >= minTokenLen {
			set[s[start:end]] = struct{}{}
		}
		start = -1
	}
	for i := 0; i < len(s); i++ {
		if isWordByte(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(s))
	return set
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}

// Jaccard computes |A∩B| / |A∪B| over the token sets of the two
// strings. Returns 0 when either set is empty after filtering.
// Identical non-trivial texts score exactly 1.0. The result is
// bit-reproducible for given inputs.
func Jaccard(text1, text2 string) float64 {
	a := Tokens(text1)
	b := Tokens(text2)
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// Package keywords derives ranked keyword sets from free text by frequency
// counting with stopword and short-token filtering.
package keywords

import (
	"sort"

	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
)

// minTokenLength is the shortest token kept as a keyword. Tokens of one or
// two characters carry almost no signal in resumes or job descriptions.
const minTokenLength = 3

// DefaultTopK bounds the keyword set length when callers pass no explicit cap
const DefaultTopK = 20

// Extract derives the top-k keywords from raw text. Tokens are normalized,
// then filtered: stopwords, tokens shorter than three characters, and tokens
// containing non-letters are discarded. Survivors are counted and ranked by
// frequency descending; ties keep first-occurrence order so that repeated
// runs over identical input yield identical sets. Empty input yields an
// empty set. Extract is pure and safe for concurrent use.
func Extract(text string, topK int) types.KeywordSet {
	if topK <= 0 {
		topK = DefaultTopK
	}

	tokens := parsing.Tokenize(text)
	if len(tokens) == 0 {
		return types.KeywordSet{}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, token := range tokens {
		if len(token) < minTokenLength || IsStopword(token) || !isAlphabetic(token) {
			continue
		}
		if _, seen := counts[token]; !seen {
			firstSeen[token] = order
			order++
		}
		counts[token]++
	}

	ranked := make(types.KeywordSet, 0, len(counts))
	for token, count := range counts {
		ranked = append(ranked, types.Keyword{Token: token, Count: count})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Token] < firstSeen[ranked[j].Token]
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// isAlphabetic reports whether the token consists solely of ASCII letters.
// Normalization has already stripped everything outside [a-z0-9 ], so this
// only has to reject tokens containing digits.
func isAlphabetic(token string) bool {
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

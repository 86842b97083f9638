// Package lexical implements TF-IDF weighted cosine similarity between two
// documents against a fixed, fitted vocabulary. The fitted model is loaded
// once at startup and shared read-only across concurrent scoring calls.
package lexical

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/parsing"
)

// minTermLength is the shortest token the analyzer keeps, matching the
// conventional \b\w\w+\b token pattern of TF-IDF vectorizers.
const minTermLength = 2

// Params configure vocabulary construction during Fit
type Params struct {
	NGramMin    int     `json:"ngram_min"`     // smallest n-gram span (1 = unigrams)
	NGramMax    int     `json:"ngram_max"`     // largest n-gram span (2 = bigrams)
	MaxFeatures int     `json:"max_features"`  // vocabulary cap
	MinDocFreq  int     `json:"min_doc_freq"`  // terms must appear in at least this many documents
	MaxDocRatio float64 `json:"max_doc_ratio"` // terms in more than this fraction of documents are dropped
}

// DefaultParams mirror the configuration the model has always been fitted
// with: unigrams and bigrams, 1000-term cap, min_df 1, max_df 0.95.
func DefaultParams() Params {
	return Params{
		NGramMin:    1,
		NGramMax:    2,
		MaxFeatures: 1000,
		MinDocFreq:  1,
		MaxDocRatio: 0.95,
	}
}

// Model is a fitted term-weighting model: a fixed vocabulary with one IDF
// weight per term. Models are immutable after Fit and safe for concurrent
// read access without locking.
type Model struct {
	Params     Params         `json:"params"`
	Vocabulary map[string]int `json:"vocabulary"` // term -> vector index
	IDF        []float64      `json:"idf"`        // indexed by vocabulary position
	CorpusSize int            `json:"corpus_size"`
	CreatedAt  time.Time      `json:"created_at"`
}

// analyze converts raw text into the term stream the model indexes:
// normalized tokens with stopwords and short tokens removed, expanded into
// n-grams within the configured span.
func analyze(text string, params Params) []string {
	tokens := parsing.Tokenize(text)

	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) < minTermLength || keywords.IsStopword(token) {
			continue
		}
		kept = append(kept, token)
	}

	var terms []string
	for n := params.NGramMin; n <= params.NGramMax; n++ {
		if n < 1 {
			continue
		}
		for i := 0; i+n <= len(kept); i++ {
			terms = append(terms, strings.Join(kept[i:i+n], " "))
		}
	}
	return terms
}

// Fit builds a vocabulary and IDF weights from the given corpus. Terms are
// filtered by document frequency, then the vocabulary is capped to the most
// frequent terms corpus-wide with alphabetical tie-breaks so that fitting
// the same corpus always yields the same model.
func Fit(corpus []string, params Params) (*Model, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("cannot fit on an empty corpus")
	}

	docFreq := make(map[string]int)
	termFreq := make(map[string]int)
	for _, doc := range corpus {
		terms := analyze(doc, params)
		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			termFreq[term]++
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	numDocs := len(corpus)
	maxDocs := params.MaxDocRatio * float64(numDocs)

	candidates := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df < params.MinDocFreq || float64(df) > maxDocs {
			continue
		}
		candidates = append(candidates, term)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("vocabulary is empty after document-frequency filtering")
	}

	// Cap to the most frequent terms; alphabetical tie-break keeps Fit
	// deterministic for a given corpus.
	sort.Slice(candidates, func(i, j int) bool {
		if termFreq[candidates[i]] != termFreq[candidates[j]] {
			return termFreq[candidates[i]] > termFreq[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if params.MaxFeatures > 0 && len(candidates) > params.MaxFeatures {
		candidates = candidates[:params.MaxFeatures]
	}

	// Vector indices are assigned in sorted term order
	sort.Strings(candidates)

	model := &Model{
		Params:     params,
		Vocabulary: make(map[string]int, len(candidates)),
		IDF:        make([]float64, len(candidates)),
		CorpusSize: numDocs,
		CreatedAt:  time.Now().UTC(),
	}
	for i, term := range candidates {
		model.Vocabulary[term] = i
		// Smoothed IDF: ln((1+N)/(1+df)) + 1
		model.IDF[i] = math.Log(float64(1+numDocs)/float64(1+docFreq[term])) + 1
	}
	return model, nil
}

// Vectorize maps text to an L2-normalized TF-IDF vector over the fixed
// vocabulary. Out-of-vocabulary terms contribute zero weight; a text with no
// in-vocabulary terms yields the zero vector.
func (m *Model) Vectorize(text string) []float64 {
	vector := make([]float64, len(m.IDF))

	for _, term := range analyze(text, m.Params) {
		if idx, ok := m.Vocabulary[term]; ok {
			vector[idx] += m.IDF[idx]
		}
	}

	var norm float64
	for _, v := range vector {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}
	return vector
}

// Similarity returns the cosine similarity of two texts in [0, 1]. Empty
// normalized input on either side yields 0.0. Any internal fault during
// vectorization is recovered and mapped to 0.0 rather than propagated; this
// is the documented fallback policy for the lexical path, and the fault is
// logged so it stays observable.
func (m *Model) Similarity(textA, textB string) (sim float64) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("lexical similarity fault, falling back to 0.0", "panic", r)
			sim = 0.0
		}
	}()

	if parsing.Normalize(textA) == "" || parsing.Normalize(textB) == "" {
		return 0.0
	}

	vecA := m.Vectorize(textA)
	vecB := m.Vectorize(textB)

	// Both vectors are L2-normalized, so cosine reduces to a dot product
	var dot float64
	for i := range vecA {
		dot += vecA[i] * vecB[i]
	}

	if math.IsNaN(dot) || dot < 0 {
		return 0.0
	}
	if dot > 1 {
		return 1.0
	}
	return dot
}

// VocabularySize returns the number of terms in the fitted vocabulary
func (m *Model) VocabularySize() int {
	return len(m.Vocabulary)
}

// Package scoring orchestrates the full analysis pipeline: it runs the
// lexical and semantic similarity engines over a resume/job-description
// pair, combines their scores, and assembles the AnalysisResult.
package scoring

import (
	"math"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Aggregator combines the two engine scores into one. The semantic engine is
// the stronger signal when available, so it carries the larger weight; the
// split is a deliberate design decision and must not change silently.
type Aggregator struct {
	SemanticWeight float64
	LexicalWeight  float64
}

// NewAggregator builds an aggregator with the given convex weights. Callers
// are expected to have validated that the weights sum to 1.
func NewAggregator(semanticWeight, lexicalWeight float64) Aggregator {
	return Aggregator{SemanticWeight: semanticWeight, LexicalWeight: lexicalWeight}
}

// Combine merges the lexical score with the semantic score, when present,
// into a SimilarityResult plus the 0-100 ATS score. With both scores the
// combined value is the weighted convex combination and the method is hybrid;
// without a semantic score the combined value equals the lexical score
// exactly and the method is lexical_only. The ATS score is derived from the
// unrounded combination so the 4-decimal display rounding of CombinedScore
// never feeds into it.
func (a Aggregator) Combine(lexical float64, semantic *float64) (types.SimilarityResult, float64) {
	result := types.SimilarityResult{
		LexicalScore:  roundTo(lexical, 4),
		SemanticScore: nil,
		Method:        types.MethodLexicalOnly,
	}

	if semantic == nil {
		result.CombinedScore = result.LexicalScore
		return result, ATSScore(lexical)
	}

	sem := roundTo(*semantic, 4)
	combined := a.SemanticWeight**semantic + a.LexicalWeight*lexical
	result.SemanticScore = &sem
	result.CombinedScore = roundTo(combined, 4)
	result.Method = types.MethodHybrid
	return result, ATSScore(combined)
}

// ATSScore scales a combined similarity in [0,1] to the 0-100 ATS scale,
// rounded to two decimals.
func ATSScore(combined float64) float64 {
	return roundTo(combined*100, 2)
}

// roundTo rounds v to the given number of decimal places
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// Package types provides type definitions for structured data used throughout the ats-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Method identifies which similarity engines contributed to a combined score
type Method string

const (
	// MethodHybrid means both the lexical and semantic engines contributed
	MethodHybrid Method = "hybrid"
	// MethodLexicalOnly means the semantic engine was unavailable and the
	// combined score equals the lexical score exactly
	MethodLexicalOnly Method = "lexical_only"
)

// Keyword is a single extracted term with its in-document frequency
type Keyword struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// KeywordSet is an ordered, deduplicated sequence of keywords, ranked by
// frequency descending with first-occurrence order as the tie-break
type KeywordSet []Keyword

// Tokens returns just the token strings, preserving rank order
func (ks KeywordSet) Tokens() []string {
	tokens := make([]string, len(ks))
	for i, kw := range ks {
		tokens[i] = kw.Token
	}
	return tokens
}

// Contains reports whether the set includes the given token
func (ks KeywordSet) Contains(token string) bool {
	for _, kw := range ks {
		if kw.Token == token {
			return true
		}
	}
	return false
}

// SimilarityResult holds the per-engine and combined similarity scores.
// CombinedScore is a convex combination of the two engine scores when both
// are present, and equals LexicalScore when the semantic engine is down.
type SimilarityResult struct {
	LexicalScore  float64  `json:"lexical_score"`
	SemanticScore *float64 `json:"semantic_score"` // nil when the semantic engine is unavailable
	CombinedScore float64  `json:"combined_score"`
	Method        Method   `json:"method"`
}

// AnalysisResult is the aggregate output of one scoring run. It is immutable
// once returned and owned by the caller; the engine keeps no reference to it.
type AnalysisResult struct {
	AnalysisID               string           `json:"analysis_id"`
	ATSScore                 float64          `json:"ats_score"`
	Similarity               SimilarityResult `json:"similarity"`
	ResumeKeywords           KeywordSet       `json:"resume_keywords"`
	JobKeywords              KeywordSet       `json:"job_keywords"`
	MissingKeywords          []string         `json:"missing_keywords"`
	KeywordOverlapCount      int              `json:"keyword_overlap_count"`
	KeywordOverlapPercentage float64          `json:"keyword_overlap_percentage"`
	ResumeWordCount          int              `json:"resume_word_count"`
	JobWordCount             int              `json:"job_word_count"`
}

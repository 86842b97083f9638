package types

// Priority indicates how urgently a resume needs rework
type Priority string

const (
	// PriorityHigh is assigned when the ATS score is below 30
	PriorityHigh Priority = "high"
	// PriorityMedium is assigned when the ATS score is in [30, 60)
	PriorityMedium Priority = "medium"
	// PriorityLow is assigned when the ATS score is 60 or above
	PriorityLow Priority = "low"
)

// SectionAdvice reports whether a canonical resume section was detected and
// what to do if it was not
type SectionAdvice struct {
	Present bool     `json:"present"`
	Advice  []string `json:"advice"`
}

// KeywordAdvice groups keyword-level optimization guidance
type KeywordAdvice struct {
	MissingCount       int      `json:"missing_count"`
	PresentCount       int      `json:"present_count"`
	Recommendations    []string `json:"recommendations"`
	SuggestedAdditions []string `json:"suggested_additions"`
	OptimizationTips   []string `json:"optimization_tips"`
}

// FormatAdvice groups layout and formatting guidance
type FormatAdvice struct {
	Warnings        []string `json:"warnings"`
	Tips            []string `json:"tips"`
	Recommendations []string `json:"recommendations"`
}

// ContentAdvice groups wording and substance guidance
type ContentAdvice struct {
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
}

// ATSAdvice groups machine-parseability guidance. CriticalIssues are surfaced
// ahead of every other action.
type ATSAdvice struct {
	CriticalIssues   []string `json:"critical_issues"`
	Recommendations  []string `json:"recommendations"`
	OptimizationTips []string `json:"optimization_tips"`
}

// Recommendation is the full suggestion bundle derived from one
// AnalysisResult. It is stateless and recomputed on every call.
type Recommendation struct {
	Priority     Priority                 `json:"priority"`
	Sections     map[string]SectionAdvice `json:"sections"`
	Keywords     KeywordAdvice            `json:"keywords"`
	Format       FormatAdvice             `json:"format"`
	Content      ContentAdvice            `json:"content"`
	ATS          ATSAdvice                `json:"ats_optimization"`
	TopActions   []string                 `json:"top_actions"`
	OverallScore int                      `json:"overall_score"`
}

package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/types"
)

func sampleAnalysis() *types.AnalysisResult {
	semantic := 0.9123
	return &types.AnalysisResult{
		AnalysisID: "test-id",
		ATSScore:   72.45,
		Similarity: types.SimilarityResult{
			LexicalScore:  0.4812,
			SemanticScore: &semantic,
			CombinedScore: 0.783,
			Method:        types.MethodHybrid,
		},
		ResumeKeywords: types.KeywordSet{
			{Token: "python", Count: 4},
			{Token: "django", Count: 2},
		},
		JobKeywords: types.KeywordSet{
			{Token: "python", Count: 5},
			{Token: "aws", Count: 3},
		},
		MissingKeywords:          []string{"aws", "terraform"},
		KeywordOverlapCount:      1,
		KeywordOverlapPercentage: 50.0,
		ResumeWordCount:          320,
		JobWordCount:             180,
	}
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(sampleAnalysis())
	output := buf.String()

	assert.Contains(t, output, "ANALYSIS RESULT")
	assert.Contains(t, output, "72.45")
	assert.Contains(t, output, "hybrid")
	assert.Contains(t, output, "0.4812")
	assert.Contains(t, output, "0.9123")
	assert.Contains(t, output, "aws")
	assert.Contains(t, output, "terraform")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis_LexicalOnlyOmitsSemanticLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := sampleAnalysis()
	analysis.Similarity.SemanticScore = nil
	analysis.Similarity.Method = types.MethodLexicalOnly

	p.PrintAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "lexical_only")
	assert.NotContains(t, output, "Semantic:")
}

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywords(sampleAnalysis())
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED KEYWORDS")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "×4")
	assert.Contains(t, output, "×5")
}

func TestPrintRecommendation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := &types.Recommendation{
		Priority:     types.PriorityMedium,
		OverallScore: 75,
		Sections: map[string]types.SectionAdvice{
			"summary":    {Present: false, Advice: []string{"Add a professional summary section"}},
			"experience": {Present: true},
		},
		Format: types.FormatAdvice{
			Warnings: []string{"Resume is too short - consider adding more detail"},
		},
		ATS: types.ATSAdvice{
			CriticalIssues: []string{"Remove tabs and extra spaces"},
		},
		TopActions: []string{"Remove tabs and extra spaces", "Add summary section"},
	}

	p.PrintRecommendation(rec)
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "MEDIUM")
	assert.Contains(t, output, "75 / 100")
	assert.Contains(t, output, "summary")
	assert.Contains(t, output, "1. Remove tabs and extra spaces")
	assert.Contains(t, output, "✗ Remove tabs and extra spaces")
	assert.Contains(t, output, "too short")
}

func TestPrintRecommendation_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendation(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSemanticStatus(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSemanticStatus("ready", "text-embedding-004")
	assert.Contains(t, buf.String(), "ready")
	assert.Contains(t, buf.String(), "text-embedding-004")

	buf.Reset()
	p.PrintSemanticStatus("unavailable", "")
	assert.Contains(t, buf.String(), "unavailable")
	assert.NotContains(t, buf.String(), "()")
}

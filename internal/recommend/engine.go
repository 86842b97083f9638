package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// maxCategoryExamples is the number of example keywords quoted per
	// category recommendation
	maxCategoryExamples = 3
	// maxSuggestedPerCategory bounds the flat suggested-additions list
	maxSuggestedPerCategory = 5
	// maxTopActions bounds the prioritized action list
	maxTopActions = 5
)

// Engine generates recommendations from analysis results. It holds only the
// static thresholds and is safe for concurrent use.
type Engine struct {
	thresholds config.Thresholds
}

// New creates a recommendation engine with the given thresholds
func New(th config.Thresholds) *Engine {
	return &Engine{thresholds: th}
}

// Generate derives the full suggestion bundle from an analysis result and
// the raw resume text (needed for section-presence heuristics and
// formatting checks). Generate is a pure function of its inputs: identical
// inputs always produce identical recommendations.
func (e *Engine) Generate(analysis *types.AnalysisResult, resumeText string) *types.Recommendation {
	rec := &types.Recommendation{
		Priority: e.priorityFor(analysis.ATSScore),
	}

	rec.Sections = analyzeSections(resumeText)
	rec.Keywords = e.analyzeKeywords(analysis)
	rec.Format = e.analyzeFormat(resumeText, analysis.ResumeWordCount)
	rec.Content = e.analyzeContent(analysis.ATSScore)
	rec.ATS = analyzeATS(resumeText)
	rec.TopActions = topActions(rec)
	rec.OverallScore = e.overallScore(rec)

	return rec
}

// priorityFor maps an ATS score to a priority level via the configured
// cut-offs
func (e *Engine) priorityFor(atsScore float64) types.Priority {
	switch {
	case atsScore < e.thresholds.HighBelow:
		return types.PriorityHigh
	case atsScore < e.thresholds.MediumBelow:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// analyzeSections checks the resume for the canonical section headers
func analyzeSections(resumeText string) map[string]types.SectionAdvice {
	lower := strings.ToLower(resumeText)

	sections := make(map[string]types.SectionAdvice, len(sectionRules))
	for _, rule := range sectionRules {
		present := false
		for _, alias := range rule.Aliases {
			if strings.Contains(lower, alias) {
				present = true
				break
			}
		}

		advice := types.SectionAdvice{Present: present, Advice: []string{}}
		if !present {
			advice.Advice = append(advice.Advice, rule.Advice)
		}
		sections[rule.Name] = advice
	}
	return sections
}

// analyzeKeywords categorizes the missing keywords and emits per-category
// recommendations plus gated optimization tips
func (e *Engine) analyzeKeywords(analysis *types.AnalysisResult) types.KeywordAdvice {
	advice := types.KeywordAdvice{
		MissingCount:       len(analysis.MissingKeywords),
		PresentCount:       len(analysis.ResumeKeywords),
		Recommendations:    []string{},
		SuggestedAdditions: []string{},
		OptimizationTips:   []string{},
	}

	// Every non-empty bucket produces advice, including keywords no fixed
	// category claimed
	byCategory := categorize(analysis.MissingKeywords)
	for _, rule := range categoryRules {
		appendCategoryAdvice(&advice, rule.Label, byCategory[rule.Name])
	}
	appendCategoryAdvice(&advice, categoryOther, byCategory[categoryOther])

	stats := keywordStats{
		PresentCount:      advice.PresentCount,
		MissingCount:      advice.MissingCount,
		OverlapPercentage: analysis.KeywordOverlapPercentage,
	}
	for _, rule := range tipRules(e.thresholds) {
		if len(advice.OptimizationTips) >= maxOptimizationTips {
			break
		}
		if rule.When(stats) {
			advice.OptimizationTips = append(advice.OptimizationTips, rule.Tip)
		}
	}

	return advice
}

// appendCategoryAdvice emits one recommendation line with up to three
// example keywords for a non-empty bucket and adds up to five of its members
// to the flat suggestion list
func appendCategoryAdvice(advice *types.KeywordAdvice, label string, members []string) {
	if len(members) == 0 {
		return
	}

	examples := members
	if len(examples) > maxCategoryExamples {
		examples = examples[:maxCategoryExamples]
	}
	advice.Recommendations = append(advice.Recommendations,
		fmt.Sprintf("Add %s keywords: %s", label, strings.Join(examples, ", ")))

	suggested := members
	if len(suggested) > maxSuggestedPerCategory {
		suggested = suggested[:maxSuggestedPerCategory]
	}
	advice.SuggestedAdditions = append(advice.SuggestedAdditions, suggested...)
}

// categorize buckets keywords by the first category rule whose member list
// contains them as a substring; unmatched keywords land in "other"
func categorize(missingKeywords []string) map[string][]string {
	buckets := make(map[string][]string)

	for _, keyword := range missingKeywords {
		lower := strings.ToLower(keyword)

		matched := false
		for _, rule := range categoryRules {
			for _, member := range rule.Members {
				if strings.Contains(lower, member) {
					buckets[rule.Name] = append(buckets[rule.Name], keyword)
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			buckets[categoryOther] = append(buckets[categoryOther], keyword)
		}
	}
	return buckets
}

// analyzeFormat applies the resume-length bounds and flags ATS-unfriendly
// whitespace
func (e *Engine) analyzeFormat(resumeText string, wordCount int) types.FormatAdvice {
	advice := types.FormatAdvice{
		Warnings:        []string{},
		Tips:            []string{},
		Recommendations: formatRecommendations,
	}

	if wordCount < e.thresholds.MinResumeWords {
		advice.Warnings = append(advice.Warnings, "Resume is too short - consider adding more detail")
	} else if wordCount > e.thresholds.MaxResumeWords {
		advice.Warnings = append(advice.Warnings, "Resume is too long - consider condensing content")
	}

	if strings.Contains(resumeText, "  ") {
		advice.Tips = append(advice.Tips, "Remove extra spaces for better ATS parsing")
	}
	if strings.Contains(resumeText, "\t") {
		advice.Tips = append(advice.Tips, "Replace tabs with spaces for better ATS compatibility")
	}

	return advice
}

// analyzeContent maps the score band to substance-level guidance
func (e *Engine) analyzeContent(atsScore float64) types.ContentAdvice {
	advice := types.ContentAdvice{
		Strengths:       []string{},
		Improvements:    []string{},
		Recommendations: contentRecommendations,
	}

	switch {
	case atsScore < 50:
		advice.Improvements = append(advice.Improvements, lowScoreImprovements...)
	case atsScore < 70:
		advice.Improvements = append(advice.Improvements, midScoreImprovements...)
	default:
		advice.Strengths = append(advice.Strengths, highScoreStrength)
	}
	return advice
}

// analyzeATS flags parsing hazards for automated screeners. Tab and
// double-space runs or non-ASCII characters are critical issues; the static
// guidance lists ride along on every result.
func analyzeATS(resumeText string) types.ATSAdvice {
	advice := types.ATSAdvice{
		CriticalIssues:   []string{},
		Recommendations:  atsRecommendations,
		OptimizationTips: atsOptimizationTips,
	}

	if strings.Contains(resumeText, "\t") || strings.Contains(resumeText, "  ") {
		advice.CriticalIssues = append(advice.CriticalIssues, "Remove tabs and extra spaces")
	}
	if nonASCII.MatchString(resumeText) {
		advice.CriticalIssues = append(advice.CriticalIssues, "Remove special characters and symbols")
	}

	return advice
}

// topActions collects the highest-leverage actions: critical ATS issues
// first, then absent sections, then keyword recommendations, capped at
// maxTopActions.
func topActions(rec *types.Recommendation) []string {
	actions := make([]string, 0, maxTopActions)

	actions = append(actions, rec.ATS.CriticalIssues...)
	for _, rule := range sectionRules {
		if len(actions) >= maxTopActions {
			break
		}
		if section, ok := rec.Sections[rule.Name]; ok && !section.Present {
			actions = append(actions, fmt.Sprintf("Add %s section", rule.Name))
		}
	}
	actions = append(actions, rec.Keywords.Recommendations...)

	if len(actions) > maxTopActions {
		actions = actions[:maxTopActions]
	}
	return actions
}

// overallScore applies the deduction schedule: priority, missing sections,
// and missing-keyword volume, clamped to [0, 100]
func (e *Engine) overallScore(rec *types.Recommendation) int {
	score := 100

	score -= priorityDeductions[rec.Priority]

	for _, section := range rec.Sections {
		if !section.Present {
			score -= missingSectionDeduction
		}
	}

	switch {
	case rec.Keywords.MissingCount > e.thresholds.ManyMissingKeywords:
		score -= manyMissingKeywordsDeduction
	case rec.Keywords.MissingCount > e.thresholds.SomeMissingKeywords:
		score -= someMissingKeywordsDeduction
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Package recommend synthesizes prioritized, categorized improvement
// suggestions from an analysis result. All rules live in declarative tables
// evaluated by a small generic walker, so individual thresholds and word
// lists can be tested and extended without touching control flow.
package recommend

import (
	"regexp"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// nonASCII matches characters automated screeners commonly mangle
var nonASCII = regexp.MustCompile(`[^\x00-\x7F]`)

// sectionRule describes one canonical resume section: the header aliases
// that mark it present and the advice emitted when it is absent.
type sectionRule struct {
	Name    string
	Aliases []string
	Advice  string
}

// sectionRules are checked by lowercase substring search over the raw
// resume text
var sectionRules = []sectionRule{
	{
		Name:    "summary",
		Aliases: []string{"summary", "objective", "profile"},
		Advice:  "Add a professional summary section",
	},
	{
		Name:    "experience",
		Aliases: []string{"experience", "employment", "work history"},
		Advice:  "Add work experience section",
	},
	{
		Name:    "skills",
		Aliases: []string{"skills", "technical skills", "competencies"},
		Advice:  "Add skills section",
	},
	{
		Name:    "education",
		Aliases: []string{"education", "academic", "degree"},
		Advice:  "Add education section",
	},
}

// categoryRule assigns missing keywords to a category by substring
// membership. Rules are evaluated in order; the first match wins and
// unmatched keywords fall through to the "other" bucket.
type categoryRule struct {
	Name    string
	Label   string
	Members []string
}

var categoryRules = []categoryRule{
	{
		Name:  "action_verbs",
		Label: "action verb",
		Members: []string{
			"achieved", "developed", "implemented", "managed", "led",
			"created", "designed", "optimized", "improved", "increased",
			"reduced", "solved", "delivered", "executed", "coordinated",
			"collaborated", "analyzed", "researched", "innovated", "transformed",
		},
	},
	{
		Name:  "technical_skills",
		Label: "technical skill",
		Members: []string{
			"programming", "software development", "database management",
			"cloud computing", "machine learning", "data analysis",
			"web development", "mobile development", "devops", "agile",
			"scrum", "version control", "api development", "microservices",
		},
	},
	{
		Name:  "soft_skills",
		Label: "soft skill",
		Members: []string{
			"leadership", "communication", "problem solving", "teamwork",
			"project management", "time management", "adaptability",
			"critical thinking", "creativity", "attention to detail",
		},
	},
	{
		Name:  "quantifiers",
		Label: "quantifier",
		Members: []string{
			"increased by", "reduced by", "improved by", "achieved",
			"managed", "led team of", "budget of", "revenue of",
			"saved", "generated", "delivered", "completed",
		},
	},
}

// categoryOther buckets keywords no rule claimed
const categoryOther = "other"

// keywordStats feed the gated optimization tips
type keywordStats struct {
	PresentCount      int
	MissingCount      int
	OverlapPercentage float64
}

// tipRule emits an optimization tip when its gate holds
type tipRule struct {
	When func(keywordStats) bool
	Tip  string
}

func tipRules(th config.Thresholds) []tipRule {
	return []tipRule{
		{
			When: func(s keywordStats) bool { return s.PresentCount < th.FewResumeKeywords },
			Tip:  "Increase keyword density by including more relevant technical terms",
		},
		{
			When: func(s keywordStats) bool { return s.MissingCount > th.ManyMissingKeywords },
			Tip:  "Focus on adding the most important missing keywords first",
		},
		{
			When: func(s keywordStats) bool { return s.OverlapPercentage < 25 },
			Tip:  "Mirror the job description's terminology where it matches your experience",
		},
	}
}

// maxOptimizationTips bounds the gated tip list
const maxOptimizationTips = 5

// priorityDeductions is the recommendation-score penalty per priority level
var priorityDeductions = map[types.Priority]int{
	types.PriorityHigh:   30,
	types.PriorityMedium: 15,
	types.PriorityLow:    0,
}

// Score deduction schedule beyond priority
const (
	missingSectionDeduction      = 10
	manyMissingKeywordsDeduction = 20
	someMissingKeywordsDeduction = 10
)

// Static advice lists carried into every recommendation
var (
	formatRecommendations = []string{
		"Use standard section headers (Experience, Education, Skills)",
		"Use bullet points for easy scanning",
		"Keep formatting simple and consistent",
		"Use standard fonts (Arial, Calibri, Times New Roman)",
	}

	contentRecommendations = []string{
		"Use action verbs to start bullet points",
		"Include specific technologies and tools",
		"Quantify achievements with numbers",
		"Tailor content to the specific job posting",
		"Use industry-specific terminology",
	}

	lowScoreImprovements = []string{
		"Rewrite job descriptions to match the target role",
		"Include specific technologies and tools mentioned in the job posting",
		"Quantify achievements with numbers and metrics",
	}

	midScoreImprovements = []string{
		"Fine-tune keyword usage to better match job requirements",
		"Add more specific technical details",
		"Include more quantifiable achievements",
	}

	highScoreStrength = "Good keyword alignment with job requirements"

	atsRecommendations = []string{
		"Use standard section headers",
		"Avoid tables and complex formatting",
		"Use simple bullet points",
		"Include relevant keywords naturally",
		"Save as PDF for best compatibility",
	}

	atsOptimizationTips = []string{
		"Test your resume with ATS checkers",
		"Use keywords from the job description",
		"Keep formatting simple and clean",
		"Use standard fonts and sizes",
		"Avoid graphics and images",
	}
)

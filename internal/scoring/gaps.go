package scoring

import (
	"github.com/jonathan/ats-scorer/internal/types"
)

// MissingKeywords returns the job keywords absent from the resume keyword
// set. KeywordSets are already ordered by frequency descending, so walking
// the job set in order yields the gap list ordered by job-description
// frequency descending. The result is truncated to cap entries.
func MissingKeywords(resumeKeywords, jobKeywords types.KeywordSet, cap int) []string {
	missing := make([]string, 0, len(jobKeywords))
	for _, kw := range jobKeywords {
		if !resumeKeywords.Contains(kw.Token) {
			missing = append(missing, kw.Token)
		}
	}
	if cap > 0 && len(missing) > cap {
		missing = missing[:cap]
	}
	return missing
}

// KeywordOverlap returns the number of tokens the two sets share and that
// count as a percentage of the job keyword set. An empty job set yields 0
// percent; there is no division by zero.
func KeywordOverlap(resumeKeywords, jobKeywords types.KeywordSet) (int, float64) {
	if len(jobKeywords) == 0 {
		return 0, 0
	}

	count := 0
	for _, kw := range jobKeywords {
		if resumeKeywords.Contains(kw.Token) {
			count++
		}
	}
	percentage := roundTo(100*float64(count)/float64(len(jobKeywords)), 2)
	return count, percentage
}

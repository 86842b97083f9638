// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of an analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ATS Score:  %.2f / 100\n", result.ATSScore))
	sb.WriteString(fmt.Sprintf("Method:     %s\n", result.Similarity.Method))
	sb.WriteString(fmt.Sprintf("Lexical:    %.4f\n", result.Similarity.LexicalScore))
	if result.Similarity.SemanticScore != nil {
		sb.WriteString(fmt.Sprintf("Semantic:   %.4f\n", *result.Similarity.SemanticScore))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Resume words: %d   Job words: %d\n",
		result.ResumeWordCount, result.JobWordCount))
	sb.WriteString(fmt.Sprintf("Keyword overlap: %d (%.2f%%)\n",
		result.KeywordOverlapCount, result.KeywordOverlapPercentage))

	if len(result.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(result.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingKeywords[i]))
		}
		if len(result.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingKeywords)-maxItemsToShow))
		}
	}

	p.printBox("ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs the extracted keyword sets side by side.
func (p *Printer) PrintKeywords(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Resume keywords (%d):\n", len(result.ResumeKeywords)))
	count := min(len(result.ResumeKeywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := result.ResumeKeywords[i]
		sb.WriteString(fmt.Sprintf("  %-20s ×%d\n", kw.Token, kw.Count))
	}
	if len(result.ResumeKeywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.ResumeKeywords)-maxItemsToShow))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Job keywords (%d):\n", len(result.JobKeywords)))
	count = min(len(result.JobKeywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := result.JobKeywords[i]
		sb.WriteString(fmt.Sprintf("  %-20s ×%d\n", kw.Token, kw.Count))
	}
	if len(result.JobKeywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.JobKeywords)-maxItemsToShow))
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendation outputs the improvement plan with priority and top actions.
func (p *Printer) PrintRecommendation(rec *types.Recommendation) {
	if rec == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Priority:       %s\n", strings.ToUpper(string(rec.Priority))))
	sb.WriteString(fmt.Sprintf("Overall score:  %d / 100\n", rec.OverallScore))
	sb.WriteString("\n")

	missing := []string{}
	for name, section := range rec.Sections {
		if !section.Present {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sb.WriteString(fmt.Sprintf("Missing sections: %s\n\n", strings.Join(missing, ", ")))
	}

	if len(rec.TopActions) > 0 {
		sb.WriteString("Top actions:\n")
		for i, action := range rec.TopActions {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, action))
		}
	}

	if len(rec.ATS.CriticalIssues) > 0 {
		sb.WriteString("\n")
		for _, issue := range rec.ATS.CriticalIssues {
			sb.WriteString(fmt.Sprintf("✗ %s\n", issue))
		}
	}

	if len(rec.Format.Warnings) > 0 {
		sb.WriteString("\n")
		for _, warning := range rec.Format.Warnings {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", warning))
		}
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSemanticStatus reports which embedding model is in use, if any.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSemanticStatus(status string, model string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	if model != "" {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("Semantic engine: %s (%s)", status, model))
	} else {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("Semantic engine: %s", status))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

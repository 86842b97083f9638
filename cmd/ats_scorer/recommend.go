package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/recommend"
	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Score a resume and generate improvement recommendations",
	Long:  "Run the full pipeline: score a resume against a job description, then derive prioritized section, keyword, format, and content recommendations from the result.",
	RunE:  runRecommend,
}

var (
	recommendResumeFile string
	recommendJobFile    string
	recommendConfigFile string
	recommendOutputFile string
	recommendAPIKey     string
	recommendVerbose    bool
	recommendValidate   bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendResumeFile, "resume", "r", "", "Path to resume text file (required)")
	recommendCmd.Flags().StringVarP(&recommendJobFile, "job", "j", "", "Path to job description text file (required)")
	recommendCmd.Flags().StringVarP(&recommendConfigFile, "config", "c", "", "Path to JSON config file (optional)")
	recommendCmd.Flags().StringVarP(&recommendOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	recommendCmd.Flags().StringVar(&recommendAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print formatted report to stderr")
	recommendCmd.Flags().BoolVar(&recommendValidate, "validate", false, "Validate output against the shipped schemas")

	rootCmd.AddCommand(recommendCmd)
}

// scoringReport pairs the analysis with the recommendations derived from it
type scoringReport struct {
	Analysis       *types.AnalysisResult `json:"analysis"`
	Recommendation *types.Recommendation `json:"recommendation"`
}

func runRecommend(_ *cobra.Command, _ []string) error {
	resumeText, err := readTextFile(recommendResumeFile, "resume")
	if err != nil {
		return err
	}
	jobText, err := readTextFile(recommendJobFile, "job")
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(recommendConfigFile, recommendAPIKey)
	if err != nil {
		return err
	}

	ctx := context.Background()
	engine, err := scoring.Bootstrap(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize scoring engine: %w", err)
	}
	defer func() { _ = engine.Close() }()

	analysis := engine.Analyze(ctx, resumeText, jobText)
	recommendation := recommend.New(cfg.Thresholds).Generate(analysis, resumeText)

	if recommendVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintAnalysis(analysis)
		printer.PrintRecommendation(recommendation)
	}

	if recommendValidate {
		analysisJSON, err := json.Marshal(analysis)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := validateAgainstSchema(schemas.AnalysisResultSchema, analysisJSON); err != nil {
			return err
		}

		recJSON, err := json.Marshal(recommendation)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := validateAgainstSchema(schemas.RecommendationSchema, recJSON); err != nil {
			return err
		}
	}

	report := scoringReport{Analysis: analysis, Recommendation: recommendation}
	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return writeOutput(recommendOutputFile, jsonBytes)
}

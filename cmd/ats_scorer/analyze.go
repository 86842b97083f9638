package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/scoring"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long:  "Score a resume text file against a job description text file, producing an AnalysisResult JSON with the ATS score, similarity breakdown, keyword sets, and gaps.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeConfigFile string
	analyzeOutputFile string
	analyzeAPIKey     string
	analyzeVerbose    bool
	analyzeValidate   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted analysis summary to stderr")
	analyzeCmd.Flags().BoolVar(&analyzeValidate, "validate", false, "Validate output against the analysis result schema")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	resumeText, err := readTextFile(analyzeResumeFile, "resume")
	if err != nil {
		return err
	}
	jobText, err := readTextFile(analyzeJobFile, "job")
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(analyzeConfigFile, analyzeAPIKey)
	if err != nil {
		return err
	}

	ctx := context.Background()
	engine, err := scoring.Bootstrap(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize scoring engine: %w", err)
	}
	defer func() { _ = engine.Close() }()

	result := engine.Analyze(ctx, resumeText, jobText)

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintSemanticStatus(string(engine.SemanticStatus()), engine.SemanticModel())
		printer.PrintKeywords(result)
		printer.PrintAnalysis(result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeValidate {
		if err := validateAgainstSchema(schemas.AnalysisResultSchema, jsonBytes); err != nil {
			return err
		}
	}

	return writeOutput(analyzeOutputFile, jsonBytes)
}

// validateAgainstSchema checks output JSON against a shipped schema. Schema
// load problems degrade to a warning; actual validation failures are errors.
func validateAgainstSchema(schemaRelPath string, jsonBytes []byte) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: schema %s not found, skipping validation\n", schemaRelPath)
		return nil
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not read schema %s: %v\n", schemaPath, err)
		return nil
	}

	if err := schemas.ValidateJSONString(string(schemaContent), string(jsonBytes)); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
	}
	return nil
}

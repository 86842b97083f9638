package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

// writeAnalyzeFixtures lays out resume, job, and config files and points the
// analyze command's flags at them
func writeAnalyzeFixtures(t *testing.T) string {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()

	resumePath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath,
		[]byte("Python developer with Django and REST API experience"), 0o644))

	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath,
		[]byte("Looking for a Python engineer with Django and AWS skills"), 0o644))

	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath,
		[]byte(fmt.Sprintf(`{"models_dir": %q}`, filepath.Join(dir, "models"))), 0o644))

	outPath := filepath.Join(dir, "out.json")

	analyzeResumeFile = resumePath
	analyzeJobFile = jobPath
	analyzeConfigFile = configPath
	analyzeOutputFile = outPath
	analyzeAPIKey = ""
	analyzeVerbose = false
	analyzeValidate = false

	return outPath
}

func TestRunAnalyze_EndToEnd(t *testing.T) {
	outPath := writeAnalyzeFixtures(t)

	require.NoError(t, runAnalyze(nil, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &result))

	// Without an API key the pipeline degrades to lexical-only scoring
	assert.Equal(t, types.MethodLexicalOnly, result.Similarity.Method)
	assert.Nil(t, result.Similarity.SemanticScore)
	assert.NotEmpty(t, result.AnalysisID)
	assert.True(t, result.ResumeKeywords.Contains("python"))
	assert.Contains(t, result.MissingKeywords, "aws")
}

func TestRunAnalyze_ValidatesOutput(t *testing.T) {
	writeAnalyzeFixtures(t)
	analyzeValidate = true
	defer func() { analyzeValidate = false }()

	assert.NoError(t, runAnalyze(nil, nil))
}

func TestRunAnalyze_MissingResumeFile(t *testing.T) {
	writeAnalyzeFixtures(t)
	analyzeResumeFile = ""

	assert.Error(t, runAnalyze(nil, nil))
}

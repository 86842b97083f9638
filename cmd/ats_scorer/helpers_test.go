package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := resolveConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.SemanticWeight)
	assert.Equal(t, 0.3, cfg.LexicalWeight)
	assert.Equal(t, "models", cfg.ModelsDir)
	assert.Empty(t, cfg.APIKey)
}

func TestResolveConfig_FileValuesWinOverDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"models_dir": "/tmp/models",
		"semantic_weight": 0.5,
		"lexical_weight": 0.5
	}`), 0o644))

	cfg, err := resolveConfig(path, "")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/models", cfg.ModelsDir)
	assert.Equal(t, 0.5, cfg.SemanticWeight)
	assert.Equal(t, 0.5, cfg.LexicalWeight)
	// Unset fields fall back to defaults
	assert.Equal(t, 20, cfg.TopK)
}

func TestResolveConfig_APIKeyPrecedence(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_key": "from-file"}`), 0o644))

	// Flag wins over file and env
	cfg, err := resolveConfig(path, "from-flag")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.APIKey)

	// File wins over env
	cfg, err = resolveConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIKey)

	// Env is the last resort
	cfg, err = resolveConfig("", "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestResolveConfig_RejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"semantic_weight": 0.9,
		"lexical_weight": 0.9
	}`), 0o644))

	_, err := resolveConfig(path, "")
	assert.Error(t, err)
}

func TestResolveConfig_MissingFile(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "nope.json"), "")
	assert.Error(t, err)
}

func TestReadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python developer"), 0o644))

	text, err := readTextFile(path, "resume")
	require.NoError(t, err)
	assert.Equal(t, "Python developer", text)
}

func TestReadTextFile_Required(t *testing.T) {
	_, err := readTextFile("", "resume")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file is required")
}

func TestReadTextFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\t"), 0o644))

	_, err := readTextFile(path, "job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestWriteOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeOutput(path, []byte(`{"ok": true}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(data))
}

func TestLoadCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("software engineer role\n\n  data scientist role  \n"), 0o644))

	corpus, err := loadCorpus(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"software engineer role", "data scientist role"}, corpus)
}

func TestLoadCorpus_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n  \n"), 0o644))

	_, err := loadCorpus(path)
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["analyze"])
	assert.True(t, names["recommend"])
	assert.True(t, names["fit-model"])
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfig_BuiltinValues(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1000, cfg.VocabularyCap)
	assert.Equal(t, 1, cfg.NGramMin)
	assert.Equal(t, 2, cfg.NGramMax)
	assert.Equal(t, 0.95, cfg.MaxDocRatio)
	assert.Equal(t, 0.7, cfg.SemanticWeight)
	assert.Equal(t, 0.3, cfg.LexicalWeight)
	assert.Equal(t, 20, cfg.TopK)
	assert.Equal(t, 10, cfg.MissingKeywordCap)
	assert.Equal(t, []string{"text-embedding-004", "embedding-001"}, cfg.EmbeddingModels)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config JSON")
}

func TestLoad_MergeWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"top_k": 30, "models_dir": "/var/lib/ats/models"}`), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)

	cfg := loaded.MergeWithDefaults(DefaultConfig())

	// File values win
	assert.Equal(t, 30, cfg.TopK)
	assert.Equal(t, "/var/lib/ats/models", cfg.ModelsDir)
	// Unset values fall back to defaults
	assert.Equal(t, 1000, cfg.VocabularyCap)
	assert.Equal(t, 0.7, cfg.SemanticWeight)
	assert.Equal(t, float64(60), cfg.Thresholds.MediumBelow)

	assert.NoError(t, cfg.Validate())
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SemanticWeight = 0.8
	cfg.LexicalWeight = 0.3

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1")
}

func TestValidate_NGramRangeOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NGramMin = 3
	cfg.NGramMax = 2

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ngram_max")
}

func TestValidate_MaxDocRatioRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDocRatio = 1.5

	assert.Error(t, cfg.Validate())
}

func TestValidate_PriorityThresholdOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Thresholds.HighBelow = 70
	cfg.Thresholds.MediumBelow = 60

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "medium_below")
}

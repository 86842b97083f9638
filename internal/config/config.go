// Package config provides configuration loading and validation for the
// scoring engine. All values are static, process-wide, and set at startup;
// there are no per-request overrides.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// weightEpsilon is the tolerance for the weights-sum-to-one check
const weightEpsilon = 1e-9

// Thresholds hold the recommendation engine's rule constants. They are
// empirically chosen defaults, exposed here as tunables rather than treated
// as load-bearing correctness requirements.
type Thresholds struct {
	// Priority cut-offs: score < HighBelow is high priority, score in
	// [HighBelow, MediumBelow) is medium, everything above is low.
	HighBelow   float64 `json:"high_below,omitempty" validate:"gte=0,lte=100"`
	MediumBelow float64 `json:"medium_below,omitempty" validate:"gte=0,lte=100"`

	// Resume length bounds in words
	MinResumeWords int `json:"min_resume_words,omitempty" validate:"gte=0"`
	MaxResumeWords int `json:"max_resume_words,omitempty" validate:"gte=0"`

	// Keyword-count gates for optimization tips and score deductions
	FewResumeKeywords   int `json:"few_resume_keywords,omitempty" validate:"gte=0"`
	SomeMissingKeywords int `json:"some_missing_keywords,omitempty" validate:"gte=0"`
	ManyMissingKeywords int `json:"many_missing_keywords,omitempty" validate:"gte=0"`
}

// Config holds every constant the engine consumes. Load it once at process
// start; the engine treats it as immutable afterwards.
type Config struct {
	// Model storage
	ModelsDir        string `json:"models_dir,omitempty"`
	LexicalModelName string `json:"lexical_model_name,omitempty"`

	// Semantic engine: ordered candidate embedding models, tried at startup
	EmbeddingModels []string `json:"embedding_models,omitempty"`
	APIKey          string   `json:"api_key,omitempty"`

	// Keyword extraction
	TopK              int `json:"top_k,omitempty" validate:"gt=0"`
	ResultKeywordCap  int `json:"result_keyword_cap,omitempty" validate:"gt=0"`
	MissingKeywordCap int `json:"missing_keyword_cap,omitempty" validate:"gt=0"`

	// TF-IDF vocabulary construction
	VocabularyCap int     `json:"vocabulary_cap,omitempty" validate:"gt=0"`
	NGramMin      int     `json:"ngram_min,omitempty" validate:"gt=0"`
	NGramMax      int     `json:"ngram_max,omitempty" validate:"gt=0"`
	MinDocFreq    int     `json:"min_doc_freq,omitempty" validate:"gt=0"`
	MaxDocRatio   float64 `json:"max_doc_ratio,omitempty" validate:"gt=0,lte=1"`

	// Score aggregation. Semantic similarity is the stronger signal when
	// available, hence the 0.7/0.3 split; the weights must sum to 1.
	SemanticWeight float64 `json:"semantic_weight,omitempty" validate:"gte=0,lte=1"`
	LexicalWeight  float64 `json:"lexical_weight,omitempty" validate:"gte=0,lte=1"`

	Thresholds Thresholds `json:"thresholds,omitempty"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		ModelsDir:         "models",
		LexicalModelName:  "default",
		EmbeddingModels:   []string{"text-embedding-004", "embedding-001"},
		TopK:              20,
		ResultKeywordCap:  15,
		MissingKeywordCap: 10,
		VocabularyCap:     1000,
		NGramMin:          1,
		NGramMax:          2,
		MinDocFreq:        1,
		MaxDocRatio:       0.95,
		SemanticWeight:    0.7,
		LexicalWeight:     0.3,
		Thresholds: Thresholds{
			HighBelow:           30,
			MediumBelow:         60,
			MinResumeWords:      200,
			MaxResumeWords:      800,
			FewResumeKeywords:   10,
			SomeMissingKeywords: 5,
			ManyMissingKeywords: 10,
		},
	}
}

// Load reads configuration from a JSON file
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Config file values win over defaults; CLI flags are applied on
// top by the command layer.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ModelsDir == "" {
		result.ModelsDir = defaults.ModelsDir
	}
	if result.LexicalModelName == "" {
		result.LexicalModelName = defaults.LexicalModelName
	}
	if len(result.EmbeddingModels) == 0 {
		result.EmbeddingModels = defaults.EmbeddingModels
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.ResultKeywordCap == 0 {
		result.ResultKeywordCap = defaults.ResultKeywordCap
	}
	if result.MissingKeywordCap == 0 {
		result.MissingKeywordCap = defaults.MissingKeywordCap
	}
	if result.VocabularyCap == 0 {
		result.VocabularyCap = defaults.VocabularyCap
	}
	if result.NGramMin == 0 {
		result.NGramMin = defaults.NGramMin
	}
	if result.NGramMax == 0 {
		result.NGramMax = defaults.NGramMax
	}
	if result.MinDocFreq == 0 {
		result.MinDocFreq = defaults.MinDocFreq
	}
	if result.MaxDocRatio == 0 {
		result.MaxDocRatio = defaults.MaxDocRatio
	}
	if result.SemanticWeight == 0 && result.LexicalWeight == 0 {
		result.SemanticWeight = defaults.SemanticWeight
		result.LexicalWeight = defaults.LexicalWeight
	}

	th := &result.Thresholds
	def := defaults.Thresholds
	if th.HighBelow == 0 {
		th.HighBelow = def.HighBelow
	}
	if th.MediumBelow == 0 {
		th.MediumBelow = def.MediumBelow
	}
	if th.MinResumeWords == 0 {
		th.MinResumeWords = def.MinResumeWords
	}
	if th.MaxResumeWords == 0 {
		th.MaxResumeWords = def.MaxResumeWords
	}
	if th.FewResumeKeywords == 0 {
		th.FewResumeKeywords = def.FewResumeKeywords
	}
	if th.SomeMissingKeywords == 0 {
		th.SomeMissingKeywords = def.SomeMissingKeywords
	}
	if th.ManyMissingKeywords == 0 {
		th.ManyMissingKeywords = def.ManyMissingKeywords
	}

	return result
}

// Validate checks that the configuration is internally consistent
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.NGramMax < c.NGramMin {
		return fmt.Errorf("config error: ngram_max (%d) must be >= ngram_min (%d)", c.NGramMax, c.NGramMin)
	}
	if math.Abs(c.SemanticWeight+c.LexicalWeight-1.0) > weightEpsilon {
		return fmt.Errorf("config error: semantic_weight (%g) and lexical_weight (%g) must sum to 1",
			c.SemanticWeight, c.LexicalWeight)
	}
	if c.Thresholds.MediumBelow < c.Thresholds.HighBelow {
		return fmt.Errorf("config error: medium_below (%g) must be >= high_below (%g)",
			c.Thresholds.MediumBelow, c.Thresholds.HighBelow)
	}
	if c.Thresholds.MaxResumeWords < c.Thresholds.MinResumeWords {
		return fmt.Errorf("config error: max_resume_words (%d) must be >= min_resume_words (%d)",
			c.Thresholds.MaxResumeWords, c.Thresholds.MinResumeWords)
	}
	return nil
}

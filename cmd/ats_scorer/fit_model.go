package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/lexical"
)

var fitModelCmd = &cobra.Command{
	Use:   "fit-model",
	Short: "Fit and persist the TF-IDF lexical model",
	Long:  "Fit the TF-IDF vocabulary on the built-in seed corpus (or a custom corpus file with one document per line) and persist it to the models directory for reuse across processes.",
	RunE:  runFitModel,
}

var (
	fitConfigFile string
	fitCorpusFile string
	fitModelName  string
	fitModelsDir  string
)

func init() {
	fitModelCmd.Flags().StringVarP(&fitConfigFile, "config", "c", "", "Path to JSON config file (optional)")
	fitModelCmd.Flags().StringVar(&fitCorpusFile, "corpus", "", "Path to corpus file, one document per line (default: built-in seed corpus)")
	fitModelCmd.Flags().StringVar(&fitModelName, "name", "", "Model name (default from config)")
	fitModelCmd.Flags().StringVar(&fitModelsDir, "models-dir", "", "Models directory (default from config)")

	rootCmd.AddCommand(fitModelCmd)
}

func runFitModel(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(fitConfigFile, "")
	if err != nil {
		return err
	}
	if fitModelName != "" {
		cfg.LexicalModelName = fitModelName
	}
	if fitModelsDir != "" {
		cfg.ModelsDir = fitModelsDir
	}

	corpus := lexical.SeedCorpus()
	if fitCorpusFile != "" {
		corpus, err = loadCorpus(fitCorpusFile)
		if err != nil {
			return err
		}
	}

	params := lexical.Params{
		NGramMin:    cfg.NGramMin,
		NGramMax:    cfg.NGramMax,
		MaxFeatures: cfg.VocabularyCap,
		MinDocFreq:  cfg.MinDocFreq,
		MaxDocRatio: cfg.MaxDocRatio,
	}

	model, err := lexical.Fit(corpus, params)
	if err != nil {
		return fmt.Errorf("failed to fit model: %w", err)
	}

	store := lexical.NewStore(cfg.ModelsDir)
	if err := store.Save(model, cfg.LexicalModelName); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Fitted model %q on %d documents (%d terms)\n",
		cfg.LexicalModelName, model.CorpusSize, model.VocabularySize())
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", store.Path(cfg.LexicalModelName))

	return nil
}

// loadCorpus reads one document per non-blank line
func loadCorpus(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var corpus []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			corpus = append(corpus, line)
		}
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("corpus file is empty: %s", path)
	}
	return corpus, nil
}

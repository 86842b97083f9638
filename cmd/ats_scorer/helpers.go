package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/ats-scorer/internal/config"
)

// resolveConfig loads the config file when given, fills the gaps with
// defaults, applies the API key override chain (flag > config > env), and
// validates the result
func resolveConfig(configPath, apiKeyFlag string) (config.Config, error) {
	cfg := config.DefaultConfig()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}

	if apiKeyFlag != "" {
		cfg.APIKey = apiKeyFlag
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// readTextFile reads an input document and rejects empty files early, so the
// caller gets a path-specific error instead of a zeroed-out result
func readTextFile(path, label string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%s file is required", label)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s file: %w", label, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%s file is empty: %s", label, path)
	}
	return string(data), nil
}

// writeOutput writes JSON to the output file, or stdout when no path is given
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

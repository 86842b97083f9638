package lexical

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"
)

// ErrModelNotFound is returned by Load when no persisted model exists under
// the requested name.
var ErrModelNotFound = errors.New("lexical model not found")

// Store persists fitted models as JSON under a models directory so that
// fitting happens once per deployment rather than once per process, and
// never per request.
type Store struct {
	dir   string
	group singleflight.Group
}

// NewStore creates a Store rooted at the given directory
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the on-disk location for a model name
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+"_tfidf.json")
}

// Save writes the fitted model to disk, creating the models directory if
// needed
func (s *Store) Save(model *Model, name string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create models directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal model %s: %w", name, err)
	}

	path := s.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write model file %s: %w", path, err)
	}
	return nil
}

// Load reads a previously persisted model. Returns ErrModelNotFound when no
// model file exists under the given name.
func (s *Store) Load(name string) (*Model, error) {
	path := s.Path(name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
		}
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse model file %s: %w", path, err)
	}
	if len(model.Vocabulary) == 0 || len(model.IDF) != len(model.Vocabulary) {
		return nil, fmt.Errorf("model file %s is malformed: vocabulary/idf mismatch", path)
	}
	return &model, nil
}

// LoadOrFit returns the persisted model under name, fitting on the given
// corpus and saving the result when none exists. Concurrent first calls for
// the same name collapse into a single fit via singleflight, so the model is
// built exactly once even when many requests race at startup.
func (s *Store) LoadOrFit(name string, corpus []string, params Params) (*Model, error) {
	v, err, _ := s.group.Do(name, func() (interface{}, error) {
		model, err := s.Load(name)
		if err == nil {
			slog.Info("loaded persisted lexical model",
				"name", name, "vocabulary_size", model.VocabularySize())
			return model, nil
		}
		if !errors.Is(err, ErrModelNotFound) {
			return nil, err
		}

		model, err = Fit(corpus, params)
		if err != nil {
			return nil, fmt.Errorf("failed to fit lexical model %s: %w", name, err)
		}
		if err := s.Save(model, name); err != nil {
			return nil, err
		}
		slog.Info("fitted and saved new lexical model",
			"name", name, "corpus_size", len(corpus), "vocabulary_size", model.VocabularySize())
		return model, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Model), nil
}

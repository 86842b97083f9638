package scoring

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/lexical"
	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/semantic"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Engine is the constructed-once analysis context: the shared read-only
// lexical model, the semantic engine, and the static configuration. One
// Engine serves many concurrent Analyze calls without locking; nothing in it
// mutates after construction.
type Engine struct {
	cfg        config.Config
	lexical    *lexical.Model
	semantic   *semantic.Engine
	aggregator Aggregator
}

// New assembles an Engine from already-initialized parts
func New(cfg config.Config, lexModel *lexical.Model, semEngine *semantic.Engine) *Engine {
	return &Engine{
		cfg:        cfg,
		lexical:    lexModel,
		semantic:   semEngine,
		aggregator: NewAggregator(cfg.SemanticWeight, cfg.LexicalWeight),
	}
}

// Bootstrap initializes every engine part from configuration: the lexical
// model is loaded from the models directory or fitted once on the seed
// corpus, and the semantic engine walks its candidate embedding models.
// Only lexical model initialization can fail; semantic unavailability is a
// degraded mode, not an error.
func Bootstrap(ctx context.Context, cfg config.Config) (*Engine, error) {
	store := lexical.NewStore(cfg.ModelsDir)
	params := lexical.Params{
		NGramMin:    cfg.NGramMin,
		NGramMax:    cfg.NGramMax,
		MaxFeatures: cfg.VocabularyCap,
		MinDocFreq:  cfg.MinDocFreq,
		MaxDocRatio: cfg.MaxDocRatio,
	}

	lexModel, err := store.LoadOrFit(cfg.LexicalModelName, lexical.SeedCorpus(), params)
	if err != nil {
		return nil, err
	}

	semEngine := semantic.New(ctx, cfg.EmbeddingModels, semantic.GeminiOpener(cfg.APIKey))
	return New(cfg, lexModel, semEngine), nil
}

// SemanticStatus exposes the semantic engine's startup outcome
func (e *Engine) SemanticStatus() semantic.Status {
	return e.semantic.Status()
}

// SemanticModel returns the loaded embedding model identifier, or "" when
// the semantic engine is unavailable
func (e *Engine) SemanticModel() string {
	return e.semantic.Model()
}

// Close releases engine resources
func (e *Engine) Close() error {
	return e.semantic.Close()
}

// Analyze scores a resume against a job description. It always returns a
// complete, valid result: empty inputs and engine faults degrade individual
// fields to zero values instead of failing the call. The lexical and
// semantic branches run concurrently and a fault in one never aborts the
// other.
func (e *Engine) Analyze(ctx context.Context, resumeText, jobText string) *types.AnalysisResult {
	resumeDoc := parsing.NewDocument(resumeText)
	jobDoc := parsing.NewDocument(jobText)

	var (
		lexicalSim  float64
		semanticSim *float64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lexicalSim = e.lexical.Similarity(resumeText, jobText)
		return nil
	})
	g.Go(func() error {
		if !e.semantic.Available() {
			return nil
		}
		sim, err := e.semantic.Similarity(gCtx, resumeText, jobText)
		if err != nil {
			// Per-call fault: contribution forced to 0.0, method stays
			// hybrid, the other branch is unaffected.
			slog.Error("semantic similarity fault, contribution forced to 0.0", "error", err)
			sim = 0.0
		}
		semanticSim = &sim
		return nil
	})
	// Branches absorb their own faults and never return errors
	_ = g.Wait()

	similarity, atsScore := e.aggregator.Combine(lexicalSim, semanticSim)

	resumeKeywords := capKeywords(keywords.Extract(resumeText, e.cfg.TopK), e.cfg.ResultKeywordCap)
	jobKeywords := capKeywords(keywords.Extract(jobText, e.cfg.TopK), e.cfg.ResultKeywordCap)

	missing := MissingKeywords(resumeKeywords, jobKeywords, e.cfg.MissingKeywordCap)
	overlapCount, overlapPct := KeywordOverlap(resumeKeywords, jobKeywords)

	return &types.AnalysisResult{
		AnalysisID:               uuid.NewString(),
		ATSScore:                 atsScore,
		Similarity:               similarity,
		ResumeKeywords:           resumeKeywords,
		JobKeywords:              jobKeywords,
		MissingKeywords:          missing,
		KeywordOverlapCount:      overlapCount,
		KeywordOverlapPercentage: overlapPct,
		ResumeWordCount:          resumeDoc.WordCount,
		JobWordCount:             jobDoc.WordCount,
	}
}

// capKeywords bounds a keyword set to the reporting cap. Gap and overlap
// math runs on the capped sets so the reported missing-keyword list is
// always a subset of the reported job keyword set.
func capKeywords(set types.KeywordSet, cap int) types.KeywordSet {
	if cap > 0 && len(set) > cap {
		return set[:cap]
	}
	return set
}

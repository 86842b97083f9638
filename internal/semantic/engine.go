package semantic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/parsing"
)

// Status captures the startup outcome of the candidate model walk. The
// aggregator consults this explicit value instead of nil-checking scattered
// through the pipeline.
type Status string

const (
	// StatusReady means one of the candidate models loaded
	StatusReady Status = "ready"
	// StatusUnavailable means no candidate loaded; the process degrades to
	// lexical-only scoring for its lifetime
	StatusUnavailable Status = "unavailable"
)

// ErrUnavailable is returned by Similarity when no embedding model loaded
var ErrUnavailable = errors.New("semantic engine unavailable")

// DefaultCandidates is the ordered list of embedding models tried at
// startup: the resume/job-matching tuned model first, then the
// general-purpose fallback.
func DefaultCandidates() []string {
	return []string{"text-embedding-004", "embedding-001"}
}

// Engine computes embedding-based similarity. It is constructed once at
// process start and shared read-only across concurrent scoring calls.
type Engine struct {
	encoder Encoder
	status  Status
}

// New walks the candidate models in order and keeps the first encoder that
// opens. Failure of every candidate is not an error: the engine comes up
// with StatusUnavailable and the caller degrades to lexical-only scoring.
// The outcome is logged exactly once, here.
func New(ctx context.Context, candidates []string, open OpenFunc) *Engine {
	for _, model := range candidates {
		encoder, err := open(ctx, model)
		if err != nil {
			slog.Warn("embedding model failed to load, trying next candidate",
				"model", model, "error", err)
			continue
		}
		slog.Info("semantic engine ready", "model", model)
		return &Engine{encoder: encoder, status: StatusReady}
	}

	slog.Warn("no embedding model available, degrading to lexical-only scoring",
		"candidates", candidates)
	return &Engine{status: StatusUnavailable}
}

// Status returns the startup outcome of the candidate walk
func (e *Engine) Status() Status {
	return e.status
}

// Available reports whether an embedding model loaded
func (e *Engine) Available() bool {
	return e.status == StatusReady
}

// Model returns the loaded embedding model identifier, or "" when unavailable
func (e *Engine) Model() string {
	if e.encoder == nil {
		return ""
	}
	return e.encoder.Model()
}

// Similarity returns the cosine similarity of the two texts' embeddings in
// [0, 1]. Empty normalized text on either side yields 0.0 without invoking
// the model. The two encode calls run concurrently; this is the expensive
// path and must not serialize behind itself.
func (e *Engine) Similarity(ctx context.Context, textA, textB string) (float64, error) {
	if !e.Available() {
		return 0.0, ErrUnavailable
	}

	cleanA := parsing.Normalize(textA)
	cleanB := parsing.Normalize(textB)
	if cleanA == "" || cleanB == "" {
		return 0.0, nil
	}

	var vecA, vecB []float32
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vecA, err = e.encoder.Embed(gCtx, cleanA)
		return err
	})
	g.Go(func() error {
		var err error
		vecB, err = e.encoder.Embed(gCtx, cleanB)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0.0, fmt.Errorf("embedding failed: %w", err)
	}

	return cosine(vecA, vecB), nil
}

// Close releases the underlying encoder
func (e *Engine) Close() error {
	if e.encoder != nil {
		return e.encoder.Close()
	}
	return nil
}

// cosine computes cosine similarity between two embedding vectors, clamped
// to [0, 1]. Mismatched or zero vectors score 0.0.
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(sim) || sim < 0 {
		return 0.0
	}
	if sim > 1 {
		return 1.0
	}
	return sim
}

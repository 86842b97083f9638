// Package semantic implements embedding-based similarity between two
// documents using a pretrained sentence-embedding model served by the
// Gemini API.
package semantic

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Encoder turns text into a fixed-dimension embedding vector
type Encoder interface {
	// Embed encodes a single text into an embedding vector
	Embed(ctx context.Context, text string) ([]float32, error)
	// Model returns the identifier of the underlying embedding model
	Model() string
	// Close releases any resources held by the encoder
	Close() error
}

// OpenFunc opens an encoder for a named embedding model. Engine
// construction walks a candidate list with one OpenFunc; tests substitute a
// fake.
type OpenFunc func(ctx context.Context, model string) (Encoder, error)

// GeminiEncoder is the production Encoder backed by the Gemini embedding API
type GeminiEncoder struct {
	client *genai.Client
	model  string
}

// GeminiOpener returns an OpenFunc that creates Gemini-backed encoders with
// the given API key. An empty key fails immediately so the engine can
// degrade to unavailable instead of issuing doomed API calls.
func GeminiOpener(apiKey string) OpenFunc {
	return func(ctx context.Context, model string) (Encoder, error) {
		if apiKey == "" {
			return nil, fmt.Errorf("API key is required")
		}

		client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}

		enc := &GeminiEncoder{client: client, model: model}

		// Probe with a tiny encode so a bad model name surfaces at startup
		// rather than on the first scoring request.
		if _, err := enc.Embed(ctx, "resume"); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("embedding model %s failed probe: %w", model, err)
		}
		return enc, nil
	}
}

// Embed encodes text into an embedding vector
func (e *GeminiEncoder) Embed(ctx context.Context, text string) ([]float32, error) {
	em := e.client.EmbeddingModel(e.model)

	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp == nil || resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding response from model %s", e.model)
	}
	return resp.Embedding.Values, nil
}

// Model returns the embedding model identifier
func (e *GeminiEncoder) Model() string {
	return e.model
}

// Close releases the underlying API client
func (e *GeminiEncoder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

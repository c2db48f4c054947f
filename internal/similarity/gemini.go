package similarity

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider on top of Gemini embeddings: both spans
// are embedded and scored by cosine similarity, clamped to [0,1]. Embeddings
// are cached per text so repeated keywords and skills across a batch cost one
// call each.
type GeminiProvider struct {
	client *genai.Client
	config *Config

	mu    sync.Mutex
	cache map[string][]float32
}

// NewGeminiProvider creates a Gemini-backed similarity provider.
func NewGeminiProvider(ctx context.Context, config *Config, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: config,
		cache:  make(map[string][]float32),
	}, nil
}

// Similarity embeds both spans and returns their cosine similarity in [0,1].
func (p *GeminiProvider) Similarity(ctx context.Context, a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.CallTimeout)
	defer cancel()

	va, err := p.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := p.embed(ctx, b)
	if err != nil {
		return 0, err
	}

	return clamp01(cosine(va, vb)), nil
}

// Close releases the underlying Gemini client.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func (p *GeminiProvider) embed(ctx context.Context, text string) ([]float32, error) {
	p.mu.Lock()
	cached, ok := p.cache[text]
	p.mu.Unlock()
	if ok {
		return cached, nil
	}

	em := p.client.EmbeddingModel(p.config.EmbeddingModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed text: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embedding response is empty")
	}

	p.mu.Lock()
	p.cache[text] = res.Embedding.Values
	p.mu.Unlock()

	return res.Embedding.Values, nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Package similarity provides the semantic similarity capability consumed by
// the rescue stage. The engine only depends on the Provider interface; the
// concrete model behind it is an injected capability.
package similarity

import "context"

// Provider scores how semantically close two text spans are.
// Implementations must return a score in [0,1] and are expected to respect
// context cancellation; callers treat any error as similarity 0 (fail closed).
type Provider interface {
	// Similarity returns the semantic similarity of a and b in [0,1].
	Similarity(ctx context.Context, a, b string) (float64, error)
	// Close releases any resources held by the provider.
	Close() error
}

// NewProvider creates a provider from configuration.
func NewProvider(ctx context.Context, config *Config, apiKey string) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return NewGeminiProvider(ctx, config, apiKey)
}

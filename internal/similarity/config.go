package similarity

import "time"

// Config holds the provider configuration.
type Config struct {
	// EmbeddingModel is the embedding model used to vectorize text spans.
	EmbeddingModel string
	// CallTimeout bounds each provider call; a timed-out comparison scores 0.
	CallTimeout time.Duration
}

// DefaultConfig returns the default Gemini embedding configuration.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingModel: "text-embedding-004",
		CallTimeout:    10 * time.Second,
	}
}

package similarity

import (
	"context"
	"strings"
	"sync"
)

// Static is a map-backed Provider used in tests and offline runs. Pairs not
// present in the map score 0. Lookups are symmetric in a and b.
type Static struct {
	mu     sync.RWMutex
	scores map[string]float64
	err    error
}

// NewStatic creates an empty Static provider.
func NewStatic() *Static {
	return &Static{scores: make(map[string]float64)}
}

// Set registers the similarity score for a pair of spans.
func (s *Static) Set(a, b string, score float64) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[pairKey(a, b)] = score
	return s
}

// Fail makes every subsequent call return err, for exercising the
// fail-closed path. Pass nil to clear.
func (s *Static) Fail(err error) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// Similarity returns the registered score for the pair, or 0.
func (s *Static) Similarity(ctx context.Context, a, b string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return 0, s.err
	}
	return s.scores[pairKey(a, b)], nil
}

// Close is a no-op.
func (s *Static) Close() error { return nil }

func pairKey(a, b string) string {
	a, b = strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}

package similarity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_SymmetricLookup(t *testing.T) {
	p := NewStatic().Set("KPI", "Performance Targets", 0.9)

	score, err := p.Similarity(context.Background(), "Performance Targets", "KPI")
	require.NoError(t, err)
	assert.InDelta(t, 0.9, score, 1e-9)

	score, err = p.Similarity(context.Background(), "kpi", "performance targets")
	require.NoError(t, err)
	assert.InDelta(t, 0.9, score, 1e-9)
}

func TestStatic_UnknownPairScoresZero(t *testing.T) {
	p := NewStatic()

	score, err := p.Similarity(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestStatic_Fail(t *testing.T) {
	boom := errors.New("boom")
	p := NewStatic().Set("a", "b", 0.8).Fail(boom)

	_, err := p.Similarity(context.Background(), "a", "b")
	assert.ErrorIs(t, err, boom)

	p.Fail(nil)
	score, err := p.Similarity(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.InDelta(t, 0.8, score, 1e-9)
}

func TestStatic_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewStatic()
	_, err := p.Similarity(ctx, "a", "b")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 0}, []float32{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Zero(t, cosine([]float32{1, 0}, []float32{1}))
	assert.Zero(t, cosine(nil, nil))
}

func TestClamp01(t *testing.T) {
	assert.Zero(t, clamp01(-0.2))
	assert.InDelta(t, 0.4, clamp01(0.4), 1e-9)
	assert.InDelta(t, 1.0, clamp01(1.7), 1e-9)
}

package screening

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/fairscreen/internal/similarity"
	"github.com/jonathan/fairscreen/internal/types"
)

const (
	// RescueThreshold is the semantic score at which a Stage-1 reject is
	// reclassified as rescued.
	RescueThreshold = 0.65
	// EvidenceThreshold is the per-pair similarity above which a
	// keyword/term pair is recorded as rescue evidence.
	EvidenceThreshold = 0.6
)

// RescueResult is the Stage-2 outcome for one Stage-1-rejected candidate.
type RescueResult struct {
	SemanticScore float64
	Evidence      []types.SemanticEvidence
}

// Rescuer runs Stage-2 semantic analysis for Stage-1 rejects.
type Rescuer struct {
	provider similarity.Provider
	logger   *zap.Logger
}

// NewRescuer creates a Rescuer over the given provider.
func NewRescuer(provider similarity.Provider, logger *zap.Logger) *Rescuer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rescuer{provider: provider, logger: logger}
}

// Rescue scores a Stage-1 reject against the required keywords. Each keyword
// is compared with every candidate skill and with the resume body; the
// keyword's score is the maximum similarity seen, and the semantic score is
// the mean of the per-keyword maxima. Provider failures score 0 for that
// comparison and are logged, never aborting the batch.
func (r *Rescuer) Rescue(ctx context.Context, candidate *types.Candidate, criteria *types.JobCriteria) RescueResult {
	result := RescueResult{}
	if len(criteria.RequiredKeywords) == 0 {
		return result
	}

	terms := make([]string, 0, len(candidate.Skills)+1)
	terms = append(terms, candidate.Skills...)
	if candidate.ResumeText != "" {
		terms = append(terms, candidate.ResumeText)
	}

	sum := 0.0
	for _, keyword := range criteria.RequiredKeywords {
		best := 0.0
		for _, term := range terms {
			score, err := r.provider.Similarity(ctx, keyword, term)
			if err != nil {
				perr := &ProviderError{Keyword: keyword, Cause: err}
				r.logger.Warn("similarity call failed, scoring comparison as 0",
					zap.String("candidate_id", candidate.CandidateID),
					zap.String("keyword", keyword),
					zap.Error(perr),
				)
				continue
			}
			if score > best {
				best = score
			}
			if score > EvidenceThreshold {
				result.Evidence = append(result.Evidence, types.SemanticEvidence{
					Keyword:       keyword,
					CandidateTerm: term,
					Similarity:    score,
				})
			}
		}
		sum += best
	}

	result.SemanticScore = sum / float64(len(criteria.RequiredKeywords))
	return result
}

// Package analysis provides the high-level orchestration of one fairness
// analysis run: screening, rescue, bias detection, and alert synthesis.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/fairscreen/internal/alerting"
	"github.com/jonathan/fairscreen/internal/detect"
	"github.com/jonathan/fairscreen/internal/parsing"
	"github.com/jonathan/fairscreen/internal/screening"
	"github.com/jonathan/fairscreen/internal/similarity"
	"github.com/jonathan/fairscreen/internal/types"
)

// DefaultWorkers is the size of the per-candidate screening worker pool.
const DefaultWorkers = 8

// Options holds configuration for one analysis run.
type Options struct {
	// Provider supplies semantic similarity for the rescue stage.
	// Required; use similarity.NewStatic() for offline runs.
	Provider similarity.Provider
	// Workers bounds the screening worker pool; DefaultWorkers when <= 0.
	Workers int
	// Logger receives stage transitions and recovered provider failures.
	Logger *zap.Logger
}

// Run executes one complete analysis over an immutable input snapshot and
// returns an immutable result snapshot. Concurrent runs over different
// batches never interact; all state lives in the run.
//
// The run is single-pass: screening -> detecting -> synthesizing -> done,
// failing from any state only on an unrecoverable input error.
func Run(ctx context.Context, candidates []types.Candidate, criteria types.JobCriteria, opts Options) (*types.AnalysisResult, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	runID := uuid.New()
	log = log.With(zap.String("run_id", runID.String()))

	result := &types.AnalysisResult{
		RunID:     runID,
		JobTitle:  criteria.JobTitle,
		Status:    types.RunIdle,
		StartedAt: time.Now().UTC(),
	}

	if opts.Provider == nil {
		err := &InputError{Message: "similarity provider is required; use similarity.NewStatic for offline runs"}
		result.Status = types.RunFailed
		log.Error("analysis could not run", zap.Error(err))
		return nil, err
	}
	if err := validateInput(candidates, &criteria); err != nil {
		result.Status = types.RunFailed
		log.Error("analysis could not run", zap.Error(err))
		return nil, err
	}
	if len(criteria.RequiredKeywords) == 0 {
		// Degraded but legal: Stage 1 fails everyone closed.
		log.Warn("criteria has zero required keywords; all candidates fail stage 1",
			zap.String("job_title", criteria.JobTitle))
	}

	// Stage: screening. Per-candidate work is independent; each worker owns
	// one slot of the preallocated outcome slice, so there is no shared
	// mutable state beyond the read-only criteria.
	result.Status = types.RunScreening
	log.Debug("stage transition", zap.String("status", string(result.Status)))

	outcomes, err := screenAll(ctx, candidates, &criteria, &opts, log)
	if err != nil {
		result.Status = types.RunFailed
		return nil, err
	}
	result.Outcomes = outcomes

	if err := ctx.Err(); err != nil {
		result.Status = types.RunFailed
		return nil, err
	}

	// Stage: detecting. All three analyzers read the complete outcome set,
	// so none starts before the screening barrier above; they are mutually
	// independent and run concurrently.
	result.Status = types.RunDetecting
	log.Debug("stage transition", zap.String("status", string(result.Status)))

	findings, err := detectAll(ctx, outcomes, &criteria)
	if err != nil {
		result.Status = types.RunFailed
		return nil, err
	}
	result.Findings = findings

	if err := ctx.Err(); err != nil {
		result.Status = types.RunFailed
		return nil, err
	}

	// Stage: synthesizing.
	result.Status = types.RunSynthesizing
	log.Debug("stage transition", zap.String("status", string(result.Status)))

	result.Alerts = alerting.Synthesize(findings)
	result.Summary = summarize(outcomes)
	result.Status = types.RunDone
	result.FinishedAt = time.Now().UTC()

	log.Info("analysis complete",
		zap.Int("total_analyzed", result.Summary.TotalAnalyzed),
		zap.Int("rescued", result.Summary.RescuedCount),
		zap.Int("findings", len(result.Findings)),
		zap.Int("alerts", len(result.Alerts)),
		zap.Duration("elapsed", result.FinishedAt.Sub(result.StartedAt)),
	)
	return result, nil
}

func validateInput(candidates []types.Candidate, criteria *types.JobCriteria) error {
	if len(candidates) == 0 {
		return &InputError{Message: "candidate batch is empty"}
	}
	if err := criteria.Validate(); err != nil {
		return &InputError{Message: "bad criteria", Cause: err}
	}
	seen := make(map[string]bool, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		if err := c.Validate(); err != nil {
			return &InputError{Message: "bad candidate record", Cause: err}
		}
		if seen[c.CandidateID] {
			return &InputError{Message: "duplicate candidate id " + c.CandidateID}
		}
		seen[c.CandidateID] = true
	}
	return nil
}

func screenAll(ctx context.Context, candidates []types.Candidate, criteria *types.JobCriteria, opts *Options, log *zap.Logger) ([]types.ScreeningOutcome, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	rescuer := screening.NewRescuer(opts.Provider, log)

	outcomes := make([]types.ScreeningOutcome, len(candidates))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range candidates {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = screenOne(gCtx, &candidates[i], criteria, rescuer)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func screenOne(ctx context.Context, candidate *types.Candidate, criteria *types.JobCriteria, rescuer *screening.Rescuer) types.ScreeningOutcome {
	kw := screening.ScreenKeywords(candidate, criteria)

	outcome := types.ScreeningOutcome{
		CandidateID:     candidate.CandidateID,
		AgeBracket:      types.BracketForAge(candidate.Age),
		Gender:          candidate.Gender,
		JobFamily:       parsing.AssignJobFamily(candidate),
		ExperienceYears: candidate.ExperienceYears,
		ATSScore:        kw.ATSScore,
		MatchedKeywords: kw.MatchedKeywords,
		MissingKeywords: kw.MissingKeywords,
		Stage1Status:    kw.Status,
	}

	if kw.Status == types.Stage1Shortlisted {
		outcome.FinalStatus = types.FinalShortlisted
		return outcome
	}

	rescue := rescuer.Rescue(ctx, candidate, criteria)
	outcome.SemanticScore = rescue.SemanticScore
	outcome.Evidence = rescue.Evidence
	if rescue.SemanticScore >= screening.RescueThreshold {
		outcome.FinalStatus = types.FinalRescued
	} else {
		outcome.FinalStatus = types.FinalRejected
	}
	return outcome
}

// detectAll runs the three analyzers concurrently and assembles their
// findings in a fixed order so the output is deterministic.
func detectAll(ctx context.Context, outcomes []types.ScreeningOutcome, criteria *types.JobCriteria) ([]types.Finding, error) {
	var (
		byAge, byGender []types.Finding
		peers           []types.Finding
		toxic           []types.Finding
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		byAge = detect.FourFifths(outcomes, types.GroupByAgeBracket)
		byGender = detect.FourFifths(outcomes, types.GroupByGender)
		return nil
	})
	g.Go(func() error {
		var err error
		peers, err = detect.PeerComparison(gCtx, outcomes)
		return err
	})
	g.Go(func() error {
		toxic = detect.KeywordToxicity(outcomes, criteria)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	findings := make([]types.Finding, 0, len(byAge)+len(byGender)+len(peers)+len(toxic))
	findings = append(findings, byAge...)
	findings = append(findings, byGender...)
	findings = append(findings, peers...)
	findings = append(findings, toxic...)
	return findings, nil
}

func summarize(outcomes []types.ScreeningOutcome) types.Summary {
	s := types.Summary{TotalAnalyzed: len(outcomes)}
	atsSum := 0.0
	semSum := 0.0
	semCount := 0
	for i := range outcomes {
		o := &outcomes[i]
		atsSum += o.ATSScore
		switch o.FinalStatus {
		case types.FinalShortlisted:
			s.ShortlistedCount++
		case types.FinalRescued:
			s.RescuedCount++
		case types.FinalRejected:
			s.RejectedCount++
		}
		if o.Stage1Status == types.Stage1Rejected {
			semSum += o.SemanticScore
			semCount++
		}
	}
	if s.TotalAnalyzed > 0 {
		s.AverageATSScore = atsSum / float64(s.TotalAnalyzed)
	}
	if semCount > 0 {
		s.AverageSemanticScore = semSum / float64(semCount)
	}
	return s
}

package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/fairscreen/internal/types"
)

// SaveResult persists a completed analysis result as per-step artifacts,
// criteria included so a run can be audited later, and marks the run
// completed. Persistence is best-effort reporting storage; the result itself
// is already final and immutable.
func (db *DB) SaveResult(ctx context.Context, result *types.AnalysisResult, criteria *types.JobCriteria) error {
	if err := db.SaveArtifact(ctx, result.RunID, StepCriteria, criteria); err != nil {
		return err
	}
	if err := db.SaveArtifact(ctx, result.RunID, StepOutcomes, result.Outcomes); err != nil {
		return err
	}
	if err := db.SaveArtifact(ctx, result.RunID, StepFindings, result.Findings); err != nil {
		return err
	}
	if err := db.SaveArtifact(ctx, result.RunID, StepAlerts, result.Alerts); err != nil {
		return err
	}
	if err := db.SaveArtifact(ctx, result.RunID, StepSummary, result.Summary); err != nil {
		return err
	}
	return db.CompleteRun(ctx, result.RunID, string(result.Status))
}

// GetOutcomesByRunID loads the screening outcomes persisted for a run.
func (db *DB) GetOutcomesByRunID(ctx context.Context, runID uuid.UUID) ([]types.ScreeningOutcome, error) {
	content, err := db.GetArtifact(ctx, runID, StepOutcomes)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var outcomes []types.ScreeningOutcome
	if err := json.Unmarshal(content, &outcomes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outcomes: %w", err)
	}
	return outcomes, nil
}

// GetAlertsByRunID loads the alerts persisted for a run.
func (db *DB) GetAlertsByRunID(ctx context.Context, runID uuid.UUID) ([]types.Alert, error) {
	content, err := db.GetArtifact(ctx, runID, StepAlerts)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var alerts []types.Alert
	if err := json.Unmarshal(content, &alerts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alerts: %w", err)
	}
	return alerts, nil
}

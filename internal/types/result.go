package types

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus tracks the orchestrator's single-pass state machine.
type RunStatus string

// Run states. A run moves idle -> screening -> detecting -> synthesizing ->
// done, or to failed from any state on an unrecoverable input error. No
// state is ever revisited.
const (
	RunIdle         RunStatus = "idle"
	RunScreening    RunStatus = "screening"
	RunDetecting    RunStatus = "detecting"
	RunSynthesizing RunStatus = "synthesizing"
	RunDone         RunStatus = "done"
	RunFailed       RunStatus = "failed"
)

// Summary holds the aggregate numbers reported alongside outcomes and alerts.
// AverageSemanticScore averages over Stage-1 rejects, the only population a
// semantic score exists for; it is 0 when there are none.
type Summary struct {
	TotalAnalyzed        int     `json:"total_analyzed"`
	ShortlistedCount     int     `json:"shortlisted_count"`
	RescuedCount         int     `json:"rescued_count"`
	RejectedCount        int     `json:"rejected_count"`
	AverageATSScore      float64 `json:"average_ats_score"`
	AverageSemanticScore float64 `json:"average_semantic_score"`
}

// AnalysisResult is the immutable snapshot returned by one analysis run.
type AnalysisResult struct {
	RunID      uuid.UUID          `json:"run_id"`
	JobTitle   string             `json:"job_title"`
	Status     RunStatus          `json:"status"`
	Outcomes   []ScreeningOutcome `json:"outcomes"`
	Findings   []Finding          `json:"findings"`
	Alerts     []Alert            `json:"alerts"`
	Summary    Summary            `json:"summary"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
}

package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents an analysis run record.
type Run struct {
	ID             uuid.UUID  `json:"id"`
	JobTitle       string     `json:"job_title"`
	CandidateCount int        `json:"candidate_count"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// Artifact step constants for known artifact types
const (
	StepCriteria = "criteria"
	StepOutcomes = "outcomes"
	StepFindings = "findings"
	StepAlerts   = "alerts"
	StepSummary  = "summary"
)

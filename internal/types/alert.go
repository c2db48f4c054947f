package types

// Severity ranks an alert for triage.
type Severity string

// Alert severities, most urgent first.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank returns the sort rank of a severity (lower is more urgent).
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

// Alert is synthesized from one or more findings of the same kind whose
// affected candidate sets overlap. Alerts are regenerated from scratch each
// run; no alert identity persists across runs.
type Alert struct {
	Kind                   FindingKind `json:"kind"`
	Severity               Severity    `json:"severity"`
	Title                  string      `json:"title"`
	Detail                 string      `json:"detail"`
	AffectedCandidateCount int         `json:"affected_candidate_count"`
	AffectedCandidateIDs   []string    `json:"affected_candidate_ids"`
	Recommendations        []string    `json:"recommendations"`
	FindingCount           int         `json:"finding_count"`
}

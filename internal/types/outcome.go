package types

// Stage1Status is the outcome of the keyword (ATS) screening stage.
type Stage1Status string

// Stage-1 statuses
const (
	Stage1Shortlisted Stage1Status = "shortlisted"
	Stage1Rejected    Stage1Status = "rejected"
)

// FinalStatus is the outcome after the semantic rescue stage.
type FinalStatus string

// Final statuses. Rescued implies the candidate was rejected at Stage 1;
// a candidate is never both shortlisted and rescued.
const (
	FinalShortlisted FinalStatus = "shortlisted"
	FinalRescued     FinalStatus = "rescued"
	FinalRejected    FinalStatus = "rejected"
)

// Selected reports whether the final status counts as a selection for the
// fairness analyzers (rescued counts as selected, not rejected).
func (s FinalStatus) Selected() bool {
	return s == FinalShortlisted || s == FinalRescued
}

// SemanticEvidence records one keyword/candidate-term pair whose provider
// similarity exceeded the evidence threshold, kept for UI justification
// and for the keyword toxicity analyzer.
type SemanticEvidence struct {
	Keyword       string  `json:"keyword"`
	CandidateTerm string  `json:"candidate_term"`
	Similarity    float64 `json:"similarity"`
}

// ScreeningOutcome is the per-candidate result of the two-stage pipeline.
// The grouping fields are copied from the candidate at screening time so the
// detectors operate on outcomes alone.
type ScreeningOutcome struct {
	CandidateID     string             `json:"candidate_id"`
	AgeBracket      AgeBracket         `json:"age_bracket"`
	Gender          Gender             `json:"gender"`
	JobFamily       JobFamily          `json:"job_family"`
	ExperienceYears int                `json:"experience_years"`
	ATSScore        float64            `json:"ats_score"` // 0..100
	MatchedKeywords []string           `json:"matched_keywords,omitempty"`
	MissingKeywords []string           `json:"missing_keywords,omitempty"`
	Stage1Status    Stage1Status       `json:"stage1_status"`
	SemanticScore   float64            `json:"semantic_score"` // 0..1, Stage-1 rejects only
	Evidence        []SemanticEvidence `json:"evidence,omitempty"`
	FinalStatus     FinalStatus        `json:"final_status"`
}

// EvidenceFor returns the strongest semantic evidence the candidate has for
// the given required keyword, or 0 when none was recorded.
func (o *ScreeningOutcome) EvidenceFor(keyword string) float64 {
	best := 0.0
	for _, ev := range o.Evidence {
		if ev.Keyword == keyword && ev.Similarity > best {
			best = ev.Similarity
		}
	}
	return best
}

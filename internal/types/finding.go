package types

// FindingKind identifies which bias detector produced a finding.
type FindingKind string

// Finding kinds
const (
	FindingFourFifths      FindingKind = "four_fifths"
	FindingPeerComparison  FindingKind = "peer_comparison"
	FindingKeywordToxicity FindingKind = "keyword_toxicity"
)

// GroupingAttribute names the demographic attribute a four-fifths finding
// was computed over.
type GroupingAttribute string

// Grouping attributes for the four-fifths analysis
const (
	GroupByAgeBracket GroupingAttribute = "age_bracket"
	GroupByGender     GroupingAttribute = "gender"
)

// GroupStats holds the per-group counts behind a four-fifths finding.
// Groups below the minimum sample size are reported for context with
// Flagged always false.
type GroupStats struct {
	Group         string  `json:"group"`
	Size          int     `json:"size"`
	RejectedCount int     `json:"rejected_count"`
	SelectionRate float64 `json:"selection_rate"`
	Flagged       bool    `json:"flagged"`
}

// PairSnapshot captures one side of a peer-comparison finding for audit.
type PairSnapshot struct {
	CandidateID     string      `json:"candidate_id"`
	AgeBracket      AgeBracket  `json:"age_bracket"`
	Gender          Gender      `json:"gender"`
	ATSScore        float64     `json:"ats_score"`
	ExperienceYears int         `json:"experience_years"`
	FinalStatus     FinalStatus `json:"final_status"`
}

// Finding is the output of one bias detector. Findings are pure data and
// never mutated after creation; the synthesizer reads them to build alerts.
type Finding struct {
	Kind      FindingKind       `json:"kind"`
	Attribute GroupingAttribute `json:"attribute,omitempty"` // four_fifths only

	// Disparity is the detector's magnitude: the selection-rate ratio for
	// four_fifths, the ATS score gap for peer_comparison, and the rejection
	// rate for keyword_toxicity.
	Disparity float64 `json:"disparity"`

	// AffectedCandidateIDs lists the candidates on the losing side of the
	// disparity, sorted for determinism.
	AffectedCandidateIDs []string `json:"affected_candidate_ids"`

	Groups []GroupStats `json:"groups,omitempty"` // four_fifths context

	PairA *PairSnapshot `json:"pair_a,omitempty"` // peer_comparison, disadvantaged side
	PairB *PairSnapshot `json:"pair_b,omitempty"` // peer_comparison, favored side

	Keyword         string `json:"keyword,omitempty"` // keyword_toxicity
	EvidenceCount   int    `json:"evidence_count,omitempty"`
	SupportingCount int    `json:"supporting_count"` // denominator behind Disparity
}

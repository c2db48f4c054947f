package detect

import (
	"sort"

	"github.com/jonathan/fairscreen/internal/screening"
	"github.com/jonathan/fairscreen/internal/types"
)

// ToxicRejectionRate is the rejection rate above which a required keyword is
// flagged as toxic.
const ToxicRejectionRate = 0.60

// KeywordToxicity flags required keywords whose absence disproportionately
// rejects candidates who show semantic evidence of the equivalent skill.
// For each keyword the population is the Stage-1 rejects missing it; those
// with rescue evidence at or above the evidence threshold form the
// "equivalent skill" set, and the keyword is toxic when that set's
// final-status rejection rate strictly exceeds ToxicRejectionRate. Rescue
// counts in the candidate's favor, consistent with the four-fifths analyzer.
func KeywordToxicity(outcomes []types.ScreeningOutcome, criteria *types.JobCriteria) []types.Finding {
	var findings []types.Finding
	for _, keyword := range criteria.RequiredKeywords {
		equivalent := 0
		rejected := 0
		var rejectedIDs []string

		for i := range outcomes {
			o := &outcomes[i]
			if o.Stage1Status != types.Stage1Rejected || !missing(o, keyword) {
				continue
			}
			if o.EvidenceFor(keyword) < screening.EvidenceThreshold {
				continue
			}
			equivalent++
			if o.FinalStatus == types.FinalRejected {
				rejected++
				rejectedIDs = append(rejectedIDs, o.CandidateID)
			}
		}

		if equivalent == 0 {
			continue
		}
		rate := float64(rejected) / float64(equivalent)
		if rate <= ToxicRejectionRate {
			continue
		}

		sort.Strings(rejectedIDs)
		findings = append(findings, types.Finding{
			Kind:                 types.FindingKeywordToxicity,
			Keyword:              keyword,
			Disparity:            rate,
			AffectedCandidateIDs: rejectedIDs,
			EvidenceCount:        equivalent,
			SupportingCount:      equivalent,
		})
	}
	return findings
}

func missing(o *types.ScreeningOutcome, keyword string) bool {
	for _, kw := range o.MissingKeywords {
		if kw == keyword {
			return true
		}
	}
	return false
}

// Package screening implements the two-stage candidate screening pipeline:
// Stage-1 keyword (ATS) matching and Stage-2 semantic rescue.
package screening

import (
	"github.com/jonathan/fairscreen/internal/parsing"
	"github.com/jonathan/fairscreen/internal/types"
)

// ShortlistThreshold is the fixed Stage-1 shortlist cutoff in ATS points.
// It mirrors the product's stated ATS behavior and is not configurable per run.
const ShortlistThreshold = 70.0

// KeywordResult is the Stage-1 outcome for one candidate.
type KeywordResult struct {
	ATSScore        float64
	Status          types.Stage1Status
	MatchedKeywords []string
	MissingKeywords []string
}

// ScreenKeywords simulates Stage-1 ATS keyword matching. The score is the
// fraction of required keywords found in the candidate's normalized skills and
// resume text, scaled to 0..100. Zero required keywords fails closed: score 0,
// rejected, never a silent shortlist.
func ScreenKeywords(candidate *types.Candidate, criteria *types.JobCriteria) KeywordResult {
	total := len(criteria.RequiredKeywords)
	if total == 0 {
		return KeywordResult{ATSScore: 0, Status: types.Stage1Rejected}
	}

	text := parsing.CandidateText(candidate.Skills, candidate.ResumeText)

	result := KeywordResult{}
	for _, kw := range criteria.RequiredKeywords {
		if parsing.ContainsKeyword(text, kw) {
			result.MatchedKeywords = append(result.MatchedKeywords, kw)
		} else {
			result.MissingKeywords = append(result.MissingKeywords, kw)
		}
	}

	result.ATSScore = 100 * float64(len(result.MatchedKeywords)) / float64(total)
	if result.ATSScore >= ShortlistThreshold {
		result.Status = types.Stage1Shortlisted
	} else {
		result.Status = types.Stage1Rejected
	}
	return result
}

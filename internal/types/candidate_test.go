package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_Validate(t *testing.T) {
	c := &Candidate{
		CandidateID:     "c1",
		Age:             34,
		Gender:          GenderFemale,
		ExperienceYears: 8,
	}
	require.NoError(t, c.Validate())
}

func TestCandidate_Validate_MissingID(t *testing.T) {
	c := &Candidate{Age: 30}
	assert.Error(t, c.Validate())
}

func TestCandidate_Validate_NegativeAge(t *testing.T) {
	c := &Candidate{CandidateID: "c1", Age: -1}
	assert.Error(t, c.Validate())
}

func TestBracketForAge(t *testing.T) {
	assert.Equal(t, BracketUnder30, BracketForAge(0))
	assert.Equal(t, BracketUnder30, BracketForAge(29))
	assert.Equal(t, Bracket30To45, BracketForAge(30))
	assert.Equal(t, Bracket30To45, BracketForAge(45))
	assert.Equal(t, BracketOver45, BracketForAge(46))
}

func TestJobCriteria_Validate(t *testing.T) {
	c := &JobCriteria{JobTitle: "Account Executive", RequiredKeywords: []string{"Salesforce"}}
	require.NoError(t, c.Validate())

	empty := &JobCriteria{}
	assert.Error(t, empty.Validate())

	blankKeyword := &JobCriteria{JobTitle: "AE", RequiredKeywords: []string{"Salesforce", ""}}
	assert.Error(t, blankKeyword.Validate())
}

func TestFinalStatus_Selected(t *testing.T) {
	assert.True(t, FinalShortlisted.Selected())
	assert.True(t, FinalRescued.Selected())
	assert.False(t, FinalRejected.Selected())
}

func TestScreeningOutcome_EvidenceFor(t *testing.T) {
	o := &ScreeningOutcome{
		Evidence: []SemanticEvidence{
			{Keyword: "Salesforce", CandidateTerm: "HubSpot", Similarity: 0.65},
			{Keyword: "Salesforce", CandidateTerm: "CRM administration", Similarity: 0.82},
			{Keyword: "KPI", CandidateTerm: "targets", Similarity: 0.7},
		},
	}

	assert.InDelta(t, 0.82, o.EvidenceFor("Salesforce"), 1e-9)
	assert.Zero(t, o.EvidenceFor("Leadership"))
}

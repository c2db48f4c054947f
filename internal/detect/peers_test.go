package detect

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fairscreen/internal/types"
)

func TestPeerComparison_FlagsDisparateTreatment(t *testing.T) {
	outcomes := []types.ScreeningOutcome{
		{
			CandidateID:     "m1",
			JobFamily:       types.FamilySoftwareEngineering,
			AgeBracket:      types.Bracket30To45,
			Gender:          types.GenderMale,
			ATSScore:        74,
			ExperienceYears: 6,
			Stage1Status:    types.Stage1Shortlisted,
			FinalStatus:     types.FinalShortlisted,
		},
		{
			CandidateID:     "f1",
			JobFamily:       types.FamilySoftwareEngineering,
			AgeBracket:      types.Bracket30To45,
			Gender:          types.GenderFemale,
			ATSScore:        68,
			ExperienceYears: 4,
			Stage1Status:    types.Stage1Rejected,
			FinalStatus:     types.FinalRejected,
		},
	}

	findings, err := PeerComparison(context.Background(), outcomes)
	require.NoError(t, err)

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, types.FindingPeerComparison, f.Kind)
	assert.Equal(t, []string{"f1"}, f.AffectedCandidateIDs)
	assert.Equal(t, "f1", f.PairA.CandidateID)
	assert.Equal(t, "m1", f.PairB.CandidateID)
	assert.InDelta(t, 6.0, f.Disparity, 1e-9)
}

func TestPeerComparison_IdenticalDemographicsNeverFlagged(t *testing.T) {
	outcomes := []types.ScreeningOutcome{
		{
			CandidateID: "a", JobFamily: types.FamilySales,
			AgeBracket: types.BracketUnder30, Gender: types.GenderFemale,
			ATSScore: 75, ExperienceYears: 3, FinalStatus: types.FinalShortlisted,
		},
		{
			CandidateID: "b", JobFamily: types.FamilySales,
			AgeBracket: types.BracketUnder30, Gender: types.GenderFemale,
			ATSScore: 68, ExperienceYears: 2, FinalStatus: types.FinalRejected,
		},
	}

	findings, err := PeerComparison(context.Background(), outcomes)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestPeerComparison_IncomparablePairsSkipped(t *testing.T) {
	base := types.ScreeningOutcome{
		JobFamily:  types.FamilyFinance,
		AgeBracket: types.BracketUnder30,
		Gender:     types.GenderFemale,
	}

	wideScore := base
	wideScore.CandidateID = "a"
	wideScore.ATSScore = 90
	wideScore.FinalStatus = types.FinalShortlisted

	other := base
	other.CandidateID = "b"
	other.Gender = types.GenderMale
	other.ATSScore = 60 // gap 30 > 15
	other.FinalStatus = types.FinalRejected

	findings, err := PeerComparison(context.Background(), []types.ScreeningOutcome{wideScore, other})
	require.NoError(t, err)
	assert.Empty(t, findings)

	// Same statuses but experience too far apart.
	wideExp := base
	wideExp.CandidateID = "c"
	wideExp.ATSScore = 70
	wideExp.ExperienceYears = 10
	wideExp.FinalStatus = types.FinalShortlisted

	junior := base
	junior.CandidateID = "d"
	junior.Gender = types.GenderMale
	junior.ATSScore = 68
	junior.ExperienceYears = 2
	junior.FinalStatus = types.FinalRejected

	findings, err = PeerComparison(context.Background(), []types.ScreeningOutcome{wideExp, junior})
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestPeerComparison_DifferentFamiliesNeverPaired(t *testing.T) {
	outcomes := []types.ScreeningOutcome{
		{
			CandidateID: "a", JobFamily: types.FamilySoftwareEngineering,
			AgeBracket: types.BracketUnder30, Gender: types.GenderMale,
			ATSScore: 72, FinalStatus: types.FinalShortlisted,
		},
		{
			CandidateID: "b", JobFamily: types.FamilyDataScience,
			AgeBracket: types.BracketOver45, Gender: types.GenderFemale,
			ATSScore: 70, FinalStatus: types.FinalRejected,
		},
	}

	findings, err := PeerComparison(context.Background(), outcomes)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestPeerComparison_RescuedSideCountsAsSelected(t *testing.T) {
	outcomes := []types.ScreeningOutcome{
		{
			CandidateID: "r1", JobFamily: types.FamilyMarketing,
			AgeBracket: types.BracketUnder30, Gender: types.GenderFemale,
			ATSScore: 55, ExperienceYears: 4, FinalStatus: types.FinalRescued,
		},
		{
			CandidateID: "x1", JobFamily: types.FamilyMarketing,
			AgeBracket: types.BracketOver45, Gender: types.GenderFemale,
			ATSScore: 60, ExperienceYears: 5, FinalStatus: types.FinalRejected,
		},
	}

	findings, err := PeerComparison(context.Background(), outcomes)
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, "x1", findings[0].PairA.CandidateID)
	assert.Equal(t, "r1", findings[0].PairB.CandidateID)
}

func TestPeerComparison_CancellationReturnsPartialResults(t *testing.T) {
	// A family large enough that the cursor passes several context checks.
	outcomes := make([]types.ScreeningOutcome, 0, 200)
	for i := 0; i < 200; i++ {
		status := types.FinalShortlisted
		gender := types.GenderMale
		if i%2 == 0 {
			status = types.FinalRejected
			gender = types.GenderFemale
		}
		outcomes = append(outcomes, types.ScreeningOutcome{
			CandidateID: fmt.Sprintf("c%03d", i),
			JobFamily:   types.FamilyOperations,
			AgeBracket:  types.Bracket30To45,
			Gender:      gender,
			ATSScore:    70,
			FinalStatus: status,
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	findings, err := PeerComparison(ctx, outcomes)
	require.Error(t, err)
	// Partial findings up to the first context check are still returned.
	assert.Less(t, len(findings), 200*199/2)
}

func TestPairCursor_VisitsEveryPairOnce(t *testing.T) {
	outcomes := []types.ScreeningOutcome{
		{CandidateID: "a", JobFamily: types.FamilyDesign},
		{CandidateID: "b", JobFamily: types.FamilyDesign},
		{CandidateID: "c", JobFamily: types.FamilyDesign},
		{CandidateID: "d", JobFamily: types.FamilyFinance},
		{CandidateID: "e", JobFamily: types.FamilyFinance},
	}

	cursor := newPairCursor(outcomes)
	seen := make(map[string]bool)
	for {
		a, b, ok := cursor.next()
		if !ok {
			break
		}
		key := a.CandidateID + "/" + b.CandidateID
		assert.False(t, seen[key], "pair %s visited twice", key)
		seen[key] = true
	}

	// 3 choose 2 within Design plus 1 pair within Finance.
	assert.Len(t, seen, 4)
}

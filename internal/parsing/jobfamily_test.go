package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/fairscreen/internal/types"
)

func TestAssignJobFamily_FromTargetRole(t *testing.T) {
	c := &types.Candidate{
		CandidateID: "c1",
		TargetRole:  "Senior Backend Software Engineer",
		// Skills suggesting another family are ignored when a target role exists.
		Skills: []string{"salesforce", "crm"},
	}

	assert.Equal(t, types.FamilySoftwareEngineering, AssignJobFamily(c))
}

func TestAssignJobFamily_FromSkillsAndResume(t *testing.T) {
	c := &types.Candidate{
		CandidateID: "c2",
		Skills:      []string{"Salesforce", "CRM"},
		ResumeText:  "Exceeded quota four quarters running; owned enterprise deal negotiation.",
	}

	assert.Equal(t, types.FamilySales, AssignJobFamily(c))
}

func TestAssignJobFamily_ExplicitFamilyWins(t *testing.T) {
	c := &types.Candidate{
		CandidateID: "c3",
		JobFamily:   types.FamilyFinance,
		Skills:      []string{"python"},
	}

	assert.Equal(t, types.FamilyFinance, AssignJobFamily(c))
}

func TestAssignJobFamily_TieBreaksByEnumerationOrder(t *testing.T) {
	// "data" hits Data Science and "design" hits Design, one keyword each;
	// Data Science comes first in enumeration order.
	c := &types.Candidate{
		CandidateID: "c4",
		ResumeText:  "data design",
	}

	assert.Equal(t, types.FamilyDataScience, AssignJobFamily(c))
}

func TestFamilyKeywords_AreNormalized(t *testing.T) {
	// Every keyword must equal its own tokenization, or the overlap lookup
	// in AssignJobFamily can never hit it.
	for family, keywords := range familyKeywords {
		for _, kw := range keywords {
			assert.Equal(t, []string{kw}, Tokenize(kw),
				"family %s keyword %q is not in normalized form", family, kw)
		}
	}
}

func TestAssignJobFamily_KubernetesSignalsSoftwareEngineering(t *testing.T) {
	// "Kubernetes" tokenizes to "kubernete"; the engineering signal must
	// still register so the stray "operation" hit cannot win outright.
	c := &types.Candidate{
		CandidateID: "c6",
		TargetRole:  "Kubernetes Platform Operations",
	}

	assert.Equal(t, types.FamilySoftwareEngineering, AssignJobFamily(c))
}

func TestAssignJobFamily_IsDeterministic(t *testing.T) {
	c := &types.Candidate{
		CandidateID: "c5",
		ResumeText:  "generalist with no obvious signal",
	}

	first := AssignJobFamily(c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AssignJobFamily(c))
	}
}

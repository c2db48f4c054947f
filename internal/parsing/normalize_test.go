package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_LowercasesAndStripsPunctuation(t *testing.T) {
	tokens := Tokenize("Led KPIs, dashboards & automation!")

	assert.Equal(t, []string{"led", "kpi", "dashboard", "automation"}, tokens)
}

func TestSingularize_PluralFolding(t *testing.T) {
	assert.Equal(t, "strategy", Singularize("strategies"))
	assert.Equal(t, "dashboard", Singularize("dashboards"))
	assert.Equal(t, "process", Singularize("processes"))
}

func TestSingularize_LeavesShortAndSpecialTokensAlone(t *testing.T) {
	assert.Equal(t, "aws", Singularize("aws"))
	assert.Equal(t, "analysis", Singularize("analysis"))
	assert.Equal(t, "business", Singularize("business"))
	assert.Equal(t, "k8s", Singularize("k8s"))
}

func TestContainsKeyword_TokenMatch(t *testing.T) {
	text := CandidateText([]string{"Python", "SQL"}, "Built ETL pipelines.")

	assert.True(t, ContainsKeyword(text, "python"))
	assert.True(t, ContainsKeyword(text, "Pipelines"))
	assert.False(t, ContainsKeyword(text, "Java"))
}

func TestContainsKeyword_SubstringMatchesLikeATS(t *testing.T) {
	text := CandidateText([]string{"JavaScript"}, "")

	// Substring matching mirrors real ATS behavior.
	assert.True(t, ContainsKeyword(text, "Java"))
}

func TestContainsKeyword_MultiWordKeyword(t *testing.T) {
	text := CandidateText(nil, "Owned the supply chain process end to end")

	assert.True(t, ContainsKeyword(text, "Supply Chain"))
	assert.False(t, ContainsKeyword(text, "Chain Supply"))
}

func TestContainsKeyword_EmptyKeyword(t *testing.T) {
	assert.False(t, ContainsKeyword("anything", ""))
	assert.False(t, ContainsKeyword("anything", "!!!"))
}

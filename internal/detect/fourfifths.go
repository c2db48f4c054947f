// Package detect implements the three independent bias analyzers that run
// over a fully screened candidate population.
package detect

import (
	"sort"

	"github.com/jonathan/fairscreen/internal/types"
)

const (
	// FourFifthsRatio is the adverse-impact boundary: a group is flagged
	// when its selection rate is strictly below this fraction of the best
	// group's selection rate.
	FourFifthsRatio = 0.8
	// MinGroupSize is the smallest group that can trigger a finding.
	// Smaller groups still appear in the finding's group stats for context.
	MinGroupSize = 5
)

type groupCount struct {
	size     int
	rejected int
	ids      []string
}

// FourFifths applies the Four-Fifths Rule to the screened population grouped
// by the given attribute. Selection is computed on final status, so a rescued
// candidate counts as selected. One finding is emitted per adversely
// impacted group of at least MinGroupSize.
func FourFifths(outcomes []types.ScreeningOutcome, attribute types.GroupingAttribute) []types.Finding {
	counts := make(map[string]*groupCount)
	var order []string
	for i := range outcomes {
		o := &outcomes[i]
		group := groupLabel(o, attribute)
		gc, ok := counts[group]
		if !ok {
			gc = &groupCount{}
			counts[group] = gc
			order = append(order, group)
		}
		gc.size++
		if !o.FinalStatus.Selected() {
			gc.rejected++
			gc.ids = append(gc.ids, o.CandidateID)
		}
	}
	sort.Strings(order)

	maxSelection := 0.0
	for _, gc := range counts {
		if rate := selectionRate(gc); rate > maxSelection {
			maxSelection = rate
		}
	}
	if maxSelection == 0 || len(counts) < 2 {
		return nil
	}

	stats := make([]types.GroupStats, 0, len(order))
	for _, group := range order {
		gc := counts[group]
		rate := selectionRate(gc)
		stats = append(stats, types.GroupStats{
			Group:         group,
			Size:          gc.size,
			RejectedCount: gc.rejected,
			SelectionRate: rate,
			Flagged:       gc.size >= MinGroupSize && rate < FourFifthsRatio*maxSelection,
		})
	}

	var findings []types.Finding
	for i, st := range stats {
		if !st.Flagged {
			continue
		}
		gc := counts[st.Group]
		ids := append([]string(nil), gc.ids...)
		sort.Strings(ids)
		findings = append(findings, types.Finding{
			Kind:                 types.FindingFourFifths,
			Attribute:            attribute,
			Disparity:            stats[i].SelectionRate / maxSelection,
			AffectedCandidateIDs: ids,
			Groups:               stats,
			SupportingCount:      gc.size,
		})
	}
	return findings
}

func selectionRate(gc *groupCount) float64 {
	if gc.size == 0 {
		return 0
	}
	return 1 - float64(gc.rejected)/float64(gc.size)
}

func groupLabel(o *types.ScreeningOutcome, attribute types.GroupingAttribute) string {
	if attribute == types.GroupByGender {
		return string(o.Gender)
	}
	return string(o.AgeBracket)
}

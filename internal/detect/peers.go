package detect

import (
	"context"
	"sort"

	"github.com/jonathan/fairscreen/internal/types"
)

const (
	// MaxATSScoreGap is the largest ATS score difference (in points) at
	// which two candidates are still considered comparable.
	MaxATSScoreGap = 15.0
	// MaxExperienceGap is the largest experience difference (in years) at
	// which two candidates are still considered comparable.
	MaxExperienceGap = 3
)

// pairCursor walks all unordered candidate pairs within a job family, one
// family at a time. Pairs are produced lazily so the analyzer can stop at a
// budget or on cancellation and still return every finding seen so far.
type pairCursor struct {
	families [][]*types.ScreeningOutcome
	f, i, j  int
}

func newPairCursor(outcomes []types.ScreeningOutcome) *pairCursor {
	byFamily := make(map[types.JobFamily][]*types.ScreeningOutcome)
	for i := range outcomes {
		o := &outcomes[i]
		byFamily[o.JobFamily] = append(byFamily[o.JobFamily], o)
	}

	keys := make([]string, 0, len(byFamily))
	for k := range byFamily {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	families := make([][]*types.ScreeningOutcome, 0, len(keys))
	for _, k := range keys {
		members := byFamily[types.JobFamily(k)]
		sort.Slice(members, func(a, b int) bool {
			return members[a].CandidateID < members[b].CandidateID
		})
		families = append(families, members)
	}
	return &pairCursor{families: families, j: 1}
}

// next returns the next unordered pair, or false when exhausted.
func (c *pairCursor) next() (*types.ScreeningOutcome, *types.ScreeningOutcome, bool) {
	for c.f < len(c.families) {
		members := c.families[c.f]
		if c.i < len(members)-1 {
			if c.j < len(members) {
				a, b := members[c.i], members[c.j]
				c.j++
				return a, b, true
			}
			c.i++
			c.j = c.i + 1
			continue
		}
		c.f++
		c.i = 0
		c.j = 1
	}
	return nil, nil, false
}

// PeerComparison flags comparable same-family candidate pairs whose final
// status differs across a demographic line. Two candidates are comparable
// when their ATS scores are within MaxATSScoreGap points and their experience
// within MaxExperienceGap years. The pair walk is O(n²) per family and checks
// ctx periodically; on cancellation the findings collected so far are
// returned along with ctx's error.
func PeerComparison(ctx context.Context, outcomes []types.ScreeningOutcome) ([]types.Finding, error) {
	const ctxCheckInterval = 256

	cursor := newPairCursor(outcomes)
	var findings []types.Finding
	seen := 0
	for {
		a, b, ok := cursor.next()
		if !ok {
			return findings, nil
		}
		seen++
		if seen%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return findings, err
			}
		}

		if f := comparePair(a, b); f != nil {
			findings = append(findings, *f)
		}
	}
}

func comparePair(a, b *types.ScreeningOutcome) *types.Finding {
	gap := a.ATSScore - b.ATSScore
	if gap < 0 {
		gap = -gap
	}
	expGap := a.ExperienceYears - b.ExperienceYears
	if expGap < 0 {
		expGap = -expGap
	}
	if gap > MaxATSScoreGap || expGap > MaxExperienceGap {
		return nil
	}

	// Disparate treatment requires one selected and one rejected.
	if a.FinalStatus.Selected() == b.FinalStatus.Selected() {
		return nil
	}
	// And a demographic difference; identical demographics never flag.
	if a.AgeBracket == b.AgeBracket && a.Gender == b.Gender {
		return nil
	}

	loser, winner := a, b
	if a.FinalStatus.Selected() {
		loser, winner = b, a
	}
	return &types.Finding{
		Kind:                 types.FindingPeerComparison,
		Disparity:            gap,
		AffectedCandidateIDs: []string{loser.CandidateID},
		PairA:                snapshot(loser),
		PairB:                snapshot(winner),
		SupportingCount:      2,
	}
}

func snapshot(o *types.ScreeningOutcome) *types.PairSnapshot {
	return &types.PairSnapshot{
		CandidateID:     o.CandidateID,
		AgeBracket:      o.AgeBracket,
		Gender:          o.Gender,
		ATSScore:        o.ATSScore,
		ExperienceYears: o.ExperienceYears,
		FinalStatus:     o.FinalStatus,
	}
}

// Package alerting converts detector findings into ranked, deduplicated
// alerts with severity and recommendations.
package alerting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/fairscreen/internal/types"
)

const (
	// criticalDisparityRatio: a four-fifths selection-rate ratio below this
	// escalates the alert from high to critical.
	criticalDisparityRatio = 0.5
	// highToxicityRate: a toxic-keyword rejection rate above this escalates
	// the alert from medium to high.
	highToxicityRate = 0.75
)

// Synthesize merges findings into alerts. Findings of the same kind whose
// affected candidate sets overlap collapse (transitively) into one alert;
// the merged alert carries the union of candidates and the most urgent
// member severity. Output order is deterministic: severity rank, then kind,
// then title.
func Synthesize(findings []types.Finding) []types.Alert {
	var alerts []types.Alert
	for _, cluster := range clusterByOverlap(findings) {
		alerts = append(alerts, buildAlert(cluster))
	}

	sort.Slice(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Title < b.Title
	})
	return alerts
}

// clusterByOverlap groups same-kind findings whose candidate sets intersect,
// closing transitively, and returns clusters in first-seen order.
func clusterByOverlap(findings []types.Finding) [][]types.Finding {
	var clusters [][]types.Finding
	var clusterIDs []map[string]bool

	for _, f := range findings {
		var hits []int
		for ci := range clusters {
			if clusters[ci][0].Kind == f.Kind && intersects(clusterIDs[ci], f.AffectedCandidateIDs) {
				hits = append(hits, ci)
			}
		}

		if len(hits) == 0 {
			ids := make(map[string]bool)
			addAll(ids, f.AffectedCandidateIDs)
			clusters = append(clusters, []types.Finding{f})
			clusterIDs = append(clusterIDs, ids)
			continue
		}

		// Fold every intersecting cluster (f may bridge several) into the
		// first hit, then drop the folded ones back to front.
		first := hits[0]
		clusters[first] = append(clusters[first], f)
		addAll(clusterIDs[first], f.AffectedCandidateIDs)
		for k := len(hits) - 1; k >= 1; k-- {
			ci := hits[k]
			clusters[first] = append(clusters[first], clusters[ci]...)
			for id := range clusterIDs[ci] {
				clusterIDs[first][id] = true
			}
			clusters = append(clusters[:ci], clusters[ci+1:]...)
			clusterIDs = append(clusterIDs[:ci], clusterIDs[ci+1:]...)
		}
	}
	return clusters
}

func intersects(set map[string]bool, ids []string) bool {
	for _, id := range ids {
		if set[id] {
			return true
		}
	}
	// Findings with no affected candidates never merge with anything.
	return false
}

func addAll(set map[string]bool, ids []string) {
	for _, id := range ids {
		set[id] = true
	}
}

func buildAlert(cluster []types.Finding) types.Alert {
	idSet := make(map[string]bool)
	severity := types.SeverityLow
	for _, f := range cluster {
		addAll(idSet, f.AffectedCandidateIDs)
		if s := severityFor(&f); s.Rank() < severity.Rank() {
			severity = s
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	alert := types.Alert{
		Kind:                   cluster[0].Kind,
		Severity:               severity,
		AffectedCandidateCount: len(ids),
		AffectedCandidateIDs:   ids,
		FindingCount:           len(cluster),
	}
	alert.Title, alert.Detail = describe(cluster, len(ids))
	alert.Recommendations = recommend(cluster, len(ids))
	return alert
}

func severityFor(f *types.Finding) types.Severity {
	switch f.Kind {
	case types.FindingFourFifths:
		if f.Disparity < criticalDisparityRatio {
			return types.SeverityCritical
		}
		return types.SeverityHigh
	case types.FindingPeerComparison:
		// Direct disparate-treatment evidence.
		return types.SeverityCritical
	case types.FindingKeywordToxicity:
		if f.Disparity > highToxicityRate {
			return types.SeverityHigh
		}
		return types.SeverityMedium
	default:
		return types.SeverityLow
	}
}

func describe(cluster []types.Finding, affected int) (title, detail string) {
	f := cluster[0]
	switch f.Kind {
	case types.FindingFourFifths:
		groups := flaggedGroups(cluster)
		title = fmt.Sprintf("Four-fifths rule violation (%s)", f.Attribute)
		detail = fmt.Sprintf(
			"Selection rate for %s fell below four-fifths of the most selected group; %d candidates affected.",
			strings.Join(groups, ", "), affected)
	case types.FindingPeerComparison:
		title = "Disparate treatment among comparable peers"
		detail = fmt.Sprintf(
			"%d comparable candidate pair(s) with matching scores and experience were decided differently across a demographic line; %d candidates affected.",
			len(cluster), affected)
	case types.FindingKeywordToxicity:
		keywords := clusterKeywords(cluster)
		title = fmt.Sprintf("Toxic required keyword(s): %s", strings.Join(keywords, ", "))
		detail = fmt.Sprintf(
			"Candidates with semantic evidence of the equivalent skill are rejected at %.0f%% for lacking the literal keyword; %d candidates affected.",
			maxDisparity(cluster)*100, affected)
	}
	return title, detail
}

func recommend(cluster []types.Finding, affected int) []string {
	f := cluster[0]
	switch f.Kind {
	case types.FindingFourFifths:
		groups := flaggedGroups(cluster)
		return []string{
			fmt.Sprintf("Audit the screening criteria for proxies that disadvantage the %s group(s) %s.", f.Attribute, strings.Join(groups, ", ")),
			fmt.Sprintf("Manually review the %d affected rejections before finalizing the shortlist.", affected),
			"Re-run the analysis after adjusting criteria to confirm the disparity clears the four-fifths bar.",
		}
	case types.FindingPeerComparison:
		return []string{
			fmt.Sprintf("Escalate the %d flagged pair decision(s) for human review; comparable candidates received different outcomes.", len(cluster)),
			"Document the business rationale for each differing decision or reverse it.",
		}
	case types.FindingKeywordToxicity:
		keywords := clusterKeywords(cluster)
		return []string{
			fmt.Sprintf("Add synonyms or equivalent-skill matching for: %s.", strings.Join(keywords, ", ")),
			fmt.Sprintf("Reconsider the %d rejection(s) of candidates showing equivalent skill.", affected),
		}
	default:
		return nil
	}
}

func flaggedGroups(cluster []types.Finding) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, f := range cluster {
		for _, g := range f.Groups {
			if g.Flagged && !seen[g.Group] {
				seen[g.Group] = true
				groups = append(groups, g.Group)
			}
		}
	}
	sort.Strings(groups)
	return groups
}

func clusterKeywords(cluster []types.Finding) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, f := range cluster {
		if f.Keyword != "" && !seen[f.Keyword] {
			seen[f.Keyword] = true
			keywords = append(keywords, f.Keyword)
		}
	}
	sort.Strings(keywords)
	return keywords
}

func maxDisparity(cluster []types.Finding) float64 {
	max := 0.0
	for _, f := range cluster {
		if f.Disparity > max {
			max = f.Disparity
		}
	}
	return max
}

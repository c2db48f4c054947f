// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/fairscreen/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs a human-readable digest of a completed run.
func (p *Printer) PrintSummary(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:         %s\n", result.JobTitle))
	sb.WriteString(fmt.Sprintf("Analyzed:    %d candidates\n", result.Summary.TotalAnalyzed))
	sb.WriteString(fmt.Sprintf("Shortlisted: %d\n", result.Summary.ShortlistedCount))
	sb.WriteString(fmt.Sprintf("Rescued:     %d\n", result.Summary.RescuedCount))
	sb.WriteString(fmt.Sprintf("Rejected:    %d\n", result.Summary.RejectedCount))
	sb.WriteString(fmt.Sprintf("Avg ATS:     %.1f\n", result.Summary.AverageATSScore))
	sb.WriteString(fmt.Sprintf("Avg semantic: %.2f", result.Summary.AverageSemanticScore))

	p.printBox("Analysis Summary", sb.String())
}

// PrintAlerts outputs the synthesized alerts, most urgent first.
func (p *Printer) PrintAlerts(alerts []types.Alert) {
	if len(alerts) == 0 {
		p.printBox("Alerts", "No bias alerts for this batch.")
		return
	}

	var sb strings.Builder
	for i, alert := range alerts {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(alert.Severity)), alert.Title))
		sb.WriteString(fmt.Sprintf("  affects %d candidate(s)\n", alert.AffectedCandidateCount))
		if i < len(alerts)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("Alerts (%d)", len(alerts)), sb.String())
}

// PrintRescues lists the rescued candidates with their strongest evidence.
func (p *Printer) PrintRescues(outcomes []types.ScreeningOutcome) {
	var sb strings.Builder
	shown := 0
	rescued := 0
	for i := range outcomes {
		o := &outcomes[i]
		if o.FinalStatus != types.FinalRescued {
			continue
		}
		rescued++
		if shown >= maxItemsToShow {
			continue
		}
		shown++
		sb.WriteString(fmt.Sprintf("%s  ats=%.0f  semantic=%.2f\n", o.CandidateID, o.ATSScore, o.SemanticScore))
		if len(o.Evidence) > 0 {
			ev := o.Evidence[0]
			sb.WriteString(fmt.Sprintf("  %q ~ %q (%.2f)\n", ev.Keyword, ev.CandidateTerm, ev.Similarity))
		}
	}
	if rescued == 0 {
		return
	}
	if rescued > shown {
		sb.WriteString(fmt.Sprintf("... and %d more", rescued-shown))
	}
	p.printBox(fmt.Sprintf("Rescued Candidates (%d)", rescued), sb.String())
}

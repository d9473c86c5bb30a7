// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/kridha/fit-engine/internal/types"
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

// PrintVerdict outputs the overall score, confidence, and recommendation band.
func (p *Printer) PrintVerdict(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:      %.1f / 10\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Composite:  %+.4f\n", result.CompositeRaw))
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", result.Confidence*100))
	sb.WriteString(fmt.Sprintf("Verdict:    %s", result.VerdictBand()))

	p.printBox("FIT VERDICT", sb.String())
}

// PrintPrincipleScores outputs the strongest applicable principle scores.
func (p *Printer) PrintPrincipleScores(result *types.ScoreResult) {
	if result == nil || len(result.PrincipleScores) == 0 {
		return
	}

	applicable := make([]types.PrincipleResult, 0, len(result.PrincipleScores))
	for _, pr := range result.PrincipleScores {
		if pr.Applicable {
			applicable = append(applicable, pr)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Applicable: %d of %d principles\n\n", len(applicable), len(result.PrincipleScores)))

	count := min(len(applicable), maxItemsToShow)
	for i := 0; i < count; i++ {
		pr := applicable[i]
		marker := "•"
		if pr.Score < -0.15 {
			marker = "⚠"
		}
		sb.WriteString(fmt.Sprintf("%s %-24s %+.3f\n", marker, pr.Name, pr.Score))
	}

	if len(applicable) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more principles", len(applicable)-maxItemsToShow))
	}

	p.printBox("PRINCIPLE SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGoalVerdicts outputs the per-goal helps/hurts verdicts.
func (p *Printer) PrintGoalVerdicts(result *types.ScoreResult) {
	if result == nil || len(result.GoalVerdicts) == 0 {
		return
	}

	var sb strings.Builder
	for i, gv := range result.GoalVerdicts {
		sb.WriteString(fmt.Sprintf("%-20s %-8s (%+.3f)\n", gv.Goal, gv.Verdict, gv.Score))
		if i == maxItemsToShow-1 && len(result.GoalVerdicts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more goals\n", len(result.GoalVerdicts)-maxItemsToShow))
			break
		}
	}

	p.printBox("STYLING GOALS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFixes outputs the suggested styling fixes, highest priority first.
func (p *Printer) PrintFixes(result *types.ScoreResult) {
	if result == nil || len(result.Fixes) == 0 {
		return
	}

	var sb strings.Builder
	for i, fix := range result.Fixes {
		change := fix.WhatToChange
		if len(change) > 45 {
			change = change[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("P%d %s (+%.2f)\n", fix.Priority, change, fix.ExpectedImprovement))
		if i < len(result.Fixes)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTED FIXES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReasoningChain outputs the stage-by-stage diagnostic log.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReasoningChain(result *types.ScoreResult) {
	if result == nil || len(result.ReasoningChain) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO REASONING RECORDED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, step := range result.ReasoningChain {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, step))
		if i < len(result.ReasoningChain)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("REASONING CHAIN", sb.String())
}

// PrintResult outputs the full verbose report for one scored garment.
func (p *Printer) PrintResult(result *types.ScoreResult) {
	p.PrintVerdict(result)
	p.PrintPrincipleScores(result)
	p.PrintGoalVerdicts(result)
	p.PrintFixes(result)
	p.PrintReasoningChain(result)
}

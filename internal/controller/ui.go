// Package controller renders traceability results for the command line.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// LoadSummary describes what a load session ingested.
type LoadSummary struct {
	Requirements int
	Files        int
}

// UI defines how load results and index queries are presented.
type UI interface {
	DisplayLoadSummary(ctx context.Context, summary LoadSummary)
	DisplayValidationErrors(ctx context.Context, err error)
	DisplayCoverage(ctx context.Context, infos []*m.TraceabilityInfo, summary m.CoverageSummary)
	DisplayRequirementLinks(ctx context.Context, req *m.Requirement, links []m.FileLink)
	DisplayFileRequirements(ctx context.Context, path m.Path, general, rangeScoped []*m.Requirement)
}

// NewUI returns the UI for cmd. Styling is enabled on terminals only.
func NewUI(cmd *cobra.Command, styled bool) UI {
	return NewSimpleUI(cmd, styled)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

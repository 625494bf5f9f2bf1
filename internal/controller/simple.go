package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// Coverage grades used to color ratios on a terminal.
const (
	goodCoverage = 0.8
	fairCoverage = 0.5
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	fairStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	poorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// SimpleUI implements UI using the cobra command's output streams.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplayLoadSummary prints how many requirements and files were indexed.
func (s *SimpleUI) DisplayLoadSummary(ctx context.Context, summary LoadSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %d requirement(s), %d file(s)\n",
		s.paint(goodStyle, "Traceability index OK:"), summary.Requirements, summary.Files)
}

// DisplayValidationErrors prints every error joined into err, one per line.
func (s *SimpleUI) DisplayValidationErrors(ctx context.Context, err error) {
	if ctx.Err() != nil || err == nil {
		return
	}

	problems := flattenErrors(err)

	s.errorf("%s\n", s.paint(errorStyle, fmt.Sprintf("Traceability index has %d problem(s):", len(problems))))

	for _, problem := range problems {
		s.errorf("  - %s\n", problem)
	}
}

// DisplayCoverage prints a per-file coverage table and the overall ratio.
func (s *SimpleUI) DisplayCoverage(ctx context.Context, infos []*m.TraceabilityInfo, summary m.CoverageSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines", "Covered", "Coverage"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, info := range infos {
		table.Append([]string{
			string(info.Path),
			fmt.Sprintf("%d", info.TotalLines),
			fmt.Sprintf("%d", info.CoveredLines),
			formatRatio(info.CoverageRatio()),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", summary.Files),
		fmt.Sprintf("%d", summary.TotalLines),
		fmt.Sprintf("%d", summary.CoveredLines),
		formatRatio(summary.Ratio()),
	})

	table.Render()

	s.printf("\n%s", tableBuffer.String())
	s.printf("Requirement coverage: %s\n", s.paint(gradeStyle(summary.Ratio()), formatRatio(summary.Ratio())))
}

// DisplayRequirementLinks prints the files a requirement is traced to.
func (s *SimpleUI) DisplayRequirementLinks(ctx context.Context, req *m.Requirement, links []m.FileLink) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.paint(headingStyle, requirementLabel(req)))

	if len(links) == 0 {
		s.printf("  no source files\n")
		return
	}

	for _, link := range links {
		s.printf("  %s%s\n", link.Reference.Path, describeReference(link.Reference))

		if link.Markers == nil {
			s.printf("    whole file\n")
			continue
		}

		for _, marker := range link.Markers {
			s.printf("    lines %s (%s)\n", marker.Range(), marker.Kind)
		}
	}
}

// DisplayFileRequirements prints the requirements of one file, split into
// whole-file and range-scoped ones.
func (s *SimpleUI) DisplayFileRequirements(ctx context.Context, path m.Path, general, rangeScoped []*m.Requirement) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.paint(headingStyle, string(path)))

	if general == nil && rangeScoped == nil {
		s.printf("  no requirements\n")
		return
	}

	s.printf("  whole file:\n")
	s.printRequirements(general)
	s.printf("  ranges:\n")
	s.printRequirements(rangeScoped)
}

func (s *SimpleUI) printRequirements(reqs []*m.Requirement) {
	if len(reqs) == 0 {
		s.printf("    -\n")
		return
	}

	for _, req := range reqs {
		s.printf("    %s\n", requirementLabel(req))
	}
}

func (s *SimpleUI) paint(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func requirementLabel(req *m.Requirement) string {
	if req.Title == "" {
		return req.UID
	}

	return req.UID + " " + req.Title
}

func describeReference(ref m.FileReference) string {
	switch {
	case ref.Function != "":
		return " (function " + ref.Function + ")"
	case ref.Class != "":
		return " (class " + ref.Class + ")"
	case ref.Range != nil:
		return " (lines " + ref.Range.String() + ")"
	case ref.Implicit:
		return " (in-code marker)"
	}

	return ""
}

func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func gradeStyle(ratio float64) lipgloss.Style {
	switch {
	case ratio >= goodCoverage:
		return goodStyle
	case ratio >= fairCoverage:
		return fairStyle
	}

	return poorStyle
}

// flattenErrors expands errors joined with errors.Join, recursively.
func flattenErrors(err error) []string {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []string{err.Error()}
	}

	var problems []string
	for _, inner := range joined.Unwrap() {
		problems = append(problems, flattenErrors(inner)...)
	}

	return problems
}

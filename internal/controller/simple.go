package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "scanconv.dev/pkg/scanconv/internal/model"
)

// SimpleUI implements UI on top of a cobra command's output streams.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool

	warnStyle lipgloss.Style
	failStyle lipgloss.Style
	okStyle   lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{
		cmd:       cmd,
		styled:    styled,
		warnStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		failStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		okStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	}
}

// DisplayDiagnostic prints a warning line to the error stream.
func (s *SimpleUI) DisplayDiagnostic(ctx context.Context, diagnostic m.Diagnostic) {
	if err := ctx.Err(); err != nil {
		return
	}

	location := string(diagnostic.File)
	if diagnostic.Line > 0 {
		location = fmt.Sprintf("%s:%d", diagnostic.File, diagnostic.Line)
	}

	s.fprintf(s.cmd.ErrOrStderr(), "%s %s in file %s\n", s.label(s.warnStyle, "Warning:"), diagnostic.Message, location)
}

// DisplaySummary prints one row per group and the document digest.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.fprintf(s.cmd.OutOrStdout(), "\n%s", renderSummaryTable(report))
	s.fprintf(s.cmd.OutOrStdout(), "%s %s (sha1sum %s)\n", s.label(s.okStyle, "Wrote"), report.Output, report.Digest)
}

func renderSummaryTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Group", "Technology", "Transponders"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	total := 0

	for _, group := range report.Groups {
		table.Append([]string{group.Name, group.Variant.String(), fmt.Sprintf("%d", group.Descriptors)})
		total += group.Descriptors
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Groups %d", len(report.Groups)),
		fmt.Sprintf("Warnings %d", len(report.Diagnostics)),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayVerification prints one status line per checked document.
func (s *SimpleUI) DisplayVerification(ctx context.Context, results []m.VerifyResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, result := range results {
		if !result.OK() {
			s.fprintf(s.cmd.OutOrStdout(), "%s %s: %v\n", s.label(s.failStyle, "FAILED"), result.Path, result.Err)
			continue
		}

		suffix := ""
		if result.Legacy {
			suffix = " (legacy digest)"
		}

		s.fprintf(s.cmd.OutOrStdout(), "%s %s: %s%s\n", s.label(s.okStyle, "OK"), result.Path, result.Computed, suffix)
	}
}

// DisplayDiff prints a unified diff, or a note when the documents match.
func (s *SimpleUI) DisplayDiff(ctx context.Context, existing, fresh m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if strings.TrimSpace(diff) == "" {
		s.fprintf(s.cmd.OutOrStdout(), "%s %s is up to date with %s\n", s.label(s.okStyle, "OK"), existing, fresh)
		return
	}

	s.fprintf(s.cmd.OutOrStdout(), "%s", diff)
}

func (s *SimpleUI) label(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) fprintf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}

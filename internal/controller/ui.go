// Package controller provides the operator-facing output of scanconv.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "scanconv.dev/pkg/scanconv/internal/model"
)

// UI defines how run results reach the operator. Warnings go to the error
// stream as they happen; summaries go to the output stream.
type UI interface {
	DisplayDiagnostic(ctx context.Context, diagnostic m.Diagnostic)
	DisplaySummary(ctx context.Context, report m.RunReport)
	DisplayVerification(ctx context.Context, results []m.VerifyResult)
	DisplayDiff(ctx context.Context, existing, fresh m.Path, diff string)
}

// NewUI returns the UI for cmd, with styled labels when styled is true.
func NewUI(cmd *cobra.Command, styled bool) UI {
	return NewSimpleUI(cmd, styled)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

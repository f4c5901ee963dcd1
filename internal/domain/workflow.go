// Package domain contains the scan file conversion workflow and its rules.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"scanconv.dev/pkg/scanconv/internal/adapter"
	"scanconv.dev/pkg/scanconv/internal/controller"
	m "scanconv.dev/pkg/scanconv/internal/model"
)

const outputFilePerm = 0o644

// Clock returns the time a document is dated with.
type Clock func() time.Time

// ConvertArgs contains the arguments for one conversion run.
type ConvertArgs struct {
	ScanRoot       m.Path
	Output         m.Path
	Report         m.Path
	Provenance     string
	KeepEmpty      bool
	Strict         bool
	LegacyChecksum bool
}

// VerifyArgs lists documents whose checksum trailer should be checked.
type VerifyArgs struct {
	Paths   []m.Path
	Threads int
}

// DiffArgs compares a fresh build of ScanRoot against an existing document.
type DiffArgs struct {
	ScanRoot   m.Path
	Existing   m.Path
	Provenance string
	KeepEmpty  bool
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Convert(ctx context.Context, args ConvertArgs) error
	Verify(ctx context.Context, args VerifyArgs) error
	Diff(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	GroupBuilder
	now Clock
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
// It holds no per-run state; every call builds its document from scratch.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	builder GroupBuilder,
	now Clock,
) Workflow {
	if now == nil {
		now = time.Now
	}

	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		GroupBuilder:    builder,
		now:             now,
	}
}

type buildArgs struct {
	root       m.Path
	provenance string
	keepEmpty  bool
	seal       SealOptions
}

// Convert scans every technology directory, seals the document and writes
// it. Nothing is written unless every step before succeeded.
func (w *workflow) Convert(ctx context.Context, args ConvertArgs) error {
	doc, diagnostics, err := w.build(ctx, buildArgs{
		root:       args.ScanRoot,
		provenance: args.Provenance,
		keepEmpty:  args.KeepEmpty,
		seal:       SealOptions{Legacy: args.LegacyChecksum},
	})
	if err != nil {
		return err
	}

	if args.Strict && len(diagnostics) > 0 {
		slog.Error("Refusing to write output", "output", args.Output, "warnings", len(diagnostics))
		return fmt.Errorf("%w: %d warning(s)", ErrWarningsAsErrors, len(diagnostics))
	}

	if err := w.WriteFile(ctx, args.Output, doc.Bytes(), outputFilePerm); err != nil {
		slog.Error("Failed to write output", "output", args.Output, "error", err)
		return fmt.Errorf("%w %s: %w", ErrUnwritableOutput, args.Output, err)
	}

	slog.Info("Wrote scan file", "output", args.Output, "groups", len(doc.Groups), "sha1sum", doc.Digest)

	report := newRunReport(args.ScanRoot, args.Output, doc, diagnostics)

	// The output is already in place, so a lost report only warns.
	if args.Report != "" {
		if err := w.SaveReport(ctx, args.Report, report); err != nil {
			w.reportDiagnostic(ctx, m.Diagnostic{
				Severity: m.SeverityWarning,
				Kind:     m.KindReportNotSaved,
				File:     args.Report,
				Message:  fmt.Sprintf("run report not saved: %v", err),
			})
		}
	}

	w.DisplaySummary(ctx, report)

	return nil
}

// build runs the scan for all variants in document order.
func (w *workflow) build(ctx context.Context, args buildArgs) (*m.Document, []m.Diagnostic, error) {
	provenance := args.provenance
	if provenance == "" {
		provenance = DefaultProvenance
	}

	var (
		groups      []m.Group
		diagnostics []m.Diagnostic
	)

	for _, variant := range m.Variants {
		variantGroups, variantDiagnostics, err := w.BuildGroups(ctx, ScanArgs{
			Root:      args.root,
			Variant:   variant,
			KeepEmpty: args.keepEmpty,
		})

		for _, diagnostic := range variantDiagnostics {
			w.reportDiagnostic(ctx, diagnostic)
		}

		diagnostics = append(diagnostics, variantDiagnostics...)

		if err != nil {
			return nil, diagnostics, fmt.Errorf("scan %s: %w", variant, err)
		}

		groups = append(groups, variantGroups...)
	}

	return BuildDocument(provenance, w.now(), groups, args.seal), diagnostics, nil
}

func (w *workflow) reportDiagnostic(ctx context.Context, diagnostic m.Diagnostic) {
	slog.Warn("Scan file warning",
		"kind", diagnostic.Kind,
		"file", diagnostic.File,
		"line", diagnostic.Line,
		"message", diagnostic.Message,
	)
	w.DisplayDiagnostic(ctx, diagnostic)
}

func newRunReport(root, output m.Path, doc *m.Document, diagnostics []m.Diagnostic) m.RunReport {
	groups := make([]m.GroupSummary, 0, len(doc.Groups))
	for _, group := range doc.Groups {
		groups = append(groups, m.GroupSummary{
			Name:        group.Name,
			Variant:     group.Variant,
			Descriptors: len(group.Descriptors),
		})
	}

	return m.RunReport{
		ScanRoot:    root,
		Output:      output,
		Date:        doc.Date,
		Digest:      doc.Digest,
		Groups:      groups,
		Diagnostics: diagnostics,
	}
}

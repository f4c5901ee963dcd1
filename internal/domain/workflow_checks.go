package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	m "scanconv.dev/pkg/scanconv/internal/model"
)

const diffContextLines = 3

// ErrNoDocuments is returned by Verify when called without paths.
var ErrNoDocuments = errors.New("no documents to verify")

// Verify checks the checksum trailer of every document in args.Paths.
func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	if len(args.Paths) == 0 {
		return ErrNoDocuments
	}

	results := make([]m.VerifyResult, len(args.Paths))

	var group errgroup.Group
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, path := range args.Paths {
		group.Go(func() error {
			content, err := w.ReadFile(ctx, path)
			if err != nil {
				results[i] = m.VerifyResult{Path: path, Err: fmt.Errorf("%w %s: %w", ErrUnreadableFile, path, err)}
				return nil
			}

			results[i] = VerifyDocument(path, content)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	w.DisplayVerification(ctx, results)

	var failures []error

	for _, result := range results {
		if result.OK() {
			slog.Debug("Checksum verified", "path", result.Path, "sha1sum", result.Computed, "legacy", result.Legacy)
			continue
		}

		slog.Error("Checksum verification failed", "path", result.Path, "error", result.Err)
		failures = append(failures, fmt.Errorf("%s: %w", result.Path, result.Err))
	}

	return errors.Join(failures...)
}

// Diff builds the document for args.ScanRoot in memory and shows how it
// differs from args.Existing, ignoring the date and the trailer.
func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	existing, err := w.ReadFile(ctx, args.Existing)
	if err != nil {
		slog.Error("Failed to read existing document", "path", args.Existing, "error", err)
		return fmt.Errorf("%w %s: %w", ErrUnreadableFile, args.Existing, err)
	}

	doc, _, err := w.build(ctx, buildArgs{
		root:       args.ScanRoot,
		provenance: args.Provenance,
		keepEmpty:  args.KeepEmpty,
	})
	if err != nil {
		return err
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(StripVolatile(existing)),
		B:        difflib.SplitLines(StripVolatile(doc.Bytes())),
		FromFile: string(args.Existing),
		ToFile:   string(args.ScanRoot),
		Context:  diffContextLines,
	})
	if err != nil {
		return fmt.Errorf("render diff: %w", err)
	}

	w.DisplayDiff(ctx, args.Existing, args.ScanRoot, diff)

	return nil
}

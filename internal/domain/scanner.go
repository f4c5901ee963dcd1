package domain

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"scanconv.dev/pkg/scanconv/internal/adapter"
	"scanconv.dev/pkg/scanconv/internal/codec"
	m "scanconv.dev/pkg/scanconv/internal/model"
)

const (
	maxLineLength = 1 << 20
	byteOrderMark = "\ufeff"
)

// ScanArgs selects one technology directory below a scan root.
type ScanArgs struct {
	Root      m.Path
	Variant   m.Variant
	KeepEmpty bool
}

// GroupBuilder turns the files of one technology directory into groups, one
// per file, in file name order. Descriptors inside a group are canonical and
// sorted with CompareNumeric.
type GroupBuilder interface {
	BuildGroups(ctx context.Context, args ScanArgs) ([]m.Group, []m.Diagnostic, error)
}

type groupBuilder struct {
	adapter.SourceFSAdapter
	canonicalizer *Canonicalizer
}

// NewGroupBuilder creates a GroupBuilder reading through fsAdapter and
// canonicalizing lines with c.
func NewGroupBuilder(fsAdapter adapter.SourceFSAdapter, c codec.Codec) GroupBuilder {
	return &groupBuilder{
		SourceFSAdapter: fsAdapter,
		canonicalizer:   NewCanonicalizer(c),
	}
}

func (b *groupBuilder) BuildGroups(ctx context.Context, args ScanArgs) ([]m.Group, []m.Diagnostic, error) {
	dir := b.JoinPath(ctx, string(args.Root), args.Variant.Dir())

	info, err := b.FileInfo(ctx, dir)
	if err != nil || !info.IsDir() {
		slog.Error("Technology directory missing", "dir", dir, "variant", args.Variant, "error", err)
		return nil, nil, fmt.Errorf("%w %s", ErrMissingDirectory, dir)
	}

	names, err := b.ListFiles(ctx, dir)
	if err != nil {
		slog.Error("Failed to list technology directory", "dir", dir, "error", err)

		if errors.Is(err, adapter.ErrUnreadableEntry) {
			return nil, nil, fmt.Errorf("%w in %s: %w", ErrUnreadableFile, dir, err)
		}

		return nil, nil, fmt.Errorf("%w %s: %w", ErrMissingDirectory, dir, err)
	}

	var (
		groups      []m.Group
		diagnostics []m.Diagnostic
	)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, diagnostics, err
		}

		file := &m.File{
			ShortPath: m.Path(path.Join(args.Variant.Dir(), name)),
			FullPath:  b.JoinPath(ctx, string(dir), name),
		}

		group, fileDiagnostics, err := b.buildGroup(ctx, args.Variant, file)
		diagnostics = append(diagnostics, fileDiagnostics...)

		if err != nil {
			return nil, diagnostics, err
		}

		if len(group.Descriptors) == 0 {
			diagnostics = append(diagnostics, m.Diagnostic{
				Severity: m.SeverityWarning,
				Kind:     m.KindNoTransponder,
				File:     file.FullPath,
				Message:  "no transponder found",
			})

			if !args.KeepEmpty {
				continue
			}
		}

		if args.Variant.HasOrbitalPosition() {
			if _, err := ParseOrbitalPosition(group.Name); err != nil {
				diagnostics = append(diagnostics, m.Diagnostic{
					Severity: m.SeverityWarning,
					Kind:     m.KindInvalidOrbitalPosition,
					File:     file.FullPath,
					Message:  err.Error(),
				})
			}
		}

		groups = append(groups, group)
	}

	slog.Debug("Technology directory scanned", "dir", dir, "groups", len(groups))

	return groups, diagnostics, nil
}

// buildGroup converts one file. The first unparsable line discards the whole
// file and is returned as error.
func (b *groupBuilder) buildGroup(ctx context.Context, variant m.Variant, file *m.File) (m.Group, []m.Diagnostic, error) {
	content, err := b.ReadFile(ctx, file.FullPath)
	if err != nil {
		slog.Error("Failed to read scan file", "file", file.FullPath, "error", err)
		return m.Group{}, nil, fmt.Errorf("%w %s: %w", ErrUnreadableFile, file.FullPath, err)
	}

	content = bytes.TrimPrefix(content, []byte(byteOrderMark))

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)

	var (
		descriptors []string
		diagnostics []m.Diagnostic
	)

	number := 0

	for scanner.Scan() {
		number++

		text, ok := StripComment(scanner.Text())
		if !ok {
			continue
		}

		canonical, diagnostic, err := b.canonicalizer.Canonicalize(variant, m.RawLine{File: file, Number: number, Text: text})
		if err != nil {
			slog.Error("Failed to parse scan file", "file", file.FullPath, "line", number, "error", err)
			return m.Group{}, diagnostics, err
		}

		if diagnostic != nil {
			diagnostics = append(diagnostics, *diagnostic)
		}

		descriptors = append(descriptors, canonical)
	}

	if err := scanner.Err(); err != nil {
		slog.Error("Failed to read scan file", "file", file.FullPath, "line", number+1, "error", err)
		return m.Group{}, diagnostics, fmt.Errorf("%w %s: %w", ErrUnreadableFile, file.FullPath, err)
	}

	SortDescriptors(descriptors)

	return m.Group{
		Name:        groupName(variant, file.ShortPath),
		Variant:     variant,
		Source:      file,
		Descriptors: descriptors,
	}, diagnostics, nil
}

func groupName(variant m.Variant, shortPath m.Path) string {
	name := string(shortPath)
	if variant.HasOrbitalPosition() {
		return UpperLastRune(name)
	}

	return name
}

package domain

import (
	"fmt"
	"log/slog"
	"strings"

	"scanconv.dev/pkg/scanconv/internal/codec"
	m "scanconv.dev/pkg/scanconv/internal/model"
)

// NormalizeLine approximates the canonical spelling of a raw line: every
// space or '0' directly following a space is dropped, which collapses runs of
// spaces and strips leading zeros of numeric tokens.
//
// A token consisting of a single "0" is dropped as well, so such lines are
// always reported as suboptimal.
func NormalizeLine(line string) string {
	if line == "" {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))
	b.WriteByte(line[0])

	last := line[0]

	for i := 1; i < len(line); i++ {
		c := line[i]
		if last == ' ' && (c == ' ' || c == '0') {
			continue
		}

		b.WriteByte(c)
		last = c
	}

	return b.String()
}

// Canonicalizer round-trips raw lines through the codec.
type Canonicalizer struct {
	codec codec.Codec
}

// NewCanonicalizer returns a Canonicalizer backed by c.
func NewCanonicalizer(c codec.Codec) *Canonicalizer {
	return &Canonicalizer{codec: c}
}

// Canonicalize decodes and re-encodes one preprocessed line. A decode failure
// is returned as *ParseError. When the canonical text differs from the
// normalized line a warning is returned alongside the canonical text.
func (c *Canonicalizer) Canonicalize(variant m.Variant, line m.RawLine) (string, *m.Diagnostic, error) {
	file := sourcePath(line.File)

	descriptor, err := c.codec.Decode(variant, line.Text)
	if err != nil {
		return "", nil, &ParseError{File: file, Line: line.Number, Text: line.Text, Err: err}
	}

	canonical, err := c.codec.Encode(descriptor)
	if err != nil {
		return "", nil, &ParseError{File: file, Line: line.Number, Text: line.Text, Err: err}
	}

	normalized := NormalizeLine(line.Text)
	if normalized == canonical {
		return canonical, nil, nil
	}

	slog.Debug("suboptimal representation", "file", file, "line", line.Number, "normalized", normalized, "canonical", canonical)

	return canonical, &m.Diagnostic{
		Severity:  m.SeverityWarning,
		Kind:      m.KindSuboptimalRepresentation,
		File:      file,
		Line:      line.Number,
		Original:  normalized,
		Canonical: canonical,
		Message:   fmt.Sprintf("suboptimal representation %q <--> %q", normalized, canonical),
	}, nil
}

func sourcePath(file *m.File) m.Path {
	if file == nil {
		return ""
	}

	return file.FullPath
}

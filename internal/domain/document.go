package domain

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // the trailer format is a sha1sum by definition
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	m "scanconv.dev/pkg/scanconv/internal/model"
)

const (
	// DefaultProvenance is the comment opening every generated document.
	DefaultProvenance = "this file is automatically generated from http://linuxtv.org/hg/dvb-apps"

	dateSection   = "[date]"
	dateLayout    = "2006-01-02"
	trailerPrefix = "# sha1sum "
)

// SealOptions controls how the checksum trailer is computed.
type SealOptions struct {
	// Legacy appends the trailer prefix to the hash input, which is what
	// older scan file consumers expect.
	Legacy bool
}

// RenderBody serializes everything above the trailer.
func RenderBody(provenance, date string, groups []m.Group) []byte {
	var b bytes.Buffer

	b.WriteString("# ")
	b.WriteString(provenance)
	b.WriteByte('\n')
	b.WriteString(dateSection)
	b.WriteByte('\n')
	b.WriteString(date)
	b.WriteByte('\n')

	for _, group := range groups {
		b.WriteByte('[')
		b.WriteString(group.Name)
		b.WriteString("]\n")

		for _, descriptor := range group.Descriptors {
			b.WriteString(descriptor)
			b.WriteByte('\n')
		}
	}

	return b.Bytes()
}

// Digest returns the lowercase hex sha1 of the trailer hash input for body.
func Digest(body []byte, options SealOptions) string {
	h := sha1.New() //nolint:gosec // see import
	h.Write(body)

	if options.Legacy {
		h.Write([]byte(trailerPrefix))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// BuildDocument renders and seals groups into a Document dated on date.
func BuildDocument(provenance string, date time.Time, groups []m.Group, options SealOptions) *m.Document {
	day := date.Format(dateLayout)
	body := RenderBody(provenance, day, groups)
	digest := Digest(body, options)

	return &m.Document{
		Provenance: provenance,
		Date:       day,
		Groups:     groups,
		Body:       body,
		Digest:     digest,
		Trailer:    trailerPrefix + digest + "\n",
	}
}

// SplitTrailer separates a serialized document into its body and the digest
// recorded in its last line.
func SplitTrailer(content []byte) ([]byte, string, error) {
	trimmed := bytes.TrimSuffix(content, []byte("\n"))
	start := bytes.LastIndexByte(trimmed, '\n') + 1
	last := string(trimmed[start:])

	if !strings.HasPrefix(last, trailerPrefix) {
		return nil, "", ErrMissingTrailer
	}

	digest := strings.TrimSpace(strings.TrimPrefix(last, trailerPrefix))
	if digest == "" {
		return nil, "", ErrMissingTrailer
	}

	return content[:start], digest, nil
}

// VerifyDocument recomputes the digest of a serialized document and compares
// it with its trailer. Both the body-only and the legacy hash input are
// accepted; the result tells which one matched.
func VerifyDocument(path m.Path, content []byte) m.VerifyResult {
	result := m.VerifyResult{Path: path}

	body, recorded, err := SplitTrailer(content)
	if err != nil {
		result.Err = err
		return result
	}

	result.Recorded = recorded
	result.Computed = Digest(body, SealOptions{})

	if strings.EqualFold(recorded, result.Computed) {
		return result
	}

	if legacy := Digest(body, SealOptions{Legacy: true}); strings.EqualFold(recorded, legacy) {
		result.Computed = legacy
		result.Legacy = true

		return result
	}

	result.Err = fmt.Errorf("%w: recorded %s, computed %s", ErrChecksumMismatch, recorded, result.Computed)

	return result
}

// StripVolatile drops the date value and the checksum trailer so that two
// documents built on different days can be compared.
func StripVolatile(content []byte) string {
	lines := strings.SplitAfter(string(content), "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.HasPrefix(line, trailerPrefix) {
			continue
		}

		out = append(out, line)

		if strings.TrimSuffix(line, "\n") == dateSection && i+1 < len(lines) {
			i++
		}
	}

	return strings.Join(out, "")
}

package domain

import (
	"errors"
	"fmt"

	m "scanconv.dev/pkg/scanconv/internal/model"
)

// Fatal conditions. Any of them aborts the run before the output is touched.
var (
	ErrMissingDirectory = errors.New("can't open directory")
	ErrUnreadableFile   = errors.New("can't open file")
	ErrUnparsableLine   = errors.New("can't parse file")
	ErrUnwritableOutput = errors.New("can't write output file")
	ErrWarningsAsErrors = errors.New("warnings reported in strict mode")
	ErrMissingTrailer   = errors.New("missing checksum trailer")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// ParseError reports the line that stopped a file from being converted.
type ParseError struct {
	File m.Path
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("can't parse file %s: line %d %q: %v", e.File, e.Line, e.Text, e.Err)
}

// Unwrap exposes both ErrUnparsableLine and the codec failure.
func (e *ParseError) Unwrap() []error {
	return []error{ErrUnparsableLine, e.Err}
}

package model

// Severity classifies a diagnostic. Fatal conditions are returned as errors
// and never become diagnostics.
type Severity string

const (
	// SeverityWarning is logged and the run continues.
	SeverityWarning Severity = "warning"
)

// DiagnosticKind identifies what a warning is about.
type DiagnosticKind string

const (
	// KindSuboptimalRepresentation means a line differs from its canonical form
	// by more than whitespace and leading-zero noise.
	KindSuboptimalRepresentation DiagnosticKind = "suboptimal_representation"
	// KindNoTransponder means a file produced no descriptors.
	KindNoTransponder DiagnosticKind = "no_transponder"
	// KindInvalidOrbitalPosition means a satellite group name lacks a valid
	// orbital position suffix.
	KindInvalidOrbitalPosition DiagnosticKind = "invalid_orbital_position"
	// KindReportNotSaved means the output was written but the run report
	// could not be.
	KindReportNotSaved DiagnosticKind = "report_not_saved"
)

// Diagnostic is a non-fatal finding reported during a run.
type Diagnostic struct {
	Severity  Severity       `yaml:"severity"`
	Kind      DiagnosticKind `yaml:"kind"`
	File      Path           `yaml:"file"`
	Line      int            `yaml:"line,omitempty"`
	Original  string         `yaml:"original,omitempty"`
	Canonical string         `yaml:"canonical,omitempty"`
	Message   string         `yaml:"message"`
}

// GroupSummary describes one rendered group.
type GroupSummary struct {
	Name        string  `yaml:"name"`
	Variant     Variant `yaml:"variant"`
	Descriptors int     `yaml:"descriptors"`
}

// RunReport is the outcome of a successful conversion.
type RunReport struct {
	ScanRoot    Path           `yaml:"scan_root"`
	Output      Path           `yaml:"output"`
	Date        string         `yaml:"date"`
	Digest      string         `yaml:"sha1sum"`
	Groups      []GroupSummary `yaml:"groups"`
	Diagnostics []Diagnostic   `yaml:"diagnostics"`
}

// VerifyResult is the integrity check outcome for one document.
type VerifyResult struct {
	Path     Path
	Recorded string
	Computed string
	Legacy   bool
	Err      error
}

// OK reports whether the recorded digest matched.
func (r VerifyResult) OK() bool {
	return r.Err == nil
}

package model

// Group is the ordered set of canonical descriptor lines of one scan file.
type Group struct {
	Name        string
	Variant     Variant
	Source      *File
	Descriptors []string
}

// Document is the aggregated, sealed output. Body holds everything above the
// trailer line.
type Document struct {
	Provenance string
	Date       string
	Groups     []Group
	Body       []byte
	Digest     string
	Trailer    string
}

// Bytes returns the full serialized document, trailer included.
func (d *Document) Bytes() []byte {
	out := make([]byte, 0, len(d.Body)+len(d.Trailer))
	out = append(out, d.Body...)
	out = append(out, d.Trailer...)

	return out
}

package model

// Path represents a file system path.
type Path string

// File represents one scan file inside a technology directory.
type File struct {
	// ShortPath is the path relative to the scan root, e.g. "dvb-t/uk-London".
	ShortPath Path
	FullPath  Path
}

// RawLine is a line of an input file together with its origin. It only lives
// while the file is being processed.
type RawLine struct {
	File   *File
	Number int
	Text   string
}

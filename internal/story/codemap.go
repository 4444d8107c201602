package story

import (
	"context"

	"tweec/internal/source"
)

// CodeMap is the read-only view a front-end exposes over the sources it
// parsed. The pipeline consumes the map only through these five operations;
// *source.FileSet satisfies the interface.
type CodeMap interface {
	// LookupID resolves a file name to its ID.
	LookupID(name string) (source.FileID, bool)
	// LookupName returns the name of a file.
	LookupName(id source.FileID) (string, bool)
	// Source returns the full text of a file.
	Source(id source.FileID) (string, bool)
	// LineStarts returns the sorted byte offsets at which each line begins.
	LineStarts(id source.FileID) ([]uint32, bool)
	// LineRange returns the byte range of the given 1-based line.
	LineRange(id source.FileID, line uint32) (source.ByteRange, bool)
}

// Frontend parses story files that have already been loaded into a FileSet.
// Implementations live outside this module; internal/testkit carries a
// scripted one for tests.
type Frontend interface {
	Parse(ctx context.Context, files *source.FileSet, ids []source.FileID) Output
}

package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single story source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineStarts holds the byte offset of the first byte of every line,
	// sorted ascending. LineStarts[0] is always 0 for non-empty files.
	LineStarts []uint32
	Hash       [32]byte
	Flags      FileFlags
}

// LineCol is a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// ByteRange is a contiguous half-open byte range within a single file.
type ByteRange struct {
	Start uint32
	End   uint32
}

// Len returns the number of bytes covered by the range.
func (r ByteRange) Len() uint32 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet holds every loaded story source file and answers position queries
// against them. It doubles as the code map the diagnostics pipeline reads
// through: file lookup by name, full source text, sorted line starts and
// per-line byte ranges.
type FileSet struct {
	files   []File
	index   map[string]FileID // normalized path -> id
	baseDir string
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// NewFileSetWithBase creates a FileSet whose relative paths resolve against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// BaseDir returns the base directory, falling back to the working directory.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fs.baseDir
}

// Add stores a file from normalized bytes, computes its line starts and
// content hash, and returns the new FileID. Re-adding a path replaces the
// entry the index points at.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	lenFiles, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("file size overflow: %w", err))
	}

	normalized := normalizePath(path)
	id := FileID(lenFiles)
	fs.files = append(fs.files, File{
		ID:         id,
		Path:       normalized,
		Content:    content,
		LineStarts: buildLineStarts(content),
		Hash:       sha256.Sum256(content),
		Flags:      flags,
	})
	fs.index[normalized] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory file (stdin, test, or generated).
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file metadata for the given ID, or nil when out of range.
func (fs *FileSet) Get(id FileID) *File {
	if int(id) >= len(fs.files) {
		return nil
	}
	return &fs.files[id]
}

// Len returns the number of files in the set.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// IDs returns every FileID in insertion order.
func (fs *FileSet) IDs() []FileID {
	out := make([]FileID, len(fs.files))
	for i := range fs.files {
		out[i] = fs.files[i].ID
	}
	return out
}

// LookupID resolves a file name to its ID.
func (fs *FileSet) LookupID(name string) (FileID, bool) {
	id, ok := fs.index[normalizePath(name)]
	return id, ok
}

// LookupName returns the normalized path of a file.
func (fs *FileSet) LookupName(id FileID) (string, bool) {
	f := fs.Get(id)
	if f == nil {
		return "", false
	}
	return f.Path, true
}

// Source returns the full text of a file.
func (fs *FileSet) Source(id FileID) (string, bool) {
	f := fs.Get(id)
	if f == nil {
		return "", false
	}
	return string(f.Content), true
}

// LineStarts returns the sorted byte offsets at which each line of the file begins.
func (fs *FileSet) LineStarts(id FileID) ([]uint32, bool) {
	f := fs.Get(id)
	if f == nil {
		return nil, false
	}
	return f.LineStarts, true
}

// LineRange returns the byte range of the given 1-based line, excluding the
// trailing newline.
func (fs *FileSet) LineRange(id FileID, line uint32) (ByteRange, bool) {
	f := fs.Get(id)
	if f == nil || line == 0 || int(line) > len(f.LineStarts) {
		return ByteRange{}, false
	}

	start := f.LineStarts[line-1]
	var end uint32
	if int(line) < len(f.LineStarts) {
		end = f.LineStarts[line] - 1 // drop the \n that opened the next line
	} else {
		n, err := safecast.Conv[uint32](len(f.Content))
		if err != nil {
			panic(fmt.Errorf("content length overflow: %w", err))
		}
		end = n
		if end > start && f.Content[end-1] == '\n' {
			end--
		}
	}
	return ByteRange{Start: start, End: end}, true
}

// Position resolves a byte offset within a file to a 1-based line and column.
func (fs *FileSet) Position(id FileID, off uint32) (LineCol, bool) {
	f := fs.Get(id)
	if f == nil {
		return LineCol{}, false
	}
	return toLineCol(f.LineStarts, off), true
}

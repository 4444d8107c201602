// Package storyfiles adapts a front-end's code map for the rich diagnostic
// renderer: a uniform file id -> name/source/line view plus the passage
// names the suggestion engine matches dead links against.
package storyfiles

import (
	"sort"

	"tweec/internal/source"
	"tweec/internal/story"
)

// Files is the renderer's read-only view over a parse result.
type Files struct {
	// Map is the code map of whichever side of the result exists.
	Map story.CodeMap
	// PassageNames is nil when the parse failed, since passage identity is
	// not reliably known; dead-link suggestions are disabled in that case.
	PassageNames []string
}

// New builds the view from a parse result.
func New(res story.Result) *Files {
	if res.Ok() {
		return &Files{
			Map:          res.Story.CodeMap,
			PassageNames: res.Story.PassageNames(),
		}
	}
	return &Files{Map: res.Errors.CodeMap}
}

// Name returns the name of a file.
func (f *Files) Name(id source.FileID) (string, bool) {
	return f.Map.LookupName(id)
}

// Source returns the full text of a file.
func (f *Files) Source(id source.FileID) (string, bool) {
	return f.Map.Source(id)
}

// LineIndex resolves a byte offset to a 0-based line index. Offsets that do
// not land exactly on a line start resolve to the preceding line.
func (f *Files) LineIndex(id source.FileID, byteOffset uint32) (int, bool) {
	starts, ok := f.Map.LineStarts(id)
	if !ok {
		return 0, false
	}

	idx := sort.Search(len(starts), func(i int) bool {
		return starts[i] >= byteOffset
	})
	if idx < len(starts) && starts[idx] == byteOffset {
		return idx, true
	}
	// Between line starts: the offset belongs to the line that began before it.
	if idx == 0 {
		return 0, false
	}
	return idx - 1, true
}

// LineRange returns the byte range of a 0-based line index. The code map
// speaks 1-based line numbers, so the index shifts by one on the way in.
func (f *Files) LineRange(id source.FileID, lineIndex int) (source.ByteRange, bool) {
	if lineIndex < 0 {
		return source.ByteRange{}, false
	}
	return f.Map.LineRange(id, uint32(lineIndex)+1) // #nosec G115 -- non-negative checked above
}

// Resolve maps a context to its file id and byte range, when the context
// names a file the code map knows.
func (f *Files) Resolve(ctx *story.Context) (source.FileID, source.ByteRange, bool) {
	if !ctx.HasFileName() {
		return 0, source.ByteRange{}, false
	}
	id, ok := f.Map.LookupID(ctx.FileName)
	if !ok {
		return 0, source.ByteRange{}, false
	}
	return id, ctx.Range, true
}

package story

import "tweec/internal/source"

// Context pins a warning or error to a stretch of source. A nil *Context is
// a story-level issue with no position at all; a Context whose FileName is
// empty has a position but no file identity (synthesized input).
type Context struct {
	// FileName is the name the code map knows the file by; empty when the
	// context does not belong to a named file.
	FileName string
	// Range is the byte range the context covers within its file.
	Range source.ByteRange
	// Start is the derived 1-based position of the first byte of Range.
	Start source.LineCol
	// Contents is the raw source text covered by Range.
	Contents string
}

// HasFileName reports whether the context names a file.
func (c *Context) HasFileName() bool {
	return c != nil && c.FileName != ""
}

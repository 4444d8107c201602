package source

import (
	"path/filepath"
	"slices"
)

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
// The second result reports whether any replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
			continue
		}
		out = append(out, content[i])
		i++
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// buildLineStarts returns the byte offsets at which each line begins.
// An empty file has no lines; any other file starts its first line at 0.
func buildLineStarts(content []byte) []uint32 {
	if len(content) == 0 {
		return nil
	}
	out := make([]uint32, 1, 16)
	out[0] = 0
	for i, b := range content {
		if b == '\n' && i+1 < len(content) {
			out = append(out, uint32(i+1)) // #nosec G115 -- file sizes are checked on Add
		}
	}
	return out
}

// toLineCol resolves a byte offset against sorted line starts.
// Offsets past the last line clamp to the last line.
func toLineCol(lineStarts []uint32, off uint32) LineCol {
	if len(lineStarts) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// Largest i with lineStarts[i] <= off.
	lo, hi := 0, len(lineStarts)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineStarts[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if hi < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	return LineCol{Line: uint32(hi) + 1, Col: off - lineStarts[hi] + 1} // #nosec G115 -- hi >= 0
}

func normalizePath(p string) string {
	// Uniform separators keep cross-platform diffs stable.
	return filepath.ToSlash(filepath.Clean(p))
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileName is the config file tweec looks for in the working directory.
const FileName = "tweec.toml"

// File mirrors the tweec.toml layout.
type File struct {
	Lint  lintSection  `toml:"lint"`
	Build buildSection `toml:"build"`
}

type lintSection struct {
	Allow   []string `toml:"allow"`
	Deny    []string `toml:"deny"`
	Compact bool     `toml:"compact"`
}

type buildSection struct {
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// LoadFile reads and decodes a tweec.toml. A missing file is not an error;
// it decodes as the zero File.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the fixed manifest name or user supplied
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, err
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// Apply layers the file's settings under CLI-provided values: name-sets are
// unioned, booleans are OR-ed, and path settings fill in only when the CLI
// left them empty.
func (f *File) Apply(c *Config) {
	c.Allowed = appendMissing(c.Allowed, f.Lint.Allow)
	c.Denied = appendMissing(c.Denied, f.Lint.Deny)
	c.Compact = c.Compact || f.Lint.Compact

	if c.FormatFile == "" || c.FormatFile == Default().FormatFile {
		if f.Build.Format != "" {
			c.FormatFile = f.Build.Format
		}
	}
	if c.OutputFile == "" && f.Build.Output != "" {
		c.OutputFile = f.Build.Output
	}
}

func appendMissing(dst, extra []string) []string {
	for _, name := range extra {
		found := false
		for _, have := range dst {
			if have == name {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, name)
		}
	}
	return dst
}

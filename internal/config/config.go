// Package config carries the merged tweec configuration: policy name-sets,
// rendering switches, and build settings. Values arrive from the CLI layered
// over an optional tweec.toml; the pipeline itself never mutates them.
package config

import "slices"

// AllSentinel is the reserved name matching every warning in allow/deny lists.
const AllSentinel = "all"

// ColorMode is the resolved terminal color behavior.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorAnsi
	ColorNever
)

// ParseColorMode maps a --color argument to a mode. Unknown values disable
// color rather than failing, matching the long-standing CLI behavior.
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "ansi":
		return ColorAnsi
	case "auto":
		return ColorAuto
	default:
		return ColorNever
	}
}

// Enabled reports whether color should actually be emitted given whether
// the output stream is a terminal.
func (m ColorMode) Enabled(isTTY bool) bool {
	switch m {
	case ColorAlways, ColorAnsi:
		return true
	case ColorAuto:
		return isTTY
	}
	return false
}

// Config is the fully merged run configuration.
type Config struct {
	// Lint runs the pipeline without producing HTML output.
	Lint bool
	// Inputs are the story files or directories to compile.
	Inputs []string
	// FormatFile locates the story format .js file.
	FormatFile string
	// OutputFile overrides the default "<Story Title>.html".
	OutputFile string
	// Open opens the HTML output in a browser after a successful build.
	Open bool

	// Allowed names warnings to suppress entirely. Overrides Denied.
	Allowed []string
	// Denied names warnings to promote to errors.
	Denied []string
	// Compact selects one-line-per-issue rendering without source snippets.
	Compact bool
	// Color is the resolved color mode for the output stream.
	Color ColorMode

	// Jobs bounds concurrent file loading; 0 means GOMAXPROCS.
	Jobs int
	// Quiet suppresses non-essential output such as the progress UI.
	Quiet bool
	// NoFormatCache disables the story-format disk cache.
	NoFormatCache bool
}

// Default returns a config with the documented defaults filled in.
func Default() *Config {
	return &Config{FormatFile: "format.js"}
}

// Allows reports whether policy suppresses the named warning.
func (c *Config) Allows(name string) bool {
	return slices.Contains(c.Allowed, AllSentinel) || slices.Contains(c.Allowed, name)
}

// Denies reports whether policy promotes the named warning to an error.
func (c *Config) Denies(name string) bool {
	return slices.Contains(c.Denied, AllSentinel) || slices.Contains(c.Denied, name)
}

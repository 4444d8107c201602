// Package storyformat reads Twine 2 story format files. A format.js file
// is a JavaScript shim around a JSON blob; the blob carries the metadata
// and the HTML source the compiled story gets spliced into.
package storyformat

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoJSONBlob is returned when the format file contains no recognizable
// Twine 2 JSON payload.
var ErrNoJSONBlob = errors.New("could not find Twine2 JSON blob")

// DefaultName is used when the format omits its name.
const DefaultName = "Untitled Story Format"

// Format is the decoded story format.
type Format struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url,omitempty"`
	License     string `json:"license,omitempty"`
	Proofing    bool   `json:"proofing"`
	// Source is the full HTML output of the format, carrying the
	// {{STORY_NAME}} and {{STORY_DATA}} placeholders.
	Source string `json:"source"`
}

// Parse reads and decodes a format.js file.
func Parse(path string) (*Format, error) {
	// #nosec G304 -- the format path comes from configuration
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(string(contents))
	if err != nil {
		return nil, fmt.Errorf("parse story format %s: %w", path, err)
	}
	return f, nil
}

// Decode extracts and unmarshals the JSON blob from format file contents.
// Harlowe builds append a non-JSON "setup" function; its blob ends at the
// last `,"setup":` marker instead of the last closing brace.
func Decode(contents string) (*Format, error) {
	start := strings.Index(contents, "{")
	if start < 0 {
		return nil, ErrNoJSONBlob
	}

	var end int
	if strings.Contains(contents, "harlowe") {
		end = strings.LastIndex(contents, `,"setup":`)
	} else {
		end = strings.LastIndex(contents, "}")
	}
	if end < start {
		return nil, ErrNoJSONBlob
	}

	blob := contents[start:end] + "}"
	f := &Format{Name: DefaultName}
	if err := json.Unmarshal([]byte(blob), f); err != nil {
		return nil, fmt.Errorf("decode story format JSON: %w", err)
	}
	return f, nil
}

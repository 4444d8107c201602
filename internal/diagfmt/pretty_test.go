package diagfmt

import (
	"strings"
	"testing"

	"tweec/internal/diag"
	"tweec/internal/issue"
	"tweec/internal/source"
	"tweec/internal/story"
	"tweec/internal/storyfiles"
)

func prettyFixture(t *testing.T) (*storyfiles.Files, []issue.Issue) {
	t.Helper()
	fs := source.NewFileSet()
	fs.AddVirtual("story.twee", []byte(":: Start\n[[ Satrt ]]\nplain text\n"))

	files := storyfiles.New(story.Result{Story: &story.Story{
		Passages: map[string]*story.Passage{"Start": {}},
		CodeMap:  fs,
	}})

	issues := []issue.Issue{
		// Story-level, no context: renders without labels.
		issue.FromWarning(story.Warning{Kind: story.WarnMissingStoryData}, false),
		// Positioned dead link on line 2.
		issue.FromWarning(story.Warning{
			Kind:   story.WarnDeadLink,
			Target: "Satrt",
			Context: &story.Context{
				FileName: "story.twee",
				Range:    source.ByteRange{Start: 9, End: 20},
				Start:    source.LineCol{Line: 2, Col: 1},
			},
		}, false),
	}
	return files, issues
}

func buildDiagnostics(files *storyfiles.Files, issues []issue.Issue) []diag.Diagnostic {
	diags := make([]diag.Diagnostic, 0, len(issues))
	for _, is := range issues {
		diags = append(diags, is.Diagnostic(files))
	}
	return diags
}

func TestPrettyOneDiagnosticPerIssue(t *testing.T) {
	files, issues := prettyFixture(t)
	diags := buildDiagnostics(files, issues)

	if len(diags) != len(issues) {
		t.Fatalf("expected %d diagnostics, got %d", len(issues), len(diags))
	}

	// Labeled diagnostics match exactly the issues whose context resolves.
	labeled := 0
	for _, d := range diags {
		if d.Primary != nil {
			labeled++
		}
	}
	if labeled != 1 {
		t.Errorf("expected exactly one labeled diagnostic, got %d", labeled)
	}

	var buf strings.Builder
	c := NewConsole(&buf, false)
	if err := Pretty(c, diags, files); err != nil {
		t.Fatal(err)
	}
	if err := c.Release(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "warning MissingStoryData: No StoryData passage found") {
		t.Errorf("missing label-less header in:\n%s", out)
	}
	if !strings.Contains(out, "story.twee:2:1: warning DeadLink:") {
		t.Errorf("missing positioned header in:\n%s", out)
	}
}

func TestPrettySnippetAndUnderline(t *testing.T) {
	files, issues := prettyFixture(t)
	diags := buildDiagnostics(files, issues)

	var buf strings.Builder
	c := NewConsole(&buf, false)
	if err := Pretty(c, diags, files); err != nil {
		t.Fatal(err)
	}
	if err := c.Release(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "  [[ Satrt ]]\n") {
		t.Errorf("missing source snippet in:\n%s", out)
	}
	// Span covers the whole 11-byte link: ^ plus ten ~.
	underline := "  ^" + strings.Repeat("~", 10) + "\n"
	if !strings.Contains(out, underline) {
		t.Errorf("missing underline in:\n%s", out)
	}
	// The near-miss suggestion rides along as a note.
	if !strings.Contains(out, `  note: Found passage with similar name: "Start"`) {
		t.Errorf("missing suggestion note in:\n%s", out)
	}
}

func TestPrettySecondaryLabel(t *testing.T) {
	files, _ := prettyFixture(t)

	w := story.NewWarning(story.WarnDuplicateStoryTitle, &story.Context{
		FileName: "story.twee",
		Range:    source.ByteRange{Start: 9, End: 20},
	}).WithReferent(&story.Context{
		FileName: "story.twee",
		Range:    source.ByteRange{Start: 0, End: 8},
	})
	diags := buildDiagnostics(files, []issue.Issue{issue.FromWarning(w, false)})

	var buf strings.Builder
	c := NewConsole(&buf, false)
	if err := Pretty(c, diags, files); err != nil {
		t.Fatal(err)
	}
	if err := c.Release(); err != nil {
		t.Fatal(err)
	}

	want := "  note: story.twee:1:1: Previously defined here. Duplicate discarded.\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("missing referent note in:\n%s", buf.String())
	}
}

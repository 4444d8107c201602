package lint

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tweec/internal/config"
	"tweec/internal/diagfmt"
	"tweec/internal/source"
	"tweec/internal/story"
	"tweec/internal/testkit"
)

func parse(t *testing.T, fe *testkit.Frontend) story.Output {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("story.twee", []byte(":: Start\n[[ Satrt ]]\n"))
	return fe.Parse(context.Background(), fs, []source.FileID{id})
}

func TestRunCleanStory(t *testing.T) {
	fe := &testkit.Frontend{Story: &story.Story{
		Title:    "Test",
		Passages: map[string]*story.Passage{"Start": {Name: "Start"}},
	}}

	var buf strings.Builder
	got, err := Run(parse(t, fe), &config.Config{}, diagfmt.NewConsole(&buf, false))
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Title != "Test" {
		t.Fatalf("expected the validated story back, got %+v", got)
	}
	if buf.String() != "" {
		t.Errorf("clean run should render nothing, got %q", buf.String())
	}
}

func TestRunNeutralWarningsSucceed(t *testing.T) {
	fe := &testkit.Frontend{Warnings: []story.Warning{{Kind: story.WarnUnclosedLink}}}

	var buf strings.Builder
	st, err := Run(parse(t, fe), &config.Config{Compact: true}, diagfmt.NewConsole(&buf, false))
	if err != nil {
		t.Fatal(err)
	}
	if st == nil {
		t.Fatal("expected a story on a warnings-only run")
	}
	if !strings.Contains(buf.String(), "Warning: Unclosed passage link") {
		t.Errorf("expected rendered warning, got %q", buf.String())
	}
}

func TestRunDeniedWarningFails(t *testing.T) {
	fe := &testkit.Frontend{Warnings: []story.Warning{{Kind: story.WarnDeadLink, Target: "Foo"}}}
	cfg := &config.Config{Denied: []string{"DeadLink"}, Compact: true}

	var buf strings.Builder
	_, err := Run(parse(t, fe), cfg, diagfmt.NewConsole(&buf, false))
	if !errors.Is(err, ErrFailed) {
		t.Fatalf("expected ErrFailed, got %v", err)
	}
	if err.Error() != "Failed due to previous errors" {
		t.Errorf("failure message = %q", err.Error())
	}
	if !strings.HasPrefix(buf.String(), "Error: ") {
		t.Errorf("denied warning must render as an error, got %q", buf.String())
	}
}

func TestRunParseErrorsFail(t *testing.T) {
	fe := &testkit.Frontend{Errors: []story.Error{{Kind: story.ErrEmptyName}}}

	var buf strings.Builder
	_, err := Run(parse(t, fe), &config.Config{Allowed: []string{"all"}}, diagfmt.NewConsole(&buf, false))
	if !errors.Is(err, ErrFailed) {
		t.Fatalf("allow-all must not rescue parse errors, got %v", err)
	}
	if !strings.Contains(buf.String(), "error EmptyName:") {
		t.Errorf("expected rich error output, got %q", buf.String())
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRunPropagatesRenderIOError(t *testing.T) {
	fe := &testkit.Frontend{Warnings: make([]story.Warning, 0, 8)}
	// Enough output to defeat bufio's buffering so the write error surfaces.
	for i := 0; i < 5000; i++ {
		fe.Warnings = append(fe.Warnings, story.Warning{Kind: story.WarnUnclosedLink})
	}

	_, err := Run(parse(t, fe), &config.Config{Compact: true}, diagfmt.NewConsole(&failingWriter{}, false))
	if err == nil || errors.Is(err, ErrFailed) {
		t.Fatalf("expected the I/O error to propagate, got %v", err)
	}
}

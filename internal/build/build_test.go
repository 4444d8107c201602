package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tweec/internal/config"
	"tweec/internal/diagfmt"
	"tweec/internal/lint"
	"tweec/internal/story"
	"tweec/internal/testkit"
)

const formatJS = `window.storyFormat({"name":"Test Format","version":"1.0.0",` +
	`"source":"<html><title>{{STORY_NAME}}</title><body>{{STORY_DATA}}</body></html>"});`

func writeFixture(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig(t *testing.T) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	storyPath := writeFixture(t, dir, "story.twee", ":: Start\nHello.\n")
	formatPath := writeFixture(t, dir, "format.js", formatJS)

	cfg := config.Default()
	cfg.Inputs = []string{storyPath}
	cfg.FormatFile = formatPath
	cfg.OutputFile = filepath.Join(dir, "out.html")
	cfg.Jobs = 1
	return cfg, dir
}

func quietConsole() *diagfmt.Console {
	return diagfmt.NewConsole(&strings.Builder{}, false)
}

func TestRunProducesHTML(t *testing.T) {
	cfg, _ := testConfig(t)
	frontend := &testkit.Frontend{Story: testStory()}

	res, err := Run(context.Background(), &Request{
		Config:   cfg,
		Frontend: frontend,
		Console:  quietConsole(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.OutputPath != cfg.OutputFile {
		t.Fatalf("OutputPath = %q, want %q", res.OutputPath, cfg.OutputFile)
	}

	data, err := os.ReadFile(res.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "<title>My Story</title>") {
		t.Errorf("output missing spliced story name:\n%s", out)
	}
	if !strings.Contains(out, `<tw-storydata name="My Story"`) {
		t.Errorf("output missing story data:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output file missing trailing newline")
	}

	for _, stage := range []Stage{StageLoad, StageParse, StageLint, StageRender, StageWrite} {
		if !res.Timings.Has(stage) {
			t.Errorf("no timing recorded for stage %s", stage)
		}
	}
}

func TestRunLintOnlySkipsOutput(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.Lint = true
	frontend := &testkit.Frontend{Story: testStory()}

	res, err := Run(context.Background(), &Request{
		Config:   cfg,
		Frontend: frontend,
		Console:  quietConsole(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.OutputPath != "" {
		t.Fatalf("lint run produced output path %q", res.OutputPath)
	}
	if _, err := os.Stat(cfg.OutputFile); !os.IsNotExist(err) {
		t.Error("lint run wrote an output file")
	}
	if res.Story == nil {
		t.Error("lint run did not return the validated story")
	}
}

func TestRunFailsOnDeniedWarning(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.Denied = []string{config.AllSentinel}
	frontend := &testkit.Frontend{
		Story:    testStory(),
		Warnings: []story.Warning{story.NewWarning(story.WarnMissingStoryData, nil)},
	}

	_, err := Run(context.Background(), &Request{
		Config:   cfg,
		Frontend: frontend,
		Console:  quietConsole(),
	})
	if !errors.Is(err, lint.ErrFailed) {
		t.Fatalf("Run error = %v, want %v", err, lint.ErrFailed)
	}
	if _, statErr := os.Stat(cfg.OutputFile); !os.IsNotExist(statErr) {
		t.Error("failed run wrote an output file")
	}
}

func TestRunEmitsProgressEvents(t *testing.T) {
	cfg, _ := testConfig(t)
	frontend := &testkit.Frontend{Story: testStory()}

	ch := make(chan Event, 128)
	_, err := Run(context.Background(), &Request{
		Config:   cfg,
		Frontend: frontend,
		Console:  quietConsole(),
		Progress: ChannelSink{Ch: ch},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	close(ch)

	var sawQueued, sawWriteDone bool
	for evt := range ch {
		if evt.Stage == StageLoad && evt.Status == StatusQueued && evt.File != "" {
			sawQueued = true
		}
		if evt.Stage == StageWrite && evt.Status == StatusDone {
			sawWriteDone = true
		}
	}
	if !sawQueued {
		t.Error("no queued event for the input file")
	}
	if !sawWriteDone {
		t.Error("no done event for the write stage")
	}
}

func TestRunRejectsMissingFrontend(t *testing.T) {
	cfg, _ := testConfig(t)
	_, err := Run(context.Background(), &Request{Config: cfg, Console: quietConsole()})
	if err == nil || !strings.Contains(err.Error(), "front-end") {
		t.Fatalf("Run error = %v, want missing front-end error", err)
	}
}

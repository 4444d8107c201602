package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tweec/internal/config"
	"tweec/internal/diagfmt"
	"tweec/internal/lint"
	"tweec/internal/source"
	"tweec/internal/story"
	"tweec/internal/storyformat"
)

// Request configures a full compilation.
type Request struct {
	Config   *config.Config
	Frontend story.Frontend
	Console  *diagfmt.Console
	// Cache holds parsed story formats; nil disables caching.
	Cache    *storyformat.Cache
	Progress ProgressSink
}

// Result captures build artefacts and timings.
type Result struct {
	Story      *story.Story
	OutputPath string
	Timings    Timings
}

// Run loads the inputs, parses them, reports issues, and (unless linting)
// renders the story into a playable HTML file.
func Run(ctx context.Context, req *Request) (Result, error) {
	var result Result
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, fmt.Errorf("missing build request")
	}
	if req.Frontend == nil {
		return result, fmt.Errorf("no story front-end registered")
	}
	cfg := req.Config
	if cfg == nil {
		return result, fmt.Errorf("missing configuration")
	}

	files, err := source.ListStoryFiles(cfg.Inputs)
	if err != nil {
		emitStage(req.Progress, nil, StageLoad, StatusError, err, 0)
		return result, err
	}
	emitQueued(req.Progress, files)

	loadStart := time.Now()
	emitStage(req.Progress, files, StageLoad, StatusWorking, nil, 0)
	var onLoad func(string)
	if req.Progress != nil {
		onLoad = func(path string) {
			req.Progress.OnEvent(Event{File: path, Stage: StageLoad, Status: StatusDone})
		}
	}
	fileSet, ids, err := source.LoadInputs(ctx, cfg.Inputs, cfg.Jobs, onLoad)
	if err != nil {
		emitStage(req.Progress, files, StageLoad, StatusError, err, 0)
		return result, err
	}
	result.Timings.Set(StageLoad, time.Since(loadStart))

	parseStart := time.Now()
	emitStage(req.Progress, files, StageParse, StatusWorking, nil, 0)
	out := req.Frontend.Parse(ctx, fileSet, ids)
	result.Timings.Set(StageParse, time.Since(parseStart))

	lintStart := time.Now()
	emitStage(req.Progress, files, StageLint, StatusWorking, nil, 0)
	validated, err := lint.Run(out, cfg, req.Console)
	result.Timings.Set(StageLint, time.Since(lintStart))
	if err != nil {
		emitStage(req.Progress, files, StageLint, StatusError, err, 0)
		return result, err
	}
	result.Story = validated

	if cfg.Lint {
		emitStage(req.Progress, files, StageLint, StatusDone, nil, result.Timings.Duration(StageLint))
		return result, nil
	}

	renderStart := time.Now()
	emitStage(req.Progress, files, StageRender, StatusWorking, nil, 0)
	format, err := loadFormat(req.Cache, cfg)
	if err != nil {
		emitStage(req.Progress, files, StageRender, StatusError, err, 0)
		return result, err
	}
	html, err := HTML(validated, format)
	if err != nil {
		emitStage(req.Progress, files, StageRender, StatusError, err, 0)
		return result, err
	}
	result.Timings.Set(StageRender, time.Since(renderStart))

	writeStart := time.Now()
	emitStage(req.Progress, files, StageWrite, StatusWorking, nil, 0)
	outputPath := cfg.OutputFile
	if outputPath == "" {
		outputPath = defaultOutputName(validated)
	}
	if err := writeOutput(outputPath, html); err != nil {
		emitStage(req.Progress, files, StageWrite, StatusError, err, 0)
		return result, err
	}
	result.OutputPath = outputPath
	result.Timings.Set(StageWrite, time.Since(writeStart))
	emitStage(req.Progress, files, StageWrite, StatusDone, nil, result.Timings.Duration(StageWrite))

	if cfg.Open {
		if err := OpenInBrowser(outputPath); err != nil {
			return result, err
		}
	}
	return result, nil
}

func loadFormat(cache *storyformat.Cache, cfg *config.Config) (*storyformat.Format, error) {
	if cfg.NoFormatCache {
		cache = nil
	}
	return cache.ParseCached(cfg.FormatFile)
}

// defaultOutputName derives an output file name from the story title.
func defaultOutputName(s *story.Story) string {
	return StoryTitle(s) + ".html"
}

func writeOutput(path string, html string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append([]byte(html), '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write build output %q: %w", path, err)
	}
	return nil
}

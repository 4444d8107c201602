package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tweec/internal/build"
	"tweec/internal/ui"
)

type buildOutcome struct {
	result build.Result
	err    error
}

func runBuildWithUI(ctx context.Context, title string, files []string, req *build.Request) (build.Result, error) {
	if req == nil {
		return build.Result{}, fmt.Errorf("missing build request")
	}
	events := make(chan build.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = build.ChannelSink{Ch: events}
		res, err := build.Run(ctx, &reqCopy)
		outcomeCh <- buildOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

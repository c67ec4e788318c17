package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tagcore/internal/buildpipeline"
	"tagcore/internal/ui"
)

type synthOutcome struct {
	result buildpipeline.Result
	err    error
}

func runSynthesizeWithUI(ctx context.Context, title string, req *buildpipeline.Request) (buildpipeline.Result, error) {
	return synthesizeWithView(ctx, req, func(events <-chan buildpipeline.Event) error {
		model := ui.NewProgressModel(title, req.Modules, events)
		_, err := tea.NewProgram(model, tea.WithOutput(os.Stdout)).Run()
		return err
	})
}

// synthesizeWithView runs the pipeline while view consumes its events. When
// view returns before the pipeline is done (ctrl+c), the pipeline is canceled.
func synthesizeWithView(ctx context.Context, req *buildpipeline.Request, view func(<-chan buildpipeline.Event) error) (buildpipeline.Result, error) {
	if req == nil {
		return buildpipeline.Result{}, fmt.Errorf("missing synthesis request")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan synthOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = buildpipeline.ChannelSink{Ch: events}
		res, err := buildpipeline.Synthesize(ctx, &reqCopy)
		outcomeCh <- synthOutcome{result: res, err: err}
		close(events)
	}()

	uiErr := view(events)
	cancel()
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tagcore/internal/trace"
)

type traceFlags struct {
	output    string
	level     string
	mode      string
	format    string
	ringSize  int
	heartbeat time.Duration
}

func (f *traceFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.output, "trace", "", "trace output file (- for stderr)")
	flags.StringVar(&f.level, "trace-level", "", "trace level (off|error|phase|detail|debug); default from config or phase when --trace is set")
	flags.StringVar(&f.mode, "trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.StringVar(&f.format, "trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.IntVar(&f.ringSize, "trace-ring-size", 4096, "events kept in ring mode")
	flags.DurationVar(&f.heartbeat, "trace-heartbeat", 0, "emit a heartbeat event at this interval (0 disables)")
}

// setupTracing attaches a tracer to the command context and returns the
// function that flushes it.
func setupTracing(cmd *cobra.Command, f *traceFlags, configLevel string) (func(), error) {
	levelStr := f.level
	if levelStr == "" {
		levelStr = configLevel
	}
	if levelStr == "" && f.output != "" {
		levelStr = "phase"
	}
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}
	mode, err := trace.ParseMode(f.mode)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(f.format)
	if err != nil {
		return nil, err
	}
	tracer, ring, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: f.output,
		RingSize:   f.ringSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	ctx, span := trace.BeginContext(ctx, trace.ScopeDriver, cmd.CommandPath())
	cmd.SetContext(ctx)
	stopHeartbeat := trace.StartHeartbeat(ctx, tracer, f.heartbeat)

	return func() {
		stopHeartbeat()
		span.End("")
		if ring != nil && mode == trace.ModeRing {
			if err := ring.Dump(cmd.ErrOrStderr(), format); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}

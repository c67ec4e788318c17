package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"tagcore/internal/buildpipeline"
	"tagcore/internal/can"
	"tagcore/internal/ui"
)

type defsOptions struct {
	modules []string
	jobs    int
	uiMode  string
}

func newDefsCmd(a *app) *cobra.Command {
	var opts defsOptions
	cmd := &cobra.Command{
		Use:   "defs",
		Short: "Synthesize the builtin definitions into modules and print them",
		Example: "  tagcore defs\n" +
			"  tagcore defs --module Main --module Test --jobs 2",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := readUIMode(opts.uiMode)
			if err != nil {
				return err
			}
			req := buildpipeline.Request{
				Modules: a.modules(opts.modules),
				Jobs:    opts.jobs,
				Timer:   a.timer,
			}
			if !cmd.Flags().Changed("jobs") {
				req.Jobs = a.config.Build.Jobs
			}

			var res buildpipeline.Result
			if !a.quiet && shouldUseTUI(mode, cmd.OutOrStdout()) {
				res, err = runSynthesizeWithUI(cmd.Context(), "tagcore defs", &req)
			} else {
				res, err = buildpipeline.Synthesize(cmd.Context(), &req)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !a.quiet {
				printModules(out, res)
			}
			if a.timings && !a.quiet {
				fmt.Fprint(out, stageTable(res.Timings).Render())
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&opts.modules, "module", nil, "module to synthesize into (repeatable; default: config or Main)")
	cmd.Flags().IntVar(&opts.jobs, "jobs", 0, "max parallel modules (0=auto)")
	cmd.Flags().StringVar(&opts.uiMode, "ui", "auto", "user interface mode (auto|on|off)")
	return cmd
}

// modules picks the module list from flags, then the config, then Main.
func (a *app) modules(flagged []string) []string {
	if len(flagged) > 0 {
		return flagged
	}
	if len(a.config.Build.Modules) > 0 {
		return a.config.Build.Modules
	}
	return []string{"Main"}
}

func printModules(out io.Writer, res buildpipeline.Result) {
	for i, mr := range res.Modules {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "# module %s (%d defs, %d type variables)\n", mr.Module.Name, len(mr.Module.Defs), mr.Variables)
		for j, d := range mr.Module.Defs {
			if j > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, can.Format(d))
		}
	}
}

func stageTable(t *buildpipeline.Timings) ui.Table {
	tbl := ui.Table{Headers: []string{"stage", "elapsed"}}
	if t == nil {
		return tbl
	}
	for _, stage := range buildpipeline.Stages() {
		if !t.Has(stage) {
			continue
		}
		tbl.Rows = append(tbl.Rows, []string{string(stage), t.Duration(stage).Round(time.Microsecond).String()})
	}
	tbl.Rows = append(tbl.Rows, []string{"total", t.Sum(buildpipeline.Stages()...).Round(time.Microsecond).String()})
	return tbl
}

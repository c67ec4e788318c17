package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tagcore/internal/observ"
	"tagcore/internal/project"
	"tagcore/internal/target"
	"tagcore/internal/version"
)

// app is the state shared by every command of one invocation.
type app struct {
	configPath string
	colorMode  string
	quiet      bool
	timings    bool
	trace      traceFlags

	file    *project.File // nil without a config file
	config  project.Config
	timer   *observ.Timer
	cleanup func()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "tagcore",
		Short:         "Inspect the builtin-resolution layer of the compiler",
		Long:          "tagcore exposes numeric width layout, the bitcode intrinsic catalog and the synthesized builtin definitions.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.timings && !a.quiet && a.timer != nil {
				fmt.Fprint(cmd.ErrOrStderr(), a.timer.Summary())
			}
			if a.cleanup != nil {
				a.cleanup()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to tagcore.toml or tagcore.yaml (default: search parent directories)")
	flags.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")
	flags.BoolVar(&a.quiet, "quiet", false, "suppress non-essential output")
	flags.BoolVar(&a.timings, "timings", false, "show timing information")
	a.trace.register(flags)

	root.AddCommand(
		newLayoutCmd(a),
		newIntrinsicsCmd(a),
		newConvertCmd(a),
		newDefsCmd(a),
		newEvalCmd(a),
		newObjectsCmd(a),
		newVersionCmd(a),
	)
	return root
}

func main() {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	a.timer = observ.NewTimer()
	if err := a.setupColor(); err != nil {
		return err
	}
	if err := a.loadConfig(); err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd, &a.trace, a.config.Trace.Level)
	if err != nil {
		return err
	}
	a.cleanup = cleanup
	return nil
}

func (a *app) setupColor() error {
	switch strings.ToLower(strings.TrimSpace(a.colorMode)) {
	case "", "auto":
		color.NoColor = !isTerminal(os.Stdout)
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", a.colorMode)
	}
	return nil
}

func (a *app) loadConfig() error {
	idx := a.timer.Begin("config")
	defer a.timer.End(idx, "")
	if a.configPath != "" {
		f, err := project.Load(a.configPath)
		if err != nil {
			return err
		}
		a.file, a.config = f, f.Config
		return nil
	}
	f, ok, err := project.Discover(".")
	if err != nil {
		return err
	}
	if ok {
		a.file, a.config = f, f.Config
	}
	return nil
}

// targetInfo resolves the target from --arch, then the config, then the host.
func (a *app) targetInfo(arch string) (target.Info, error) {
	if strings.TrimSpace(arch) != "" {
		parsed, err := target.ParseArchitecture(arch)
		if err != nil {
			return target.Info{}, err
		}
		return target.Info{Architecture: parsed}, nil
	}
	return a.config.TargetInfo()
}

func (a *app) projectRoot() string {
	if a.file == nil {
		return ""
	}
	return a.file.Root
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

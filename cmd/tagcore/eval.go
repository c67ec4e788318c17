package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tagcore/internal/can"
	"tagcore/internal/eval"
	"tagcore/internal/symbols"
	"tagcore/internal/trace"
	"tagcore/internal/types"
)

func newEvalCmd(a *app) *cobra.Command {
	var showTrace bool
	cmd := &cobra.Command{
		Use:   "eval BUILTIN [ARGS...]",
		Short: "Evaluate a synthesized builtin on literal arguments",
		Long: "Arguments are integers or comma-separated integer lists. Flags must\n" +
			"precede BUILTIN so negative numbers read as arguments, e.g.\n" +
			"  tagcore eval List.get 10,20,30 1\n" +
			"  tagcore eval --backtrace Int.div 7 -2",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sym, ok := symbols.Lookup(strings.TrimSpace(args[0]))
			if !ok {
				return fmt.Errorf("unknown builtin %q", args[0])
			}
			vals := make([]eval.Value, 0, len(args)-1)
			for _, raw := range args[1:] {
				v, err := eval.ParseValue(raw)
				if err != nil {
					return err
				}
				vals = append(vals, v)
			}

			idx := a.timer.Begin("eval")
			span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopePass, "eval", trace.CurrentSpan(cmd.Context()))
			env, err := eval.NewBuiltinEnv(can.BuiltinDefs(types.NewVarStore()))
			if err != nil {
				span.End("error")
				a.timer.End(idx, "")
				return err
			}
			res, err := env.Call(sym, vals...)
			span.End(sym.String())
			a.timer.End(idx, sym.String())
			if err != nil {
				var evErr *eval.Error
				if showTrace && errors.As(err, &evErr) {
					for _, frame := range evErr.Backtrace {
						fmt.Fprintf(cmd.ErrOrStderr(), "  at %s\n", frame)
					}
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.String())
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&showTrace, "backtrace", false, "print the call backtrace on evaluation errors")
	return cmd
}

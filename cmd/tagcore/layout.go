package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tagcore/internal/symbols"
	"tagcore/internal/target"
	"tagcore/internal/ui"
	"tagcore/internal/width"
)

func newLayoutCmd(a *app) *cobra.Command {
	var arch, typeArg string
	var allArchs bool
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show stack size and alignment of the fixed-width numeric types",
		Example: "  tagcore layout --arch x86_32\n" +
			"  tagcore layout --type Num.@Binary64\n" +
			"  tagcore layout --all-archs",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			widths := width.All()
			if typeArg != "" {
				w, err := parseNumericArg(typeArg)
				if err != nil {
					return err
				}
				widths = []width.Numeric{w}
			}
			var archs []target.Architecture
			if allArchs {
				archs = target.All()
			} else {
				info, err := a.targetInfo(arch)
				if err != nil {
					return err
				}
				archs = []target.Architecture{info.Architecture}
			}
			fmt.Fprint(cmd.OutOrStdout(), layoutTable(widths, archs, !a.quiet && isTerminal(stdoutFile(cmd))).Render())
			return nil
		},
	}
	cmd.Flags().StringVar(&arch, "arch", "", "target architecture (default: config or host)")
	cmd.Flags().StringVar(&typeArg, "type", "", "a width (i64, f32) or type symbol (Num.Signed64, Num.@Binary32)")
	cmd.Flags().BoolVar(&allArchs, "all-archs", false, "show alignment on every supported architecture")
	return cmd
}

func layoutTable(widths []width.Numeric, archs []target.Architecture, styled bool) ui.Table {
	headers := []string{"type", "size"}
	for _, arch := range archs {
		headers = append(headers, "align "+arch.String())
	}
	tbl := ui.Table{Headers: headers, Styled: styled}
	for _, w := range widths {
		row := []string{w.TypeName(), strconv.FormatUint(uint64(w.StackSize()), 10)}
		for _, arch := range archs {
			row = append(row, strconv.FormatUint(uint64(w.AlignmentBytes(target.Info{Architecture: arch})), 10))
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl
}

// parseNumericArg accepts a width name or a qualified type symbol.
func parseNumericArg(s string) (width.Numeric, error) {
	s = strings.TrimSpace(s)
	if w, err := width.Parse(strings.ToLower(s)); err == nil {
		return w, nil
	}
	if !strings.Contains(s, ".") {
		s = "Num." + s
	}
	sym, ok := symbols.Lookup(s)
	if !ok {
		return width.Numeric{}, fmt.Errorf("unknown numeric type %q", s)
	}
	w, ok := width.TryFromSymbol(sym)
	if !ok {
		return width.Numeric{}, fmt.Errorf("%s has no fixed width", sym)
	}
	return w, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tagcore/internal/backend/llvm"
	"tagcore/internal/bitcode"
	"tagcore/internal/ui"
	"tagcore/internal/width"
)

func newConvertCmd(a *app) *cobra.Command {
	var decl, all bool
	var arch string
	cmd := &cobra.Command{
		Use:   "convert SRC DST",
		Short: "Resolve the checked integer conversion intrinsic from SRC to DST",
		Example: "  tagcore convert i64 u8\n" +
			"  tagcore convert u16 i32 --decl\n" +
			"  tagcore convert --all",
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if all {
				fmt.Fprint(out, conversionMatrix().Render())
				return nil
			}
			src, err := width.ParseIntWidth(args[0])
			if err != nil {
				return err
			}
			dst, err := width.ParseIntWidth(args[1])
			if err != nil {
				return err
			}
			if !decl {
				name, check, err := bitcode.CheckedConversion(src, dst)
				if err != nil {
					return err
				}
				if check == bitcode.ConversionLossless {
					fmt.Fprintf(out, "%s -> %s: %s (no call)\n", src, dst, check)
					return nil
				}
				fmt.Fprintf(out, "%s -> %s: %s\n%s\n", src, dst, check, name)
				return nil
			}
			info, err := a.targetInfo(arch)
			if err != nil {
				return err
			}
			d, ok, err := llvm.ConversionDecl(src, dst, info)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(out, "; %s -> %s is lossless\n", src, dst)
				return nil
			}
			fmt.Fprintln(out, d.Render())
			return nil
		},
	}
	cmd.Flags().BoolVar(&decl, "decl", false, "print an LLVM declaration instead of the bare symbol")
	cmd.Flags().StringVar(&arch, "arch", "", "target architecture for --decl (default: config or host)")
	cmd.Flags().BoolVar(&all, "all", false, "print the check kind for every source/destination pair")
	return cmd
}

// conversionMatrix tabulates the check each conversion needs, source rows
// by destination columns.
func conversionMatrix() ui.Table {
	ws := width.IntWidths()
	tbl := ui.Table{Headers: []string{"src_dst"}}
	for _, dst := range ws {
		tbl.Headers = append(tbl.Headers, dst.TypeName())
	}
	for _, src := range ws {
		row := []string{src.TypeName()}
		for _, dst := range ws {
			switch bitcode.ConversionCheckFor(src, dst) {
			case bitcode.ConversionLossless:
				row = append(row, "-")
			case bitcode.ConversionCheckMax:
				row = append(row, "max")
			default:
				row = append(row, "both")
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tagcore/internal/backend/llvm"
	"tagcore/internal/bitcode"
	"tagcore/internal/target"
	"tagcore/internal/trace"
	"tagcore/internal/ui"
	"tagcore/internal/width"
)

type intrinsicsOptions struct {
	op     string
	width  string
	emit   string
	decl   bool
	arch   string
	filter string
}

func newIntrinsicsCmd(a *app) *cobra.Command {
	var opts intrinsicsOptions
	cmd := &cobra.Command{
		Use:   "intrinsics",
		Short: "List the bitcode intrinsic catalog or resolve one operation",
		Example: "  tagcore intrinsics --filter num.\n" +
			"  tagcore intrinsics --op num.pow_int --width i32 --decl\n" +
			"  tagcore intrinsics --emit catalog.mp",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopePass, "intrinsics", trace.CurrentSpan(cmd.Context()))
			defer span.End("")
			out := cmd.OutOrStdout()
			if opts.emit != "" {
				if err := emitSnapshot(opts.emit); err != nil {
					return err
				}
				if !a.quiet {
					fmt.Fprintf(out, "wrote %s\n", opts.emit)
				}
				return nil
			}
			if opts.op == "" {
				fmt.Fprint(out, catalogTable(opts.filter, ui.Table{Styled: isTerminal(stdoutFile(cmd))}).Render())
				return nil
			}
			entry, err := bitcode.ByName(opts.op)
			if err != nil {
				return err
			}
			if opts.width == "" {
				fmt.Fprint(out, entryTable(entry).Render())
				return nil
			}
			info, err := a.targetInfo(opts.arch)
			if err != nil {
				return err
			}
			return resolveEntry(out, entry, opts.width, opts.decl, info)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.op, "op", "", "operation name, e.g. num.pow_int or roc_builtins.str.to_int")
	f.StringVar(&opts.width, "width", "", "resolve --op at this width (u8..i128, f32..f128, dec)")
	f.BoolVar(&opts.decl, "decl", false, "print an LLVM declaration for the resolved symbol")
	f.StringVar(&opts.arch, "arch", "", "target architecture for --decl (default: config or host)")
	f.StringVar(&opts.emit, "emit", "", "write a msgpack snapshot of the catalog to this file")
	f.StringVar(&opts.filter, "filter", "", "only list operations with this prefix")
	return cmd
}

func catalogTable(prefix string, tbl ui.Table) ui.Table {
	tbl.Headers = []string{"op", "kind", "signature", "symbols"}
	for _, e := range bitcode.Catalog() {
		if prefix != "" && !strings.HasPrefix(e.Op, prefix) {
			continue
		}
		syms, sig := e.Symbol, "-"
		if e.Kind != bitcode.EntryPlain {
			syms = strconv.Itoa(e.Table.Populated()) + " widths"
			sig = e.Sig.String()
		}
		tbl.Rows = append(tbl.Rows, []string{e.Op, e.Kind.String(), sig, syms})
	}
	return tbl
}

func entryTable(e bitcode.Entry) ui.Table {
	tbl := ui.Table{Headers: []string{"width", "symbol"}}
	if e.Kind == bitcode.EntryPlain {
		tbl.Rows = append(tbl.Rows, []string{"-", e.Symbol})
		return tbl
	}
	if name, err := e.Table.Dec(); err == nil {
		tbl.Rows = append(tbl.Rows, []string{"dec", name})
	}
	for _, w := range width.All() {
		if name, err := e.Table.Numeric(w); err == nil {
			tbl.Rows = append(tbl.Rows, []string{w.TypeName(), name})
		}
	}
	return tbl
}

func resolveEntry(out io.Writer, e bitcode.Entry, widthArg string, decl bool, info target.Info) error {
	if e.Kind == bitcode.EntryPlain {
		return fmt.Errorf("%s is not width-indexed", e.Op)
	}
	if strings.EqualFold(widthArg, "dec") {
		name, err := e.Table.Dec()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, name)
		return nil
	}
	w, err := width.Parse(strings.ToLower(widthArg))
	if err != nil {
		return err
	}
	name, err := e.Table.Numeric(w)
	if err != nil {
		return err
	}
	if !decl {
		fmt.Fprintln(out, name)
		return nil
	}
	d, err := llvm.EntryDecl(e, w, info)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, d.Render())
	return nil
}

func emitSnapshot(path string) (err error) {
	if filepath.Ext(path) != ".mp" {
		return fmt.Errorf("snapshot file must end in .mp: %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return bitcode.WriteSnapshot(f)
}

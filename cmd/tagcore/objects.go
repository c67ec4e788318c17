package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tagcore/internal/bitcode"
	"tagcore/internal/target"
	"tagcore/internal/ui"
)

func newObjectsCmd(a *app) *cobra.Command {
	var arch string
	var all bool
	cmd := &cobra.Command{
		Use:   "objects",
		Short: "Show where the precompiled builtins object is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := a.config.ObjectPaths(a.projectRoot())
			out := cmd.OutOrStdout()
			if all {
				fmt.Fprint(out, objectsTable(paths).Render())
				return nil
			}
			info, err := a.targetInfo(arch)
			if err != nil {
				return err
			}
			path, err := paths.For(info.Architecture)
			if err != nil {
				if errors.Is(err, bitcode.ErrObjectPathUnset) {
					return fmt.Errorf("%s: %w (set [builtins] in tagcore.toml or build with -ldflags)", info.Architecture, err)
				}
				return err
			}
			fmt.Fprintln(out, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&arch, "arch", "", "target architecture (default: config or host)")
	cmd.Flags().BoolVar(&all, "all", false, "list the object path of every architecture")
	return cmd
}

func objectsTable(paths bitcode.ObjectPaths) ui.Table {
	tbl := ui.Table{Headers: []string{"arch", "object"}}
	for _, arch := range target.All() {
		path, err := paths.For(arch)
		if err != nil {
			path = "(unset)"
		}
		tbl.Rows = append(tbl.Rows, []string{arch.String(), path})
	}
	return tbl
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components <scenario.yaml>",
		Short: "List the walkable regions of a scenario map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gg, g, err := a.loadMap(args[0])
			if err != nil {
				return err
			}
			comps := gg.ComponentNodeIDs(gg.ConnectedComponents())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cells=%d walkable=%d regions=%d\n", gg.Width*gg.Height, g.Len(), len(comps))
			for i, ids := range comps {
				fmt.Fprintf(out, "region %d: size=%d first=%s\n", i, len(ids), ids[0])
			}
			return nil
		},
	}
}

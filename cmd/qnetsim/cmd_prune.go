// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qnetsim/topology"
)

func newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove rarely used nodes from a topology",
		Long: `Prune drops every node whose usage fraction is below --min-usage,
together with its links. Usage fractions come from a topology saved by
"run --save-topology". Nodes listed with --keep are never removed. Users
are path endpoints and carry no usage, so list every user with --keep.`,
		Example: `  qnetsim prune --in used.json --out pruned.json --min-usage 0.05 --keep 0,0 --keep 5,5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")
			minUsage, _ := cmd.Flags().GetFloat64("min-usage")
			keep, _ := cmd.Flags().GetStringArray("keep")

			g, err := topology.LoadFile(in)
			if err != nil {
				return err
			}
			removed := g.RemoveNodes(minUsage, keep)
			if err := topology.SaveFile(out, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d nodes, %d remain\n", removed, g.NodeCount())

			return nil
		},
	}

	cmd.Flags().String("in", "", "Topology with usage counters")
	cmd.Flags().String("out", "", "Output topology file")
	cmd.Flags().Float64("min-usage", 0, "Minimum usage fraction to keep a node")
	cmd.Flags().StringArray("keep", nil, "Node ID that is never removed; repeatable")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qnetsim/resultstore"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored protocol runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			name, _ := cmd.Flags().GetString("protocol")
			limit, _ := cmd.Flags().GetInt("limit")

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			store, err := resultstore.Open(ctx, dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(ctx, name, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs stored")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(out, "%s  %-3s  users=%d  reps=%d  T=%d  seed=%d  rate=%.6f\n",
					r.RunID, r.Protocol, len(r.Users), r.Reps, r.Timesteps, r.Seed, r.Rate)
			}

			return nil
		},
	}

	cmd.Flags().String("db", "", "SQLite database written by run --db")
	cmd.Flags().String("protocol", "", "Only list runs of this protocol")
	cmd.Flags().Int("limit", 20, "Maximum number of runs (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/teampath/internal/report"
	"github.com/katalvlaran/teampath/partition"
)

func newPlanCommand(a *app) *cobra.Command {
	var nodes int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print how the nodes are split across the team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workers := a.cfg.ResolveWorkers()
			ranges, err := partition.Plan(nodes, workers)
			if err != nil {
				return err
			}
			if err = partition.Verify(nodes, ranges); err != nil {
				return err
			}
			report.New(cmd.OutOrStdout()).Partition(nodes, ranges)

			return nil
		},
	}
	cmd.Flags().IntVarP(&nodes, "nodes", "n", 6, "node count")
	cmd.Flags().IntP("workers", "w", 0, "team size (default: $TEAMPATH_WORKERS, $OMP_NUM_THREADS or CPU count)")

	return cmd
}

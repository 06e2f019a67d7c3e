// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/teampath/builder"
	"github.com/katalvlaran/teampath/dijkstra"
	"github.com/katalvlaran/teampath/internal/graphfile"
	"github.com/katalvlaran/teampath/internal/report"
	"github.com/katalvlaran/teampath/matrix"
	"github.com/katalvlaran/teampath/parallel"
)

func newRunCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute minimum distances from the source node",
		Long: `Compute minimum distances from the source node to every node.

The graph comes from --graph (a YAML or JSON file) or --generate (a
topology such as complete:64, grid:8x8 or random:200:0.05); without either
the built-in six-node demonstration graph is used. The team
size comes from --workers, then TEAMPATH_WORKERS, then OMP_NUM_THREADS, then
the number of CPUs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, fileSource, hasSource, err := a.loadGraph()
			if err != nil {
				return err
			}

			return a.solve(cmd, m, a.cfg.ResolveSource(fileSource, hasSource))
		},
	}
	addSolveFlags(cmd)
	cmd.Flags().StringP("graph", "g", "", "graph file (YAML or JSON)")
	cmd.Flags().String("generate", "", "generate a graph: complete:N, path:N, cycle:N, star:N, wheel:N, grid:RxC, random:N:P")
	cmd.Flags().Bool("directed", false, "make --generate emit one-way edges (u→v in generator order)")
	cmd.Flags().Int64("seed", 1, "random seed for --generate")
	cmd.Flags().Int64("max-weight", 100, "generated edge weights are drawn from [1, max-weight]")

	return cmd
}

func newDemoCommand(a *app) *cobra.Command {
	var save string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run on the built-in six-node demonstration graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := matrix.Demo()
			if save != "" {
				data, err := graphfile.Marshal(m)
				if err != nil {
					return err
				}
				if err = os.WriteFile(save, data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", save, err)
				}
				a.log.Info("demo graph saved", "path", save)
			}

			return a.solve(cmd, m, a.cfg.ResolveSource(0, false))
		},
	}
	addSolveFlags(cmd)
	cmd.Flags().StringVar(&save, "save", "", "also write the demo graph to this file")

	return cmd
}

// addSolveFlags registers the flags shared by run and demo.
func addSolveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("source", "s", -1, "source node (default: graph file source, or 0)")
	f.IntP("workers", "w", 0, "team size (default: $TEAMPATH_WORKERS, $OMP_NUM_THREADS or CPU count)")
	f.BoolP("trace", "t", false, "print the partition and every connect step")
	f.Bool("verify", false, "check the result against the sequential reference")
	f.Bool("early-exit", false, "stop once no unconnected node is reachable")
	f.Bool("invariant-checks", false, "verify internal invariants every round")
}

// loadGraph returns the configured graph file, the generated topology, or the
// demo graph when neither is set.
func (a *app) loadGraph() (*matrix.Distance, int, bool, error) {
	if a.cfg.Generate != "" {
		topo, err := builder.Parse(a.cfg.Generate)
		if err != nil {
			return nil, 0, false, err
		}
		opts := []builder.BuilderOption{
			builder.WithSeed(a.cfg.Seed),
			builder.WithWeightFn(builder.UniformWeight(1, a.cfg.MaxWeight)),
		}
		if a.cfg.Directed {
			opts = append(opts, builder.WithDirected())
		}
		m, err := builder.Build(topo, opts...)
		if err != nil {
			return nil, 0, false, err
		}
		a.log.Debug("graph generated", "topology", a.cfg.Generate, "nodes", m.Size(), "seed", a.cfg.Seed, "directed", a.cfg.Directed)

		return m, 0, false, nil
	}
	if a.cfg.Directed {
		a.log.Warn("directed only applies to generated graphs; ignoring it")
	}
	if a.cfg.Graph == "" {
		return matrix.Demo(), 0, false, nil
	}

	g, err := graphfile.Load(a.cfg.Graph)
	if err != nil {
		return nil, 0, false, err
	}
	a.log.Debug("graph loaded", "path", a.cfg.Graph, "nodes", g.Matrix.Size())

	return g.Matrix, g.Source, g.HasSource, nil
}

// solve runs the team on m and prints the report.
func (a *app) solve(cmd *cobra.Command, m *matrix.Distance, source int) error {
	out := report.New(cmd.OutOrStdout())
	workers := a.cfg.ResolveWorkers()
	log := a.log.With("command", cmd.Name())
	if workers > m.Size() {
		log.Warn("more workers than nodes, some ranges stay idle", "workers", workers, "nodes", m.Size())
	}

	out.Matrix(m)

	opts := []parallel.Option{
		parallel.Source(source),
		parallel.WithLogger(a.log.Slog()),
	}
	if a.cfg.Trace {
		out.Begin(workers)
		opts = append(opts, parallel.WithOnPlan(out.Plan), parallel.WithOnConnect(out.Connect))
	}
	if a.cfg.EarlyExit {
		opts = append(opts, parallel.WithEarlyExit())
	}
	if a.cfg.InvariantChecks {
		opts = append(opts, parallel.WithInvariantChecks())
	}

	res, err := parallel.Run(m, workers, opts...)
	if err != nil {
		log.Error("run failed", "error", err)
		return err
	}
	if a.cfg.Trace {
		out.End()
	}
	out.Result(res)

	if a.cfg.Verify {
		want, _, err := dijkstra.Dijkstra(m, dijkstra.Source(source))
		if err != nil {
			return fmt.Errorf("sequential reference: %w", err)
		}
		var mismatches []int
		for i, d := range want {
			if res.Distance(i) != d {
				mismatches = append(mismatches, i)
			}
		}
		out.Verified(mismatches)
		if len(mismatches) > 0 {
			log.Error("verification failed", "nodes", mismatches)
			return fmt.Errorf("%w: nodes %v", ErrMismatch, mismatches)
		}
	}

	out.Footer()

	return nil
}

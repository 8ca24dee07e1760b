// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qnetsim/config"
	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/metrics"
	"github.com/katalvlaran/qnetsim/protocol"
	"github.com/katalvlaran/qnetsim/resultstore"
	"github.com/katalvlaran/qnetsim/topology"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a distribution protocol and report its entanglement rate",
		Long: `Run simulates repeated trials of one protocol on a topology.

The experiment comes from --config (or the built-in 3x3 grid default);
flags given on the command line override it.`,
		Example: `  qnetsim run --protocol MPC --rows 6 --cols 6 --users 0,0 --users 5,5 --users 0,5 --p 0.5
  qnetsim run --config exp.yaml --metrics-file run.prom --db runs.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadExperiment(cmd)
			if err != nil {
				return err
			}
			applyRunFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			saveTopo, _ := cmd.Flags().GetString("save-topology")

			return runExperiment(cmd, cfg, jsonOut, saveTopo)
		},
	}

	cmd.Flags().String("protocol", "", "Protocol: SP, MPG or MPC")
	cmd.Flags().StringArray("users", nil, "User node ID; repeat for each user, source first")
	cmd.Flags().Int("timesteps", 0, "Timestep budget per trial")
	cmd.Flags().Int("reps", 0, "Number of trials")
	cmd.Flags().Int64("seed", 0, "Random seed")
	cmd.Flags().Int("workers", 0, "Concurrent trials (0 = GOMAXPROCS)")
	cmd.Flags().Bool("count-fusion", false, "Count fusing nodes as used")
	cmd.Flags().String("topology", "", "Topology file (.json, .json.sz, .tsv, .txt)")
	cmd.Flags().Int("rows", 0, "Grid rows when no topology file is given")
	cmd.Flags().Int("cols", 0, "Grid columns when no topology file is given")
	cmd.Flags().Float64("p", 0, "Link success probability (operational p when --loss-db is set)")
	cmd.Flags().Int("qc", 0, "Decoherence threshold in timesteps")
	cmd.Flags().Float64("loss-db", 0, "Fibre attenuation in dB/km")
	cmd.Flags().Float64("length", 0, "Override every edge length in km")
	cmd.Flags().String("metrics-file", "", "Write Prometheus text metrics to this file")
	cmd.Flags().String("db", "", "Append the result to this SQLite database")
	cmd.Flags().String("save-topology", "", "Write the topology with usage counters to this file")
	cmd.Flags().Bool("json", false, "Print the result as JSON")

	return cmd
}

// applyRunFlags copies explicitly set flags over the experiment.
func applyRunFlags(cmd *cobra.Command, cfg *config.Experiment) {
	f := cmd.Flags()
	if f.Changed("protocol") {
		cfg.Run.Protocol, _ = f.GetString("protocol")
	}
	if f.Changed("users") {
		cfg.Run.Users, _ = f.GetStringArray("users")
	}
	if f.Changed("timesteps") {
		cfg.Run.Timesteps, _ = f.GetInt("timesteps")
	}
	if f.Changed("reps") {
		cfg.Run.Reps, _ = f.GetInt("reps")
	}
	if f.Changed("seed") {
		cfg.Run.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("workers") {
		cfg.Run.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("count-fusion") {
		cfg.Run.CountFusion, _ = f.GetBool("count-fusion")
	}
	if f.Changed("topology") {
		cfg.Topology.File, _ = f.GetString("topology")
	}
	if f.Changed("rows") || f.Changed("cols") {
		cfg.Topology.File = ""
		if f.Changed("rows") {
			cfg.Topology.Rows, _ = f.GetInt("rows")
		}
		if f.Changed("cols") {
			cfg.Topology.Cols, _ = f.GetInt("cols")
		}
	}
	if f.Changed("p") {
		p, _ := f.GetFloat64("p")
		cfg.Links.P = &p
	}
	if f.Changed("qc") {
		qc, _ := f.GetInt("qc")
		cfg.Links.Qc = &qc
	}
	if f.Changed("loss-db") {
		loss, _ := f.GetFloat64("loss-db")
		cfg.Links.LossDB = &loss
	}
	if f.Changed("length") {
		length, _ := f.GetFloat64("length")
		cfg.Links.Length = &length
	}
	if f.Changed("metrics-file") {
		cfg.Output.MetricsFile, _ = f.GetString("metrics-file")
	}
	if f.Changed("db") {
		cfg.Output.DBPath, _ = f.GetString("db")
	}
}

// buildTopology loads or generates the network and applies the link
// parameters of cfg.
func buildTopology(cfg *config.Experiment) (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	if cfg.Topology.File != "" {
		g, err = topology.LoadFile(cfg.Topology.File)
	} else {
		g, err = topology.Grid(cfg.Topology.Rows, cfg.Topology.Cols)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Links.Length != nil {
		if err := g.SetLength(*cfg.Links.Length); err != nil {
			return nil, err
		}
	}
	if err := g.SetParams(nil, cfg.Links.Qc); err != nil {
		return nil, err
	}
	if err := g.SetPEdge(cfg.Links.P, cfg.Links.LossDB); err != nil {
		return nil, err
	}

	return g, nil
}

func runExperiment(cmd *cobra.Command, cfg *config.Experiment, jsonOut bool, saveTopo string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd, cfg)

	g, err := buildTopology(cfg)
	if err != nil {
		return err
	}
	reg := metrics.NewRegistry()
	res, err := protocol.RunProtocol(ctx, cfg.Run.Protocol, g, cfg.Run.Users, cfg.Run.Timesteps, cfg.Run.Reps,
		protocol.WithSeed(cfg.Run.Seed),
		protocol.WithWorkers(cfg.Run.Workers),
		protocol.WithCountFusion(cfg.Run.CountFusion),
		protocol.WithRecorder(reg),
		protocol.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	reg.ObserveTopology(g.Stats())

	if cfg.Output.MetricsFile != "" {
		if err := reg.WriteFile(cfg.Output.MetricsFile); err != nil {
			return err
		}
		logger.Info("metrics written", "path", cfg.Output.MetricsFile)
	}
	if cfg.Output.DBPath != "" {
		store, err := resultstore.Open(ctx, cfg.Output.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(ctx, res); err != nil {
			return err
		}
		logger.Info("result stored", "path", cfg.Output.DBPath, "run_id", res.RunID.String())
	}
	if saveTopo != "" {
		if err := topology.SaveFile(saveTopo, g); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintln(out, renderResult(res, g))

	return nil
}

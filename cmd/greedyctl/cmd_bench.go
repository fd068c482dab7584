package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgreedy/report"
	"github.com/katalvlaran/lvgreedy/scenario"
)

func (a *app) newBenchCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run all optimizers on the stored scenarios",
		Long:  "Load the three scenarios from the scenario location, run each optimizer once and print results with per-call runtimes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBench(cmd, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

func (a *app) runBench(cmd *cobra.Command, asJSON bool) error {
	store, err := scenario.NewStore(a.cfg.ScenarioDir)
	if err != nil {
		return err
	}
	set, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}

	rep, err := report.Bench(set, a.harnessOptions(), a.logger)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(cmd, rep)
	}

	return rep.WriteText(cmd.OutOrStdout())
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgreedy/scenario"
)

func (a *app) newGenerateCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the three delivery scenarios",
		Long: `Generate package prioritization, truck loading and driver assignment
scenarios and write them as JSON files into the scenario location.

Examples:
  greedyctl generate
  greedyctl generate --seed 42 --dir /tmp/scenarios`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, seed)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 keeps the configured seed)")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, seed int64) error {
	opts := a.cfg.Generator
	if seed != 0 {
		opts.Seed = seed
	}

	set, err := scenario.Generate(opts)
	if err != nil {
		return err
	}
	store, err := scenario.NewStore(a.cfg.ScenarioDir)
	if err != nil {
		return err
	}
	if err = store.Save(cmd.Context(), set); err != nil {
		return err
	}

	for _, name := range []string{scenario.PrioritizationFile, scenario.TruckLoadingFile, scenario.AssignmentFile} {
		a.logger.Info().Str("file", store.URL(name)).Msg("generated")
	}
	a.logger.Info().
		Int64("seed", opts.Seed).
		Int("windows", len(set.Prioritization)).
		Int("packages", len(set.Packages)).
		Float64("truck_capacity", set.TruckCapacity).
		Int("deliveries", len(set.Assignment)).
		Msg("scenario generation complete")

	return nil
}

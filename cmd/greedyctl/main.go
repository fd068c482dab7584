// Command greedyctl generates delivery scenarios and runs the greedy
// optimizers on them.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgreedy/config"
	"github.com/katalvlaran/lvgreedy/logging"
	"github.com/katalvlaran/lvgreedy/report"
)

// app carries the state of one command execution.
type app struct {
	logger     zerolog.Logger
	cfg        *config.Config
	configPath string
	dir        string
}

// newRootCmd builds a fresh command tree; flag values never outlive it.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "greedyctl",
		Short:         "Greedy delivery optimizers",
		Long:          "greedyctl schedules deliveries, loads trucks and assigns drivers with classical greedy algorithms.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file or URL")
	root.PersistentFlags().StringVar(&a.dir, "dir", "", "scenario location (overrides scenario_dir)")

	root.AddCommand(
		a.newGenerateCmd(),
		a.newBenchCmd(),
		a.newSelfTestCmd(),
		a.newSelectCmd(),
		a.newLoadCmd(),
		a.newAssignCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration and logging for every subcommand.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Context(), a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.dir != "" {
		cfg.ScenarioDir = a.dir
	}
	a.cfg = cfg

	a.logger = logging.Setup(cfg.Environment)
	a.logger.Debug().Str("scenario_dir", cfg.ScenarioDir).Str("strategy", cfg.Strategy).Msg("configuration loaded")

	return nil
}

// harnessOptions maps the loaded configuration onto report.Options.
func (a *app) harnessOptions() report.Options {
	return report.Options{Precision: a.cfg.Precision, Strategy: a.cfg.PartitionStrategy()}
}

package main

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgreedy/activity"
	"github.com/katalvlaran/lvgreedy/knapsack"
	"github.com/katalvlaran/lvgreedy/partition"
	"github.com/katalvlaran/lvgreedy/scenario"
)

func (a *app) newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select FILE",
		Short: "Schedule the most non-overlapping deliveries from a windows file",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runSelect,
	}
}

func (a *app) newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE",
		Short: "Load a truck from a truck_loading file",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runLoad,
	}
}

func (a *app) newAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign FILE",
		Short: "Assign deliveries from a windows file to the fewest drivers",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runAssign,
	}
}

// openFile splits a file argument into a Store on its directory and the base name.
func openFile(arg string) (*scenario.Store, string, error) {
	store, err := scenario.NewStore(filepath.Dir(arg))
	if err != nil {
		return nil, "", err
	}

	return store, filepath.Base(arg), nil
}

func (a *app) runSelect(cmd *cobra.Command, args []string) error {
	store, name, err := openFile(args[0])
	if err != nil {
		return err
	}
	windows, err := store.ReadWindows(cmd.Context(), name)
	if err != nil {
		return err
	}
	res, err := activity.Select(windows)
	if err != nil {
		return err
	}
	a.logger.Debug().Int("scheduled", res.Len()).Int("total", len(windows)).Msg("select done")

	return printJSON(cmd, res)
}

func (a *app) runLoad(cmd *cobra.Command, args []string) error {
	store, name, err := openFile(args[0])
	if err != nil {
		return err
	}
	items, capacity, err := store.ReadTruck(cmd.Context(), name)
	if err != nil {
		return err
	}
	res, err := knapsack.Fill(items, capacity, knapsack.WithPrecision(a.cfg.Precision))
	if err != nil {
		return err
	}
	a.logger.Debug().Int("packages", len(res.Allocations)).Float64("total_value", res.TotalValue).Msg("load done")

	return printJSON(cmd, res)
}

func (a *app) runAssign(cmd *cobra.Command, args []string) error {
	store, name, err := openFile(args[0])
	if err != nil {
		return err
	}
	windows, err := store.ReadWindows(cmd.Context(), name)
	if err != nil {
		return err
	}
	res, err := partition.Assign(windows, partition.WithStrategy(a.cfg.PartitionStrategy()))
	if err != nil {
		return err
	}
	a.logger.Debug().Int("drivers", res.TrackCount).Msg("assign done")

	return printJSON(cmd, res)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

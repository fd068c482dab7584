package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgreedy/report"
)

func (a *app) newSelfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the optimizers on small known cases",
		RunE:  a.runSelfTest,
	}
}

func (a *app) runSelfTest(cmd *cobra.Command, args []string) error {
	results, err := report.SelfTest(a.harnessOptions())
	if err != nil {
		return err
	}
	if err = report.WriteSelfTest(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	if failed := report.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d known cases failed", failed, len(results))
	}

	return nil
}

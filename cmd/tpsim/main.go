// Command tpsim plays back a YAML scenario file through the trajectory
// planner against a simulated machine, printing a per-cycle trace table.
// It is a development and demonstration harness, not part of the
// planner's public contract.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var maxCycles int

	root := &cobra.Command{
		Use:   "tpsim",
		Short: "Replay a trajectory-planner scenario against a simulated machine",
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Run a scenario file and print its cycle-by-cycle trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := LoadScenario(args[0])
			if err != nil {
				return fmt.Errorf("loading scenario: %w", err)
			}
			return runScenario(sc, maxCycles)
		},
	}
	runCmd.Flags().IntVar(&maxCycles, "max-cycles", 2_000_000, "safety cap on simulated servo cycles")
	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

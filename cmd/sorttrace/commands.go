package main

import (
	"github.com/spf13/cobra"
)

var (
	seed      int64
	jsonOut   bool
	batchFile string
	verbose   bool

	rootCmd = &cobra.Command{
		Use:   "sorttrace",
		Short: "Record and inspect sorting algorithm execution traces",
		Long: `sorttrace runs instrumented sorting algorithms against numeric input
and prints the recorded trace: every comparison, swap, assignment and
sorted-range annotation, step by step.`,
	}

	runCmd = &cobra.Command{
		Use:   "run [algorithm] [values...]",
		Short: "Run an algorithm against the given values and print the trace",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRun, // defined in cmd_run.go
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the registered algorithms",
		Args:  cobra.NoArgs,
		RunE:  runList, // defined in cmd_list.go
	}
)

func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 0, "seed for randomized algorithms (0 = time-seeded)")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the trace as JSON instead of a step listing")
	runCmd.Flags().StringVar(&batchFile, "batch", "", "YAML file with a list of runs to execute instead of positional args")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "enable structured logging to stderr")

	listCmd.Flags().BoolVar(&jsonOut, "json", false, "print the algorithm list as JSON")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}

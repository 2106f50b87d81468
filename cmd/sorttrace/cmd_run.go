package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/sorttrace"
	"github.com/hupe1980/sorttrace/core"
	"github.com/hupe1980/sorttrace/logging"
)

// runSpec describes one run in a batch file.
type runSpec struct {
	Algorithm string    `yaml:"algorithm" validate:"required"`
	Values    []float64 `yaml:"values" validate:"required,min=1"`
	Seed      int64     `yaml:"seed"`
}

// batchSpec is the top-level shape of a --batch YAML file.
type batchSpec struct {
	Runs []runSpec `yaml:"runs" validate:"required,min=1,dive"`
}

var validate = validator.New()

func runRun(cmd *cobra.Command, args []string) error {
	if batchFile != "" {
		return runBatch(cmd, batchFile)
	}
	if len(args) < 2 {
		return fmt.Errorf("expected an algorithm name followed by at least one value")
	}

	values, err := parseValues(args[1:])
	if err != nil {
		return err
	}

	return execute(cmd, runSpec{Algorithm: args[0], Values: values, Seed: seed})
}

func runBatch(cmd *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read batch file: %w", err)
	}

	var batch batchSpec
	if err := yaml.Unmarshal(raw, &batch); err != nil {
		return fmt.Errorf("parse batch file: %w", err)
	}
	if err := validate.Struct(batch); err != nil {
		return fmt.Errorf("invalid batch file: %w", err)
	}

	for i, spec := range batch.Runs {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		if err := execute(cmd, spec); err != nil {
			return fmt.Errorf("run %d (%s): %w", i, spec.Algorithm, err)
		}
	}
	return nil
}

// execute performs one run and writes the trace to the command's stdout.
func execute(cmd *cobra.Command, spec runSpec) error {
	st := sorttrace.New(func(o *sorttrace.Options) {
		if verbose {
			o.Logger = logging.NewSlogLogger(logging.LogLevelDebug, "text", false).WithComponent("cli")
		}
		if spec.Seed != 0 {
			o.Random = rand.New(rand.NewSource(spec.Seed))
		}
	})

	trace, err := st.Run(cmd.Context(), spec.Algorithm, spec.Values)
	if err != nil {
		// A partial trace is still printable; surface the failure afterwards.
		if trace != nil {
			printTrace(cmd, trace)
		}
		return err
	}

	printTrace(cmd, trace)
	return nil
}

func printTrace(cmd *cobra.Command, trace *core.Trace) {
	out := cmd.OutOrStdout()

	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		_ = enc.Encode(trace)
		return
	}

	fmt.Fprintf(out, "%s: %d steps, converged=%v\n", trace.Algorithm, trace.Len(), trace.Converged)
	for i, step := range trace.Steps {
		fmt.Fprintf(out, "%4d  %-18s %v  %s\n", i, stepMarker(step), snapshotValues(step), step.Description)
	}
}

func stepMarker(s core.Step) string {
	switch {
	case s.CompareIndices != nil:
		return fmt.Sprintf("compare(%d,%d)", s.CompareIndices[0], s.CompareIndices[1])
	case s.SwapIndices != nil:
		return fmt.Sprintf("swap(%d,%d)", s.SwapIndices[0], s.SwapIndices[1])
	case len(s.SortedIndices) > 0:
		return fmt.Sprintf("sorted%v", s.SortedIndices)
	default:
		return "note"
	}
}

func snapshotValues(s core.Step) []float64 {
	out := make([]float64, len(s.Snapshot))
	for i, e := range s.Snapshot {
		out[i] = e.Value
	}
	return out
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a number", a)
		}
		values[i] = v
	}
	return values, nil
}

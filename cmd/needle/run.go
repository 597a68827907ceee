package main

import (
	"fmt"

	"github.com/shearwater-labs/needle"
	"github.com/shearwater-labs/needle/pkg/caseset"
	"github.com/spf13/cobra"
)

var (
	runCasesPath string
	runSet       string
	runTrials    int
)

var runCmd = &cobra.Command{
	Use:   "run [index|a-b ...]",
	Short: "Benchmark every algorithm over test cases",
	Long: `Run every registered algorithm over test cases and print the timing table.

Without arguments all cases run. Arguments select a subset by index: single
indices ("3") and inclusive ranges ("1-5") may be mixed; invalid tokens are
warned about and skipped.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runCasesPath, "cases", "", "Path to a case YAML file or directory")
	runCmd.Flags().StringVar(&runSet, "set", "all", "Built-in case set: shared, hidden, all")
	runCmd.Flags().IntVar(&runTrials, "trials", 5, "Timed runs per measurement")
}

func runRun(cmd *cobra.Command, args []string) error {
	cases, err := loadCaseSet(cmd, runCasesPath, runSet)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return fmt.Errorf("no cases to run")
	}

	lab, err := needle.New(needle.WithTrials(runTrials))
	if err != nil {
		return err
	}

	var reports []*needle.CaseReport
	if len(args) == 0 {
		reports = lab.RunAll(cases)
	} else {
		indices := parseIndices(args, len(cases), cmd.ErrOrStderr())
		if len(indices) == 0 {
			return fmt.Errorf("no valid case indices in %v", args)
		}
		reports = lab.RunSubset(cases, indices)
	}

	out := cmd.OutOrStdout()
	s := newStyles(colorsEnabled())
	if !quiet {
		fmt.Fprintf(out, "Case set %s: %d case(s), %d algorithm(s), %d trial(s) each\n\n",
			caseset.Fingerprint(cases), len(reports), lab.Registry().Len(), runTrials)
	}
	renderCaseReports(out, s, reports)
	renderSummaryStats(out, s, reports)
	return nil
}

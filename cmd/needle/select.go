package main

import (
	"fmt"

	"github.com/shearwater-labs/needle"
	"github.com/shearwater-labs/needle/pkg/selector"
	"github.com/spf13/cobra"
)

var (
	selectCasesPath string
	selectSet       string
	selectTrials    int
	selectAlgorithm string
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Grade the selector against measured timings",
	Long: `Run the selection comparison: for each case, time the selector's decision,
measure its chosen algorithm and every alternative, and grade the choice
against the empirically fastest algorithm.`,
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().StringVar(&selectCasesPath, "cases", "", "Path to a case YAML file or directory")
	selectCmd.Flags().StringVar(&selectSet, "set", "all", "Built-in case set: shared, hidden, all")
	selectCmd.Flags().IntVar(&selectTrials, "trials", 5, "Timed runs per measurement")
	selectCmd.Flags().StringVar(&selectAlgorithm, "algorithm", "", "Force a fixed choice instead of the heuristic")
}

func runSelect(cmd *cobra.Command, args []string) error {
	cases, err := loadCaseSet(cmd, selectCasesPath, selectSet)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return fmt.Errorf("no cases to score")
	}

	var sel needle.Selector = selector.Heuristic{}
	if selectAlgorithm != "" {
		sel = selector.Fixed(selectAlgorithm)
	}

	lab, err := needle.New(needle.WithTrials(selectTrials), needle.WithSelector(sel))
	if err != nil {
		return err
	}

	report, err := lab.RunWithSelection(cases)
	if err != nil {
		return fmt.Errorf("scoring selection: %w", err)
	}

	renderSelectionReport(cmd.OutOrStdout(), newStyles(colorsEnabled()), report)
	return nil
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/shearwater-labs/needle/pkg/caseset"
	"github.com/spf13/cobra"
)

var (
	listCasesPath string
	listSet       string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available test cases",
	Long:  "Display the case inventory with input sizes and expectations",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCasesPath, "cases", "", "Path to a case YAML file or directory")
	listCmd.Flags().StringVar(&listSet, "set", "all", "Built-in case set: shared, hidden, all")
}

func runList(cmd *cobra.Command, args []string) error {
	cases, err := loadCaseSet(cmd, listCasesPath, listSet)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tNAME\tTEXT\tPATTERN\tEXPECTED")
	for i, c := range cases {
		fmt.Fprintf(w, "%d\t%s\t%q (%d)\t%q (%d)\t%s\n",
			i, c.Name,
			truncate(c.Text, 24), len(c.Text),
			truncate(c.Pattern, 16), len(c.Pattern),
			truncate(c.Expected, 20))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d case(s), fingerprint %s\n", len(cases), caseset.Fingerprint(cases))
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessgen/internal/reference"
)

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "List grade levels and their reference documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-14s  %s\n", "Grade", "Reference")
		fmt.Fprintln(out, strings.Repeat("─", 32))
		for _, g := range reference.AllGrades() {
			id, ok := reference.Resolve(g)
			doc := string(id)
			if !ok {
				doc = "(none)"
			}
			fmt.Fprintf(out, "%-14s  %s\n", g, doc)
		}
		return nil
	},
}

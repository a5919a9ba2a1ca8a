package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessgen/internal/logger"
	"github.com/abhisek/assessgen/internal/reference"
)

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Inspect reference materials",
}

var referenceCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every reference document can be extracted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		library, err := newLibrary(cfg, logger.Nop())
		if err != nil {
			return err
		}
		ex := library.Extractor()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Root: %s  Backend: %s\n\n", cfg.Reference.Root, cfg.Reference.Backend)
		fmt.Fprintf(out, "%-10s  %-12s  %8s  %s\n", "Document", "Status", "Chars", "Detail")
		fmt.Fprintln(out, strings.Repeat("─", 72))

		var failed int
		for _, id := range reference.Documents() {
			res := ex.Extract(cmd.Context(), id)
			detail := ex.Path(id)
			if !res.OK() {
				failed++
				detail = res.Reason.Error()
			}
			fmt.Fprintf(out, "%-10s  %-12s  %8d  %s\n", id, res.Status, len(res.Text), detail)
		}

		if failed > 0 {
			fmt.Fprintf(out, "\n%d of %d documents unavailable; prompts for those grades get an empty reference section.\n",
				failed, len(reference.Documents()))
		}
		return nil
	},
}

var referenceShowCmd = &cobra.Command{
	Use:   "show <grade>",
	Short: "Print the normalized reference text for a grade",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, ok := reference.ParseGrade(args[0])
		if !ok {
			return fmt.Errorf("unknown grade level %q (see `assessgen grades`)", args[0])
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		library, err := newLibrary(cfg, logger.Nop())
		if err != nil {
			return err
		}

		res := library.Load(cmd.Context(), grade)
		if !res.OK() {
			return fmt.Errorf("reference for %s: %s: %w", grade, res.Status, res.Reason)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Text)
		return nil
	},
}

func init() {
	referenceCmd.AddCommand(referenceCheckCmd)
	referenceCmd.AddCommand(referenceShowCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessgen/internal/assessment"
	"github.com/abhisek/assessgen/internal/logger"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the composed prompt without calling the model",
	Long: `Load the reference material and print the exact system instruction and
prompt that generate would send. No credential is needed and nothing is
sent to a model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := logger.New(cfg.LogMode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		req, err := requestFromFlags(cmd)
		if err != nil {
			return err
		}

		library, err := newLibrary(cfg, log)
		if err != nil {
			return err
		}
		gen := assessment.NewGenerator(nil, library, assessment.Config{MaxTokens: cfg.MaxTokens}, log)
		prompt, ref := gen.Prepare(cmd.Context(), req)

		out := cmd.OutOrStdout()
		if system, _ := cmd.Flags().GetBool("system"); system {
			fmt.Fprintf(out, "# SYSTEM #\n%s\n\n", assessment.SystemInstruction)
		}
		fmt.Fprint(out, prompt)
		switch {
		case ref.Reason != nil:
			fmt.Fprintf(cmd.ErrOrStderr(), "reference: %s: %v\n", ref.Status, ref.Reason)
		case !ref.OK():
			fmt.Fprintf(cmd.ErrOrStderr(), "reference: %s\n", ref.Status)
		}
		return nil
	},
}

func init() {
	f := promptCmd.Flags()
	f.StringP("input", "i", "", "Request file (.yaml, .yml or .json)")
	f.String("grade", "", "Grade level")
	f.String("narrative", "", "Section narrative")
	f.String("goals", "", "Section learning goals")
	f.String("standards", "", "Standards")
	f.String("lessons", "", "Lesson learning goals")
	f.Bool("system", false, "Also print the system instruction")
}

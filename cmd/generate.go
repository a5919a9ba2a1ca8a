package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessgen/internal/assessment"
	"github.com/abhisek/assessgen/internal/reference"
	"github.com/abhisek/assessgen/internal/ui/components"
	"github.com/abhisek/assessgen/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an assessment from flags or a request file",
	Long: `Generate one assessment and print it.

Inputs come from --input (a .yaml, .yml or .json request file) or from the
--grade, --narrative, --goals, --standards and --lessons flags. Flags override
values from the file. Every field must be non-empty.`,
	Example: `  assessgen generate --input unit3.yaml
  assessgen generate --grade "Grade 4" --narrative "..." --goals "..." \
      --standards "4.NF.1" --lessons "..." --format html > unit.html`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringP("input", "i", "", "Request file (.yaml, .yml or .json)")
	f.String("grade", "", "Grade level, e.g. \"Grade 4\" (see `assessgen grades`)")
	f.String("narrative", "", "Section narrative")
	f.String("goals", "", "Section learning goals")
	f.String("standards", "", "Standards")
	f.String("lessons", "", "Lesson learning goals")
	f.StringP("format", "f", "terminal", "Output format: terminal, html, raw or json")
}

// requestFromFlags builds the request from --input and the field flags.
func requestFromFlags(cmd *cobra.Command) (assessment.Request, error) {
	var req assessment.Request
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		r, err := assessment.LoadRequestFile(path)
		if err != nil {
			return req, err
		}
		req = r
	}

	if g, _ := cmd.Flags().GetString("grade"); g != "" {
		grade, ok := reference.ParseGrade(g)
		if !ok {
			return req, fmt.Errorf("%w: %q (see `assessgen grades`)", assessment.ErrUnknownGrade, g)
		}
		req.Grade = grade
	}
	for name, dst := range map[string]*string{
		"narrative": &req.Narrative,
		"goals":     &req.Goals,
		"standards": &req.Standards,
		"lessons":   &req.Lessons,
	} {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	return req, req.Validate()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "terminal", "html", "raw", "json":
	default:
		return fmt.Errorf("invalid format %q: must be terminal, html, raw or json", format)
	}

	rt, err := newRuntime(cmd, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	a, err := rt.generator.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	return writeAssessment(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, a)
}

func writeAssessment(w, errw io.Writer, format string, a *assessment.Assessment) error {
	switch format {
	case "raw":
		_, err := fmt.Fprintln(w, a.Raw)
		return err
	case "html":
		_, err := fmt.Fprintln(w, string(assessment.RenderHTML(a.Blocks)))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(assessment.NewExport(a))
	default:
		fmt.Fprintln(w, theme.SuccessText.Render("Assessment Generated Successfully!"))
		if a.Reference.Status == reference.StatusNotMapped {
			fmt.Fprintln(w, theme.WarningText.Render("No reference material mapping found for "+string(a.Request.Grade)))
		}
		fmt.Fprintln(w)
		_, err := fmt.Fprintln(w, components.QuestionBlocks(a.Blocks, 0))
		if len(a.Blocks) != assessment.ExpectedQuestions {
			fmt.Fprintf(errw, "warning: expected %d questions, found %d\n", assessment.ExpectedQuestions, len(a.Blocks))
		}
		return err
	}
}

package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessgen/internal/llm"
	"github.com/abhisek/assessgen/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM calls",
}

// openEventStore opens the event store honoring --db and the config file.
func openEventStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		verbose, _ := cmd.Flags().GetBool("verbose")

		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM events found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				clip(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
			if verbose {
				fmt.Fprintf(out, "       request=%s provider=%s prompt_chars=%d stop=%s\n",
					e.RequestID, e.Provider, e.PromptChars, e.StopReason)
				if e.ErrorMessage != "" {
					fmt.Fprintf(out, "       error: %s\n", e.ErrorMessage)
				}
			}
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		repo := s.EventRepo()
		byPurpose, err := repo.LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("usage by purpose: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}
		printPurposeUsage(out, byPurpose)

		byModel, err := repo.LLMUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("usage by model: %w", err)
		}
		if len(byModel) > 0 {
			fmt.Fprintln(out)
			printCostEstimate(out, estimateCosts(byModel))
		}
		return nil
	},
}

const statsRule = 80

func printPurposeUsage(w io.Writer, rows []store.PurposeUsage) {
	const row = "%-16s  %6d  %6d  %10d  %10d  %8d\n"
	fmt.Fprintln(w, "Usage by Purpose")
	fmt.Fprintf(w, "%-16s  %6s  %6s  %10s  %10s  %8s\n", "Purpose", "Calls", "Failed", "Input", "Output", "Avg Ms")
	fmt.Fprintln(w, strings.Repeat("─", statsRule))

	var sum store.PurposeUsage
	for _, r := range rows {
		fmt.Fprintf(w, row, r.Purpose, r.Calls, r.Failures, r.InputTokens, r.OutputTokens, r.AvgLatencyMs)
		sum.Calls += r.Calls
		sum.Failures += r.Failures
		sum.InputTokens += r.InputTokens
		sum.OutputTokens += r.OutputTokens
	}
	fmt.Fprintln(w, strings.Repeat("─", statsRule))
	fmt.Fprintf(w, "%-16s  %6d  %6d  %10d  %10d\n", "all", sum.Calls, sum.Failures, sum.InputTokens, sum.OutputTokens)
}

// costLine is one model's estimated spend. Priced is false when the
// model has no entry in the pricing table.
type costLine struct {
	store.ModelUsage
	USD    float64
	Priced bool
}

type costEstimate struct {
	Lines    []costLine
	TotalUSD float64
	Unpriced []string
}

func estimateCosts(usage []store.ModelUsage) costEstimate {
	var est costEstimate
	for _, u := range usage {
		line := costLine{ModelUsage: u}
		if p := llm.LookupCost(u.Model); p != nil {
			line.USD = p.Cost(u.InputTokens, u.OutputTokens)
			line.Priced = true
			est.TotalUSD += line.USD
		} else {
			est.Unpriced = append(est.Unpriced, u.Model)
		}
		est.Lines = append(est.Lines, line)
	}
	return est
}

func printCostEstimate(w io.Writer, est costEstimate) {
	const row = "%-32s  %6d  %10d  %10d  %10s\n"
	fmt.Fprintln(w, "Estimated Cost (USD)")
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(w, strings.Repeat("─", statsRule))
	for _, l := range est.Lines {
		usd := "n/a"
		if l.Priced {
			usd = dollars(l.USD)
		}
		fmt.Fprintf(w, row, clip(l.Model, 32), l.Calls, l.InputTokens, l.OutputTokens, usd)
	}
	fmt.Fprintln(w, strings.Repeat("─", statsRule))

	total := dollars(est.TotalUSD)
	if len(est.Unpriced) > 0 {
		total = "≥ " + total
	}
	fmt.Fprintf(w, "%-32s  %41s\n", "estimated total", total)
	if len(est.Unpriced) > 0 {
		fmt.Fprintf(w, "No pricing for %s\n", strings.Join(est.Unpriced, ", "))
	}
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n-1] + "…"
	}
	return s
}

// dollars shows sub-cent amounts with four decimals.
func dollars(usd float64) string {
	prec := 2
	if usd < 0.01 {
		prec = 4
	}
	return "$" + strconv.FormatFloat(usd, 'f', prec, 64)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. assessment)")
	llmListCmd.Flags().BoolP("verbose", "v", false, "Show request IDs, stop reasons and errors")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ananya/practiq/internal/store"
)

var (
	statsStudent string
	statsLimit   int
	statsLLM     bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print recent practice sessions for a student",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsStudent, "student", "", "student id to report on")
	statsCmd.Flags().IntVar(&statsLimit, "limit", 10, "number of sessions to show")
	statsCmd.Flags().BoolVar(&statsLLM, "llm", false, "show LLM usage totals instead of sessions")
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if statsLLM {
		return printLLMUsage(ctx, st, cmd.OutOrStdout())
	}
	if statsStudent == "" {
		return fmt.Errorf("--student is required")
	}

	records, err := st.Sessions().RecentSessions(ctx, statsStudent, statsLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no sessions for student %q\n", statsStudent)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tSUB-TOPIC\tSCORE\tTIME\tXP\tCOINS\tSTATUS")
	for _, r := range records {
		status := "active"
		if r.Completed() {
			status = "completed"
		}
		xp, coins := "-", "-"
		if r.XPEarned != nil {
			xp = fmt.Sprintf("%d", *r.XPEarned)
		}
		if r.CoinsEarned != nil {
			coins = fmt.Sprintf("%d", *r.CoinsEarned)
		}
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\t%s\t%s\t%s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Hierarchy.SubTopicName,
			r.CorrectCount, r.TotalQuestions,
			(time.Duration(r.TimeSpentMs) * time.Millisecond).Round(time.Second),
			xp, coins, status)
	}
	return w.Flush()
}

func printLLMUsage(ctx context.Context, st *store.Store, out io.Writer) error {
	totals, err := st.LLMLog().UsageByPurpose(ctx)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		fmt.Fprintln(out, "no LLM requests recorded")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PURPOSE\tREQUESTS\tFAILURES\tINPUT TOKENS\tOUTPUT TOKENS")
	for _, t := range totals {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
			t.Purpose, t.Requests, t.Failures, t.InputTokens, t.OutputTokens)
	}
	return w.Flush()
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAnalyticsCmd(withSession sessionRunner) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Print the productivity summary and insights",
		Args:  cobra.NoArgs,
		RunE: withSession(func(ctx context.Context, s *session, out io.Writer, _ []string) error {
			summary := s.app.Analytics.Summary(ctx)
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			fmt.Fprintf(out, "Productivity score: %d\n", summary.ProductivityScore)
			fmt.Fprintf(out, "Tasks: %d/%d (%.0f%%)\n", summary.CompletedTasks, summary.TotalTasks, summary.TasksCompletionRate)
			fmt.Fprintf(out, "Habits: %d, best streak %d, %d xp\n", summary.TotalHabits, summary.BestStreak, summary.TotalXP)
			fmt.Fprintf(out, "Goals: %d active, %d completed\n", summary.ActiveGoals, summary.CompletedGoals)
			insights := s.app.Analytics.Insights(ctx)
			if len(insights) > 0 {
				fmt.Fprintln(out, "\nInsights:")
				for _, insight := range insights {
					fmt.Fprintf(out, "  - %s\n", insight)
				}
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}

func newHabitsCmd(withSession sessionRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "List or toggle habits",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List habits with streak, xp and today's state",
		Args:  cobra.NoArgs,
		RunE: withSession(func(ctx context.Context, s *session, out io.Writer, _ []string) error {
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTREAK\tXP\tTODAY")
			for _, h := range s.app.Habits.ListHabits(ctx) {
				today := " "
				if s.app.Habits.IsCompletedToday(ctx, h.ID) {
					today = "x"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", h.ID, h.Name, h.Streak, h.XP, today)
			}
			return w.Flush()
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip today's completion for a habit",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(ctx context.Context, s *session, out io.Writer, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid habit ID %q", args[0])
			}
			result, err := s.app.Habits.ToggleHabit(ctx, id)
			if err != nil {
				return err
			}
			state := "not done"
			if result.Completed {
				state = "done"
			}
			fmt.Fprintf(out, "%s: %s today, streak %d, xp %+d\n", result.Habit.Name, state, result.Habit.Streak, result.XPDelta)
			if result.BonusEarned {
				fmt.Fprintln(out, "Streak bonus earned!")
			}
			return nil
		}),
	})

	return cmd
}

func newGoalsCmd(withSession sessionRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Inspect goals",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List goals with progress and days left",
		Args:  cobra.NoArgs,
		RunE: withSession(func(ctx context.Context, s *session, out io.Writer, _ []string) error {
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPROGRESS\tDAYS LEFT")
			for _, g := range s.app.Goals.ListGoals(ctx) {
				days, err := s.app.Goals.DaysUntilDeadline(ctx, g.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%%\t%d\n", g.ID, g.Title, g.Status, g.Progress, days)
			}
			return w.Flush()
		}),
	})

	return cmd
}

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/soroban/internal/badges"
	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/specs"
	"github.com/abhisek/soroban/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show unlocked grades, cleared stages, coins and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, _ := cmd.Flags().GetInt("history")

		st, svc, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		p, err := svc.LoadProgress(ctx)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		printProgress(w, p, svc.ExamBody())

		if history <= 0 {
			return nil
		}
		events, err := st.EventRepo().ListStageClears(ctx, store.QueryOpts{Limit: history})
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		fmt.Fprintln(w)
		printHistory(w, events)
		return nil
	},
}

func init() {
	progressCmd.Flags().Int("history", 0, "Also list the N most recent plays")
}

func printProgress(w io.Writer, p progress.RegisterProgress, body specs.ExamBody) {
	fmt.Fprintf(w, "%s · ● %d coins\n\n", body.DisplayName(), p.Coins)

	fmt.Fprintf(w, "%-6s  %-16s  %s\n", "Grade", "Subject", "Stages")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, g := range progress.UnlockedGrades(p, body) {
		for _, subj := range progress.UnlockedSubjects(p, g) {
			cleared := progress.ClearedStage(p, g, subj)
			pips := strings.Repeat("●", cleared) + strings.Repeat("○", progress.MaxStage-cleared)
			fmt.Fprintf(w, "%-6s  %-16s  %s\n", g, subj.DisplayName(), pips)
		}
	}

	best := badges.BestGameBadgeIDs(p.BadgeIDs)
	fmt.Fprintf(w, "\nBadges (%d)\n", len(best))
	for _, id := range best {
		if b, ok := badges.Parse(id); ok {
			fmt.Fprintf(w, "  %s %s\n", b.Rank.Icon(), b.DisplayName())
		}
	}

	var owned []string
	for _, id := range p.PurchasedItemIDs {
		if item, ok := progress.LookupItem(id); ok {
			owned = append(owned, item.Icon+" "+item.Name)
		}
	}
	if len(owned) > 0 {
		fmt.Fprintf(w, "\nShelf items: %s\n", strings.Join(owned, ", "))
	}
}

func printHistory(w io.Writer, events []store.StageClearEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No plays yet.")
		return
	}
	fmt.Fprintf(w, "%-16s  %-6s  %-7s  %-5s  %-7s  %-5s  %-4s  %s\n",
		"When", "Grade", "Subject", "Stage", "Score", "Rank", "Coin", "Result")
	fmt.Fprintln(w, strings.Repeat("─", 72))
	for _, ev := range events {
		result := "fail"
		switch {
		case ev.Perfect:
			result = "perfect"
		case ev.Cleared:
			result = "clear"
		}
		if ev.Unlocked != "" {
			result += " · " + ev.Unlocked
		}
		fmt.Fprintf(w, "%-16s  %-6d  %-7s  %-5d  %-7s  %-5s  %-4d  %s\n",
			ev.Timestamp.Local().Format("2006-01-02 15:04"), ev.Grade, ev.Subject, ev.Stage,
			fmt.Sprintf("%d/%d", ev.Correct, ev.Total), ev.Rank, ev.CoinsEarned, result)
	}
}

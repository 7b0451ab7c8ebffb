package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/specs"
)

var specsCmd = &cobra.Command{
	Use:   "specs",
	Short: "Print the exam rubric for every grade",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := specs.All(settings.Exam)
		if len(all) == 0 {
			return fmt.Errorf("no grades defined for exam body %q", settings.Exam)
		}
		printSpecs(cmd.OutOrStdout(), settings.Exam, all)
		return nil
	},
}

func printSpecs(w io.Writer, body specs.ExamBody, all []specs.GradeSpec) {
	fmt.Fprintf(w, "%s\n\n", body.DisplayName())
	fmt.Fprintf(w, "%-6s  %-14s  %-14s  %-26s  %s\n",
		"Grade", "Multiplication", "Division", "Mitori", "Denpyo")
	fmt.Fprintln(w, strings.Repeat("─", 90))

	for _, gs := range all {
		denpyo := "-"
		if d := gs.Denpyo; d != nil {
			denpyo = fmt.Sprintf("%s %d×%dt %dm", digitsLabel(d.DigitsMin, d.DigitsMax), d.Count, d.Terms, d.Minutes)
		}
		m := gs.Mitori
		fmt.Fprintf(w, "%-6s  %-14s  %-14s  %-26s  %s\n",
			gs.Grade,
			fmt.Sprintf("Σ%d %d %dm", gs.Mul.DigitsSum, gs.Mul.Count, gs.Mul.Minutes),
			fmt.Sprintf("Σ%d %d %dm", gs.Div.DigitsSum, gs.Div.Count, gs.Div.Minutes),
			fmt.Sprintf("%s %d×%dt %dm neg≥%d", digitsLabel(m.DigitsMin, m.DigitsMax), m.Count, m.Terms, m.Minutes, m.NegativeFrom()),
			denpyo)
	}

	fmt.Fprintf(w, "\nΣ digit sum · count · minutes; mitori/denpyo: digits · count×terms · minutes.\n")
	fmt.Fprintf(w, "Widest mitori column: %d chars.\n", widestColumn(all))
}

func digitsLabel(lo, hi int) string {
	if lo == hi {
		return fmt.Sprintf("%dd", lo)
	}
	return fmt.Sprintf("%d-%dd", lo, hi)
}

func widestColumn(all []specs.GradeSpec) int {
	widest := 0
	for _, gs := range all {
		widest = max(widest, problemgen.ColumnWidth(gs.Mitori.DigitsMax)+1)
	}
	return widest
}

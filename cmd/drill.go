package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/soroban/internal/badges"
	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/rng"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Answer a few problems on the command line (no database)",
	Long: `Drill asks a handful of problems from one grade and subject on
plain stdin/stdout. Nothing is saved and no coins are paid.

Useful for a quick warm-up or for checking how a grade feels.`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().Int("grade", 0, "Grade, 10 (easiest) to 1 (hardest) (required)")
	drillCmd.Flags().String("subject", "mul", "Subject: mul, div, mitori or denpyo")
	drillCmd.Flags().Int("count", 5, "Number of problems")
	_ = drillCmd.MarkFlagRequired("grade")
}

func runDrill(cmd *cobra.Command, args []string) error {
	gradeVal, _ := cmd.Flags().GetInt("grade")
	subjectVal, _ := cmd.Flags().GetString("subject")
	count, _ := cmd.Flags().GetInt("count")

	gs, subject, err := resolveSheet(gradeVal, subjectVal)
	if err != nil {
		return err
	}
	if count <= 0 {
		return fmt.Errorf("--count must be positive")
	}

	problems := problemgen.GenerateProblems(rng.Default(), gs.Grade, subject, settings.Exam)
	if len(problems) > count {
		problems = problems[:count]
	}

	w := cmd.OutOrStdout()
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprintf(w, "%s · %s · %d problems\n\n", gs.Grade, subject.DisplayName(), len(problems))

	start := time.Now()
	var correct int
	for i, p := range problems {
		fmt.Fprintf(w, "── Problem %d/%d ──\n", i+1, len(problems))
		if p.Kind == problemgen.KindVertical {
			fmt.Fprintln(w, p.Question)
		} else {
			fmt.Fprintf(w, "%s =\n", p.Question)
		}

		fmt.Fprint(w, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(w, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprintf(w, "(skipped) Answer: %s\n\n", formatAnswer(p.Answer))
			continue
		}

		if problemgen.CheckAnswer(answer, p) {
			correct++
			fmt.Fprintln(w, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(w, "\033[31m✗ Wrong.\033[0m Answer: %s\n", formatAnswer(p.Answer))
		}
		fmt.Fprintln(w)
	}

	rank := badges.RankForAccuracy(correct, len(problems))
	fmt.Fprintf(w, "── Summary: %d/%d correct · rank %s · %s ──\n",
		correct, len(problems), rank, time.Since(start).Round(time.Second))
	return nil
}

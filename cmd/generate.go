package cmd

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/rng"
	"github.com/abhisek/soroban/internal/specs"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a problem sheet for one grade and subject",
	Long: `Generate prints the problems a grade's sheet would contain. With
--check every problem is run through the validator chain and the
command fails if any problem breaks its rubric.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int("grade", 0, "Grade, 10 (easiest) to 1 (hardest) (required)")
	generateCmd.Flags().String("subject", "", "Subject: mul, div, mitori or denpyo (required)")
	generateCmd.Flags().Uint64("seed", 0, "Random seed (0 picks one)")
	generateCmd.Flags().Bool("check", false, "Validate every generated problem")
	generateCmd.Flags().Bool("answers", false, "Print answers")
	_ = generateCmd.MarkFlagRequired("grade")
	_ = generateCmd.MarkFlagRequired("subject")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gradeVal, _ := cmd.Flags().GetInt("grade")
	subjectVal, _ := cmd.Flags().GetString("subject")
	seed, _ := cmd.Flags().GetUint64("seed")
	check, _ := cmd.Flags().GetBool("check")
	answers, _ := cmd.Flags().GetBool("answers")

	gs, subject, err := resolveSheet(gradeVal, subjectVal)
	if err != nil {
		return err
	}

	var src rng.Source = rng.Default()
	if seed != 0 {
		src = rng.New(seed)
	}
	problems := problemgen.GenerateProblems(src, gs.Grade, subject, settings.Exam)
	logger.Debug("sheet generated",
		zap.Int("grade", int(gs.Grade)),
		zap.String("subject", string(subject)),
		zap.Int("count", len(problems)))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s · %s · %s · %d problems · %d minutes\n\n",
		settings.Exam.DisplayName(), gs.Grade, subject.DisplayName(),
		len(problems), gs.Minutes(subject))
	for i, p := range problems {
		printProblem(w, i+1, p, answers)
	}

	if !check {
		return nil
	}
	failures := problemgen.DefaultConfig().Check(problems, problemgen.Input{Spec: gs, Subject: subject})
	if len(failures) == 0 {
		fmt.Fprintf(w, "\nAll %d problems passed validation.\n", len(problems))
		return nil
	}
	return reportFailures(w, failures, len(problems))
}

// reportFailures prints failures in sheet order. Retryable failures are
// marked since a new seed usually clears them; the rest point at a
// generator bug.
func reportFailures(w io.Writer, failures map[int]*problemgen.ValidationError, total int) error {
	keys := make([]int, 0, len(failures))
	for i := range failures {
		keys = append(keys, i)
	}
	slices.Sort(keys)
	retryable := 0
	for _, i := range keys {
		if failures[i].Retryable {
			retryable++
			fmt.Fprintf(w, "problem %d: %v (retryable)\n", i+1, failures[i])
			continue
		}
		fmt.Fprintf(w, "problem %d: %v\n", i+1, failures[i])
	}
	if retryable == len(failures) {
		return fmt.Errorf("%d of %d problems failed validation, all retryable: try another --seed",
			len(failures), total)
	}
	return fmt.Errorf("%d of %d problems failed validation (%d retryable)",
		len(failures), total, retryable)
}

// resolveSheet checks the grade and subject against the configured exam
// body.
func resolveSheet(gradeVal int, subjectVal string) (specs.GradeSpec, specs.Subject, error) {
	subject, ok := specs.ParseSubject(subjectVal)
	if !ok {
		return specs.GradeSpec{}, "", fmt.Errorf("unknown subject %q: must be mul, div, mitori or denpyo", subjectVal)
	}
	gs, ok := specs.GetGradeSpec(settings.Exam, specs.Grade(gradeVal))
	if !ok {
		return specs.GradeSpec{}, "", fmt.Errorf("%s has no grade %d", settings.Exam.DisplayName(), gradeVal)
	}
	if !gs.HasSubject(subject) {
		return specs.GradeSpec{}, "", fmt.Errorf("%s does not include %s", gs.Grade, subject.DisplayName())
	}
	return gs, subject, nil
}

func printProblem(w io.Writer, n int, p problemgen.Problem, answer bool) {
	switch p.Kind {
	case problemgen.KindVertical:
		fmt.Fprintf(w, "── %d ──\n", n)
		for _, line := range strings.Split(p.Question, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
		if answer {
			fmt.Fprintf(w, "  = %s\n", formatAnswer(p.Answer))
		}
	default:
		if answer {
			fmt.Fprintf(w, "%3d. %s = %s\n", n, p.Question, formatAnswer(p.Answer))
		} else {
			fmt.Fprintf(w, "%3d. %s =\n", n, p.Question)
		}
	}
}

func formatAnswer(a string) string {
	v, err := strconv.ParseInt(a, 10, 64)
	if err != nil {
		return a
	}
	return problemgen.FormatThousands(v)
}

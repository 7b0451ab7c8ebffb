package problemgen

import (
	"testing"

	"github.com/abhisek/soroban/internal/specs"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
		Retryable: true,
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 4 {
		t.Fatalf("expected 4 validators, got %d", len(cfg.Validators))
	}
	names := []string{"answer-format", "inline-math", "column-sum", "digit-bounds"}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestValidate_StopsAtFirstFailure(t *testing.T) {
	p := validProblem()
	p.Answer = "007"
	err := Validate(p, Input{}, DefaultConfig().Validators)
	if err == nil {
		t.Fatal("expected failure")
	}
	if err.Validator != "answer-format" {
		t.Errorf("expected answer-format to fail first, got %q", err.Validator)
	}
}

func TestConfigCheck_ReportsIndexes(t *testing.T) {
	gs, _ := specs.GetGradeSpec(specs.ExamZenshuren, 6)
	in := Input{Spec: gs, Subject: specs.SubjectMul}
	problems := []Problem{
		{Kind: KindInline, Question: "123 × 45", Answer: "5535"},
		{Kind: KindInline, Question: "123 × 45", Answer: "5536"},
		{Kind: KindInline, Question: "1234 × 45", Answer: "55530"},
	}
	failures := DefaultConfig().Check(problems, in)
	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d: %v", len(failures), failures)
	}
	if failures[1] == nil || failures[1].Validator != "inline-math" {
		t.Errorf("expected inline-math failure at 1, got %v", failures[1])
	}
	if failures[2] == nil || failures[2].Validator != "digit-bounds" {
		t.Errorf("expected digit-bounds failure at 2, got %v", failures[2])
	}
}

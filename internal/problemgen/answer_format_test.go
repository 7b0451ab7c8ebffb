package problemgen

import "testing"

func validProblem() *Problem {
	return &Problem{
		Kind:     KindInline,
		Subject:  "mul",
		Question: "123 × 45",
		Answer:   "5535",
	}
}

func TestAnswerFormat_Integer(t *testing.T) {
	v := &AnswerFormatValidator{}

	valid := []string{"42", "0", "-5", "1000"}
	for _, a := range valid {
		p := validProblem()
		p.Answer = a
		if err := v.Validate(p, Input{}); err != nil {
			t.Errorf("expected %q to be valid integer, got: %v", a, err)
		}
	}

	invalid := []string{"3.5", "abc", "1,000", "007", ""}
	for _, a := range invalid {
		p := validProblem()
		p.Answer = a
		if err := v.Validate(p, Input{}); err == nil {
			t.Errorf("expected %q to be invalid integer", a)
		}
	}
}

func TestAnswerFormat_Kind(t *testing.T) {
	v := &AnswerFormatValidator{}
	p := validProblem()
	p.Kind = "diagonal"
	if err := v.Validate(p, Input{}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestAnswerFormat_EmptyQuestion(t *testing.T) {
	v := &AnswerFormatValidator{}
	p := validProblem()
	p.Question = ""
	err := v.Validate(p, Input{})
	if err == nil {
		t.Fatal("expected error for empty question")
	}
	if err.Validator != "answer-format" {
		t.Errorf("expected validator %q, got %q", "answer-format", err.Validator)
	}
}

func TestAnswerFormat_InlineWithTerms(t *testing.T) {
	v := &AnswerFormatValidator{}
	p := validProblem()
	p.Terms = []int64{1, 2}
	if err := v.Validate(p, Input{}); err == nil {
		t.Fatal("expected error for inline problem carrying terms")
	}
}

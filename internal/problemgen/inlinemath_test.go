package problemgen

import "testing"

func TestInlineMath_Multiplication(t *testing.T) {
	v := &InlineMathValidator{}

	p := validProblem()
	if err := v.Validate(p, Input{}); err != nil {
		t.Fatalf("correct multiplication should pass: %v", err)
	}

	p.Answer = "5536"
	if err := v.Validate(p, Input{}); err == nil {
		t.Fatal("wrong multiplication should fail")
	}
}

func TestInlineMath_Division(t *testing.T) {
	v := &InlineMathValidator{}

	p := &Problem{Kind: KindInline, Question: "4140 ÷ 12", Answer: "345"}
	if err := v.Validate(p, Input{}); err != nil {
		t.Fatalf("correct division should pass: %v", err)
	}

	p.Answer = "344"
	if err := v.Validate(p, Input{}); err == nil {
		t.Fatal("wrong division should fail")
	}
}

func TestInlineMath_Remainder(t *testing.T) {
	v := &InlineMathValidator{}
	p := &Problem{Kind: KindInline, Question: "100 ÷ 7", Answer: "14"}
	err := v.Validate(p, Input{})
	if err == nil {
		t.Fatal("division with remainder should fail")
	}
	if !err.Retryable {
		t.Error("remainder failure should be retryable")
	}
}

func TestInlineMath_AsciiOperators(t *testing.T) {
	v := &InlineMathValidator{}
	if err := v.Validate(&Problem{Kind: KindInline, Question: "6 * 7", Answer: "42"}, Input{}); err != nil {
		t.Errorf("expected * to be accepted: %v", err)
	}
	if err := v.Validate(&Problem{Kind: KindInline, Question: "42 / 7", Answer: "6"}, Input{}); err != nil {
		t.Errorf("expected / to be accepted: %v", err)
	}
}

func TestInlineMath_NotAnExpression(t *testing.T) {
	v := &InlineMathValidator{}
	if err := v.Validate(&Problem{Kind: KindInline, Question: "what is six times seven", Answer: "42"}, Input{}); err == nil {
		t.Fatal("expected failure for unparseable question")
	}
}

func TestInlineMath_SkipsVertical(t *testing.T) {
	v := &InlineMathValidator{}
	p := &Problem{Kind: KindVertical, Question: " 1\n 2", Answer: "3", Terms: []int64{1, 2}}
	if err := v.Validate(p, Input{}); err != nil {
		t.Fatalf("vertical problems should pass through: %v", err)
	}
}

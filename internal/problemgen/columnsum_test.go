package problemgen

import "testing"

func TestColumnSum_Valid(t *testing.T) {
	v := &ColumnSumValidator{}
	p := verticalProblem("mitori", []int64{1234, -56, 7}, 1185, 4)
	if err := v.Validate(&p, Input{}); err != nil {
		t.Fatalf("expected valid column, got %v", err)
	}
}

func TestColumnSum_WrongTotal(t *testing.T) {
	v := &ColumnSumValidator{}
	p := verticalProblem("mitori", []int64{1234, -56, 7}, 1186, 4)
	if err := v.Validate(&p, Input{}); err == nil {
		t.Fatal("expected failure for wrong total")
	}
}

func TestColumnSum_NegativeRunningTotal(t *testing.T) {
	v := &ColumnSumValidator{}
	p := verticalProblem("mitori", []int64{5, -9, 10}, 6, 2)
	err := v.Validate(&p, Input{})
	if err == nil {
		t.Fatal("expected failure for negative running total")
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestColumnSum_Misaligned(t *testing.T) {
	v := &ColumnSumValidator{}
	p := Problem{Kind: KindVertical, Question: " 1,234\n 56", Answer: "1290", Terms: []int64{1234, 56}}
	if err := v.Validate(&p, Input{}); err == nil {
		t.Fatal("expected failure for misaligned lines")
	}
}

func TestColumnSum_TermMismatch(t *testing.T) {
	v := &ColumnSumValidator{}
	p := verticalProblem("denpyo", []int64{12, 34}, 46, 2)
	p.Terms = []int64{12, 35}
	if err := v.Validate(&p, Input{}); err == nil {
		t.Fatal("expected failure when rendered lines disagree with terms")
	}

	p.Terms = []int64{12}
	if err := v.Validate(&p, Input{}); err == nil {
		t.Fatal("expected failure for line/term count mismatch")
	}
}

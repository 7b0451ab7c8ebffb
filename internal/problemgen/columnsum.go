package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnSumValidator re-reads every rendered line of a vertical problem,
// checks it against the stored terms and recomputes the total. Inline
// problems pass through.
type ColumnSumValidator struct{}

func (v *ColumnSumValidator) Name() string { return "column-sum" }

func (v *ColumnSumValidator) Validate(p *Problem, _ Input) *ValidationError {
	if p.Kind != KindVertical {
		return nil
	}
	lines := strings.Split(p.Question, "\n")
	if len(lines) != len(p.Terms) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%d rendered lines for %d terms", len(lines), len(p.Terms)),
		}
	}

	var total int64
	for i, line := range lines {
		if len(line) != len(lines[0]) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("line %d is %d wide, want %d", i+1, len(line), len(lines[0])),
			}
		}
		n, err := parseTerm(line)
		if err != nil {
			return &ValidationError{Validator: v.Name(), Message: err.Error()}
		}
		if n != p.Terms[i] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("line %d reads %d, term is %d", i+1, n, p.Terms[i]),
			}
		}
		total += n
		if total < 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("running total negative after line %d", i+1),
				Retryable: true,
			}
		}
	}

	if strconv.FormatInt(total, 10) != p.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but problem claims %q", total, p.Answer),
		}
	}
	return nil
}

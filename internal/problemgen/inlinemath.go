package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
)

// InlineMathValidator recomputes the answer of an inline problem from its
// question text. Vertical problems pass through.
type InlineMathValidator struct{}

func (v *InlineMathValidator) Name() string { return "inline-math" }

var inlineRe = regexp.MustCompile(`^(\d+) ([×÷*/]) (\d+)$`)

func (v *InlineMathValidator) Validate(p *Problem, _ Input) *ValidationError {
	if p.Kind != KindInline {
		return nil
	}
	a, op, b, err := parseInline(p.Question)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}

	var computed int64
	switch op {
	case "*":
		computed = a * b
	case "/":
		if b == 0 {
			return &ValidationError{Validator: v.Name(), Message: "division by zero", Retryable: true}
		}
		if a%b != 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("%d ÷ %d leaves remainder %d", a, b, a%b),
				Retryable: true,
			}
		}
		computed = a / b
	}

	if strconv.FormatInt(computed, 10) != p.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but problem claims %q", computed, p.Answer),
		}
	}
	return nil
}

// parseInline splits "a × b" or "a ÷ b" into operands and a normalized
// operator ("*" or "/").
func parseInline(q string) (int64, string, int64, error) {
	m := inlineRe.FindStringSubmatch(q)
	if m == nil {
		return 0, "", 0, fmt.Errorf("question %q is not an inline expression", q)
	}
	a, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, "", 0, err
	}
	b, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return 0, "", 0, err
	}
	return a, normalizeOp(m[2]), b, nil
}

// normalizeOp normalizes multiplication and division symbols.
func normalizeOp(op string) string {
	switch op {
	case "×":
		return "*"
	case "÷":
		return "/"
	default:
		return op
	}
}

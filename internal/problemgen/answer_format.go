package problemgen

import (
	"fmt"
	"strconv"
)

// AnswerFormatValidator checks that the problem has a known kind, a
// non-empty question and an answer in canonical integer form.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(p *Problem, _ Input) *ValidationError {
	if p.Kind != KindInline && p.Kind != KindVertical {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("kind must be %q or %q, got %q", KindInline, KindVertical, p.Kind),
		}
	}
	if p.Question == "" {
		return &ValidationError{Validator: v.Name(), Message: "question is empty"}
	}
	if err := validateInteger(p.Answer); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("invalid integer answer %q: %s", p.Answer, err),
		}
	}
	if p.Kind == KindInline && len(p.Terms) > 0 {
		return &ValidationError{Validator: v.Name(), Message: "inline problem must have no terms"}
	}
	return nil
}

// validateInteger checks that s is a valid integer string with no leading zeros.
func validateInteger(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("not a valid integer")
	}
	// Check for leading zeros: formatted back should match.
	if strconv.FormatInt(n, 10) != s {
		return fmt.Errorf("has leading zeros")
	}
	return nil
}

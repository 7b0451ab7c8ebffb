package problemgen

import "fmt"

// Validator checks a generated problem for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "inline-math", "column-sum", "digit-bounds".
	Name() string

	// Validate checks the problem and returns nil if it passes.
	// The validator receives the rubric the problem was generated from.
	Validate(p *Problem, input Input) *ValidationError
}

// ValidationError describes why a problem failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Validate runs the validators in order and returns the first failure.
func Validate(p *Problem, input Input, validators []Validator) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(p, input); err != nil {
			return err
		}
	}
	return nil
}

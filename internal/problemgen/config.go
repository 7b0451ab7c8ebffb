package problemgen

// Config controls how generated problem sets are checked.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated problem. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&AnswerFormatValidator{},
			&InlineMathValidator{},
			&ColumnSumValidator{},
			&DigitBoundsValidator{},
		},
	}
}

// Check validates every problem of a set and returns the failures keyed
// by problem index.
func (c Config) Check(problems []Problem, input Input) map[int]*ValidationError {
	failures := make(map[int]*ValidationError)
	for i := range problems {
		if err := Validate(&problems[i], input, c.Validators); err != nil {
			failures[i] = err
		}
	}
	return failures
}

package ports

// Evaluator executes emitted or macro code for its side effects. Errors are
// returned to the compiler engine untouched; this layer never swallows them.
//
//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type Evaluator interface {
	Eval(code string) error
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(code string) error

// Eval implements Evaluator.
func (f EvaluatorFunc) Eval(code string) error {
	return f(code)
}

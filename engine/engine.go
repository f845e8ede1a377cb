package engine

import "fmt"

// Runtime is one instance of an embedded scripting runtime.
//
// Contract:
// - Concurrency: a Runtime is NOT safe for concurrent use. The pool in
//   the script package guarantees one owner at a time.
// - Errors: evaluation failures should be reported as *EvalError so the
//   source position survives, when the underlying engine provides one.
type Runtime interface {
	// Eval evaluates source text in the runtime's global scope. origin
	// names the source (a file path or a synthetic label) for
	// diagnostics only.
	Eval(src, origin string) error
}

// Invocable is the capability contract the dispatcher needs: invoking a
// function by name with a variable-length argument list.
//
// Contract:
// - Invoke returns ErrNoSuchFunction (possibly wrapped) when name does
//   not resolve to a callable function.
// - Invoke returns *EvalError (possibly wrapped) when the function runs
//   and fails.
// - A nil result with a nil error is a valid outcome; the caller decides
//   what absence means.
type Invocable interface {
	Runtime

	// Invoke calls the named function with args and returns its result
	// as a plain Go value.
	Invoke(name string, args ...any) (any, error)
}

// LegacyCompatible is implemented by runtimes that offer a
// legacy-compatibility shim for scripts written against an older host
// binding. Build enables the shim before any source is evaluated.
type LegacyCompatible interface {
	EnableLegacyCompat()
}

// Provider describes one concrete language binding.
//
// Contract:
// - Names returns the aliases the language answers to; the first entry
//   is the canonical name. At least one entry is required.
// - New constructs a fresh, empty runtime. It must not evaluate user
//   source; Build owns the initialization sequence.
type Provider interface {
	Names() []string
	New() (Runtime, error)
}

// EvalError reports a failure inside the scripting runtime, either while
// evaluating source text or while running an invoked function.
type EvalError struct {
	// Message describes the failure as reported by the engine.
	Message string

	// Line and Column locate the failure in the evaluated source when
	// the engine reports a position; zero means unknown.
	Line   int
	Column int

	// Err is the underlying engine error, if any.
	Err error
}

// Error returns the message, with the source position when known.
func (e *EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d, col %d)", e.Message, e.Line, e.Column)
	}
	return e.Message
}

// Unwrap returns the underlying engine error for errors.Is and errors.As.
func (e *EvalError) Unwrap() error {
	return e.Err
}

package script

import (
	"errors"
	"fmt"
)

// Sentinel errors for error classification with errors.Is.
var (
	// ErrConfiguration indicates an invalid or incomplete Config.
	ErrConfiguration = errors.New("configuration error")

	// ErrScriptingDisabled indicates the process-wide scripting gate is
	// off. Returned at bind time and on every invocation.
	ErrScriptingDisabled = errors.New("scripting not enabled")

	// ErrInvalidURI indicates a URI that does not follow the
	// script-function format.
	ErrInvalidURI = errors.New("invalid script function URI")

	// ErrForbiddenFunction indicates a denylisted function name such as
	// eval.
	ErrForbiddenFunction = errors.New("script function not allowed")

	// ErrFunctionNotFound indicates the requested function does not
	// exist in an otherwise working engine.
	ErrFunctionNotFound = errors.New("script function not found")

	// ErrInvocationFailed indicates the script raised an error during
	// execution.
	ErrInvocationFailed = errors.New("script function evaluation failed")

	// ErrSignaledFailure indicates the function returned the absence
	// value, the in-band convention for "evaluation should fail".
	ErrSignaledFailure = errors.New("script function signaled failure")
)

// FunctionNotFoundError reports a call to a function the engine does not
// define. It matches ErrFunctionNotFound.
type FunctionNotFoundError struct {
	Language string
	Name     string
}

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("no such %s function %q", e.Language, e.Name)
}

func (e *FunctionNotFoundError) Is(target error) bool {
	return target == ErrFunctionNotFound
}

// InvocationError reports a script failure during execution, tagged with
// the language and function name. It matches ErrInvocationFailed and
// unwraps to the engine's underlying error.
type InvocationError struct {
	Language string
	Name     string
	Err      error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("failed to evaluate %s function %q: %v", e.Language, e.Name, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

func (e *InvocationError) Is(target error) bool {
	return target == ErrInvocationFailed
}

// SignaledError reports that the function author deliberately returned
// the absence value. By convention the author has already reported
// detail through the language's own error facility, so only the function
// name is carried. It matches ErrSignaledFailure.
type SignaledError struct {
	Name string
}

func (e *SignaledError) Error() string {
	return fmt.Sprintf("script function %q signaled failure", e.Name)
}

func (e *SignaledError) Is(target error) bool {
	return target == ErrSignaledFailure
}

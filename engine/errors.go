package engine

import "errors"

// Sentinel errors for construction-time and capability failures. All of
// them surface on first use of a language, never per call, and recur
// identically until configuration changes — callers should report them
// rather than retry.
var (
	// ErrUnknownLanguage indicates no provider is registered for the
	// requested language name.
	ErrUnknownLanguage = errors.New("unknown scripting language")

	// ErrNotInvocable indicates the provider's runtime lacks the
	// invoke-by-name capability.
	ErrNotInvocable = errors.New("engine does not support invocation by name")

	// ErrLibraryNotFound indicates the configured library file does not
	// exist.
	ErrLibraryNotFound = errors.New("script library file not found")

	// ErrLibraryRead indicates the library file exists but could not be
	// read.
	ErrLibraryRead = errors.New("script library file unreadable")

	// ErrLibraryLoad indicates the library file was read but failed to
	// evaluate.
	ErrLibraryLoad = errors.New("script library failed to load")

	// ErrFunctionSource indicates the configured inline function source
	// failed to evaluate.
	ErrFunctionSource = errors.New("script function source failed to load")

	// ErrInitHook indicates an initialization hook ran and failed.
	ErrInitHook = errors.New("script initialization hook failed")

	// ErrNoSuchFunction is returned by Invocable.Invoke when the named
	// function does not exist in the runtime.
	ErrNoSuchFunction = errors.New("no such function")
)

package script

import (
	"errors"
	"fmt"

	"github.com/jonwraymond/scriptexec/engine"
	"github.com/jonwraymond/scriptexec/pool"
)

// Dispatcher binds script-function URIs and orchestrates invocations:
// gate check, engine acquisition, argument marshalling, invocation,
// result marshalling, guaranteed release.
//
// Contract:
// - Concurrency: safe for concurrent use; each in-flight invocation
//   exclusively owns one engine handle for its duration.
// - Blocking: an invocation blocks its goroutine for as long as the
//   script runs. Cancellation is the surrounding query engine's concern;
//   this layer imposes no timeouts.
type Dispatcher struct {
	cfg   Config
	pools pool.Group[*engine.Handle]
}

// New creates a Dispatcher with the given configuration.
// Returns ErrConfiguration if a required field is missing.
func New(cfg Config) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &Dispatcher{cfg: cfg}, nil
}

// Bind resolves a function URI into a callable Function. It checks the
// scripting gate and validates the URI; no engine is constructed until
// the first invocation.
func (d *Dispatcher) Bind(uri string) (*Function, error) {
	if err := checkEnabled(); err != nil {
		return nil, err
	}
	id, err := Resolve(uri)
	if err != nil {
		return nil, err
	}
	return &Function{d: d, id: id}, nil
}

// Reset drops every pooled engine handle for every language. Intended
// for tests and administrative use; it must not run while invocations
// are in flight.
func (d *Dispatcher) Reset() {
	d.pools.Reset()
}

func (d *Dispatcher) logf(format string, args ...any) {
	if d.cfg.Logger != nil {
		d.cfg.Logger.Logf(format, args...)
	}
}

// acquire returns a ready handle for language, reusing a pooled one or
// building afresh on a miss. Construction happens outside the pool lock,
// so concurrent misses may build redundant handles; all of them are
// valid and are absorbed back into the pool on release.
func (d *Dispatcher) acquire(language string) (*engine.Handle, error) {
	if h, ok := d.pools.Pool(language).Get(); ok {
		d.logf("reusing %s engine handle %s", language, h.ID)
		return h, nil
	}
	return engine.Build(d.cfg.Engines, language, engine.BuildOptions{
		LibraryPath: d.cfg.Libraries[language],
		Functions:   d.cfg.Functions[language],
		Logf:        d.logf,
	})
}

// release returns a handle to its pool. It runs on every invocation exit
// path, success or failure, so a failed call never leaks a handle.
func (d *Dispatcher) release(language string, h *engine.Handle) {
	d.pools.Pool(language).Put(h)
}

// Function is one bound call site: a resolved FunctionID tied to the
// Dispatcher that will execute it. Create one with [Dispatcher.Bind] and
// reuse it for arbitrarily many invocations.
type Function struct {
	d  *Dispatcher
	id FunctionID
}

// ID returns the resolved function identifier.
func (f *Function) ID() FunctionID {
	return f.id
}

// Invoke calls the bound script function with the given domain values
// and returns the function's result as a domain value.
//
// A nil result from the script (undefined/null/nil/None, depending on
// the language) means the author signaled failure; it surfaces as
// ErrSignaledFailure, never as a successful empty result.
func (f *Function) Invoke(args ...any) (any, error) {
	if err := checkEnabled(); err != nil {
		return nil, err
	}

	h, err := f.d.acquire(f.id.Language)
	if err != nil {
		// Construction failed; there is no handle to release and
		// nothing is pooled.
		return nil, err
	}
	defer f.d.release(f.id.Language, h)

	scriptArgs := make([]any, len(args))
	for i, a := range args {
		sa, err := f.d.cfg.Codec.ToScript(a)
		if err != nil {
			return nil, fmt.Errorf("script: marshalling argument %d of %s: %w", i, f.id.Name, err)
		}
		scriptArgs[i] = sa
	}

	res, err := h.Invoke(f.id.Name, scriptArgs...)
	if err != nil {
		if errors.Is(err, engine.ErrNoSuchFunction) {
			return nil, &FunctionNotFoundError{Language: f.id.Language, Name: f.id.Name}
		}
		f.d.logf("invoking %s function %s on handle %s failed: %v", f.id.Language, f.id.Name, h.ID, err)
		return nil, &InvocationError{Language: f.id.Language, Name: f.id.Name, Err: err}
	}
	if res == nil {
		return nil, &SignaledError{Name: f.id.Name}
	}
	return f.d.cfg.Codec.FromScript(res)
}

package engine

import (
	"fmt"
	"strings"
	"sync"
)

// fakeProvider implements Provider for testing.
type fakeProvider struct {
	names  []string
	newErr error

	// build controls what New returns; defaults to a fresh fakeRuntime.
	build func() Runtime
}

func (p *fakeProvider) Names() []string { return p.names }

func (p *fakeProvider) New() (Runtime, error) {
	if p.newErr != nil {
		return nil, p.newErr
	}
	if p.build != nil {
		return p.build(), nil
	}
	return newFakeRuntime(), nil
}

// fakeRuntime implements Invocable and LegacyCompatible. Eval records
// the definitions `function <name>` found in the source so Invoke can
// distinguish defined from undefined functions.
type fakeRuntime struct {
	mu sync.Mutex

	evalCalls    []evalCall
	evalErr      error
	compatOn     bool
	defined      map[string]bool
	invokeCalls  []invokeCall
	invokeResult any
	invokeErr    map[string]error
}

type evalCall struct {
	src    string
	origin string
}

type invokeCall struct {
	name string
	args []any
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{defined: make(map[string]bool)}
}

func (r *fakeRuntime) EnableLegacyCompat() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.compatOn = true
}

func (r *fakeRuntime) Eval(src, origin string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evalCalls = append(r.evalCalls, evalCall{src, origin})
	if r.evalErr != nil {
		return r.evalErr
	}
	for _, line := range strings.Split(src, "\n") {
		if name, ok := strings.CutPrefix(strings.TrimSpace(line), "function "); ok {
			r.defined[strings.TrimSpace(name)] = true
		}
	}
	return nil
}

func (r *fakeRuntime) Invoke(name string, args ...any) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invokeCalls = append(r.invokeCalls, invokeCall{name, args})
	if err, ok := r.invokeErr[name]; ok {
		return nil, err
	}
	if !r.defined[name] {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchFunction, name)
	}
	return r.invokeResult, nil
}

// bareRuntime implements Runtime but not Invocable.
type bareRuntime struct{}

func (bareRuntime) Eval(src, origin string) error { return nil }

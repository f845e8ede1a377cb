package script

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/jonwraymond/scriptexec/engine"
)

// withScripting flips the process-wide gate for one test and restores
// the previous state afterwards.
func withScripting(t *testing.T, on bool) {
	t.Helper()
	prev := ScriptingEnabled()
	EnableScripting(on)
	t.Cleanup(func() { EnableScripting(prev) })
}

// mockProvider implements engine.Provider for testing.
type mockProvider struct {
	mu    sync.Mutex
	names []string
	built int

	// invoke, when set, handles every Invoke on runtimes this provider
	// constructs.
	invoke func(name string, args ...any) (any, error)
}

func (p *mockProvider) Names() []string { return p.names }

func (p *mockProvider) New() (engine.Runtime, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.built++
	return &mockRuntime{invoke: p.invoke}, nil
}

func (p *mockProvider) builds() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.built
}

// mockRuntime implements engine.Invocable. Invoke delegates to the
// provider-supplied function; init hooks report no-such-function so
// engine.Build succeeds without script source.
type mockRuntime struct {
	mu     sync.Mutex
	evals  []string
	owners int
	invoke func(name string, args ...any) (any, error)
}

func (r *mockRuntime) Eval(src, origin string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evals = append(r.evals, src)
	return nil
}

func (r *mockRuntime) Invoke(name string, args ...any) (any, error) {
	r.mu.Lock()
	r.owners++
	if r.owners > 1 {
		r.mu.Unlock()
		panic("mockRuntime invoked by two owners at once")
	}
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.owners--
		r.mu.Unlock()
	}()

	// Initialization hooks are absent in mock runtimes.
	if strings.HasPrefix(name, "sx") && strings.HasSuffix(name, "init") {
		return nil, fmt.Errorf("%w: %s", engine.ErrNoSuchFunction, name)
	}
	if r.invoke != nil {
		return r.invoke(name, args...)
	}
	return nil, fmt.Errorf("%w: %s", engine.ErrNoSuchFunction, name)
}

package starlark

import (
	"errors"
	"testing"

	"github.com/jonwraymond/scriptexec/engine"
)

func newRuntime(t *testing.T) engine.Invocable {
	t.Helper()
	rt, err := Provider().New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rt.(engine.Invocable)
}

func TestProvider_PythonFamilyNames(t *testing.T) {
	names := Provider().Names()
	if names[0] != "python" {
		t.Fatalf("Names() = %v, want canonical name python first", names)
	}
}

func TestInvoke_Double(t *testing.T) {
	rt := newRuntime(t)
	if err := rt.Eval("def double(x):\n    return x * 2\n", "test"); err != nil {
		t.Fatalf("Eval: %v", err)
	}
	got, err := rt.Invoke("double", 21)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got != int64(42) {
		t.Fatalf("double(21) = %v (%T), want 42", got, got)
	}
}

func TestEval_DefinitionsAccumulate(t *testing.T) {
	rt := newRuntime(t)
	if err := rt.Eval("def base(x):\n    return x + 1\n", "lib"); err != nil {
		t.Fatalf("Eval lib: %v", err)
	}
	if err := rt.Eval("def wrapped(x):\n    return base(x) * 10\n", "functions"); err != nil {
		t.Fatalf("Eval functions: %v", err)
	}
	got, err := rt.Invoke("wrapped", 4)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got != int64(50) {
		t.Fatalf("wrapped(4) = %v, want 50", got)
	}
}

func TestInvoke_NoSuchFunction(t *testing.T) {
	rt := newRuntime(t)
	if err := rt.Eval("not_callable = 3\n", "test"); err != nil {
		t.Fatalf("Eval: %v", err)
	}
	for _, name := range []string{"missing", "not_callable"} {
		_, err := rt.Invoke(name)
		if !errors.Is(err, engine.ErrNoSuchFunction) {
			t.Fatalf("Invoke(%s) error = %v, want ErrNoSuchFunction", name, err)
		}
	}
}

func TestInvoke_FailIsEvalError(t *testing.T) {
	rt := newRuntime(t)
	if err := rt.Eval("def boom():\n    fail('bad input')\n", "test"); err != nil {
		t.Fatalf("Eval: %v", err)
	}
	_, err := rt.Invoke("boom")
	var evalErr *engine.EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("Invoke error = %v, want *engine.EvalError", err)
	}
}

func TestInvoke_NoneIsAbsent(t *testing.T) {
	rt := newRuntime(t)
	if err := rt.Eval("def nothing():\n    return None\n", "test"); err != nil {
		t.Fatalf("Eval: %v", err)
	}
	got, err := rt.Invoke("nothing")
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got != nil {
		t.Fatalf("nothing() = %v, want nil", got)
	}
}

func TestInvoke_ListAndDict(t *testing.T) {
	rt := newRuntime(t)
	src := "def tag(xs):\n    return {\"first\": xs[0], \"count\": len(xs)}\n"
	if err := rt.Eval(src, "test"); err != nil {
		t.Fatalf("Eval: %v", err)
	}
	got, err := rt.Invoke("tag", []any{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("tag returned %T, want map", got)
	}
	if m["first"] != "a" || m["count"] != int64(3) {
		t.Fatalf("tag = %v", m)
	}
}

func TestEval_SyntaxErrorIsEvalError(t *testing.T) {
	rt := newRuntime(t)
	err := rt.Eval("def broken(:\n", "test")
	var evalErr *engine.EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("Eval error = %v, want *engine.EvalError", err)
	}
}

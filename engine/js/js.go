// Package js binds the goja ECMAScript runtime as a scripting engine.
//
// The provider answers to "js", "javascript" and "ecmascript". Functions
// are defined in the runtime's global scope; a function result of
// undefined or null surfaces as a nil Go value, which the dispatcher
// treats as the author signalling evaluation failure.
package js

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"

	"github.com/jonwraymond/scriptexec/engine"
)

// Provider returns the ECMAScript engine provider.
func Provider() engine.Provider {
	return provider{}
}

type provider struct{}

func (provider) Names() []string {
	return []string{"js", "javascript", "ecmascript"}
}

func (provider) New() (engine.Runtime, error) {
	return &runtime{vm: goja.New()}, nil
}

// runtime wraps one goja VM. Not safe for concurrent use; the pool
// enforces single ownership.
type runtime struct {
	vm *goja.Runtime
}

// EnableLegacyCompat relaxes host-object field naming for scripts
// written against older bindings that exposed uncapitalized names.
func (r *runtime) EnableLegacyCompat() {
	r.vm.SetFieldNameMapper(goja.UncapFieldNameMapper())
}

func (r *runtime) Eval(src, origin string) error {
	if _, err := r.vm.RunScript(origin, src); err != nil {
		return wrapEvalError(err)
	}
	return nil
}

func (r *runtime) Invoke(name string, args ...any) (any, error) {
	fn, ok := goja.AssertFunction(r.vm.Get(name))
	if !ok {
		return nil, fmt.Errorf("%w: %s", engine.ErrNoSuchFunction, name)
	}

	jsArgs := make([]goja.Value, len(args))
	for i, a := range args {
		jsArgs[i] = r.vm.ToValue(a)
	}

	res, err := fn(goja.Undefined(), jsArgs...)
	if err != nil {
		return nil, wrapEvalError(err)
	}
	if res == nil || goja.IsUndefined(res) || goja.IsNull(res) {
		return nil, nil
	}
	return res.Export(), nil
}

func wrapEvalError(err error) error {
	var exc *goja.Exception
	if errors.As(err, &exc) {
		return &engine.EvalError{Message: exc.Error(), Err: err}
	}
	return &engine.EvalError{Message: err.Error(), Err: err}
}

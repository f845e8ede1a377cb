// Package starlark binds the Starlark runtime as the python-family
// scripting engine.
//
// The provider answers to "python", "py" and "starlark". Definitions
// from each evaluated source become available to later evaluations and
// to Invoke; a None result surfaces as a nil Go value, which the
// dispatcher treats as the author signalling evaluation failure.
package starlark

import (
	"errors"
	"fmt"

	slk "go.starlark.net/starlark"

	"github.com/jonwraymond/scriptexec/engine"
)

// Provider returns the python-family engine provider.
func Provider() engine.Provider {
	return provider{}
}

type provider struct{}

func (provider) Names() []string {
	return []string{"python", "py", "starlark"}
}

func (provider) New() (engine.Runtime, error) {
	return &runtime{
		thread:  &slk.Thread{Name: "scriptexec"},
		globals: make(slk.StringDict),
	}, nil
}

// runtime wraps one Starlark thread and the accumulated global
// definitions. Not safe for concurrent use; the pool enforces single
// ownership.
type runtime struct {
	thread  *slk.Thread
	globals slk.StringDict
}

func (r *runtime) Eval(src, origin string) error {
	defined, err := slk.ExecFile(r.thread, origin, src, r.globals)
	if err != nil {
		return wrapEvalError(err)
	}
	for name, v := range defined {
		r.globals[name] = v
	}
	return nil
}

func (r *runtime) Invoke(name string, args ...any) (any, error) {
	v, ok := r.globals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", engine.ErrNoSuchFunction, name)
	}
	callable, ok := v.(slk.Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", engine.ErrNoSuchFunction, name)
	}

	tuple := make(slk.Tuple, len(args))
	for i, a := range args {
		sv, err := toStarlark(a)
		if err != nil {
			return nil, err
		}
		tuple[i] = sv
	}

	res, err := slk.Call(r.thread, callable, tuple, nil)
	if err != nil {
		return nil, wrapEvalError(err)
	}
	return fromStarlark(res)
}

func toStarlark(v any) (slk.Value, error) {
	switch x := v.(type) {
	case nil:
		return slk.None, nil
	case bool:
		return slk.Bool(x), nil
	case int:
		return slk.MakeInt(x), nil
	case int32:
		return slk.MakeInt64(int64(x)), nil
	case int64:
		return slk.MakeInt64(x), nil
	case float32:
		return slk.Float(x), nil
	case float64:
		return slk.Float(x), nil
	case string:
		return slk.String(x), nil
	case []any:
		items := make([]slk.Value, len(x))
		for i, item := range x {
			sv, err := toStarlark(item)
			if err != nil {
				return nil, err
			}
			items[i] = sv
		}
		return slk.NewList(items), nil
	case map[string]any:
		dict := slk.NewDict(len(x))
		for k, item := range x {
			sv, err := toStarlark(item)
			if err != nil {
				return nil, err
			}
			if err := dict.SetKey(slk.String(k), sv); err != nil {
				return nil, err
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("starlark: unsupported argument type %T", v)
	}
}

func fromStarlark(v slk.Value) (any, error) {
	switch x := v.(type) {
	case slk.NoneType:
		return nil, nil
	case slk.Bool:
		return bool(x), nil
	case slk.Int:
		i, ok := x.Int64()
		if !ok {
			return nil, fmt.Errorf("starlark: integer result out of int64 range")
		}
		return i, nil
	case slk.Float:
		return float64(x), nil
	case slk.String:
		return string(x), nil
	case *slk.List:
		out := make([]any, 0, x.Len())
		for i := 0; i < x.Len(); i++ {
			item, err := fromStarlark(x.Index(i))
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		return out, nil
	case *slk.Dict:
		out := make(map[string]any, x.Len())
		for _, kv := range x.Items() {
			key, ok := slk.AsString(kv[0])
			if !ok {
				return nil, fmt.Errorf("starlark: non-string dict key %s", kv[0])
			}
			item, err := fromStarlark(kv[1])
			if err != nil {
				return nil, err
			}
			out[key] = item
		}
		return out, nil
	default:
		return nil, fmt.Errorf("starlark: unsupported result type %s", v.Type())
	}
}

func wrapEvalError(err error) error {
	var evalErr *slk.EvalError
	if errors.As(err, &evalErr) {
		return &engine.EvalError{Message: evalErr.Msg, Err: err}
	}
	return &engine.EvalError{Message: err.Error(), Err: err}
}

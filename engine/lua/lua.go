// Package lua binds the gopher-lua runtime as a scripting engine.
//
// The provider answers to "lua". Functions are looked up in the Lua
// global table; a nil Lua result surfaces as a nil Go value, which the
// dispatcher treats as the author signalling evaluation failure.
package lua

import (
	"errors"
	"fmt"
	"strings"

	glua "github.com/yuin/gopher-lua"

	"github.com/jonwraymond/scriptexec/engine"
)

// Provider returns the Lua engine provider.
func Provider() engine.Provider {
	return provider{}
}

type provider struct{}

func (provider) Names() []string {
	return []string{"lua"}
}

func (provider) New() (engine.Runtime, error) {
	return &runtime{state: glua.NewState()}, nil
}

// runtime wraps one Lua state. Not safe for concurrent use; the pool
// enforces single ownership.
type runtime struct {
	state *glua.LState
}

func (r *runtime) Eval(src, origin string) error {
	fn, err := r.state.Load(strings.NewReader(src), origin)
	if err != nil {
		return wrapEvalError(err)
	}
	r.state.Push(fn)
	if err := r.state.PCall(0, 0, nil); err != nil {
		return wrapEvalError(err)
	}
	return nil
}

func (r *runtime) Invoke(name string, args ...any) (any, error) {
	fn := r.state.GetGlobal(name)
	if fn.Type() != glua.LTFunction {
		return nil, fmt.Errorf("%w: %s", engine.ErrNoSuchFunction, name)
	}

	luaArgs := make([]glua.LValue, len(args))
	for i, a := range args {
		v, err := toLua(r.state, a)
		if err != nil {
			return nil, err
		}
		luaArgs[i] = v
	}

	if err := r.state.CallByParam(glua.P{Fn: fn, NRet: 1, Protect: true}, luaArgs...); err != nil {
		return nil, wrapEvalError(err)
	}
	ret := r.state.Get(-1)
	r.state.Pop(1)
	return fromLua(ret), nil
}

func toLua(state *glua.LState, v any) (glua.LValue, error) {
	switch x := v.(type) {
	case nil:
		return glua.LNil, nil
	case bool:
		return glua.LBool(x), nil
	case int:
		return glua.LNumber(x), nil
	case int32:
		return glua.LNumber(x), nil
	case int64:
		return glua.LNumber(x), nil
	case float32:
		return glua.LNumber(x), nil
	case float64:
		return glua.LNumber(x), nil
	case string:
		return glua.LString(x), nil
	case []any:
		tbl := state.NewTable()
		for _, item := range x {
			lv, err := toLua(state, item)
			if err != nil {
				return nil, err
			}
			tbl.Append(lv)
		}
		return tbl, nil
	case map[string]any:
		tbl := state.NewTable()
		for k, item := range x {
			lv, err := toLua(state, item)
			if err != nil {
				return nil, err
			}
			tbl.RawSetString(k, lv)
		}
		return tbl, nil
	default:
		return nil, fmt.Errorf("lua: unsupported argument type %T", v)
	}
}

func fromLua(v glua.LValue) any {
	switch x := v.(type) {
	case *glua.LNilType:
		return nil
	case glua.LBool:
		return bool(x)
	case glua.LNumber:
		f := float64(x)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case glua.LString:
		return string(x)
	case *glua.LTable:
		return tableToGo(x)
	default:
		return x.String()
	}
}

// tableToGo converts an array-style table to a slice and everything else
// to a string-keyed map.
func tableToGo(tbl *glua.LTable) any {
	if n := tbl.MaxN(); n > 0 {
		out := make([]any, 0, n)
		for i := 1; i <= n; i++ {
			out = append(out, fromLua(tbl.RawGetInt(i)))
		}
		return out
	}
	out := make(map[string]any)
	tbl.ForEach(func(k, v glua.LValue) {
		out[k.String()] = fromLua(v)
	})
	return out
}

func wrapEvalError(err error) error {
	var apiErr *glua.ApiError
	if errors.As(err, &apiErr) {
		return &engine.EvalError{Message: apiErr.Object.String(), Err: err}
	}
	return &engine.EvalError{Message: err.Error(), Err: err}
}

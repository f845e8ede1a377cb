// Package marshal defines the value codec between the query engine's
// domain values and script-native values.
//
// The dispatcher consumes the codec only through the two-method [Codec]
// contract; the query engine supplies its own implementation for its
// value model. [Native] is the built-in codec for hosts whose domain
// values are ordinary Go values.
package marshal

import (
	"fmt"
	"math"
)

// Codec converts values crossing the host/script boundary.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - ToScript runs once per argument before invocation; FromScript runs
//   once on the raw result of a successful invocation.
// - FromScript is never called with nil: the dispatcher treats a nil
//   result as a failure signal before the codec is consulted.
type Codec interface {
	// ToScript converts a domain value to the representation handed to
	// the script engine.
	ToScript(v any) (any, error)

	// FromScript converts a script result back to a domain value.
	FromScript(v any) (any, error)
}

// Native is a pass-through codec for hosts whose domain values are plain
// Go values. Script-side numbers are normalized so integral values come
// back as int64 and everything else as float64, regardless of which
// engine produced them.
type Native struct{}

// ToScript returns v unchanged. Engine bindings accept plain Go values
// directly.
func (Native) ToScript(v any) (any, error) {
	return v, nil
}

// FromScript normalizes numeric results and passes everything else
// through.
func (Native) FromScript(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float32:
		return normalizeFloat(float64(n)), nil
	case float64:
		return normalizeFloat(n), nil
	case string, bool, []any, map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("marshal: unsupported script result type %T", v)
	}
}

func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}

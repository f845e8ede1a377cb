// Package script dispatches query-engine extension functions to embedded
// scripting runtimes.
//
// A script function is addressed by a URI encoding the language and the
// function name:
//
//	https://scriptexec.dev/ext/jsFunction#double
//
// The package resolves such URIs, enforces a process-wide enablement
// gate and a denylist of dangerous built-in names, pools initialized
// engine instances per language, and runs the invocation protocol:
// marshal arguments in, invoke by name, marshal the result or classify
// the failure, release the engine.
//
// # Basic usage
//
//	script.EnableScripting(true)
//
//	d, err := script.New(script.Config{
//	    Engines:   engine.NewRegistry(js.Provider()),
//	    Functions: map[string]string{"js": "function double(x) { return x * 2 }"},
//	})
//	if err != nil { ... }
//
//	fn, err := d.Bind("https://scriptexec.dev/ext/jsFunction#double")
//	if err != nil { ... }
//
//	v, err := fn.Invoke(21) // int64(42)
//
// # Gate
//
// Nothing runs unless the gate is open: every Bind and every Invoke
// fails with [ErrScriptingDisabled] while it is closed. The gate is
// process-wide, fails closed, and is seeded from the SCRIPTEXEC_ENABLED
// environment variable at startup.
//
// # Pooling
//
// Engine construction is expensive (library file, inline source,
// initialization hooks), so handles are pooled per language and reused
// across invocations. A handle is owned by exactly one in-flight
// invocation at a time and is returned to its pool on every exit path.
// Pools grow without bound under language fan-out; see Dispatcher.Reset
// for the administrative escape hatch.
//
// # Failure signalling
//
// Script authors signal "this evaluation should fail" by returning the
// language's absence value (undefined, null, nil, None). The dispatcher
// reports this as [ErrSignaledFailure] rather than letting an absent
// value propagate as a success.
package script

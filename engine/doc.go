// Package engine defines the scripting-engine abstraction used by the
// dispatcher and builds initialized engine handles.
//
// A concrete language binding supplies a [Provider], which constructs
// raw [Runtime] instances and advertises the alias names the language is
// known by. Providers are registered in a [Registry]; lookup is
// case-insensitive.
//
// [Build] turns a registered provider into a ready-to-use [Invocable]
// handle: it enables the legacy-compatibility shim when the runtime
// offers one, evaluates the optional library file and inline function
// source, and calls the per-alias initialization hooks. Build runs once
// per handle, not once per call; every failure it can return is a
// construction-class failure, distinct from the per-call failures the
// dispatcher reports.
//
// # Initialization hooks
//
// For each alias A the provider advertises, Build attempts to call a
// zero-argument function named "sx" + A + "init" (for the js binding:
// sxjsinit, sxjavascriptinit, sxecmascriptinit). A script author defines
// the hook to run setup once per engine instance; aliases without a hook
// are skipped silently, but a hook that fails aborts construction.
package engine

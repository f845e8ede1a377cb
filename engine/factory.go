package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
)

// Initialization hook naming convention: "sx" + alias + "init".
const (
	initHookPrefix = "sx"
	initHookSuffix = "init"
)

// Handle is one pooled engine instance: the invocable runtime plus a
// stable ID used to correlate log lines across the handle's lifetime.
type Handle struct {
	Invocable

	// ID is assigned once at construction.
	ID string
}

// BuildOptions configures the one-time initialization of a handle.
type BuildOptions struct {
	// LibraryPath is an optional filesystem path to a source file
	// evaluated first, before Functions.
	LibraryPath string

	// Functions is optional inline function source evaluated after the
	// library file.
	Functions string

	// Logf, when non-nil, receives debug lines about construction.
	Logf func(format string, args ...any)
}

// Build constructs one initialized, ready-to-use handle for language.
//
// The sequence is: registry lookup, runtime construction, legacy-compat
// shim, capability check, library file, inline function source,
// per-alias initialization hooks. It runs once per handle; all failures
// are construction-class and the partially built runtime is discarded,
// never pooled.
func Build(reg *Registry, language string, opts BuildOptions) (*Handle, error) {
	provider, ok := reg.Lookup(language)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, language)
	}

	rt, err := provider.New()
	if err != nil {
		return nil, fmt.Errorf("engine: constructing %s runtime: %w", language, err)
	}

	if compat, ok := rt.(LegacyCompatible); ok {
		compat.EnableLegacyCompat()
	}

	inv, ok := rt.(Invocable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotInvocable, language)
	}

	if opts.LibraryPath != "" {
		src, err := os.ReadFile(opts.LibraryPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrLibraryNotFound, opts.LibraryPath)
		case err != nil:
			return nil, fmt.Errorf("%w: %s: %v", ErrLibraryRead, opts.LibraryPath, err)
		}
		if err := inv.Eval(string(src), opts.LibraryPath); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLibraryLoad, opts.LibraryPath, err)
		}
	}

	if opts.Functions != "" {
		if err := inv.Eval(opts.Functions, language+":functions"); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFunctionSource, err)
		}
	}

	// Not every alias need define a hook; a missing hook is silence, a
	// failing hook is fatal.
	for _, alias := range provider.Names() {
		hook := initHookPrefix + alias + initHookSuffix
		if _, err := inv.Invoke(hook); err != nil {
			if errors.Is(err, ErrNoSuchFunction) {
				continue
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrInitHook, hook, err)
		}
	}

	h := &Handle{Invocable: inv, ID: uuid.NewString()}
	if opts.Logf != nil {
		opts.Logf("built %s engine handle %s", language, h.ID)
	}
	return h, nil
}

package script

import (
	"os"
	"sync/atomic"
)

// EnvEnabled is the environment variable consulted once at startup: the
// gate opens only when its value is exactly "true". Programs and tests
// flip the gate afterwards with EnableScripting.
const EnvEnabled = "SCRIPTEXEC_ENABLED"

// The gate fails closed: scripting stays off unless something explicitly
// turned it on.
var scriptingEnabled atomic.Bool

func init() {
	scriptingEnabled.Store(os.Getenv(EnvEnabled) == "true")
}

// EnableScripting opens or closes the process-wide scripting gate.
func EnableScripting(on bool) {
	scriptingEnabled.Store(on)
}

// ScriptingEnabled reports whether the gate is open.
func ScriptingEnabled() bool {
	return scriptingEnabled.Load()
}

// checkEnabled is called at bind time and on every invocation. It is a
// single atomic load, cheap enough to repeat.
func checkEnabled() error {
	if !scriptingEnabled.Load() {
		return ErrScriptingDisabled
	}
	return nil
}

package script

import (
	"fmt"

	"github.com/jonwraymond/scriptexec/engine"
	"github.com/jonwraymond/scriptexec/marshal"
)

// Config holds the configuration for a Dispatcher.
type Config struct {
	// Engines is the registry of language providers a query may reach.
	// Required.
	Engines *engine.Registry

	// Codec converts values crossing the host/script boundary.
	// Defaults to marshal.Native.
	Codec marshal.Codec

	// Libraries maps a language name (as spelled in function URIs) to a
	// filesystem path of a source file evaluated once per engine
	// construction, before Functions.
	Libraries map[string]string

	// Functions maps a language name to inline function source
	// evaluated once per engine construction, after the library file.
	Functions map[string]string

	// Logger is an optional logger for observability.
	Logger Logger
}

// Validate checks that all required fields are set.
// Returns ErrConfiguration if any required field is missing.
func (c *Config) Validate() error {
	if c.Engines == nil {
		return fmt.Errorf("%w: missing required field: Engines", ErrConfiguration)
	}
	return nil
}

// applyDefaults sets default values for optional fields.
func (c *Config) applyDefaults() {
	if c.Codec == nil {
		c.Codec = marshal.Native{}
	}
}

package script

import (
	"fmt"
	"strings"
)

// Script function URIs have the form
//
//	https://scriptexec.dev/ext/<lang>Function#<name>
//
// e.g. https://scriptexec.dev/ext/jsFunction#double calls the JavaScript
// function double.
const (
	// Namespace is the fixed URI prefix for script functions.
	Namespace = "https://scriptexec.dev/ext/"

	functionSuffix = "Function"
)

// FunctionID identifies one script function: the language it is written
// in and the name it is invoked by. It is derived once per bound call
// site and immutable thereafter.
type FunctionID struct {
	Language string
	Name     string
}

// URI reconstructs the function URI this identifier was resolved from.
func (id FunctionID) URI() string {
	return Namespace + id.Language + functionSuffix + "#" + id.Name
}

// IsScriptFunction reports whether uri follows the script-function
// format: the namespace prefix, a '#' separator, and the Function suffix
// on the segment before the separator. Pure; no side effects.
func IsScriptFunction(uri string) bool {
	local, ok := strings.CutPrefix(uri, Namespace)
	if !ok {
		return false
	}
	sep := strings.Index(local, "#")
	if sep < 0 {
		return false
	}
	return strings.HasSuffix(local[:sep], functionSuffix)
}

// Resolve parses uri into a FunctionID and validates it against the
// denylist. Every scripting runtime exposes dangerous built-ins under
// predictable names; blocking them by name at resolution time is the
// cheapest effective mitigation short of engine-specific sandboxing.
//
// Python-family languages forbid eval and exec; every other language is
// assumed JavaScript-like and forbids eval.
func Resolve(uri string) (FunctionID, error) {
	if !IsScriptFunction(uri) {
		return FunctionID{}, fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	local := strings.TrimPrefix(uri, Namespace)
	sep := strings.Index(local, "#")
	language := strings.TrimSuffix(local[:sep], functionSuffix)
	name := local[sep+1:]
	if language == "" {
		return FunctionID{}, fmt.Errorf("%w: empty language: %s", ErrInvalidURI, uri)
	}

	if strings.Contains(strings.ToLower(language), "python") {
		if name == "eval" || name == "exec" {
			return FunctionID{}, fmt.Errorf("%w: %s function %q", ErrForbiddenFunction, language, name)
		}
	} else if name == "eval" {
		return FunctionID{}, fmt.Errorf("%w: %s function %q", ErrForbiddenFunction, language, name)
	}

	return FunctionID{Language: language, Name: name}, nil
}

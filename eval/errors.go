package eval

import (
	"fmt"

	"github.com/burningli/bxscript/value"
)

// ThrownError is a script-visible exception carrying the evaluated value
// passed to `throw`, or a String message synthesized from a host-detected
// runtime fault (spec.md §4.3's "A runtime error from inside the host also
// materializes as a catchable script error carrying a String message.").
// try/catch unwraps this to bind the catch parameter; an uncaught one
// propagates out of EvalProgram as a plain Go error.
type ThrownError struct {
	Value value.Value
}

func (e *ThrownError) Error() string { return e.Value.Display() }

// asThrow normalizes any error produced by host operations (Get/Set,
// Environment.Declare/Assign/Lookup, division by zero, ...) into a
// ThrownError carrying a String message, leaving an already-thrown script
// value untouched.
func asThrow(err error) *ThrownError {
	if te, ok := err.(*ThrownError); ok {
		return te
	}
	return &ThrownError{Value: value.String(err.Error())}
}

func runtimeErrorf(format string, args ...interface{}) error {
	return asThrow(&value.RuntimeError{Message: fmt.Sprintf(format, args...)})
}

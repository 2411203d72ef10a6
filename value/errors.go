package value

// RuntimeError is a host-detected runtime fault (bad property access, bad
// argument, division by zero, ...). eval wraps these into a catchable
// script exception carrying a String message, per spec.md §4.3's "A
// runtime error from inside the host also materializes as a catchable
// script error carrying a String message."
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

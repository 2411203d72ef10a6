package eval

import "github.com/burningli/bxscript/value"

// SignalKind tags the three internal control-flow markers a statement can
// produce in place of a normal result.
type SignalKind int

const (
	SigNone SignalKind = iota
	SigReturn
	SigBreak
	SigContinue
)

// Signal carries a control-flow marker alongside a statement's value. It is
// threaded through eval's return values rather than folded into
// value.Value, per spec.md §9's "alternatively raise and catch a tagged
// transfer at block boundaries" option — it never leaks into an
// Environment, property store, or NativeFunction argument list.
type Signal struct {
	Kind SignalKind
	// Value is the Return signal's payload; unused for Break/Continue.
	Value value.Value
}

func (s Signal) isNone() bool { return s.Kind == SigNone }

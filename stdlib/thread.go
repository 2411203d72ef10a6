package stdlib

import (
	"time"

	"github.com/burningli/bxscript/value"
)

// installThread binds __native_thread.sleep, which blocks the goroutine
// it runs in. Script code, including callbacks the event loop dispatches,
// runs on the interpreter's goroutine, so a call stalls the interpreter
// and every pending callback for that long — the same caveat
// original_source/stdlib/ThreadModule.h documents for its own sleep.
//
// thread.invoke from the original source is deliberately not bound here;
// see DESIGN.md's stdlib entry for why.
func installThread(env value.Env) {
	fns := map[string]*value.NativeFunction{
		"sleep": native("sleep", 1, func(args []value.Value) (value.Value, error) {
			ms, err := wantNumber(args, 0, "sleep", "a millisecond count")
			if err != nil {
				return nil, err
			}
			time.Sleep(time.Duration(ms) * time.Millisecond)
			return value.Null{}, nil
		}),
	}
	nativeNamespace(env, "__native_thread", fns)
}

package stdlib

import (
	"time"

	"github.com/burningli/bxscript/value"
)

// installDate binds __native_date.now/from, each returning a Date Object
// (a `millis` property plus a bound `format(layout)` method) rather than
// a bare Number, matching original_source/stdlib/DateModule.h's
// CreateDateObject shape.
//
// Grounded on std/time.go (teacher, now()/sleep() over time.Now()) widened
// with original_source/stdlib/DateModule.h's format token vocabulary
// (yyyy/MM/dd/HH/hh/mm/ss), translated into Go's reference-time layout
// instead of C's strftime codes.
func installDate(env value.Env) {
	fns := map[string]*value.NativeFunction{
		"now": native("now", 0, func(args []value.Value) (value.Value, error) {
			return newDateObject(time.Now()), nil
		}),
		"from": native("from", 1, func(args []value.Value) (value.Value, error) {
			s, err := wantString(args, 0, "from", "a date string")
			if err != nil {
				return nil, err
			}
			t, parseErr := time.Parse("2006-01-02 15:04:05", s)
			if parseErr != nil {
				t, parseErr = time.Parse(time.RFC3339, s)
			}
			if parseErr != nil {
				return nil, &value.RuntimeError{Message: "cannot parse date: " + s}
			}
			return newDateObject(t), nil
		}),
	}
	nativeNamespace(env, "__native_date", fns)
}

var tokenReplacer = []struct {
	token  string
	layout string
}{
	{"yyyy", "2006"},
	{"MM", "01"},
	{"dd", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
}

func bxDateLayoutToGo(fmt string) string {
	out := fmt
	for _, r := range tokenReplacer {
		out = replaceAll(out, r.token, r.layout)
	}
	return out
}

func replaceAll(s, old, new string) string {
	for {
		idx := indexOf(s, old)
		if idx < 0 {
			return s
		}
		s = s[:idx] + new + s[idx+len(old):]
	}
}

func indexOf(s, sub string) int {
	if len(sub) == 0 || len(sub) > len(s) {
		return -1
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func newDateObject(t time.Time) *value.Object {
	obj := value.NewObject()
	obj.SetOwn("millis", value.Number(float64(t.UnixMilli())))
	obj.SetOwn("format", native("format", 1, func(args []value.Value) (value.Value, error) {
		layout := "yyyy-MM-dd HH:mm:ss"
		if len(args) > 0 {
			if s, ok := args[0].(value.String); ok {
				layout = string(s)
			}
		}
		return value.String(t.Format(bxDateLayoutToGo(layout))), nil
	}))
	return obj
}

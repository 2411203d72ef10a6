package stdlib

import (
	"encoding/json"

	"github.com/burningli/bxscript/value"
)

// installJSON binds __native_json.parse/stringify.
//
// Grounded on std/json.go's use of encoding/json (teacher) for its own
// parse/stringify builtins, adapted to convert between BxScript's Value
// kinds and Go's interface{} JSON tree instead of the teacher's
// GoMixObject tree.
func installJSON(env value.Env) {
	fns := map[string]*value.NativeFunction{
		"parse": native("parse", 1, func(args []value.Value) (value.Value, error) {
			s, err := wantString(args, 0, "parse", "a JSON string")
			if err != nil {
				return nil, err
			}
			var tree interface{}
			if err := json.Unmarshal([]byte(s), &tree); err != nil {
				return nil, &value.RuntimeError{Message: "invalid JSON: " + err.Error()}
			}
			return fromJSON(tree), nil
		}),
		"stringify": native("stringify", 1, func(args []value.Value) (value.Value, error) {
			if len(args) < 1 {
				return nil, argErr("stringify", "a value")
			}
			tree := toJSON(args[0])
			out, err := json.Marshal(tree)
			if err != nil {
				return nil, &value.RuntimeError{Message: "cannot stringify: " + err.Error()}
			}
			return value.String(out), nil
		}),
	}
	nativeNamespace(env, "__native_json", fns)
}

func fromJSON(v interface{}) value.Value {
	switch t := v.(type) {
	case nil:
		return value.Null{}
	case bool:
		return value.Bool(t)
	case float64:
		return value.Number(t)
	case string:
		return value.String(t)
	case []interface{}:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			elems[i] = fromJSON(e)
		}
		return value.NewArray(elems...)
	case map[string]interface{}:
		obj := value.NewObject()
		for _, k := range orderedKeys(t) {
			obj.SetOwn(k, fromJSON(t[k]))
		}
		return obj
	default:
		return value.Null{}
	}
}

// orderedKeys sorts a decoded JSON object's keys so stringify/parse
// round-trips are deterministic; encoding/json.Unmarshal into
// map[string]interface{} otherwise loses source order.
func orderedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func toJSON(v value.Value) interface{} {
	switch t := v.(type) {
	case value.Null:
		return nil
	case value.Bool:
		return bool(t)
	case value.Number:
		return float64(t)
	case value.String:
		return string(t)
	case *value.Array:
		out := make([]interface{}, len(t.Elements))
		for i, e := range t.Elements {
			out[i] = toJSON(e)
		}
		return out
	case *value.Object:
		out := make(map[string]interface{})
		for _, k := range t.OwnKeys() {
			ov, _ := t.GetOwn(k)
			out[k] = toJSON(ov)
		}
		return out
	default:
		return nil
	}
}

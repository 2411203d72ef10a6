package stdlib

import (
	"regexp"

	"github.com/burningli/bxscript/value"
)

// installRegex binds __native_regex.match/replace.
//
// Grounded directly on original_source/stdlib/RegexModule.h's match/
// replace pair (the teacher has no regex module at all), implemented
// with Go's regexp instead of std::regex, written in the teacher's
// std/*.go NativeFunction registration idiom.
func installRegex(env value.Env) {
	fns := map[string]*value.NativeFunction{
		"match": native("match", 2, func(args []value.Value) (value.Value, error) {
			pattern, err := wantString(args, 0, "match", "(pattern, str)")
			if err != nil {
				return nil, err
			}
			str, err := wantString(args, 1, "match", "(pattern, str)")
			if err != nil {
				return nil, err
			}
			re, compileErr := regexp.Compile(pattern)
			if compileErr != nil {
				return nil, &value.RuntimeError{Message: "invalid regex: " + compileErr.Error()}
			}
			groups := re.FindStringSubmatch(str)
			if groups == nil {
				return value.Null{}, nil
			}
			elems := make([]value.Value, len(groups))
			for i, g := range groups {
				elems[i] = value.String(g)
			}
			return value.NewArray(elems...), nil
		}),
		"replace": native("replace", 3, func(args []value.Value) (value.Value, error) {
			pattern, err := wantString(args, 0, "replace", "(pattern, str, repl)")
			if err != nil {
				return nil, err
			}
			str, err := wantString(args, 1, "replace", "(pattern, str, repl)")
			if err != nil {
				return nil, err
			}
			repl, err := wantString(args, 2, "replace", "(pattern, str, repl)")
			if err != nil {
				return nil, err
			}
			re, compileErr := regexp.Compile(pattern)
			if compileErr != nil {
				return nil, &value.RuntimeError{Message: "invalid regex: " + compileErr.Error()}
			}
			return value.String(re.ReplaceAllString(str, repl)), nil
		}),
	}
	nativeNamespace(env, "__native_regex", fns)
}

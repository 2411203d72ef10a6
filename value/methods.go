package value

import (
	"strconv"
	"strings"
)

// This file synthesizes the handful of built-in per-kind members spec.md
// §4.3 lists ahead of prototype fallback (Number#toFixed, String#indexOf,
// Array#push, ...). Each is produced fresh per Get call as a NativeFunction
// closing over the receiver, mirroring how bindMethod closes a script
// Function over `this`.

func nativeToFixed(n Number) *NativeFunction {
	return &NativeFunction{Name: "toFixed", Arity: 1, Fn: func(args []Value) (Value, error) {
		digits := 0
		if len(args) > 0 {
			d, ok := args[0].(Number)
			if !ok {
				return nil, &RuntimeError{Message: "toFixed expects a number argument"}
			}
			digits = int(d)
		}
		if digits < 0 || digits > 100 {
			return nil, &RuntimeError{Message: "toFixed digits must be between 0 and 100"}
		}
		return String(strconv.FormatFloat(float64(n), 'f', digits, 64)), nil
	}}
}

func nativeNumberToString(n Number) *NativeFunction {
	return &NativeFunction{Name: "toString", Arity: 0, Fn: func(args []Value) (Value, error) {
		return String(n.Display()), nil
	}}
}

func runeIndexOf(hay, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(hay); i++ {
		match := true
		for j := range needle {
			if hay[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func runeLastIndexOf(hay, needle []rune) int {
	if len(needle) == 0 {
		return len(hay)
	}
	for i := len(hay) - len(needle); i >= 0; i-- {
		match := true
		for j := range needle {
			if hay[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func nativeStringIndexOf(s String) *NativeFunction {
	return &NativeFunction{Name: "indexOf", Arity: 1, Fn: func(args []Value) (Value, error) {
		needle, ok := argString(args, 0)
		if !ok {
			return nil, &RuntimeError{Message: "indexOf expects a string argument"}
		}
		return Number(runeIndexOf([]rune(string(s)), []rune(needle))), nil
	}}
}

func nativeStringLastIndexOf(s String) *NativeFunction {
	return &NativeFunction{Name: "lastIndexOf", Arity: 1, Fn: func(args []Value) (Value, error) {
		needle, ok := argString(args, 0)
		if !ok {
			return nil, &RuntimeError{Message: "lastIndexOf expects a string argument"}
		}
		return Number(runeLastIndexOf([]rune(string(s)), []rune(needle))), nil
	}}
}

func nativeStringStartsWith(s String) *NativeFunction {
	return &NativeFunction{Name: "startsWith", Arity: 1, Fn: func(args []Value) (Value, error) {
		prefix, ok := argString(args, 0)
		if !ok {
			return nil, &RuntimeError{Message: "startsWith expects a string argument"}
		}
		return Bool(strings.HasPrefix(string(s), prefix)), nil
	}}
}

func nativeStringEndsWith(s String) *NativeFunction {
	return &NativeFunction{Name: "endsWith", Arity: 1, Fn: func(args []Value) (Value, error) {
		suffix, ok := argString(args, 0)
		if !ok {
			return nil, &RuntimeError{Message: "endsWith expects a string argument"}
		}
		return Bool(strings.HasSuffix(string(s), suffix)), nil
	}}
}

func nativeStringCharCodeAt(s String) *NativeFunction {
	return &NativeFunction{Name: "charCodeAt", Arity: 1, Fn: func(args []Value) (Value, error) {
		idxArg, ok := argNumber(args, 0)
		if !ok {
			return nil, &RuntimeError{Message: "charCodeAt expects a numeric index"}
		}
		runes := []rune(string(s))
		idx := int(idxArg)
		if idx < 0 || idx >= len(runes) {
			return Null{}, nil
		}
		return Number(runes[idx]), nil
	}}
}

func nativeStringSubstr(s String) *NativeFunction {
	return &NativeFunction{Name: "substr", Arity: 2, Fn: func(args []Value) (Value, error) {
		startArg, ok := argNumber(args, 0)
		if !ok {
			return nil, &RuntimeError{Message: "substr expects a start argument"}
		}
		runes := []rune(string(s))
		start := clamp(int(startArg), 0, len(runes))
		length := len(runes) - start
		if lenArg, ok := argNumber(args, 1); ok {
			length = int(lenArg)
			if length < 0 {
				length = 0
			}
		}
		end := start + length
		if end > len(runes) {
			end = len(runes)
		}
		return String(string(runes[start:end])), nil
	}}
}

func nativeArrayPush(a *Array) *NativeFunction {
	return &NativeFunction{Name: "push", Arity: -1, Fn: func(args []Value) (Value, error) {
		a.Elements = append(a.Elements, args...)
		return Number(len(a.Elements)), nil
	}}
}

func nativeArrayPop(a *Array) *NativeFunction {
	return &NativeFunction{Name: "pop", Arity: 0, Fn: func(args []Value) (Value, error) {
		if len(a.Elements) == 0 {
			return Null{}, nil
		}
		last := a.Elements[len(a.Elements)-1]
		a.Elements = a.Elements[:len(a.Elements)-1]
		return last, nil
	}}
}

func nativeArrayShift(a *Array) *NativeFunction {
	return &NativeFunction{Name: "shift", Arity: 0, Fn: func(args []Value) (Value, error) {
		if len(a.Elements) == 0 {
			return Null{}, nil
		}
		first := a.Elements[0]
		a.Elements = a.Elements[1:]
		return first, nil
	}}
}

func nativeArrayUnshift(a *Array) *NativeFunction {
	return &NativeFunction{Name: "unshift", Arity: -1, Fn: func(args []Value) (Value, error) {
		a.Elements = append(append([]Value{}, args...), a.Elements...)
		return Number(len(a.Elements)), nil
	}}
}

func nativeArrayConcat(a *Array) *NativeFunction {
	return &NativeFunction{Name: "concat", Arity: -1, Fn: func(args []Value) (Value, error) {
		result := make([]Value, len(a.Elements))
		copy(result, a.Elements)
		for _, arg := range args {
			if arr, ok := arg.(*Array); ok {
				result = append(result, arr.Elements...)
			} else {
				result = append(result, arg)
			}
		}
		return NewArray(result...), nil
	}}
}

func nativeArrayJoin(a *Array) *NativeFunction {
	return &NativeFunction{Name: "join", Arity: 1, Fn: func(args []Value) (Value, error) {
		sep := ","
		if len(args) > 0 {
			s, ok := args[0].(String)
			if !ok {
				return nil, &RuntimeError{Message: "join separator must be a string"}
			}
			sep = string(s)
		}
		parts := make([]string, len(a.Elements))
		for i, el := range a.Elements {
			parts[i] = el.Display()
		}
		return String(strings.Join(parts, sep)), nil
	}}
}

func nativeArrayInsert(a *Array) *NativeFunction {
	return &NativeFunction{Name: "insert", Arity: 2, Fn: func(args []Value) (Value, error) {
		idxArg, ok := argNumber(args, 0)
		if !ok || len(args) < 2 {
			return nil, &RuntimeError{Message: "insert expects (index, value)"}
		}
		idx := int(idxArg)
		if idx < 0 || idx > len(a.Elements) {
			return nil, &RuntimeError{Message: "insert index out of range"}
		}
		a.Elements = append(a.Elements, nil)
		copy(a.Elements[idx+1:], a.Elements[idx:])
		a.Elements[idx] = args[1]
		return Number(len(a.Elements)), nil
	}}
}

func nativeArrayRemove(a *Array) *NativeFunction {
	return &NativeFunction{Name: "remove", Arity: 1, Fn: func(args []Value) (Value, error) {
		idxArg, ok := argNumber(args, 0)
		if !ok {
			return nil, &RuntimeError{Message: "remove expects an index"}
		}
		idx := int(idxArg)
		if idx < 0 || idx >= len(a.Elements) {
			return Null{}, nil
		}
		removed := a.Elements[idx]
		a.Elements = append(a.Elements[:idx], a.Elements[idx+1:]...)
		return removed, nil
	}}
}

func nativeArraySlice(a *Array) *NativeFunction {
	return &NativeFunction{Name: "slice", Arity: 2, Fn: func(args []Value) (Value, error) {
		start := 0
		if s, ok := argNumber(args, 0); ok {
			start = int(s)
		}
		end := len(a.Elements)
		if e, ok := argNumber(args, 1); ok {
			end = int(e)
		}
		start = clamp(start, 0, len(a.Elements))
		end = clamp(end, 0, len(a.Elements))
		if start > end {
			start = end
		}
		out := make([]Value, end-start)
		copy(out, a.Elements[start:end])
		return NewArray(out...), nil
	}}
}

func nativeArrayIndexOf(a *Array) *NativeFunction {
	return &NativeFunction{Name: "indexOf", Arity: 1, Fn: func(args []Value) (Value, error) {
		if len(args) < 1 {
			return nil, &RuntimeError{Message: "indexOf expects a value"}
		}
		for i, el := range a.Elements {
			eq, err := Equal(el, args[0])
			if err != nil {
				return nil, err
			}
			if eq {
				return Number(i), nil
			}
		}
		return Number(-1), nil
	}}
}

func nativeArrayLastIndexOf(a *Array) *NativeFunction {
	return &NativeFunction{Name: "lastIndexOf", Arity: 1, Fn: func(args []Value) (Value, error) {
		if len(args) < 1 {
			return nil, &RuntimeError{Message: "lastIndexOf expects a value"}
		}
		for i := len(a.Elements) - 1; i >= 0; i-- {
			eq, err := Equal(a.Elements[i], args[0])
			if err != nil {
				return nil, err
			}
			if eq {
				return Number(i), nil
			}
		}
		return Number(-1), nil
	}}
}

func argNumber(args []Value, i int) (float64, bool) {
	if i >= len(args) {
		return 0, false
	}
	n, ok := args[i].(Number)
	return float64(n), ok
}

func argString(args []Value, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	s, ok := args[i].(String)
	return string(s), ok
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

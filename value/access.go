package value

import "strconv"

// parseIndex reports whether key is the canonical decimal rendering of a
// non-negative integer (no sign, no leading junk), and if so its value.
// "3" is an index; "03", "-1", "3.0", "x" are not.
func parseIndex(key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	if len(key) > 1 && key[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Get implements spec.md §4.3's get(key) dispatch: a handful of built-in
// per-kind members are consulted before falling back to the kind's
// Prototype, except for Object whose own properties take priority over
// ObjectPrototype.
func Get(receiver Value, key string) (Value, error) {
	switch r := receiver.(type) {
	case Null:
		return nil, &RuntimeError{Message: "cannot read property '" + key + "' of null"}
	case Bool:
		return consultPrototype(r, BoolPrototype, key)
	case Number:
		return getNumber(r, key)
	case String:
		return getString(r, key)
	case *Array:
		return getArray(r, key)
	case *Object:
		return getObject(r, key)
	case *Function:
		return consultPrototype(r, FunctionPrototype, key)
	case *NativeFunction:
		return consultPrototype(r, FunctionPrototype, key)
	default:
		return Null{}, nil
	}
}

// consultPrototype fetches key off proto and rebinds it to receiver. It
// reads proto with GetOwn only, so a lookup never recurses back into
// getObject, even when receiver is proto itself (e.g. a name looked up
// directly on Object.prototype).
func consultPrototype(receiver Value, proto *Object, key string) (Value, error) {
	v, ok := proto.GetOwn(key)
	if !ok {
		return Null{}, nil
	}
	return bindMethod(v, receiver), nil
}

func getNumber(n Number, key string) (Value, error) {
	switch key {
	case "toFixed":
		return nativeToFixed(n), nil
	case "toString":
		return nativeNumberToString(n), nil
	}
	return consultPrototype(n, NumberPrototype, key)
}

func getString(s String, key string) (Value, error) {
	if idx, ok := parseIndex(key); ok {
		runes := []rune(string(s))
		if idx < len(runes) {
			return String(string(runes[idx])), nil
		}
		return Null{}, nil
	}
	switch key {
	case "length":
		return Number(len([]rune(string(s)))), nil
	case "indexOf":
		return nativeStringIndexOf(s), nil
	case "lastIndexOf":
		return nativeStringLastIndexOf(s), nil
	case "startsWith":
		return nativeStringStartsWith(s), nil
	case "endsWith":
		return nativeStringEndsWith(s), nil
	case "charCodeAt":
		return nativeStringCharCodeAt(s), nil
	case "substr":
		return nativeStringSubstr(s), nil
	}
	return consultPrototype(s, StringPrototype, key)
}

func getArray(a *Array, key string) (Value, error) {
	if idx, ok := parseIndex(key); ok {
		if idx < len(a.Elements) {
			return a.Elements[idx], nil
		}
		return Null{}, nil
	}
	switch key {
	case "length":
		return Number(len(a.Elements)), nil
	case "push":
		return nativeArrayPush(a), nil
	case "pop":
		return nativeArrayPop(a), nil
	case "shift":
		return nativeArrayShift(a), nil
	case "unshift":
		return nativeArrayUnshift(a), nil
	case "concat":
		return nativeArrayConcat(a), nil
	case "join":
		return nativeArrayJoin(a), nil
	case "insert":
		return nativeArrayInsert(a), nil
	case "remove":
		return nativeArrayRemove(a), nil
	case "slice":
		return nativeArraySlice(a), nil
	case "indexOf":
		return nativeArrayIndexOf(a), nil
	case "lastIndexOf":
		return nativeArrayLastIndexOf(a), nil
	}
	return consultPrototype(a, ArrayPrototype, key)
}

func getObject(o *Object, key string) (Value, error) {
	if v, ok := o.GetOwn(key); ok {
		return v, nil
	}
	return consultPrototype(o, ObjectPrototype, key)
}

// Set implements spec.md §4.3's set(key, value): Object and Array accept
// own-property writes (an Array index past the current end zero-fills the
// gap with Null); every other kind rejects mutation.
func Set(receiver Value, key string, val Value) error {
	switch r := receiver.(type) {
	case *Object:
		r.SetOwn(key, val)
		return nil
	case *Array:
		idx, ok := parseIndex(key)
		if !ok {
			return &RuntimeError{Message: "array index must be a non-negative integer, got '" + key + "'"}
		}
		for len(r.Elements) <= idx {
			r.Elements = append(r.Elements, Null{})
		}
		r.Elements[idx] = val
		return nil
	default:
		return &RuntimeError{Message: "cannot set property '" + key + "' on a " + receiver.Kind().String() + " value"}
	}
}

// maxEqualDepth bounds Equal's recursion into nested Array/Object
// structure. A self-referential value (`let a=[]; a.push(a);`) would
// otherwise recurse forever and overflow the stack; spec.md §8 instead
// requires `v == v` to hold and no panic on valid input, so depth beyond
// this bound is reported as a RangeError instead.
const maxEqualDepth = 1000

// Equal implements spec.md §4.3's structural equality: same-kind scalar
// comparison for Null/Bool/Number/String, recursive structural comparison
// for Array/Object, and reference identity for Function/NativeFunction.
// Values of different kinds are never equal.
func Equal(a, b Value) (bool, error) {
	return equalAt(a, b, 0)
}

func equalAt(a, b Value, depth int) (bool, error) {
	if depth > maxEqualDepth {
		return false, &RuntimeError{Message: "maximum equality recursion depth exceeded"}
	}
	if a.Kind() != b.Kind() {
		return false, nil
	}
	switch av := a.(type) {
	case Null:
		return true, nil
	case Bool:
		return av == b.(Bool), nil
	case Number:
		return av == b.(Number), nil
	case String:
		return av == b.(String), nil
	case *Array:
		bv := b.(*Array)
		if len(av.Elements) != len(bv.Elements) {
			return false, nil
		}
		for i := range av.Elements {
			eq, err := equalAt(av.Elements[i], bv.Elements[i], depth+1)
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	case *Object:
		bv := b.(*Object)
		if len(av.keys) != len(bv.keys) {
			return false, nil
		}
		for _, k := range av.keys {
			bval, ok := bv.GetOwn(k)
			if !ok {
				return false, nil
			}
			aval, _ := av.GetOwn(k)
			eq, err := equalAt(aval, bval, depth+1)
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	case *Function:
		return av == b.(*Function), nil
	case *NativeFunction:
		return av == b.(*NativeFunction), nil
	default:
		return false, nil
	}
}

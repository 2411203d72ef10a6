package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberDisplayStripsTrailingZeros(t *testing.T) {
	assert.Equal(t, "3", Number(3).Display())
	assert.Equal(t, "3.5", Number(3.5).Display())
	assert.Equal(t, "0", Number(0).Display())
	assert.Equal(t, "-4", Number(-4).Display())
}

func TestArrayDisplay(t *testing.T) {
	a := NewArray(Number(1), String("x"), Bool(true))
	assert.Equal(t, "[1, x, true]", a.Display())
}

func TestObjectDisplayIsSpecLiteral(t *testing.T) {
	o := NewObject()
	o.SetOwn("b", Number(2))
	o.SetOwn("a", Number(1))
	assert.Equal(t, "[object Object]", o.Display())
}

func TestFunctionAndNativeFunctionDisplayAreSpecLiterals(t *testing.T) {
	assert.Equal(t, "[function]", (&Function{}).Display())
	assert.Equal(t, "[native code]", (&NativeFunction{Name: "foo"}).Display())
}

func TestGetNullIsRuntimeError(t *testing.T) {
	_, err := Get(Null{}, "x")
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestGetStringIndexAndLength(t *testing.T) {
	v, err := Get(String("hello"), "1")
	require.NoError(t, err)
	assert.Equal(t, String("e"), v)

	v, err = Get(String("hello"), "length")
	require.NoError(t, err)
	assert.Equal(t, Number(5), v)

	v, err = Get(String("hello"), "99")
	require.NoError(t, err)
	assert.Equal(t, Null{}, v)
}

func TestStringBuiltinMethods(t *testing.T) {
	fn, err := Get(String("hello world"), "indexOf")
	require.NoError(t, err)
	nf := fn.(*NativeFunction)
	v, err := nf.Fn([]Value{String("world")})
	require.NoError(t, err)
	assert.Equal(t, Number(6), v)

	fn, _ = Get(String("hello"), "startsWith")
	v, err = fn.(*NativeFunction).Fn([]Value{String("he")})
	require.NoError(t, err)
	assert.Equal(t, Bool(true), v)

	fn, _ = Get(String("hello"), "substr")
	v, err = fn.(*NativeFunction).Fn([]Value{Number(1), Number(3)})
	require.NoError(t, err)
	assert.Equal(t, String("ell"), v)
}

func TestNumberToFixedValidatesRange(t *testing.T) {
	fn, err := Get(Number(3.14159), "toFixed")
	require.NoError(t, err)
	nf := fn.(*NativeFunction)
	v, err := nf.Fn([]Value{Number(2)})
	require.NoError(t, err)
	assert.Equal(t, String("3.14"), v)

	_, err = nf.Fn([]Value{Number(101)})
	assert.Error(t, err)
}

func TestArrayIndexGetAndSet(t *testing.T) {
	a := NewArray(Number(1), Number(2))
	v, err := Get(a, "0")
	require.NoError(t, err)
	assert.Equal(t, Number(1), v)

	require.NoError(t, Set(a, "4", String("x")))
	assert.Len(t, a.Elements, 5)
	assert.Equal(t, Null{}, a.Elements[2])
	assert.Equal(t, String("x"), a.Elements[4])
}

func TestArrayPushPopShiftUnshift(t *testing.T) {
	a := NewArray(Number(1), Number(2))

	pushFn, _ := Get(a, "push")
	n, err := pushFn.(*NativeFunction).Fn([]Value{Number(3)})
	require.NoError(t, err)
	assert.Equal(t, Number(3), n)
	assert.Equal(t, []Value{Number(1), Number(2), Number(3)}, a.Elements)

	popFn, _ := Get(a, "pop")
	popped, err := popFn.(*NativeFunction).Fn(nil)
	require.NoError(t, err)
	assert.Equal(t, Number(3), popped)

	shiftFn, _ := Get(a, "shift")
	shifted, err := shiftFn.(*NativeFunction).Fn(nil)
	require.NoError(t, err)
	assert.Equal(t, Number(1), shifted)
	assert.Equal(t, []Value{Number(2)}, a.Elements)

	unshiftFn, _ := Get(a, "unshift")
	_, err = unshiftFn.(*NativeFunction).Fn([]Value{Number(0)})
	require.NoError(t, err)
	assert.Equal(t, []Value{Number(0), Number(2)}, a.Elements)
}

func TestArrayInsertRaisesRangeErrorOutOfBounds(t *testing.T) {
	a := NewArray(Number(1), Number(2))
	insertFn, _ := Get(a, "insert")

	n, err := insertFn.(*NativeFunction).Fn([]Value{Number(1), Number(9)})
	require.NoError(t, err)
	assert.Equal(t, Number(3), n)
	assert.Equal(t, []Value{Number(1), Number(9), Number(2)}, a.Elements)

	_, err = insertFn.(*NativeFunction).Fn([]Value{Number(-1), Number(0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert index out of range")

	_, err = insertFn.(*NativeFunction).Fn([]Value{Number(100), Number(0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert index out of range")
}

func TestObjectGetSetOwnAndPrototypeFallback(t *testing.T) {
	o := NewObject()
	require.NoError(t, Set(o, "name", String("ana")))

	greet := &NativeFunction{Name: "greet", Fn: func(args []Value) (Value, error) {
		return String("hi"), nil
	}}
	ObjectPrototype.SetOwn("greet", greet)
	defer ObjectPrototype.DeleteOwn("greet")

	v, err := Get(o, "name")
	require.NoError(t, err)
	assert.Equal(t, String("ana"), v)

	v, err = Get(o, "greet")
	require.NoError(t, err)
	assert.Same(t, greet, v)
}

func TestSetRejectsScalarReceivers(t *testing.T) {
	assert.Error(t, Set(Number(1), "x", Number(2)))
	assert.Error(t, Set(String("s"), "x", Number(2)))
	assert.Error(t, Set(Bool(true), "x", Number(2)))
}

func mustEqual(t *testing.T, a, b Value) bool {
	t.Helper()
	eq, err := Equal(a, b)
	require.NoError(t, err)
	return eq
}

func TestEqualStructural(t *testing.T) {
	assert.True(t, mustEqual(t, Null{}, Null{}))
	assert.True(t, mustEqual(t, Number(1), Number(1)))
	assert.False(t, mustEqual(t, Number(1), String("1")))

	a1 := NewArray(Number(1), NewArray(Number(2)))
	a2 := NewArray(Number(1), NewArray(Number(2)))
	assert.True(t, mustEqual(t, a1, a2))

	o1 := NewObject()
	o1.SetOwn("a", Number(1))
	o2 := NewObject()
	o2.SetOwn("a", Number(1))
	assert.True(t, mustEqual(t, o1, o2))
	o2.SetOwn("b", Number(2))
	assert.False(t, mustEqual(t, o1, o2))
}

func TestEqualFunctionsAreReferenceIdentity(t *testing.T) {
	f1 := &Function{}
	f2 := &Function{}
	assert.True(t, mustEqual(t, f1, f1))
	assert.False(t, mustEqual(t, f1, f2))
}

func TestEqualSelfReferentialArrayRaisesRangeErrorInsteadOfOverflowing(t *testing.T) {
	a := NewArray()
	a.Elements = append(a.Elements, a)

	eq, err := Equal(a, a)
	require.Error(t, err)
	assert.False(t, eq)
	assert.Contains(t, err.Error(), "maximum equality recursion depth exceeded")
}

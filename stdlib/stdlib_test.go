package stdlib

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/burningli/bxscript/environment"
	"github.com/burningli/bxscript/eventloop"
	"github.com/burningli/bxscript/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T) *environment.Environment {
	t.Helper()
	env := environment.New()
	Install(env, eventloop.New())
	return env
}

func call(t *testing.T, env *environment.Environment, namespace, fn string, args ...value.Value) (value.Value, error) {
	t.Helper()
	nsVal, ok := env.Lookup(namespace)
	require.True(t, ok, "namespace %q not installed", namespace)
	ns, ok := nsVal.(*value.Object)
	require.True(t, ok)
	fnVal, ok := ns.GetOwn(fn)
	require.True(t, ok, "function %q not found in %q", fn, namespace)
	nf, ok := fnVal.(*value.NativeFunction)
	require.True(t, ok)
	return nf.Fn(args)
}

func TestMathFunctions(t *testing.T) {
	env := testEnv(t)
	v, err := call(t, env, "__native_math", "sqrt", value.Number(16))
	require.NoError(t, err)
	assert.Equal(t, value.Number(4), v)

	v, err = call(t, env, "__native_math", "max", value.Number(1), value.Number(9))
	require.NoError(t, err)
	assert.Equal(t, value.Number(9), v)

	pi, ok := env.Lookup("__native_math_PI")
	require.True(t, ok)
	assert.InDelta(t, 3.14159, float64(pi.(value.Number)), 0.001)
}

func TestJSONRoundTrip(t *testing.T) {
	env := testEnv(t)
	obj := value.NewObject()
	obj.SetOwn("a", value.Number(1))
	obj.SetOwn("b", value.NewArray(value.String("x"), value.Bool(true)))

	str, err := call(t, env, "__native_json", "stringify", obj)
	require.NoError(t, err)

	back, err := call(t, env, "__native_json", "parse", str)
	require.NoError(t, err)

	backObj, ok := back.(*value.Object)
	require.True(t, ok)
	a, _ := backObj.GetOwn("a")
	assert.Equal(t, value.Number(1), a)
}

func TestJSONParseRejectsInvalid(t *testing.T) {
	env := testEnv(t)
	_, err := call(t, env, "__native_json", "parse", value.String("{not json"))
	assert.Error(t, err)
}

func TestCryptoDigestsAreStable(t *testing.T) {
	env := testEnv(t)
	v, err := call(t, env, "__native_crypto", "sha256", value.String("hello"))
	require.NoError(t, err)
	assert.Equal(t, value.String("2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"), v)
}

func TestCryptoBase64RoundTrip(t *testing.T) {
	env := testEnv(t)
	enc, err := call(t, env, "__native_crypto", "base64Encode", value.String("hello world"))
	require.NoError(t, err)
	dec, err := call(t, env, "__native_crypto", "base64Decode", enc)
	require.NoError(t, err)
	assert.Equal(t, value.String("hello world"), dec)
}

func TestRegexMatchAndReplace(t *testing.T) {
	env := testEnv(t)
	v, err := call(t, env, "__native_regex", "match", value.String(`(\d+)`), value.String("order 42"))
	require.NoError(t, err)
	arr, ok := v.(*value.Array)
	require.True(t, ok)
	assert.Equal(t, value.String("42"), arr.Elements[1])

	v, err = call(t, env, "__native_regex", "replace", value.String(`\d+`), value.String("a1b2"), value.String("#"))
	require.NoError(t, err)
	assert.Equal(t, value.String("a#b#"), v)
}

func TestDateFormat(t *testing.T) {
	env := testEnv(t)
	v, err := call(t, env, "__native_date", "from", value.String("2025-01-02 03:04:05"))
	require.NoError(t, err)
	obj := v.(*value.Object)
	fmtFn, _ := obj.GetOwn("format")
	nf := fmtFn.(*value.NativeFunction)
	out, err := nf.Fn([]value.Value{value.String("yyyy/MM/dd HH:mm:ss")})
	require.NoError(t, err)
	assert.Equal(t, value.String("2025/01/02 03:04:05"), out)
}

func TestFSReadWriteExistsListDir(t *testing.T) {
	env := testEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")

	_, err := call(t, env, "__native_fs", "writeFile", value.String(path), value.String("hi"))
	require.NoError(t, err)

	exists, err := call(t, env, "__native_fs", "exists", value.String(path))
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), exists)

	content, err := call(t, env, "__native_fs", "readFile", value.String(path))
	require.NoError(t, err)
	assert.Equal(t, value.String("hi"), content)

	listed, err := call(t, env, "__native_fs", "listDir", value.String(dir))
	require.NoError(t, err)
	arr := listed.(*value.Array)
	require.Len(t, arr.Elements, 1)
	assert.Equal(t, value.String("a.txt"), arr.Elements[0])
}

func TestOSGetEnvAndPlatform(t *testing.T) {
	env := testEnv(t)
	require.NoError(t, os.Setenv("BXSCRIPT_TEST_VAR", "present"))
	defer os.Unsetenv("BXSCRIPT_TEST_VAR")

	v, err := call(t, env, "__native_os", "getEnv", value.String("BXSCRIPT_TEST_VAR"))
	require.NoError(t, err)
	assert.Equal(t, value.String("present"), v)

	platform, err := call(t, env, "__native_os", "platform")
	require.NoError(t, err)
	assert.NotEqual(t, value.String(""), platform)
}

func TestHTTPGetDeliversResultThroughEventLoop(t *testing.T) {
	env := environment.New()
	loop := eventloop.New()
	Install(env, loop)

	var delivered value.Value
	cb := &value.NativeFunction{Name: "cb", Fn: func(args []value.Value) (value.Value, error) {
		if len(args) > 0 {
			delivered = args[0]
		}
		return value.Null{}, nil
	}}

	loop.AddActiveTask()
	_, err := call(t, env, "__native_http", "get", value.String("http://127.0.0.1:0"), value.Null{}, cb)
	require.NoError(t, err)

	deadline := time.Now().Add(5 * time.Second)
	for !loop.HasPending() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	loop.Dispatch(fnCaller{}, 0)
	require.NotNil(t, delivered)
	obj, ok := delivered.(*value.Object)
	require.True(t, ok)
	_, hasStatus := obj.GetOwn("status")
	assert.True(t, hasStatus)
	loop.RemoveActiveTask()
}

type fnCaller struct{}

func (fnCaller) Call(callback value.Value, args []value.Value) (value.Value, error) {
	nf := callback.(*value.NativeFunction)
	return nf.Fn(args)
}

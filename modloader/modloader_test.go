package modloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/burningli/bxscript/eval"
	"github.com/burningli/bxscript/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T) (*Loader, string, string) {
	t.Helper()
	workDir := t.TempDir()
	execDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(execDir, "lib"), 0o755))
	it := eval.New()
	l := New(it, execDir, workDir)
	it.Loader = l
	return l, workDir, execDir
}

func TestLoadResolvesWorkDirForPlainImport(t *testing.T) {
	l, workDir, _ := newTestLoader(t)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "greet.bx"), []byte(`
		function hello() { return "hi"; }
		let name = "ana";
	`), 0o644))

	mod, err := l.Load([]string{"greet"})
	require.NoError(t, err)
	obj, ok := mod.(*value.Object)
	require.True(t, ok)

	name, ok := obj.GetOwn("name")
	require.True(t, ok)
	assert.Equal(t, value.String("ana"), name)

	fn, ok := obj.GetOwn("hello")
	require.True(t, ok)
	_, ok = fn.(*value.Function)
	assert.True(t, ok)
}

func TestLoadResolvesLibDirForStdImport(t *testing.T) {
	l, _, execDir := newTestLoader(t)
	require.NoError(t, os.WriteFile(filepath.Join(execDir, "lib", "math.bx"), []byte(`
		let pi = 3;
	`), 0o644))

	mod, err := l.Load([]string{"std", "math"})
	require.NoError(t, err)
	obj := mod.(*value.Object)
	pi, ok := obj.GetOwn("pi")
	require.True(t, ok)
	assert.Equal(t, value.Number(3), pi)
}

func TestLoadCachesByAbsolutePath(t *testing.T) {
	l, workDir, _ := newTestLoader(t)
	path := filepath.Join(workDir, "counter.bx")
	require.NoError(t, os.WriteFile(path, []byte(`let n = 1;`), 0o644))

	mod1, err := l.Load([]string{"counter"})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`let n = 999;`), 0o644))

	mod2, err := l.Load([]string{"counter"})
	require.NoError(t, err)
	assert.Same(t, mod1, mod2)
}

func TestLoadMissingFileErrors(t *testing.T) {
	l, _, _ := newTestLoader(t)
	_, err := l.Load([]string{"nope"})
	assert.Error(t, err)
}

func TestLoadPropagatesScriptErrors(t *testing.T) {
	l, workDir, _ := newTestLoader(t)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "bad.bx"), []byte(`missing + 1;`), 0o644))
	_, err := l.Load([]string{"bad"})
	assert.Error(t, err)
}

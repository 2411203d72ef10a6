package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it, mirroring how the teacher's main_test.go
// exercises main-package behavior directly rather than through exec.Command.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestNewInterpreterWiresLoaderAndStdlib(t *testing.T) {
	it, loop, registry := newInterpreter(".")
	assert.NotNil(t, it)
	assert.NotNil(t, loop)
	assert.NotNil(t, registry)
	assert.NotNil(t, it.Loader)
	assert.False(t, registry.HasRegisteredForm())

	_, ok := it.Global.Lookup("__native_math")
	assert.True(t, ok, "stdlib.Install should bind __native_math on the global environment")
}

func TestExecuteFileWithRecoveryPrintsResult(t *testing.T) {
	it, loop, _ := newInterpreter(".")

	out := captureStdout(t, func() {
		executeFileWithRecovery("1 + 2;", it, loop)
	})

	assert.Contains(t, out, "3")
}

func TestExecuteFileWithRecoverySuppressesNullResult(t *testing.T) {
	it, loop, _ := newInterpreter(".")

	out := captureStdout(t, func() {
		executeFileWithRecovery("let x = 1;", it, loop)
	})

	assert.Empty(t, out)
}

func TestDumpASTPrintsProgramTree(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sample.bx"
	require.NoError(t, os.WriteFile(path, []byte("let x = 1 + 2;"), 0o644))

	out := captureStdout(t, func() {
		dumpAST(path)
	})

	assert.Contains(t, out, "Program")
	assert.Contains(t, out, "VariableStmt x")
}

package environment

import (
	"testing"

	"github.com/burningli/bxscript/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareAndLookup(t *testing.T) {
	env := New()
	require.NoError(t, env.Declare("x", value.Number(1)))
	v, ok := env.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestRedeclarationInSameScopeIsError(t *testing.T) {
	env := New()
	require.NoError(t, env.Declare("x", value.Number(1)))
	err := env.Declare("x", value.Number(2))
	require.Error(t, err)
	var nameErr *NameError
	require.ErrorAs(t, err, &nameErr)
}

func TestChildShadowsParentWithoutError(t *testing.T) {
	parent := New()
	require.NoError(t, parent.Declare("x", value.Number(1)))
	child := parent.NewChild()
	require.NoError(t, child.Declare("x", value.Number(2)))

	v, ok := child.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(2), v)

	v, ok = parent.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestAssignUpdatesDeclaringScope(t *testing.T) {
	parent := New()
	require.NoError(t, parent.Declare("x", value.Number(1)))
	child := parent.NewChild()

	require.NoError(t, child.Assign("x", value.Number(99)))

	v, ok := parent.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(99), v)
}

func TestAssignToUndeclaredIsError(t *testing.T) {
	env := New()
	err := env.Assign("never", value.Number(1))
	assert.Error(t, err)
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	env := New()
	_, ok := env.Lookup("nope")
	assert.False(t, ok)
}

package gui

import (
	"testing"

	"github.com/burningli/bxscript/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasRegisteredFormStartsFalse(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.HasRegisteredForm())
}

func TestNativeFormRegistersAndReturnsWidget(t *testing.T) {
	r := NewRegistry()
	fn := r.NativeForm()

	result, err := fn.Fn([]value.Value{value.String("main")})
	require.NoError(t, err)

	widget, ok := result.(*value.Object)
	require.True(t, ok)
	typ, _ := widget.GetOwn("_type")
	assert.Equal(t, value.String("form"), typ)

	assert.True(t, r.HasRegisteredForm())
	assert.Len(t, r.Forms(), 1)
}

func TestMultipleFormsAccumulate(t *testing.T) {
	r := NewRegistry()
	fn := r.NativeForm()
	_, _ = fn.Fn([]value.Value{value.String("a")})
	_, _ = fn.Fn([]value.Value{value.String("b")})
	assert.Len(t, r.Forms(), 2)
}

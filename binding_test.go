package clip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remkop/clip/errs"
)

func TestBindValue_Scalar(t *testing.T) {
	var count int
	binding := BindValue(&count)

	require.NoError(t, binding.Set(3))
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, binding.Get())
}

func TestBindValue_Container(t *testing.T) {
	var files []string
	binding := BindValue(&files)

	require.NoError(t, binding.Set([]string{"a.txt"}))
	require.NoError(t, binding.Set([]string{"a.txt", "b.txt"}),
		"containers are replaced wholesale on every update")
	assert.Equal(t, []string{"a.txt", "b.txt"}, files)
}

func TestBindValue_ConvertibleValue(t *testing.T) {
	var seconds int64
	binding := BindValue(&seconds)

	require.NoError(t, binding.Set(int(42)), "convertible kinds should be widened")
	assert.Equal(t, int64(42), seconds)
}

func TestBindValue_TypeMismatch(t *testing.T) {
	var count int
	binding := BindValue(&count)

	err := binding.Set("not a number")
	assert.Error(t, err)
	assert.Equal(t, 0, count, "a failed Set must not touch the target")
}

func TestBindValue_NilTarget(t *testing.T) {
	binding := BindValue[string](nil)

	assert.Nil(t, binding.Get())
	assert.True(t, errors.Is(binding.Set("x"), errs.ErrNilBinding))
}

func TestBindFunc(t *testing.T) {
	var stored any
	binding := BindFunc(
		func() any { return stored },
		func(value any) error {
			stored = value
			return nil
		},
	)

	require.NoError(t, binding.Set("value"))
	assert.Equal(t, "value", binding.Get())
}

func TestBindFunc_NilCallbacks(t *testing.T) {
	binding := BindFunc(nil, nil)

	assert.Nil(t, binding.Get())
	assert.NoError(t, binding.Set("dropped"), "a nil setter discards updates")
}

package helper_test

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/singleton_go/shared/helper"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	boom := errors.New("boom")
	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestGetTypedValueOf_MismatchNamesTargetType(t *testing.T) {
	_, err := helper.GetTypedValueOf[int](func() (any, error) { return "3", nil })
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)
	assert.Contains(t, err.Error(), "string is not int")

	_, err = helper.GetTypedValueOf[fmt.Stringer](func() (any, error) { return 3, nil })
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)
	assert.Contains(t, err.Error(), "int is not fmt.Stringer")
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestMustGetTypedValue(t *testing.T) {
	assert.Equal(t, "x", helper.MustGetTypedValue[string](func() (any, error) { return "x", nil }))
	assert.Panics(t, func() {
		helper.MustGetTypedValue[string](func() (any, error) { return 1, nil })
	})
}

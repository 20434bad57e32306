package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	echo_errors "github.com/923325596/albedo-boot/errors"
)

func TestRuntimeMsg(t *testing.T) {
	err := echo_errors.WrapRuntimeMsg(echo_errors.ErrRoleNotFound, "cannot find role %s", "staff")
	wrapped := fmt.Errorf("import row 3: %w", err)

	assert.Equal(t, "cannot find role staff", err.Error())
	assert.True(t, errors.Is(wrapped, echo_errors.ErrRoleNotFound))

	msgErr, ok := echo_errors.AsRuntimeMsg(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "cannot find role staff", msgErr.Msg)

	_, ok = echo_errors.AsRuntimeMsg(echo_errors.ErrDatabaseOperation)
	assert.False(t, ok)
}

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/923325596/albedo-boot/errors"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/util"
)

func TestValidationUtil(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("ValidUser", func(t *testing.T) {
		err := v.ValidateUser(model.UserVo{LoginID: "alice", Name: "Alice", Password: "secret1", Email: "a@b.io"})
		assert.NoError(t, err)
	})

	t.Run("MissingFields", func(t *testing.T) {
		err := v.ValidateUser(model.UserVo{ID: "u1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, echo_errors.ErrInvalidUserData)
		msg, ok := echo_errors.AsRuntimeMsg(err)
		require.True(t, ok)
		assert.Contains(t, msg.Msg, "LoginID is required")
		assert.Contains(t, msg.Msg, "Name is required")
	})

	t.Run("NewUserNeedsPassword", func(t *testing.T) {
		err := v.ValidateUser(model.UserVo{LoginID: "alice", Name: "Alice"})
		assert.ErrorIs(t, err, echo_errors.ErrInvalidUserData)
	})

	t.Run("BadStatus", func(t *testing.T) {
		err := v.ValidateRole(model.RoleVo{Name: "ops", Status: 7})
		assert.ErrorIs(t, err, echo_errors.ErrInvalidRoleData)
	})

	t.Run("OrgOwnParent", func(t *testing.T) {
		err := v.ValidateOrg(model.OrgVo{ID: "o1", ParentID: "o1", Name: "HQ"})
		assert.ErrorIs(t, err, echo_errors.ErrInvalidOrgData)
	})

	t.Run("Password", func(t *testing.T) {
		assert.Error(t, v.ValidatePassword("123"))
		assert.NoError(t, v.ValidatePassword("123456"))
	})
}

func TestPasswordHelpers(t *testing.T) {
	hash, err := util.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, util.CheckPassword(hash, "secret1"))
	assert.False(t, util.CheckPassword(hash, "secret2"))

	key, err := util.NewResetKey()
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9]{20}$`, key)
}

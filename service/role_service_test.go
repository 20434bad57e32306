package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/923325596/albedo-boot/errors"
	"github.com/923325596/albedo-boot/model"
)

func TestRoleService(t *testing.T) {
	f := newFixture(t, nil)
	f.seedAdmin(t)
	hq := f.org(t, "HQ", "")

	role, err := f.roles.Save(f.ctx, model.RoleVo{Name: "staff", Code: "STAFF", OrgID: hq.ID, Sort: 2})
	require.NoError(t, err)
	other := f.role(t, "auditor")

	t.Run("FindOneVo", func(t *testing.T) {
		vo, err := f.roles.FindOneVo(f.ctx, role.ID)
		require.NoError(t, err)
		require.NotNil(t, vo)
		assert.Equal(t, "STAFF", vo.Code)
		assert.Equal(t, "HQ", vo.OrgName)
		assert.Equal(t, "Administrator", vo.CreatorName)

		missing, err := f.roles.FindOneVo(f.ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("NameIsUnique", func(t *testing.T) {
		_, err := f.roles.Save(f.ctx, model.RoleVo{Name: "staff"})
		assert.ErrorIs(t, err, echo_errors.ErrRoleConflict)

		_, err = f.roles.Save(f.ctx, model.RoleVo{ID: other.ID, Name: "staff"})
		assert.ErrorIs(t, err, echo_errors.ErrRoleConflict)

		renamed, err := f.roles.Save(f.ctx, model.RoleVo{ID: role.ID, Name: "staff", Code: "ST"})
		require.NoError(t, err)
		assert.Equal(t, role.ID, renamed.ID)
	})

	t.Run("FindOneByName", func(t *testing.T) {
		found, err := f.roles.FindOneByName(f.ctx, "auditor")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, other.ID, found.ID)

		missing, err := f.roles.FindOneByName(f.ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("LockOrUnLock", func(t *testing.T) {
		require.NoError(t, f.roles.LockOrUnLock(f.ctx, []string{role.ID}))
		var stored model.Role
		require.NoError(t, f.db.Where("id = ?", role.ID).Take(&stored).Error)
		assert.Equal(t, model.FlagLocked, stored.Status)

		require.NoError(t, f.roles.LockOrUnLock(f.ctx, []string{role.ID}))
		require.NoError(t, f.db.Where("id = ?", role.ID).Take(&stored).Error)
		assert.Equal(t, model.FlagNormal, stored.Status)
	})

	t.Run("FindPage", func(t *testing.T) {
		pm := &model.PageModel[model.Role]{}
		require.NoError(t, f.roles.FindPage(f.ctx, pm))
		require.Len(t, pm.Data, 2)
		assert.Equal(t, "auditor", pm.Data[0].Name)

		pm = &model.PageModel[model.Role]{QueryConditionJSON: `[{"fieldName":"code","operate":"eq","value":"ST"}]`}
		require.NoError(t, f.roles.FindPage(f.ctx, pm))
		require.Len(t, pm.Data, 1)
		assert.Equal(t, role.ID, pm.Data[0].ID)
	})

	t.Run("SelectListByUserIDAndDelete", func(t *testing.T) {
		u := f.user(t, model.UserVo{LoginID: "alice", RoleIDList: []string{role.ID, other.ID}})
		roles, err := f.roles.SelectListByUserID(f.ctx, u.ID)
		require.NoError(t, err)
		assert.Len(t, roles, 2)

		n, err := f.roles.DeleteBatchIDs(f.ctx, []string{other.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		roles, err = f.roles.SelectListByUserID(f.ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, roles, 1)
		assert.Equal(t, role.ID, roles[0].ID)
	})
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
)

func TestUserVoRoundTrip(t *testing.T) {
	logger.InitNopLogger()
	now := time.Now()
	in := model.UserVo{
		ID:               "u1",
		LoginID:          "alice",
		Password:         "secret123",
		Name:             "Alice",
		Email:            "alice@example.com",
		Phone:            "555-0100",
		Avatar:           "a.png",
		OrgID:            "o1",
		OrgName:          "HQ",
		LangKey:          "en",
		Activated:        true,
		ResetKey:         "123456",
		RoleIDList:       []string{"r1", "r2"},
		RoleNames:        []string{"staff", "ops"},
		Status:           model.FlagLocked,
		Description:      "first user",
		CreatorName:      "Administrator",
		ModifierName:     "Administrator",
		CreatedDate:      now,
		LastModifiedDate: now,
	}

	var user model.User
	copyVoToUser(in, &user)
	var out model.UserVo
	require.NoError(t, copyBeanToVo(&user, &out))

	// id, credentials and display fields are filled by the server
	dropServerFields := func(vo *model.UserVo) {
		vo.ID, vo.Password, vo.ResetKey, vo.Activated = "", "", "", false
		vo.OrgName, vo.RoleNames = "", nil
		vo.CreatorName, vo.ModifierName = "", ""
		vo.CreatedDate, vo.LastModifiedDate = time.Time{}, time.Time{}
	}
	dropServerFields(&in)
	dropServerFields(&out)
	assert.Equal(t, in, out)
}

func TestRoleVoRoundTrip(t *testing.T) {
	in := model.RoleVo{
		ID:          "r1",
		Name:        "staff",
		Code:        "STAFF",
		OrgID:       "o1",
		OrgName:     "HQ",
		Sort:        3,
		Status:      model.FlagNormal,
		Description: "default role",
		CreatorName: "Administrator",
	}

	var role model.Role
	copyVoToRole(in, &role)
	var out model.RoleVo
	require.NoError(t, copyBeanToVo(&role, &out))

	in.ID, in.OrgName, in.CreatorName = "", "", ""
	out.CreatorName, out.ModifierName = "", ""
	assert.Equal(t, in, out)
}

func TestOrgVoRoundTrip(t *testing.T) {
	in := model.OrgVo{
		Name:        "Sales",
		Code:        "S",
		Type:        "dept",
		Sort:        2,
		Status:      model.FlagLocked,
		Description: "sales team",
	}

	var org model.Org
	copyVoToOrg(in, &org)
	var out model.OrgVo
	require.NoError(t, copyBeanToVo(&org, &out))

	out.CreatorName, out.ModifierName = "", ""
	assert.Equal(t, in, out)
}

func TestUserVoOf(t *testing.T) {
	logger.InitNopLogger()
	user := &model.User{LoginID: "alice", Password: "$2a$10$hash", Org: &model.Org{}}
	user.ID = "u1"
	user.Org.Name = "HQ"
	user.Roles = []model.Role{{Name: "staff"}}
	user.Roles[0].ID = "r1"

	vo, err := UserVoOf(user)
	require.NoError(t, err)
	assert.Empty(t, vo.Password)
	assert.Equal(t, "HQ", vo.OrgName)
	assert.Equal(t, []string{"r1"}, vo.RoleIDList)
	assert.Equal(t, []string{"staff"}, vo.RoleNames)
}

func TestCopyBeanToVoFailure(t *testing.T) {
	logger.InitNopLogger()

	var vo model.UserVo
	assert.ErrorIs(t, copyBeanToVo(nil, &vo), echo_errors.ErrVoConversion)
	assert.ErrorIs(t, copyBeanToVo(&model.User{}, vo), echo_errors.ErrVoConversion)

	pm := &model.PageModel[model.User]{Data: []model.User{{LoginID: "alice"}}}
	_, err := mapPage(pm, func(*model.User) (model.UserVo, error) {
		return model.UserVo{}, echo_errors.ErrVoConversion
	})
	assert.ErrorIs(t, err, echo_errors.ErrVoConversion)
}

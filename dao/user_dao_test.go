package dao_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/923325596/albedo-boot/dao"
	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/query"
	"github.com/923325596/albedo-boot/test/testdb"
)

func newUser(id, login string) *model.User {
	u := &model.User{LoginID: login, Name: login, Activated: true}
	u.ID = id
	return u
}

func TestUserDAO(t *testing.T) {
	logger.InitNopLogger()
	db := testdb.NewSQLite(t)
	userDAO := dao.NewUserDAO(db)
	ctx := model.WithActor(context.Background(), "admin-id")

	alice := newUser("", "alice")
	require.NoError(t, userDAO.Create(ctx, alice))
	require.NoError(t, userDAO.Create(ctx, newUser("u2", "bob")))

	t.Run("CreateFillsIDAndAudit", func(t *testing.T) {
		assert.Len(t, alice.ID, 32)
		assert.Equal(t, "admin-id", alice.CreatedBy)
		assert.Equal(t, "admin-id", alice.LastModifiedBy)
		assert.False(t, alice.CreatedDate.IsZero())
	})

	t.Run("DuplicateLoginConflicts", func(t *testing.T) {
		err := userDAO.Create(ctx, newUser("", "alice"))
		assert.ErrorIs(t, err, echo_errors.ErrUserConflict)
	})

	t.Run("FindOneByLoginID", func(t *testing.T) {
		got, err := userDAO.FindOneByLoginID(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, alice.ID, got.ID)

		missing, err := userDAO.FindOneByLoginID(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("FindByIDMissingIsNil", func(t *testing.T) {
		got, err := userDAO.FindByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("UpdateKeepsCreatorAndBumpsVersion", func(t *testing.T) {
		got, err := userDAO.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		got.Name = "Alice A."
		require.NoError(t, userDAO.Update(model.WithActor(context.Background(), "editor"), got))

		reloaded, err := userDAO.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice A.", reloaded.Name)
		assert.Equal(t, "admin-id", reloaded.CreatedBy)
		assert.Equal(t, "editor", reloaded.LastModifiedBy)
		assert.Equal(t, 1, reloaded.Version)
	})

	t.Run("ExistsLoginID", func(t *testing.T) {
		exists, err := userDAO.ExistsLoginID(ctx, "alice", "")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = userDAO.ExistsLoginID(ctx, "alice", alice.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("ReplaceRoles", func(t *testing.T) {
		require.NoError(t, userDAO.ReplaceRoles(ctx, "u2", []string{"r1", "r2", "r2"}))
		require.NoError(t, userDAO.ReplaceRoles(ctx, "u2", []string{"r3"}))

		ids, err := userDAO.FindRoleIDs(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, []string{"r3"}, ids)
	})

	t.Run("SoftDelete", func(t *testing.T) {
		require.NoError(t, userDAO.SoftDelete(ctx, []string{"u2"}))
		got, err := userDAO.FindByID(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, model.FlagDelete, got.Status)
	})

	t.Run("FindPage", func(t *testing.T) {
		spec, err := query.BySearchQueryCondition[model.User](nil, query.Ne(model.FieldStatus, model.FlagDelete))
		require.NoError(t, err)
		pm := &model.PageModel[model.User]{Page: 0, Size: 0}
		require.NoError(t, userDAO.FindPage(ctx, spec, pm))
		assert.Equal(t, int64(1), pm.Total)
		assert.Equal(t, 1, pm.Page)
		assert.Equal(t, model.DefaultPageSize, pm.Size)
		require.Len(t, pm.Data, 1)
		assert.Equal(t, "alice", pm.Data[0].LoginID)
	})

	t.Run("DeleteByIDsRemovesRoleLinks", func(t *testing.T) {
		n, err := userDAO.DeleteByIDs(ctx, []string{"u2", "missing"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		ids, err := userDAO.FindRoleIDs(ctx, "u2")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestTransactor(t *testing.T) {
	logger.InitNopLogger()
	db := testdb.NewSQLite(t)
	userDAO := dao.NewUserDAO(db)
	tx := dao.NewTransactor(db)
	ctx := context.Background()

	t.Run("RollbackOnError", func(t *testing.T) {
		boom := errors.New("boom")
		err := tx.RunInTx(ctx, func(ctx context.Context) error {
			require.NoError(t, userDAO.Create(ctx, newUser("t1", "temp")))
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := userDAO.FindByID(ctx, "t1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("NestedCallsJoin", func(t *testing.T) {
		err := tx.RunInTx(ctx, func(ctx context.Context) error {
			if err := userDAO.Create(ctx, newUser("t2", "outer")); err != nil {
				return err
			}
			return tx.RunInTx(ctx, func(ctx context.Context) error {
				return userDAO.Create(ctx, newUser("t3", "inner"))
			})
		})
		require.NoError(t, err)

		users, err := userDAO.FindByIDs(ctx, []string{"t2", "t3"})
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestUserDAORoleLinkFailures(t *testing.T) {
	logger.InitNopLogger()
	db, sqlMock := testdb.NewMockDB(t)
	userDAO := dao.NewUserDAO(db)
	ctx := context.Background()

	t.Run("ReplaceRoles", func(t *testing.T) {
		sqlMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "sys_user_role_t"`)).
			WillReturnError(errors.New("connection lost"))

		err := userDAO.ReplaceRoles(ctx, "u1", []string{"r1"})
		assert.ErrorIs(t, err, echo_errors.ErrUserRoleLink)
		assert.ErrorIs(t, err, echo_errors.ErrDatabaseOperation)
	})

	t.Run("FindRoleIDs", func(t *testing.T) {
		sqlMock.ExpectQuery(regexp.QuoteMeta(`SELECT "role_id" FROM "sys_user_role_t"`)).
			WillReturnError(errors.New("connection lost"))

		ids, err := userDAO.FindRoleIDs(ctx, "u1")
		assert.Nil(t, ids)
		assert.ErrorIs(t, err, echo_errors.ErrUserRoleLink)
	})

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

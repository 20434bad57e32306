package query_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	echo_errors "github.com/923325596/albedo-boot/errors"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/query"
	"github.com/923325596/albedo-boot/test/testdb"
)

func seedUsers(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []struct {
		id, login, name, org string
		status               int
	}{
		{"1", "admin", "Administrator", "o1", model.FlagNormal},
		{"u2", "alice", "Alice", "o1", model.FlagNormal},
		{"u3", "bob", "Bob", "o2", model.FlagLocked},
		{"u4", "carol", "Carol", "", model.FlagDelete},
	}
	for _, r := range rows {
		u := &model.User{LoginID: r.login, Name: r.name, OrgID: r.org}
		u.ID = r.id
		u.Status = r.status
		require.NoError(t, db.Create(u).Error)
	}
}

func find(t *testing.T, db *gorm.DB, spec *query.Specification[model.User]) []string {
	t.Helper()
	var users []model.User
	require.NoError(t, db.Model(&model.User{}).Scopes(spec.Scope(), spec.OrderScope()).Find(&users).Error)
	logins := make([]string, 0, len(users))
	for _, u := range users {
		logins = append(logins, u.LoginID)
	}
	return logins
}

func drySQL(t *testing.T, db *gorm.DB, spec *query.Specification[model.User]) string {
	t.Helper()
	stmt := db.Session(&gorm.Session{DryRun: true}).Model(&model.User{}).
		Scopes(spec.Scope(), spec.OrderScope()).Find(&[]model.User{}).Statement
	return stmt.SQL.String()
}

func TestBySearchQueryCondition(t *testing.T) {
	db := testdb.NewSQLite(t)
	seedUsers(t, db)

	enforced := []query.Condition{
		query.Ne(model.FieldStatus, model.FlagDelete),
		query.Ne(model.FieldID, model.ReservedAdminID),
	}

	t.Run("EmptyConditionsStillEnforced", func(t *testing.T) {
		spec, err := query.BySearchQueryCondition[model.User](nil, enforced...)
		require.NoError(t, err)
		spec.OrderBy("loginId", false)

		assert.Equal(t, []string{"alice", "bob"}, find(t, db, spec))
		assert.Len(t, spec.EnforcedConditions(), 2)
	})

	t.Run("CallerCannotOverrideEnforced", func(t *testing.T) {
		spec, err := query.BySearchQueryCondition[model.User](
			[]query.Condition{query.Eq("id", "1")}, enforced...)
		require.NoError(t, err)

		assert.Empty(t, find(t, db, spec))
	})

	t.Run("OrGroupIsAndedToBase", func(t *testing.T) {
		spec, err := query.BySearchQueryCondition[model.User](
			[]query.Condition{query.Eq("orgId", "o1")}, enforced...)
		require.NoError(t, err)
		require.NoError(t, spec.OrAll([]query.Condition{
			query.Eq("loginId", "alice"),
			query.Eq("loginId", "bob"),
		}))

		assert.Equal(t, []string{"alice"}, find(t, db, spec))
	})

	t.Run("SingleOrConditionDoesNotWidenBase", func(t *testing.T) {
		spec, err := query.BySearchQueryCondition[model.User](
			[]query.Condition{query.Eq("orgId", "o2")}, enforced...)
		require.NoError(t, err)
		require.NoError(t, spec.OrAll([]query.Condition{query.Eq("loginId", "alice")}))

		assert.Empty(t, find(t, db, spec))
	})

	t.Run("LikeWrapsValue", func(t *testing.T) {
		spec, err := query.BySearchQueryCondition[model.User](
			[]query.Condition{query.Like("name", "li")})
		require.NoError(t, err)

		assert.Equal(t, []string{"alice"}, find(t, db, spec))
	})

	t.Run("InAndNotIn", func(t *testing.T) {
		spec, err := query.BySearchQueryCondition[model.User]([]query.Condition{
			query.In("login_id", []string{"alice", "bob", "carol"}),
			{FieldName: "loginId", Operate: query.OpNotIn, Value: "bob,carol"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"alice"}, find(t, db, spec))
	})

	t.Run("IsNullOperators", func(t *testing.T) {
		spec, err := query.BySearchQueryCondition[model.User]([]query.Condition{
			{FieldName: "resetDate", Operate: query.OpIsNull},
			{FieldName: "orgId", Operate: query.OpIsNotNull},
			{FieldName: "status", Operate: query.OpBetween, Value: []interface{}{0, 0}},
		})
		require.NoError(t, err)
		spec.OrderBy("login_id", true)

		// carol's empty org is not NULL but her status is out of range
		assert.Equal(t, []string{"alice", "admin"}, find(t, db, spec))
	})

	t.Run("AttrTypeCoercion", func(t *testing.T) {
		spec, err := query.BySearchQueryCondition[model.User]([]query.Condition{
			{FieldName: "status", AttrType: query.AttrInteger, Operate: query.OpEq, Value: "1"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"bob"}, find(t, db, spec))
	})
}

func TestProgrammaticConditionsAreNeverSkipped(t *testing.T) {
	db := testdb.NewSQLite(t)
	seedUsers(t, db)

	t.Run("BlankValueStillFilters", func(t *testing.T) {
		for _, login := range []string{"", "   "} {
			spec, err := query.BySearchQueryCondition[model.User](
				[]query.Condition{query.Eq(model.FieldLoginID, login)})
			require.NoError(t, err)
			assert.Len(t, spec.Exprs(), 1)
			assert.Empty(t, find(t, db, spec))
		}
	})

	t.Run("BlankEnforcedValueKept", func(t *testing.T) {
		spec, err := query.BySearchQueryCondition[model.User](nil, query.Ne(model.FieldOrgID, ""))
		require.NoError(t, err)
		assert.Len(t, spec.EnforcedConditions(), 1)
		spec.OrderBy("loginId", false)
		assert.Equal(t, []string{"admin", "alice", "bob"}, find(t, db, spec))
	})

	t.Run("EmptyOrGroupMatchesNothing", func(t *testing.T) {
		spec, err := query.New[model.User]()
		require.NoError(t, err)
		require.NoError(t, spec.OrAll([]query.Condition{query.In(model.FieldLoginID, []string{})}))
		assert.Empty(t, find(t, db, spec))
	})

	cases := map[string]query.Condition{
		"MissingValue":    {FieldName: "loginId", Operate: query.OpEq},
		"MissingField":    {Operate: query.OpEq, Value: "alice"},
		"MissingOperator": {FieldName: "loginId", Value: "alice"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			spec, err := query.New[model.User]()
			require.NoError(t, err)
			assert.ErrorIs(t, spec.Enforce(c), echo_errors.ErrInvalidQueryCondition)
			assert.ErrorIs(t, spec.And(c), echo_errors.ErrInvalidQueryCondition)
			assert.ErrorIs(t, spec.OrAll([]query.Condition{c}), echo_errors.ErrInvalidQueryCondition)
			assert.Empty(t, spec.Exprs())
		})
	}
}

func TestSpecificationSQL(t *testing.T) {
	db := testdb.NewSQLite(t)

	spec, err := query.BySearchQueryCondition[model.User]([]query.Condition{
		{FieldName: "name", Operate: query.OpNotLike, Value: "x%"},
		{FieldName: "status", Operate: query.OpBetween, Value: "0,1", AttrType: query.AttrInteger},
	}, query.Ne(model.FieldID, model.ReservedAdminID))
	require.NoError(t, err)
	require.NoError(t, spec.OrAll([]query.Condition{
		query.Eq("loginId", "a"),
		query.Eq("loginId", "b"),
	}))

	sql := drySQL(t, db, spec)
	assert.Contains(t, sql, "NOT LIKE")
	assert.Contains(t, sql, "BETWEEN")
	assert.Contains(t, sql, "OR")
	assert.Regexp(t, "<> .* AND .* NOT LIKE .* AND .*BETWEEN.* AND \\(.* OR .*\\)", sql)
}

func TestInvalidConditions(t *testing.T) {
	cases := map[string][]query.Condition{
		"UnknownOperator": {{FieldName: "name", Operate: "startsWith", Value: "a"}},
		"UnknownField":    {{FieldName: "nickname", Operate: query.OpEq, Value: "a"}},
		"BadCoercion":     {{FieldName: "status", AttrType: query.AttrInteger, Operate: query.OpEq, Value: "abc"}},
		"BetweenArity":    {{FieldName: "status", Operate: query.OpBetween, Value: []interface{}{1}}},
		"UnknownAttrType": {{FieldName: "status", AttrType: "Money", Operate: query.OpEq, Value: 1}},
	}
	for name, conds := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := query.BySearchQueryCondition[model.User](conds)
			require.Error(t, err)
			assert.True(t, errors.Is(err, echo_errors.ErrInvalidQueryCondition))
			_, ok := echo_errors.AsRuntimeMsg(err)
			assert.True(t, ok)
		})
	}

	t.Run("UnknownSortField", func(t *testing.T) {
		spec, err := query.New[model.User]()
		require.NoError(t, err)
		assert.ErrorIs(t, spec.OrderBy("password_hash2", false), echo_errors.ErrInvalidQueryCondition)
	})

	t.Run("UnknownOrField", func(t *testing.T) {
		spec, err := query.New[model.User]()
		require.NoError(t, err)
		err = spec.OrAll([]query.Condition{query.Eq("creator", "x")})
		assert.ErrorIs(t, err, echo_errors.ErrInvalidQueryCondition)
	})
}

func TestParseConditions(t *testing.T) {
	t.Run("EmptyPayload", func(t *testing.T) {
		for _, payload := range []string{"", "  ", "null", "[]"} {
			conds, err := query.ParseConditions(payload)
			require.NoError(t, err)
			assert.Empty(t, conds)
		}
	})

	t.Run("MissingPartsAreSkipped", func(t *testing.T) {
		conds, err := query.ParseConditions(`[
			{"fieldName":"name"},
			{"operate":"eq","value":"x"},
			{"fieldName":"name","operate":"eq","value":null},
			{"fieldName":"name","operate":"like","value":""},
			null,
			{"fieldName":"orgId","operate":"isNull"},
			{"fieldName":"loginId","operate":"eq","value":"alice","attrType":"String"}
		]`)
		require.NoError(t, err)
		require.Len(t, conds, 2)
		assert.Equal(t, query.OpIsNull, conds[0].Operate)
		assert.Equal(t, "alice", conds[1].Value)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := query.ParseConditions(`[{"fieldName":`)
		assert.ErrorIs(t, err, echo_errors.ErrInvalidQueryCondition)
	})

	t.Run("UnknownOperatorInPayloadFails", func(t *testing.T) {
		_, err := query.BuildSpecification[model.User](`[{"fieldName":"name","operate":"regex","value":"a"}]`)
		assert.ErrorIs(t, err, echo_errors.ErrInvalidQueryCondition)
	})

	t.Run("BuildSpecificationKeepsEnforced", func(t *testing.T) {
		spec, err := query.BuildSpecification[model.User]("",
			query.Ne(model.FieldID, model.ReservedAdminID))
		require.NoError(t, err)
		assert.Len(t, spec.Exprs(), 1)
		assert.Equal(t, model.ReservedAdminID, spec.EnforcedConditions()[0].Value)
	})
}

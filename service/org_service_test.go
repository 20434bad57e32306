package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/923325596/albedo-boot/errors"
	"github.com/923325596/albedo-boot/model"
	mock_util "github.com/923325596/albedo-boot/test/mock"
)

func loadOrg(t *testing.T, f *fixture, id string) model.Org {
	t.Helper()
	var org model.Org
	require.NoError(t, f.db.Where("id = ?", id).Take(&org).Error)
	return org
}

func TestOrgService_Tree(t *testing.T) {
	f := newFixture(t, nil)
	f.seedAdmin(t)

	hq := f.org(t, "HQ", "")
	sales := f.org(t, "Sales", hq.ID)
	east := f.org(t, "East", sales.ID)
	ops := f.org(t, "Ops", "")

	t.Run("Paths", func(t *testing.T) {
		assert.Equal(t, model.TreeRootID, hq.ParentID)
		assert.Equal(t, "0,", hq.ParentIDs)
		assert.Equal(t, "0,"+hq.ID+",", sales.ParentIDs)
		assert.Equal(t, "0,"+hq.ID+","+sales.ID+",", east.ParentIDs)
	})

	t.Run("LeafFlags", func(t *testing.T) {
		assert.False(t, loadOrg(t, f, hq.ID).Leaf)
		assert.False(t, loadOrg(t, f, sales.ID).Leaf)
		assert.True(t, loadOrg(t, f, east.ID).Leaf)
		assert.True(t, loadOrg(t, f, ops.ID).Leaf)
	})

	t.Run("FindOneVo", func(t *testing.T) {
		vo, err := f.orgs.FindOneVo(f.ctx, sales.ID)
		require.NoError(t, err)
		require.NotNil(t, vo)
		assert.Equal(t, "HQ", vo.ParentName)
		assert.Equal(t, "Administrator", vo.CreatorName)

		missing, err := f.orgs.FindOneVo(f.ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("DescendantsFromPath", func(t *testing.T) {
		ids, err := f.orgs.FindDescendantIDs(f.ctx, hq.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{sales.ID, east.ID}, ids)
	})

	t.Run("MoveSubtree", func(t *testing.T) {
		moved, err := f.orgs.Save(f.ctx, model.OrgVo{ID: sales.ID, Name: "Sales", ParentID: ops.ID})
		require.NoError(t, err)
		assert.Equal(t, "0,"+ops.ID+",", moved.ParentIDs)
		assert.Equal(t, "0,"+ops.ID+","+sales.ID+",", loadOrg(t, f, east.ID).ParentIDs)
		assert.True(t, loadOrg(t, f, hq.ID).Leaf)
		assert.False(t, loadOrg(t, f, ops.ID).Leaf)
	})

	t.Run("CannotMoveBelowDescendant", func(t *testing.T) {
		_, err := f.orgs.Save(f.ctx, model.OrgVo{ID: sales.ID, Name: "Sales", ParentID: east.ID})
		assert.ErrorIs(t, err, echo_errors.ErrInvalidOrgData)

		_, err = f.orgs.Save(f.ctx, model.OrgVo{ID: sales.ID, Name: "Sales", ParentID: sales.ID})
		assert.ErrorIs(t, err, echo_errors.ErrInvalidOrgData)
	})

	t.Run("UnknownParent", func(t *testing.T) {
		_, err := f.orgs.Save(f.ctx, model.OrgVo{Name: "Lost", ParentID: "nope"})
		assert.ErrorIs(t, err, echo_errors.ErrOrgNotFound)
	})

	t.Run("FindOneByName", func(t *testing.T) {
		org, err := f.orgs.FindOneByName(f.ctx, "Ops")
		require.NoError(t, err)
		require.NotNil(t, org)
		assert.Equal(t, ops.ID, org.ID)
	})

	t.Run("FindPage", func(t *testing.T) {
		pm := &model.PageModel[model.Org]{QueryConditionJSON: `[{"fieldName":"leaf","operate":"eq","value":true,"attrType":"Boolean"}]`}
		require.NoError(t, f.orgs.FindPage(f.ctx, pm))
		names := make([]string, 0, len(pm.Data))
		for _, o := range pm.Data {
			names = append(names, o.Name)
		}
		assert.ElementsMatch(t, []string{"HQ", "East"}, names)
	})

	t.Run("DeleteRefusesParents", func(t *testing.T) {
		_, err := f.orgs.DeleteBatchIDs(f.ctx, []string{sales.ID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, echo_errors.ErrOrgHasChildren))

		n, err := f.orgs.DeleteBatchIDs(f.ctx, []string{east.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.True(t, loadOrg(t, f, sales.ID).Leaf)
	})
}

func TestOrgService_Graph(t *testing.T) {
	graph := new(mock_util.MockOrgGraph)
	f := newFixture(t, graph)

	graph.On("Upsert", mock.Anything, mock.AnythingOfType("model.Org")).Return(nil)
	hq := f.org(t, "HQ", "")
	graph.AssertCalled(t, "Upsert", mock.Anything, mock.MatchedBy(func(o model.Org) bool { return o.ID == hq.ID }))

	t.Run("DescendantsFromGraph", func(t *testing.T) {
		graph.On("DescendantIDs", mock.Anything, hq.ID).Return([]string{"g1", "g2"}, nil).Once()
		ids, err := f.orgs.FindDescendantIDs(f.ctx, hq.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"g1", "g2"}, ids)
	})

	t.Run("FallbackOnGraphError", func(t *testing.T) {
		child := f.org(t, "Child", hq.ID)
		graph.On("DescendantIDs", mock.Anything, hq.ID).Return(nil, errors.New("neo4j down")).Once()
		ids, err := f.orgs.FindDescendantIDs(f.ctx, hq.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{child.ID}, ids)
	})

	t.Run("UpsertFailureDoesNotFailSave", func(t *testing.T) {
		failing := new(mock_util.MockOrgGraph)
		f2 := newFixture(t, failing)
		failing.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("neo4j down"))
		org, err := f2.orgs.Save(f2.ctx, model.OrgVo{Name: "Solo"})
		require.NoError(t, err)
		assert.NotEmpty(t, org.ID)
	})

	t.Run("DeleteMirrored", func(t *testing.T) {
		leaf := f.org(t, "Leaf", "")
		graph.On("Delete", mock.Anything, []string{leaf.ID}).Return(nil).Once()
		_, err := f.orgs.DeleteBatchIDs(f.ctx, []string{leaf.ID})
		require.NoError(t, err)
		graph.AssertExpectations(t)
	})
}

// test/mock/org_graph.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/923325596/albedo-boot/dao"
	"github.com/923325596/albedo-boot/model"
)

// MockOrgGraph is a mock implementation of dao.OrgGraph
type MockOrgGraph struct {
	mock.Mock
}

var _ dao.OrgGraph = &MockOrgGraph{}

func (m *MockOrgGraph) Upsert(ctx context.Context, org model.Org) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrgGraph) Delete(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockOrgGraph) DescendantIDs(ctx context.Context, id string) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

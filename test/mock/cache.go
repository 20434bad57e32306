// test/mock/cache.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/923325596/albedo-boot/util"
)

// MockCache is a mock implementation of util.Cache
type MockCache struct {
	mock.Mock
}

var _ util.Cache = &MockCache{}

func (m *MockCache) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Put(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockCache) Evict(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockCacheManager hands out the same cache for every name
type MockCacheManager struct {
	Cache util.Cache
}

func (m *MockCacheManager) GetCache(name string) util.Cache {
	return m.Cache
}

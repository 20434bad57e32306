package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/923325596/albedo-boot/dao"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/service"
	"github.com/923325596/albedo-boot/test/testdb"
	"github.com/923325596/albedo-boot/util"
)

// countingCache records evictions per key on top of a real LRU cache.
type countingCache struct {
	util.Cache
	mu     sync.Mutex
	evicts map[string]int
}

func (c *countingCache) Evict(ctx context.Context, key string) error {
	c.mu.Lock()
	c.evicts[key]++
	c.mu.Unlock()
	return c.Cache.Evict(ctx, key)
}

func (c *countingCache) reset() {
	c.mu.Lock()
	c.evicts = make(map[string]int)
	c.mu.Unlock()
}

func (c *countingCache) count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evicts[key]
}

type cacheManager struct {
	cache *countingCache
}

func (m cacheManager) GetCache(string) util.Cache {
	return m.cache
}

type fixture struct {
	db    *gorm.DB
	ctx   context.Context
	cache *countingCache
	bus   *util.EventBus
	users *service.UserService
	roles *service.RoleService
	orgs  *service.OrgService
}

func newFixture(t *testing.T, graph dao.OrgGraph) *fixture {
	t.Helper()
	logger.InitNopLogger()
	db := testdb.NewSQLite(t)

	cache := &countingCache{Cache: util.NewLRUCache(model.UsersByLoginCache, 64, time.Minute), evicts: map[string]int{}}
	validationUtil := util.NewValidationUtil()
	bus := util.NewEventBus()
	tx := dao.NewTransactor(db)
	resolver := dao.NewAuditResolver(db)
	orgDAO := dao.NewOrgDAO(db)

	orgs := service.NewOrgService(orgDAO, graph, resolver, tx, validationUtil, bus)
	roles := service.NewRoleService(dao.NewRoleDAO(db), orgDAO, resolver, tx, validationUtil, bus)
	userRepo := dao.NewCachedUserRepository(dao.NewUserDAO(db), cacheManager{cache: cache})
	users := service.NewUserService(userRepo, roles, orgs, resolver, tx, validationUtil, bus)

	return &fixture{
		db:    db,
		ctx:   model.WithActor(context.Background(), model.ReservedAdminID),
		cache: cache,
		bus:   bus,
		users: users,
		roles: roles,
		orgs:  orgs,
	}
}

func (f *fixture) seedAdmin(t *testing.T) {
	t.Helper()
	admin := &model.User{LoginID: "admin", Name: "Administrator"}
	admin.ID = model.ReservedAdminID
	require.NoError(t, f.db.Create(admin).Error)
}

func (f *fixture) role(t *testing.T, name string) *model.Role {
	t.Helper()
	role, err := f.roles.Save(f.ctx, model.RoleVo{Name: name})
	require.NoError(t, err)
	return role
}

func (f *fixture) org(t *testing.T, name, parentID string) *model.Org {
	t.Helper()
	org, err := f.orgs.Save(f.ctx, model.OrgVo{Name: name, ParentID: parentID})
	require.NoError(t, err)
	return org
}

func (f *fixture) user(t *testing.T, vo model.UserVo) *model.User {
	t.Helper()
	if vo.Password == "" {
		vo.Password = "secret123"
	}
	if vo.Name == "" {
		vo.Name = vo.LoginID
	}
	user, err := f.users.Save(f.ctx, vo)
	require.NoError(t, err)
	return user
}

func (f *fixture) userCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&model.User{}).Count(&n).Error)
	return n
}

// dao/cached_user_repository.go
package dao

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/util"
)

// CachedUserRepository serves lookups by login from the usersByLogin cache and
// evicts the touched logins on every write. Each distinct login is evicted once
// per call.
type CachedUserRepository struct {
	UserRepository
	cache util.Cache
}

var _ UserRepository = &CachedUserRepository{}

func NewCachedUserRepository(inner UserRepository, cacheManager util.CacheManager) *CachedUserRepository {
	return &CachedUserRepository{
		UserRepository: inner,
		cache:          cacheManager.GetCache(model.UsersByLoginCache),
	}
}

// FindOneByLoginID reads through the cache. When the first attempt fails the
// entry for loginID is evicted and the store is asked once more.
func (r *CachedUserRepository) FindOneByLoginID(ctx context.Context, loginID string) (*model.User, error) {
	user, err := r.readThrough(ctx, loginID)
	if err == nil {
		return user, nil
	}
	logger.Warn("Lookup by login failed, evicting and retrying",
		zap.Error(err),
		zap.String("loginID", loginID))
	r.evict(ctx, loginID)

	user, err = r.UserRepository.FindOneByLoginID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		r.put(ctx, loginID, user)
	}
	return user, nil
}

func (r *CachedUserRepository) readThrough(ctx context.Context, loginID string) (*model.User, error) {
	var cached model.User
	found, err := r.cache.Get(ctx, loginID, &cached)
	if err != nil {
		return nil, err
	}
	if found {
		return &cached, nil
	}
	user, err := r.UserRepository.FindOneByLoginID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		r.put(ctx, loginID, user)
	}
	return user, nil
}

func (r *CachedUserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.UserRepository.Create(ctx, user); err != nil {
		return err
	}
	r.evict(ctx, user.LoginID)
	return nil
}

// Update evicts both the stored login and the new one when they differ.
func (r *CachedUserRepository) Update(ctx context.Context, user *model.User) error {
	logins := newLoginSet()
	if prev, err := r.UserRepository.FindByID(ctx, user.ID); err == nil && prev != nil {
		logins.add(prev.LoginID)
	}
	if err := r.UserRepository.Update(ctx, user); err != nil {
		return err
	}
	logins.add(user.LoginID)
	r.evictAll(ctx, logins)
	return nil
}

func (r *CachedUserRepository) UpdateAll(ctx context.Context, users []*model.User) error {
	logins := newLoginSet()
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	r.collect(ctx, ids, logins)
	if err := r.UserRepository.UpdateAll(ctx, users); err != nil {
		return err
	}
	for _, u := range users {
		logins.add(u.LoginID)
	}
	r.evictAll(ctx, logins)
	return nil
}

func (r *CachedUserRepository) SoftDelete(ctx context.Context, ids []string) error {
	logins := newLoginSet()
	r.collect(ctx, ids, logins)
	if err := r.UserRepository.SoftDelete(ctx, ids); err != nil {
		return err
	}
	r.evictAll(ctx, logins)
	return nil
}

// DeleteByIDs evicts before the rows go away, since their logins can no longer
// be looked up afterwards. A failed delete leaves the entries evicted.
func (r *CachedUserRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	logins := newLoginSet()
	r.collect(ctx, ids, logins)
	r.evictAll(ctx, logins)
	return r.UserRepository.DeleteByIDs(ctx, ids)
}

func (r *CachedUserRepository) collect(ctx context.Context, ids []string, logins *loginSet) {
	if len(ids) == 0 {
		return
	}
	users, err := r.UserRepository.FindByIDs(ctx, ids)
	if err != nil {
		logger.Warn("Failed to load users for cache eviction", zap.Error(err), zap.Strings("ids", ids))
		return
	}
	for _, u := range users {
		logins.add(u.LoginID)
	}
}

func (r *CachedUserRepository) evictAll(ctx context.Context, logins *loginSet) {
	for _, login := range logins.list {
		r.evict(ctx, login)
	}
}

// Cache failures are logged and never fail the write.
func (r *CachedUserRepository) evict(ctx context.Context, loginID string) {
	if err := r.cache.Evict(ctx, loginID); err != nil {
		logger.Error("Failed to evict user cache entry", zap.Error(err), zap.String("loginID", loginID))
	}
}

func (r *CachedUserRepository) put(ctx context.Context, loginID string, user *model.User) {
	if err := r.cache.Put(ctx, loginID, user); err != nil {
		logger.Warn("Failed to cache user", zap.Error(err), zap.String("loginID", loginID))
	}
}

type loginSet struct {
	seen map[string]bool
	list []string
}

func newLoginSet() *loginSet {
	return &loginSet{seen: make(map[string]bool)}
}

func (s *loginSet) add(login string) {
	if login == "" || s.seen[login] {
		return
	}
	s.seen[login] = true
	s.list = append(s.list, login)
}

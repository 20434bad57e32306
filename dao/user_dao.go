// dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/query"
)

// UserRepository is the user store seen by the services. The cached
// implementation wraps the gorm one and keeps the login cache in step.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.User, error)
	FindOneByLoginID(ctx context.Context, loginID string) (*model.User, error)
	FindOne(ctx context.Context, spec *query.Specification[model.User]) (*model.User, error)
	FindPage(ctx context.Context, spec *query.Specification[model.User], pm *model.PageModel[model.User]) error
	ExistsLoginID(ctx context.Context, loginID, excludeID string) (bool, error)

	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	UpdateAll(ctx context.Context, users []*model.User) error
	SoftDelete(ctx context.Context, ids []string) error
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)

	FindRoleIDs(ctx context.Context, userID string) ([]string, error)
	ReplaceRoles(ctx context.Context, userID string, roleIDs []string) error
}

type UserDAO struct {
	BaseDAO[model.User]
}

var _ UserRepository = &UserDAO{}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{BaseDAO: newBaseDAO[model.User](db, "user")}
}

// FindOneByLoginID returns nil, nil when the login is unknown.
func (dao *UserDAO) FindOneByLoginID(ctx context.Context, loginID string) (*model.User, error) {
	start := time.Now()
	var user model.User
	err := dao.Conn(ctx).Where(model.FieldLoginID+" = ?", loginID).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to find user by login",
			zap.Error(err),
			zap.String("loginID", loginID),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: find user %s: %v", echo_errors.ErrDatabaseOperation, loginID, err)
	}
	logger.Debug("User found by login",
		zap.String("loginID", loginID),
		zap.Duration("duration", time.Since(start)))
	return &user, nil
}

// ExistsLoginID reports whether another user than excludeID owns loginID.
func (dao *UserDAO) ExistsLoginID(ctx context.Context, loginID, excludeID string) (bool, error) {
	var count int64
	db := dao.Conn(ctx).Model(&model.User{}).Where(model.FieldLoginID+" = ?", loginID)
	if excludeID != "" {
		db = db.Where(model.FieldID+" <> ?", excludeID)
	}
	if err := db.Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: check login %s: %v", echo_errors.ErrDatabaseOperation, loginID, err)
	}
	return count > 0, nil
}

func (dao *UserDAO) Create(ctx context.Context, user *model.User) error {
	start := time.Now()
	logger.Info("Creating new user", zap.String("loginID", user.LoginID))
	if err := dao.BaseDAO.Create(ctx, user); err != nil {
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("loginID", user.LoginID),
			zap.Duration("duration", time.Since(start)))
		return err
	}
	logger.Info("User created successfully",
		zap.String("userID", user.ID),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *UserDAO) Update(ctx context.Context, user *model.User) error {
	start := time.Now()
	if err := dao.BaseDAO.Update(ctx, user); err != nil {
		logger.Error("Failed to update user",
			zap.Error(err),
			zap.String("userID", user.ID),
			zap.Duration("duration", time.Since(start)))
		return err
	}
	logger.Info("User updated successfully",
		zap.String("userID", user.ID),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// UpdateAll saves each user in turn and stops at the first failure.
func (dao *UserDAO) UpdateAll(ctx context.Context, users []*model.User) error {
	for _, u := range users {
		if err := dao.Update(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

// SoftDelete marks users deleted without removing their rows.
func (dao *UserDAO) SoftDelete(ctx context.Context, ids []string) error {
	n, err := dao.UpdateStatus(ctx, ids, model.FlagDelete)
	if err != nil {
		logger.Error("Failed to soft delete users", zap.Error(err), zap.Strings("ids", ids))
		return err
	}
	logger.Info("Users marked deleted", zap.Int64("count", n))
	return nil
}

// DeleteByIDs removes the users and their role links.
func (dao *UserDAO) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	start := time.Now()
	if len(ids) == 0 {
		return 0, nil
	}
	if err := dao.Conn(ctx).Where("user_id IN ?", ids).Delete(&model.UserRole{}).Error; err != nil {
		return 0, fmt.Errorf("%w: %w: delete user roles: %v", echo_errors.ErrUserRoleLink, echo_errors.ErrDatabaseOperation, err)
	}
	n, err := dao.BaseDAO.DeleteByIDs(ctx, ids)
	if err != nil {
		logger.Error("Failed to delete users",
			zap.Error(err),
			zap.Strings("ids", ids),
			zap.Duration("duration", time.Since(start)))
		return 0, err
	}
	logger.Info("Users deleted successfully",
		zap.Int64("count", n),
		zap.Duration("duration", time.Since(start)))
	return n, nil
}

func (dao *UserDAO) FindRoleIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := dao.Conn(ctx).Model(&model.UserRole{}).
		Where("user_id = ?", userID).
		Order("role_id").
		Pluck("role_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %w: find user roles: %v", echo_errors.ErrUserRoleLink, echo_errors.ErrDatabaseOperation, err)
	}
	return ids, nil
}

// ReplaceRoles deletes every role link of userID and inserts roleIDs.
func (dao *UserDAO) ReplaceRoles(ctx context.Context, userID string, roleIDs []string) error {
	db := dao.Conn(ctx)
	if err := db.Where("user_id = ?", userID).Delete(&model.UserRole{}).Error; err != nil {
		return fmt.Errorf("%w: %w: clear user roles: %v", echo_errors.ErrUserRoleLink, echo_errors.ErrDatabaseOperation, err)
	}
	links := make([]model.UserRole, 0, len(roleIDs))
	seen := make(map[string]bool, len(roleIDs))
	for _, id := range roleIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		links = append(links, model.UserRole{UserID: userID, RoleID: id})
	}
	if len(links) == 0 {
		return nil
	}
	if err := db.Create(&links).Error; err != nil {
		return fmt.Errorf("%w: %w: insert user roles: %v", echo_errors.ErrUserRoleLink, echo_errors.ErrDatabaseOperation, err)
	}
	logger.Debug("User roles replaced", zap.String("userID", userID), zap.Int("count", len(links)))
	return nil
}

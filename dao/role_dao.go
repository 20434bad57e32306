// dao/role_dao.go
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
)

type RoleDAO struct {
	BaseDAO[model.Role]
}

func NewRoleDAO(db *gorm.DB) *RoleDAO {
	return &RoleDAO{BaseDAO: newBaseDAO[model.Role](db, "role")}
}

// FindOneByName returns the live role called name, nil when there is none.
func (dao *RoleDAO) FindOneByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := dao.Conn(ctx).
		Where(model.FieldName+" = ? AND "+model.FieldStatus+" <> ?", name, model.FlagDelete).
		Take(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to find role by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("%w: find role %s: %v", echo_errors.ErrDatabaseOperation, name, err)
	}
	return &role, nil
}

// ExistsName reports whether a live role other than excludeID is called name.
func (dao *RoleDAO) ExistsName(ctx context.Context, name, excludeID string) (bool, error) {
	var count int64
	db := dao.Conn(ctx).Model(&model.Role{}).
		Where(model.FieldName+" = ? AND "+model.FieldStatus+" <> ?", name, model.FlagDelete)
	if excludeID != "" {
		db = db.Where(model.FieldID+" <> ?", excludeID)
	}
	if err := db.Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: check role name: %v", echo_errors.ErrDatabaseOperation, err)
	}
	return count > 0, nil
}

// SelectListByUserID returns the roles linked to a user ordered by sort.
func (dao *RoleDAO) SelectListByUserID(ctx context.Context, userID string) ([]model.Role, error) {
	start := time.Now()
	var roles []model.Role
	err := dao.Conn(ctx).
		Joins("JOIN sys_user_role_t ur ON ur.role_id = sys_role_t.id").
		Where("ur.user_id = ?", userID).
		Order("sys_role_t.sort, sys_role_t.name").
		Find(&roles).Error
	if err != nil {
		logger.Error("Failed to list roles of user",
			zap.Error(err),
			zap.String("userID", userID),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: roles of user %s: %v", echo_errors.ErrDatabaseOperation, userID, err)
	}
	return roles, nil
}

// DeleteByIDs removes the roles and every user link to them.
func (dao *RoleDAO) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	if err := dao.Conn(ctx).Where("role_id IN ?", ids).Delete(&model.UserRole{}).Error; err != nil {
		return 0, fmt.Errorf("%w: delete role links: %v", echo_errors.ErrDatabaseOperation, err)
	}
	n, err := dao.BaseDAO.DeleteByIDs(ctx, ids)
	if err != nil {
		logger.Error("Failed to delete roles", zap.Error(err), zap.Strings("ids", ids))
		return 0, err
	}
	logger.Info("Roles deleted successfully", zap.Int64("count", n))
	return n, nil
}

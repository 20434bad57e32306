// dao/org_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
)

type OrgDAO struct {
	BaseDAO[model.Org]
}

func NewOrgDAO(db *gorm.DB) *OrgDAO {
	return &OrgDAO{BaseDAO: newBaseDAO[model.Org](db, "org")}
}

func (dao *OrgDAO) FindOneByName(ctx context.Context, name string) (*model.Org, error) {
	var org model.Org
	err := dao.Conn(ctx).
		Where(model.FieldName+" = ? AND "+model.FieldStatus+" <> ?", name, model.FlagDelete).
		Order(model.FieldID).
		Take(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to find org by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("%w: find org %s: %v", echo_errors.ErrDatabaseOperation, name, err)
	}
	return &org, nil
}

func (dao *OrgDAO) CountChildren(ctx context.Context, parentIDs []string) (int64, error) {
	var count int64
	err := dao.Conn(ctx).Model(&model.Org{}).
		Where("parent_id IN ? AND "+model.FieldStatus+" <> ?", parentIDs, model.FlagDelete).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: count org children: %v", echo_errors.ErrDatabaseOperation, err)
	}
	return count, nil
}

// FindDescendants returns every org whose ancestor path contains id.
func (dao *OrgDAO) FindDescendants(ctx context.Context, id string) ([]model.Org, error) {
	var orgs []model.Org
	err := dao.Conn(ctx).
		Where(model.FieldParentIDs+" LIKE ?", "%,"+id+",%").
		Order("parent_ids, sort").
		Find(&orgs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: org descendants: %v", echo_errors.ErrDatabaseOperation, err)
	}
	return orgs, nil
}

// SetLeaf records whether the org has live children.
func (dao *OrgDAO) SetLeaf(ctx context.Context, id string, leaf bool) error {
	err := dao.Conn(ctx).Model(&model.Org{}).Where(model.FieldID+" = ?", id).Update("leaf", leaf).Error
	if err != nil {
		return fmt.Errorf("%w: set org leaf: %v", echo_errors.ErrDatabaseOperation, err)
	}
	return nil
}

// MoveSubtree rewrites the ancestor path prefix of every descendant of id.
func (dao *OrgDAO) MoveSubtree(ctx context.Context, id, oldPrefix, newPrefix string) error {
	descendants, err := dao.FindDescendants(ctx, id)
	if err != nil {
		return err
	}
	db := dao.Conn(ctx)
	for _, d := range descendants {
		if !strings.HasPrefix(d.ParentIDs, oldPrefix) {
			continue
		}
		path := newPrefix + strings.TrimPrefix(d.ParentIDs, oldPrefix)
		if err := db.Model(&model.Org{}).Where(model.FieldID+" = ?", d.ID).
			Update(model.FieldParentIDs, path).Error; err != nil {
			return fmt.Errorf("%w: move org subtree: %v", echo_errors.ErrDatabaseOperation, err)
		}
	}
	logger.Debug("Org subtree moved", zap.String("orgID", id), zap.Int("count", len(descendants)))
	return nil
}

// dao/base_dao.go
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

// BaseDAO holds the persistence operations every entity table shares.
type BaseDAO[T any] struct {
	DB     *gorm.DB
	entity string
}

func newBaseDAO[T any](db *gorm.DB, entity string) BaseDAO[T] {
	return BaseDAO[T]{DB: db, entity: entity}
}

// Conn returns the connection to use for ctx.
func (d *BaseDAO[T]) Conn(ctx context.Context) *gorm.DB {
	return conn(ctx, d.DB)
}

// FindByID returns nil, nil when no row has id.
func (d *BaseDAO[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var e T
	err := d.Conn(ctx).Where(model.FieldID+" = ?", id).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to find "+d.entity, zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("%w: find %s %s: %v", echo_errors.ErrDatabaseOperation, d.entity, id, err)
	}
	return &e, nil
}

func (d *BaseDAO[T]) FindByIDs(ctx context.Context, ids []string) ([]T, error) {
	var list []T
	if len(ids) == 0 {
		return list, nil
	}
	if err := d.Conn(ctx).Where(model.FieldID+" IN ?", ids).Find(&list).Error; err != nil {
		logger.Error("Failed to find "+d.entity+" list", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("%w: find %s list: %v", echo_errors.ErrDatabaseOperation, d.entity, err)
	}
	return list, nil
}

// FindOne returns the first row matching spec, nil when none does.
func (d *BaseDAO[T]) FindOne(ctx context.Context, spec *query.Specification[T]) (*T, error) {
	var e T
	err := d.Conn(ctx).Model(new(T)).Scopes(spec.Scope(), spec.OrderScope()).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find %s: %v", echo_errors.ErrDatabaseOperation, d.entity, err)
	}
	return &e, nil
}

func (d *BaseDAO[T]) FindAll(ctx context.Context, spec *query.Specification[T]) ([]T, error) {
	var list []T
	if err := d.Conn(ctx).Model(new(T)).Scopes(spec.Scope(), spec.OrderScope()).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", echo_errors.ErrDatabaseOperation, d.entity, err)
	}
	return list, nil
}

func (d *BaseDAO[T]) Count(ctx context.Context, spec *query.Specification[T]) (int64, error) {
	var total int64
	if err := d.Conn(ctx).Model(new(T)).Scopes(spec.Scope()).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("%w: count %s: %v", echo_errors.ErrDatabaseOperation, d.entity, err)
	}
	return total, nil
}

// FindPage fills pm.Total and pm.Data for the requested page.
func (d *BaseDAO[T]) FindPage(ctx context.Context, spec *query.Specification[T], pm *model.PageModel[T]) error {
	start := time.Now()
	pm.Normalize()

	total, err := d.Count(ctx, spec)
	if err != nil {
		logger.Error("Failed to count "+d.entity+" page", zap.Error(err))
		return err
	}
	pm.Total = total
	pm.Data = []T{}
	if total == 0 {
		return nil
	}

	err = d.Conn(ctx).Model(new(T)).
		Scopes(spec.Scope(), spec.OrderScope()).
		Offset(pm.Offset()).Limit(pm.Size).
		Find(&pm.Data).Error
	if err != nil {
		logger.Error("Failed to load "+d.entity+" page", zap.Error(err))
		return fmt.Errorf("%w: page %s: %v", echo_errors.ErrDatabaseOperation, d.entity, err)
	}

	logger.Debug("Loaded "+d.entity+" page",
		zap.Int("page", pm.Page),
		zap.Int("size", pm.Size),
		zap.Int64("total", total),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (d *BaseDAO[T]) Create(ctx context.Context, e *T) error {
	if err := d.Conn(ctx).Create(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %v", conflictErr(d.entity), err)
		}
		return fmt.Errorf("%w: create %s: %v", echo_errors.ErrDatabaseOperation, d.entity, err)
	}
	return nil
}

// Update writes every column of e. Audit columns are refreshed by the entity hooks.
func (d *BaseDAO[T]) Update(ctx context.Context, e *T) error {
	if err := d.Conn(ctx).Save(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %v", conflictErr(d.entity), err)
		}
		return fmt.Errorf("%w: update %s: %v", echo_errors.ErrDatabaseOperation, d.entity, err)
	}
	return nil
}

// UpdateStatus sets status on every listed row and stamps the modifier.
func (d *BaseDAO[T]) UpdateStatus(ctx context.Context, ids []string, status int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := d.Conn(ctx).Model(new(T)).Where(model.FieldID+" IN ?", ids).Updates(map[string]interface{}{
		model.FieldStatus:            status,
		model.ColumnLastModifiedBy:   model.ActorFromContext(ctx),
		model.ColumnLastModifiedDate: time.Now(),
		"version":                    gorm.Expr("version + 1"),
	})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: update %s status: %v", echo_errors.ErrDatabaseOperation, d.entity, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteByIDs removes rows and returns how many went away.
func (d *BaseDAO[T]) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := d.Conn(ctx).Where(model.FieldID+" IN ?", ids).Delete(new(T))
	if res.Error != nil {
		return 0, fmt.Errorf("%w: delete %s: %v", echo_errors.ErrDatabaseOperation, d.entity, res.Error)
	}
	return res.RowsAffected, nil
}

func conflictErr(entity string) error {
	switch entity {
	case "user":
		return echo_errors.ErrUserConflict
	case "role":
		return echo_errors.ErrRoleConflict
	case "org":
		return echo_errors.ErrOrgConflict
	}
	return echo_errors.ErrDatabaseOperation
}

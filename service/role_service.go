// service/role_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/923325596/albedo-boot/dao"
	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/query"
	"github.com/923325596/albedo-boot/util"
)

//go:generate mockgen -destination=../test/service_mock/role_service_mock.go -package=mock_service . IRoleService

// IRoleService defines the interface for role operations
type IRoleService interface {
	FindOneVo(ctx context.Context, id string) (*model.RoleVo, error)
	FindOneByName(ctx context.Context, name string) (*model.Role, error)
	SelectListByUserID(ctx context.Context, userID string) ([]model.Role, error)
	Save(ctx context.Context, vo model.RoleVo) (*model.Role, error)
	FindPage(ctx context.Context, pm *model.PageModel[model.Role]) error
	LockOrUnLock(ctx context.Context, ids []string) error
	DeleteBatchIDs(ctx context.Context, ids []string) (int64, error)
}

// RoleService handles business logic for role operations
type RoleService struct {
	roleDAO        *dao.RoleDAO
	orgDAO         *dao.OrgDAO
	resolver       *dao.AuditResolver
	tx             *dao.Transactor
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IRoleService = &RoleService{}

// NewRoleService creates a new instance of RoleService
func NewRoleService(roleDAO *dao.RoleDAO, orgDAO *dao.OrgDAO, resolver *dao.AuditResolver, tx *dao.Transactor, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *RoleService {
	return &RoleService{
		roleDAO:        roleDAO,
		orgDAO:         orgDAO,
		resolver:       resolver,
		tx:             tx,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// FindOneVo returns nil, nil when the role does not exist.
func (s *RoleService) FindOneVo(ctx context.Context, id string) (*model.RoleVo, error) {
	role, err := s.roleDAO.FindByID(ctx, id)
	if err != nil || role == nil {
		return nil, err
	}
	s.resolver.Resolve(ctx, role)
	vo, err := RoleVoOf(role)
	if err != nil {
		return nil, err
	}
	if role.OrgID != "" {
		org, err := s.orgDAO.FindByID(ctx, role.OrgID)
		if err != nil {
			return nil, err
		}
		if org != nil {
			vo.OrgName = org.Name
		}
	}
	return &vo, nil
}

func (s *RoleService) FindOneByName(ctx context.Context, name string) (*model.Role, error) {
	return s.roleDAO.FindOneByName(ctx, name)
}

func (s *RoleService) SelectListByUserID(ctx context.Context, userID string) ([]model.Role, error) {
	return s.roleDAO.SelectListByUserID(ctx, userID)
}

// Save creates the role when vo has no id and updates it otherwise. Names are
// unique among live roles.
func (s *RoleService) Save(ctx context.Context, vo model.RoleVo) (*model.Role, error) {
	if err := s.validationUtil.ValidateRole(vo); err != nil {
		return nil, err
	}

	var role *model.Role
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		role = &model.Role{}
		if vo.ID != "" {
			existing, err := s.roleDAO.FindByID(ctx, vo.ID)
			if err != nil {
				return err
			}
			if existing == nil {
				return echo_errors.WrapRuntimeMsg(echo_errors.ErrRoleNotFound, "role %s not found", vo.ID)
			}
			role = existing
		}

		taken, err := s.roleDAO.ExistsName(ctx, vo.Name, role.ID)
		if err != nil {
			return err
		}
		if taken {
			return echo_errors.WrapRuntimeMsg(echo_errors.ErrRoleConflict, "role name %s already exists", vo.Name)
		}

		copyVoToRole(vo, role)
		if role.IsNew() {
			return s.roleDAO.Create(ctx, role)
		}
		return s.roleDAO.Update(ctx, role)
	})
	if err != nil {
		logger.Error("Error saving role", zap.Error(err), zap.String("name", vo.Name))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventRoleSaved, model.ActorFromContext(ctx), util.ChangePayload{
		IDs:     []string{role.ID},
		Details: map[string]interface{}{"name": role.Name},
	})
	logger.Info("Role saved successfully", zap.String("roleID", role.ID))
	return role, nil
}

// FindPage lists live roles matching the page's query condition payload.
func (s *RoleService) FindPage(ctx context.Context, pm *model.PageModel[model.Role]) error {
	spec, err := query.BuildSpecification[model.Role](pm.QueryConditionJSON,
		query.Ne(model.FieldStatus, model.FlagDelete))
	if err != nil {
		return err
	}
	if pm.SortName != "" {
		if err := spec.OrderBy(pm.SortName, pm.Desc()); err != nil {
			return err
		}
	} else if err := spec.OrderBy("sort", false); err != nil {
		return err
	}
	if err := s.roleDAO.FindPage(ctx, spec, pm); err != nil {
		return err
	}
	s.resolver.Resolve(ctx, auditables(pm.Data)...)
	return nil
}

// LockOrUnLock flips each role between normal and locked.
func (s *RoleService) LockOrUnLock(ctx context.Context, ids []string) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		roles, err := s.roleDAO.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		toLock, toUnlock := splitByToggle(len(roles), func(i int) (string, int) {
			return roles[i].ID, roles[i].Status
		})
		if _, err := s.roleDAO.UpdateStatus(ctx, toLock, model.FlagLocked); err != nil {
			return err
		}
		_, err = s.roleDAO.UpdateStatus(ctx, toUnlock, model.FlagNormal)
		return err
	})
	if err != nil {
		logger.Error("Error locking roles", zap.Error(err), zap.Strings("ids", ids))
		return err
	}
	s.eventBus.Publish(ctx, util.EventRoleSaved, model.ActorFromContext(ctx), util.ChangePayload{
		IDs:     ids,
		Details: map[string]interface{}{"toggle": "lock"},
	})
	return nil
}

func (s *RoleService) DeleteBatchIDs(ctx context.Context, ids []string) (int64, error) {
	var n int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		n, err = s.roleDAO.DeleteByIDs(ctx, ids)
		return err
	})
	if err != nil {
		logger.Error("Error deleting roles", zap.Error(err), zap.Strings("ids", ids))
		return 0, err
	}
	s.eventBus.Publish(ctx, util.EventRoleDeleted, model.ActorFromContext(ctx), util.ChangePayload{IDs: ids})
	return n, nil
}

// splitByToggle sorts ids into those that become locked and those that become
// normal. Deleted rows are left out.
func splitByToggle(n int, at func(i int) (string, int)) (toLock, toUnlock []string) {
	for i := 0; i < n; i++ {
		id, status := at(i)
		switch status {
		case model.FlagNormal:
			toLock = append(toLock, id)
		case model.FlagLocked:
			toUnlock = append(toUnlock, id)
		}
	}
	return toLock, toUnlock
}

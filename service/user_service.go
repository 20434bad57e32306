// service/user_service.go
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/923325596/albedo-boot/dao"
	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/query"
	"github.com/923325596/albedo-boot/util"
)

//go:generate mockgen -destination=../test/service_mock/user_service_mock.go -package=mock_service . IUserService

// IUserService defines the interface for user operations
type IUserService interface {
	FindOneVo(ctx context.Context, id string) (*model.UserVo, error)
	FindVo(ctx context.Context, id string) (*model.UserVo, error)
	GetUserWithAuthorities(ctx context.Context, id string) (*model.UserVo, error)
	GetUserWithAuthoritiesByLogin(ctx context.Context, loginID string) (*model.UserVo, error)
	FindOneByLoginID(ctx context.Context, loginID string) (*model.User, error)
	FindExcelOneVo(ctx context.Context) (*model.UserVo, error)

	Save(ctx context.Context, vo model.UserVo) (*model.User, error)
	SaveExcel(ctx context.Context, row model.UserExcelVo) (*model.User, error)
	ChangePassword(ctx context.Context, loginID, newPassword, avatar string) (bool, error)
	LockOrUnLock(ctx context.Context, ids []string) error
	Delete(ctx context.Context, ids []string) error
	DeleteBatchIDs(ctx context.Context, ids []string) (int64, error)

	FindPage(ctx context.Context, pm *model.PageModel[model.User], and, or []query.Condition) error
	FindPageByPayload(ctx context.Context, pm *model.PageModel[model.User], authConds []query.Condition) error
	FindPageInOrg(ctx context.Context, pm *model.PageModel[model.User], orgID string) error
}

// UserService handles business logic for user operations
type UserService struct {
	userRepo       dao.UserRepository
	roleService    IRoleService
	orgService     IOrgService
	resolver       *dao.AuditResolver
	tx             *dao.Transactor
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IUserService = &UserService{}

// NewUserService creates a new instance of UserService. userRepo is expected to
// be the cached repository so that every write keeps the login cache in step.
func NewUserService(userRepo dao.UserRepository, roleService IRoleService, orgService IOrgService, resolver *dao.AuditResolver, tx *dao.Transactor, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *UserService {
	return &UserService{
		userRepo:       userRepo,
		roleService:    roleService,
		orgService:     orgService,
		resolver:       resolver,
		tx:             tx,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// FindOneVo loads the user with org, roles and audit names. Absent is nil, nil.
func (s *UserService) FindOneVo(ctx context.Context, id string) (*model.UserVo, error) {
	return s.findVo(ctx, id, true)
}

// FindVo is FindOneVo without the roles.
func (s *UserService) FindVo(ctx context.Context, id string) (*model.UserVo, error) {
	return s.findVo(ctx, id, false)
}

func (s *UserService) GetUserWithAuthorities(ctx context.Context, id string) (*model.UserVo, error) {
	return s.findVo(ctx, id, true)
}

func (s *UserService) findVo(ctx context.Context, id string, withRoles bool) (*model.UserVo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	if err := s.loadRelations(ctx, user, withRoles); err != nil {
		return nil, err
	}
	vo, err := UserVoOf(user)
	if err != nil {
		return nil, err
	}
	return &vo, nil
}

// GetUserWithAuthoritiesByLogin goes through the login cache.
func (s *UserService) GetUserWithAuthoritiesByLogin(ctx context.Context, loginID string) (*model.UserVo, error) {
	user, err := s.userRepo.FindOneByLoginID(ctx, loginID)
	if err != nil || user == nil {
		return nil, err
	}
	if err := s.loadRelations(ctx, user, true); err != nil {
		return nil, err
	}
	vo, err := UserVoOf(user)
	if err != nil {
		return nil, err
	}
	return &vo, nil
}

func (s *UserService) loadRelations(ctx context.Context, user *model.User, withRoles bool) error {
	if user.OrgID != "" {
		org, err := s.orgService.FindOne(ctx, user.OrgID)
		if err != nil {
			return err
		}
		user.Org = org
	}
	if withRoles {
		roles, err := s.roleService.SelectListByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		user.Roles = roles
	}
	s.resolver.Resolve(ctx, user)
	return nil
}

// FindOneByLoginID reads through the login cache. Absent is nil, nil.
func (s *UserService) FindOneByLoginID(ctx context.Context, loginID string) (*model.User, error) {
	return s.userRepo.FindOneByLoginID(ctx, loginID)
}

// FindExcelOneVo returns any listable user as a template row.
func (s *UserService) FindExcelOneVo(ctx context.Context) (*model.UserVo, error) {
	spec, err := query.BySearchQueryCondition[model.User](nil, query.Ne(model.FieldID, model.ReservedAdminID))
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindOne(ctx, spec)
	if err != nil || user == nil {
		return nil, err
	}
	vo, err := UserVoOf(user)
	if err != nil {
		return nil, err
	}
	return &vo, nil
}

// Save creates the user when vo has no id and updates it otherwise. The role
// links are replaced only when vo lists roles.
func (s *UserService) Save(ctx context.Context, vo model.UserVo) (*model.User, error) {
	if err := s.validationUtil.ValidateUser(vo); err != nil {
		return nil, err
	}

	var user *model.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.save(ctx, vo)
		return err
	})
	if err != nil {
		logger.Error("Error saving user", zap.Error(err), zap.String("loginID", vo.LoginID))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventUserSaved, model.ActorFromContext(ctx), util.ChangePayload{
		IDs:     []string{user.ID},
		Details: map[string]interface{}{"loginId": user.LoginID, "created": vo.IsNew()},
	})
	logger.Info("User saved successfully", zap.String("userID", user.ID), zap.String("loginID", user.LoginID))
	return user, nil
}

func (s *UserService) save(ctx context.Context, vo model.UserVo) (*model.User, error) {
	user := &model.User{}
	if !vo.IsNew() {
		existing, err := s.userRepo.FindByID(ctx, vo.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, echo_errors.WrapRuntimeMsg(echo_errors.ErrUserNotFound, "user %s not found", vo.ID)
		}
		user = existing
	}

	taken, err := s.userRepo.ExistsLoginID(ctx, vo.LoginID, user.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, echo_errors.WrapRuntimeMsg(echo_errors.ErrUserConflict, "login %s already exists", vo.LoginID)
	}

	copyVoToUser(vo, user)
	if user.LangKey == "" {
		user.LangKey = model.DefaultLangKey
	}
	if vo.Password != "" {
		hash, err := util.HashPassword(vo.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	resetKey, err := util.NewResetKey()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user.ResetKey = resetKey
	user.ResetDate = &now
	user.Activated = true

	if user.IsNew() {
		err = s.userRepo.Create(ctx, user)
	} else {
		err = s.userRepo.Update(ctx, user)
	}
	if err != nil {
		return nil, err
	}

	if len(user.RoleIDList) > 0 {
		if err := s.userRepo.ReplaceRoles(ctx, user.ID, user.RoleIDList); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// SaveExcel imports one row. The org is looked up by name and left unset when
// unknown. An unknown role fails the row before anything is written.
func (s *UserService) SaveExcel(ctx context.Context, row model.UserExcelVo) (*model.User, error) {
	if err := s.validationUtil.ValidateUserExcel(row); err != nil {
		return nil, err
	}

	var user *model.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		vo := model.UserVo{
			LoginID:  row.LoginID,
			Password: row.Password,
			Name:     row.Name,
			Email:    row.Email,
			Phone:    row.Phone,
		}
		if row.OrgName != "" {
			org, err := s.orgService.FindOneByName(ctx, row.OrgName)
			if err != nil {
				return err
			}
			if org != nil {
				vo.OrgID = org.ID
			}
		}
		role, err := s.roleService.FindOneByName(ctx, row.RoleNames)
		if err != nil {
			return err
		}
		if role == nil {
			return echo_errors.WrapRuntimeMsg(echo_errors.ErrRoleNotFound, "cannot find role %s", row.RoleNames)
		}
		vo.RoleIDList = []string{role.ID}

		if vo.Password == "" {
			if vo.Password, err = util.RandomKey(12); err != nil {
				return err
			}
		}
		if err := s.validationUtil.ValidateUser(vo); err != nil {
			return err
		}
		user, err = s.save(ctx, vo)
		return err
	})
	if err != nil {
		logger.Error("Error importing user", zap.Error(err), zap.String("loginID", row.LoginID))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventUserSaved, model.ActorFromContext(ctx), util.ChangePayload{
		IDs:     []string{user.ID},
		Details: map[string]interface{}{"loginId": user.LoginID, "import": true},
	})
	return user, nil
}

// ChangePassword reports false when no user owns loginID.
func (s *UserService) ChangePassword(ctx context.Context, loginID, newPassword, avatar string) (bool, error) {
	if strings.TrimSpace(loginID) == "" {
		return false, echo_errors.WrapRuntimeMsg(echo_errors.ErrInvalidUserData, "login id is required")
	}
	if err := s.validationUtil.ValidatePassword(newPassword); err != nil {
		return false, err
	}
	spec, err := query.BySearchQueryCondition[model.User]([]query.Condition{query.Eq(model.FieldLoginID, loginID)})
	if err != nil {
		return false, err
	}

	var user *model.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		found, err := s.userRepo.FindOne(ctx, spec)
		if err != nil || found == nil {
			return err
		}
		hash, err := util.HashPassword(newPassword)
		if err != nil {
			return err
		}
		found.Password = hash
		found.Avatar = avatar
		if err := s.userRepo.Update(ctx, found); err != nil {
			return err
		}
		user = found
		return nil
	})
	if err != nil {
		logger.Error("Error changing password", zap.Error(err), zap.String("loginID", loginID))
		return false, err
	}
	if user == nil {
		logger.Warn("Password change for unknown login", zap.String("loginID", loginID))
		return false, nil
	}

	s.eventBus.Publish(ctx, util.EventUserPassword, model.ActorFromContext(ctx), util.ChangePayload{IDs: []string{user.ID}})
	logger.Debug("Changed password for user", zap.String("loginID", loginID))
	return true, nil
}

// LockOrUnLock flips each user between normal and locked.
func (s *UserService) LockOrUnLock(ctx context.Context, ids []string) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		users, err := s.userRepo.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		changed := make([]*model.User, 0, len(users))
		for i := range users {
			switch users[i].Status {
			case model.FlagNormal:
				users[i].Status = model.FlagLocked
			case model.FlagLocked:
				users[i].Status = model.FlagNormal
			default:
				continue
			}
			changed = append(changed, &users[i])
		}
		return s.userRepo.UpdateAll(ctx, changed)
	})
	if err != nil {
		logger.Error("Error locking users", zap.Error(err), zap.Strings("ids", ids))
		return err
	}
	s.eventBus.Publish(ctx, util.EventUserLocked, model.ActorFromContext(ctx), util.ChangePayload{IDs: ids})
	return nil
}

// Delete marks the users deleted.
func (s *UserService) Delete(ctx context.Context, ids []string) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.userRepo.SoftDelete(ctx, ids)
	})
	if err != nil {
		logger.Error("Error deleting users", zap.Error(err), zap.Strings("ids", ids))
		return err
	}
	s.eventBus.Publish(ctx, util.EventUserDeleted, model.ActorFromContext(ctx), util.ChangePayload{
		IDs:     ids,
		Details: map[string]interface{}{"soft": true},
	})
	return nil
}

// DeleteBatchIDs removes the users and their role links.
func (s *UserService) DeleteBatchIDs(ctx context.Context, ids []string) (int64, error) {
	var n int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		n, err = s.userRepo.DeleteByIDs(ctx, ids)
		return err
	})
	if err != nil {
		logger.Error("Error deleting users", zap.Error(err), zap.Strings("ids", ids))
		return 0, err
	}
	s.eventBus.Publish(ctx, util.EventUserDeleted, model.ActorFromContext(ctx), util.ChangePayload{IDs: ids})
	logger.Info("Users deleted", zap.Int64("count", n))
	return n, nil
}

// FindPage lists users that are not deleted and not the reserved admin. The or
// group narrows the and conditions.
func (s *UserService) FindPage(ctx context.Context, pm *model.PageModel[model.User], and, or []query.Condition) error {
	spec, err := query.BySearchQueryCondition[model.User](and,
		query.Ne(model.FieldStatus, model.FlagDelete),
		query.Ne(model.FieldID, model.ReservedAdminID))
	if err != nil {
		return err
	}
	if err := spec.OrAll(or); err != nil {
		return err
	}
	return s.findPage(ctx, spec, pm)
}

// FindPageByPayload parses pm.QueryConditionJSON. Deleted users and the
// reserved admin are never listed.
func (s *UserService) FindPageByPayload(ctx context.Context, pm *model.PageModel[model.User], authConds []query.Condition) error {
	spec, err := query.BuildSpecification[model.User](pm.QueryConditionJSON,
		query.Ne(model.FieldStatus, model.FlagDelete),
		query.Ne(model.FieldID, model.ReservedAdminID))
	if err != nil {
		return err
	}
	if err := spec.OrAll(authConds); err != nil {
		return err
	}
	return s.findPage(ctx, spec, pm)
}

// FindPageInOrg lists the live users of orgID and every org below it.
func (s *UserService) FindPageInOrg(ctx context.Context, pm *model.PageModel[model.User], orgID string) error {
	orgIDs, err := s.orgService.FindDescendantIDs(ctx, orgID)
	if err != nil {
		return err
	}
	orgIDs = append([]string{orgID}, orgIDs...)

	spec, err := query.BuildSpecification[model.User](pm.QueryConditionJSON,
		query.Ne(model.FieldStatus, model.FlagDelete),
		query.Ne(model.FieldID, model.ReservedAdminID),
		query.In(model.FieldOrgID, orgIDs))
	if err != nil {
		return err
	}
	return s.findPage(ctx, spec, pm)
}

func (s *UserService) findPage(ctx context.Context, spec *query.Specification[model.User], pm *model.PageModel[model.User]) error {
	if pm.SortName != "" {
		if err := spec.OrderBy(pm.SortName, pm.Desc()); err != nil {
			return err
		}
	} else if err := spec.OrderBy(model.ColumnLastModifiedDate, true); err != nil {
		return err
	}
	if err := s.userRepo.FindPage(ctx, spec, pm); err != nil {
		return err
	}
	return s.loadPageRelations(ctx, pm.Data)
}

// loadPageRelations attaches orgs and audit names to a page in two batch queries.
func (s *UserService) loadPageRelations(ctx context.Context, users []model.User) error {
	if len(users) == 0 {
		return nil
	}
	orgIDs := make([]string, 0, len(users))
	seen := make(map[string]bool)
	for _, u := range users {
		if u.OrgID != "" && !seen[u.OrgID] {
			seen[u.OrgID] = true
			orgIDs = append(orgIDs, u.OrgID)
		}
	}
	orgs, err := s.orgService.FindByIDs(ctx, orgIDs)
	if err != nil {
		return err
	}
	byID := make(map[string]*model.Org, len(orgs))
	for i := range orgs {
		byID[orgs[i].ID] = &orgs[i]
	}
	for i := range users {
		users[i].Org = byID[users[i].OrgID]
	}
	s.resolver.Resolve(ctx, auditables(users)...)
	return nil
}

// service/org_service.go
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/923325596/albedo-boot/dao"
	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/query"
	"github.com/923325596/albedo-boot/util"
)

//go:generate mockgen -destination=../test/service_mock/org_service_mock.go -package=mock_service . IOrgService

// IOrgService defines the interface for org tree operations
type IOrgService interface {
	FindOne(ctx context.Context, id string) (*model.Org, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Org, error)
	FindOneVo(ctx context.Context, id string) (*model.OrgVo, error)
	FindOneByName(ctx context.Context, name string) (*model.Org, error)
	Save(ctx context.Context, vo model.OrgVo) (*model.Org, error)
	FindPage(ctx context.Context, pm *model.PageModel[model.Org]) error
	FindDescendantIDs(ctx context.Context, id string) ([]string, error)
	DeleteBatchIDs(ctx context.Context, ids []string) (int64, error)
}

// OrgService keeps the parent_ids paths and leaf flags of the org tree in step
// and mirrors every change into the graph store when one is configured.
type OrgService struct {
	orgDAO         *dao.OrgDAO
	graph          dao.OrgGraph
	resolver       *dao.AuditResolver
	tx             *dao.Transactor
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IOrgService = &OrgService{}

// NewOrgService creates a new instance of OrgService. graph may be nil.
func NewOrgService(orgDAO *dao.OrgDAO, graph dao.OrgGraph, resolver *dao.AuditResolver, tx *dao.Transactor, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *OrgService {
	return &OrgService{
		orgDAO:         orgDAO,
		graph:          graph,
		resolver:       resolver,
		tx:             tx,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

func (s *OrgService) FindOne(ctx context.Context, id string) (*model.Org, error) {
	return s.orgDAO.FindByID(ctx, id)
}

func (s *OrgService) FindByIDs(ctx context.Context, ids []string) ([]model.Org, error) {
	return s.orgDAO.FindByIDs(ctx, ids)
}

// FindOneVo returns nil, nil when the org does not exist.
func (s *OrgService) FindOneVo(ctx context.Context, id string) (*model.OrgVo, error) {
	org, err := s.orgDAO.FindByID(ctx, id)
	if err != nil || org == nil {
		return nil, err
	}
	s.resolver.Resolve(ctx, org)
	vo, err := OrgVoOf(org)
	if err != nil {
		return nil, err
	}
	if org.ParentID != "" && org.ParentID != model.TreeRootID {
		parent, err := s.orgDAO.FindByID(ctx, org.ParentID)
		if err != nil {
			return nil, err
		}
		if parent != nil {
			vo.ParentName = parent.Name
		}
	}
	return &vo, nil
}

func (s *OrgService) FindOneByName(ctx context.Context, name string) (*model.Org, error) {
	return s.orgDAO.FindOneByName(ctx, name)
}

// Save places the org under vo.ParentID, the root when empty. Moving an org
// rewrites the paths of its whole subtree.
func (s *OrgService) Save(ctx context.Context, vo model.OrgVo) (*model.Org, error) {
	if err := s.validationUtil.ValidateOrg(vo); err != nil {
		return nil, err
	}

	var org *model.Org
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		org = &model.Org{}
		if vo.ID != "" {
			existing, err := s.orgDAO.FindByID(ctx, vo.ID)
			if err != nil {
				return err
			}
			if existing == nil {
				return echo_errors.WrapRuntimeMsg(echo_errors.ErrOrgNotFound, "org %s not found", vo.ID)
			}
			org = existing
		}
		oldParentID, oldParentIDs := org.ParentID, org.ParentIDs
		copyVoToOrg(vo, org)

		parentID := vo.ParentID
		if parentID == "" {
			parentID = model.TreeRootID
		}
		if parentID == model.TreeRootID {
			org.ParentIDs = model.TreeRootID + ","
		} else {
			parent, err := s.orgDAO.FindByID(ctx, parentID)
			if err != nil {
				return err
			}
			if parent == nil {
				return echo_errors.WrapRuntimeMsg(echo_errors.ErrOrgNotFound, "parent org %s not found", parentID)
			}
			if !org.IsNew() && strings.Contains(parent.ParentIDs, ","+org.ID+",") {
				return echo_errors.WrapRuntimeMsg(echo_errors.ErrInvalidOrgData, "an org cannot move below its own descendant")
			}
			org.ParentIDs = parent.ChildParentIDs(parent.ID)
		}
		org.ParentID = parentID

		if org.IsNew() {
			org.Leaf = true
			if err := s.orgDAO.Create(ctx, org); err != nil {
				return err
			}
		} else {
			if err := s.orgDAO.Update(ctx, org); err != nil {
				return err
			}
			if oldParentIDs != org.ParentIDs {
				if err := s.orgDAO.MoveSubtree(ctx, org.ID, oldParentIDs+org.ID+",", org.ParentIDs+org.ID+","); err != nil {
					return err
				}
			}
		}

		if parentID != model.TreeRootID {
			if err := s.orgDAO.SetLeaf(ctx, parentID, false); err != nil {
				return err
			}
		}
		if oldParentID != "" && oldParentID != parentID {
			return s.refreshLeaf(ctx, oldParentID)
		}
		return nil
	})
	if err != nil {
		logger.Error("Error saving org", zap.Error(err), zap.String("name", vo.Name))
		return nil, err
	}

	s.mirror(ctx, *org)
	s.eventBus.Publish(ctx, util.EventOrgSaved, model.ActorFromContext(ctx), util.ChangePayload{
		IDs:     []string{org.ID},
		Details: map[string]interface{}{"name": org.Name, "parentId": org.ParentID},
	})
	logger.Info("Org saved successfully", zap.String("orgID", org.ID))
	return org, nil
}

func (s *OrgService) refreshLeaf(ctx context.Context, id string) error {
	if id == model.TreeRootID {
		return nil
	}
	n, err := s.orgDAO.CountChildren(ctx, []string{id})
	if err != nil {
		return err
	}
	return s.orgDAO.SetLeaf(ctx, id, n == 0)
}

// Graph failures never fail the save. The SQL tree stays authoritative.
func (s *OrgService) mirror(ctx context.Context, org model.Org) {
	if s.graph == nil {
		return
	}
	if err := s.graph.Upsert(ctx, org); err != nil {
		logger.Warn("Failed to mirror org into graph", zap.Error(err), zap.String("orgID", org.ID))
	}
}

func (s *OrgService) FindPage(ctx context.Context, pm *model.PageModel[model.Org]) error {
	spec, err := query.BuildSpecification[model.Org](pm.QueryConditionJSON,
		query.Ne(model.FieldStatus, model.FlagDelete))
	if err != nil {
		return err
	}
	if pm.SortName != "" {
		if err := spec.OrderBy(pm.SortName, pm.Desc()); err != nil {
			return err
		}
	} else {
		if err := spec.OrderBy("parentIds", false); err != nil {
			return err
		}
		if err := spec.OrderBy("sort", false); err != nil {
			return err
		}
	}
	if err := s.orgDAO.FindPage(ctx, spec, pm); err != nil {
		return err
	}
	s.resolver.Resolve(ctx, auditables(pm.Data)...)
	return nil
}

// FindDescendantIDs asks the graph first and falls back to the parent_ids path.
func (s *OrgService) FindDescendantIDs(ctx context.Context, id string) ([]string, error) {
	if s.graph != nil {
		ids, err := s.graph.DescendantIDs(ctx, id)
		if err == nil {
			return ids, nil
		}
		logger.Warn("Graph descendant lookup failed, using parent_ids", zap.Error(err), zap.String("orgID", id))
	}
	orgs, err := s.orgDAO.FindDescendants(ctx, id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(orgs))
	for _, o := range orgs {
		ids = append(ids, o.ID)
	}
	return ids, nil
}

// DeleteBatchIDs refuses when any listed org still has live children.
func (s *OrgService) DeleteBatchIDs(ctx context.Context, ids []string) (int64, error) {
	var n int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		children, err := s.orgDAO.CountChildren(ctx, ids)
		if err != nil {
			return err
		}
		if children > 0 {
			return echo_errors.WrapRuntimeMsg(echo_errors.ErrOrgHasChildren, "org has children and cannot be deleted")
		}
		orgs, err := s.orgDAO.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		n, err = s.orgDAO.DeleteByIDs(ctx, ids)
		if err != nil {
			return err
		}
		parents := make(map[string]bool)
		for _, o := range orgs {
			if !parents[o.ParentID] {
				parents[o.ParentID] = true
				if err := s.refreshLeaf(ctx, o.ParentID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Error deleting orgs", zap.Error(err), zap.Strings("ids", ids))
		return 0, err
	}

	if s.graph != nil {
		if err := s.graph.Delete(ctx, ids); err != nil {
			logger.Warn("Failed to delete orgs from graph", zap.Error(err), zap.Strings("ids", ids))
		}
	}
	s.eventBus.Publish(ctx, util.EventOrgDeleted, model.ActorFromContext(ctx), util.ChangePayload{IDs: ids})
	return n, nil
}

// controller/controllers.go
package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/923325596/albedo-boot/audit"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/service"
	helper_util "github.com/923325596/albedo-boot/util/helper"
)

type Controllers struct {
	User  *UserController
	Role  *RoleController
	Org   *OrgController
	Audit *AuditController
}

func InitializeControllers(services *service.Services, auditService audit.Service) *Controllers {
	return &Controllers{
		User:  NewUserController(services.User),
		Role:  NewRoleController(services.Role),
		Org:   NewOrgController(services.Org),
		Audit: NewAuditController(auditService),
	}
}

// RegisterRoutes mounts every controller under r.
func (cs *Controllers) RegisterRoutes(r *gin.RouterGroup) {
	cs.User.RegisterRoutes(r)
	cs.Role.RegisterRoutes(r)
	cs.Org.RegisterRoutes(r)
	cs.Audit.RegisterRoutes(r)
}

// bindPage reads the paging request from the query string.
func bindPage[T any](c *gin.Context) (*model.PageModel[T], error) {
	page, size, err := helper_util.GetPageParams(c)
	if err != nil {
		return nil, err
	}
	return &model.PageModel[T]{
		Page:               page,
		Size:               size,
		SortName:           c.Query("sortName"),
		SortOrder:          c.Query("sortOrder"),
		QueryConditionJSON: c.Query("queryConditionJson"),
	}, nil
}

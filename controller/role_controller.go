// controller/role_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/923325596/albedo-boot/errors"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/service"
	"github.com/923325596/albedo-boot/util"
	helper_util "github.com/923325596/albedo-boot/util/helper"
)

type RoleController struct {
	roleService service.IRoleService
}

func NewRoleController(roleService service.IRoleService) *RoleController {
	return &RoleController{
		roleService: roleService,
	}
}

// RegisterRoutes registers the API routes
func (rc *RoleController) RegisterRoutes(r *gin.RouterGroup) {
	roles := r.Group("/roles")
	{
		roles.GET("", rc.ListRoles)
		roles.GET("/:id", rc.GetRole)
		roles.POST("", rc.SaveRole)
		roles.PUT("/:ids/lock", rc.LockOrUnLock)
		roles.DELETE("/:ids", rc.DeleteRoles)
	}
}

func (rc *RoleController) GetRole(c *gin.Context) {
	role, err := rc.roleService.FindOneVo(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to retrieve role", err)
		return
	}
	if role == nil {
		util.RespondWithError(c, http.StatusNotFound, "Role not found", echo_errors.ErrRoleNotFound)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (rc *RoleController) ListRoles(c *gin.Context) {
	pm, err := bindPage[model.Role](c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", echo_errors.ErrInvalidPagination)
		return
	}
	if err := rc.roleService.FindPage(c.Request.Context(), pm); err != nil {
		util.RespondWithServiceError(c, "Failed to list roles", err)
		return
	}
	page, err := service.RoleVoPage(pm)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list roles", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (rc *RoleController) SaveRole(c *gin.Context) {
	var vo model.RoleVo
	if err := c.ShouldBindJSON(&vo); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role data", echo_errors.ErrInvalidRoleData)
		return
	}

	role, err := rc.roleService.Save(c.Request.Context(), vo)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to save role", err)
		return
	}

	code := http.StatusOK
	if vo.ID == "" {
		code = http.StatusCreated
	}
	out, err := service.RoleVoOf(role)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to save role", err)
		return
	}
	c.JSON(code, out)
}

func (rc *RoleController) LockOrUnLock(c *gin.Context) {
	if err := rc.roleService.LockOrUnLock(c.Request.Context(), helper_util.GetIDList(c, "ids")); err != nil {
		util.RespondWithServiceError(c, "Failed to lock roles", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rc *RoleController) DeleteRoles(c *gin.Context) {
	n, err := rc.roleService.DeleteBatchIDs(c.Request.Context(), helper_util.GetIDList(c, "ids"))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to delete roles", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

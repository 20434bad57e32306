// controller/org_controller.go
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

type OrgController struct {
	orgService service.IOrgService
}

func NewOrgController(orgService service.IOrgService) *OrgController {
	return &OrgController{
		orgService: orgService,
	}
}

// RegisterRoutes registers the API routes
func (oc *OrgController) RegisterRoutes(r *gin.RouterGroup) {
	orgs := r.Group("/orgs")
	{
		orgs.GET("", oc.ListOrgs)
		orgs.GET("/:id", oc.GetOrg)
		orgs.GET("/:id/descendants", oc.GetDescendants)
		orgs.POST("", oc.SaveOrg)
		orgs.DELETE("/:ids", oc.DeleteOrgs)
	}
}

func (oc *OrgController) GetOrg(c *gin.Context) {
	org, err := oc.orgService.FindOneVo(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to retrieve org", err)
		return
	}
	if org == nil {
		util.RespondWithError(c, http.StatusNotFound, "Org not found", echo_errors.ErrOrgNotFound)
		return
	}
	c.JSON(http.StatusOK, org)
}

func (oc *OrgController) GetDescendants(c *gin.Context) {
	ids, err := oc.orgService.FindDescendantIDs(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to load descendants", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, ids)
}

func (oc *OrgController) ListOrgs(c *gin.Context) {
	pm, err := bindPage[model.Org](c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", echo_errors.ErrInvalidPagination)
		return
	}
	if err := oc.orgService.FindPage(c.Request.Context(), pm); err != nil {
		util.RespondWithServiceError(c, "Failed to list orgs", err)
		return
	}
	page, err := service.OrgVoPage(pm)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list orgs", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (oc *OrgController) SaveOrg(c *gin.Context) {
	var vo model.OrgVo
	if err := c.ShouldBindJSON(&vo); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid org data", echo_errors.ErrInvalidOrgData)
		return
	}

	org, err := oc.orgService.Save(c.Request.Context(), vo)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to save org", err)
		return
	}

	code := http.StatusOK
	if vo.ID == "" {
		code = http.StatusCreated
	}
	out, err := service.OrgVoOf(org)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to save org", err)
		return
	}
	c.JSON(code, out)
}

func (oc *OrgController) DeleteOrgs(c *gin.Context) {
	n, err := oc.orgService.DeleteBatchIDs(c.Request.Context(), helper_util.GetIDList(c, "ids"))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to delete orgs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

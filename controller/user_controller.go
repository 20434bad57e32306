// controller/user_controller.go
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

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

type changePasswordRequest struct {
	LoginID     string `json:"loginId" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
	Avatar      string `json:"avatar"`
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", uc.ListUsers)
		users.GET("/org/:orgId", uc.ListUsersInOrg)
		users.GET("/login/:loginId", uc.GetUserByLogin)
		users.GET("/excel-template", uc.GetExcelTemplate)
		users.GET("/:id", uc.GetUser)
		users.POST("", uc.SaveUser)
		users.POST("/import", uc.ImportUsers)
		users.PUT("/password", uc.ChangePassword)
		users.PUT("/:ids/lock", uc.LockOrUnLock)
		users.DELETE("/:ids", uc.DeleteUsers)
	}
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.userService.FindOneVo(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to retrieve user", err)
		return
	}
	if user == nil {
		util.RespondWithError(c, http.StatusNotFound, "User not found", echo_errors.ErrUserNotFound)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetUserByLogin(c *gin.Context) {
	user, err := uc.userService.GetUserWithAuthoritiesByLogin(c.Request.Context(), c.Param("loginId"))
	if err != nil {
		util.RespondWithServiceError(c, "Failed to retrieve user", err)
		return
	}
	if user == nil {
		util.RespondWithError(c, http.StatusNotFound, "User not found", echo_errors.ErrUserNotFound)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetExcelTemplate(c *gin.Context) {
	user, err := uc.userService.FindExcelOneVo(c.Request.Context())
	if err != nil {
		util.RespondWithServiceError(c, "Failed to build template", err)
		return
	}
	if user == nil {
		user = &model.UserVo{}
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers endpoint. Conditions come from the queryConditionJson parameter.
func (uc *UserController) ListUsers(c *gin.Context) {
	pm, err := bindPage[model.User](c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", echo_errors.ErrInvalidPagination)
		return
	}
	if err := uc.userService.FindPageByPayload(c.Request.Context(), pm, nil); err != nil {
		util.RespondWithServiceError(c, "Failed to list users", err)
		return
	}
	page, err := service.UserVoPage(pm)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (uc *UserController) ListUsersInOrg(c *gin.Context) {
	pm, err := bindPage[model.User](c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", echo_errors.ErrInvalidPagination)
		return
	}
	if err := uc.userService.FindPageInOrg(c.Request.Context(), pm, c.Param("orgId")); err != nil {
		util.RespondWithServiceError(c, "Failed to list users", err)
		return
	}
	page, err := service.UserVoPage(pm)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// SaveUser creates the user when the body has no id and updates it otherwise.
func (uc *UserController) SaveUser(c *gin.Context) {
	var vo model.UserVo
	if err := c.ShouldBindJSON(&vo); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", echo_errors.ErrInvalidUserData)
		return
	}

	user, err := uc.userService.Save(c.Request.Context(), vo)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to save user", err)
		return
	}

	code := http.StatusOK
	if vo.IsNew() {
		code = http.StatusCreated
	}
	out, err := service.UserVoOf(user)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to save user", err)
		return
	}
	c.JSON(code, out)
}

// ImportUsers saves the rows in order and stops at the first failure.
func (uc *UserController) ImportUsers(c *gin.Context) {
	var rows []model.UserExcelVo
	if err := c.ShouldBindJSON(&rows); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid import data", echo_errors.ErrInvalidUserData)
		return
	}

	imported := 0
	for _, row := range rows {
		if _, err := uc.userService.SaveExcel(c.Request.Context(), row); err != nil {
			util.RespondWithServiceError(c, "Failed to import users", err)
			return
		}
		imported++
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

func (uc *UserController) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid password data", echo_errors.ErrInvalidUserData)
		return
	}

	changed, err := uc.userService.ChangePassword(c.Request.Context(), req.LoginID, req.NewPassword, req.Avatar)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to change password", err)
		return
	}
	if !changed {
		util.RespondWithError(c, http.StatusNotFound, "User not found", echo_errors.ErrUserNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (uc *UserController) LockOrUnLock(c *gin.Context) {
	ids := helper_util.GetIDList(c, "ids")
	if err := uc.userService.LockOrUnLock(c.Request.Context(), ids); err != nil {
		util.RespondWithServiceError(c, "Failed to lock users", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUsers removes the users, or only marks them deleted with ?soft=true.
func (uc *UserController) DeleteUsers(c *gin.Context) {
	ids := helper_util.GetIDList(c, "ids")
	if c.Query("soft") == "true" {
		if err := uc.userService.Delete(c.Request.Context(), ids); err != nil {
			util.RespondWithServiceError(c, "Failed to delete users", err)
			return
		}
		c.Status(http.StatusNoContent)
		return
	}

	n, err := uc.userService.DeleteBatchIDs(c.Request.Context(), ids)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to delete users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

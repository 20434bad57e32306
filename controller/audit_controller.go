// controller/audit_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/923325596/albedo-boot/audit"
	"github.com/923325596/albedo-boot/util"
)

var errInvalidRange = errors.New("invalid time range")

type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{auditService: auditService}
}

func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit-logs", ac.QueryLogs)
}

// QueryLogs lists audit entries between from and to (RFC3339). The window
// defaults to the last 24 hours.
func (ac *AuditController) QueryLogs(c *gin.Context) {
	to := time.Now()
	from := to.Add(-24 * time.Hour)
	var err error
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse(time.RFC3339, v); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid from parameter", err)
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse(time.RFC3339, v); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid to parameter", err)
			return
		}
	}
	if to.Before(from) {
		util.RespondWithError(c, http.StatusBadRequest, "from must not be after to", errInvalidRange)
		return
	}

	logs, err := ac.auditService.QueryLogs(c.Request.Context(), from, to, c.Query("actorId"), c.Query("resourceId"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit logs", err)
		return
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}
	c.JSON(http.StatusOK, logs)
}

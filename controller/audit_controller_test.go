package controller_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/923325596/albedo-boot/audit"
	"github.com/923325596/albedo-boot/controller"
	logger "github.com/923325596/albedo-boot/logging"
	mock_util "github.com/923325596/albedo-boot/test/mock"
)

func TestAuditController(t *testing.T) {
	logger.InitNopLogger()

	mockAuditService := new(mock_util.MockAuditService)
	auditController := controller.NewAuditController(mockAuditService)
	router := setupRouter()
	auditController.RegisterRoutes(router.Group("/"))

	from, _ := time.Parse(time.RFC3339, "2024-01-01T00:00:00Z")
	to, _ := time.Parse(time.RFC3339, "2024-01-02T00:00:00Z")

	t.Run("QueryLogs_Success", func(t *testing.T) {
		mockAuditService.On("QueryLogs", mock.Anything, from, to, "1", "").
			Return([]audit.AuditLog{{ID: "a1", Action: "SAVED_USER", Entity: "user"}}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET",
			"/audit-logs?from=2024-01-01T00:00:00Z&to=2024-01-02T00:00:00Z&actorId=1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"action":"SAVED_USER"`)
	})

	t.Run("QueryLogs_EmptyIsArray", func(t *testing.T) {
		mockAuditService.On("QueryLogs", mock.Anything, from, to, "", "u2").
			Return([]audit.AuditLog(nil), nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET",
			"/audit-logs?from=2024-01-01T00:00:00Z&to=2024-01-02T00:00:00Z&resourceId=u2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("QueryLogs_BadRange", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET",
			"/audit-logs?from=2024-01-02T00:00:00Z&to=2024-01-01T00:00:00Z", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("QueryLogs_BadTimestamp", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/audit-logs?from=yesterday", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("QueryLogs_Failure", func(t *testing.T) {
		mockAuditService.On("QueryLogs", mock.Anything, from, to, "", "").
			Return([]audit.AuditLog(nil), errors.New("es down")).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET",
			"/audit-logs?from=2024-01-01T00:00:00Z&to=2024-01-02T00:00:00Z", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	mockAuditService.AssertExpectations(t)
}

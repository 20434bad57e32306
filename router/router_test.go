package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/923325596/albedo-boot/controller"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/middleware"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/router"
	"github.com/923325596/albedo-boot/service"
	mock_util "github.com/923325596/albedo-boot/test/mock"
	mock_service "github.com/923325596/albedo-boot/test/service_mock"
)

func TestSetupRouter(t *testing.T) {
	logger.InitNopLogger()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	userService := mock_service.NewMockIUserService(ctrl)
	controllers := controller.InitializeControllers(&service.Services{
		User: userService,
		Role: mock_service.NewMockIRoleService(ctrl),
		Org:  mock_service.NewMockIOrgService(ctrl),
	}, new(mock_util.MockAuditService))

	r := router.SetupRouter(controllers, router.Options{
		AuthSecret:        "s3cret",
		RateLimitRequests: 10,
		RateLimitDuration: time.Minute,
	})

	t.Run("HealthIsOpen", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("APIRequiresToken", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/u1", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ActorReachesService", func(t *testing.T) {
		token, err := middleware.IssueToken("s3cret", "u9", "ops", jwt.RegisteredClaims{})
		require.NoError(t, err)

		userService.EXPECT().FindOneVo(gomock.Any(), "u1").DoAndReturn(
			func(ctx context.Context, id string) (*model.UserVo, error) {
				return &model.UserVo{ID: id, LoginID: model.ActorFromContext(ctx)}, nil
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/u1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"loginId":"u9"`)
	})
}

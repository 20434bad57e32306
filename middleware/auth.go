package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
)

// Claims carries the login next to the registered claims. Subject holds the user id.
type Claims struct {
	jwt.RegisteredClaims
	LoginID string `json:"loginId"`
}

var errMissingToken = fmt.Errorf("%w: missing bearer token", echo_errors.ErrUnauthorized)

// Auth verifies HS256 bearer tokens signed with secret and puts the subject on
// the request context as the acting user.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		claims, err := parseToken(c.GetHeader("Authorization"), key)
		if err != nil {
			logger.Warn("Rejected request token",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		ctx := model.WithActor(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)
		c.Set("requestingUserID", claims.Subject)
		c.Set("requestingUser", claims.LoginID)
		c.Next()
	}
}

func parseToken(header string, key []byte) (*Claims, error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return nil, errMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: invalid token claims", echo_errors.ErrUnauthorized)
	}
	return claims, nil
}

// IssueToken signs a token for userID. Used by tooling and tests.
func IssueToken(secret, userID, loginID string, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = userID
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: claims, LoginID: loginID})
	return token.SignedString([]byte(secret))
}

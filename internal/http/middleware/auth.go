package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/takashi605/blog-backend/internal/http/response"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
)

// AuthMiddleware guards the admin surface with an HMAC-signed bearer
// token. An empty secret disables the guard, for local development.
type AuthMiddleware struct {
	log    *logger.Logger
	secret []byte
}

func NewAuthMiddleware(baseLog *logger.Logger, secret string) *AuthMiddleware {
	middlewareLog := baseLog.With("middleware", "AuthMiddleware")
	if secret == "" {
		middlewareLog.Warn("admin auth disabled: no secret configured")
	}
	return &AuthMiddleware{log: middlewareLog, secret: []byte(secret)}
}

func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(am.secret) == 0 {
			c.Next()
			return
		}
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", errMissingToken)
			c.Abort()
			return
		}
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			return am.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			am.log.Debug("rejected admin token", "error", err)
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", errInvalidToken)
			c.Abort()
			return
		}
		c.Next()
	}
}

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
)

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aeshevdaniyar/medusa/internal/infrastructure/auth"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/logger"
	"github.com/aeshevdaniyar/medusa/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	claimsKey           = "auth_claims"
)

type claimsCtxKey struct{}

// TokenValidator validates a bearer token
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// AdminAuth requires a valid bearer token on every request. Paths listed in
// skip are served without one.
func AdminAuth(validator TokenValidator, skip ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, prefix := range skip {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		header := c.GetHeader(authorizationHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			unauthorized(c, "Missing bearer token")
			return
		}

		claims, err := validator.Validate(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			logger.FromContext(c.Request.Context()).Debug("Rejected admin token", zap.Error(err))
			if errors.Is(err, auth.ErrExpiredToken) {
				unauthorized(c, "Token has expired")
				return
			}
			unauthorized(c, "Invalid token")
			return
		}

		c.Set(claimsKey, claims)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), claimsCtxKey{}, claims))
		c.Next()
	}
}

// ClaimsFromContext returns the claims of the authenticated actor
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(*auth.Claims)
	return claims, ok
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message, logger.GetRequestID(c.Request.Context())))
}

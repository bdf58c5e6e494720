package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"workshop-enroll/internal/domain/account"
	"workshop-enroll/internal/handler/httperr"
	"workshop-enroll/internal/pkg/cookie"
	"workshop-enroll/internal/pkg/errs"
	"workshop-enroll/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
}

const (
	ctxAccountIDKey   = "account_id"
	ctxAccountRoleKey = "account_role"
)

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, nil, "Access token required")
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		setAuthContext(c, claims)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetAccountRole(c)
		if !ok {
			// Should be used after RequireAuth()
			httperr.Abort(c, http.StatusInternalServerError, errs.New("missing role in context"), "Internal server error")
			return
		}

		if role != account.RoleAdmin {
			httperr.Abort(c, http.StatusForbidden, nil, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not
// abort on failure. Cart and checkout endpoints serve guests and accounts
// through the same routes.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			// Invalid token; continue as a guest.
			c.Next()
			return
		}

		setAuthContext(c, claims)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setAuthContext(c *gin.Context, claims *jwt.Claims) {
	c.Set(ctxAccountIDKey, claims.AccountID)
	c.Set(ctxAccountRoleKey, account.Role(claims.Role))
	c.Set("jwt_claims", map[string]any{
		"account_id": claims.AccountID.String(),
		"role":       claims.Role,
	})
}

func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, exists := c.Get(ctxAccountIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := accountID.(uuid.UUID)
	return id, ok
}

func GetAccountRole(c *gin.Context) (account.Role, bool) {
	accountRole, exists := c.Get(ctxAccountRoleKey)
	if !exists {
		return "", false
	}

	role, ok := accountRole.(account.Role)
	return role, ok
}

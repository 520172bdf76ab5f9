package middleware

import (
	"strings"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/auth"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/model"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/repository"
	"github.com/MAHBUBNISHAN/yoga-school-server/pkg/response"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Identity is the verified claims bundle attached to the request context.
// Role here is the point-in-time snapshot stamped at issuance.
type Identity struct {
	Email string
	Role  string
}

type AuthMiddleware struct {
	userRepo repository.UserRepository
	secret   string
}

func NewAuthMiddleware(userRepo repository.UserRepository, secret string) *AuthMiddleware {
	return &AuthMiddleware{
		userRepo: userRepo,
		secret:   secret,
	}
}

// RequireAuth is the authentication gate: cheap, stateless, no store
// access. Missing header, wrong scheme and any token verification failure
// all produce the same 401 body.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			response.Unauthorized(c)
			return
		}

		claims, err := auth.Parse(tokenString, m.secret)
		if err != nil {
			response.Unauthorized(c)
			return
		}

		c.Set(identityKey, Identity{Email: claims.Email, Role: claims.Role})
		c.Next()
	}
}

// RequireRole is the authorization gate. It deliberately ignores the role
// embedded in the token and re-reads the stored role, so a demotion takes
// effect without waiting for token expiry.
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			response.Unauthorized(c)
			return
		}

		user, err := m.userRepo.FindByEmail(c.Request.Context(), identity.Email)
		if err != nil || user.Role != role {
			response.Forbidden(c)
			return
		}

		c.Next()
	}
}

// RequireAdmin gates the admin-only routes.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(model.RoleAdmin)
}

// RequireInstructor gates class creation.
func (m *AuthMiddleware) RequireInstructor() gin.HandlerFunc {
	return m.RequireRole(model.RoleInstructor)
}

// GetIdentity returns the identity a prior RequireAuth attached.
func GetIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}

	identity, ok := value.(Identity)
	return identity, ok
}

package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/solidtrack/timelock-service/internal/domain"
)

const (
	ctxUserID = "userID"
	ctxOrg    = "organization"
	ctxMember = "member"
)

// Middleware authenticates requests and resolves the acting member
// inside the organization named by the route.
type Middleware struct {
	jwtSecret  []byte
	orgRepo    domain.OrganizationRepository
	memberRepo domain.MemberRepository
}

func NewMiddleware(jwtSecret string, orgRepo domain.OrganizationRepository, memberRepo domain.MemberRepository) *Middleware {
	return &Middleware{
		jwtSecret:  []byte(jwtSecret),
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
	}
}

// AuthRequired validates the Bearer token and stashes the user id.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization format"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenParts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			c.Abort()
			return
		}
		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

// ResolveMember loads the organization from the route and the acting
// user's membership in it. A user without a membership gets a plain
// forbidden, whether or not the organization exists, so nothing
// leaks across tenants.
func (m *Middleware) ResolveMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ctxUserID)
		orgID := c.Param("orgID")

		org, err := m.orgRepo.GetByID(c.Request.Context(), orgID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
			c.Abort()
			return
		}

		member, err := m.memberRepo.GetByUserAndOrganization(c.Request.Context(), userID, orgID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
			c.Abort()
			return
		}

		c.Set(ctxOrg, org)
		c.Set(ctxMember, member)
		c.Next()
	}
}

func orgFromContext(c *gin.Context) *domain.Organization {
	return c.MustGet(ctxOrg).(*domain.Organization)
}

func memberFromContext(c *gin.Context) *domain.Member {
	return c.MustGet(ctxMember).(*domain.Member)
}

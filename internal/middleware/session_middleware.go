package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selim/lostfound/internal/app/models"
	"github.com/selim/lostfound/internal/app/models/dto"
	"github.com/selim/lostfound/internal/pkg/auth"
)

// Context keys set by the session middleware.
const (
	ContextStudentID = "studentID"
	ContextAdminID   = "adminID"
	ContextRole      = "role"
)

// SessionMiddleware authenticates requests from the session cookie set at
// login, falling back to an Authorization bearer token.
type SessionMiddleware struct {
	jwtService *auth.JWTService
	cookieName string
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(jwtService *auth.JWTService, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService: jwtService,
		cookieName: cookieName,
	}
}

// CookieName returns the configured session cookie name.
func (m *SessionMiddleware) CookieName() string {
	return m.cookieName
}

func (m *SessionMiddleware) tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
		return cookie
	}
	if header := c.GetHeader("Authorization"); header != "" {
		if token, err := auth.ExtractBearerToken(header); err == nil {
			return token
		}
	}
	return ""
}

func (m *SessionMiddleware) abortUnauthenticated(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	if errors.Is(err, auth.ErrExpiredToken) {
		detail = dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Session expired")
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
}

// StudentRequired allows only requests carrying a valid student session.
func (m *SessionMiddleware) StudentRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.tokenFromRequest(c)
		if token == "" {
			m.abortUnauthenticated(c, nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			m.abortUnauthenticated(c, err)
			return
		}

		if claims.Role != string(models.RoleStudent) || claims.StudentID == "" {
			detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Student session required")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
			return
		}

		c.Set(ContextStudentID, claims.StudentID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// AdministratorRequired allows only requests carrying a valid administrator
// session.
func (m *SessionMiddleware) AdministratorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.tokenFromRequest(c)
		if token == "" {
			m.abortUnauthenticated(c, nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			m.abortUnauthenticated(c, err)
			return
		}

		if claims.Role != string(models.RoleAdministrator) || claims.AdminID <= 0 {
			detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Administrator session required")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

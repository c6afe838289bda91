package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selim/lostfound/internal/pkg/auth"
)

const testCookie = "lf_session"

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	session := NewSessionMiddleware(jwtService, testCookie)

	router := gin.New()
	router.GET("/student_only", session.StudentRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"studentId": c.GetString(ContextStudentID)})
	})
	router.GET("/admin_only", session.AdministratorRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"adminId": c.GetInt64(ContextAdminID)})
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, path, cookie, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStudentRequired(t *testing.T) {
	router, jwtService := newTestRouter(t)

	studentToken, _, err := jwtService.GenerateStudentToken("20231234")
	if err != nil {
		t.Fatalf("GenerateStudentToken() error = %v", err)
	}
	adminToken, _, err := jwtService.GenerateAdministratorToken(1)
	if err != nil {
		t.Fatalf("GenerateAdministratorToken() error = %v", err)
	}

	tests := []struct {
		name   string
		cookie string
		bearer string
		want   int
	}{
		{"no session", "", "", http.StatusUnauthorized},
		{"garbage cookie", "not-a-token", "", http.StatusUnauthorized},
		{"student cookie", studentToken, "", http.StatusOK},
		{"student bearer fallback", "", studentToken, http.StatusOK},
		{"administrator session on student route", adminToken, "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "/student_only", tt.cookie, tt.bearer)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestAdministratorRequired(t *testing.T) {
	router, jwtService := newTestRouter(t)

	studentToken, _, err := jwtService.GenerateStudentToken("20231234")
	if err != nil {
		t.Fatalf("GenerateStudentToken() error = %v", err)
	}
	adminToken, _, err := jwtService.GenerateAdministratorToken(1)
	if err != nil {
		t.Fatalf("GenerateAdministratorToken() error = %v", err)
	}

	tests := []struct {
		name   string
		cookie string
		want   int
	}{
		{"no session", "", http.StatusUnauthorized},
		{"administrator cookie", adminToken, http.StatusOK},
		{"student session on administrator route", studentToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "/admin_only", tt.cookie, "")
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestExpiredSessionRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    -time.Minute,
		TokenIssuer: "test",
	})
	token, _, err := expired.GenerateStudentToken("20231234")
	if err != nil {
		t.Fatalf("GenerateStudentToken() error = %v", err)
	}

	router, _ := newTestRouter(t)
	w := doRequest(router, "/student_only", token, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d for an expired session", w.Code, http.StatusUnauthorized)
	}
}

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/selim/lostfound/internal/app/models"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestStudentTokenRoundTrip(t *testing.T) {
	svc := testService(time.Hour)

	token, expiresIn, err := svc.GenerateStudentToken("20231234")
	if err != nil {
		t.Fatalf("GenerateStudentToken() error = %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.StudentID != "20231234" {
		t.Errorf("StudentID = %q, want %q", claims.StudentID, "20231234")
	}
	if claims.Role != string(models.RoleStudent) {
		t.Errorf("Role = %q, want student", claims.Role)
	}
	if claims.AdminID != 0 {
		t.Errorf("AdminID = %d, want 0 in a student token", claims.AdminID)
	}
}

func TestAdministratorTokenRoundTrip(t *testing.T) {
	svc := testService(time.Hour)

	token, _, err := svc.GenerateAdministratorToken(7)
	if err != nil {
		t.Fatalf("GenerateAdministratorToken() error = %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.AdminID != 7 {
		t.Errorf("AdminID = %d, want 7", claims.AdminID)
	}
	if claims.Role != string(models.RoleAdministrator) {
		t.Errorf("Role = %q, want administrator", claims.Role)
	}
	if claims.StudentID != "" {
		t.Errorf("StudentID = %q, want empty in an administrator token", claims.StudentID)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := testService(-time.Minute)

	token, _, err := svc.GenerateStudentToken("20231234")
	if err != nil {
		t.Fatalf("GenerateStudentToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateStudentToken("20231234")
	if err != nil {
		t.Fatalf("GenerateStudentToken() error = %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour, TokenIssuer: "test"})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := testService(time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ValidateToken(token); err == nil {
			t.Errorf("ValidateToken(%q) accepted garbage", token)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc123", "abc123", false},
		{"raw token", "abc123", "abc123", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

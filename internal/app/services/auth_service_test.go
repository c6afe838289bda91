package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/selim/lostfound/internal/app/models"
	"github.com/selim/lostfound/internal/app/models/dto"
	"github.com/selim/lostfound/internal/pkg/apperrors"
	"github.com/selim/lostfound/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
}

func newTestAuthService(students *fakeStudentStore, admins *fakeAdministratorStore) AuthService {
	return NewAuthService(students, admins, newTestJWTService(), zerolog.Nop())
}

func seedStudent(t *testing.T, students *fakeStudentStore, studentID, password string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	students.students[studentID] = &models.Student{
		StudentID:    studentID,
		Name:         "Jane Doe",
		Email:        "jane@example.edu",
		Phone:        "5550001122",
		PasswordHash: hash,
	}
}

func TestRegisterStudent(t *testing.T) {
	students := newFakeStudentStore()
	svc := newTestAuthService(students, newFakeAdministratorStore())

	resp, err := svc.RegisterStudent(context.Background(), &dto.RegisterRequest{
		Name:            "Jane Doe",
		StudentID:       "20231234",
		Email:           "jane@example.edu",
		Phone:           "5550001122",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})
	if err != nil {
		t.Fatalf("RegisterStudent() error = %v", err)
	}
	if resp.StudentID != "20231234" {
		t.Errorf("RegisterStudent() studentID = %q, want %q", resp.StudentID, "20231234")
	}

	stored := students.students["20231234"]
	if stored == nil {
		t.Fatal("RegisterStudent() did not persist the student")
	}
	if stored.PasswordHash == "hunter22" {
		t.Error("RegisterStudent() stored the plaintext password")
	}
	if !auth.CheckPassword(stored.PasswordHash, "hunter22") {
		t.Error("RegisterStudent() stored hash does not verify against the password")
	}
}

func TestRegisterStudentPasswordMismatch(t *testing.T) {
	svc := newTestAuthService(newFakeStudentStore(), newFakeAdministratorStore())

	_, err := svc.RegisterStudent(context.Background(), &dto.RegisterRequest{
		Name:            "Jane Doe",
		StudentID:       "20231234",
		Email:           "jane@example.edu",
		Phone:           "5550001122",
		Password:        "hunter22",
		ConfirmPassword: "hunter23",
	})
	if !errors.Is(err, apperrors.ErrPasswordMismatch) {
		t.Errorf("RegisterStudent() error = %v, want ErrPasswordMismatch", err)
	}
}

func TestRegisterStudentDuplicateFailsFast(t *testing.T) {
	students := newFakeStudentStore()
	seedStudent(t, students, "20231234", "original")
	// An insert attempt after the duplicate check would surface this error
	students.createErr = errors.New("insert must not run for a duplicate")
	svc := newTestAuthService(students, newFakeAdministratorStore())

	_, err := svc.RegisterStudent(context.Background(), &dto.RegisterRequest{
		Name:            "Impostor",
		StudentID:       "20231234",
		Email:           "other@example.edu",
		Phone:           "5559998877",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})
	if !errors.Is(err, apperrors.ErrStudentAlreadyExists) {
		t.Errorf("RegisterStudent() error = %v, want ErrStudentAlreadyExists", err)
	}

	if !auth.CheckPassword(students.students["20231234"].PasswordHash, "original") {
		t.Error("duplicate registration modified the existing account")
	}
}

func TestLoginStudentGenericFailure(t *testing.T) {
	students := newFakeStudentStore()
	seedStudent(t, students, "20231234", "hunter22")
	svc := newTestAuthService(students, newFakeAdministratorStore())

	tests := []struct {
		name      string
		studentID string
		password  string
	}{
		{"unknown student id", "99999999", "hunter22"},
		{"wrong password", "20231234", "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LoginStudent(context.Background(), &dto.LoginRequest{
				StudentID: tt.studentID,
				Password:  tt.password,
			})
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Errorf("LoginStudent() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLoginStudentIssuesSessionToken(t *testing.T) {
	students := newFakeStudentStore()
	seedStudent(t, students, "20231234", "hunter22")
	jwtService := newTestJWTService()
	svc := NewAuthService(students, newFakeAdministratorStore(), jwtService, zerolog.Nop())

	resp, err := svc.LoginStudent(context.Background(), &dto.LoginRequest{
		StudentID: "20231234",
		Password:  "hunter22",
	})
	if err != nil {
		t.Fatalf("LoginStudent() error = %v", err)
	}
	if resp.Role != string(models.RoleStudent) {
		t.Errorf("LoginStudent() role = %q, want %q", resp.Role, models.RoleStudent)
	}

	claims, err := jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.StudentID != "20231234" {
		t.Errorf("token studentID = %q, want %q", claims.StudentID, "20231234")
	}
}

func TestChangePassword(t *testing.T) {
	students := newFakeStudentStore()
	seedStudent(t, students, "20231234", "oldpass")
	svc := newTestAuthService(students, newFakeAdministratorStore())

	err := svc.ChangePassword(context.Background(), &dto.ChangePasswordRequest{
		StudentID:       "20231234",
		NewPassword:     "newpass",
		ConfirmPassword: "newpass",
	})
	if err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	stored := students.students["20231234"]
	if stored.PasswordHash == "newpass" {
		t.Error("ChangePassword() stored the plaintext password")
	}
	if !auth.CheckPassword(stored.PasswordHash, "newpass") {
		t.Error("new password does not verify after change")
	}
	if auth.CheckPassword(stored.PasswordHash, "oldpass") {
		t.Error("old password still verifies after change")
	}
}

func TestChangePasswordErrors(t *testing.T) {
	students := newFakeStudentStore()
	seedStudent(t, students, "20231234", "oldpass")
	svc := newTestAuthService(students, newFakeAdministratorStore())

	tests := []struct {
		name    string
		req     dto.ChangePasswordRequest
		wantErr error
	}{
		{
			"mismatched confirmation",
			dto.ChangePasswordRequest{StudentID: "20231234", NewPassword: "a", ConfirmPassword: "b"},
			apperrors.ErrPasswordMismatch,
		},
		{
			"unknown student",
			dto.ChangePasswordRequest{StudentID: "99999999", NewPassword: "a", ConfirmPassword: "a"},
			apperrors.ErrStudentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ChangePassword(context.Background(), &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ChangePassword() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoginAdministrator(t *testing.T) {
	admins := newFakeAdministratorStore()
	hash, err := auth.HashPassword("staffpass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	admins.admins[1] = &models.Administrator{ID: 1, Email: "admin@lostfound.app", PasswordHash: hash}
	svc := newTestAuthService(newFakeStudentStore(), admins)

	resp, err := svc.LoginAdministrator(context.Background(), &dto.AdminLoginRequest{
		Email:    "admin@lostfound.app",
		Password: "staffpass",
	})
	if err != nil {
		t.Fatalf("LoginAdministrator() error = %v", err)
	}
	if resp.Role != string(models.RoleAdministrator) {
		t.Errorf("LoginAdministrator() role = %q, want %q", resp.Role, models.RoleAdministrator)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@lostfound.app", "staffpass"},
		{"wrong password", "admin@lostfound.app", "wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LoginAdministrator(context.Background(), &dto.AdminLoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Errorf("LoginAdministrator() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

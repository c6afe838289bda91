package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/selim/lostfound/internal/app/models"
	"github.com/selim/lostfound/internal/app/models/dto"
	"github.com/selim/lostfound/internal/pkg/apperrors"
	"github.com/selim/lostfound/internal/pkg/auth"
)

// StudentStore is the slice of the student repository the auth service needs.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	UpdatePasswordHash(ctx context.Context, studentID, passwordHash string) error
}

// AdministratorStore is the slice of the administrator repository the auth
// service needs.
type AdministratorStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Administrator, error)
	GetByID(ctx context.Context, id int64) (*models.Administrator, error)
}

// AuthService defines registration and login operations for both roles.
type AuthService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterRequest) (*dto.StudentResponse, error)
	LoginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error
	LoginAdministrator(ctx context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error)
	GetStudent(ctx context.Context, studentID string) (*dto.StudentResponse, error)
	GetAdministrator(ctx context.Context, id int64) (*dto.AdministratorResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	studentRepo StudentStore
	adminRepo   AdministratorStore
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(studentRepo StudentStore, adminRepo AdministratorStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// RegisterStudent registers a new student account. Duplicate identifiers are
// rejected outright before any insert is attempted; the stored credential is
// always a bcrypt hash, never the plaintext.
func (s *authServiceImpl) RegisterStudent(ctx context.Context, req *dto.RegisterRequest) (*dto.StudentResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	existing, err := s.studentRepo.GetByStudentID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing student: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrStudentAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		StudentID:    req.StudentID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentId", student.StudentID).Msg("Student registered")

	return &dto.StudentResponse{
		StudentID: student.StudentID,
		Name:      student.Name,
		Email:     student.Email,
		Phone:     student.Phone,
	}, nil
}

// LoginStudent authenticates a student and issues a session token. Unknown
// identifier and wrong password produce the same generic failure so the
// response never reveals which field was wrong.
func (s *authServiceImpl) LoginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error looking up student: %w", err)
	}
	if student == nil || !auth.CheckPassword(student.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateStudentToken(student.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	s.logger.Info().Str("studentId", student.StudentID).Msg("Student logged in")

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      string(models.RoleStudent),
	}, nil
}

// ChangePassword replaces a student's credential. The new password goes
// through the same hashing routine used at registration.
func (s *authServiceImpl) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	student, err := s.studentRepo.GetByStudentID(ctx, req.StudentID)
	if err != nil {
		return fmt.Errorf("error looking up student: %w", err)
	}
	if student == nil {
		return apperrors.ErrStudentNotFound
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.studentRepo.UpdatePasswordHash(ctx, req.StudentID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("studentId", req.StudentID).Msg("Student password changed")
	return nil
}

// LoginAdministrator authenticates a staff account against the
// administrators table with the same hash-check discipline as students.
func (s *authServiceImpl) LoginAdministrator(ctx context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error looking up administrator: %w", err)
	}
	if admin == nil || !auth.CheckPassword(admin.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAdministratorToken(admin.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	s.logger.Info().Str("email", admin.Email).Msg("Administrator logged in")

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      string(models.RoleAdministrator),
	}, nil
}

// GetStudent returns the dashboard view of a student.
func (s *authServiceImpl) GetStudent(ctx context.Context, studentID string) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error looking up student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	return &dto.StudentResponse{
		StudentID: student.StudentID,
		Name:      student.Name,
		Email:     student.Email,
		Phone:     student.Phone,
	}, nil
}

// GetAdministrator returns the dashboard view of an administrator.
func (s *authServiceImpl) GetAdministrator(ctx context.Context, id int64) (*dto.AdministratorResponse, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up administrator: %w", err)
	}
	if admin == nil {
		return nil, apperrors.ErrAdministratorNotFound
	}

	return &dto.AdministratorResponse{
		ID:    admin.ID,
		Email: admin.Email,
	}, nil
}

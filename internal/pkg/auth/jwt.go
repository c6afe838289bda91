package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/selim/lostfound/internal/app/models"
)

// JWT errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// JWTConfig defines session token configuration settings
type JWTConfig struct {
	SecretKey   string
	TokenExp    time.Duration
	TokenIssuer string
}

// JWTService signs and verifies the session tokens carried by the browser cookie.
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// SessionClaims defines session token content. A student session carries the
// student identifier; an administrator session carries the administrator row id.
type SessionClaims struct {
	StudentID string `json:"studentId,omitempty"`
	AdminID   int64  `json:"adminId,omitempty"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateStudentToken creates a signed session token for a student.
func (s *JWTService) GenerateStudentToken(studentID string) (token string, expiresIn int, err error) {
	claims := &SessionClaims{
		StudentID:        studentID,
		Role:             string(models.RoleStudent),
		RegisteredClaims: s.registeredClaims(studentID),
	}
	return s.sign(claims)
}

// GenerateAdministratorToken creates a signed session token for an administrator.
func (s *JWTService) GenerateAdministratorToken(adminID int64) (token string, expiresIn int, err error) {
	claims := &SessionClaims{
		AdminID:          adminID,
		Role:             string(models.RoleAdministrator),
		RegisteredClaims: s.registeredClaims(fmt.Sprintf("%d", adminID)),
	}
	return s.sign(claims)
}

func (s *JWTService) registeredClaims(subject string) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExp)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    s.config.TokenIssuer,
		Subject:   subject,
		ID:        uuid.New().String(),
	}
}

func (s *JWTService) sign(claims *SessionClaims) (string, int, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create session token: %w", err)
	}
	return signed, int(s.config.TokenExp.Seconds()), nil
}

// ValidateToken validates a session token and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearerToken extracts the token from an Authorization header value.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	// Otherwise just return the entire header value as the token
	return authHeader, nil
}

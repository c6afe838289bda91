package dto

// RegisterRequest carries the student registration form.
type RegisterRequest struct {
	Name            string `json:"name" form:"name" binding:"required"`
	StudentID       string `json:"studentId" form:"student_id" binding:"required"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Phone           string `json:"phone" form:"phone" binding:"required"`
	Password        string `json:"password" form:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirm_password" binding:"required"`
}

// LoginRequest carries the student login form.
type LoginRequest struct {
	StudentID string `json:"studentId" form:"student_id" binding:"required"`
	Password  string `json:"password" form:"password" binding:"required"`
}

// ChangePasswordRequest carries the password change form.
type ChangePasswordRequest struct {
	StudentID       string `json:"studentId" form:"student_id" binding:"required"`
	NewPassword     string `json:"newPassword" form:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirm_password" binding:"required"`
}

// AdminLoginRequest carries the administrator login form.
type AdminLoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// TokenResponse returns a freshly issued session token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"86400"`
	Role      string `json:"role" example:"student"`
}

// StudentResponse is the public view of a student record.
type StudentResponse struct {
	StudentID string `json:"studentId" example:"20231234"`
	Name      string `json:"name" example:"Jane Doe"`
	Email     string `json:"email" example:"jane@school.edu"`
	Phone     string `json:"phone" example:"5550001122"`
}

// AdministratorResponse is the public view of an administrator record.
type AdministratorResponse struct {
	ID    int64  `json:"id" example:"1"`
	Email string `json:"email" example:"staff@school.edu"`
}

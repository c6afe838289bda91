// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/selim/lostfound/internal/app/models/dto"
	"github.com/selim/lostfound/internal/app/services"
	"github.com/selim/lostfound/internal/middleware"
)

// AuthController handles registration, login and session teardown for both
// students and administrators.
type AuthController struct {
	authService services.AuthService
	cookieName  string
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, cookieName string, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		cookieName:  cookieName,
		logger:      logger,
	}
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetCookie(c.cookieName, token, maxAge, "/", "", false, true)
}

func (c *AuthController) clearSessionCookie(ctx *gin.Context) {
	ctx.SetCookie(c.cookieName, "", -1, "/", "", false, true)
}

// RegisterStudent handles student registration
// @Summary Register a new student
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration form"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing fields or password mismatch"
// @Failure 409 {object} dto.ErrorResponse "Student ID already registered"
// @Router /student_register [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration payload")
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "All registration fields are required").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	student, err := c.authService.RegisterStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student))
}

// LoginStudent handles student login
// @Summary Student login
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /student_login [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student ID and password are required").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	tokenResp, err := c.authService.LoginStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, tokenResp.Token, tokenResp.ExpiresIn)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokenResp))
}

// ChangePassword handles the student password change form
// @Summary Change a student's password
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Password change form"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Password mismatch"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /student_alterpassword [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBind(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "All password change fields are required").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.authService.ChangePassword(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Password changed, please log in again"))
}

// LogoutStudent clears the student session
// @Summary Student logout
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /student_logout [get]
func (c *AuthController) LogoutStudent(ctx *gin.Context) {
	c.clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// StudentDashboard returns the logged-in student's profile
// @Summary Student dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /student_dashboard [get]
func (c *AuthController) StudentDashboard(ctx *gin.Context) {
	studentID := ctx.GetString(middleware.ContextStudentID)

	student, err := c.authService.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// LoginAdministrator handles administrator login
// @Summary Administrator login
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /administrator_login [post]
func (c *AuthController) LoginAdministrator(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Email and password are required").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	tokenResp, err := c.authService.LoginAdministrator(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, tokenResp.Token, tokenResp.ExpiresIn)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokenResp))
}

// LogoutAdministrator clears the administrator session
// @Summary Administrator logout
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /administrator_logout [get]
func (c *AuthController) LogoutAdministrator(ctx *gin.Context) {
	c.clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// AdministratorDashboard returns the logged-in administrator's identity
// @Summary Administrator dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AdministratorResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /administrator_dashboard [get]
func (c *AuthController) AdministratorDashboard(ctx *gin.Context) {
	adminID := ctx.GetInt64(middleware.ContextAdminID)

	admin, err := c.authService.GetAdministrator(ctx.Request.Context(), adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin))
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratemystore/ratemystore-backend/internal/app/service"
	apperrors "github.com/ratemystore/ratemystore-backend/internal/errors"
	"github.com/ratemystore/ratemystore-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// Signup handles public visitor registration
// POST /api/v1/signup
func (ctrl *AuthController) Signup(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid signup request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.MsgAllFieldsRequired)
		return
	}

	user, token, err := ctrl.authService.Signup(req.Name, req.Email, req.Password, req.Address)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Conflict(c, apperrors.MsgEmailExists)
			return
		}
		if service.IsValidationError(err) {
			apperrors.BadRequest(c, validationMessage(err))
			return
		}
		log.Error("Signup failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.ParseAndRespond(c, err, "signup user")
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"user":  userJSON(user),
		"token": token,
	})
}

// Login authenticates a user and issues a bearer token
// POST /api/v1/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.MsgAllFieldsRequired)
		return
	}

	user, token, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.Unauthorized(c, apperrors.MsgInvalidCredentials)
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.ParseAndRespond(c, err, "login user")
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"user":  userJSON(user),
		"token": token,
	})
}

// UpdatePassword changes the authenticated caller's password
// PUT /api/v1/users/password
func (ctrl *AuthController) UpdatePassword(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, apperrors.MsgNoToken)
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.MsgAllFieldsRequired)
		return
	}

	if err := ctrl.authService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOldPassword):
			apperrors.Unauthorized(c, apperrors.MsgInvalidOldPassword)
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.NotFound(c, apperrors.MsgUserNotFound)
		case service.IsValidationError(err):
			apperrors.BadRequest(c, validationMessage(err))
		default:
			log.Error("Password update failed", err, map[string]interface{}{
				"user_id": userID,
			})
			apperrors.ParseAndRespond(c, err, "update password")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Password updated successfully",
	})
}

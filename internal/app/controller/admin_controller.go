package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratemystore/ratemystore-backend/internal/app/repository"
	"github.com/ratemystore/ratemystore-backend/internal/app/service"
	apperrors "github.com/ratemystore/ratemystore-backend/internal/errors"
	"github.com/ratemystore/ratemystore-backend/internal/middleware"
)

type AdminController struct {
	userService service.UserService
}

func NewAdminController(userService service.UserService) *AdminController {
	return &AdminController{
		userService: userService,
	}
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// ListUsers returns all accounts matching the optional filters
// GET /api/v1/admin/users (admin)
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sortDesc, ok := parseSortParam(c)
	if !ok {
		return
	}

	filter := repository.UserFilter{
		Name:     c.Query("name"),
		Email:    c.Query("email"),
		Role:     c.Query("role"),
		SortDesc: sortDesc,
	}

	users, err := ctrl.userService.List(filter)
	if err != nil {
		log.Error("Failed to list users", err, nil)
		apperrors.ParseAndRespond(c, err, "list users")
		return
	}

	list := make([]gin.H, 0, len(users))
	for i := range users {
		list = append(list, userJSON(&users[i]))
	}

	respondList(c, http.StatusOK, len(list), gin.H{
		"users": list,
	})
}

// CreateUser provisions an account with an explicit role
// POST /api/v1/admin/users (admin)
func (ctrl *AdminController) CreateUser(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.MsgAllFieldsRequired)
		return
	}

	user, err := ctrl.userService.Create(req.Name, req.Email, req.Password, req.Address, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyExists):
			apperrors.Conflict(c, apperrors.MsgEmailExists)
		case errors.Is(err, service.ErrInvalidRole):
			apperrors.BadRequest(c, apperrors.MsgInvalidRole)
		case service.IsValidationError(err):
			apperrors.BadRequest(c, validationMessage(err))
		default:
			log.Error("Failed to create user", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.ParseAndRespond(c, err, "create user")
		}
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"user": userJSON(user),
	})
}

// GetStats returns platform-wide totals for the admin dashboard
// GET /api/v1/admin/stats (admin)
func (ctrl *AdminController) GetStats(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	stats, err := ctrl.userService.Stats()
	if err != nil {
		log.Error("Failed to compute stats", err, nil)
		apperrors.ParseAndRespond(c, err, "get stats")
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"total_users":   stats.TotalUsers,
		"total_stores":  stats.TotalStores,
		"total_ratings": stats.TotalRatings,
	})
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratemystore/ratemystore-backend/internal/app/service"
	apperrors "github.com/ratemystore/ratemystore-backend/internal/errors"
	"github.com/ratemystore/ratemystore-backend/internal/middleware"
)

type RatingController struct {
	ratingService service.RatingService
}

func NewRatingController(ratingService service.RatingService) *RatingController {
	return &RatingController{
		ratingService: ratingService,
	}
}

type SubmitRatingRequest struct {
	Rating  int     `json:"rating" binding:"required"`
	Comment *string `json:"comment"`
}

// Submit records or overwrites the caller's rating for a store
// POST /api/v1/stores/:id/ratings (user)
func (ctrl *RatingController) Submit(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID, ok := parseStoreID(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(c)

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.MsgInvalidRating)
		return
	}

	rating, created, err := ctrl.ratingService.Submit(storeID, userID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.MsgInvalidRating)
		case errors.Is(err, service.ErrStoreNotFound):
			apperrors.NotFound(c, apperrors.MsgStoreNotFound)
		default:
			log.Error("Failed to submit rating", err, map[string]interface{}{
				"store_id": storeID,
				"user_id":  userID,
			})
			apperrors.ParseAndRespond(c, err, "submit rating")
		}
		return
	}

	// 201 on first submission, 200 on overwrite
	statusCode := http.StatusOK
	if created {
		statusCode = http.StatusCreated
	}

	respondSuccess(c, statusCode, gin.H{
		"rating": gin.H{
			"id":       rating.ID,
			"store_id": rating.StoreID,
			"user_id":  rating.UserID,
			"rating":   rating.Rating,
			"comment":  rating.Comment,
		},
	})
}

// ListForOwner returns every rating on the caller's stores, newest first
// GET /api/v1/owner/stores/ratings (owner)
func (ctrl *RatingController) ListForOwner(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	ownerID, _ := middleware.GetUserID(c)

	ratings, err := ctrl.ratingService.ListForOwner(ownerID)
	if err != nil {
		log.Error("Failed to list owner ratings", err, map[string]interface{}{
			"owner_id": ownerID,
		})
		apperrors.ParseAndRespond(c, err, "list owner ratings")
		return
	}

	list := make([]gin.H, 0, len(ratings))
	for _, r := range ratings {
		list = append(list, gin.H{
			"id":         r.ID,
			"rating":     r.Rating,
			"comment":    r.Comment,
			"store_id":   r.StoreID,
			"store_name": r.Store.Name,
			"user_name":  r.User.Name,
			"created_at": r.CreatedAt,
			"updated_at": r.UpdatedAt,
		})
	}

	respondList(c, http.StatusOK, len(list), gin.H{
		"ratings": list,
	})
}

package service

import (
	"errors"

	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/internal/app/repository"
	"github.com/ratemystore/ratemystore-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type RatingService interface {
	Submit(storeID, userID uint, rating int, comment *string) (*model.Rating, bool, error)
	ListForOwner(ownerID uint) ([]model.Rating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	storeRepo  repository.StoreRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, storeRepo repository.StoreRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
	}
}

// Submit records the caller's rating for a store. A user holds at most one
// rating per store; a resubmission overwrites the previous score and comment.
// The returned bool is true when this was the caller's first rating of the
// store.
func (s *ratingService) Submit(storeID, userID uint, rating int, comment *string) (*model.Rating, bool, error) {
	if rating < 1 || rating > 5 {
		return nil, false, ErrInvalidRating
	}

	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrStoreNotFound
		}
		return nil, false, err
	}

	result, created, err := s.ratingRepo.Upsert(storeID, userID, rating, comment)
	if err != nil {
		logger.Error("Failed to submit rating", err, map[string]interface{}{
			"store_id": storeID,
			"user_id":  userID,
		})
		return nil, false, err
	}

	logger.Info("Rating submitted", map[string]interface{}{
		"rating_id": result.ID,
		"store_id":  storeID,
		"user_id":   userID,
		"created":   created,
	})
	return result, created, nil
}

// ListForOwner returns every rating left on the owner's stores, newest first.
func (s *ratingService) ListForOwner(ownerID uint) ([]model.Rating, error) {
	return s.ratingRepo.FindByOwnerID(ownerID)
}

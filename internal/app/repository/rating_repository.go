package repository

import (
	"errors"

	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/pkg/logger"
	"gorm.io/gorm"
)

type RatingRepository interface {
	Upsert(storeID, userID uint, rating int, comment *string) (*model.Rating, bool, error)
	FindByStoreAndUser(storeID, userID uint) (*model.Rating, error)
	FindByStoreID(storeID uint) ([]model.Rating, error)
	FindByUserID(userID uint) ([]model.Rating, error)
	FindByOwnerID(ownerID uint) ([]model.Rating, error)
	Count() (int64, error)
	RecomputeAllAverages() error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the caller's rating for a store, or overwrites the existing
// one for the same (store, user) pair, then refreshes the store's denormalized
// average. The whole sequence runs in one transaction and the average is
// written as a computed aggregate, so it can never observably lag behind the
// rating write that triggered it.
// The returned bool is true when a new rating row was created.
func (r *ratingRepository) Upsert(storeID, userID uint, rating int, comment *string) (*model.Rating, bool, error) {
	logger.Debug("Upserting rating", map[string]interface{}{
		"store_id": storeID,
		"user_id":  userID,
		"rating":   rating,
	})

	var result model.Rating
	created := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Rating
		err := tx.Where("store_id = ? AND user_id = ?", storeID, userID).First(&existing).Error
		switch {
		case err == nil:
			existing.Rating = rating
			existing.Comment = comment
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			result = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			result = model.Rating{
				StoreID: storeID,
				UserID:  userID,
				Rating:  rating,
				Comment: comment,
			}
			if err := tx.Create(&result).Error; err != nil {
				return err
			}
			created = true
		default:
			return err
		}

		return recomputeAverage(tx, storeID)
	})
	if err != nil {
		logger.Error("Failed to upsert rating", err, map[string]interface{}{
			"store_id": storeID,
			"user_id":  userID,
		})
		return nil, false, err
	}

	logger.Debug("Rating upserted", map[string]interface{}{
		"rating_id": result.ID,
		"store_id":  storeID,
		"created":   created,
	})
	return &result, created, nil
}

// recomputeAverage writes the store's average as a single aggregate UPDATE.
// AVG returns NULL for an empty rating set, which clears the column.
func recomputeAverage(tx *gorm.DB, storeID uint) error {
	return tx.Model(&model.Store{}).
		Where("id = ?", storeID).
		UpdateColumn("average_rating", gorm.Expr(
			"(SELECT AVG(rating) FROM ratings WHERE store_id = ?)", storeID,
		)).Error
}

func (r *ratingRepository) FindByStoreAndUser(storeID, userID uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.Where("store_id = ? AND user_id = ?", storeID, userID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) FindByStoreID(storeID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.Preload("User").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) FindByUserID(userID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.Where("user_id = ?", userID).Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// FindByOwnerID returns every rating across all stores owned by the given
// user, newest first, with rater and store preloaded for the owner dashboard.
func (r *ratingRepository) FindByOwnerID(ownerID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.Preload("User").Preload("Store").
		Joins("JOIN stores ON stores.id = ratings.store_id").
		Where("stores.owner_id = ?", ownerID).
		Order("ratings.created_at DESC").
		Find(&ratings).Error
	if err != nil {
		logger.Error("Failed to find ratings by owner", err, map[string]interface{}{
			"owner_id": ownerID,
		})
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Rating{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// RecomputeAllAverages refreshes the denormalized average of every store in
// one statement. Used by the nightly reconcile job to heal any drift from
// out-of-band data edits.
func (r *ratingRepository) RecomputeAllAverages() error {
	return r.db.Exec(
		"UPDATE stores SET average_rating = (SELECT AVG(rating) FROM ratings WHERE ratings.store_id = stores.id)",
	).Error
}

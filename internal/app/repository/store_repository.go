package repository

import (
	"strings"

	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/pkg/logger"
	"gorm.io/gorm"
)

// StoreFilter holds the optional, conjunctive list filters.
// An empty field means "no constraint on that field", not "match empty".
type StoreFilter struct {
	Name     string // case-insensitive substring
	Address  string // case-insensitive substring
	SortDesc bool   // sort by name descending instead of ascending
}

type StoreRepository interface {
	Create(store *model.Store) error
	Update(store *model.Store) error
	DeleteWithRatings(id uint) error
	FindAll(filter StoreFilter) ([]model.Store, error)
	FindByID(id uint) (*model.Store, error)
	FindByOwnerID(ownerID uint) ([]model.Store, error)
	Count() (int64, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *model.Store) error {
	logger.Debug("Creating store in database", map[string]interface{}{
		"name":     store.Name,
		"owner_id": store.OwnerID,
	})

	if err := r.db.Create(store).Error; err != nil {
		logger.Error("Failed to create store in database", err, map[string]interface{}{
			"name":     store.Name,
			"owner_id": store.OwnerID,
		})
		return err
	}

	logger.Debug("Store created in database", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})
	return nil
}

func (r *storeRepository) Update(store *model.Store) error {
	logger.Debug("Updating store in database", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})

	if err := r.db.Save(store).Error; err != nil {
		logger.Error("Failed to update store in database", err, map[string]interface{}{
			"store_id": store.ID,
		})
		return err
	}
	return nil
}

// DeleteWithRatings removes a store and every rating that references it in
// one transaction, so no orphan rating rows can survive a partial failure.
func (r *storeRepository) DeleteWithRatings(id uint) error {
	logger.Debug("Deleting store from database", map[string]interface{}{
		"store_id": id,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", id).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Store{}, id).Error
	})
	if err != nil {
		logger.Error("Failed to delete store from database", err, map[string]interface{}{
			"store_id": id,
		})
		return err
	}

	logger.Debug("Store deleted from database", map[string]interface{}{
		"store_id": id,
	})
	return nil
}

func (r *storeRepository) FindAll(filter StoreFilter) ([]model.Store, error) {
	logger.Debug("Finding stores", map[string]interface{}{
		"name":    filter.Name,
		"address": filter.Address,
	})

	query := r.db.Model(&model.Store{}).Preload("Owner")

	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Address != "" {
		query = query.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(filter.Address)+"%")
	}

	order := "name ASC"
	if filter.SortDesc {
		order = "name DESC"
	}

	var stores []model.Store
	if err := query.Order(order).Find(&stores).Error; err != nil {
		logger.Error("Failed to find stores in database", err, nil)
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) FindByID(id uint) (*model.Store, error) {
	var store model.Store
	err := r.db.Preload("Owner").First(&store, id).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindByOwnerID(ownerID uint) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Store{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

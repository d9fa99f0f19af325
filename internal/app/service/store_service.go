package service

import (
	"errors"

	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/internal/app/repository"
	"github.com/ratemystore/ratemystore-backend/pkg/logger"
	"github.com/ratemystore/ratemystore-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound     = errors.New("store not found")
	ErrNotStoreOwner     = errors.New("not authorized to modify this store")
	ErrOwnerNotFound     = errors.New("owner not found")
	ErrOwnerRoleMismatch = errors.New("assigned owner must have the owner role")
)

// StoreListItem pairs a store with the requesting user's own rating of it,
// so the listing can show "your rating" next to the overall average.
type StoreListItem struct {
	Store      model.Store
	UserRating *int
}

type StoreService interface {
	List(filter repository.StoreFilter, viewerID uint) ([]StoreListItem, error)
	GetDetail(storeID uint) (*model.Store, []model.Rating, error)
	Create(callerID uint, callerRole model.UserRole, name, email, address string, ownerID *uint) (*model.Store, error)
	Update(callerID uint, callerRole model.UserRole, storeID uint, name, email, address string) (*model.Store, error)
	Delete(callerID uint, callerRole model.UserRole, storeID uint) error
	ListByOwner(ownerID uint) ([]model.Store, error)
}

type storeService struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	userRepo   repository.UserRepository
}

func NewStoreService(storeRepo repository.StoreRepository, ratingRepo repository.RatingRepository, userRepo repository.UserRepository) StoreService {
	return &storeService{
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
	}
}

// List returns stores matching the filter. When viewerID is non-zero the
// viewer's own ratings are joined in so each item carries their score.
func (s *storeService) List(filter repository.StoreFilter, viewerID uint) ([]StoreListItem, error) {
	stores, err := s.storeRepo.FindAll(filter)
	if err != nil {
		logger.Error("Failed to list stores", err, nil)
		return nil, err
	}

	ownRatings := make(map[uint]int)
	if viewerID != 0 {
		ratings, err := s.ratingRepo.FindByUserID(viewerID)
		if err != nil {
			logger.Error("Failed to load viewer ratings", err, map[string]interface{}{
				"user_id": viewerID,
			})
			return nil, err
		}
		for _, r := range ratings {
			ownRatings[r.StoreID] = r.Rating
		}
	}

	items := make([]StoreListItem, 0, len(stores))
	for _, store := range stores {
		item := StoreListItem{Store: store}
		if score, ok := ownRatings[store.ID]; ok {
			value := score
			item.UserRating = &value
		}
		items = append(items, item)
	}
	return items, nil
}

// GetDetail returns a store together with its ratings, newest first.
func (s *storeService) GetDetail(storeID uint) (*model.Store, []model.Rating, error) {
	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrStoreNotFound
		}
		return nil, nil, err
	}

	ratings, err := s.ratingRepo.FindByStoreID(storeID)
	if err != nil {
		logger.Error("Failed to load store ratings", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, nil, err
	}
	return store, ratings, nil
}

// Create registers a new store. Admins may assign any owner-role user as the
// owner; owners always become the owner of the stores they create.
func (s *storeService) Create(callerID uint, callerRole model.UserRole, name, email, address string, ownerID *uint) (*model.Store, error) {
	if err := util.ValidateName(name); err != nil {
		return nil, err
	}
	if err := util.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := util.ValidateAddress(address); err != nil {
		return nil, err
	}

	resolvedOwnerID := callerID
	if callerRole == model.RoleAdmin && ownerID != nil {
		resolvedOwnerID = *ownerID
	}

	owner, err := s.userRepo.FindByID(resolvedOwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	if callerRole == model.RoleAdmin && owner.Role != model.RoleOwner && owner.ID != callerID {
		return nil, ErrOwnerRoleMismatch
	}

	store := &model.Store{
		Name:    name,
		Email:   email,
		Address: address,
		OwnerID: owner.ID,
	}
	if err := s.storeRepo.Create(store); err != nil {
		logger.Error("Failed to create store", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	logger.Info("Store created", map[string]interface{}{
		"store_id": store.ID,
		"owner_id": owner.ID,
	})
	return s.storeRepo.FindByID(store.ID)
}

// Update rewrites a store's profile. Admins may edit any store; owners only
// their own.
func (s *storeService) Update(callerID uint, callerRole model.UserRole, storeID uint, name, email, address string) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	if callerRole != model.RoleAdmin && store.OwnerID != callerID {
		logger.Warn("Store update rejected: not the owner", map[string]interface{}{
			"store_id":  storeID,
			"caller_id": callerID,
		})
		return nil, ErrNotStoreOwner
	}

	if err := util.ValidateName(name); err != nil {
		return nil, err
	}
	if err := util.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := util.ValidateAddress(address); err != nil {
		return nil, err
	}

	store.Name = name
	store.Email = email
	store.Address = address
	if err := s.storeRepo.Update(store); err != nil {
		logger.Error("Failed to update store", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return s.storeRepo.FindByID(storeID)
}

// Delete removes a store and every rating attached to it in one transaction.
func (s *storeService) Delete(callerID uint, callerRole model.UserRole, storeID uint) error {
	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNotFound
		}
		return err
	}

	if callerRole != model.RoleAdmin && store.OwnerID != callerID {
		logger.Warn("Store delete rejected: not the owner", map[string]interface{}{
			"store_id":  storeID,
			"caller_id": callerID,
		})
		return ErrNotStoreOwner
	}

	if err := s.storeRepo.DeleteWithRatings(storeID); err != nil {
		logger.Error("Failed to delete store", err, map[string]interface{}{
			"store_id": storeID,
		})
		return err
	}

	logger.Info("Store deleted", map[string]interface{}{
		"store_id": storeID,
	})
	return nil
}

func (s *storeService) ListByOwner(ownerID uint) ([]model.Store, error) {
	return s.storeRepo.FindByOwnerID(ownerID)
}

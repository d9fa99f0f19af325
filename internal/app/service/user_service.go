package service

import (
	"errors"

	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/internal/app/repository"
	"github.com/ratemystore/ratemystore-backend/pkg/logger"
	"github.com/ratemystore/ratemystore-backend/pkg/util"
	"gorm.io/gorm"
)

var ErrInvalidRole = errors.New("invalid role")

// PlatformStats 관리자 대시보드 집계
type PlatformStats struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

type UserService interface {
	List(filter repository.UserFilter) ([]model.User, error)
	Create(name, email, password, address, role string) (*model.User, error)
	Stats() (*PlatformStats, error)
}

type userService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
}

func NewUserService(userRepo repository.UserRepository, storeRepo repository.StoreRepository, ratingRepo repository.RatingRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

func (s *userService) List(filter repository.UserFilter) ([]model.User, error) {
	return s.userRepo.FindAll(filter)
}

// Create provisions an account with an explicit role. Unlike public signup,
// this is how admin and owner accounts come into existence.
func (s *userService) Create(name, email, password, address, role string) (*model.User, error) {
	if err := util.ValidateName(name); err != nil {
		return nil, err
	}
	if err := util.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := util.ValidateAddress(address); err != nil {
		return nil, err
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, err
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Address:      address,
		Role:         model.UserRole(role),
	}
	if err := s.userRepo.Create(user); err != nil {
		logger.Error("Failed to create user", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	logger.Info("User created by admin", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})
	return user, nil
}

// Stats counts the platform's users, stores and ratings for the dashboard.
func (s *userService) Stats() (*PlatformStats, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	stores, err := s.storeRepo.Count()
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.Count()
	if err != nil {
		return nil, err
	}
	return &PlatformStats{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}, nil
}

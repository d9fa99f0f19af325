package repository

import (
	"strings"

	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/pkg/logger"
	"gorm.io/gorm"
)

// UserFilter holds the optional, conjunctive list filters for admin queries.
// An empty field means "no constraint on that field", not "match empty".
type UserFilter struct {
	Name     string // case-insensitive substring
	Email    string // case-insensitive substring
	Role     string // exact role match
	SortDesc bool   // sort by name descending instead of ascending
}

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindAll(filter UserFilter) ([]model.User, error)
	Update(user *model.User) error
	Count() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	})

	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		logger.Error("Failed to find user by ID in database", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(filter UserFilter) ([]model.User, error) {
	logger.Debug("Finding users", map[string]interface{}{
		"name":  filter.Name,
		"email": filter.Email,
		"role":  filter.Role,
	})

	query := r.db.Model(&model.User{})

	// LOWER() keeps substring matching case-insensitive on both
	// PostgreSQL and the SQLite test database.
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Email != "" {
		query = query.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(filter.Email)+"%")
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	order := "name ASC"
	if filter.SortDesc {
		order = "name DESC"
	}

	var users []model.User
	if err := query.Order(order).Find(&users).Error; err != nil {
		logger.Error("Failed to find users in database", err, nil)
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	logger.Debug("Updating user in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})

	if err := r.db.Save(user).Error; err != nil {
		logger.Error("Failed to update user in database", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return err
	}
	return nil
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

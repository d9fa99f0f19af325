package service

import (
	"errors"
	"time"

	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/internal/app/repository"
	"github.com/ratemystore/ratemystore-backend/pkg/logger"
	"github.com/ratemystore/ratemystore-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOldPassword = errors.New("invalid old password")
	ErrUserNotFound       = errors.New("user not found")
)

// IsValidationError reports whether err is one of the field validation
// failures that should surface to the client as a 400.
func IsValidationError(err error) bool {
	return errors.Is(err, util.ErrNameLength) ||
		errors.Is(err, util.ErrAddressRequired) ||
		errors.Is(err, util.ErrAddressLength) ||
		errors.Is(err, util.ErrInvalidEmail) ||
		errors.Is(err, util.ErrWeakPassword)
}

type AuthService interface {
	Signup(name, email, password, address string) (*model.User, string, error)
	Login(email, password string) (*model.User, string, error)
	ChangePassword(userID uint, oldPassword, newPassword string) error
}

type authService struct {
	userRepo    repository.UserRepository
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, tokenExpiry time.Duration) AuthService {
	return &authService{
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

// Signup registers a public visitor. The role is always "user": the only way
// to mint an admin or owner account is through the admin user endpoint.
func (s *authService) Signup(name, email, password, address string) (*model.User, string, error) {
	logger.Info("Attempting user signup", map[string]interface{}{
		"email": email,
	})

	if err := util.ValidateName(name); err != nil {
		return nil, "", err
	}
	if err := util.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := util.ValidateAddress(address); err != nil {
		return nil, "", err
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	// Check if user already exists
	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}
	if existingUser != nil {
		logger.Warn("Signup failed: email already exists", map[string]interface{}{
			"email": email,
		})
		return nil, "", ErrEmailAlreadyExists
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Address:      address,
		Role:         model.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}

	token, err := util.GenerateToken(user.ID, string(user.Role), s.jwtSecret, s.tokenExpiry)
	if err != nil {
		logger.Error("Failed to generate token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, "", err
	}

	logger.Info("User signed up successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
	})

	return user, token, nil
}

func (s *authService) Login(email, password string) (*model.User, string, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"email": email,
			})
			return nil, "", ErrInvalidCredentials
		}
		logger.Error("Failed to find user", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email":   email,
			"user_id": user.ID,
		})
		return nil, "", ErrInvalidCredentials
	}

	token, err := util.GenerateToken(user.ID, string(user.Role), s.jwtSecret, s.tokenExpiry)
	if err != nil {
		logger.Error("Failed to generate token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, "", err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})

	return user, token, nil
}

// ChangePassword swaps the caller's credential after verifying the old one.
// The new password must satisfy the same policy as signup.
func (s *authService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	logger.Info("Password change attempt", map[string]interface{}{
		"user_id": userID,
	})

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !util.VerifyPassword(user.PasswordHash, oldPassword) {
		logger.Warn("Password change failed: old password mismatch", map[string]interface{}{
			"user_id": userID,
		})
		return ErrInvalidOldPassword
	}

	if err := util.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := util.HashPassword(newPassword)
	if err != nil {
		logger.Error("Failed to hash new password", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	user.PasswordHash = hashedPassword
	if err := s.userRepo.Update(user); err != nil {
		logger.Error("Failed to update password", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	logger.Info("Password updated successfully", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}

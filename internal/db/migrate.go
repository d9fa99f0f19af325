package db

import (
	"errors"

	"github.com/ratemystore/ratemystore-backend/config"
	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/pkg/logger"
	"github.com/ratemystore/ratemystore-backend/pkg/util"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Store{},
		&model.Rating{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// SeedAdmin creates the bootstrap admin account if no admin exists yet.
// Roles are fixed at creation and there is no self-promotion endpoint,
// so the first admin has to come from configuration.
func SeedAdmin(cfg *config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		logger.Info("No bootstrap admin configured, skipping admin seed")
		return nil
	}

	var existing model.User
	err := DB.Where("role = ?", model.RoleAdmin).First(&existing).Error
	if err == nil {
		logger.Info("Admin account already exists, skipping admin seed", map[string]interface{}{
			"admin_id": existing.ID,
		})
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := util.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:         cfg.Name,
		Email:        cfg.Email,
		PasswordHash: hash,
		Address:      cfg.Address,
		Role:         model.RoleAdmin,
	}
	if err := DB.Create(admin).Error; err != nil {
		logger.Error("Failed to seed admin account", err, map[string]interface{}{
			"email": cfg.Email,
		})
		return err
	}

	logger.Info("Bootstrap admin account created", map[string]interface{}{
		"admin_id": admin.ID,
		"email":    admin.Email,
	})
	return nil
}

package repository

import (
	"context"
	"errors"

	"kalyanam/internal/cache"
	"kalyanam/internal/models"

	"gorm.io/gorm"
)

// SettingsRepository defines persistence for the single-row typed site settings.
type SettingsRepository interface {
	// GetTheme returns nil (not an error) when no row has been saved yet.
	GetTheme(ctx context.Context) (*models.ThemeSettings, error)
	SaveTheme(ctx context.Context, s *models.ThemeSettings) error
	// GetModules returns nil (not an error) when no row has been saved yet.
	GetModules(ctx context.Context) (*models.ModuleSettings, error)
	SaveModules(ctx context.Context, s *models.ModuleSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository returns a new SettingsRepository implementation.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetTheme(ctx context.Context) (*models.ThemeSettings, error) {
	var s models.ThemeSettings
	if err := r.db.WithContext(ctx).First(&s, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &s, nil
}

func (r *settingsRepository) SaveTheme(ctx context.Context, s *models.ThemeSettings) error {
	s.ID = 1
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateSettings(ctx)
	return nil
}

func (r *settingsRepository) GetModules(ctx context.Context) (*models.ModuleSettings, error) {
	var s models.ModuleSettings
	if err := r.db.WithContext(ctx).First(&s, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &s, nil
}

func (r *settingsRepository) SaveModules(ctx context.Context, s *models.ModuleSettings) error {
	s.ID = 1
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateSettings(ctx)
	return nil
}

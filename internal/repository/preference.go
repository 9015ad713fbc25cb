package repository

import (
	"context"
	"errors"

	"kalyanam/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository defines persistence operations for partner preferences.
type PreferenceRepository interface {
	// GetByUserID returns nil (not an error) when no preference record exists.
	GetByUserID(ctx context.Context, userID uint) (*models.Preference, error)
	Upsert(ctx context.Context, pref *models.Preference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository returns a new PreferenceRepository implementation.
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID uint) (*models.Preference, error) {
	var pref models.Preference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &pref, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref *models.Preference) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(pref).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

package repository

import (
	"context"
	"time"

	"kalyanam/internal/models"

	"gorm.io/gorm"
)

// ProfileViewRepository defines persistence operations for the profile-view log.
type ProfileViewRepository interface {
	Record(ctx context.Context, viewerID, viewedID uint) error
	HasViewed(ctx context.Context, viewerID, viewedID uint) (bool, error)
	// CountDistinctSince counts the distinct profiles a viewer opened since
	// the given time. Repeat views of the same profile count once.
	CountDistinctSince(ctx context.Context, viewerID uint, since time.Time) (int64, error)
	RecentViewers(ctx context.Context, viewedID uint, limit int) ([]models.ProfileView, error)
}

type profileViewRepository struct {
	db *gorm.DB
}

// NewProfileViewRepository returns a new ProfileViewRepository implementation.
func NewProfileViewRepository(db *gorm.DB) ProfileViewRepository {
	return &profileViewRepository{db: db}
}

func (r *profileViewRepository) Record(ctx context.Context, viewerID, viewedID uint) error {
	view := models.ProfileView{ViewerID: viewerID, ViewedID: viewedID}
	if err := r.db.WithContext(ctx).Create(&view).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileViewRepository) HasViewed(ctx context.Context, viewerID, viewedID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProfileView{}).
		Where("viewer_id = ? AND viewed_id = ?", viewerID, viewedID).
		Count(&n).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return n > 0, nil
}

func (r *profileViewRepository) CountDistinctSince(ctx context.Context, viewerID uint, since time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProfileView{}).
		Where("viewer_id = ? AND created_at >= ?", viewerID, since).
		Distinct("viewed_id").
		Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

func (r *profileViewRepository) RecentViewers(ctx context.Context, viewedID uint, limit int) ([]models.ProfileView, error) {
	var views []models.ProfileView
	if err := r.db.WithContext(ctx).
		Where("viewed_id = ?", viewedID).
		Order("created_at DESC").
		Limit(limit).
		Preload("Viewer").
		Find(&views).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return views, nil
}

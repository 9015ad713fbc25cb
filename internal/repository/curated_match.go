package repository

import (
	"context"
	"errors"

	"kalyanam/internal/models"

	"gorm.io/gorm"
)

// CuratedMatchRepository defines persistence operations for admin-curated matches.
type CuratedMatchRepository interface {
	Create(ctx context.Context, match *models.CuratedMatch) error
	GetByID(ctx context.Context, id uint) (*models.CuratedMatch, error)
	ListForUser(ctx context.Context, userID uint) ([]models.CuratedMatch, error)
	List(ctx context.Context, limit, offset int) ([]models.CuratedMatch, error)
	Update(ctx context.Context, match *models.CuratedMatch) error
	Delete(ctx context.Context, id uint) error
}

type curatedMatchRepository struct {
	db *gorm.DB
}

// NewCuratedMatchRepository returns a new CuratedMatchRepository implementation.
func NewCuratedMatchRepository(db *gorm.DB) CuratedMatchRepository {
	return &curatedMatchRepository{db: db}
}

func (r *curatedMatchRepository) Create(ctx context.Context, match *models.CuratedMatch) error {
	if err := r.db.WithContext(ctx).Create(match).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *curatedMatchRepository) GetByID(ctx context.Context, id uint) (*models.CuratedMatch, error) {
	var match models.CuratedMatch
	if err := r.db.WithContext(ctx).
		Preload("MatchedUser").
		Preload("MatchedUser.Profile").
		First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Match", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &match, nil
}

func (r *curatedMatchRepository) ListForUser(ctx context.Context, userID uint) ([]models.CuratedMatch, error) {
	var matches []models.CuratedMatch
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.CuratedMatchStatusSuggested).
		Order("score DESC").
		Preload("MatchedUser").
		Preload("MatchedUser.Profile").
		Find(&matches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return matches, nil
}

func (r *curatedMatchRepository) List(ctx context.Context, limit, offset int) ([]models.CuratedMatch, error) {
	var matches []models.CuratedMatch
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Preload("User").
		Preload("MatchedUser").
		Find(&matches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return matches, nil
}

func (r *curatedMatchRepository) Update(ctx context.Context, match *models.CuratedMatch) error {
	if err := r.db.WithContext(ctx).Save(match).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *curatedMatchRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.CuratedMatch{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

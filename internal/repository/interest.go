package repository

import (
	"context"
	"errors"

	"kalyanam/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateInterest is returned when an interest already exists for the
// ordered (sender, receiver) pair. The unique index makes the check
// race-free even under concurrent double-submit.
var ErrDuplicateInterest = errors.New("interest already exists for this pair")

// InterestRepository defines persistence operations for interests.
type InterestRepository interface {
	Create(ctx context.Context, interest *models.Interest) error
	GetByID(ctx context.Context, id uint) (*models.Interest, error)
	GetBySenderAndReceiver(ctx context.Context, senderID, receiverID uint) (*models.Interest, error)
	GetReceived(ctx context.Context, receiverID uint) ([]models.Interest, error)
	GetSent(ctx context.Context, senderID uint) ([]models.Interest, error)
	UpdateStatus(ctx context.Context, interestID uint, status models.InterestStatus) error
}

type interestRepository struct {
	db *gorm.DB
}

// NewInterestRepository returns a new InterestRepository implementation.
func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &interestRepository{db: db}
}

func (r *interestRepository) Create(ctx context.Context, interest *models.Interest) error {
	if err := r.db.WithContext(ctx).Create(interest).Error; err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateInterest
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *interestRepository) GetByID(ctx context.Context, id uint) (*models.Interest, error) {
	var interest models.Interest
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		First(&interest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Interest", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &interest, nil
}

func (r *interestRepository) GetBySenderAndReceiver(ctx context.Context, senderID, receiverID uint) (*models.Interest, error) {
	var interest models.Interest
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		First(&interest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No interest exists for the ordered pair
		}
		return nil, models.NewInternalError(err)
	}
	return &interest, nil
}

func (r *interestRepository) GetReceived(ctx context.Context, receiverID uint) ([]models.Interest, error) {
	var interests []models.Interest
	if err := r.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Preload("Sender").
		Find(&interests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return interests, nil
}

func (r *interestRepository) GetSent(ctx context.Context, senderID uint) ([]models.Interest, error) {
	var interests []models.Interest
	if err := r.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("created_at DESC").
		Preload("Receiver").
		Find(&interests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return interests, nil
}

func (r *interestRepository) UpdateStatus(ctx context.Context, interestID uint, status models.InterestStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Interest{}).
		Where("id = ?", interestID).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

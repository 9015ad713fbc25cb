package repository

import (
	"context"
	"errors"

	"kalyanam/internal/cache"
	"kalyanam/internal/models"

	"gorm.io/gorm"
)

// PlanRepository defines persistence operations for membership plans.
type PlanRepository interface {
	// GetByName matches the plan name case-insensitively and returns nil
	// (not an error) when no plan exists.
	GetByName(ctx context.Context, name string) (*models.MembershipPlan, error)
	GetByID(ctx context.Context, id uint) (*models.MembershipPlan, error)
	ListActive(ctx context.Context) ([]models.MembershipPlan, error)
	List(ctx context.Context) ([]models.MembershipPlan, error)
	Create(ctx context.Context, plan *models.MembershipPlan) error
	Update(ctx context.Context, plan *models.MembershipPlan) error
	Delete(ctx context.Context, id uint) error
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository returns a new PlanRepository implementation.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetByName(ctx context.Context, name string) (*models.MembershipPlan, error) {
	var plan models.MembershipPlan
	key := cache.PlanKey(name)

	err := cache.Aside(ctx, key, &plan, cache.PlanTTL, func() error {
		if err := r.db.WithContext(ctx).
			Where("LOWER(name) = LOWER(?)", name).
			First(&plan).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &plan, nil
}

func (r *planRepository) GetByID(ctx context.Context, id uint) (*models.MembershipPlan, error) {
	var plan models.MembershipPlan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Plan", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &plan, nil
}

func (r *planRepository) ListActive(ctx context.Context) ([]models.MembershipPlan, error) {
	var plans []models.MembershipPlan
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&plans).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return plans, nil
}

func (r *planRepository) List(ctx context.Context) ([]models.MembershipPlan, error) {
	var plans []models.MembershipPlan
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&plans).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return plans, nil
}

func (r *planRepository) Create(ctx context.Context, plan *models.MembershipPlan) error {
	// Plan names are unique case-insensitively.
	existing, err := r.GetByName(ctx, plan.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewValidationError("A plan with this name already exists")
	}
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *planRepository) Update(ctx context.Context, plan *models.MembershipPlan) error {
	existing, err := r.GetByName(ctx, plan.Name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != plan.ID {
		return models.NewValidationError("A plan with this name already exists")
	}
	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePlan(ctx, plan.Name)
	return nil
}

func (r *planRepository) Delete(ctx context.Context, id uint) error {
	plan, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.MembershipPlan{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePlan(ctx, plan.Name)
	return nil
}

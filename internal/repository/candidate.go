package repository

import (
	"context"
	"time"

	"kalyanam/internal/models"

	"gorm.io/gorm"
)

// CandidateFilter describes an eligible-candidate query. Zero values mean
// "no constraint" for the optional fields. Predicates are always bound as
// parameters, never concatenated into SQL.
type CandidateFilter struct {
	Gender        models.Gender
	ExcludeUserID uint
	AgeMin        int
	AgeMax        int
	HeightMinCm   int
	HeightMaxCm   int
	Religion      string
	Caste         string
	City          string
	MaritalStatus string
	OrderBy       string // "users.id DESC" (search) or "users.created_at DESC" (recommendations)
	Limit         int
	Offset        int
}

// CandidateRepository fetches eligible opposite-gender candidates for
// search and recommendations.
type CandidateRepository interface {
	Find(ctx context.Context, f CandidateFilter) ([]models.User, error)
}

type candidateRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCandidateRepository returns a new CandidateRepository implementation.
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db, now: time.Now}
}

func (r *candidateRepository) Find(ctx context.Context, f CandidateFilter) ([]models.User, error) {
	q := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Where("users.id <> ?", f.ExcludeUserID).
		Where("(users.is_approved = ? OR users.payment_status = ?)", true, models.PaymentStatusPaid)

	if f.Gender != "" {
		q = q.Where("users.gender = ?", f.Gender)
	}

	now := r.now()
	if f.AgeMin > 0 {
		// Anyone at least AgeMin years old was born on or before this date.
		q = q.Where("users.date_of_birth <= ?", now.AddDate(-f.AgeMin, 0, 0))
	}
	if f.AgeMax > 0 {
		// Anyone at most AgeMax years old was born after this date.
		q = q.Where("users.date_of_birth > ?", now.AddDate(-(f.AgeMax+1), 0, 0))
	}
	if f.HeightMinCm > 0 {
		q = q.Where("profiles.height_cm >= ?", f.HeightMinCm)
	}
	if f.HeightMaxCm > 0 {
		q = q.Where("profiles.height_cm <= ?", f.HeightMaxCm)
	}
	if f.Religion != "" {
		q = q.Where("LOWER(profiles.religion) = LOWER(?)", f.Religion)
	}
	if f.Caste != "" {
		q = q.Where("LOWER(profiles.caste) LIKE LOWER(?)", "%"+f.Caste+"%")
	}
	if f.City != "" {
		q = q.Where("LOWER(profiles.city) LIKE LOWER(?)", "%"+f.City+"%")
	}
	if f.MaritalStatus != "" {
		q = q.Where("profiles.marital_status = ?", f.MaritalStatus)
	}

	orderBy := f.OrderBy
	if orderBy == "" {
		orderBy = "users.id DESC"
	}
	q = q.Order(orderBy)

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var users []models.User
	if err := q.Preload("Profile").Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

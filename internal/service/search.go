package service

import (
	"context"
	"time"

	"kalyanam/internal/models"
	"kalyanam/internal/observability"
	"kalyanam/internal/repository"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// SearchCriteria holds the optional filters accepted by both search surfaces.
type SearchCriteria struct {
	AgeMin        *int
	AgeMax        *int
	HeightMinCm   *int
	HeightMaxCm   *int
	Religion      string
	Caste         string
	City          string
	MaritalStatus string
	Limit         int
	Offset        int
}

// SearchService answers filtered candidate queries without scoring.
type SearchService struct {
	userRepo      repository.UserRepository
	candidateRepo repository.CandidateRepository
	now           func() time.Time
}

// NewSearchService returns a new SearchService.
func NewSearchService(userRepo repository.UserRepository, candidateRepo repository.CandidateRepository) *SearchService {
	return &SearchService{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		now:           time.Now,
	}
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultSearchLimit
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}

// Search returns eligible opposite-gender candidates matching the criteria,
// newest id first.
func (s *SearchService) Search(ctx context.Context, viewerID uint, criteria SearchCriteria) ([]models.User, error) {
	viewer, err := s.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if viewer.Gender != models.GenderMale && viewer.Gender != models.GenderFemale {
		return nil, models.NewValidationError("Please complete your profile before searching")
	}

	observability.SearchQueries.WithLabelValues("member").Inc()
	return s.candidateRepo.Find(ctx, repository.CandidateFilter{
		Gender:        viewer.Gender.Opposite(),
		ExcludeUserID: viewerID,
		AgeMin:        intOrZero(criteria.AgeMin),
		AgeMax:        intOrZero(criteria.AgeMax),
		HeightMinCm:   intOrZero(criteria.HeightMinCm),
		HeightMaxCm:   intOrZero(criteria.HeightMaxCm),
		Religion:      criteria.Religion,
		Caste:         criteria.Caste,
		City:          criteria.City,
		MaritalStatus: criteria.MaritalStatus,
		OrderBy:       "users.id DESC",
		Limit:         clampLimit(criteria.Limit),
		Offset:        criteria.Offset,
	})
}

// PublicSearch serves the unauthenticated search surface. An optional gender
// filter replaces the opposite-gender rule, and every result is redacted
// before it leaves the service.
func (s *SearchService) PublicSearch(ctx context.Context, gender models.Gender, criteria SearchCriteria) ([]models.PublicProfile, error) {
	observability.SearchQueries.WithLabelValues("public").Inc()

	users, err := s.candidateRepo.Find(ctx, repository.CandidateFilter{
		Gender:        gender,
		AgeMin:        intOrZero(criteria.AgeMin),
		AgeMax:        intOrZero(criteria.AgeMax),
		HeightMinCm:   intOrZero(criteria.HeightMinCm),
		HeightMaxCm:   intOrZero(criteria.HeightMaxCm),
		Religion:      criteria.Religion,
		Caste:         criteria.Caste,
		City:          criteria.City,
		MaritalStatus: criteria.MaritalStatus,
		OrderBy:       "users.id DESC",
		Limit:         clampLimit(criteria.Limit),
		Offset:        criteria.Offset,
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]models.PublicProfile, 0, len(users))
	for i := range users {
		out = append(out, models.Redact(&users[i], users[i].Profile, now))
	}
	return out, nil
}
